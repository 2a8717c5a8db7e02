// Package tools implements the brush tools that edit the map: draw,
// eraser, and color dropper. Tools receive stroke events in world
// coordinates from the host event loop and issue undoable commands.
package tools

import (
	"math"

	"github.com/Neonscape/HexaMapper/internal/hexgrid"
	"github.com/Neonscape/HexaMapper/internal/hexmap"
)

// VisualAid describes the overlay the renderer draws for the active tool.
type VisualAid struct {
	Radius    float32 // in multiples of the hex radius
	Color     hexmap.Color
	Thickness float32
}

// Tool handles one stroke: Press starts it, Drag extends it, Release
// finishes it. Positions are world-space.
type Tool interface {
	Press(x, y float32)
	Drag(x, y float32)
	Release(x, y float32)
	Activate()
	Deactivate()
	VisualAid() (VisualAid, bool)
}

// Manager keeps the registered tools and dispatches strokes to the
// active one.
type Manager struct {
	tools  map[string]Tool
	active Tool
	name   string
}

// NewManager returns a manager with no active tool.
func NewManager() *Manager {
	return &Manager{tools: make(map[string]Tool)}
}

// Register adds a tool under a name.
func (m *Manager) Register(name string, t Tool) {
	m.tools[name] = t
}

// Activate switches the active tool, deactivating the previous one.
// Unknown names leave no tool active.
func (m *Manager) Activate(name string) {
	if m.active != nil {
		m.active.Deactivate()
	}
	m.active = m.tools[name]
	m.name = name
	if m.active != nil {
		m.active.Activate()
	}
}

// Active returns the active tool, or nil.
func (m *Manager) Active() Tool { return m.active }

// ActiveName returns the name the active tool was registered under.
func (m *Manager) ActiveName() string { return m.name }

// Press forwards a stroke start to the active tool.
func (m *Manager) Press(x, y float32) {
	if m.active != nil {
		m.active.Press(x, y)
	}
}

// Drag forwards stroke motion to the active tool.
func (m *Manager) Drag(x, y float32) {
	if m.active != nil {
		m.active.Drag(x, y)
	}
}

// Release forwards a stroke end to the active tool.
func (m *Manager) Release(x, y float32) {
	if m.active != nil {
		m.active.Release(x, y)
	}
}

// cellsWithin returns every cell whose center lies within brush world
// units of (x, y). The nearest cell is always included so a minimal
// brush still hits the cell under the cursor. Column-major order keeps
// the result deterministic.
func cellsWithin(x, y, brush, hexRadius float32) []hexgrid.Coord {
	nearest := hexgrid.CoordAt(x, y, hexRadius)
	out := []hexgrid.Coord{nearest}

	colMin := int32(math.Floor(float64((x-brush)/(1.5*hexRadius)))) - 1
	colMax := int32(math.Ceil(float64((x+brush)/(1.5*hexRadius)))) + 1
	rowMin := int32(math.Floor(float64((y-brush)/(hexgrid.Sqrt3*hexRadius)))) - 1
	rowMax := int32(math.Ceil(float64((y+brush)/(hexgrid.Sqrt3*hexRadius)))) + 1

	r2 := brush * brush
	for col := colMin; col <= colMax; col++ {
		for row := rowMin; row <= rowMax; row++ {
			c := hexgrid.Coord{Col: col, Row: row}
			if c == nearest {
				continue
			}
			cx, cy := hexgrid.CenterPosition(c, hexRadius)
			if (x-cx)*(x-cx)+(y-cy)*(y-cy) <= r2 {
				out = append(out, c)
			}
		}
	}
	return out
}
