package tools

import (
	"github.com/Neonscape/HexaMapper/internal/hexgrid"
	"github.com/Neonscape/HexaMapper/internal/hexmap"
	"github.com/Neonscape/HexaMapper/internal/history"
)

// DrawTool paints cells under a circular brush. Cells already painted
// during the current stroke are skipped so dragging back over them does
// not stack duplicate commands.
type DrawTool struct {
	engine    *hexmap.Engine
	hist      *history.History
	hexRadius float32

	color  hexmap.Color
	radius float32 // brush radius in multiples of the hex radius
	seen   map[hexgrid.Coord]struct{}
	down   bool
}

// NewDrawTool returns a draw tool with a one-hex brush painting color.
func NewDrawTool(engine *hexmap.Engine, hist *history.History, hexRadius float32, color hexmap.Color) *DrawTool {
	return &DrawTool{
		engine:    engine,
		hist:      hist,
		hexRadius: hexRadius,
		color:     color,
		radius:    1,
	}
}

// SetColor changes the brush color for subsequent strokes.
func (t *DrawTool) SetColor(c hexmap.Color) { t.color = c }

// Color returns the current brush color.
func (t *DrawTool) Color() hexmap.Color { return t.color }

// SetRadius sets the brush radius in multiples of the hex radius.
// Values below 1 are clamped so the brush always covers one cell.
func (t *DrawTool) SetRadius(r float32) {
	if r < 1 {
		r = 1
	}
	t.radius = r
}

// Radius returns the brush radius in multiples of the hex radius.
func (t *DrawTool) Radius() float32 { return t.radius }

func (t *DrawTool) Press(x, y float32) {
	t.down = true
	t.seen = make(map[hexgrid.Coord]struct{})
	t.apply(x, y)
}

func (t *DrawTool) Drag(x, y float32) {
	if !t.down {
		return
	}
	t.apply(x, y)
}

func (t *DrawTool) Release(x, y float32) {
	if !t.down {
		return
	}
	t.apply(x, y)
	t.down = false
	t.seen = nil
	t.hist.FinishAction()
}

func (t *DrawTool) Activate() {}

func (t *DrawTool) Deactivate() {
	// A tool switch mid-stroke seals whatever was painted.
	if t.down {
		t.down = false
		t.seen = nil
		t.hist.FinishAction()
	}
}

func (t *DrawTool) VisualAid() (VisualAid, bool) {
	return VisualAid{Radius: t.radius, Color: t.color, Thickness: 0.1}, true
}

func (t *DrawTool) apply(x, y float32) {
	brush := t.radius * t.hexRadius
	for _, c := range cellsWithin(x, y, brush, t.hexRadius) {
		if _, ok := t.seen[c]; ok {
			continue
		}
		t.seen[c] = struct{}{}
		t.hist.Execute(history.NewPaintCommand(t.engine, c, t.color))
	}
}
