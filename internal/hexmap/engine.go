// Package hexmap owns the painted-cell data of the map: a stack of
// sparse, chunked layers keyed by hex grid coordinates. The rendering
// core only ever reads from it; all mutation comes from tools and
// commands driven by the host event loop.
package hexmap

import (
	"fmt"

	"github.com/Neonscape/HexaMapper/internal/applog"
	"github.com/Neonscape/HexaMapper/internal/hexgrid"
)

// CellRecord is one painted cell as handed to the instance builder.
type CellRecord struct {
	Coord hexgrid.Coord
	Color Color
}

// Engine manages the layer stack and tracks a version counter so the
// renderer can skip instance rebuilds when nothing changed.
type Engine struct {
	chunkSize    int32
	defaultColor Color
	layers       []*Layer
	active       int
	version      uint64
}

// NewEngine creates an engine with a single empty layer.
func NewEngine(chunkSize int32, defaultColor Color) *Engine {
	e := &Engine{
		chunkSize:    chunkSize,
		defaultColor: defaultColor,
	}
	e.layers = []*Layer{NewLayer("Layer 0", chunkSize, defaultColor)}
	return e
}

// DefaultColor returns the color unpainted cells composite to.
func (e *Engine) DefaultColor() Color { return e.defaultColor }

// Version increases on every mutation of the engine's data or layer
// stack. Equal versions guarantee identical PaintedCells output.
func (e *Engine) Version() uint64 { return e.version }

// Layers returns the layer stack, bottom first.
func (e *Engine) Layers() []*Layer { return e.layers }

// ActiveLayer returns the layer receiving edits.
func (e *Engine) ActiveLayer() *Layer { return e.layers[e.active] }

// ActiveIndex returns the index of the active layer.
func (e *Engine) ActiveIndex() int { return e.active }

// SetActive selects the layer receiving edits.
func (e *Engine) SetActive(i int) error {
	if i < 0 || i >= len(e.layers) {
		return fmt.Errorf("hexmap: layer index %d out of range", i)
	}
	e.active = i
	return nil
}

// AddLayer appends a new layer on top of the stack and returns it.
func (e *Engine) AddLayer(name string) *Layer {
	l := NewLayer(name, e.chunkSize, e.defaultColor)
	e.layers = append(e.layers, l)
	e.version++
	applog.Logger().Debug("layer added", "name", name, "layers", len(e.layers))
	return l
}

// RemoveLayer deletes the layer at i. The last remaining layer cannot be
// removed.
func (e *Engine) RemoveLayer(i int) error {
	if i < 0 || i >= len(e.layers) {
		return fmt.Errorf("hexmap: layer index %d out of range", i)
	}
	if len(e.layers) == 1 {
		return fmt.Errorf("hexmap: cannot remove the last layer")
	}
	e.layers = append(e.layers[:i], e.layers[i+1:]...)
	if e.active >= len(e.layers) {
		e.active = len(e.layers) - 1
	}
	e.version++
	return nil
}

// MoveLayer reorders the layer at from to position to.
func (e *Engine) MoveLayer(from, to int) error {
	if from < 0 || from >= len(e.layers) || to < 0 || to >= len(e.layers) {
		return fmt.Errorf("hexmap: layer move %d -> %d out of range", from, to)
	}
	if from == to {
		return nil
	}
	l := e.layers[from]
	rest := append(e.layers[:from:from], e.layers[from+1:]...)
	e.layers = append(rest[:to:to], append([]*Layer{l}, rest[to:]...)...)
	e.version++
	return nil
}

// SetCell paints a cell on the active layer.
func (e *Engine) SetCell(c hexgrid.Coord, color Color) {
	e.ActiveLayer().SetCell(c, color)
	e.version++
}

// EraseCell removes paint from a cell on the active layer.
func (e *Engine) EraseCell(c hexgrid.Coord) {
	if e.ActiveLayer().EraseCell(c) {
		e.version++
	}
}

// CellAt reads a cell from the active layer.
func (e *Engine) CellAt(c hexgrid.Coord) Color {
	return e.ActiveLayer().CellAt(c)
}

// SetLayerVisible toggles a layer and bumps the version so the visible
// set is rebuilt.
func (e *Engine) SetLayerVisible(i int, visible bool) error {
	if i < 0 || i >= len(e.layers) {
		return fmt.Errorf("hexmap: layer index %d out of range", i)
	}
	if e.layers[i].Visible != visible {
		e.layers[i].Visible = visible
		e.version++
	}
	return nil
}

// CompositeCell returns the color the map shows at c: the top-most
// visible layer with paint wins, otherwise the default color.
func (e *Engine) CompositeCell(c hexgrid.Coord) Color {
	for i := len(e.layers) - 1; i >= 0; i-- {
		l := e.layers[i]
		if l.Visible && l.IsPainted(c) {
			return l.CellAt(c)
		}
	}
	return e.defaultColor
}

// PaintedCells returns one composited record per cell painted on any
// visible layer. The order is deterministic for a given engine state:
// layers bottom to top, each in its own insertion order, first
// appearance wins.
func (e *Engine) PaintedCells() []CellRecord {
	seen := make(map[hexgrid.Coord]struct{})
	var out []CellRecord
	for _, l := range e.layers {
		if !l.Visible {
			continue
		}
		l.eachPainted(func(c hexgrid.Coord) {
			if _, ok := seen[c]; ok {
				return
			}
			seen[c] = struct{}{}
			out = append(out, CellRecord{Coord: c, Color: e.CompositeCell(c)})
		})
	}
	return out
}

// Reset erases every layer.
func (e *Engine) Reset() {
	for _, l := range e.layers {
		l.Reset()
	}
	e.version++
	applog.Logger().Debug("map reset")
}
