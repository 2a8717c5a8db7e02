package tools

import (
	"github.com/Neonscape/HexaMapper/internal/hexgrid"
	"github.com/Neonscape/HexaMapper/internal/hexmap"
	"github.com/Neonscape/HexaMapper/internal/history"
)

// EraserTool clears painted cells under a circular brush.
type EraserTool struct {
	engine    *hexmap.Engine
	hist      *history.History
	hexRadius float32

	radius float32
	seen   map[hexgrid.Coord]struct{}
	down   bool
}

// NewEraserTool returns an eraser with a one-hex brush.
func NewEraserTool(engine *hexmap.Engine, hist *history.History, hexRadius float32) *EraserTool {
	return &EraserTool{engine: engine, hist: hist, hexRadius: hexRadius, radius: 1}
}

// SetRadius sets the brush radius in multiples of the hex radius.
func (t *EraserTool) SetRadius(r float32) {
	if r < 1 {
		r = 1
	}
	t.radius = r
}

// Radius returns the brush radius in multiples of the hex radius.
func (t *EraserTool) Radius() float32 { return t.radius }

func (t *EraserTool) Press(x, y float32) {
	t.down = true
	t.seen = make(map[hexgrid.Coord]struct{})
	t.apply(x, y)
}

func (t *EraserTool) Drag(x, y float32) {
	if !t.down {
		return
	}
	t.apply(x, y)
}

func (t *EraserTool) Release(x, y float32) {
	if !t.down {
		return
	}
	t.apply(x, y)
	t.down = false
	t.seen = nil
	t.hist.FinishAction()
}

func (t *EraserTool) Activate() {}

func (t *EraserTool) Deactivate() {
	if t.down {
		t.down = false
		t.seen = nil
		t.hist.FinishAction()
	}
}

func (t *EraserTool) VisualAid() (VisualAid, bool) {
	return VisualAid{Radius: t.radius, Color: hexmap.Color{1, 1, 1, 0.8}, Thickness: 0.1}, true
}

func (t *EraserTool) apply(x, y float32) {
	brush := t.radius * t.hexRadius
	var fresh []hexgrid.Coord
	for _, c := range cellsWithin(x, y, brush, t.hexRadius) {
		if _, ok := t.seen[c]; ok {
			continue
		}
		t.seen[c] = struct{}{}
		fresh = append(fresh, c)
	}
	if len(fresh) == 0 {
		return
	}
	cmd := history.NewEraseCommand(t.engine, fresh)
	if cmd.Empty() {
		return
	}
	t.hist.Execute(cmd)
}
