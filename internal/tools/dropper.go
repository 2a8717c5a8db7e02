package tools

import (
	"github.com/Neonscape/HexaMapper/internal/hexgrid"
	"github.com/Neonscape/HexaMapper/internal/hexmap"
)

// DropperTool samples the composited color of the cell under the cursor
// and hands it to a callback, typically the draw tool's SetColor.
type DropperTool struct {
	engine    *hexmap.Engine
	hexRadius float32
	onPick    func(hexmap.Color)
}

// NewDropperTool returns a dropper reporting picks to onPick.
func NewDropperTool(engine *hexmap.Engine, hexRadius float32, onPick func(hexmap.Color)) *DropperTool {
	return &DropperTool{engine: engine, hexRadius: hexRadius, onPick: onPick}
}

func (t *DropperTool) Press(x, y float32) { t.pick(x, y) }

// Drag keeps sampling so the user can scrub to the wanted color.
func (t *DropperTool) Drag(x, y float32) { t.pick(x, y) }

func (t *DropperTool) Release(x, y float32) { t.pick(x, y) }

func (t *DropperTool) Activate()   {}
func (t *DropperTool) Deactivate() {}

func (t *DropperTool) VisualAid() (VisualAid, bool) {
	return VisualAid{Radius: 1, Color: hexmap.Color{1, 1, 1, 0.5}, Thickness: 0.05}, true
}

func (t *DropperTool) pick(x, y float32) {
	if t.onPick == nil {
		return
	}
	t.onPick(t.engine.CompositeCell(hexgrid.CoordAt(x, y, t.hexRadius)))
}
