package history

import (
	"github.com/Neonscape/HexaMapper/internal/hexgrid"
	"github.com/Neonscape/HexaMapper/internal/hexmap"
)

// PaintCommand paints one cell and remembers what was there before.
// Undoing a paint on a previously unpainted cell erases it instead of
// writing the default color back, so the cell's painted state round-trips.
type PaintCommand struct {
	engine     *hexmap.Engine
	coord      hexgrid.Coord
	color      hexmap.Color
	prev       hexmap.Color
	wasPainted bool
}

// NewPaintCommand captures the cell's current state on the active layer.
func NewPaintCommand(engine *hexmap.Engine, coord hexgrid.Coord, color hexmap.Color) *PaintCommand {
	return &PaintCommand{
		engine:     engine,
		coord:      coord,
		color:      color,
		prev:       engine.CellAt(coord),
		wasPainted: engine.ActiveLayer().IsPainted(coord),
	}
}

func (c *PaintCommand) Execute() {
	c.engine.SetCell(c.coord, c.color)
}

func (c *PaintCommand) Undo() {
	if c.wasPainted {
		c.engine.SetCell(c.coord, c.prev)
	} else {
		c.engine.EraseCell(c.coord)
	}
}

// EraseCommand erases a set of cells. Cells that carried no paint are
// skipped both ways so undo never invents paint that was never there.
type EraseCommand struct {
	engine *hexmap.Engine
	coords []hexgrid.Coord
	prev   map[hexgrid.Coord]hexmap.Color
}

// NewEraseCommand captures the current color of every painted cell in
// coords on the active layer.
func NewEraseCommand(engine *hexmap.Engine, coords []hexgrid.Coord) *EraseCommand {
	cmd := &EraseCommand{
		engine: engine,
		prev:   make(map[hexgrid.Coord]hexmap.Color),
	}
	for _, coord := range coords {
		if engine.ActiveLayer().IsPainted(coord) {
			cmd.coords = append(cmd.coords, coord)
			cmd.prev[coord] = engine.CellAt(coord)
		}
	}
	return cmd
}

// Empty reports whether the command would change nothing.
func (c *EraseCommand) Empty() bool { return len(c.coords) == 0 }

func (c *EraseCommand) Execute() {
	for _, coord := range c.coords {
		c.engine.EraseCell(coord)
	}
}

func (c *EraseCommand) Undo() {
	for _, coord := range c.coords {
		c.engine.SetCell(coord, c.prev[coord])
	}
}
