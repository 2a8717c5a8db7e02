package hexmap

import (
	"github.com/Neonscape/HexaMapper/internal/hexgrid"
)

// Chunk is the dense storage block for a square of cells. Cells that were
// never painted hold the layer's default color.
type Chunk struct {
	cells []Color
}

// Layer stores painted cells for one map layer, organized into sparse
// chunks so the canvas stays unbounded without unbounded memory. The set
// of painted cells is also kept as an insertion-ordered list, which gives
// the instance builder a stable iteration order.
type Layer struct {
	Name    string
	Visible bool

	chunkSize    int32
	defaultColor Color
	chunks       map[hexgrid.ChunkCoord]*Chunk
	painted      map[hexgrid.Coord]int // index into order
	order        []hexgrid.Coord
}

// NewLayer creates an empty layer.
func NewLayer(name string, chunkSize int32, defaultColor Color) *Layer {
	return &Layer{
		Name:         name,
		Visible:      true,
		chunkSize:    chunkSize,
		defaultColor: defaultColor,
		chunks:       make(map[hexgrid.ChunkCoord]*Chunk),
		painted:      make(map[hexgrid.Coord]int),
	}
}

func (l *Layer) chunkAt(cc hexgrid.ChunkCoord) *Chunk {
	ch := l.chunks[cc]
	if ch == nil {
		cells := make([]Color, l.chunkSize*l.chunkSize)
		for i := range cells {
			cells[i] = l.defaultColor
		}
		ch = &Chunk{cells: cells}
		l.chunks[cc] = ch
	}
	return ch
}

func (l *Layer) cellIndex(c hexgrid.Coord) (*Chunk, int32) {
	cc, localCol, localRow := hexgrid.SplitCoord(c, l.chunkSize)
	return l.chunkAt(cc), localCol*l.chunkSize + localRow
}

// SetCell paints a cell. Repainting an already painted cell keeps its
// position in the insertion order.
func (l *Layer) SetCell(c hexgrid.Coord, color Color) {
	chunk, idx := l.cellIndex(c)
	chunk.cells[idx] = color
	if _, ok := l.painted[c]; !ok {
		l.painted[c] = len(l.order)
		l.order = append(l.order, c)
	}
}

// EraseCell restores a cell to the default color. Cells that were never
// painted are left untouched; the return value reports whether anything
// changed.
func (l *Layer) EraseCell(c hexgrid.Coord) bool {
	pos, ok := l.painted[c]
	if !ok {
		return false
	}
	chunk, idx := l.cellIndex(c)
	chunk.cells[idx] = l.defaultColor
	delete(l.painted, c)
	l.order = append(l.order[:pos], l.order[pos+1:]...)
	for i := pos; i < len(l.order); i++ {
		l.painted[l.order[i]] = i
	}
	return true
}

// CellAt returns the cell's color, or the default color if unpainted.
func (l *Layer) CellAt(c hexgrid.Coord) Color {
	cc, localCol, localRow := hexgrid.SplitCoord(c, l.chunkSize)
	ch := l.chunks[cc]
	if ch == nil {
		return l.defaultColor
	}
	return ch.cells[localCol*l.chunkSize+localRow]
}

// IsPainted reports whether the cell carries user paint on this layer.
func (l *Layer) IsPainted(c hexgrid.Coord) bool {
	_, ok := l.painted[c]
	return ok
}

// PaintedCount returns the number of painted cells.
func (l *Layer) PaintedCount() int {
	return len(l.order)
}

// ChunkCount returns the number of allocated chunks.
func (l *Layer) ChunkCount() int {
	return len(l.chunks)
}

// Reset erases all paint and releases every chunk.
func (l *Layer) Reset() {
	l.chunks = make(map[hexgrid.ChunkCoord]*Chunk)
	l.painted = make(map[hexgrid.Coord]int)
	l.order = l.order[:0]
}

func (l *Layer) eachPainted(fn func(hexgrid.Coord)) {
	for _, c := range l.order {
		fn(c)
	}
}
