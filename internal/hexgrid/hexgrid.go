// Package hexgrid provides coordinate math and shared geometry for an
// unbounded hexagonal grid. The grid uses odd-q offset coordinates with
// flat-top hexagons: cells advance 1.5 radii per column, and odd columns
// are shifted down by half a cell height.
package hexgrid

import "math"

// Sqrt3 is the height of a flat-top unit hexagon.
const Sqrt3 = 1.7320508075688772

// Coord addresses a single cell on the infinite grid.
type Coord struct {
	Col, Row int32
}

// ChunkCoord addresses a square block of cells.
type ChunkCoord struct {
	X, Y int32
}

// floorDiv rounds the quotient toward negative infinity, so that cells
// with negative coordinates land in the expected chunk.
func floorDiv(a, n int32) int32 {
	q := a / n
	if a%n != 0 && (a < 0) != (n < 0) {
		q--
	}
	return q
}

// floorMod is the remainder matching floorDiv; always in [0, n).
func floorMod(a, n int32) int32 {
	m := a % n
	if m != 0 && (a < 0) != (n < 0) {
		m += n
	}
	return m
}

// SplitCoord returns the chunk containing c and c's local column and row
// inside that chunk.
func SplitCoord(c Coord, chunkSize int32) (chunk ChunkCoord, localCol, localRow int32) {
	chunk = ChunkCoord{floorDiv(c.Col, chunkSize), floorDiv(c.Row, chunkSize)}
	return chunk, floorMod(c.Col, chunkSize), floorMod(c.Row, chunkSize)
}

// CenterPosition returns the world-space center of a cell.
func CenterPosition(c Coord, radius float32) (x, y float32) {
	x = radius * 1.5 * float32(c.Col)
	y = radius * Sqrt3 * (float32(c.Row) + 0.5*float32(floorMod(c.Col, 2)))
	return x, y
}

// CoordAt returns the cell whose center is nearest to the given world
// position. The rounded column/row estimate can be off by one in either
// axis because of the odd-column shift, so the 3x3 neighbourhood around
// the estimate is scanned for the true nearest center.
func CoordAt(x, y, radius float32) Coord {
	col := int32(math.Round(float64(x / (1.5 * radius))))
	row := int32(math.Round(float64(y / (Sqrt3 * radius))))

	best := Coord{col, row}
	bestDist := float32(math.Inf(1))
	for dr := int32(-1); dr <= 1; dr++ {
		for dc := int32(-1); dc <= 1; dc++ {
			cand := Coord{col + dc, row + dr}
			cx, cy := CenterPosition(cand, radius)
			d := (x-cx)*(x-cx) + (y-cy)*(y-cy)
			if d < bestDist {
				bestDist = d
				best = cand
			}
		}
	}
	return best
}

// OutlineVertices returns the six corners of a flat-top hexagon centered
// at the origin, counter-clockwise starting from angle zero. Suitable for
// a line-loop draw.
func OutlineVertices(radius float32) []float32 {
	v := make([]float32, 0, 12)
	for i := 0; i < 6; i++ {
		a := float64(i) * 60 * math.Pi / 180
		v = append(v, radius*float32(math.Cos(a)), radius*float32(math.Sin(a)))
	}
	return v
}

// FilledVertices returns triangle-fan geometry for a solid hexagon: the
// center, the six corners, and the first corner repeated to close the fan.
func FilledVertices(radius float32) []float32 {
	outline := OutlineVertices(radius)
	v := make([]float32, 0, 16)
	v = append(v, 0, 0)
	v = append(v, outline...)
	v = append(v, outline[0], outline[1])
	return v
}
