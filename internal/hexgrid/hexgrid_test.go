package hexgrid

import (
	"math"
	"testing"
)

func TestCenterPositionOddQ(t *testing.T) {
	cases := []struct {
		coord Coord
		x, y  float32
	}{
		{Coord{0, 0}, 0, 0},
		{Coord{1, 0}, 1.5, Sqrt3 * 0.5},
		{Coord{2, 0}, 3, 0},
		{Coord{0, 1}, 0, Sqrt3},
		{Coord{-1, 0}, -1.5, Sqrt3 * 0.5}, // negative odd columns shift too
		{Coord{-2, -1}, -3, -Sqrt3},
	}
	for _, c := range cases {
		x, y := CenterPosition(c.coord, 1)
		if !close(x, c.x) || !close(y, c.y) {
			t.Errorf("CenterPosition(%v) = (%v, %v), want (%v, %v)", c.coord, x, y, c.x, c.y)
		}
	}
}

func TestCenterPositionScalesWithRadius(t *testing.T) {
	x1, y1 := CenterPosition(Coord{3, 2}, 1)
	x2, y2 := CenterPosition(Coord{3, 2}, 2.5)
	if !close(x2, x1*2.5) || !close(y2, y1*2.5) {
		t.Errorf("radius scaling broken: (%v,%v) vs (%v,%v)", x1, y1, x2, y2)
	}
}

func TestCoordAtRoundTrip(t *testing.T) {
	for _, radius := range []float32{1, 0.5, 3} {
		for col := int32(-8); col <= 8; col++ {
			for row := int32(-8); row <= 8; row++ {
				want := Coord{col, row}
				x, y := CenterPosition(want, radius)
				got := CoordAt(x, y, radius)
				if got != want {
					t.Fatalf("CoordAt(CenterPosition(%v), r=%v) = %v", want, radius, got)
				}
			}
		}
	}
}

func TestCoordAtNearCenter(t *testing.T) {
	// A point slightly off a center still resolves to that cell.
	x, y := CenterPosition(Coord{4, -3}, 1)
	got := CoordAt(x+0.2, y-0.2, 1)
	if got != (Coord{4, -3}) {
		t.Errorf("CoordAt off-center = %v, want {4 -3}", got)
	}
}

func TestSplitCoord(t *testing.T) {
	cases := []struct {
		coord              Coord
		chunk              ChunkCoord
		localCol, localRow int32
	}{
		{Coord{0, 0}, ChunkCoord{0, 0}, 0, 0},
		{Coord{15, 15}, ChunkCoord{0, 0}, 15, 15},
		{Coord{16, 0}, ChunkCoord{1, 0}, 0, 0},
		{Coord{31, 17}, ChunkCoord{1, 1}, 15, 1},
		{Coord{-1, -1}, ChunkCoord{-1, -1}, 15, 15},
		{Coord{-16, -17}, ChunkCoord{-1, -2}, 0, 15},
	}
	for _, c := range cases {
		chunk, lc, lr := SplitCoord(c.coord, 16)
		if chunk != c.chunk || lc != c.localCol || lr != c.localRow {
			t.Errorf("SplitCoord(%v) = %v,%d,%d want %v,%d,%d",
				c.coord, chunk, lc, lr, c.chunk, c.localCol, c.localRow)
		}
	}
}

func TestOutlineVertices(t *testing.T) {
	v := OutlineVertices(2)
	if len(v) != 12 {
		t.Fatalf("len = %d, want 12", len(v))
	}
	for i := 0; i < 6; i++ {
		x, y := v[2*i], v[2*i+1]
		d := float32(math.Hypot(float64(x), float64(y)))
		if !close(d, 2) {
			t.Errorf("corner %d at distance %v, want 2", i, d)
		}
	}
	// First corner sits on the positive x axis (flat-top orientation).
	if !close(v[0], 2) || !close(v[1], 0) {
		t.Errorf("first corner = (%v, %v), want (2, 0)", v[0], v[1])
	}
}

func TestFilledVerticesFanClosure(t *testing.T) {
	v := FilledVertices(1)
	if len(v) != 16 {
		t.Fatalf("len = %d, want 16", len(v))
	}
	if v[0] != 0 || v[1] != 0 {
		t.Errorf("fan does not start at the center: (%v, %v)", v[0], v[1])
	}
	if v[2] != v[14] || v[3] != v[15] {
		t.Errorf("fan is not closed: first corner (%v, %v), last (%v, %v)", v[2], v[3], v[14], v[15])
	}
}

func close(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}
