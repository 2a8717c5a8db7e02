package render

import (
	"math"

	"github.com/Neonscape/HexaMapper/internal/hexgrid"
	"github.com/Neonscape/HexaMapper/internal/hexmap"
)

// floatsPerInstance is the per-hex layout the instance buffer carries:
// center x, center y, then RGBA.
const floatsPerInstance = 6

// BuildInstances flattens painted cells into the per-instance stream,
// dropping cells whose center lies outside the camera's view expanded
// by one hex radius. Cells on the expanded edge are kept; culling must
// never clip a hex that still touches the viewport. Input order is
// preserved so the draw order is stable across frames.
func BuildInstances(cells []hexmap.CellRecord, cam *Camera, hexRadius float32) []float32 {
	visible := cam.WorldRect().Expanded(hexRadius)
	out := make([]float32, 0, len(cells)*floatsPerInstance)
	for _, cell := range cells {
		x, y := hexgrid.CenterPosition(cell.Coord, hexRadius)
		if !finite(x) || !finite(y) {
			continue
		}
		if !visible.Contains(x, y) {
			continue
		}
		c := cell.Color.Clamped()
		out = append(out, x, y, c[0], c[1], c[2], c[3])
	}
	return out
}

func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
