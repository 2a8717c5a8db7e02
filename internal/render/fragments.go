package render

import "github.com/Neonscape/HexaMapper/internal/hexmap"

// Pure mirrors of the per-fragment shader logic, kept in Go so the
// contract the GLSL implements stays testable without a GL context.

// Draw modes the hex fragment shader switches on.
const (
	DrawModeFilled  = 0
	DrawModeOutline = 1
)

// hexFragmentColor returns what hex.frag.glsl writes for a fragment:
// the per-instance color when filled, the shared uniform when outlining.
func hexFragmentColor(drawMode int, instance, uniform hexmap.Color) hexmap.Color {
	if drawMode == DrawModeOutline {
		return uniform
	}
	return instance
}

// ringDiscards reports whether cursor.frag.glsl discards a fragment at
// normalized distance d from the ring center. Both boundary distances
// survive, so the ring never loses its edge pixels to rounding.
func ringDiscards(d, thickness float32) bool {
	return d > 1.0 || d < 1.0-thickness
}

// gradientAt returns what background.vert.glsl computes for a vertex at
// pixel height y in a viewport of the given height.
func gradientAt(y, height float32, top, bottom hexmap.Color) hexmap.Color {
	return bottom.Mix(top, y/height)
}
