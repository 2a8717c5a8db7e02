// Package render holds the camera, the instance stream builder, and the
// OpenGL renderer that draws the hex map.
package render

import (
	mgl "github.com/go-gl/mathgl/mgl32"
)

// Rect is an axis-aligned world-space rectangle.
type Rect struct {
	MinX, MinY, MaxX, MaxY float32
}

// Contains reports whether (x, y) lies inside the rectangle, edges
// included.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}

// Expanded grows the rectangle by m on every side.
func (r Rect) Expanded(m float32) Rect {
	return Rect{r.MinX - m, r.MinY - m, r.MaxX + m, r.MaxY + m}
}

// Camera maps between world space and the window. The projection keeps
// a fixed world height of 2/zoom and scales the width by the aspect
// ratio, so resizing the window never stretches the hexes.
type Camera struct {
	pos     mgl.Vec2
	zoom    float32
	width   float32
	height  float32
	minZoom float32
	maxZoom float32

	proj       mgl.Mat4
	view       mgl.Mat4
	dirty      bool
	generation uint64
}

const zoomFactor = 1.1

// NewCamera returns a camera centered on the origin at the default zoom.
func NewCamera(width, height int, minZoom, maxZoom float32) *Camera {
	return &Camera{
		zoom:    0.1,
		width:   float32(width),
		height:  float32(height),
		minZoom: minZoom,
		maxZoom: maxZoom,
		dirty:   true,
	}
}

func (c *Camera) touch() {
	c.dirty = true
	c.generation++
}

func (c *Camera) refresh() {
	if !c.dirty {
		return
	}
	aspect := c.width / c.height
	c.proj = mgl.Ortho2D(-aspect/c.zoom, aspect/c.zoom, -1/c.zoom, 1/c.zoom)
	c.view = mgl.Translate3D(-c.pos.X(), -c.pos.Y(), 0)
	c.dirty = false
}

// Generation increments whenever the camera moves, zooms, or resizes.
// Callers use it to skip re-uploading instance data for unchanged views.
func (c *Camera) Generation() uint64 { return c.generation }

// Position returns the world point at the center of the view.
func (c *Camera) Position() (x, y float32) { return c.pos.X(), c.pos.Y() }

// SetPosition centers the view on a world point.
func (c *Camera) SetPosition(x, y float32) {
	c.pos = mgl.Vec2{x, y}
	c.touch()
}

// Zoom returns the current zoom level.
func (c *Camera) Zoom() float32 { return c.zoom }

// SetZoom sets the zoom level, clamped to the configured range.
func (c *Camera) SetZoom(z float32) {
	if z < c.minZoom {
		z = c.minZoom
	}
	if z > c.maxZoom {
		z = c.maxZoom
	}
	if z == c.zoom {
		return
	}
	c.zoom = z
	c.touch()
}

// ZoomStep zooms in (steps > 0) or out (steps < 0) by a fixed factor
// per step, keeping the world point under the given screen position
// fixed so the map zooms toward the cursor.
func (c *Camera) ZoomStep(steps float32, screenX, screenY float32) {
	if steps == 0 {
		return
	}
	ax, ay := c.ScreenToWorld(screenX, screenY)

	z := c.zoom
	for ; steps >= 1; steps-- {
		z *= zoomFactor
	}
	for ; steps <= -1; steps++ {
		z /= zoomFactor
	}
	c.SetZoom(z)

	bx, by := c.ScreenToWorld(screenX, screenY)
	c.pos = c.pos.Add(mgl.Vec2{ax - bx, ay - by})
	c.touch()
}

// Pan moves the view by a screen-space pixel delta, so the map tracks
// the cursor exactly during a drag.
func (c *Camera) Pan(dx, dy float32) {
	aspect := c.width / c.height
	worldPerPixelX := (2 * aspect / c.zoom) / c.width
	worldPerPixelY := (2 / c.zoom) / c.height
	// Screen y grows downward, world y grows upward.
	c.pos = c.pos.Add(mgl.Vec2{-dx * worldPerPixelX, dy * worldPerPixelY})
	c.touch()
}

// Resize updates the viewport dimensions in pixels.
func (c *Camera) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	c.width = float32(width)
	c.height = float32(height)
	c.touch()
}

// Size returns the viewport dimensions in pixels.
func (c *Camera) Size() (width, height float32) { return c.width, c.height }

// Projection returns the orthographic projection matrix.
func (c *Camera) Projection() mgl.Mat4 {
	c.refresh()
	return c.proj
}

// View returns the view matrix.
func (c *Camera) View() mgl.Mat4 {
	c.refresh()
	return c.view
}

// ScreenToWorld converts window pixel coordinates (origin top-left,
// y down) to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) (x, y float32) {
	c.refresh()
	ndc := mgl.Vec4{2*sx/c.width - 1, 1 - 2*sy/c.height, 0, 1}
	world := c.proj.Mul4(c.view).Inv().Mul4x1(ndc)
	return world.X(), world.Y()
}

// WorldRect returns the world-space rectangle the camera can see.
func (c *Camera) WorldRect() Rect {
	aspect := c.width / c.height
	halfW := aspect / c.zoom
	halfH := 1 / c.zoom
	return Rect{
		MinX: c.pos.X() - halfW,
		MinY: c.pos.Y() - halfH,
		MaxX: c.pos.X() + halfW,
		MaxY: c.pos.Y() + halfH,
	}
}
