package render

import (
	_ "embed"
	"encoding/binary"

	"github.com/go-gl/gl/v3.3-core/gl"
	"golang.org/x/mobile/exp/f32"

	"github.com/Neonscape/HexaMapper/internal/applog"
	"github.com/Neonscape/HexaMapper/internal/config"
	"github.com/Neonscape/HexaMapper/internal/hexgrid"
	"github.com/Neonscape/HexaMapper/internal/hexmap"
)

//go:embed shaders/hex.vert.glsl
var hexVertSrc string

//go:embed shaders/hex.frag.glsl
var hexFragSrc string

//go:embed shaders/cursor.vert.glsl
var cursorVertSrc string

//go:embed shaders/cursor.frag.glsl
var cursorFragSrc string

//go:embed shaders/background.vert.glsl
var bgVertSrc string

//go:embed shaders/background.frag.glsl
var bgFragSrc string

// Renderer draws the map with three passes: a full-screen background,
// the painted hexes (filled bodies then outlines, both instanced from
// one shared instance buffer), and an optional cursor ring.
type Renderer struct {
	cfg       config.Config
	hexRadius float32

	hexProg    *ShaderProgram
	cursorProg *ShaderProgram
	bgProg     *ShaderProgram

	filledVAO  uint32
	outlineVAO uint32
	filledVBO  uint32
	outlineVBO uint32

	instanceVBO   uint32
	instanceCap   int // capacity in floats
	instanceCount int32

	bgVAO     uint32
	bgVBO     uint32
	cursorVAO uint32
	cursorVBO uint32

	lastVersion uint64
	lastGen     uint64
	synced      bool
}

// NewRenderer compiles the shader programs and builds the static
// geometry. It requires a current OpenGL 3.3 context.
func NewRenderer(cfg config.Config) (*Renderer, error) {
	r := &Renderer{cfg: cfg, hexRadius: cfg.Engine.HexRadius}

	var err error
	if r.hexProg, err = newShaderProgram(hexVertSrc, hexFragSrc, "hex"); err != nil {
		return nil, err
	}
	r.hexProg.RegisterAttributes("aPos", "aInstancePos", "aInstanceColor")
	r.hexProg.RegisterUniforms("projection", "view", "color", "drawMode")

	if r.cursorProg, err = newShaderProgram(cursorVertSrc, cursorFragSrc, "cursor"); err != nil {
		return nil, err
	}
	r.cursorProg.RegisterAttributes("aPos")
	r.cursorProg.RegisterUniforms("projection", "view", "center_pos", "radius", "color", "thickness")

	if r.bgProg, err = newShaderProgram(bgVertSrc, bgFragSrc, "background"); err != nil {
		return nil, err
	}
	r.bgProg.RegisterAttributes("aPos")
	r.bgProg.RegisterUniforms("topColor", "bottomColor", "viewportHeight")

	gl.GenBuffers(1, &r.instanceVBO)

	r.filledVAO, r.filledVBO = r.newHexVAO(hexgrid.FilledVertices(r.hexRadius))
	r.outlineVAO, r.outlineVBO = r.newHexVAO(hexgrid.OutlineVertices(r.hexRadius))

	gl.GenVertexArrays(1, &r.bgVAO)
	gl.GenBuffers(1, &r.bgVBO)
	gl.BindVertexArray(r.bgVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.bgVBO)
	gl.BufferData(gl.ARRAY_BUFFER, 8*4, nil, gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 8, 0)

	gl.GenVertexArrays(1, &r.cursorVAO)
	gl.GenBuffers(1, &r.cursorVBO)
	gl.BindVertexArray(r.cursorVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.cursorVBO)
	quad := f32.Bytes(binary.LittleEndian,
		-1, -1,
		1, -1,
		-1, 1,
		1, 1,
	)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad), gl.Ptr(quad), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 8, 0)

	gl.BindVertexArray(0)

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	applog.Logger().Debug("renderer ready", "hexRadius", r.hexRadius)
	return r, nil
}

// newHexVAO builds a VAO that sources the hex shape from its own static
// buffer and the center and color from the shared instance buffer.
func (r *Renderer) newHexVAO(verts []float32) (vao, vbo uint32) {
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	data := f32.Bytes(binary.LittleEndian, verts...)
	gl.BufferData(gl.ARRAY_BUFFER, len(data), gl.Ptr(data), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 8, 0)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.instanceVBO)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, floatsPerInstance*4, 0)
	gl.VertexAttribDivisor(1, 1)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 4, gl.FLOAT, false, floatsPerInstance*4, 8)
	gl.VertexAttribDivisor(2, 1)

	gl.BindVertexArray(0)
	return vao, vbo
}

// SyncInstances rebuilds and re-uploads the instance stream when either
// the map contents or the camera changed since the last call. The GPU
// buffer grows by doubling and never shrinks.
func (r *Renderer) SyncInstances(engine *hexmap.Engine, cam *Camera) {
	if r.synced && engine.Version() == r.lastVersion && cam.Generation() == r.lastGen {
		return
	}
	data := BuildInstances(engine.PaintedCells(), cam, r.hexRadius)
	r.instanceCount = int32(len(data) / floatsPerInstance)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.instanceVBO)
	if len(data) > r.instanceCap {
		newCap := r.instanceCap
		if newCap == 0 {
			newCap = 256 * floatsPerInstance
		}
		for newCap < len(data) {
			newCap *= 2
		}
		gl.BufferData(gl.ARRAY_BUFFER, newCap*4, nil, gl.DYNAMIC_DRAW)
		r.instanceCap = newCap
		applog.Logger().Debug("instance buffer grown", "floats", newCap)
	}
	if len(data) > 0 {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(data)*4, gl.Ptr(data))
	}

	r.lastVersion = engine.Version()
	r.lastGen = cam.Generation()
	r.synced = true
}

// Resize updates the GL viewport and the pixel-space background quad.
func (r *Renderer) Resize(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	w, h := float32(width), float32(height)
	quad := f32.Bytes(binary.LittleEndian,
		0, 0,
		w, 0,
		0, h,
		w, h,
	)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.bgVBO)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(quad), gl.Ptr(quad))
}

// DrawBackground fills the window with the configured gradient, or a
// flat color when the mode is solid.
func (r *Renderer) DrawBackground(cam *Camera) {
	top, bottom := r.cfg.Background.GradColor0, r.cfg.Background.GradColor1
	if r.cfg.Background.Mode == "solid" {
		top, bottom = r.cfg.Background.SolidColor, r.cfg.Background.SolidColor
	}
	_, h := cam.Size()

	r.bgProg.Use()
	r.bgProg.SetUniformFv("topColor", top[:])
	r.bgProg.SetUniformFv("bottomColor", bottom[:])
	r.bgProg.SetUniformF("viewportHeight", h)
	gl.BindVertexArray(r.bgVAO)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	gl.BindVertexArray(0)
}

// DrawHexes renders the visible cells: filled bodies with per-instance
// colors, then the shared outline color on top.
func (r *Renderer) DrawHexes(cam *Camera) {
	if r.instanceCount == 0 {
		return
	}
	proj := cam.Projection()
	view := cam.View()

	r.hexProg.Use()
	r.hexProg.SetUniformMatrix("projection", proj[:])
	r.hexProg.SetUniformMatrix("view", view[:])

	r.hexProg.SetUniformI("drawMode", 0)
	gl.BindVertexArray(r.filledVAO)
	gl.DrawArraysInstanced(gl.TRIANGLE_FAN, 0, 8, r.instanceCount)

	r.hexProg.SetUniformI("drawMode", 1)
	oc := r.cfg.Custom.OutlineColor
	r.hexProg.SetUniformFv("color", oc[:])
	gl.LineWidth(r.cfg.Custom.OutlineWidth)
	gl.BindVertexArray(r.outlineVAO)
	gl.DrawArraysInstanced(gl.LINE_LOOP, 0, 6, r.instanceCount)
	gl.BindVertexArray(0)
}

// DrawCursor renders the tool ring at a world position. The radius is
// in multiples of the hex radius, matching the brush setting.
func (r *Renderer) DrawCursor(cam *Camera, x, y, radius float32, color hexmap.Color, thickness float32) {
	proj := cam.Projection()
	view := cam.View()

	r.cursorProg.Use()
	r.cursorProg.SetUniformMatrix("projection", proj[:])
	r.cursorProg.SetUniformMatrix("view", view[:])
	r.cursorProg.SetUniformF("center_pos", x, y)
	r.cursorProg.SetUniformF("radius", radius*r.hexRadius)
	r.cursorProg.SetUniformFv("color", color[:])
	r.cursorProg.SetUniformF("thickness", thickness)
	gl.BindVertexArray(r.cursorVAO)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	gl.BindVertexArray(0)
}

// Frame draws one complete frame except the cursor overlay.
func (r *Renderer) Frame(engine *hexmap.Engine, cam *Camera) {
	r.SyncInstances(engine, cam)
	r.DrawBackground(cam)
	r.DrawHexes(cam)
}

// Close releases all GL objects.
func (r *Renderer) Close() {
	r.hexProg.Delete()
	r.cursorProg.Delete()
	r.bgProg.Delete()
	buffers := []uint32{r.filledVBO, r.outlineVBO, r.instanceVBO, r.bgVBO, r.cursorVBO}
	gl.DeleteBuffers(int32(len(buffers)), &buffers[0])
	arrays := []uint32{r.filledVAO, r.outlineVAO, r.bgVAO, r.cursorVAO}
	gl.DeleteVertexArrays(int32(len(arrays)), &arrays[0])
}
