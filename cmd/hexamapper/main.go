// Command hexamapper is an infinite-canvas hexagonal map painter.
//
// Controls: left mouse paints with the active tool, middle mouse pans,
// the scroll wheel zooms toward the cursor. D, E and P select the draw,
// eraser and dropper tools; U undoes and R redoes the last stroke.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/Neonscape/HexaMapper/internal/applog"
	"github.com/Neonscape/HexaMapper/internal/config"
	"github.com/Neonscape/HexaMapper/internal/hexmap"
	"github.com/Neonscape/HexaMapper/internal/history"
	"github.com/Neonscape/HexaMapper/internal/render"
	"github.com/Neonscape/HexaMapper/internal/tools"
)

const (
	winWidth  = 800
	winHeight = 600
)

func init() {
	// GLFW event handling must run on the main thread.
	runtime.LockOSThread()
}

type app struct {
	window   *glfw.Window
	engine   *hexmap.Engine
	hist     *history.History
	cam      *render.Camera
	renderer *render.Renderer
	tools    *tools.Manager
	draw     *tools.DrawTool

	cursorX, cursorY float64
	panning          bool
	stroking         bool
	erasing          bool   // right-button stroke in progress
	savedTool        string // tool to restore after an eraser stroke
}

func main() {
	configPath := flag.String("config", "config.yml", "path to the configuration file")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	applog.SetLogger(logger)

	if err := run(*configPath); err != nil {
		logger.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(winWidth, winHeight, "HexaMapper", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		return fmt.Errorf("init opengl: %w", err)
	}
	applog.Logger().Info("opengl ready", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	renderer, err := render.NewRenderer(cfg)
	if err != nil {
		return err
	}
	defer renderer.Close()

	a := &app{
		window:   window,
		engine:   hexmap.NewEngine(int32(cfg.Engine.ChunkSize), cfg.Custom.DefaultCellColor),
		hist:     &history.History{},
		cam:      render.NewCamera(winWidth, winHeight, cfg.View.MinZoom, cfg.View.MaxZoom),
		renderer: renderer,
		tools:    tools.NewManager(),
	}

	a.draw = tools.NewDrawTool(a.engine, a.hist, cfg.Engine.HexRadius, hexmap.MustColor("#CC3333FF"))
	a.tools.Register("draw", a.draw)
	a.tools.Register("eraser", tools.NewEraserTool(a.engine, a.hist, cfg.Engine.HexRadius))
	a.tools.Register("dropper", tools.NewDropperTool(a.engine, cfg.Engine.HexRadius, a.draw.SetColor))
	a.tools.Activate("draw")

	window.SetCursorPosCallback(a.onCursorPos)
	window.SetMouseButtonCallback(a.onMouseButton)
	window.SetScrollCallback(a.onScroll)
	window.SetKeyCallback(a.onKey)
	window.SetFramebufferSizeCallback(a.onFramebufferSize)

	fbw, fbh := window.GetFramebufferSize()
	a.onFramebufferSize(window, fbw, fbh)

	for !window.ShouldClose() {
		a.renderer.Frame(a.engine, a.cam)
		a.drawCursorAid()
		window.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}

func (a *app) drawCursorAid() {
	tool := a.tools.Active()
	if tool == nil {
		return
	}
	aid, ok := tool.VisualAid()
	if !ok {
		return
	}
	wx, wy := a.cam.ScreenToWorld(float32(a.cursorX), float32(a.cursorY))
	a.renderer.DrawCursor(a.cam, wx, wy, aid.Radius, aid.Color, aid.Thickness)
}

func (a *app) onCursorPos(_ *glfw.Window, x, y float64) {
	dx, dy := x-a.cursorX, y-a.cursorY
	a.cursorX, a.cursorY = x, y
	if a.panning {
		a.cam.Pan(float32(dx), float32(dy))
	}
	if a.stroking {
		wx, wy := a.cam.ScreenToWorld(float32(x), float32(y))
		a.tools.Drag(wx, wy)
	}
}

func (a *app) onMouseButton(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	wx, wy := a.cam.ScreenToWorld(float32(a.cursorX), float32(a.cursorY))
	switch button {
	case glfw.MouseButtonLeft:
		if action == glfw.Press && !a.stroking {
			a.stroking = true
			a.tools.Press(wx, wy)
		} else if action == glfw.Release && a.stroking && !a.erasing {
			a.stroking = false
			a.tools.Release(wx, wy)
		}
	case glfw.MouseButtonRight:
		// Right drag erases regardless of the selected tool.
		if action == glfw.Press && !a.stroking {
			a.erasing = true
			a.stroking = true
			a.savedTool = a.tools.ActiveName()
			a.tools.Activate("eraser")
			a.tools.Press(wx, wy)
		} else if action == glfw.Release && a.erasing {
			a.erasing = false
			a.stroking = false
			a.tools.Release(wx, wy)
			a.tools.Activate(a.savedTool)
		}
	case glfw.MouseButtonMiddle:
		a.panning = action == glfw.Press
	}
}

func (a *app) onScroll(_ *glfw.Window, _, yoff float64) {
	a.cam.ZoomStep(float32(yoff), float32(a.cursorX), float32(a.cursorY))
}

func (a *app) onKey(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	switch key {
	case glfw.KeyEscape:
		w.SetShouldClose(true)
	case glfw.KeyU:
		a.hist.Undo()
	case glfw.KeyR:
		a.hist.Redo()
	case glfw.KeyD:
		a.tools.Activate("draw")
	case glfw.KeyE:
		a.tools.Activate("eraser")
	case glfw.KeyP:
		a.tools.Activate("dropper")
	case glfw.KeyLeftBracket:
		a.draw.SetRadius(a.draw.Radius() - 1)
	case glfw.KeyRightBracket:
		a.draw.SetRadius(a.draw.Radius() + 1)
	}
}

func (a *app) onFramebufferSize(_ *glfw.Window, width, height int) {
	a.cam.Resize(width, height)
	a.renderer.Resize(width, height)
}
