// Package app runs the interactive shape viewer.
package app

import (
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/shapelab"
	"github.com/Faultbox/shapelab/internal/config"
	"github.com/Faultbox/shapelab/internal/engine/camera"
	"github.com/Faultbox/shapelab/internal/engine/debug"
	"github.com/Faultbox/shapelab/internal/engine/framebuffer"
	"github.com/Faultbox/shapelab/internal/engine/renderer"
	"github.com/Faultbox/shapelab/internal/engine/shader"
	"github.com/Faultbox/shapelab/internal/engine/timing"
	"github.com/Faultbox/shapelab/internal/engine/ui"
	"github.com/Faultbox/shapelab/internal/logger"
	"github.com/Faultbox/shapelab/internal/shape"
	"github.com/Faultbox/shapelab/internal/viewer"
	"github.com/Faultbox/shapelab/pkg/math"
)

// Title is the viewer window title.
const Title = "ShapeLab"

const statusDuration = 3 * time.Second

// App is the shape viewer.
type App struct {
	cfg *config.Config

	backend  *ui.Backend
	renderer *renderer.Renderer
	target   *framebuffer.Framebuffer
	device   *renderer.Device
	shaders  *shader.Cache

	scene      *shape.Scene
	camera     *camera.OrbitCamera
	controller *viewer.Controller
	outline    shape.Geometry
	light      math.Vec3

	clock       *timing.Limiter
	screenshots *debug.ScreenshotCapture
	status      string
	statusUntil time.Time
}

// New opens the window and builds the scene described by cfg.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg:         cfg,
		light:       math.Vec3FromArray(cfg.Scene.LightPosition),
		clock:       timing.NewLimiter(0),
		screenshots: debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "shapelab"),
	}

	var err error
	a.backend, err = ui.NewBackend(ui.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		ClearColor: cfg.Graphics.ClearColor,
		TargetFPS:  cfg.Graphics.TargetFPS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	a.renderer, err = renderer.New(renderer.Config{
		Width:         cfg.Graphics.Width,
		Height:        cfg.Graphics.Height,
		ClearColor:    cfg.Graphics.ClearColor,
		CullBackFaces: cfg.Graphics.CullBackFaces,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.target, err = framebuffer.New(cfg.Graphics.Width, cfg.Graphics.Height)
	if err != nil {
		return nil, fmt.Errorf("failed to create scene target: %w", err)
	}

	a.device = renderer.NewDevice()
	a.shaders = shader.NewCache(shaderFS(cfg.Shaders), renderer.Compiler{}, shader.ReporterFunc(showError))

	a.scene, err = viewer.BuildScene(cfg.Scene, shape.Env{
		Device:         a.device,
		Programs:       a.shaders,
		VertexShader:   cfg.Shaders.Vertex,
		FragmentShader: cfg.Shaders.Fragment,
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to build scene: %w", err)
	}

	a.camera = camera.NewOrbitCamera(viewer.CameraConfig(cfg.Camera))
	a.controller = viewer.NewController(a.camera, a.scene, cfg.Camera.DragGain)

	logger.Info("viewer initialized", zap.Int("shapes", a.scene.Len()))
	return a, nil
}

// shaderFS returns the directory holding the shader sources, or the
// embedded copies when none is found on disk.
func shaderFS(cfg config.ShaderConfig) fs.FS {
	if dir, ok := viewer.ShaderDir(cfg.Dir, cfg.Vertex); ok {
		logger.Info("loading shaders from disk", zap.String("dir", dir))
		return os.DirFS(dir)
	}
	logger.Info("using embedded shaders")
	return shapelab.Shaders
}

// showError blocks on a native message box.
func showError(title, message string) {
	dialog.Message("%s", message).Title(title).Error()
}

// Run enters the frame loop and returns when the window is closed.
func (a *App) Run() {
	logger.Info("starting frame loop")
	a.backend.Run(a.frame)
}

// Close releases GPU resources. The scene goes before the shader cache.
func (a *App) Close() {
	if a.outline != nil {
		a.outline.Release()
		a.outline = nil
	}
	if a.scene != nil {
		a.scene.Destroy()
	}
	if a.shaders != nil {
		a.shaders.Close()
	}
	if a.target != nil {
		a.target.Destroy()
	}
	logger.Info("viewer closed")
}

func (a *App) frame() {
	dt := a.clock.Begin()

	if ui.IsKeyPressed(imgui.KeyEscape) {
		a.backend.RequestClose()
	}

	x, y, w, h := ui.Viewport()
	if w <= 0 || h <= 0 {
		return
	}
	pw, ph := ui.PixelSize()
	a.target.Resize(pw, ph)

	a.scene.Update(dt)
	a.renderScene(w / h)

	m := ui.SceneView(a.target.ColorTexture(), x, y, w, h)
	a.controller.Update(viewer.Pointer(m), w, h)

	a.drawPanels(pw, ph)

	if ui.IsKeyPressed(imgui.KeyF12) {
		a.takeScreenshot()
	}
	if a.status != "" {
		if time.Now().Before(a.statusUntil) {
			ui.StatusMessage(a.status, w, h)
		} else {
			a.status = ""
		}
	}
}

func (a *App) renderScene(aspect float32) {
	restore := a.target.Bind()
	defer restore()

	a.renderer.Begin()
	view := a.camera.ViewMatrix()
	proj := a.camera.ProjectionMatrix(aspect)
	a.scene.Render(a.device, &view, &proj, a.light, a.camera.Position())
	if a.cfg.Debug.SelectionOutline {
		a.drawOutline(&view, &proj)
	}
	a.renderer.End()
}

// drawOutline draws the pick volume of the shape being dragged.
func (a *App) drawOutline(view, proj *math.Mat4) {
	target := a.controller.Target()
	if target == nil {
		return
	}
	program := target.Program()
	if program == 0 {
		return
	}

	m := debug.SelectionOutline(target.PickBounds(), debug.DefaultOutlinePadding, debug.DefaultOutlineColor)
	if a.outline == nil {
		g, err := a.device.NewGeometry(m)
		if err != nil {
			logger.Warn("selection outline unavailable", zap.Error(err))
			a.cfg.Debug.SelectionOutline = false
			return
		}
		a.outline = g
	} else if err := a.outline.Upload(m); err != nil {
		logger.Warn("selection outline upload failed", zap.Error(err))
		return
	}

	model := math.Identity()
	a.device.UseProgram(program)
	a.device.SetMat4(program, "model", &model)
	a.device.SetMat4(program, "view", view)
	a.device.SetMat4(program, "projection", proj)
	a.outline.Draw()
}

func (a *App) drawPanels(pixelW, pixelH int) {
	ui.FPSOverlay(imgui.CurrentIO().Framerate())

	lw, lh := a.backend.WindowSize()
	save := ui.CameraPanel(a.camera, ui.WindowInfo{
		PixelWidth:    pixelW,
		PixelHeight:   pixelH,
		LogicalWidth:  lw,
		LogicalHeight: lh,
	})
	if save {
		a.saveConfig()
	}

	for _, s := range a.scene.Shapes() {
		ui.ShapePanel(s)
	}
}

func (a *App) saveConfig() {
	viewer.Snapshot(a.cfg, a.camera, a.scene)
	path, err := a.cfg.Save()
	if err != nil {
		logger.Error("failed to save config", zap.Error(err))
		a.setStatus("Save failed: " + err.Error())
		return
	}
	logger.Info("config saved", zap.String("path", path))
	a.setStatus("Saved " + path)
}

func (a *App) takeScreenshot() {
	pixels, w, h := a.target.ReadPixels()
	path, err := a.screenshots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		a.setStatus("Screenshot failed: " + err.Error())
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
	a.setStatus("Screenshot saved: " + path)
}

func (a *App) setStatus(msg string) {
	a.status = msg
	a.statusUntil = time.Now().Add(statusDuration)
}
