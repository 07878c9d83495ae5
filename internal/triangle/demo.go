// Package triangle implements the animated 2D triangle demo loop.
package triangle

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/shapelab/internal/engine/input"
	"github.com/Faultbox/shapelab/internal/engine/renderer"
	"github.com/Faultbox/shapelab/internal/engine/timing"
	"github.com/Faultbox/shapelab/internal/engine/window"
	"github.com/Faultbox/shapelab/internal/logger"
)

// DefaultTargetFPS is the frame rate the loop is paced to when none is set.
const DefaultTargetFPS = 60

// DefaultSpeed is the spin in degrees per second.
const DefaultSpeed = 90

// Config holds demo configuration.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
	TargetFPS  int
	Speed      float32
	ClearColor [4]float32
}

// Demo is the triangle demo instance.
type Demo struct {
	config   Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	triangle *renderer.Triangle
	limiter  *timing.Limiter
	fps      *timing.FPSCounter
}

// New creates the window, GL state and triangle.
func New(cfg Config) (*Demo, error) {
	if cfg.TargetFPS <= 0 {
		cfg.TargetFPS = DefaultTargetFPS
	}
	if cfg.Speed == 0 {
		cfg.Speed = DefaultSpeed
	}

	logger.Info("initializing triangle demo",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Int("target_fps", cfg.TargetFPS),
	)

	d := &Demo{
		config:  cfg,
		limiter: timing.NewLimiter(cfg.TargetFPS),
		fps:     timing.NewFPSCounter(),
	}

	// Create window (this also creates OpenGL context)
	var err error
	d.window, err = window.New(window.Config{
		Title:      cfg.Title,
		Width:      cfg.Width,
		Height:     cfg.Height,
		Fullscreen: cfg.Fullscreen,
		VSync:      cfg.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	width, height := d.window.DrawableSize()
	d.renderer, err = renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		ClearColor: cfg.ClearColor,
	})
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	d.triangle, err = renderer.NewTriangle()
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("failed to create triangle: %w", err)
	}
	d.triangle.SetAspect(width, height)

	d.input = input.New()

	logger.Info("triangle demo initialized")
	return d, nil
}

// Run starts the main loop and returns when the window is closed or ESC is pressed.
func (d *Demo) Run() error {
	d.running = true

	logger.Info("starting triangle loop")

	for d.running {
		dt := d.limiter.Begin()

		// 1. Process input
		if d.input.Update() || d.input.IsKeyPressed(sdl.SCANCODE_ESCAPE) {
			d.running = false
			break
		}
		if _, _, ok := d.input.Resized(); ok {
			// SDL reports logical size; GL wants pixels
			width, height := d.window.DrawableSize()
			d.renderer.Resize(width, height)
			d.triangle.SetAspect(width, height)
		}

		// 2. Update
		d.triangle.Update(d.config.Speed, dt)

		// 3. Render
		d.renderer.Begin()
		d.triangle.Draw()
		d.renderer.End()

		// 4. Present (swap buffers)
		d.window.SwapBuffers()

		if d.fps.Tick(time.Now()) {
			d.window.SetTitle(Title(d.config.Title, d.fps))
			logger.Debug("fps",
				zap.Int("count", d.fps.FPS()),
				zap.Float32("angle", d.triangle.Angle()),
			)
		}

		d.limiter.Wait()
	}

	return nil
}

// Title formats the window title with the last measured frame rate.
func Title(base string, fps fmt.Stringer) string {
	return base + " - " + fps.String()
}

// Close releases the triangle, GL state and window.
func (d *Demo) Close() {
	logger.Info("closing triangle demo")

	if d.triangle != nil {
		d.triangle.Close()
		d.triangle = nil
	}
	if d.window != nil {
		d.window.Close()
		d.window = nil
	}
}
