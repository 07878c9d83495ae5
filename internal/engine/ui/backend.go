// Package ui provides the ImGui window backend and the viewer's control panels.
package ui

import (
	"fmt"
	"sync/atomic"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/shapelab/internal/logger"
)

// Config holds backend window settings.
type Config struct {
	Title      string
	Width      int
	Height     int
	ClearColor [4]float32
	// TargetFPS caps the frame rate; 0 leaves pacing to the backend.
	TargetFPS int
}

// Backend wraps the ImGui SDL backend.
type Backend struct {
	backend backend.Backend[sdlbackend.SDLWindowFlags]

	// Written by the backend's size callback.
	width  atomic.Int32
	height atomic.Int32
}

// NewBackend creates the window, the ImGui context and the GL bindings.
func NewBackend(cfg Config) (*Backend, error) {
	b := &Backend{}
	b.width.Store(int32(cfg.Width))
	b.height.Store(int32(cfg.Height))

	var err error
	b.backend, err = backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}

	b.backend.SetAfterCreateContextHook(func() {
		imgui.StyleColorsDark()
	})

	c := cfg.ClearColor
	b.backend.SetBgColor(imgui.NewVec4(c[0], c[1], c[2], c[3]))
	b.backend.CreateWindow(cfg.Title, cfg.Width, cfg.Height)

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("init opengl: %w", err)
	}

	b.backend.SetSizeChangeCallback(func(w, h int) {
		b.width.Store(int32(w))
		b.height.Store(int32(h))
	})
	if cfg.TargetFPS > 0 {
		b.backend.SetTargetFPS(uint(cfg.TargetFPS))
	}

	logger.Info("window created",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.String("gl", gl.GoStr(gl.GetString(gl.VERSION))),
	)
	return b, nil
}

// Run starts the main render loop. It returns when the window closes.
func (b *Backend) Run(renderFunc func()) {
	b.backend.Run(renderFunc)
}

// RequestClose asks the backend to leave Run after the current frame.
func (b *Backend) RequestClose() {
	b.backend.SetShouldClose(true)
}

// WindowSize returns the last size reported by the window system in logical units.
func (b *Backend) WindowSize() (int, int) {
	return int(b.width.Load()), int(b.height.Load())
}

// PixelSize returns the drawable size in pixels.
func PixelSize() (int, int) {
	io := imgui.CurrentIO()
	size := io.DisplaySize()
	scale := io.DisplayFramebufferScale()
	return int(size.X * scale.X), int(size.Y * scale.Y)
}

// Viewport returns the main viewport work area.
func Viewport() (posX, posY, width, height float32) {
	viewport := imgui.MainViewport()
	workPos := viewport.WorkPos()
	workSize := viewport.WorkSize()
	return workPos.X, workPos.Y, workSize.X, workSize.Y
}

// IsKeyPressed checks if a key was pressed this frame.
func IsKeyPressed(key imgui.Key) bool {
	return imgui.IsKeyChordPressed(imgui.KeyChord(key))
}
