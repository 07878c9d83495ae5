// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/shapelab/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	ClearColor [4]float32
	// CullBackFaces enables back-face culling with counter-clockwise front faces.
	CullBackFaces bool
}

// Renderer owns the frame-level GL state.
type Renderer struct {
	config Config
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	r := &Renderer{config: cfg}
	r.applyState()
	return r, nil
}

func (r *Renderer) applyState() {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	if r.config.CullBackFaces {
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.BACK)
		gl.FrontFace(gl.CCW)
	} else {
		gl.Disable(gl.CULL_FACE)
	}
	c := r.config.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	if width == r.config.Width && height == r.config.Height {
		return
	}
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the last viewport size.
func (r *Renderer) Size() (width, height int) {
	return r.config.Width, r.config.Height
}

// Begin starts a new frame. GL state is re-applied because the UI backend
// changes it between frames.
func (r *Renderer) Begin() {
	r.applyState()
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// End finishes the current frame.
func (r *Renderer) End() {
	gl.BindVertexArray(0)
	gl.UseProgram(0)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
}
