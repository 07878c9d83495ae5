package renderer

import (
	"fmt"
	"unsafe"

	"go.uber.org/zap"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/shapelab/internal/logger"
	"github.com/Faultbox/shapelab/pkg/math"
)

const triangleVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aColor;

uniform mat4 transform;

out vec3 vertexColor;

void main() {
	gl_Position = transform * vec4(aPos, 1.0);
	vertexColor = aColor;
}
`

const triangleFragmentShader = `
#version 410 core

in vec3 vertexColor;
out vec4 FragColor;

void main() {
	FragColor = vec4(vertexColor, 1.0);
}
`

// Triangle draws a single colored triangle spun about the screen normal.
type Triangle struct {
	program   uint32
	transform int32
	vao       uint32
	vbo       uint32
	angle     float32
	aspect    float32
}

// NewTriangle compiles the built-in shaders and uploads the triangle.
func NewTriangle() (*Triangle, error) {
	program, err := Compiler{}.CompileProgram(triangleVertexShader, triangleFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("triangle shader: %w", err)
	}

	t := &Triangle{
		program:   program,
		transform: gl.GetUniformLocation(program, gl.Str("transform\x00")),
		aspect:    1,
	}

	// Position (x, y, z) + color (r, g, b)
	vertices := []float32{
		0.0, 0.5, 0.0, 1.0, 0.0, 0.0, // Top - Red
		-0.5, -0.5, 0.0, 0.0, 1.0, 0.0, // Bottom Left - Green
		0.5, -0.5, 0.0, 0.0, 0.0, 1.0, // Bottom Right - Blue
	}

	gl.GenVertexArrays(1, &t.vao)
	gl.BindVertexArray(t.vao)

	gl.GenBuffers(1, &t.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, t.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 6*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, 6*4, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	logger.Debug("triangle created",
		zap.Uint32("vao", t.vao),
		zap.Uint32("vbo", t.vbo),
	)
	return t, nil
}

// SetAspect keeps the triangle undistorted on non-square viewports.
func (t *Triangle) SetAspect(width, height int) {
	if width > 0 && height > 0 {
		t.aspect = float32(width) / float32(height)
	}
}

// Update advances the spin by speed degrees per second over dt seconds.
func (t *Triangle) Update(speed, dt float32) {
	t.angle = math.WrapDegrees(t.angle + speed*dt)
}

// Angle returns the current spin in degrees.
func (t *Triangle) Angle() float32 {
	return t.angle
}

// Draw renders the triangle.
func (t *Triangle) Draw() {
	m := math.Scale(1/t.aspect, 1, 1).Mul(math.RotateZ(math.Radians(t.angle)))

	gl.UseProgram(t.program)
	gl.UniformMatrix4fv(t.transform, 1, false, m.Ptr())
	gl.BindVertexArray(t.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.BindVertexArray(0)
}

// Close releases the GL resources.
func (t *Triangle) Close() {
	if t.vao != 0 {
		gl.DeleteVertexArrays(1, &t.vao)
		t.vao = 0
	}
	if t.vbo != 0 {
		gl.DeleteBuffers(1, &t.vbo)
		t.vbo = 0
	}
	if t.program != 0 {
		gl.DeleteProgram(t.program)
		t.program = 0
	}
}
