package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/shapelab/internal/shape"
	"github.com/Faultbox/shapelab/pkg/math"
	"github.com/Faultbox/shapelab/pkg/mesh"
)

// Vertex attribute locations shared with shaders/vertex.glsl.
const (
	attribPosition = 0
	attribColor    = 1
	attribNormal   = 2
)

// Device implements shape.Device on the current GL context.
type Device struct {
	uniforms map[uint32]map[string]int32
}

// NewDevice creates a device. The GL context must be current.
func NewDevice() *Device {
	return &Device{uniforms: make(map[uint32]map[string]int32)}
}

// NewGeometry uploads m into a fresh VAO.
func (d *Device) NewGeometry(m *mesh.Mesh) (shape.Geometry, error) {
	g := &Geometry{}
	gl.GenVertexArrays(1, &g.vao)
	gl.GenBuffers(1, &g.vbo)
	gl.GenBuffers(1, &g.ebo)
	if g.vao == 0 || g.vbo == 0 || g.ebo == 0 {
		g.Release()
		return nil, fmt.Errorf("allocate buffers: vao=%d vbo=%d ebo=%d", g.vao, g.vbo, g.ebo)
	}

	gl.BindVertexArray(g.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)

	stride := int32(mesh.FloatsPerVertex * 4)
	gl.VertexAttribPointerWithOffset(attribPosition, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(attribPosition)
	gl.VertexAttribPointerWithOffset(attribColor, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(attribColor)
	gl.VertexAttribPointerWithOffset(attribNormal, 3, gl.FLOAT, false, stride, 6*4)
	gl.EnableVertexAttribArray(attribNormal)

	gl.BindVertexArray(0)

	if err := g.Upload(m); err != nil {
		g.Release()
		return nil, err
	}
	return g, nil
}

// UseProgram binds a program.
func (d *Device) UseProgram(program uint32) {
	gl.UseProgram(program)
}

// SetMat4 sets a mat4 uniform on the bound program.
func (d *Device) SetMat4(program uint32, name string, m *math.Mat4) {
	if loc := d.location(program, name); loc >= 0 {
		gl.UniformMatrix4fv(loc, 1, false, m.Ptr())
	}
}

// SetVec3 sets a vec3 uniform on the bound program.
func (d *Device) SetVec3(program uint32, name string, v math.Vec3) {
	if loc := d.location(program, name); loc >= 0 {
		gl.Uniform3f(loc, v.X, v.Y, v.Z)
	}
}

// location caches uniform lookups per program. Missing uniforms are -1.
func (d *Device) location(program uint32, name string) int32 {
	byName, ok := d.uniforms[program]
	if !ok {
		byName = make(map[string]int32)
		d.uniforms[program] = byName
	}
	loc, ok := byName[name]
	if !ok {
		loc = gl.GetUniformLocation(program, gl.Str(name+"\x00"))
		byName[name] = loc
	}
	return loc
}

// Geometry is a VAO with interleaved vertex and index buffers.
type Geometry struct {
	vao, vbo, ebo uint32
	count         int32
	mode          uint32
}

// Upload replaces the buffer contents.
func (g *Geometry) Upload(m *mesh.Mesh) error {
	if len(m.Vertices) == 0 || len(m.Indices) == 0 {
		return fmt.Errorf("upload: empty mesh (%d vertices, %d indices)", len(m.Vertices), len(m.Indices))
	}
	data := m.Interleave()

	gl.BindVertexArray(g.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)
	gl.BindVertexArray(0)

	g.count = int32(len(m.Indices))
	g.mode = gl.TRIANGLES
	if m.Primitive == mesh.Lines {
		g.mode = gl.LINES
	}
	return nil
}

// Draw issues the indexed draw call.
func (g *Geometry) Draw() {
	if g.vao == 0 || g.count == 0 {
		return
	}
	gl.BindVertexArray(g.vao)
	gl.DrawElements(g.mode, g.count, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Release deletes the buffers. Safe to call more than once.
func (g *Geometry) Release() {
	if g.ebo != 0 {
		gl.DeleteBuffers(1, &g.ebo)
		g.ebo = 0
	}
	if g.vbo != 0 {
		gl.DeleteBuffers(1, &g.vbo)
		g.vbo = 0
	}
	if g.vao != 0 {
		gl.DeleteVertexArrays(1, &g.vao)
		g.vao = 0
	}
	g.count = 0
}
