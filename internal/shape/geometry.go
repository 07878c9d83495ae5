package shape

import (
	"fmt"

	"github.com/Faultbox/shapelab/pkg/math"
	"github.com/Faultbox/shapelab/pkg/mesh"
)

// Device is the GPU surface the entities draw through.
type Device interface {
	NewGeometry(m *mesh.Mesh) (Geometry, error)
	UseProgram(program uint32)
	SetMat4(program uint32, name string, m *math.Mat4)
	SetVec3(program uint32, name string, v math.Vec3)
}

// Geometry is an uploaded mesh owned by exactly one entity.
type Geometry interface {
	// Upload replaces the buffer contents with m.
	Upload(m *mesh.Mesh) error
	Draw()
	// Release frees the GPU buffers. Calling it twice is safe.
	Release()
}

// ProgramSource hands out linked shader programs by source path pair.
// A zero handle means no program is available.
type ProgramSource interface {
	Program(vertexPath, fragmentPath string) uint32
}

// Env is what an entity needs to create its GPU resources. A zero Env
// builds an entity that never initializes but still supports picking.
type Env struct {
	Device         Device
	Programs       ProgramSource
	VertexShader   string
	FragmentShader string
}

func (e Env) program() uint32 {
	if e.Programs == nil || e.VertexShader == "" || e.FragmentShader == "" {
		return 0
	}
	return e.Programs.Program(e.VertexShader, e.FragmentShader)
}

// geometryHandle tracks ownership of one Geometry. The zero value is empty.
type geometryHandle struct {
	gpu         Geometry
	initialized bool
}

func (h *geometryHandle) init(dev Device, m *mesh.Mesh) error {
	if h.initialized || dev == nil {
		return nil
	}
	g, err := dev.NewGeometry(m)
	if err != nil {
		return fmt.Errorf("create geometry: %w", err)
	}
	h.gpu = g
	h.initialized = true
	return nil
}

func (h *geometryHandle) upload(m *mesh.Mesh) error {
	if !h.initialized {
		return nil
	}
	return h.gpu.Upload(m)
}

func (h *geometryHandle) draw() {
	if h.initialized {
		h.gpu.Draw()
	}
}

func (h *geometryHandle) release() {
	if !h.initialized {
		return
	}
	h.gpu.Release()
	h.gpu = nil
	h.initialized = false
}

// take moves the resources out, leaving h empty.
func (h *geometryHandle) take() geometryHandle {
	out := *h
	*h = geometryHandle{}
	return out
}
