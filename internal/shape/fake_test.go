package shape

import (
	"errors"

	"github.com/Faultbox/shapelab/pkg/math"
	"github.com/Faultbox/shapelab/pkg/mesh"
)

type fakeGeometry struct {
	uploads  int
	draws    int
	releases int
	last     *mesh.Mesh
}

func (g *fakeGeometry) Upload(m *mesh.Mesh) error {
	g.uploads++
	g.last = m
	return nil
}

func (g *fakeGeometry) Draw()    { g.draws++ }
func (g *fakeGeometry) Release() { g.releases++ }

type uniformCall struct {
	program uint32
	name    string
}

type fakeDevice struct {
	geometries []*fakeGeometry
	programs   []uint32
	mat4s      []uniformCall
	vec3s      map[uniformCall]math.Vec3
	fail       bool
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{vec3s: make(map[uniformCall]math.Vec3)}
}

func (d *fakeDevice) NewGeometry(m *mesh.Mesh) (Geometry, error) {
	if d.fail {
		return nil, errors.New("out of buffers")
	}
	g := &fakeGeometry{uploads: 1, last: m}
	d.geometries = append(d.geometries, g)
	return g, nil
}

func (d *fakeDevice) UseProgram(program uint32) {
	d.programs = append(d.programs, program)
}

func (d *fakeDevice) SetMat4(program uint32, name string, _ *math.Mat4) {
	d.mat4s = append(d.mat4s, uniformCall{program, name})
}

func (d *fakeDevice) SetVec3(program uint32, name string, v math.Vec3) {
	d.vec3s[uniformCall{program, name}] = v
}

type fakePrograms map[string]uint32

func (p fakePrograms) Program(vertexPath, fragmentPath string) uint32 {
	return p[vertexPath+"|"+fragmentPath]
}

func testEnv(dev *fakeDevice) Env {
	return Env{
		Device:         dev,
		Programs:       fakePrograms{"v.glsl|f.glsl": 7},
		VertexShader:   "v.glsl",
		FragmentShader: "f.glsl",
	}
}
