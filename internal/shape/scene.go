package shape

import (
	"github.com/Faultbox/shapelab/internal/engine/picking"
	"github.com/Faultbox/shapelab/pkg/math"
)

// Scene is the flat list of entities the demo draws and picks from.
// Boxes come before tori in every iteration.
type Scene struct {
	boxes        []*Box
	tori         []*Torus
	orientedPick bool
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{}
}

// SetOrientedPicking switches box picking between the axis-aligned bounds
// and a rotation-aware test.
func (s *Scene) SetOrientedPicking(on bool) {
	s.orientedPick = on
	for _, b := range s.boxes {
		b.SetOrientedPicking(on)
	}
}

// AddBox appends a box.
func (s *Scene) AddBox(b *Box) {
	b.SetOrientedPicking(s.orientedPick)
	s.boxes = append(s.boxes, b)
}

// AddTorus appends a torus.
func (s *Scene) AddTorus(t *Torus) {
	s.tori = append(s.tori, t)
}

// Shapes returns every entity, boxes first.
func (s *Scene) Shapes() []Shape {
	out := make([]Shape, 0, len(s.boxes)+len(s.tori))
	for _, b := range s.boxes {
		out = append(out, b)
	}
	for _, t := range s.tori {
		out = append(out, t)
	}
	return out
}

// Len returns the number of entities.
func (s *Scene) Len() int {
	return len(s.boxes) + len(s.tori)
}

// Update advances every entity by dt seconds.
func (s *Scene) Update(dt float32) {
	for _, sh := range s.Shapes() {
		sh.Update(dt)
	}
}

// Render sets the lighting uniforms once per program, then draws every entity.
func (s *Scene) Render(dev Device, view, projection *math.Mat4, lightPos, viewPos math.Vec3) {
	shapes := s.Shapes()
	if dev != nil {
		seen := make(map[uint32]bool)
		for _, sh := range shapes {
			p := sh.Program()
			if p == 0 || seen[p] {
				continue
			}
			seen[p] = true
			dev.UseProgram(p)
			dev.SetVec3(p, "lightPos", lightPos)
			dev.SetVec3(p, "viewPos", viewPos)
		}
	}
	for _, sh := range shapes {
		sh.Render(view, projection)
	}
}

// Pick returns the entity with the closest hit along r.
func (s *Scene) Pick(r picking.Ray) (Shape, float32, bool) {
	return picking.Closest(r, s.Shapes(), func(sh Shape, r picking.Ray) (float32, bool) {
		return sh.IntersectRay(r)
	})
}

// Destroy releases every entity's geometry and empties the scene.
func (s *Scene) Destroy() {
	for _, sh := range s.Shapes() {
		sh.Destroy()
	}
	s.boxes = nil
	s.tori = nil
}
