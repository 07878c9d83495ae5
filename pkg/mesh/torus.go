package mesh

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/shapelab/pkg/math"
)

// Default tessellation for generated tori.
const (
	DefaultMajorSegments = 48
	DefaultMinorSegments = 24
)

// ErrInvalidTorus is returned for radii or segment counts that cannot form a torus.
var ErrInvalidTorus = errors.New("invalid torus parameters")

// TorusParams controls torus generation. Outer and Inner are the radii of
// the hole-side and outside edges measured from the center.
type TorusParams struct {
	Outer         float32
	Inner         float32
	MajorSegments int
	MinorSegments int
	Color         Color
}

// Validate reports whether the parameters describe a torus.
func (p TorusParams) Validate() error {
	if !(p.Inner > 0 && p.Outer > p.Inner) {
		return fmt.Errorf("%w: need outer > inner > 0, got outer=%g inner=%g", ErrInvalidTorus, p.Outer, p.Inner)
	}
	if p.MajorSegments < 3 || p.MinorSegments < 3 {
		return fmt.Errorf("%w: need at least 3 segments, got %dx%d", ErrInvalidTorus, p.MajorSegments, p.MinorSegments)
	}
	return nil
}

// TubeRadius returns the radius of the tube cross-section.
func (p TorusParams) TubeRadius() float32 {
	return (p.Outer - p.Inner) / 2
}

// RingRadius returns the distance from the center to the tube's center line.
func (p TorusParams) RingRadius() float32 {
	return p.Inner + p.TubeRadius()
}

// Torus generates a torus lying in the XZ plane around the Y axis.
//
// The grid has (major+1) x (minor+1) vertices; the seam rows and columns
// are duplicated. Vertex colors are the base color shaded by
// 0.7 + 0.3*(sin(phi)+1)/2 so the top of the tube reads lighter.
func Torus(p TorusParams) (*Mesh, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	major, minor := p.MajorSegments, p.MinorSegments
	tube := p.TubeRadius()
	ring := p.RingRadius()

	m := &Mesh{
		Vertices: make([]Vertex, 0, (major+1)*(minor+1)),
		Indices:  make([]uint32, 0, major*minor*6),
	}

	for i := 0; i <= major; i++ {
		theta := float32(i) * 2 * math32.Pi / float32(major)
		sinT, cosT := math32.Sincos(theta)

		for j := 0; j <= minor; j++ {
			phi := float32(j) * 2 * math32.Pi / float32(minor)
			sinP, cosP := math32.Sincos(phi)

			r := ring + tube*cosP
			shade := 0.7 + 0.3*(sinP+1)/2

			m.Vertices = append(m.Vertices, Vertex{
				Position: math.Vec3{X: r * cosT, Y: tube * sinP, Z: r * sinT},
				Color:    p.Color.Scale(shade),
				Normal:   math.Vec3{X: cosP * cosT, Y: sinP, Z: cosP * sinT},
			})
		}
	}

	stride := uint32(minor + 1)
	for i := 0; i < major; i++ {
		for j := 0; j < minor; j++ {
			first := uint32(i)*stride + uint32(j)
			second := first + stride
			m.Indices = append(m.Indices,
				first, first+1, second,
				second, first+1, second+1,
			)
		}
	}

	return m, nil
}
