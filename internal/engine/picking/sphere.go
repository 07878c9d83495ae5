package picking

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/shapelab/pkg/math"
)

// Sphere is a bounding sphere.
type Sphere struct {
	Center math.Vec3
	Radius float32
}

// IntersectSphere solves |O + tD - C|^2 = r^2 for t. The smaller positive
// root wins; if only the larger root is positive the ray started inside.
func (r Ray) IntersectSphere(s Sphere) (t float32, hit bool) {
	oc := r.Origin.Sub(s.Center)
	a := r.Direction.Dot(r.Direction)
	b := 2 * oc.Dot(r.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	if a == 0 {
		return 0, false
	}

	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, false
	}

	sq := math32.Sqrt(disc)
	t1 := (-b - sq) / (2 * a)
	t2 := (-b + sq) / (2 * a)

	if t1 > 0 {
		return t1, true
	}
	if t2 > 0 {
		return t2, true
	}
	return 0, false
}
