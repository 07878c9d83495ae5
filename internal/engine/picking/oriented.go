package picking

import "github.com/Faultbox/shapelab/pkg/math"

// IntersectOBB tests a ray against a box that is axis-aligned in its own
// frame, then rotated by rot about center. local is expressed relative to
// center. Distances stay in world units since rotation preserves length.
func (r Ray) IntersectOBB(local AABB, rot math.Quat, center math.Vec3) (t float32, hit bool) {
	inv := rot.Conjugate()
	objRay := Ray{
		Origin:    inv.Rotate(r.Origin.Sub(center)),
		Direction: inv.Rotate(r.Direction),
	}
	return objRay.IntersectAABB(local)
}
