// Package picking provides ray casting and object picking utilities.
package picking

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/shapelab/pkg/math"
)

// parallelEpsilon is the direction magnitude below which a ray is treated
// as parallel to a slab.
const parallelEpsilon = 1e-8

// Ray represents a ray in 3D space with origin and direction.
// Direction need not be unit length; distances are in units of Direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3
}

// At returns the point at parametric distance t along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min math.Vec3
	Max math.Vec3
}

// NewAABB creates an AABB from two corners in any order.
func NewAABB(a, b math.Vec3) AABB {
	return AABB{
		Min: math.Vec3{X: math32.Min(a.X, b.X), Y: math32.Min(a.Y, b.Y), Z: math32.Min(a.Z, b.Z)},
		Max: math.Vec3{X: math32.Max(a.X, b.X), Y: math32.Max(a.Y, b.Y), Z: math32.Max(a.Z, b.Z)},
	}
}

// CubeAABB returns the bounds of a cube with the given center and edge length.
func CubeAABB(center math.Vec3, size float32) AABB {
	h := size / 2
	half := math.Vec3{X: h, Y: h, Z: h}
	return AABB{Min: center.Sub(half), Max: center.Add(half)}
}

// Center returns the midpoint of the box.
func (b AABB) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// ScreenToRay converts screen coordinates to a world-space ray.
// screenX, screenY are pixel coordinates, viewportW/H are viewport dimensions.
// invViewProj is the inverse of the view-projection matrix.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, invViewProj math.Mat4) Ray {
	// Convert screen coords to normalized device coords (-1 to 1)
	ndcX := 2.0*screenX/viewportW - 1.0
	ndcY := 1.0 - 2.0*screenY/viewportH // Flip Y

	nearWorld := unproject(invViewProj, math.Vec4{ndcX, ndcY, -1.0, 1.0})
	farWorld := unproject(invViewProj, math.Vec4{ndcX, ndcY, 1.0, 1.0})

	return Ray{Origin: nearWorld, Direction: farWorld.Sub(nearWorld).Normalize()}
}

func unproject(invViewProj math.Mat4, ndc math.Vec4) math.Vec3 {
	w := invViewProj.MulVec4(ndc)
	if w[3] != 0 {
		w[0] /= w[3]
		w[1] /= w[3]
		w[2] /= w[3]
	}
	return math.Vec3{X: w[0], Y: w[1], Z: w[2]}
}

// IntersectAABB tests ray intersection with an axis-aligned bounding box
// using the slab method. Returns the distance to intersection (t) and
// whether intersection occurred. If the ray starts inside the box, returns
// the exit distance.
func (r Ray) IntersectAABB(box AABB) (t float32, hit bool) {
	tmin := float32(-math32.MaxFloat32)
	tmax := float32(math32.MaxFloat32)

	origin := r.Origin.Array()
	dir := r.Direction.Array()
	lo := box.Min.Array()
	hi := box.Max.Array()

	for axis := 0; axis < 3; axis++ {
		if math32.Abs(dir[axis]) > parallelEpsilon {
			t1 := (lo[axis] - origin[axis]) / dir[axis]
			t2 := (hi[axis] - origin[axis]) / dir[axis]
			if t1 > t2 {
				t1, t2 = t2, t1
			}
			if t1 > tmin {
				tmin = t1
			}
			if t2 < tmax {
				tmax = t2
			}
		} else if origin[axis] < lo[axis] || origin[axis] > hi[axis] {
			return 0, false
		}
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}

	// Entry point, or exit point if starting inside
	if tmin > 0 {
		return tmin, true
	}
	return tmax, true
}
