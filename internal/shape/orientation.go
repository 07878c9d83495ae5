package shape

import "github.com/Faultbox/shapelab/pkg/math"

// worldUp is the auto-rotation axis.
var worldUp = math.Vec3{Y: 1}

// Orientation holds a rotation as a unit quaternion plus the Euler angles
// shown to the user. The quaternion is authoritative; Euler angles are
// re-derived after every incremental rotation.
type Orientation struct {
	rot   math.Quat
	euler math.Vec3
}

// NewOrientation returns the identity orientation.
func NewOrientation() Orientation {
	return Orientation{rot: math.QuatIdentity()}
}

// Quat returns the rotation quaternion.
func (o *Orientation) Quat() math.Quat {
	return o.rot
}

// Euler returns the display angles in degrees.
func (o *Orientation) Euler() math.Vec3 {
	return o.euler
}

// SetEuler replaces the rotation with one built from Euler angles in
// degrees (Z * Y * X). The display angles are wrapped into [0, 360).
func (o *Orientation) SetEuler(e math.Vec3) {
	o.rot = math.QuatFromEuler(e.X, e.Y, e.Z)
	o.euler = math.Vec3{
		X: math.WrapDegrees(e.X),
		Y: math.WrapDegrees(e.Y),
		Z: math.WrapDegrees(e.Z),
	}
}

// Apply composes delta after the current rotation, in world space.
func (o *Orientation) Apply(delta math.Quat) {
	o.rot = o.rot.Compose(delta)
	o.euler = o.rot.Euler()
}

// Spin rotates about the world up axis by speed (degrees per second) over dt seconds.
func (o *Orientation) Spin(speed, dt float32) {
	o.Apply(math.QuatFromAxisAngle(worldUp, math.Radians(speed*dt)))
}

// RotateScreenSpace applies a mouse drag: h degrees about the camera up
// axis and v degrees about the camera right axis, combined as h * v.
func (o *Orientation) RotateScreenSpace(h, v float32, right, up math.Vec3) {
	qh := math.QuatFromAxisAngle(up, math.Radians(h))
	qv := math.QuatFromAxisAngle(right, math.Radians(v))
	o.Apply(qh.Mul(qv))
}

// Matrix returns the model matrix for this orientation.
func (o *Orientation) Matrix(position, scale math.Vec3) math.Mat4 {
	return math.Transform(o.rot, position, scale)
}
