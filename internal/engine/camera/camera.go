// Package camera provides the orbit camera used by the shape viewer.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/shapelab/internal/engine/picking"
	"github.com/Faultbox/shapelab/pkg/math"
)

// Config holds the orbit camera settings. Angles are in degrees.
type Config struct {
	Distance    float32
	Yaw         float32
	Pitch       float32
	MinDistance float32
	MaxDistance float32
	FOV         float32
	Near        float32
	Far         float32
	Sensitivity float32
	ZoomStep    float32
}

// DefaultConfig returns the settings of the stock scene.
func DefaultConfig() Config {
	return Config{
		Distance:    5,
		Yaw:         45,
		Pitch:       30,
		MinDistance: 2,
		MaxDistance: 10,
		FOV:         45,
		Near:        0.1,
		Far:         100,
		Sensitivity: 0.2,
		ZoomStep:    0.5,
	}
}

// MaxPitch keeps the camera from flipping over the poles.
const MaxPitch = 89

var worldUp = math.Vec3{X: 0, Y: 1, Z: 0}

// OrbitCamera orbits the origin on a sphere described by yaw, pitch and distance.
type OrbitCamera struct {
	// Spherical coordinates
	Distance float32
	Yaw      float32 // Horizontal angle, degrees in [0, 360)
	Pitch    float32 // Vertical angle, degrees in [-89, 89]

	// Constraints
	MinDistance float32
	MaxDistance float32

	// Projection
	FOV, Near, Far float32

	// Sensitivity
	Sensitivity float32
	ZoomStep    float32
}

// NewOrbitCamera creates a camera from cfg.
func NewOrbitCamera(cfg Config) *OrbitCamera {
	c := &OrbitCamera{
		Distance:    cfg.Distance,
		Yaw:         cfg.Yaw,
		Pitch:       cfg.Pitch,
		MinDistance: cfg.MinDistance,
		MaxDistance: cfg.MaxDistance,
		FOV:         cfg.FOV,
		Near:        cfg.Near,
		Far:         cfg.Far,
		Sensitivity: cfg.Sensitivity,
		ZoomStep:    cfg.ZoomStep,
	}
	c.clamp()
	return c
}

func (c *OrbitCamera) clamp() {
	if c.MaxDistance < c.MinDistance {
		c.MaxDistance = c.MinDistance
	}
	c.Distance = math.Clamp(c.Distance, c.MinDistance, c.MaxDistance)
	c.Pitch = math.Clamp(c.Pitch, -MaxPitch, MaxPitch)
	c.Yaw = math.WrapDegrees(c.Yaw)
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	sp, cp := math32.Sincos(math.Radians(c.Pitch))
	sy, cy := math32.Sincos(math.Radians(c.Yaw))
	return math.Vec3{
		X: c.Distance * cp * cy,
		Y: c.Distance * sp,
		Z: c.Distance * cp * sy,
	}
}

// Basis returns the camera's right and up vectors in world space.
func (c *OrbitCamera) Basis() (right, up math.Vec3) {
	back := c.Position().Normalize()
	right = worldUp.Cross(back).Normalize()
	up = back.Cross(right)
	return right, up
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), math.Vec3{}, worldUp)
}

// ProjectionMatrix returns the perspective projection for the given aspect ratio.
func (c *OrbitCamera) ProjectionMatrix(aspect float32) math.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return math.Perspective(math.Radians(c.FOV), aspect, c.Near, c.Far)
}

// HandleDrag updates yaw and pitch from a mouse drag delta in pixels.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.Yaw = math.WrapDegrees(c.Yaw + deltaX*c.Sensitivity)
	c.Pitch = math.Clamp(c.Pitch+deltaY*c.Sensitivity, -MaxPitch, MaxPitch)
}

// HandleZoom moves the camera along its orbit radius by whole wheel steps.
func (c *OrbitCamera) HandleZoom(wheel float32) {
	c.Distance = math.Clamp(c.Distance-wheel*c.ZoomStep, c.MinDistance, c.MaxDistance)
}

// SetYaw sets the horizontal angle, wrapping into [0, 360).
func (c *OrbitCamera) SetYaw(deg float32) { c.Yaw = math.WrapDegrees(deg) }

// SetPitch sets the vertical angle, clamped to the pole limit.
func (c *OrbitCamera) SetPitch(deg float32) { c.Pitch = math.Clamp(deg, -MaxPitch, MaxPitch) }

// SetDistance sets the orbit radius, clamped to the distance limits.
func (c *OrbitCamera) SetDistance(d float32) {
	c.Distance = math.Clamp(d, c.MinDistance, c.MaxDistance)
}

// PickRay returns the world-space ray through pixel (x, y) of a width×height viewport.
func (c *OrbitCamera) PickRay(x, y, width, height float32) picking.Ray {
	view := c.ViewMatrix()
	proj := c.ProjectionMatrix(width / height)
	inv := proj.Mul(view).Inverse()
	return picking.ScreenToRay(x, y, width, height, inv)
}
