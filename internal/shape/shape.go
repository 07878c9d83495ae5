// Package shape implements the pickable, rotatable entities of the demo
// scene: boxes and tori. Entities own their geometry but know nothing about
// windows or widgets; drawing goes through the Device interface.
package shape

import (
	"github.com/Faultbox/shapelab/internal/engine/picking"
	"github.com/Faultbox/shapelab/pkg/math"
	"github.com/Faultbox/shapelab/pkg/mesh"
)

// DefaultRotationSpeed is the auto-rotate speed in degrees per second.
const DefaultRotationSpeed = 20

// Kind identifies the entity variant.
type Kind int

const (
	// KindBox is an axis-scaled cube.
	KindBox Kind = iota
	// KindTorus is a ring with outer and inner radii.
	KindTorus
)

// String returns the kind name as used in config files.
func (k Kind) String() string {
	switch k {
	case KindBox:
		return "box"
	case KindTorus:
		return "torus"
	default:
		return "unknown"
	}
}

// Shape is the contract the application loop and UI use for every entity.
type Shape interface {
	Name() string
	Kind() Kind

	Position() math.Vec3
	SetPosition(p math.Vec3)
	// Rotation returns Euler angles in degrees.
	Rotation() math.Vec3
	SetRotation(e math.Vec3)
	Orientation() math.Quat
	Color() mesh.Color
	SetColor(c mesh.Color)

	AutoRotate() bool
	SetAutoRotate(on bool)
	RotationSpeed() float32
	SetRotationSpeed(degPerSec float32)
	PanelVisible() bool
	SetPanelVisible(visible bool)

	Initialized() bool
	Program() uint32
	Model() math.Mat4

	Update(dt float32)
	RotateScreenSpace(h, v float32, right, up math.Vec3)
	Render(view, projection *math.Mat4)
	IntersectRay(r picking.Ray) (float32, bool)
	// PickBounds returns the world-space box that encloses the pick volume.
	PickBounds() picking.AABB
	Destroy()
}

// entity is the state shared by every Shape.
type entity struct {
	name     string
	position math.Vec3
	scale    math.Vec3
	orient   Orientation
	color    mesh.Color

	autoRotate   bool
	speed        float32
	panelVisible bool

	dev     Device
	program uint32
	geom    geometryHandle
	model   math.Mat4
}

func newEntity(name string, position math.Vec3, color mesh.Color, env Env) entity {
	e := entity{
		name:         name,
		position:     position,
		scale:        math.Vec3{X: 1, Y: 1, Z: 1},
		orient:       NewOrientation(),
		color:        color,
		speed:        DefaultRotationSpeed,
		panelVisible: true,
		dev:          env.Device,
		program:      env.program(),
	}
	e.refresh()
	return e
}

func (e *entity) refresh() {
	e.model = e.orient.Matrix(e.position, e.scale)
}

func (e *entity) Name() string { return e.name }
func (e *entity) Position() math.Vec3 { return e.position }
func (e *entity) Rotation() math.Vec3 { return e.orient.Euler() }
func (e *entity) Orientation() math.Quat { return e.orient.Quat() }
func (e *entity) Color() mesh.Color { return e.color }
func (e *entity) AutoRotate() bool { return e.autoRotate }
func (e *entity) SetAutoRotate(on bool) { e.autoRotate = on }
func (e *entity) RotationSpeed() float32 { return e.speed }
func (e *entity) SetRotationSpeed(s float32) { e.speed = s }
func (e *entity) PanelVisible() bool { return e.panelVisible }
func (e *entity) SetPanelVisible(visible bool) { e.panelVisible = visible }
func (e *entity) Initialized() bool { return e.geom.initialized }
func (e *entity) Program() uint32 { return e.program }
func (e *entity) Model() math.Mat4 { return e.model }

// SetPosition moves the entity. Only the transform changes.
func (e *entity) SetPosition(p math.Vec3) {
	e.position = p
	e.refresh()
}

// SetRotation replaces the orientation from Euler angles in degrees.
func (e *entity) SetRotation(angles math.Vec3) {
	e.orient.SetEuler(angles)
	e.refresh()
}

// Update advances auto-rotation by dt seconds.
func (e *entity) Update(dt float32) {
	if !e.autoRotate {
		return
	}
	e.orient.Spin(e.speed, dt)
	e.refresh()
}

// RotateScreenSpace applies a drag rotation about the camera basis.
func (e *entity) RotateScreenSpace(h, v float32, right, up math.Vec3) {
	e.orient.RotateScreenSpace(h, v, right, up)
	e.refresh()
}

// Render draws the entity. It does nothing until the geometry is
// uploaded or when no shader program is available.
func (e *entity) Render(view, projection *math.Mat4) {
	if !e.geom.initialized || e.program == 0 || e.dev == nil {
		return
	}
	e.dev.UseProgram(e.program)
	e.dev.SetMat4(e.program, "model", &e.model)
	e.dev.SetMat4(e.program, "view", view)
	e.dev.SetMat4(e.program, "projection", projection)
	e.geom.draw()
}

// Destroy releases the geometry. The shader program belongs to the cache
// and is left alone. Safe to call more than once.
func (e *entity) Destroy() {
	e.geom.release()
}

// moveFrom transfers everything from src, leaving src uninitialized.
func (e *entity) moveFrom(src *entity) {
	*e = *src
	e.geom = src.geom.take()
	src.program = 0
}
