package shape

import (
	"go.uber.org/zap"

	"github.com/Faultbox/shapelab/internal/engine/picking"
	"github.com/Faultbox/shapelab/internal/logger"
	"github.com/Faultbox/shapelab/pkg/math"
	"github.com/Faultbox/shapelab/pkg/mesh"
)

// DefaultBoxColor is the stored base color of a new box.
var DefaultBoxColor = mesh.Color{R: 1, G: 1, B: 1}

// Box is a cube with fixed per-face colors, scaled by its edge length.
type Box struct {
	entity
	size     float32
	oriented bool
}

// NewBox creates a box and uploads its mesh when env has a device.
// Non-positive and NaN sizes fall back to 1.
func NewBox(name string, position math.Vec3, size float32, env Env) (*Box, error) {
	if !(size > 0) {
		size = 1
	}
	b := &Box{
		entity: newEntity(name, position, DefaultBoxColor, env),
		size:   size,
	}
	b.applySize()

	if err := b.geom.init(env.Device, mesh.Box()); err != nil {
		return nil, err
	}
	logger.Debug("box created",
		zap.String("name", name),
		zap.Float32("size", size),
		zap.Bool("initialized", b.Initialized()))
	return b, nil
}

// Kind returns KindBox.
func (b *Box) Kind() Kind { return KindBox }

// Size returns the edge length.
func (b *Box) Size() float32 { return b.size }

// SetSize changes the edge length. Non-positive and NaN values are ignored.
func (b *Box) SetSize(size float32) {
	if !(size > 0) {
		return
	}
	b.size = size
	b.applySize()
}

func (b *Box) applySize() {
	b.scale = math.Vec3{X: b.size, Y: b.size, Z: b.size}
	b.refresh()
}

// SetColor stores the base color. The faces keep their fixed colors, so
// nothing is regenerated.
func (b *Box) SetColor(c mesh.Color) {
	b.color = c
}

// SetOrientedPicking makes IntersectRay account for rotation.
func (b *Box) SetOrientedPicking(on bool) {
	b.oriented = on
}

// PickBounds returns the axis-aligned world bounds, ignoring rotation.
func (b *Box) PickBounds() picking.AABB {
	return picking.CubeAABB(b.position, b.size)
}

// IntersectRay tests the ray against the box. By default rotation is
// ignored and the axis-aligned bounds are used.
func (b *Box) IntersectRay(r picking.Ray) (float32, bool) {
	if b.oriented {
		return r.IntersectOBB(picking.CubeAABB(math.Vec3{}, b.size), b.orient.Quat(), b.position)
	}
	return r.IntersectAABB(b.PickBounds())
}

// Take moves the box into a new value. The receiver is left uninitialized
// and its Destroy becomes a no-op.
func (b *Box) Take() *Box {
	out := &Box{size: b.size, oriented: b.oriented}
	out.moveFrom(&b.entity)
	return out
}
