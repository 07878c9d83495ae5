package shape

import (
	"go.uber.org/zap"

	"github.com/Faultbox/shapelab/internal/engine/picking"
	"github.com/Faultbox/shapelab/internal/logger"
	"github.com/Faultbox/shapelab/pkg/math"
	"github.com/Faultbox/shapelab/pkg/mesh"
)

// DefaultTorusColor is the base color of a new torus.
var DefaultTorusColor = mesh.Color{R: 1, G: 0.5, B: 0}

// Torus is a ring whose mesh is regenerated when its radii or color change.
// It always satisfies outer > inner > 0.
type Torus struct {
	entity
	params mesh.TorusParams
}

// NewTorus creates a torus with the default tessellation. Radii that do not
// satisfy outer > inner > 0 fail with mesh.ErrInvalidTorus.
func NewTorus(name string, position math.Vec3, outer, inner float32, env Env) (*Torus, error) {
	return NewTorusWithSegments(name, position, outer, inner,
		mesh.DefaultMajorSegments, mesh.DefaultMinorSegments, env)
}

// NewTorusWithSegments creates a torus with explicit tessellation.
func NewTorusWithSegments(name string, position math.Vec3, outer, inner float32, major, minor int, env Env) (*Torus, error) {
	t := &Torus{
		entity: newEntity(name, position, DefaultTorusColor, env),
		params: mesh.TorusParams{
			Outer:         outer,
			Inner:         inner,
			MajorSegments: major,
			MinorSegments: minor,
			Color:         DefaultTorusColor,
		},
	}

	m, err := mesh.Torus(t.params)
	if err != nil {
		return nil, err
	}
	if err := t.geom.init(env.Device, m); err != nil {
		return nil, err
	}
	logger.Debug("torus created",
		zap.String("name", name),
		zap.Float32("outer", outer),
		zap.Float32("inner", inner),
		zap.Int("vertices", m.VertexCount()),
		zap.Bool("initialized", t.Initialized()))
	return t, nil
}

// Kind returns KindTorus.
func (t *Torus) Kind() Kind { return KindTorus }

// OuterRadius returns the outside radius.
func (t *Torus) OuterRadius() float32 { return t.params.Outer }

// InnerRadius returns the hole radius.
func (t *Torus) InnerRadius() float32 { return t.params.Inner }

// Segments returns the major and minor segment counts.
func (t *Torus) Segments() (major, minor int) {
	return t.params.MajorSegments, t.params.MinorSegments
}

// SetOuterRadius changes the outer radius. Values not above the inner
// radius, including NaN, are ignored.
func (t *Torus) SetOuterRadius(r float32) {
	if !(r > t.params.Inner) {
		return
	}
	p := t.params
	p.Outer = r
	t.setParams(p)
}

// SetInnerRadius changes the inner radius. Values outside (0, outer),
// including NaN, are ignored.
func (t *Torus) SetInnerRadius(r float32) {
	if !(r > 0 && r < t.params.Outer) {
		return
	}
	p := t.params
	p.Inner = r
	t.setParams(p)
}

// setParams commits p only if it keeps the torus valid.
func (t *Torus) setParams(p mesh.TorusParams) {
	if err := p.Validate(); err != nil {
		logger.Debug("torus change rejected", zap.String("name", t.name), zap.Error(err))
		return
	}
	t.params = p
	t.regenerate()
}

// SetColor changes the base color and rebuilds the shaded mesh.
func (t *Torus) SetColor(c mesh.Color) {
	t.color = c
	t.params.Color = c
	t.regenerate()
}

func (t *Torus) regenerate() {
	m, err := mesh.Torus(t.params)
	if err != nil {
		// Setters guard the invariant, so this only fires on bad segment counts.
		logger.Warn("torus regenerate failed", zap.String("name", t.name), zap.Error(err))
		return
	}
	if err := t.geom.upload(m); err != nil {
		logger.Warn("torus upload failed", zap.String("name", t.name), zap.Error(err))
	}
}

// PickSphere returns the bounding sphere used for picking.
func (t *Torus) PickSphere() picking.Sphere {
	return picking.Sphere{Center: t.position, Radius: t.params.Outer}
}

// PickBounds returns the box around the bounding sphere.
func (t *Torus) PickBounds() picking.AABB {
	r := t.params.Outer
	ext := math.Vec3{X: r, Y: r, Z: r}
	return picking.AABB{Min: t.position.Sub(ext), Max: t.position.Add(ext)}
}

// IntersectRay tests the ray against the bounding sphere, not the ring itself.
func (t *Torus) IntersectRay(r picking.Ray) (float32, bool) {
	return r.IntersectSphere(t.PickSphere())
}

// Take moves the torus into a new value. The receiver is left
// uninitialized and its Destroy becomes a no-op.
func (t *Torus) Take() *Torus {
	out := &Torus{params: t.params}
	out.moveFrom(&t.entity)
	return out
}
