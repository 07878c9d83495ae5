package shape

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/shapelab/internal/engine/picking"
	"github.com/Faultbox/shapelab/pkg/math"
	"github.com/Faultbox/shapelab/pkg/mesh"
)

func TestOrientationSpinStaysUnit(t *testing.T) {
	o := NewOrientation()
	for i := 0; i < 600; i++ {
		o.Spin(DefaultRotationSpeed, 1.0/60.0)
	}
	q := o.Quat()
	assert.InDelta(t, 1, q.Length(), 1e-4)

	// 10 seconds at 20 deg/s is 200 degrees about Y.
	want := math.QuatFromAxisAngle(math.Vec3{Y: 1}, math.Radians(200))
	assert.InDelta(t, 1, abs32(q.Dot(want)), 1e-3)
}

func TestOrientationScreenSpace(t *testing.T) {
	o := NewOrientation()
	right := math.Vec3{X: 1}
	up := math.Vec3{Y: 1}

	o.RotateScreenSpace(90, 0, right, up)
	got := o.Quat().Rotate(math.Vec3{X: 1})
	assert.InDelta(t, -1, got.Z, 1e-4, "horizontal drag turns about camera up")

	o = NewOrientation()
	o.RotateScreenSpace(0, 90, right, up)
	got = o.Quat().Rotate(math.Vec3{Y: 1})
	assert.InDelta(t, 1, got.Z, 1e-4, "vertical drag turns about camera right")

	// Many small drags accumulate without drift.
	o = NewOrientation()
	for i := 0; i < 5000; i++ {
		o.RotateScreenSpace(0.4, -0.3, right, up)
	}
	assert.InDelta(t, 1, o.Quat().Length(), 1e-4)
}

func TestOrientationEulerDisplay(t *testing.T) {
	o := NewOrientation()
	o.SetEuler(math.Vec3{X: 10, Y: 20, Z: 30})
	assert.Equal(t, math.Vec3{X: 10, Y: 20, Z: 30}, o.Euler())

	// Out-of-range input is wrapped for display only.
	o.SetEuler(math.Vec3{X: 400, Y: -10, Z: 0})
	assert.Equal(t, math.Vec3{X: 40, Y: 350, Z: 0}, o.Euler())
	assert.InDelta(t, 1, math32.Abs(o.Quat().Dot(math.QuatFromEuler(400, -10, 0))), 1e-5)

	// After an incremental rotation the display is re-derived.
	o.SetEuler(math.Vec3{X: 10, Y: 20, Z: 30})
	o.Spin(90, 0.5)
	e := o.Euler()
	assert.Equal(t, o.Quat().Euler(), e)
	assert.Greater(t, math32.Abs(e.Y-20)+math32.Abs(e.X-10)+math32.Abs(e.Z-30), float32(1))

	back := math.QuatFromEuler(e.X, e.Y, e.Z)
	assert.InDelta(t, 1, math32.Abs(back.Dot(o.Quat())), 1e-4)
}

func TestBoxLifecycle(t *testing.T) {
	dev := newFakeDevice()
	b, err := NewBox("Voxel 1", math.Vec3{}, 1, testEnv(dev))
	require.NoError(t, err)

	assert.True(t, b.Initialized())
	assert.Equal(t, uint32(7), b.Program())
	require.Len(t, dev.geometries, 1)
	assert.Equal(t, 24, dev.geometries[0].last.VertexCount())

	view, proj := math.Identity(), math.Identity()
	b.Render(&view, &proj)
	assert.Equal(t, 1, dev.geometries[0].draws)
	assert.Equal(t, []uniformCall{{7, "model"}, {7, "view"}, {7, "projection"}}, dev.mat4s)

	b.Destroy()
	b.Destroy()
	assert.False(t, b.Initialized())
	assert.Equal(t, 1, dev.geometries[0].releases)

	// Rendering after destroy is a no-op.
	b.Render(&view, &proj)
	assert.Equal(t, 1, dev.geometries[0].draws)
}

func TestBoxTake(t *testing.T) {
	dev := newFakeDevice()
	b, err := NewBox("Voxel 1", math.Vec3{X: 1}, 2, testEnv(dev))
	require.NoError(t, err)

	moved := b.Take()
	assert.False(t, b.Initialized())
	assert.Zero(t, b.Program())
	assert.True(t, moved.Initialized())
	assert.Equal(t, "Voxel 1", moved.Name())
	assert.Equal(t, float32(2), moved.Size())

	b.Destroy()
	assert.Zero(t, dev.geometries[0].releases, "moved-from Destroy must not free the new owner's buffers")

	moved.Destroy()
	assert.Equal(t, 1, dev.geometries[0].releases)
}

func TestBoxSetters(t *testing.T) {
	dev := newFakeDevice()
	b, err := NewBox("b", math.Vec3{}, 1, testEnv(dev))
	require.NoError(t, err)

	b.SetSize(2)
	assert.Equal(t, float32(2), b.Size())
	b.SetSize(0)
	b.SetSize(-1)
	assert.Equal(t, float32(2), b.Size())

	m := b.Model()
	assert.Equal(t, float32(2), m[0])
	assert.Equal(t, float32(2), m[5])

	b.SetPosition(math.Vec3{X: 1, Y: 2, Z: 3})
	m = b.Model()
	assert.Equal(t, [3]float32{1, 2, 3}, [3]float32{m[12], m[13], m[14]})

	// Color is stored but the fixed-face mesh is not rebuilt.
	b.SetColor(mesh.Color{R: 0.2})
	assert.Equal(t, mesh.Color{R: 0.2}, b.Color())
	assert.Equal(t, 1, dev.geometries[0].uploads)
}

func TestBoxPick(t *testing.T) {
	b, err := NewBox("b", math.Vec3{}, 1, Env{})
	require.NoError(t, err)
	assert.False(t, b.Initialized())

	ray := picking.Ray{Origin: math.Vec3{Z: 5}, Direction: math.Vec3{Z: -1}}
	d, hit := b.IntersectRay(ray)
	assert.True(t, hit)
	assert.InDelta(t, 4.5, d, 1e-5)

	// Rotation is ignored by default.
	b.SetRotation(math.Vec3{Y: 45})
	d, hit = b.IntersectRay(ray)
	assert.True(t, hit)
	assert.InDelta(t, 4.5, d, 1e-5)

	b.SetOrientedPicking(true)
	d, hit = b.IntersectRay(ray)
	assert.True(t, hit)
	assert.InDelta(t, 5-0.70710677, d, 1e-4)
}

func TestTorusInvariant(t *testing.T) {
	dev := newFakeDevice()
	tor, err := NewTorus("Donut 1", math.Vec3{}, 1.0, 0.4, testEnv(dev))
	require.NoError(t, err)

	tor.SetInnerRadius(1.5)
	assert.Equal(t, float32(0.4), tor.InnerRadius())
	tor.SetInnerRadius(0)
	assert.Equal(t, float32(0.4), tor.InnerRadius())
	tor.SetOuterRadius(0.3)
	assert.Equal(t, float32(1.0), tor.OuterRadius())
	tor.SetOuterRadius(0.4)
	assert.Equal(t, float32(1.0), tor.OuterRadius())

	// Rejected setters never touch the GPU.
	assert.Equal(t, 1, dev.geometries[0].uploads)

	tor.SetInnerRadius(0.5)
	tor.SetOuterRadius(2)
	assert.Equal(t, float32(0.5), tor.InnerRadius())
	assert.Equal(t, float32(2), tor.OuterRadius())
	assert.Equal(t, 3, dev.geometries[0].uploads)

	_, maxB := dev.geometries[0].last.Bounds()
	assert.InDelta(t, 2, maxB.X, 1e-5)
}

func TestSettersRejectNaN(t *testing.T) {
	nan := math32.NaN()

	dev := newFakeDevice()
	tor, err := NewTorus("Donut 1", math.Vec3{}, 1.0, 0.4, testEnv(dev))
	require.NoError(t, err)

	tor.SetInnerRadius(nan)
	tor.SetOuterRadius(nan)
	assert.Equal(t, float32(1.0), tor.OuterRadius())
	assert.Equal(t, float32(0.4), tor.InnerRadius())
	assert.Equal(t, 1, dev.geometries[0].uploads)

	b, err := NewBox("Voxel 1", math.Vec3{}, 2, testEnv(dev))
	require.NoError(t, err)
	b.SetSize(nan)
	assert.Equal(t, float32(2), b.Size())

	b, err = NewBox("Voxel 2", math.Vec3{}, nan, testEnv(dev))
	require.NoError(t, err)
	assert.Equal(t, float32(1), b.Size())
}

func TestTorusInvalidConstruction(t *testing.T) {
	_, err := NewTorus("bad", math.Vec3{}, 0.4, 1.0, Env{})
	assert.True(t, errors.Is(err, mesh.ErrInvalidTorus))
}

func TestTorusColorRegenerates(t *testing.T) {
	dev := newFakeDevice()
	tor, err := NewTorusWithSegments("t", math.Vec3{}, 1, 0.4, 8, 4, testEnv(dev))
	require.NoError(t, err)

	maj, minr := tor.Segments()
	assert.Equal(t, 8, maj)
	assert.Equal(t, 4, minr)

	tor.SetColor(mesh.Color{G: 1})
	g := dev.geometries[0]
	assert.Equal(t, 2, g.uploads)
	for _, v := range g.last.Vertices {
		assert.Zero(t, v.Color.R)
		assert.Greater(t, v.Color.G, float32(0.69))
	}
}

func TestTorusPick(t *testing.T) {
	tor, err := NewTorus("t", math.Vec3{}, 1.0, 0.4, Env{})
	require.NoError(t, err)

	d, hit := tor.IntersectRay(picking.Ray{Origin: math.Vec3{Z: 5}, Direction: math.Vec3{Z: -1}})
	assert.True(t, hit)
	assert.InDelta(t, 4.0, d, 1e-5)

	// The sphere approximation also hits the hole.
	_, hit = tor.IntersectRay(picking.Ray{Origin: math.Vec3{Y: 5}, Direction: math.Vec3{Y: -1}})
	assert.True(t, hit)

	bounds := tor.PickBounds()
	assert.Equal(t, math.Vec3{X: -1, Y: -1, Z: -1}, bounds.Min)
}

func TestAutoRotate(t *testing.T) {
	b, err := NewBox("b", math.Vec3{}, 1, Env{})
	require.NoError(t, err)

	b.Update(1)
	assert.Equal(t, math.QuatIdentity(), b.Orientation(), "auto-rotate is off by default")

	b.SetAutoRotate(true)
	b.SetRotationSpeed(60)
	b.Update(1)
	assert.InDelta(t, 60, b.Rotation().Y, 0.05)
}

func TestRenderWithoutProgram(t *testing.T) {
	dev := newFakeDevice()
	env := testEnv(dev)
	env.Programs = fakePrograms{}

	b, err := NewBox("b", math.Vec3{}, 1, env)
	require.NoError(t, err)
	assert.True(t, b.Initialized())

	view, proj := math.Identity(), math.Identity()
	b.Render(&view, &proj)
	assert.Zero(t, dev.geometries[0].draws)
	assert.Empty(t, dev.programs)
}

func TestDeviceFailure(t *testing.T) {
	dev := newFakeDevice()
	dev.fail = true
	_, err := NewBox("b", math.Vec3{}, 1, testEnv(dev))
	assert.Error(t, err)
}

func abs32(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
