package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/shapelab/pkg/math"
)

const eps = 1e-4

func TestDefaultPosition(t *testing.T) {
	c := NewOrbitCamera(DefaultConfig())
	p := c.Position()

	// 5 * cos30 * cos45, 5 * sin30, 5 * cos30 * sin45
	assert.InDelta(t, 3.0619, p.X, eps)
	assert.InDelta(t, 2.5, p.Y, eps)
	assert.InDelta(t, 3.0619, p.Z, eps)
	assert.InDelta(t, 5, p.Length(), eps)
}

func TestBasisIsOrthonormal(t *testing.T) {
	c := NewOrbitCamera(DefaultConfig())
	right, up := c.Basis()
	back := c.Position().Normalize()

	assert.InDelta(t, 1, right.Length(), eps)
	assert.InDelta(t, 1, up.Length(), eps)
	assert.InDelta(t, 0, right.Dot(up), eps)
	assert.InDelta(t, 0, right.Dot(back), eps)
	assert.InDelta(t, 0, right.Y, eps, "right stays horizontal")
	assert.Greater(t, up.Y, float32(0))
}

func TestViewMatchesMathGL(t *testing.T) {
	c := NewOrbitCamera(DefaultConfig())
	p := c.Position()
	want := mgl32.LookAtV(mgl32.Vec3{p.X, p.Y, p.Z}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	got := c.ViewMatrix()
	for i := range got {
		assert.InDelta(t, want[i], got[i], eps, "element %d", i)
	}

	wantProj := mgl32.Perspective(mgl32.DegToRad(45), 16.0/9.0, 0.1, 100)
	gotProj := c.ProjectionMatrix(16.0 / 9.0)
	for i := range gotProj {
		assert.InDelta(t, wantProj[i], gotProj[i], eps, "element %d", i)
	}
}

func TestHandleDrag(t *testing.T) {
	tests := []struct {
		name      string
		dx, dy    float32
		wantYaw   float32
		wantPitch float32
	}{
		{"right", 50, 0, 55, 30},
		{"pitch clamps high", 0, 1000, 45, 89},
		{"pitch clamps low", 0, -1000, 45, -89},
		{"yaw wraps", 1600, 0, 5, 30},
		{"yaw wraps negative", -300, 0, 345, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewOrbitCamera(DefaultConfig())
			c.HandleDrag(tt.dx, tt.dy)
			assert.InDelta(t, tt.wantYaw, c.Yaw, eps)
			assert.InDelta(t, tt.wantPitch, c.Pitch, eps)
		})
	}
}

func TestHandleZoom(t *testing.T) {
	c := NewOrbitCamera(DefaultConfig())

	c.HandleZoom(1)
	assert.InDelta(t, 4.5, c.Distance, eps)

	c.HandleZoom(100)
	assert.Equal(t, float32(2), c.Distance)

	c.HandleZoom(-100)
	assert.Equal(t, float32(10), c.Distance)
}

func TestNewClampsConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Distance = 50
	cfg.Pitch = 120
	cfg.Yaw = -90
	c := NewOrbitCamera(cfg)

	assert.Equal(t, float32(10), c.Distance)
	assert.Equal(t, float32(89), c.Pitch)
	assert.Equal(t, float32(270), c.Yaw)
}

func TestPickRayThroughCenter(t *testing.T) {
	c := NewOrbitCamera(DefaultConfig())
	r := c.PickRay(400, 225, 800, 450)

	toOrigin := math.Vec3{}.Sub(c.Position()).Normalize()
	assert.InDelta(t, 1, r.Direction.Dot(toOrigin), eps)

	// The ray starts on the near plane in front of the camera.
	assert.InDelta(t, c.Near, r.Origin.Distance(c.Position()), 1e-3)
}
