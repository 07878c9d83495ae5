package math

import (
	"math"
	"testing"
)

func abs(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}

func TestIdentity(t *testing.T) {
	m := Identity()
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestTransformPointScale(t *testing.T) {
	m := Scale(2, 2, 2)
	result := m.TransformPoint([3]float32{1, 2, 3})

	expected := [3]float32{2, 4, 6}
	if result != expected {
		t.Errorf("TransformPoint with scale: got %v, want %v", result, expected)
	}
}

func TestRotateZ90(t *testing.T) {
	m := RotateZ(float32(math.Pi / 2))
	result := m.TransformPoint([3]float32{1, 0, 0})

	if abs(result[0]) > 0.001 || abs(result[1]-1) > 0.001 || abs(result[2]) > 0.001 {
		t.Errorf("RotateZ 90: got %v, want (0, 1, 0)", result)
	}
}

func TestTransformTRS(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{0, 1, 0}, float32(math.Pi/2))
	m := Transform(q, Vec3{1, 2, 3}, Vec3{2, 2, 2})

	// Translation lives in the last column.
	if m[12] != 1 || m[13] != 2 || m[14] != 3 || m[15] != 1 {
		t.Fatalf("translation column: got (%v, %v, %v, %v)", m[12], m[13], m[14], m[15])
	}

	// Scale first, then rotate (+X -> -Z), then translate.
	got := m.TransformVec3(Vec3{1, 0, 0})
	want := Vec3{1, 2, 1}
	if got.Distance(want) > 0.001 {
		t.Errorf("Transform(1,0,0) = %v, want %v", got, want)
	}

	// Same as composing the matrices by hand.
	manual := Translate(1, 2, 3).Mul(q.ToMat4()).Mul(Scale(2, 2, 2))
	for i := range m {
		if abs(m[i]-manual[i]) > 0.0001 {
			t.Errorf("element %d: got %v, want %v", i, m[i], manual[i])
		}
	}
}

func TestInverse(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
	}{
		{"translate", Translate(3, -2, 7)},
		{"scale", Scale(2, 4, 0.5)},
		{"perspective", Perspective(float32(math.Pi/4), 16.0/9.0, 0.1, 100)},
		{"lookAt", LookAt(Vec3{3, 4, 5}, Vec3{}, Vec3{0, 1, 0})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.m.Mul(tt.m.Inverse())
			id := Identity()
			for i := range p {
				if abs(p[i]-id[i]) > 0.001 {
					t.Errorf("M * M^-1 element %d: got %v, want %v", i, p[i], id[i])
				}
			}
		})
	}
}

func TestLookAtMapsEyeToOrigin(t *testing.T) {
	eye := Vec3{0, 0, 5}
	view := LookAt(eye, Vec3{}, Vec3{0, 1, 0})

	got := view.TransformVec3(eye)
	if got.Length() > 0.0001 {
		t.Errorf("eye in view space = %v, want origin", got)
	}

	// Target lies on -Z in view space.
	target := view.TransformVec3(Vec3{})
	if abs(target.Z+5) > 0.0001 {
		t.Errorf("target in view space = %v, want z=-5", target)
	}
}

func TestWrapDegrees(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{0, 0},
		{90, 90},
		{360, 0},
		{-90, 270},
		{725, 5},
		{-0.0000001, 0},
	}
	for _, tt := range tests {
		got := WrapDegrees(tt.in)
		if abs(got-tt.want) > 0.001 || got >= 360 {
			t.Errorf("WrapDegrees(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
