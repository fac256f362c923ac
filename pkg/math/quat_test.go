package math

import (
	"math"
	"testing"
)

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	if q.X != 0 || q.Y != 0 || q.Z != 0 || q.W != 1 {
		t.Errorf("Identity quaternion should be (0,0,0,1), got (%v,%v,%v,%v)", q.X, q.Y, q.Z, q.W)
	}
}

func TestQuatNormalize(t *testing.T) {
	q := Quat{X: 1, Y: 2, Z: 3, W: 4}
	n := q.Normalize()

	length := float32(math.Sqrt(float64(n.X*n.X + n.Y*n.Y + n.Z*n.Z + n.W*n.W)))
	if math.Abs(float64(length-1.0)) > 0.0001 {
		t.Errorf("Normalized quaternion length should be 1, got %v", length)
	}
}

func TestQuatFromEulerSingleAxis(t *testing.T) {
	half := float32(math.Pi / 2)
	tests := []struct {
		name  string
		euler Vec3
		axis  Vec3
	}{
		{"x", Vec3{X: half}, Vec3{X: 1}},
		{"y", Vec3{Y: half}, Vec3{Y: 1}},
		{"z", Vec3{Z: half}, Vec3{Z: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := QuatFromEuler(tt.euler)
			want := QuatFromAxisAngle(tt.axis, half)
			if !got.SameRotation(want, 1e-5) {
				t.Errorf("QuatFromEuler(%v) = %v, want %v", tt.euler, got, want)
			}
		})
	}
}

func TestQuatEulerRoundTrip(t *testing.T) {
	angles := []Vec3{
		{0, 0, 0},
		{0.3, -0.2, 1.1},
		{-2.5, 1.2, 0.4},
		{1.0, -1.4, -3.0},
	}

	for _, e := range angles {
		q := QuatFromEuler(e)
		back := q.Euler()
		if !QuatFromEuler(back).SameRotation(q, 1e-5) {
			t.Errorf("round trip of %v produced %v, which is a different rotation", e, back)
		}
		if !back.ApproxEqual(e, 1e-4) {
			t.Errorf("Euler(QuatFromEuler(%v)) = %v", e, back)
		}
	}
}

func TestQuatEulerOrder(t *testing.T) {
	// X first then Y: the plane correction used by the level maps +Z onto +Y.
	q := QuatFromEuler(Vec3{X: 0, Y: math.Pi / 2, Z: math.Pi / 2})
	got := q.Rotate(Vec3{Z: 1})
	if !got.ApproxEqual(Vec3{Y: 1}, 1e-5) {
		t.Errorf("rotated +Z = %v, want +Y", got)
	}
}

func TestQuatRotate(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{X: 0, Y: 1, Z: 0}, float32(math.Pi/2))
	got := q.Rotate(Vec3{X: 1})
	if !got.ApproxEqual(Vec3{Z: -1}, 1e-5) {
		t.Errorf("rotating +X by 90deg about Y = %v, want -Z", got)
	}
}

func TestQuatFromAxisAngle(t *testing.T) {
	// 90 degrees around Y axis
	q := QuatFromAxisAngle(Vec3{X: 0, Y: 1, Z: 0}, float32(math.Pi/2))

	expectedW := float32(math.Cos(math.Pi / 4))
	expectedY := float32(math.Sin(math.Pi / 4))

	if math.Abs(float64(q.W-expectedW)) > 0.001 {
		t.Errorf("QuatFromAxisAngle W: expected %v, got %v", expectedW, q.W)
	}
	if math.Abs(float64(q.Y-expectedY)) > 0.001 {
		t.Errorf("QuatFromAxisAngle Y: expected %v, got %v", expectedY, q.Y)
	}
}
