package core

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const tolerance = 1e-6

func TestVec3_Accessors(t *testing.T) {
	v := NewVec3(1, 2, 3)
	if v.X() != 1 || v.Y() != 2 || v.Z() != 3 {
		t.Errorf("Expected (1, 2, 3), got %v", v)
	}

	s := Splat(2.5)
	if s != NewVec3(2.5, 2.5, 2.5) {
		t.Errorf("Expected Splat(2.5) to broadcast, got %v", s)
	}
}

func TestVec3_AddSubtractInverse(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec3
	}{
		{"unit axes", NewVec3(1, 0, 0), NewVec3(0, 1, 0)},
		{"mixed signs", NewVec3(-3.5, 2, 7), NewVec3(1.25, -8, 0.5)},
		{"self", NewVec3(4, 5, 6), NewVec3(4, 5, 6)},
		{"large", NewVec3(1e6, -2e6, 3e5), NewVec3(0.001, 0.002, 0.003)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.a.Add(tt.b).Subtract(tt.b)
			if !result.ApproxEqual(tt.a, tolerance*max(1, tt.a.Length())) {
				t.Errorf("Expected %v, got %v", tt.a, result)
			}
		})
	}
}

func TestVec3_MultiplyDivide(t *testing.T) {
	v := NewVec3(1, -2, 4)

	if got := v.Multiply(2); got != NewVec3(2, -4, 8) {
		t.Errorf("Multiply(2): expected (2, -4, 8), got %v", got)
	}
	if got := v.MultiplyVec(NewVec3(2, 3, 0.5)); got != NewVec3(2, -6, 2) {
		t.Errorf("MultiplyVec: expected (2, -6, 2), got %v", got)
	}
	if got := v.Divide(2); got != NewVec3(0.5, -1, 2) {
		t.Errorf("Divide(2): expected (0.5, -1, 2), got %v", got)
	}
	if got := v.DivideVec(NewVec3(1, -2, 8)); got != NewVec3(1, 1, 0.5) {
		t.Errorf("DivideVec: expected (1, 1, 0.5), got %v", got)
	}

	// Scalar and broadcast vector operands must agree
	if v.Multiply(3) != v.MultiplyVec(Splat(3)) {
		t.Errorf("Multiply and MultiplyVec(Splat) disagree")
	}
}

func TestVec3_DivideByZeroPropagates(t *testing.T) {
	result := NewVec3(1, -1, 0).Divide(0)

	if !math32.IsInf(result.X(), 1) {
		t.Errorf("Expected +Inf x, got %v", result.X())
	}
	if !math32.IsInf(result.Y(), -1) {
		t.Errorf("Expected -Inf y, got %v", result.Y())
	}
	if !math32.IsNaN(result.Z()) {
		t.Errorf("Expected NaN z, got %v", result.Z())
	}
}

func TestVec3_Dot(t *testing.T) {
	if d := NewVec3(0, 1, 0).Dot(NewVec3(1, 0, 0)); d != 0 {
		t.Errorf("Orthogonal vectors should have zero dot product, got %v", d)
	}
	if d := NewVec3(1, 2, 3).Dot(NewVec3(4, -5, 6)); d != 12 {
		t.Errorf("Expected 12, got %v", d)
	}
}

func TestVec3_Cross(t *testing.T) {
	got := NewVec3(0, 1, 0).Cross(NewVec3(1, 0, 0))
	if got != NewVec3(0, 0, -1) {
		t.Errorf("Expected (0, 0, -1), got %v", got)
	}

	pairs := [][2]Vec3{
		{NewVec3(1, 2, 3), NewVec3(-4, 5, 0.5)},
		{NewVec3(0.3, -0.7, 2), NewVec3(9, 1, -1)},
		{NewVec3(1, 0, 0), NewVec3(1, 0, 0)},
	}
	for _, p := range pairs {
		a, b := p[0], p[1]
		ab := a.Cross(b)
		ba := b.Cross(a)
		if !ab.ApproxEqual(ba.Negate(), tolerance) {
			t.Errorf("Cross should be anti-commutative: %v vs %v", ab, ba)
		}

		// Compare against mgl32 as an independent implementation
		expected := FromMgl(a.Mgl().Cross(b.Mgl()))
		if !ab.ApproxEqual(expected, tolerance) {
			t.Errorf("Cross(%v, %v): expected %v, got %v", a, b, expected, ab)
		}
	}
}

func TestVec3_Length(t *testing.T) {
	if l := NewVec3(3, 4, 0).Length(); l != 5 {
		t.Errorf("Expected length 5, got %v", l)
	}
	if l := NewVec3(1, 2, 2).LengthSquared(); l != 9 {
		t.Errorf("Expected squared length 9, got %v", l)
	}
}

func TestVec3_Normalize(t *testing.T) {
	if got := NewVec3(1, 0, 0).Normalize(); got != NewVec3(1, 0, 0) {
		t.Errorf("Expected (1, 0, 0), got %v", got)
	}

	vectors := []Vec3{
		NewVec3(3, 4, 0),
		NewVec3(-1, -1, -1),
		NewVec3(0.001, 200, -7),
	}
	for _, v := range vectors {
		n := v.Normalize()
		if math32.Abs(n.Length()-1) > tolerance {
			t.Errorf("Normalize(%v) has length %v", v, n.Length())
		}
		expected := FromMgl(v.Mgl().Normalize())
		if !n.ApproxEqual(expected, tolerance) {
			t.Errorf("Normalize(%v): expected %v, got %v", v, expected, n)
		}
	}
}

func TestVec3_NormalizeZeroIsNaN(t *testing.T) {
	n := NewVec3(0, 0, 0).Normalize()
	if !math32.IsNaN(n.X()) || !math32.IsNaN(n.Y()) || !math32.IsNaN(n.Z()) {
		t.Errorf("Expected NaN components for zero vector, got %v", n)
	}
}

func TestVec3_Lerp(t *testing.T) {
	a := NewVec3(1, 1, 1)
	b := NewVec3(0.5, 0.7, 1.0)

	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp at t=0: expected %v, got %v", a, got)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp at t=1: expected %v, got %v", b, got)
	}

	mid := NewVec3(0, 0, 0).Lerp(NewVec3(2, 4, 6), 0.5)
	if !mid.ApproxEqual(NewVec3(1, 2, 3), tolerance) {
		t.Errorf("Lerp at t=0.5: expected (1, 2, 3), got %v", mid)
	}

	// Extrapolation is allowed
	ext := NewVec3(0, 0, 0).Lerp(NewVec3(1, 1, 1), 2)
	if !ext.ApproxEqual(NewVec3(2, 2, 2), tolerance) {
		t.Errorf("Lerp at t=2: expected (2, 2, 2), got %v", ext)
	}
}

func TestLerp_Float64(t *testing.T) {
	if got := Lerp(10.0, 20.0, 0.25); got != 12.5 {
		t.Errorf("Expected 12.5, got %v", got)
	}
}

func TestVec3_MglRoundTrip(t *testing.T) {
	v := NewVec3(1.5, -2, 3.25)
	if got := FromMgl(v.Mgl()); got != v {
		t.Errorf("Expected %v, got %v", v, got)
	}
	if m := v.Mgl(); m != (mgl32.Vec3{1.5, -2, 3.25}) {
		t.Errorf("Unexpected mgl32 vector %v", m)
	}
}
