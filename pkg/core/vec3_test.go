package core

import (
	"math"
	"testing"
)

func vecsEqual(a, b Vec3, tolerance float64) bool {
	return a.Subtract(b).Length() <= tolerance
}

func TestVec3_BasicArithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	if got := a.Add(b); got != NewVec3(5, -3, 9) {
		t.Errorf("Add: got %v", got)
	}
	if got := a.Subtract(b); got != NewVec3(-3, 7, -3) {
		t.Errorf("Subtract: got %v", got)
	}
	if got := a.Multiply(2); got != NewVec3(2, 4, 6) {
		t.Errorf("Multiply: got %v", got)
	}
	if got := a.MultiplyVec(b); got != NewVec3(4, -10, 18) {
		t.Errorf("MultiplyVec: got %v", got)
	}
	if got := a.Dot(b); got != 12 {
		t.Errorf("Dot: expected 12, got %v", got)
	}
	if got := NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)); got != NewVec3(0, 0, 1) {
		t.Errorf("Cross: got %v", got)
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 4, 0).Normalize()
	if !vecsEqual(v, NewVec3(0.6, 0.8, 0), 1e-12) {
		t.Errorf("Expected (0.6, 0.8, 0), got %v", v)
	}
	if math.Abs(v.Length()-1) > 1e-12 {
		t.Errorf("Normalized length should be 1, got %v", v.Length())
	}
}

func TestVec3_FastRenormalize(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
	}{
		{"slightly long", NewVec3(0, 0, 1.0001)},
		{"slightly short", NewVec3(0.99995, 0, 0)},
		{"drifted diagonal", NewVec3(0.57738, 0.57734, 0.57736)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			renorm := tt.v.FastRenormalize()
			before := math.Abs(tt.v.Length() - 1)
			after := math.Abs(renorm.Length() - 1)
			if after >= before {
				t.Errorf("Renormalization did not improve: before %g, after %g", before, after)
			}
			if after > 1e-7 {
				t.Errorf("Expected near-unit length after one Newton step, got error %g", after)
			}
		})
	}
}

func TestVec3_Reflect(t *testing.T) {
	// 45 degree incoming ray off a floor normal gives an exact mirror bounce
	reflected := NewVec3(1, -1, 0).Reflect(NewVec3(0, 1, 0))
	if !vecsEqual(reflected, NewVec3(1, 1, 0), 1e-12) {
		t.Errorf("Expected (1, 1, 0), got %v", reflected)
	}
}

func TestVec3_Refract(t *testing.T) {
	normal := NewVec3(0, 1, 0)

	t.Run("straight through is unbent", func(t *testing.T) {
		refracted, ok := NewVec3(0, -1, 0).Refract(normal, 1.0/1.5)
		if !ok {
			t.Fatal("Expected refraction")
		}
		if !vecsEqual(refracted, NewVec3(0, -1, 0), 1e-9) {
			t.Errorf("Expected (0, -1, 0), got %v", refracted)
		}
	})

	t.Run("bends toward normal entering denser medium", func(t *testing.T) {
		incoming := NewVec3(1, -1, 0).Normalize()
		refracted, ok := incoming.Refract(normal, 1.0/1.5)
		if !ok {
			t.Fatal("Expected refraction")
		}
		// Snell: sin(theta_t) = sin(45 deg) / 1.5
		expectedSin := math.Sin(math.Pi/4) / 1.5
		gotSin := math.Abs(refracted.Normalize().X)
		if math.Abs(gotSin-expectedSin) > 1e-9 {
			t.Errorf("Expected sin %g, got %g", expectedSin, gotSin)
		}
	})

	t.Run("total internal reflection", func(t *testing.T) {
		// Shallow exit from glass to air exceeds the critical angle
		incoming := NewVec3(1, -0.1, 0).Normalize()
		if _, ok := incoming.Refract(normal, 1.5); ok {
			t.Error("Expected total internal reflection")
		}
	})
}

func TestVec3_Lerp(t *testing.T) {
	a := NewVec3(1, 1, 1)
	b := NewVec3(0.5, 0.7, 1.0)

	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) should return the first endpoint exactly, got %v", got)
	}
	if got := a.Lerp(b, 1); !vecsEqual(got, b, 1e-12) {
		t.Errorf("Lerp(1) should return the second endpoint, got %v", got)
	}
	if got := a.Lerp(b, 0.5); !vecsEqual(got, NewVec3(0.75, 0.85, 1.0), 1e-12) {
		t.Errorf("Lerp(0.5): got %v", got)
	}
}

func TestVec3_NearZero(t *testing.T) {
	if !NewVec3(1e-9, -1e-9, 0).NearZero() {
		t.Error("Expected near zero")
	}
	if NewVec3(1e-7, 0, 0).NearZero() {
		t.Error("Expected not near zero")
	}
}

func TestVec3_Clamp(t *testing.T) {
	v := NewVec3(-0.5, 0.5, 1.5).Clamp(0, 1)
	if v != NewVec3(0, 0.5, 1) {
		t.Errorf("Expected (0, 0.5, 1), got %v", v)
	}
}
