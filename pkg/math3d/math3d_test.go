package math3d

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestCrossRightHanded(t *testing.T) {
	got := Right().Cross(Front())
	if !got.ApproxEqual(Up(), eps) {
		t.Errorf("X × Y = %v, want %v", got, Up())
	}
}

func TestNormalizeZero(t *testing.T) {
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("Normalize(0) = %v, want zero", got)
	}
}

func TestRotateZQuarterTurn(t *testing.T) {
	got := RotateZ(math.Pi / 2).MulVec3(Right())
	if !got.ApproxEqual(Front(), eps) {
		t.Errorf("RotateZ(90°)·X = %v, want %v", got, Front())
	}
}

func TestRotateAbout(t *testing.T) {
	pivot := V3(-500, 60, 0)
	m := RotateAbout(pivot, Up(), Radians(90))

	tests := []struct {
		name string
		in   Vec3
		want Vec3
	}{
		{"pivot is fixed", pivot, pivot},
		{"point on pivot line is fixed", V3(-500, 60, 2000), V3(-500, 60, 2000)},
		{"point right of pivot swings forward", V3(-400, 60, 100), V3(-500, 160, 100)},
		{"point behind pivot swings right", V3(-500, 20, 0), V3(-460, 60, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.MulVec3(tt.in); !got.ApproxEqual(tt.want, 1e-9) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRotateMatchesRotateZ(t *testing.T) {
	if !Rotate(Up(), 0.7).ApproxEqual(RotateZ(0.7), eps) {
		t.Error("Rotate around Z differs from RotateZ")
	}
}

func TestMulOrder(t *testing.T) {
	// Translate then scale: scale applies first.
	m := Translate(V3(10, 0, 0)).Mul(Scale(V3(2, 2, 2)))
	if got := m.MulVec3(V3(1, 1, 1)); !got.ApproxEqual(V3(12, 2, 2), eps) {
		t.Errorf("got %v, want (12, 2, 2)", got)
	}
}

func TestIsIdentity(t *testing.T) {
	if !Identity().IsIdentity() {
		t.Error("Identity().IsIdentity() = false")
	}
	if RotateZ(0.1).IsIdentity() {
		t.Error("RotateZ(0.1).IsIdentity() = true")
	}
	if !RotateAbout(V3(3, 4, 0), Up(), 0).IsIdentity() {
		t.Error("zero rotation about a pivot is not identity")
	}
}

func TestPerspectiveDivide(t *testing.T) {
	v := Vec4{2, 4, 6, 2}
	if got := v.PerspectiveDivide(); got != V3(1, 2, 3) {
		t.Errorf("got %v", got)
	}
}

func TestVec2Cross(t *testing.T) {
	if got := V2(1, 0).Cross(V2(0, 1)); got != 1 {
		t.Errorf("got %v, want 1", got)
	}
}
