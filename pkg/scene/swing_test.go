package scene

import (
	"math"
	"testing"
)

func TestSwingAnimatorSettles(t *testing.T) {
	s := NewSwingAnimator(60)
	if !s.Settled() || s.Angle != 0 {
		t.Fatal("new animator should rest closed")
	}
	s.SetOpen(true)
	if s.Settled() {
		t.Fatal("animator settled before moving")
	}

	prev := 0.0
	for range 600 {
		a := s.Update()
		if a < prev-1e-9 {
			t.Fatalf("critically damped swing went backward: %v -> %v", prev, a)
		}
		if a > OpenAngle+1e-6 {
			t.Fatalf("swing overshot to %v", a)
		}
		prev = a
		if s.Settled() {
			break
		}
	}
	if !s.Settled() || s.Angle != OpenAngle {
		t.Fatalf("angle = %v after 10s, want %v", s.Angle, OpenAngle)
	}

	if s.Toggle() {
		t.Fatal("Toggle from open should close")
	}
	for range 600 {
		s.Update()
	}
	if math.Abs(s.Angle) > 1e-9 {
		t.Errorf("angle = %v, want 0", s.Angle)
	}
}

func TestSwingDrivesAssembler(t *testing.T) {
	a := NewDefault()
	s := NewSwingAnimator(30)
	s.SetOpen(true)
	for range 10 {
		a.SetOpenAngle(s.Update())
	}
	if !a.IsOpen() || a.OpenAngle() <= 0 || a.OpenAngle() > OpenAngle {
		t.Errorf("open angle = %v mid-swing", a.OpenAngle())
	}
}
