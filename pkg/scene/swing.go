package scene

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// SwingAnimator eases the open angle toward 0 or OpenAngle with a
// critically damped spring. Feed Update's result to SetOpenAngle once per
// frame.
type SwingAnimator struct {
	Angle    float64
	velocity float64
	target   float64
	spring   harmonica.Spring
}

// NewSwingAnimator creates a closed animator stepping at fps frames per second.
func NewSwingAnimator(fps int) *SwingAnimator {
	return &SwingAnimator{
		spring: harmonica.NewSpring(harmonica.FPS(fps), 5.0, 1.0),
	}
}

// SetOpen sets the target state.
func (s *SwingAnimator) SetOpen(open bool) {
	s.target = 0
	if open {
		s.target = OpenAngle
	}
}

// Toggle flips the target state and reports whether it is now open.
func (s *SwingAnimator) Toggle() bool {
	s.SetOpen(s.target == 0)
	return s.target != 0
}

// Update advances one frame and returns the new angle.
func (s *SwingAnimator) Update() float64 {
	s.Angle, s.velocity = s.spring.Update(s.Angle, s.velocity, s.target)
	if s.Settled() {
		s.Angle, s.velocity = s.target, 0
	}
	return s.Angle
}

// Settled reports whether the angle has come to rest at the target.
func (s *SwingAnimator) Settled() bool {
	return math.Abs(s.Angle-s.target) < 0.01 && math.Abs(s.velocity) < 0.01
}
