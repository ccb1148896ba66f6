package present

import "github.com/charmbracelet/harmonica"

// Smoother eases the derived transform channels with a spring so per-frame
// jumps settle instead of snapping. Translation passes through untouched:
// the finger must stay glued to the panel
type Smoother struct {
	spring harmonica.Spring

	scale      float64
	scaleVel   float64
	opacity    float64
	opacityVel float64
}

// NewSmoother creates a smoother tuned for the given frame rate
func NewSmoother(fps int) *Smoother {
	return &Smoother{
		spring:  harmonica.NewSpring(harmonica.FPS(fps), 8.0, 0.9),
		scale:   1,
		opacity: 1,
	}
}

// Step advances the springs one frame toward the target transform and
// returns the eased result
func (s *Smoother) Step(target Transform) Transform {
	s.scale, s.scaleVel = s.spring.Update(s.scale, s.scaleVel, target.Scale)
	s.opacity, s.opacityVel = s.spring.Update(s.opacity, s.opacityVel, target.Opacity)

	target.Scale = s.scale
	target.Opacity = s.opacity
	return target
}

// Reset snaps the springs back to the rest transform
func (s *Smoother) Reset() {
	s.scale, s.scaleVel = 1, 0
	s.opacity, s.opacityVel = 1, 0
}
