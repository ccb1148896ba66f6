package gesture

import (
	"math"

	"github.com/kelvane/dragpop/vmath"
)

// commitOutcome is the end-of-interaction decision
type commitOutcome uint8

const (
	commitDismiss    commitOutcome = iota // Pop the surface
	commitSpringBack                      // Interpolate back to rest
)

// decide evaluates the commit rules in order: distance dismissal first,
// velocity dismissal second, spring-back otherwise
//
// Velocity components are compensated by friction squared: the division was
// applied to each of the accumulation steps the release velocity spans
func decide(offset, velocity vmath.Vec2, opt ScrollOption, friction, w, h float64) commitOutcome {
	if directionValid(opt, offset.Y) &&
		(math.Abs(offset.Y) >= h/distanceDivisorY || math.Abs(offset.X) >= w/distanceDivisorX) {
		return commitDismiss
	}

	vy := velocity.Y / (friction * friction)
	vx := velocity.X / (friction * friction)
	if directionValid(opt, vy) &&
		(math.Abs(vy) > velocityThresholdY || math.Abs(vx) > velocityThresholdX) {
		return commitDismiss
	}

	return commitSpringBack
}

// directionValid applies the one-sided scroll-option veto to a vertical
// component. ScrollPopBoth and ScrollPopNone impose none
func directionValid(opt ScrollOption, y float64) bool {
	switch opt {
	case ScrollPopStart:
		return y >= 0
	case ScrollPopEnd:
		return y <= 0
	}
	return true
}
