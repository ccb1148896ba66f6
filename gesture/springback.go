package gesture

import (
	"time"

	"github.com/kelvane/dragpop/vmath"
)

// Tween is a pollable time-bounded interpolation of the offset back to rest
// The host's frame clock drives it through Advance; no timer of its own
type Tween struct {
	from     vmath.Vec2
	elapsed  time.Duration
	duration time.Duration
}

// NewTween starts an interpolation from the given offset to zero
func NewTween(from vmath.Vec2, duration time.Duration) *Tween {
	return &Tween{from: from, duration: duration}
}

// Advance moves the clock forward and returns the current offset
// done is true once the full duration has elapsed; the offset is then zero
func (t *Tween) Advance(dt time.Duration) (pos vmath.Vec2, done bool) {
	t.elapsed += dt
	if t.elapsed >= t.duration {
		return vmath.Vec2{}, true
	}
	progress := float64(t.elapsed) / float64(t.duration)
	return vmath.Lerp(t.from, vmath.Vec2{}, progress), false
}

// Restart rebases the interpolation on a new live offset
// Used when a spring-back begins while one is already running
func (t *Tween) Restart(from vmath.Vec2) {
	t.from = from
	t.elapsed = 0
}
