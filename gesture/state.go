package gesture

import (
	"github.com/kelvane/dragpop/vmath"
)

// Phase identifies the interaction lifecycle stage
// The lock is held in every phase except PhaseIdle
type Phase uint8

const (
	PhaseIdle         Phase = iota // No interaction since last reset
	PhasePriming                   // Raw drag started, first update decides the direction gate
	PhaseLocked                    // Confirmed pop attempt, offset tracking
	PhaseSpringingBack             // Offset interpolating back to rest
)

// String returns the phase name for diagnostics
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhasePriming:
		return "Priming"
	case PhaseLocked:
		return "Locked"
	case PhaseSpringingBack:
		return "SpringingBack"
	}
	return "Unknown"
}

// State is the single mutable interaction record, owned by one Machine
type State struct {
	Phase Phase

	// Accumulated displacement, valid only when HasOffset
	// Unbounded: presentation clamps derived quantities, never the offset
	Offset    vmath.Vec2
	HasOffset bool

	// Last absolute pointer position seen, valid only when HasPointer
	// Cleared whenever a new interaction begins
	Pointer    vmath.Vec2
	HasPointer bool

	// DragActive is true while a raw-drag-sourced interaction is live
	// Scroll-sourced interactions lock without setting it
	DragActive bool
}

// Reset returns the state to its construction-time values
func (s *State) Reset() {
	*s = State{}
}

// Accumulate folds an absolute pointer position into the running offset,
// dividing movement by friction componentwise. The first call after the
// baseline was cleared only primes it: the offset is left untouched and
// false is returned
func (s *State) Accumulate(abs vmath.Vec2, friction float64) bool {
	if !s.HasPointer {
		s.Pointer = abs
		s.HasPointer = true
		return false
	}

	delta := abs.Sub(s.Pointer).Div(friction)
	base := vmath.Vec2{}
	if s.HasOffset {
		base = s.Offset
	}
	s.Offset = base.Add(delta)
	s.HasOffset = true
	s.Pointer = abs
	return true
}
