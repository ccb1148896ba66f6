package gesture

import (
	"math"
	"testing"

	"github.com/kelvane/dragpop/vmath"
)

func TestAccumulatePrimesFirstCall(t *testing.T) {
	var s State

	changed := s.Accumulate(vmath.Vec2{X: 40, Y: 90}, 1.0)
	if changed {
		t.Error("Expected first call to only prime the baseline")
	}
	if s.HasOffset {
		t.Error("Expected no offset after priming call")
	}
	if !s.HasPointer || s.Pointer != (vmath.Vec2{X: 40, Y: 90}) {
		t.Errorf("Expected pointer baseline {40 90}, got %v", s.Pointer)
	}
}

// TestAccumulateSumProperty verifies that with friction=1 the offset after N
// updates equals the vector sum of consecutive position differences
func TestAccumulateSumProperty(t *testing.T) {
	path := []vmath.Vec2{
		{X: 0, Y: 0},
		{X: 3, Y: -2},
		{X: 10, Y: 4},
		{X: 8, Y: 20},
		{X: -5, Y: 25},
	}

	var s State
	for _, p := range path {
		s.Accumulate(p, 1.0)
	}

	want := path[len(path)-1].Sub(path[0])
	if s.Offset != want {
		t.Errorf("Expected offset to be %v, got %v", want, s.Offset)
	}
}

// TestAccumulateFrictionScaling verifies friction=2 yields exactly half the
// friction=1 offset at every intermediate step
func TestAccumulateFrictionScaling(t *testing.T) {
	path := []vmath.Vec2{
		{X: 0, Y: 0},
		{X: 7, Y: 1},
		{X: 9, Y: -6},
		{X: 30, Y: 12},
	}

	var unit, damped State
	for i, p := range path {
		unit.Accumulate(p, 1.0)
		damped.Accumulate(p, 2.0)

		if i == 0 {
			continue
		}
		if math.Abs(damped.Offset.X-unit.Offset.X/2) > 1e-12 ||
			math.Abs(damped.Offset.Y-unit.Offset.Y/2) > 1e-12 {
			t.Errorf("Step %d: expected half of %v, got %v", i, unit.Offset, damped.Offset)
		}
	}
}

func TestStateReset(t *testing.T) {
	s := State{
		Phase:      PhaseLocked,
		Offset:     vmath.Vec2{X: 1, Y: 2},
		HasOffset:  true,
		Pointer:    vmath.Vec2{X: 3, Y: 4},
		HasPointer: true,
		DragActive: true,
	}

	s.Reset()

	if s != (State{}) {
		t.Errorf("Expected zero state after reset, got %+v", s)
	}
	if s.Phase != PhaseIdle {
		t.Errorf("Expected PhaseIdle after reset, got %v", s.Phase)
	}
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{PhaseIdle, "Idle"},
		{PhasePriming, "Priming"},
		{PhaseLocked, "Locked"},
		{PhaseSpringingBack, "SpringingBack"},
		{Phase(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, got)
		}
	}
}
