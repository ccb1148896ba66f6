package gesture

import (
	"testing"
	"time"

	"github.com/kelvane/dragpop/vmath"
)

func TestTweenAdvance(t *testing.T) {
	tw := NewTween(vmath.Vec2{X: 100, Y: -50}, 100*time.Millisecond)

	pos, done := tw.Advance(25 * time.Millisecond)
	if done {
		t.Fatal("Expected tween to still be running at 25ms")
	}
	if pos != (vmath.Vec2{X: 75, Y: -37.5}) {
		t.Errorf("Expected {75 -37.5} at quarter progress, got %v", pos)
	}

	pos, done = tw.Advance(25 * time.Millisecond)
	if done {
		t.Fatal("Expected tween to still be running at 50ms")
	}
	if pos != (vmath.Vec2{X: 50, Y: -25}) {
		t.Errorf("Expected {50 -25} at half progress, got %v", pos)
	}

	pos, done = tw.Advance(50 * time.Millisecond)
	if !done {
		t.Fatal("Expected tween to complete at 100ms")
	}
	if !pos.IsZero() {
		t.Errorf("Expected zero offset on completion, got %v", pos)
	}
}

func TestTweenOvershootClampsToDone(t *testing.T) {
	tw := NewTween(vmath.Vec2{X: 10}, 100*time.Millisecond)

	pos, done := tw.Advance(250 * time.Millisecond)
	if !done {
		t.Fatal("Expected single oversized step to complete the tween")
	}
	if !pos.IsZero() {
		t.Errorf("Expected zero offset, got %v", pos)
	}
}

func TestTweenRestart(t *testing.T) {
	tw := NewTween(vmath.Vec2{X: 100}, 100*time.Millisecond)
	tw.Advance(80 * time.Millisecond)

	// Restart rebases on a new live offset and a fresh clock
	tw.Restart(vmath.Vec2{X: 40})

	pos, done := tw.Advance(50 * time.Millisecond)
	if done {
		t.Fatal("Expected restarted tween to still be running at 50ms")
	}
	if pos != (vmath.Vec2{X: 20}) {
		t.Errorf("Expected {20 0} at half progress after restart, got %v", pos)
	}
}
