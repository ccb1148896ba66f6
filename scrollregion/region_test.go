package scrollregion

import "testing"

func TestScrollByWithinBounds(t *testing.T) {
	r := New(50, 10)

	if got := r.ScrollBy(5); got != 0 {
		t.Errorf("Expected no overshoot in-bounds, got %d", got)
	}
	if r.Offset != 5 {
		t.Errorf("Expected offset 5, got %d", r.Offset)
	}
}

func TestScrollByOvershoot(t *testing.T) {
	tests := []struct {
		name          string
		total         int
		visible       int
		start         int
		delta         int
		wantOvershoot int
		wantOffset    int
	}{
		{"Past start", 50, 10, 0, -3, -3, 0},
		{"Partially absorbed at start", 50, 10, 2, -5, -3, 0},
		{"Past end", 50, 10, 40, 4, 4, 40},
		{"Partially absorbed at end", 50, 10, 38, 5, 3, 40},
		{"Content shorter than viewport", 5, 10, 0, 1, 1, 0},
		{"Content shorter, upward", 5, 10, 0, -2, -2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(tt.total, tt.visible)
			r.Offset = tt.start
			if got := r.ScrollBy(tt.delta); got != tt.wantOvershoot {
				t.Errorf("Expected overshoot %d, got %d", tt.wantOvershoot, got)
			}
			if r.Offset != tt.wantOffset {
				t.Errorf("Expected offset %d, got %d", tt.wantOffset, r.Offset)
			}
		})
	}
}

func TestBoundaryQueries(t *testing.T) {
	r := New(30, 10)

	if !r.AtStart() {
		t.Error("Expected AtStart at offset 0")
	}
	if r.AtEnd() {
		t.Error("Expected not AtEnd at offset 0")
	}

	r.ScrollTo(20)
	if !r.AtEnd() {
		t.Error("Expected AtEnd at max offset")
	}

	short := New(5, 10)
	if !short.AtStart() || !short.AtEnd() {
		t.Error("Expected short content to be at both boundaries")
	}
}

func TestSetTotalReclamps(t *testing.T) {
	r := New(50, 10)
	r.ScrollTo(40)

	r.SetTotal(20)
	if r.Offset != 10 {
		t.Errorf("Expected offset reclamped to 10, got %d", r.Offset)
	}
}

func TestPageDelta(t *testing.T) {
	if got := PageDelta(10); got != 5 {
		t.Errorf("Expected page delta 5, got %d", got)
	}
	if got := PageDelta(1); got != 1 {
		t.Errorf("Expected minimum page delta 1, got %d", got)
	}
}
