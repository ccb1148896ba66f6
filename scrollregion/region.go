package scrollregion

// Region is a clamped scroll window over a list of items
// Unlike a plain scroll state it reports boundary overshoot to the caller,
// which is what feeds overscroll notifications into the gesture machine
type Region struct {
	Offset  int // First visible item index
	Total   int // Total item count
	Visible int // Visible item count (viewport height)
}

// New creates an initialized region
func New(total, visible int) *Region {
	return &Region{
		Total:   total,
		Visible: visible,
	}
}

// --- Scroll manipulation ---

// ScrollBy adjusts offset by delta and returns the unconsumed overshoot:
// negative past the start, positive past the end, zero when fully absorbed
func (r *Region) ScrollBy(delta int) (overshoot int) {
	target := r.Offset + delta
	max := r.maxOffset()
	switch {
	case target < 0:
		overshoot = target
		r.Offset = 0
	case target > max:
		overshoot = target - max
		r.Offset = max
	default:
		r.Offset = target
	}
	return overshoot
}

// ScrollTo sets offset to a specific position, clamping to valid range
func (r *Region) ScrollTo(pos int) {
	r.Offset = pos
	r.Clamp()
}

// PageUp scrolls up by half visible height
func (r *Region) PageUp() (overshoot int) {
	return r.ScrollBy(-PageDelta(r.Visible))
}

// PageDown scrolls down by half visible height
func (r *Region) PageDown() (overshoot int) {
	return r.ScrollBy(PageDelta(r.Visible))
}

// --- Size updates ---

// SetTotal updates total count and reclamps
func (r *Region) SetTotal(total int) {
	r.Total = total
	r.Clamp()
}

// SetVisible updates visible count and reclamps
func (r *Region) SetVisible(visible int) {
	r.Visible = visible
	r.Clamp()
}

// Clamp ensures offset is within valid range
func (r *Region) Clamp() {
	if r.Offset < 0 {
		r.Offset = 0
	}
	if max := r.maxOffset(); r.Offset > max {
		r.Offset = max
	}
}

// --- Position queries ---

// AtStart returns true if scrolled to the top boundary
func (r *Region) AtStart() bool {
	return r.Offset == 0
}

// AtEnd returns true if scrolled to the bottom boundary
func (r *Region) AtEnd() bool {
	return r.Offset >= r.maxOffset()
}

func (r *Region) maxOffset() int {
	if r.Total <= r.Visible {
		return 0
	}
	return r.Total - r.Visible
}

// PageDelta returns recommended page scroll amount
func PageDelta(visible int) int {
	delta := visible / 2
	if delta < 1 {
		delta = 1
	}
	return delta
}
