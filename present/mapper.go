package present

import (
	"math"

	"github.com/kelvane/dragpop/vmath"
)

// Visual floors at full travel
const (
	minScale   = 0.85
	minOpacity = 0.4
)

// Transform maps a drag offset to the rendered pop-out appearance
// Translation carries the raw offset; opacity and scale are derived and
// clamped even though the offset itself is unbounded
type Transform struct {
	Opacity    float64 // 1 at rest, fading toward minOpacity with travel
	Scale      float64 // 1 at rest, shrinking toward minScale with travel
	TranslateX float64
	TranslateY float64
}

// Rest is the transform of an untouched surface
func Rest() Transform {
	return Transform{Opacity: 1, Scale: 1}
}

// Map derives the render transform for the current offset against the
// viewport dimensions. Travel progress is the larger fractional displacement
// of the two axes, clamped to the unit range
func Map(offset vmath.Vec2, w, h float64) Transform {
	var px, py float64
	if w > 0 {
		px = math.Abs(offset.X) / w
	}
	if h > 0 {
		py = math.Abs(offset.Y) / h
	}
	progress := vmath.Clamp01(math.Max(px, py))

	return Transform{
		Opacity:    1 - progress*(1-minOpacity),
		Scale:      1 - progress*(1-minScale),
		TranslateX: offset.X,
		TranslateY: offset.Y,
	}
}
