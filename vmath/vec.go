package vmath

import "math"

// Vec2 is a 2D vector in continuous surface coordinates
// Gesture offsets and pointer positions are sub-cell, hence float64
type Vec2 struct {
	X, Y float64
}

// Add returns v + o componentwise
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o componentwise
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale multiplies vector by scalar factor
func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{v.X * f, v.Y * f}
}

// Div divides vector by scalar, componentwise
// Caller guarantees d != 0
func (v Vec2) Div(d float64) Vec2 {
	return Vec2{v.X / d, v.Y / d}
}

// Magnitude returns Euclidean vector length
func (v Vec2) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero reports whether both components are exactly zero
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Lerp interpolates between a and b at parameter t
// t outside [0,1] extrapolates
func Lerp(a, b Vec2, t float64) Vec2 {
	return Vec2{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}

// Clamp limits f to the [lo, hi] range
func Clamp(f, lo, hi float64) float64 {
	if f < lo {
		return lo
	}
	if f > hi {
		return hi
	}
	return f
}

// Clamp01 limits f to the unit range
func Clamp01(f float64) float64 {
	return Clamp(f, 0, 1)
}
