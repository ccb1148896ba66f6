package gesture

import "time"

// Direction constrains which raw-drag gestures can initiate a pop
// One-way values additionally veto a first movement that contradicts them
type Direction uint8

const (
	DirectionNone       Direction = iota // Raw drags not wired
	DirectionToTop                       // Upward swipe only
	DirectionToBottom                    // Downward swipe only
	DirectionToLeft                      // Leftward swipe only
	DirectionToRight                     // Rightward swipe only
	DirectionHorizontal                  // Either horizontal direction
	DirectionVertical                    // Either vertical direction
)

// WiresHorizontal reports whether horizontal drag gestures feed the machine
func (d Direction) WiresHorizontal() bool {
	return d == DirectionToLeft || d == DirectionToRight || d == DirectionHorizontal
}

// WiresVertical reports whether vertical drag gestures feed the machine
func (d Direction) WiresVertical() bool {
	return d == DirectionToTop || d == DirectionToBottom || d == DirectionVertical
}

// ScrollOption gates which overscroll sign may initiate a scroll-sourced pop
// The gate applies only before the interaction locks
type ScrollOption uint8

const (
	ScrollPopStart ScrollOption = iota // Only negative overscroll initiates
	ScrollPopEnd                       // Only positive overscroll initiates
	ScrollPopBoth                      // Either sign initiates
	ScrollPopNone                      // Scroll-sourced pops disabled
)

// Commit thresholds and spring-back timing
const (
	// Distance dismissal: |offset.y| >= height/distanceDivisorY or
	// |offset.x| >= width/distanceDivisorX, both inclusive
	distanceDivisorY = 3.0
	distanceDivisorX = 1.8

	// Velocity dismissal on friction-compensated components, strict >
	velocityThresholdY = 150.0
	velocityThresholdX = 200.0

	// SpringBackDuration bounds the return interpolation to rest
	SpringBackDuration = 100 * time.Millisecond
)

// Viewport supplies the surface dimensions used by distance thresholds
type Viewport interface {
	Size() (w, h float64)
}

// Config is immutable per machine instance
//
// Friction divides every accumulated delta; > 1 dampens, < 1 amplifies.
// Friction <= 0 is a programmer error: validate before construction, the
// machine does not check it at runtime
type Config struct {
	Friction     float64
	Direction    Direction
	ScrollOption ScrollOption
	Enabled      bool
}

// DefaultConfig returns the stock configuration: unit friction, raw drags
// unwired, start-edge scroll pops, enabled
func DefaultConfig() Config {
	return Config{
		Friction:     1.0,
		Direction:    DirectionNone,
		ScrollOption: ScrollPopStart,
		Enabled:      true,
	}
}
