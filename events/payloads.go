package events

import (
	"github.com/kelvane/dragpop/vmath"
)

// Source identifies which interaction source produced an event
type Source uint8

const (
	SourceScroll Source = iota // Overscroll bubbling from the inner scrollable
	SourceDrag                 // Raw pointer drag on the surface
)

// DragStartedPayload records which source confirmed the pop attempt
type DragStartedPayload struct {
	Source Source
}

// OffsetChangedPayload carries the offset after an accepted delta
type OffsetChangedPayload struct {
	Offset vmath.Vec2
}

// SpringBackStartedPayload anchors the interpolation start point
type SpringBackStartedPayload struct {
	From vmath.Vec2
}

// DismissedPayload captures the commit inputs for the dismissal
type DismissedPayload struct {
	Offset   vmath.Vec2
	Velocity vmath.Vec2
}
