package events

import (
	"time"
)

// EventType represents the type of gesture event
type EventType int

const (
	// EventDragStarted marks an interaction confirmed as a pop attempt
	// Trigger: first accepted delta (overscroll or raw drag start)
	// Consumer: presentation layer | Payload: *DragStartedPayload
	EventDragStarted EventType = iota

	// EventOffsetChanged signals an accepted delta was folded into the offset
	// Trigger: accumulator update
	// Consumer: presentation layer | Payload: *OffsetChangedPayload
	EventOffsetChanged

	// EventSpringBackStarted signals the commit decided against dismissal
	// Trigger: end-of-interaction below thresholds
	// Consumer: presentation layer | Payload: *SpringBackStartedPayload
	EventSpringBackStarted

	// EventDragStopped marks a locked interaction fully settled
	// Trigger: spring-back interpolation completed, state reset
	// Consumer: presentation layer | Payload: nil
	EventDragStopped

	// EventDismissed signals the commit decided to dismiss the surface
	// Fired at most once per interaction, immediately before EventPopRequested
	// Consumer: presentation layer | Payload: *DismissedPayload
	EventDismissed

	// EventPopRequested asks the host to tear down the current surface
	// Trigger: dismissal commit | Payload: nil
	EventPopRequested
)

// String returns the event name for diagnostics
func (t EventType) String() string {
	switch t {
	case EventDragStarted:
		return "DragStarted"
	case EventOffsetChanged:
		return "OffsetChanged"
	case EventSpringBackStarted:
		return "SpringBackStarted"
	case EventDragStopped:
		return "DragStopped"
	case EventDismissed:
		return "Dismissed"
	case EventPopRequested:
		return "PopRequested"
	}
	return "Unknown"
}

// GestureEvent represents a single gesture event with metadata
type GestureEvent struct {
	Type      EventType
	Payload   any
	Timestamp time.Time
}
