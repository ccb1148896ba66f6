package gesture

import (
	"github.com/kelvane/dragpop/vmath"
)

// NotificationKind discriminates scroll notifications from the inner region
type NotificationKind uint8

const (
	NotificationOverscroll NotificationKind = iota // Dragged past a content boundary
	NotificationScroll                             // In-bounds scroll movement
	NotificationScrollEnd                          // Scroll interaction released
)

// DragDetails carries the pointer data attached to a scroll notification
type DragDetails struct {
	Position    vmath.Vec2
	Velocity    vmath.Vec2
	HasVelocity bool
}

// Notification is a scroll event bubbling from the inner scrollable region
// Drag is nil for phantom notifications carrying no pointer data
type Notification struct {
	Kind       NotificationKind
	Overscroll float64 // Signed overshoot, overscroll notifications only
	Drag       *DragDetails
}

// PointerKind discriminates raw drag gesture events on the surface itself
type PointerKind uint8

const (
	PointerDragStart PointerKind = iota
	PointerDragUpdate
	PointerDragEnd
)

// PointerEvent is a raw drag gesture event in absolute surface coordinates
type PointerEvent struct {
	Kind        PointerKind
	Position    vmath.Vec2
	Velocity    vmath.Vec2
	HasVelocity bool
}
