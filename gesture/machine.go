package gesture

import (
	"time"

	"github.com/kelvane/dragpop/events"
	"github.com/kelvane/dragpop/vmath"
)

// Machine fuses two interaction sources, raw pointer drags and overscroll
// bubbling from an inner scrollable, into one drag offset and decides on
// release between dismissing the surface and springing back to rest
//
// Single-threaded: all methods must be called from the host's event loop.
// Lifecycle events are pushed to the queue, never invoked inline
type Machine struct {
	cfg      Config
	viewport Viewport
	queue    *events.Queue

	state State
	tween *Tween
}

// NewMachine creates a machine bound to one displayed surface
// cfg.Friction must be positive; the viewport supplies threshold dimensions
func NewMachine(cfg Config, viewport Viewport, queue *events.Queue) *Machine {
	return &Machine{
		cfg:      cfg,
		viewport: viewport,
		queue:    queue,
	}
}

// Offset returns the live drag offset; ok is false when no interaction has
// produced an accepted delta since the last reset
func (m *Machine) Offset() (vmath.Vec2, bool) {
	return m.state.Offset, m.state.HasOffset
}

// Phase returns the current interaction phase
func (m *Machine) Phase() Phase {
	return m.state.Phase
}

// Config returns the immutable configuration
func (m *Machine) Config() Config {
	return m.cfg
}

// SetEnabled toggles the external disable switch. Disabling short-circuits
// all input handling without clearing in-flight state; re-enabling resumes
// with whatever state was left, a documented caller responsibility
func (m *Machine) SetEnabled(enabled bool) {
	m.cfg.Enabled = enabled
}

// HandleScroll arbitrates a scroll notification from the inner region
// Returns true if the event was accepted
func (m *Machine) HandleScroll(n Notification) bool {
	if !m.cfg.Enabled || m.state.Phase == PhaseSpringingBack {
		return false
	}

	switch n.Kind {
	case NotificationOverscroll:
		return m.onOverscroll(n)
	case NotificationScroll:
		return m.onScrollUpdate(n)
	case NotificationScrollEnd:
		return m.onScrollEnd(n)
	}
	return false
}

// onOverscroll accepts overshoot events, locking the interaction on the
// first accepted one. Pre-lock the overscroll sign must agree with the
// configured edge; post-lock every sign tracks the finger
func (m *Machine) onOverscroll(n Notification) bool {
	if n.Drag == nil {
		return false
	}

	if !m.lockHeld() {
		switch m.cfg.ScrollOption {
		case ScrollPopStart:
			if n.Overscroll >= 0 {
				return false
			}
		case ScrollPopEnd:
			if n.Overscroll <= 0 {
				return false
			}
		case ScrollPopNone:
			return false
		}
		m.lock(events.SourceScroll)
	}

	if m.state.Accumulate(n.Drag.Position, m.cfg.Friction) {
		m.emitOffset()
	}
	return true
}

// onScrollUpdate accepts plain scroll movement only once locked: a confirmed
// pop attempt keeps tracking the finger even when the inner scrollable stops
// reporting overscroll
func (m *Machine) onScrollUpdate(n Notification) bool {
	if !m.lockHeld() || n.Drag == nil {
		return false
	}
	if m.state.Accumulate(n.Drag.Position, m.cfg.Friction) {
		m.emitOffset()
	}
	return true
}

// onScrollEnd forwards the release to the commit engine
// Notifications without drag details or velocity are phantom: ignored whole
func (m *Machine) onScrollEnd(n Notification) bool {
	if n.Drag == nil || !n.Drag.HasVelocity {
		return false
	}
	return m.commit(n.Drag.Velocity)
}

// HandleDragStart begins a raw-drag interaction: primes the pointer baseline
// at the start position and opens the direction gate
func (m *Machine) HandleDragStart(ev PointerEvent) bool {
	if !m.cfg.Enabled || m.state.Phase == PhaseSpringingBack {
		return false
	}
	if m.cfg.Direction == DirectionNone {
		return false
	}

	alreadyLocked := m.lockHeld()
	m.state.DragActive = true
	m.state.Pointer = ev.Position
	m.state.HasPointer = true
	m.state.Phase = PhasePriming
	if !alreadyLocked {
		m.push(events.EventDragStarted, &events.DragStartedPayload{Source: events.SourceDrag})
	}
	return true
}

// HandleDragUpdate folds drag movement into the offset. The first update of
// an interaction runs the one-way direction gate: a contradicting initial
// movement kills the raw-drag contribution entirely
func (m *Machine) HandleDragUpdate(ev PointerEvent) bool {
	if !m.cfg.Enabled || m.state.Phase == PhaseSpringingBack {
		return false
	}
	if !m.state.DragActive {
		return false
	}

	if m.state.Phase == PhasePriming {
		delta := ev.Position.Sub(m.state.Pointer)
		m.state.Phase = PhaseLocked
		if gateVetoes(m.cfg.Direction, delta) {
			m.state.DragActive = false
			return false
		}
	}

	if m.state.Accumulate(ev.Position, m.cfg.Friction) {
		m.emitOffset()
	}
	return true
}

// HandleDragEnd forwards the release to the commit engine
// An event without velocity is phantom: the interaction state is left as is
func (m *Machine) HandleDragEnd(ev PointerEvent) bool {
	if !m.cfg.Enabled || m.state.Phase == PhaseSpringingBack {
		return false
	}

	if !ev.HasVelocity {
		return false
	}

	m.state.DragActive = false
	return m.commit(ev.Velocity)
}

// Advance drives the spring-back interpolation from the host's frame clock
// No-op outside PhaseSpringingBack. On completion the state is fully reset
// and EventDragStopped fires, re-arming arbitration
func (m *Machine) Advance(dt time.Duration) {
	if m.state.Phase != PhaseSpringingBack {
		return
	}

	pos, done := m.tween.Advance(dt)
	m.state.Offset = pos
	if !done {
		return
	}

	m.tween = nil
	m.push(events.EventDragStopped, nil)
	m.state.Reset()
}

// commit runs the end-of-interaction decision
// Short-circuits when no accepted delta ever produced an offset
func (m *Machine) commit(velocity vmath.Vec2) bool {
	if !m.state.HasOffset {
		return false
	}

	w, h := m.viewport.Size()
	switch decide(m.state.Offset, velocity, m.cfg.ScrollOption, m.cfg.Friction, w, h) {
	case commitDismiss:
		m.push(events.EventDismissed, &events.DismissedPayload{
			Offset:   m.state.Offset,
			Velocity: velocity,
		})
		m.push(events.EventPopRequested, nil)
		// No reset: the hosting surface is being torn down
	default:
		m.startSpringBack()
	}
	return true
}

// startSpringBack begins (or restarts from the live offset) the interpolation
func (m *Machine) startSpringBack() {
	if m.state.Phase == PhaseSpringingBack && m.tween != nil {
		m.tween.Restart(m.state.Offset)
	} else {
		m.tween = NewTween(m.state.Offset, SpringBackDuration)
		m.state.Phase = PhaseSpringingBack
	}
	m.push(events.EventSpringBackStarted, &events.SpringBackStartedPayload{From: m.state.Offset})
}

// lockHeld reports whether the current interaction confirmed a pop attempt
func (m *Machine) lockHeld() bool {
	return m.state.Phase != PhaseIdle
}

// lock confirms the interaction and fires the start event exactly once
func (m *Machine) lock(src events.Source) {
	m.state.Phase = PhaseLocked
	m.push(events.EventDragStarted, &events.DragStartedPayload{Source: src})
}

func (m *Machine) emitOffset() {
	m.push(events.EventOffsetChanged, &events.OffsetChangedPayload{Offset: m.state.Offset})
}

func (m *Machine) push(t events.EventType, payload any) {
	m.queue.Push(events.GestureEvent{
		Type:      t,
		Payload:   payload,
		Timestamp: time.Now(),
	})
}

// gateVetoes reports whether the first movement of a raw drag contradicts a
// one-way direction. Two-way directions never veto
func gateVetoes(d Direction, delta vmath.Vec2) bool {
	switch d {
	case DirectionToRight:
		return delta.X < 0
	case DirectionToLeft:
		return delta.X > 0
	case DirectionToTop:
		return delta.Y > 0
	case DirectionToBottom:
		return delta.Y < 0
	}
	return false
}
