package events

import (
	"sync/atomic"
)

const (
	// QueueSize must stay a power of two for mask indexing
	QueueSize  = 256
	bufferMask = QueueSize - 1
)

// Queue is a lock-free MPSC ring buffer for gesture events
// Thread-Safety:
//   - Push: Lock-free CAS, multiple producers OK
//   - Consume: Single consumer (host frame loop)
//   - Published flags prevent reading partial writes
//
// Overflow: Oldest events overwritten when full
type Queue struct {
	events    [QueueSize]GestureEvent
	published [QueueSize]atomic.Bool // True = slot fully written
	head      atomic.Uint64          // Read index
	tail      atomic.Uint64          // Write index
}

func NewQueue() *Queue {
	q := &Queue{}
	q.head.Store(0)
	q.tail.Store(0)
	return q
}

// Push adds event using lock-free CAS with published flags pattern
// Safe for concurrent producers. O(1) amortized
func (q *Queue) Push(event GestureEvent) {
	for {
		currentTail := q.tail.Load()
		nextTail := currentTail + 1

		if q.tail.CompareAndSwap(currentTail, nextTail) {
			idx := currentTail & bufferMask

			q.events[idx] = event
			q.published[idx].Store(true) // MUST be after write

			// Advance head if overwriting unread events
			currentHead := q.head.Load()
			if nextTail-currentHead > QueueSize {
				q.head.CompareAndSwap(currentHead, nextTail-QueueSize)
			}
			return
		}
	}
}

// Consume returns all pending events in FIFO order and advances head
// Single-consumer design (host frame loop). Checks published flags for safety
func (q *Queue) Consume() []GestureEvent {
	for {
		currentHead := q.head.Load()
		currentTail := q.tail.Load()

		if currentTail == currentHead {
			return nil
		}

		maxAvailable := currentTail - currentHead
		if maxAvailable > QueueSize {
			maxAvailable = QueueSize
			currentHead = currentTail - QueueSize
		}

		result := make([]GestureEvent, 0, maxAvailable)
		for i := uint64(0); i < maxAvailable; i++ {
			idx := (currentHead + i) & bufferMask

			if !q.published[idx].Load() {
				break // Writer incomplete
			}

			result = append(result, q.events[idx])
			q.published[idx].Store(false)
		}

		newHead := currentHead + uint64(len(result))
		if q.head.CompareAndSwap(currentHead, newHead) {
			if len(result) == 0 {
				return nil
			}
			return result
		}
	}
}
