package engine

import "time"

// FrameID identifies a requested frame callback, zero is never issued
type FrameID uint64

// FrameFunc is invoked once per requested frame with the pump timestamp
type FrameFunc func(now time.Time)

// FrameScheduler requests and cancels one-shot frame callbacks
// A continuous loop re-requests itself from inside its own callback
type FrameScheduler interface {
	RequestFrame(fn FrameFunc) FrameID
	CancelFrame(id FrameID)
}

type pendingFrame struct {
	id FrameID
	fn FrameFunc
}

// FrameQueue is a single-threaded frame scheduler
// Callbacks requested while a pump is running are deferred to the next pump,
// so a self-rescheduling loop advances exactly one step per Pump
// Not safe for concurrent use; the host serializes all calls on one goroutine
type FrameQueue struct {
	clock   Clock
	nextID  FrameID
	pending []pendingFrame
	running []pendingFrame // batch of the pump in progress
	pumped  uint64
}

// NewFrameQueue creates a queue stamped by clock
func NewFrameQueue(clock Clock) *FrameQueue {
	if clock == nil {
		clock = NewTimeProvider()
	}
	return &FrameQueue{clock: clock}
}

// RequestFrame schedules fn for the next pump
func (q *FrameQueue) RequestFrame(fn FrameFunc) FrameID {
	q.nextID++
	q.pending = append(q.pending, pendingFrame{id: q.nextID, fn: fn})
	return q.nextID
}

// CancelFrame removes a pending callback, unknown ids are ignored
// Cancelling a sibling from inside a running callback prevents it from firing
func (q *FrameQueue) CancelFrame(id FrameID) {
	if id == 0 {
		return
	}
	q.pending = removeFrame(q.pending, id)
	q.running = removeFrame(q.running, id)
}

func removeFrame(frames []pendingFrame, id FrameID) []pendingFrame {
	for i, p := range frames {
		if p.id == id {
			return append(frames[:i:i], frames[i+1:]...)
		}
	}
	return frames
}

// Pending returns the number of callbacks waiting for the next pump
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}

// Pumped returns the number of pumps that ran at least one callback
func (q *FrameQueue) Pumped() uint64 {
	return q.pumped
}

// Pump runs every callback that was pending when it was called
// Returns the number of callbacks executed
func (q *FrameQueue) Pump() int {
	if len(q.pending) == 0 {
		return 0
	}
	q.running = q.pending
	q.pending = nil
	now := q.clock.Now()

	ran := 0
	for len(q.running) > 0 {
		p := q.running[0]
		q.running = q.running[1:]
		p.fn(now)
		ran++
	}
	q.running = nil
	q.pumped++
	return ran
}
