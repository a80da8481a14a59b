package engine

import (
	"sync"
	"time"
)

// PausableClock is scene time layered over a base clock
// While paused Now is frozen; on resume the paused span is subtracted so
// transitions and highlight flashes continue where they stopped
type PausableClock struct {
	mu     sync.Mutex
	base   Clock
	paused bool
	since  time.Time     // base time the current pause began
	offset time.Duration // cumulative paused time
}

// NewPausableClock wraps base, real time when nil
func NewPausableClock(base Clock) *PausableClock {
	if base == nil {
		base = NewTimeProvider()
	}
	return &PausableClock{base: base}
}

// Now returns scene time
func (c *PausableClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.paused {
		return c.since.Add(-c.offset)
	}
	return c.base.Now().Add(-c.offset)
}

// Base returns the wrapped clock, unaffected by pause
func (c *PausableClock) Base() Clock {
	return c.base
}

// Pause freezes scene time, repeated calls are ignored
func (c *PausableClock) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.paused {
		return
	}
	c.paused = true
	c.since = c.base.Now()
}

// Resume continues scene time, repeated calls are ignored
func (c *PausableClock) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.paused {
		return
	}
	c.paused = false
	c.offset += c.base.Now().Sub(c.since)
	c.since = time.Time{}
}

// Toggle flips the pause state and reports whether the clock is now paused
func (c *PausableClock) Toggle() bool {
	if c.Paused() {
		c.Resume()
		return false
	}
	c.Pause()
	return true
}

// Paused reports the pause state
func (c *PausableClock) Paused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}

// PausedFor returns the total paused time, the running pause included
func (c *PausableClock) PausedFor() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := c.offset
	if c.paused {
		total += c.base.Now().Sub(c.since)
	}
	return total
}
