// Package timing provides the high-resolution game clock that drives the engine loop.
package timing

import (
	"time"

	"github.com/loov/hrtime"
)

// Clock measures frame deltas with a monotonic high-resolution timer.
// It is not safe for concurrent use; the engine loop owns it.
type Clock struct {
	now        func() time.Duration
	start      time.Duration
	last       time.Duration
	delta      float64
	total      float64
	frameCount uint64
}

// NewClock creates a Clock backed by hrtime and starts it immediately.
//
// Returns:
//   - *Clock: the started clock
func NewClock() *Clock {
	return NewClockWithSource(hrtime.Now)
}

// NewClockWithSource creates a Clock reading the monotonic time from now, and starts it immediately.
//
// Parameters:
//   - now: returns the time elapsed since an arbitrary fixed point
//
// Returns:
//   - *Clock: the started clock
func NewClockWithSource(now func() time.Duration) *Clock {
	c := &Clock{now: now}
	c.Reset()
	return c
}

// Reset restarts the clock, zeroing the delta, total and frame count.
func (c *Clock) Reset() {
	c.start = c.now()
	c.last = c.start
	c.delta = 0
	c.total = 0
	c.frameCount = 0
}

// Update advances the clock by the time elapsed since the previous Update.
// Delta becomes the elapsed time in seconds and is added to Total.
func (c *Clock) Update() {
	t := c.now()
	c.delta = (t - c.last).Seconds()
	c.total += c.delta
	c.last = t
	c.frameCount++
}

// Delta returns the seconds elapsed between the two most recent Update calls.
func (c *Clock) Delta() float64 {
	return c.delta
}

// Total returns the accumulated seconds across all Update calls since the last Reset.
func (c *Clock) Total() float64 {
	return c.total
}

// SinceUpdate returns the time elapsed since the most recent Update without advancing the clock.
func (c *Clock) SinceUpdate() time.Duration {
	return c.now() - c.last
}

// Elapsed returns the wall time since the clock was started or reset.
func (c *Clock) Elapsed() time.Duration {
	return c.now() - c.start
}

// FrameCount returns the number of Update calls since the last Reset.
func (c *Clock) FrameCount() uint64 {
	return c.frameCount
}
