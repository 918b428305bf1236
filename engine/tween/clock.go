package tween

import "time"

// Clock produces the delta-time steps that drive animations. Injecting the
// clock keeps the animation layer independent of wall time, so tests and
// frame-locked hosts advance it explicitly.
type Clock interface {
	// Tick returns the seconds elapsed since the previous Tick call.
	Tick() float32
}

var _ Clock = &RealClock{}
var _ Clock = &ManualClock{}

// RealClock measures wall time between ticks.
type RealClock struct {
	last time.Time
}

// NewRealClock creates a wall-time clock. The first Tick returns zero.
func NewRealClock() *RealClock {
	return &RealClock{}
}

// Tick returns the wall seconds elapsed since the previous call.
func (c *RealClock) Tick() float32 {
	now := time.Now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	dt := float32(now.Sub(c.last).Seconds())
	c.last = now
	return dt
}

// ManualClock accumulates explicitly advanced time and releases it on Tick.
type ManualClock struct {
	pending float32
}

// NewManualClock creates a clock driven entirely by Advance calls.
func NewManualClock() *ManualClock {
	return &ManualClock{}
}

// Advance queues dt seconds for the next Tick.
//
// Parameters:
//   - dt: seconds to add (negative values are ignored)
func (c *ManualClock) Advance(dt float32) {
	if dt > 0 {
		c.pending += dt
	}
}

// Tick returns the queued seconds and resets the accumulator.
func (c *ManualClock) Tick() float32 {
	dt := c.pending
	c.pending = 0
	return dt
}
