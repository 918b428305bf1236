// package tween provides time-driven eased interpolation: the building block
// under every animation primitive. A tween owns no clock; callers feed it
// delta time, so any step-based driver (real time or a manual test clock) can
// run it, and cancellation stops it cleanly mid-flight.
package tween

import "github.com/chewxy/math32"

// Ease maps a linear progress fraction in [0, 1] to an eased fraction.
type Ease func(t float32) float32

// EaseLinear returns t unchanged.
func EaseLinear(t float32) float32 { return t }

// EaseInQuad accelerates from zero velocity.
func EaseInQuad(t float32) float32 { return t * t }

// EaseOutQuad decelerates to zero velocity.
func EaseOutQuad(t float32) float32 { return t * (2 - t) }

// EaseInOutQuad accelerates until halfway, then decelerates.
func EaseInOutQuad(t float32) float32 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// EaseInCubic accelerates from zero velocity, more sharply than quad.
func EaseInCubic(t float32) float32 { return t * t * t }

// EaseOutCubic decelerates to zero velocity, more sharply than quad.
func EaseOutCubic(t float32) float32 {
	u := t - 1
	return u*u*u + 1
}

// EaseInOutCubic accelerates until halfway, then decelerates. This is the
// default easing for every animation primitive.
func EaseInOutCubic(t float32) float32 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := 2*t - 2
	return 0.5*u*u*u + 1
}

// EaseInOutSine eases with a half-cosine wave.
func EaseInOutSine(t float32) float32 {
	return -(math32.Cos(math32.Pi*t) - 1) / 2
}

// Animation is anything steppable by delta time. Update reports completion;
// Cancel freezes the animation in its current state.
type Animation interface {
	Update(dt float32) bool
	Cancel()
}

var _ Animation = &Tween{}
var _ Animation = &Sequence{}

// Tween interpolates from 0 to 1 over a duration, feeding the eased fraction
// to an apply callback every step. The final step always applies exactly 1 so
// targets are reached without floating drift.
type Tween struct {
	duration  float32
	ease      Ease
	apply     func(t float32)
	elapsed   float32
	done      bool
	cancelled bool
}

// New creates a tween.
//
// Parameters:
//   - duration: total run time in seconds; zero or negative applies the end
//     state on the first update
//   - ease: easing function; nil selects EaseInOutCubic
//   - apply: receives the eased fraction each step (must not be nil)
//
// Returns:
//   - *Tween: the new tween
func New(duration float32, ease Ease, apply func(t float32)) *Tween {
	if apply == nil {
		panic("tween: apply callback is required")
	}
	if ease == nil {
		ease = EaseInOutCubic
	}
	return &Tween{
		duration: duration,
		ease:     ease,
		apply:    apply,
	}
}

// Update advances the tween by dt seconds and applies the eased fraction.
//
// Parameters:
//   - dt: elapsed time since the previous step, in seconds
//
// Returns:
//   - bool: true once the tween has completed or been cancelled
func (t *Tween) Update(dt float32) bool {
	if t.done || t.cancelled {
		return true
	}

	t.elapsed += dt
	if t.duration <= 0 || t.elapsed >= t.duration {
		t.apply(t.ease(1))
		t.done = true
		return true
	}

	t.apply(t.ease(t.elapsed / t.duration))
	return false
}

// Cancel stops the tween where it stands; no further apply calls happen.
func (t *Tween) Cancel() {
	t.cancelled = true
}

// Done reports whether the tween has completed or been cancelled.
func (t *Tween) Done() bool {
	return t.done || t.cancelled
}

// Sequence runs animations back to back, starting each one on the step after
// its predecessor completes.
type Sequence struct {
	steps     []Animation
	index     int
	cancelled bool
}

// NewSequence creates a sequence over the given animations, run in order.
//
// Parameters:
//   - steps: the animations to run (nil entries are skipped)
//
// Returns:
//   - *Sequence: the new sequence
func NewSequence(steps ...Animation) *Sequence {
	kept := make([]Animation, 0, len(steps))
	for _, s := range steps {
		if s != nil {
			kept = append(kept, s)
		}
	}
	return &Sequence{steps: kept}
}

// Update advances the current step by dt seconds.
//
// Returns:
//   - bool: true once every step has completed or the sequence was cancelled
func (s *Sequence) Update(dt float32) bool {
	if s.cancelled || s.index >= len(s.steps) {
		return true
	}
	// A finishing step consumes this tick; the next starts on the following one.
	if s.steps[s.index].Update(dt) {
		s.index++
	}
	return s.index >= len(s.steps)
}

// Cancel stops the sequence, cancelling the in-flight step.
func (s *Sequence) Cancel() {
	s.cancelled = true
	if s.index < len(s.steps) {
		s.steps[s.index].Cancel()
	}
}
