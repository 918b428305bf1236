package tween

// Timeline steps a set of concurrent animations from a single clock. Finished
// animations are dropped; the zero value is not usable, construct with
// NewTimeline.
type Timeline struct {
	clock  Clock
	active []Animation
}

// NewTimeline creates a timeline driven by the given clock.
//
// Parameters:
//   - clock: the time source (must not be nil)
//
// Returns:
//   - *Timeline: the new timeline
func NewTimeline(clock Clock) *Timeline {
	if clock == nil {
		panic("tween: clock is required")
	}
	return &Timeline{clock: clock}
}

// Add registers an animation to be stepped on subsequent updates. Nil is
// ignored.
func (tl *Timeline) Add(a Animation) {
	if a != nil {
		tl.active = append(tl.active, a)
	}
}

// Update ticks the clock once and advances every active animation by the
// resulting delta, dropping the ones that finish.
//
// Returns:
//   - bool: true when no animations remain active
func (tl *Timeline) Update() bool {
	dt := tl.clock.Tick()

	remaining := tl.active[:0]
	for _, a := range tl.active {
		if !a.Update(dt) {
			remaining = append(remaining, a)
		}
	}
	tl.active = remaining
	return len(tl.active) == 0
}

// Idle reports whether no animations are active.
func (tl *Timeline) Idle() bool {
	return len(tl.active) == 0
}

// CancelAll cancels and drops every active animation.
func (tl *Timeline) CancelAll() {
	for _, a := range tl.active {
		a.Cancel()
	}
	tl.active = nil
}
