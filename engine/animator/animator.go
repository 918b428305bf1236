// package animator provides the per-object animation wrappers. Each wrapper
// holds a non-owning reference to one live scene graph object and produces
// clock-driven animations that mutate it over successive frames. Start values
// are captured on an animation's first step, not at call time, so queued
// animations chain onto each other's results.
package animator

import (
	"github.com/NitaCristianu/thrash-motion-canvas/common"
	"github.com/NitaCristianu/thrash-motion-canvas/engine/object"
	"github.com/NitaCristianu/thrash-motion-canvas/engine/tween"
)

// ObjectAnimator wraps one live object and exposes its motion primitives.
// It remembers the last explicit look-at target, which biases the reference
// frame of subsequent orbit calls on camera wrappers.
type ObjectAnimator struct {
	obj            object.Object
	lastLookTarget *common.Vec3
}

// NewObjectAnimator creates a wrapper around obj.
//
// Parameters:
//   - obj: the live object to animate (must not be nil)
//
// Returns:
//   - *ObjectAnimator: the new wrapper
func NewObjectAnimator(obj object.Object) *ObjectAnimator {
	if obj == nil {
		panic("animator: object is required")
	}
	return &ObjectAnimator{obj: obj}
}

// Object returns the wrapped object.
func (a *ObjectAnimator) Object() object.Object {
	return a.obj
}

// PositionGet returns the object's current local position.
func (a *ObjectAnimator) PositionGet() common.Vec3 {
	return a.obj.Base().Position()
}

// ScaleGet returns the object's current local scale.
func (a *ObjectAnimator) ScaleGet() common.Vec3 {
	return a.obj.Base().Scale()
}

// QuaternionGet returns the object's current local rotation.
func (a *ObjectAnimator) QuaternionGet() common.Quat {
	return a.obj.Base().Quaternion()
}

// Position animates the object's local position to target.
//
// Parameters:
//   - target: the destination position
//   - duration: run time in seconds
//   - ease: easing function (nil for the default ease-in-out)
//
// Returns:
//   - *tween.Tween: the animation, ready to be driven
func (a *ObjectAnimator) Position(target common.Vec3, duration float32, ease tween.Ease) *tween.Tween {
	base := a.obj.Base()
	var start common.Vec3
	started := false
	return tween.New(duration, ease, func(t float32) {
		if !started {
			start = base.Position()
			started = true
		}
		base.SetPosition(common.Lerp(start, target, t))
	})
}

// nudge animates a move along an object-local signed unit axis.
func (a *ObjectAnimator) nudge(axis common.Vec3, magnitude, duration float32, ease tween.Ease) *tween.Tween {
	base := a.obj.Base()
	var start, target common.Vec3
	started := false
	return tween.New(duration, ease, func(t float32) {
		if !started {
			start = base.Position()
			delta := common.TransformQuat(axis, base.Quaternion()).Scale(magnitude)
			target = start.Add(delta)
			started = true
		}
		base.SetPosition(common.Lerp(start, target, t))
	})
}

// Up animates a move along the object's local +Y axis by magnitude.
func (a *ObjectAnimator) Up(magnitude, duration float32, ease tween.Ease) *tween.Tween {
	return a.nudge(common.Vec3{Y: 1}, magnitude, duration, ease)
}

// Down animates a move along the object's local -Y axis by magnitude.
func (a *ObjectAnimator) Down(magnitude, duration float32, ease tween.Ease) *tween.Tween {
	return a.nudge(common.Vec3{Y: -1}, magnitude, duration, ease)
}

// Left animates a move along the object's local -X axis by magnitude.
func (a *ObjectAnimator) Left(magnitude, duration float32, ease tween.Ease) *tween.Tween {
	return a.nudge(common.Vec3{X: -1}, magnitude, duration, ease)
}

// Right animates a move along the object's local +X axis by magnitude.
func (a *ObjectAnimator) Right(magnitude, duration float32, ease tween.Ease) *tween.Tween {
	return a.nudge(common.Vec3{X: 1}, magnitude, duration, ease)
}

// Forward animates a move along the object's local -Z (facing) axis by magnitude.
func (a *ObjectAnimator) Forward(magnitude, duration float32, ease tween.Ease) *tween.Tween {
	return a.nudge(common.Vec3{Z: -1}, magnitude, duration, ease)
}

// Back animates a move along the object's local +Z axis by magnitude.
func (a *ObjectAnimator) Back(magnitude, duration float32, ease tween.Ease) *tween.Tween {
	return a.nudge(common.Vec3{Z: 1}, magnitude, duration, ease)
}

// LookAt animates the object's orientation toward facing a world-space point,
// interpolating spherically from the orientation at animation start. The
// point is recorded as the wrapper's remembered look-target.
//
// Parameters:
//   - point: the world point to face
//   - duration: run time in seconds
//   - ease: easing function (nil for the default ease-in-out)
//
// Returns:
//   - *tween.Tween: the animation, ready to be driven
func (a *ObjectAnimator) LookAt(point common.Vec3, duration float32, ease tween.Ease) *tween.Tween {
	base := a.obj.Base()
	target := point
	a.lastLookTarget = &target

	var startQ, endQ common.Quat
	started := false
	return tween.New(duration, ease, func(t float32) {
		if !started {
			startQ = base.Quaternion()
			desired := common.LookRotation(base.WorldPosition(), target, common.Vec3{Y: 1})
			if parent := base.Parent(); parent != nil {
				desired = parent.WorldQuaternion().Invert().Mul(desired)
			}
			endQ = desired
			started = true
		}
		base.SetQuaternion(common.Slerp(startQ, endQ, t))
	})
}

// LookAtObject is LookAt aimed at another object's world position, sampled
// when the call is made.
func (a *ObjectAnimator) LookAtObject(target object.Object, duration float32, ease tween.Ease) *tween.Tween {
	return a.LookAt(target.Base().WorldPosition(), duration, ease)
}

// LastLookTarget returns the remembered look-at point, or nil when no look-at
// has run on this wrapper.
func (a *ObjectAnimator) LastLookTarget() *common.Vec3 {
	return a.lastLookTarget
}

// Scale animates the object's local scale to target.
func (a *ObjectAnimator) Scale(target common.Vec3, duration float32, ease tween.Ease) *tween.Tween {
	base := a.obj.Base()
	var start common.Vec3
	started := false
	return tween.New(duration, ease, func(t float32) {
		if !started {
			start = base.Scale()
			started = true
		}
		base.SetScale(common.Lerp(start, target, t))
	})
}

// ScaleMul animates the object's scale to its start value multiplied
// component-wise by factor.
func (a *ObjectAnimator) ScaleMul(factor common.Vec3, duration float32, ease tween.Ease) *tween.Tween {
	base := a.obj.Base()
	var start, target common.Vec3
	started := false
	return tween.New(duration, ease, func(t float32) {
		if !started {
			start = base.Scale()
			target = start.Mul(factor)
			started = true
		}
		base.SetScale(common.Lerp(start, target, t))
	})
}

// ScaleDiv animates the object's scale to its start value divided
// component-wise by factor. Zero factor components are left unchanged.
func (a *ObjectAnimator) ScaleDiv(factor common.Vec3, duration float32, ease tween.Ease) *tween.Tween {
	base := a.obj.Base()
	var start, target common.Vec3
	started := false
	return tween.New(duration, ease, func(t float32) {
		if !started {
			start = base.Scale()
			target = start.Div(factor)
			started = true
		}
		base.SetScale(common.Lerp(start, target, t))
	})
}

// Select runs a two-phase scale pulse: multiply up by factor over the first
// half of duration, then divide back down over the second half, returning the
// object to its original scale.
//
// Parameters:
//   - factor: the uniform pulse factor
//   - duration: total run time in seconds
//   - ease: easing applied to each phase (nil for the default ease-in-out)
//
// Returns:
//   - *tween.Sequence: the two-phase animation
func (a *ObjectAnimator) Select(factor float32, duration float32, ease tween.Ease) *tween.Sequence {
	f := common.Vec3{X: factor, Y: factor, Z: factor}
	half := duration / 2
	return tween.NewSequence(
		a.ScaleMul(f, half, ease),
		a.ScaleDiv(f, half, ease),
	)
}

// Remove detaches the wrapped object from its parent. Irreversible through
// this wrapper; animations still running against the object keep mutating its
// now-detached state unless cancelled.
func (a *ObjectAnimator) Remove() {
	a.obj.Base().Detach(a.obj)
}
