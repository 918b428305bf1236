package animator

import (
	"github.com/NitaCristianu/thrash-motion-canvas/common"
	"github.com/NitaCristianu/thrash-motion-canvas/engine/camera"
	"github.com/NitaCristianu/thrash-motion-canvas/engine/tween"
	"github.com/chewxy/math32"
)

const (
	// Field-of-view bounds for zoom animations, in degrees.
	minFov = 1
	maxFov = 179

	// Amplitude of the cosmetic orbit fov breathing, in degrees.
	orbitBreathFov = 4
)

// CameraAnimator extends ObjectAnimator with perspective-camera motion:
// field-of-view zoom and orbit around a center point.
type CameraAnimator struct {
	ObjectAnimator
	cam *camera.Camera
}

// NewCameraAnimator creates a wrapper around cam.
//
// Parameters:
//   - cam: the live camera to animate (must not be nil)
//
// Returns:
//   - *CameraAnimator: the new wrapper
func NewCameraAnimator(cam *camera.Camera) *CameraAnimator {
	if cam == nil {
		panic("animator: camera is required")
	}
	return &CameraAnimator{
		ObjectAnimator: ObjectAnimator{obj: cam},
		cam:            cam,
	}
}

// Camera returns the wrapped camera.
func (a *CameraAnimator) Camera() *camera.Camera {
	return a.cam
}

func clampFov(fov float32) float32 {
	if fov < minFov {
		return minFov
	}
	if fov > maxFov {
		return maxFov
	}
	return fov
}

// Zoom animates the camera's field of view toward fov, clamped to [1, 179]
// degrees. The projection matrix is refreshed on every step.
//
// Parameters:
//   - fov: the target field of view in degrees
//   - duration: run time in seconds
//   - ease: easing function (nil for the default ease-in-out)
//
// Returns:
//   - *tween.Tween: the animation, ready to be driven
func (a *CameraAnimator) Zoom(fov, duration float32, ease tween.Ease) *tween.Tween {
	target := clampFov(fov)
	var start float32
	started := false
	return tween.New(duration, ease, func(t float32) {
		if !started {
			start = a.cam.Fov()
			started = true
		}
		a.cam.SetFov(common.LerpScalar(start, target, t))
	})
}

// ZoomIn narrows the field of view by offset degrees (a closer view).
func (a *CameraAnimator) ZoomIn(offset, duration float32, ease tween.Ease) *tween.Tween {
	return a.Zoom(a.cam.Fov()-offset, duration, ease)
}

// ZoomOut widens the field of view by offset degrees (a farther view).
func (a *CameraAnimator) ZoomOut(offset, duration float32, ease tween.Ease) *tween.Tween {
	return a.Zoom(a.cam.Fov()+offset, duration, ease)
}

// Orbit sweeps the camera around the vertical axis through a center point,
// holding its height fixed and re-aiming at the center every step. The total
// duration is lapTime scaled by the swept fraction of a revolution, so a full
// turn always takes lapTime. A secondary field-of-view breathing widens the
// view over the first half of the motion and settles back over the second.
//
// Parameters:
//   - lapTime: seconds a full revolution would take
//   - angle: the signed sweep angle in radians
//   - center: the orbit center; nil resolves to the remembered look-target,
//     then the world origin
//   - ease: easing applied to the sweep (nil for the default ease-in-out)
//
// Returns:
//   - *tween.Tween: the animation; completed immediately when the camera
//     starts at the center (zero radius) or the sweep is empty
func (a *CameraAnimator) Orbit(lapTime, angle float32, center *common.Vec3, ease tween.Ease) *tween.Tween {
	c := common.Vec3{}
	switch {
	case center != nil:
		c = *center
	case a.lastLookTarget != nil:
		c = *a.lastLookTarget
	}

	duration := lapTime * math32.Abs(angle) / (2 * math32.Pi)

	offset := a.cam.Position().Sub(c)
	radius := math32.Hypot(offset.X, offset.Z)
	if radius < 1e-6 || duration <= 0 {
		// Degenerate orbit: nothing to sweep.
		return tween.New(0, tween.EaseLinear, func(float32) {})
	}

	height := offset.Y
	startAz := math32.Atan2(offset.Z, offset.X)
	baseFov := a.cam.Fov()

	return tween.New(duration, ease, func(t float32) {
		az := startAz + angle*t
		a.cam.SetPosition(common.Vec3{
			X: c.X + radius*math32.Cos(az),
			Y: c.Y + height,
			Z: c.Z + radius*math32.Sin(az),
		})

		// Cosmetic breathing: out over the first half, back over the second,
		// with distinct curves for each direction.
		var breathe float32
		if t < 0.5 {
			breathe = tween.EaseOutCubic(t * 2)
		} else {
			breathe = 1 - tween.EaseInOutQuad(t*2-1)
		}
		a.cam.SetFov(clampFov(baseFov + orbitBreathFov*breathe))

		a.cam.LookAt(c)
	})
}
