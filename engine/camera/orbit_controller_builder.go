package camera

import "github.com/NitaCristianu/thrash-motion-canvas/common"

// OrbitControllerOption is a functional option for configuring an
// OrbitController via NewOrbitController.
type OrbitControllerOption func(oc *orbitController)

// WithPivot sets the initial pivot point.
//
// Parameters:
//   - pivot: the world-space pivot
//
// Returns:
//   - OrbitControllerOption: option function to apply
func WithPivot(pivot common.Vec3) OrbitControllerOption {
	return func(oc *orbitController) {
		oc.pivot = pivot
	}
}

// WithRadiusBounds sets the allowed distance range to the pivot.
//
// Parameters:
//   - min: minimum radius (values below 0 are ignored)
//   - max: maximum radius
//
// Returns:
//   - OrbitControllerOption: option function to apply
func WithRadiusBounds(min, max float32) OrbitControllerOption {
	return func(oc *orbitController) {
		if min > 0 {
			oc.minRadius = min
		}
		if max > oc.minRadius {
			oc.maxRadius = max
		}
	}
}

// WithOrbitSpeed sets the angular step per orbit call, in radians.
//
// Parameters:
//   - speed: the step size
//
// Returns:
//   - OrbitControllerOption: option function to apply
func WithOrbitSpeed(speed float32) OrbitControllerOption {
	return func(oc *orbitController) {
		if speed > 0 {
			oc.orbitSpeed = speed
		}
	}
}

// WithZoomSpeed sets the radius change per unit of zoom delta.
//
// Parameters:
//   - speed: the zoom scale
//
// Returns:
//   - OrbitControllerOption: option function to apply
func WithZoomSpeed(speed float32) OrbitControllerOption {
	return func(oc *orbitController) {
		if speed > 0 {
			oc.zoomSpeed = speed
		}
	}
}
