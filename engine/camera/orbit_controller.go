package camera

import (
	"github.com/chewxy/math32"

	"github.com/NitaCristianu/thrash-motion-canvas/common"
)

// OrbitController is an interactive spherical-coordinate rig around a pivot
// point, for preview windows: scroll zooms, arrow-style steps orbit. It
// drives the camera directly, outside the tween layer, so it composes with
// scripted animation only when one of the two is idle.
type OrbitController interface {
	// OrbitLeft rotates the camera left around the pivot by one orbit step.
	OrbitLeft()

	// OrbitRight rotates the camera right around the pivot by one orbit step.
	OrbitRight()

	// OrbitUp raises the camera's elevation by one orbit step.
	OrbitUp()

	// OrbitDown lowers the camera's elevation by one orbit step.
	OrbitDown()

	// Zoom adjusts the camera's distance to the pivot. Positive delta moves
	// closer, scaled by the zoom speed and clamped to the radius bounds.
	//
	// Parameters:
	//   - delta: zoom amount, typically a scroll offset
	Zoom(delta float32)

	// SetPivot moves the pivot point and recomputes the camera position.
	//
	// Parameters:
	//   - pivot: the new world-space pivot
	SetPivot(pivot common.Vec3)

	// Pivot returns the current pivot point.
	//
	// Returns:
	//   - common.Vec3: the world-space pivot
	Pivot() common.Vec3
}

// orbitController is the implementation of the OrbitController interface.
type orbitController struct {
	cam   *Camera
	pivot common.Vec3

	radius    float32
	azimuth   float32
	elevation float32

	minRadius    float32
	maxRadius    float32
	minElevation float32
	maxElevation float32

	orbitSpeed float32
	zoomSpeed  float32
}

var _ OrbitController = &orbitController{}

// NewOrbitController creates a controller rig around cam. The starting
// radius, azimuth, and elevation are derived from the camera's current
// offset to the pivot.
//
// Parameters:
//   - cam: the camera to drive (must not be nil)
//   - options: functional options to configure the controller
//
// Returns:
//   - OrbitController: the newly created controller
func NewOrbitController(cam *Camera, options ...OrbitControllerOption) OrbitController {
	if cam == nil {
		panic("camera: orbit controller requires a camera")
	}
	oc := &orbitController{
		cam: cam,

		minRadius:    0.5,
		maxRadius:    2000,
		minElevation: -math32.Pi/2 + 0.1,
		maxElevation: math32.Pi/2 - 0.1,

		orbitSpeed: 0.05,
		zoomSpeed:  0.5,
	}
	for _, option := range options {
		option(oc)
	}
	oc.syncFromCamera()
	oc.apply()
	return oc
}

// syncFromCamera derives the spherical coordinates from the camera's current
// world offset to the pivot.
func (oc *orbitController) syncFromCamera() {
	offset := oc.cam.Base().WorldPosition().Sub(oc.pivot)
	oc.radius = offset.Length()
	if oc.radius < oc.minRadius {
		oc.radius = oc.minRadius
	}
	horizontal := math32.Hypot(offset.X, offset.Z)
	oc.azimuth = math32.Atan2(offset.Z, offset.X)
	oc.elevation = math32.Atan2(offset.Y, horizontal)
	oc.clamp()
}

// apply recomputes the camera position from the spherical coordinates and
// re-aims it at the pivot.
func (oc *orbitController) apply() {
	cosE := math32.Cos(oc.elevation)
	offset := common.Vec3{
		X: oc.radius * cosE * math32.Cos(oc.azimuth),
		Y: oc.radius * math32.Sin(oc.elevation),
		Z: oc.radius * cosE * math32.Sin(oc.azimuth),
	}
	oc.cam.Base().SetPosition(oc.pivot.Add(offset))
	oc.cam.LookAt(oc.pivot)
	oc.cam.UpdateProjection()
}

func (oc *orbitController) clamp() {
	if oc.radius < oc.minRadius {
		oc.radius = oc.minRadius
	}
	if oc.radius > oc.maxRadius {
		oc.radius = oc.maxRadius
	}
	if oc.elevation < oc.minElevation {
		oc.elevation = oc.minElevation
	}
	if oc.elevation > oc.maxElevation {
		oc.elevation = oc.maxElevation
	}
}

func (oc *orbitController) OrbitLeft() {
	oc.azimuth -= oc.orbitSpeed
	oc.apply()
}

func (oc *orbitController) OrbitRight() {
	oc.azimuth += oc.orbitSpeed
	oc.apply()
}

func (oc *orbitController) OrbitUp() {
	oc.elevation += oc.orbitSpeed
	oc.clamp()
	oc.apply()
}

func (oc *orbitController) OrbitDown() {
	oc.elevation -= oc.orbitSpeed
	oc.clamp()
	oc.apply()
}

func (oc *orbitController) Zoom(delta float32) {
	oc.radius -= delta * oc.zoomSpeed
	oc.clamp()
	oc.apply()
}

func (oc *orbitController) SetPivot(pivot common.Vec3) {
	oc.pivot = pivot
	oc.syncFromCamera()
	oc.apply()
}

func (oc *orbitController) Pivot() common.Vec3 {
	return oc.pivot
}
