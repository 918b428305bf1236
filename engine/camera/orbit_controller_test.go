package camera

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NitaCristianu/thrash-motion-canvas/common"
)

func TestOrbitControllerKeepsRadiusWhileOrbiting(t *testing.T) {
	cam := NewCamera(WithCameraPosition(common.Vec3{Z: 10}))
	oc := NewOrbitController(cam)

	for i := 0; i < 8; i++ {
		oc.OrbitLeft()
	}

	offset := cam.Position().Sub(oc.Pivot())
	assert.InDelta(t, 10.0, float64(offset.Length()), 1e-3)
	assert.Greater(t, math.Abs(float64(offset.Z)-10.0), 1e-3, "azimuth actually moved")
}

func TestOrbitControllerZoomClampsToBounds(t *testing.T) {
	cam := NewCamera(WithCameraPosition(common.Vec3{Z: 10}))
	oc := NewOrbitController(cam,
		WithRadiusBounds(2, 20),
		WithZoomSpeed(1),
	)

	oc.Zoom(100)
	assert.InDelta(t, 2.0, float64(cam.Position().Sub(oc.Pivot()).Length()), 1e-3)

	oc.Zoom(-100)
	assert.InDelta(t, 20.0, float64(cam.Position().Sub(oc.Pivot()).Length()), 1e-3)
}

func TestOrbitControllerElevationIsClamped(t *testing.T) {
	cam := NewCamera(WithCameraPosition(common.Vec3{Z: 10}))
	oc := NewOrbitController(cam)

	for i := 0; i < 100; i++ {
		oc.OrbitUp()
	}
	offset := cam.Position().Sub(oc.Pivot())
	require.Greater(t, offset.Y, float32(0))
	// The rig never flips over the pole.
	horizontal := common.Vec3{X: offset.X, Z: offset.Z}.Length()
	assert.Greater(t, horizontal, float32(0.1))
}

func TestOrbitControllerSetPivotReaims(t *testing.T) {
	cam := NewCamera(WithCameraPosition(common.Vec3{Z: 10}))
	oc := NewOrbitController(cam)

	pivot := common.Vec3{X: 3, Y: 1}
	oc.SetPivot(pivot)
	assert.Equal(t, pivot, oc.Pivot())

	// The camera's forward axis (-Z rotated by its orientation) points at
	// the pivot.
	forward := common.TransformQuat(common.Vec3{Z: -1}, cam.Quaternion())
	toPivot := pivot.Sub(cam.Position()).Normalize()
	assert.InDelta(t, float64(toPivot.X), float64(forward.X), 1e-3)
	assert.InDelta(t, float64(toPivot.Y), float64(forward.Y), 1e-3)
	assert.InDelta(t, float64(toPivot.Z), float64(forward.Z), 1e-3)
}
