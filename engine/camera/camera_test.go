package camera

import (
	"testing"

	"github.com/NitaCristianu/thrash-motion-canvas/common"
	"github.com/NitaCristianu/thrash-motion-canvas/engine/object"
	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCameraDefaults(t *testing.T) {
	c := NewCamera()
	assert.Equal(t, float32(50), c.Fov())
	assert.Equal(t, float32(1), c.Aspect())
	assert.Equal(t, float32(0.1), c.Near())
	assert.Equal(t, float32(2000), c.Far())
	assert.Equal(t, common.Vec3{Y: 1}, c.Up())
}

func TestSetFovRefreshesProjection(t *testing.T) {
	c := NewCamera()
	var before, after [16]float32
	c.ProjectionMatrix(before[:])

	c.SetFov(90)
	c.ProjectionMatrix(after[:])

	assert.NotEqual(t, before, after)
	// fov 90 degrees: f = 1/tan(45 deg) = 1, so m[5] == 1.
	assert.InDelta(t, 1.0, after[5], 1e-4)
}

func TestSetAspectIgnoresNonPositive(t *testing.T) {
	c := NewCamera()
	c.SetAspect(-2)
	assert.Equal(t, float32(1), c.Aspect())
	c.SetAspect(16.0 / 9.0)
	assert.InDelta(t, 16.0/9.0, c.Aspect(), 1e-5)
}

func TestViewMatrixTracksWorldTransform(t *testing.T) {
	c := NewCamera(WithCameraPosition(common.Vec3{Z: 5}))
	c.UpdateProjection()

	var view [16]float32
	c.ViewMatrix(view[:])

	// Camera at z=5 looking down -Z: origin lands 5 units in front.
	got := common.TransformPoint(view[:], common.Vec3{})
	assert.InDelta(t, 0.0, got.X, 1e-4)
	assert.InDelta(t, 0.0, got.Y, 1e-4)
	assert.InDelta(t, -5.0, got.Z, 1e-4)
}

func TestViewMatrixIncludesParentChain(t *testing.T) {
	rig := object.NewGroup(object.WithGroupPosition(common.Vec3{X: 3}))
	c := NewCamera(WithCameraPosition(common.Vec3{Z: 2}))
	rig.Add(c)
	c.UpdateProjection()

	var view [16]float32
	c.ViewMatrix(view[:])
	got := common.TransformPoint(view[:], common.Vec3{X: 3, Z: 2})
	// The camera's own world position maps to the view-space origin.
	assert.InDelta(t, 0.0, got.X, 1e-4)
	assert.InDelta(t, 0.0, got.Z, 1e-4)
}

func TestLookAtFacesTarget(t *testing.T) {
	c := NewCamera(WithCameraPosition(common.Vec3{X: 5, Y: 0, Z: 0}))
	c.LookAt(common.Vec3{})

	forward := common.TransformQuat(common.Vec3{Z: -1}, c.Quaternion())
	assert.InDelta(t, -1.0, forward.X, 1e-4)
	assert.InDelta(t, 0.0, forward.Y, 1e-4)
	assert.InDelta(t, 0.0, forward.Z, 1e-4)
}

func TestCloneCopiesProjectionSettings(t *testing.T) {
	c := NewCamera(WithFov(35), WithAspect(2), WithNear(0.5), WithFar(100), WithCameraName("cam"))
	clone, ok := c.Clone(false).(*Camera)
	require.True(t, ok)

	assert.Equal(t, float32(35), clone.Fov())
	assert.Equal(t, float32(2), clone.Aspect())
	assert.Equal(t, float32(0.5), clone.Near())
	assert.Equal(t, float32(100), clone.Far())
	assert.Equal(t, "cam", clone.Name())
	assert.NotEqual(t, c.UUID(), clone.UUID())
}

func TestProjectionUsesRadians(t *testing.T) {
	c := NewCamera(WithFov(60))
	var proj [16]float32
	c.ProjectionMatrix(proj[:])
	want := 1 / math32.Tan(60*math32.Pi/180/2)
	assert.InDelta(t, want, proj[5], 1e-4)
}
