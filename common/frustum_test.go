package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrustumSphereVisibility(t *testing.T) {
	// Camera at z = 10 looking at the origin, 60 degree vertical fov.
	var view, proj, viewProj [16]float32
	LookAt(view[:], Vec3{Z: 10}, Vec3{}, Vec3{Y: 1})
	Perspective(proj[:], 60*3.14159265/180, 1, 0.1, 100)
	Mul4(viewProj[:], proj[:], view[:])

	f := ExtractFrustum(viewProj[:])

	assert.True(t, f.ContainsSphere(Vec3{}, 1), "sphere at the look target is visible")
	assert.True(t, f.ContainsSphere(Vec3{X: 30, Z: -60}, 1), "distant off-axis sphere inside the cone")
	assert.False(t, f.ContainsSphere(Vec3{Z: 20}, 1), "sphere behind the camera is culled")
	assert.False(t, f.ContainsSphere(Vec3{Z: -120}, 1), "sphere past the far plane is culled")
	assert.False(t, f.ContainsSphere(Vec3{X: 50}, 1), "sphere far off to the side is culled")

	// A large sphere straddling a plane stays visible.
	assert.True(t, f.ContainsSphere(Vec3{Z: 12}, 5), "sphere overlapping the near region is kept")
}
