// package camera provides the perspective camera scene graph node. The camera
// holds projection settings and recomputes its view/projection matrices on
// every mutation so rendered frames stay consistent mid-animation.
package camera

import (
	"github.com/NitaCristianu/thrash-motion-canvas/common"
	"github.com/NitaCristianu/thrash-motion-canvas/engine/object"
	"github.com/chewxy/math32"
)

var _ object.Object = &Camera{}

// Camera is a perspective camera scene graph node.
type Camera struct {
	object.Node

	up     common.Vec3
	fov    float32 // degrees
	aspect float32
	near   float32
	far    float32

	viewMatrix       [16]float32
	projectionMatrix [16]float32
}

// NewCamera creates a perspective camera. Defaults: fov 50 degrees, aspect 1,
// near 0.1, far 2000, up +Y.
//
// Parameters:
//   - opts: optional configuration (fov, aspect, clip planes, transform)
//
// Returns:
//   - *Camera: the new camera node
func NewCamera(opts ...CameraOption) *Camera {
	c := &Camera{
		Node:   object.NewBase(""),
		up:     common.Vec3{Y: 1},
		fov:    50,
		aspect: 1,
		near:   0.1,
		far:    2000,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.UpdateProjection()
	return c
}

// Base returns the camera's shared node state.
func (c *Camera) Base() *object.Node {
	return &c.Node
}

// Clone returns a copy of the camera with a fresh UUID. When recursive is true
// the children are cloned as well.
func (c *Camera) Clone(recursive bool) object.Object {
	clone := NewCamera(
		WithCameraName(c.Name()),
		WithFov(c.fov),
		WithAspect(c.aspect),
		WithNear(c.near),
		WithFar(c.far),
		WithUp(c.up),
	)
	clone.CopyTransform(&c.Node)
	clone.UpdateProjection()
	if recursive {
		object.CloneChildren(c, clone)
	}
	return clone
}

// Up returns the camera's up reference vector.
func (c *Camera) Up() common.Vec3 { return c.up }

// Fov returns the vertical field of view in degrees.
func (c *Camera) Fov() float32 { return c.fov }

// SetFov sets the vertical field of view in degrees and refreshes the
// projection matrix.
func (c *Camera) SetFov(fov float32) {
	c.fov = fov
	c.UpdateProjection()
}

// Aspect returns the aspect ratio (width / height).
func (c *Camera) Aspect() float32 { return c.aspect }

// SetAspect sets the aspect ratio and refreshes the projection matrix.
func (c *Camera) SetAspect(aspect float32) {
	if aspect <= 0 {
		return
	}
	c.aspect = aspect
	c.UpdateProjection()
}

// Near returns the near clipping plane distance.
func (c *Camera) Near() float32 { return c.near }

// Far returns the far clipping plane distance.
func (c *Camera) Far() float32 { return c.far }

// UpdateProjection recomputes the projection and view matrices from the
// camera's current settings and world transform.
func (c *Camera) UpdateProjection() {
	common.Perspective(c.projectionMatrix[:], c.fov*math32.Pi/180, c.aspect, c.near, c.far)

	var world [16]float32
	c.WorldMatrix(world[:])
	if !common.Invert4(c.viewMatrix[:], world[:]) {
		common.Identity(c.viewMatrix[:])
	}
}

// ViewMatrix writes the world-to-camera transform into out. Reflects the
// transform as of the last UpdateProjection call.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
func (c *Camera) ViewMatrix(out []float32) {
	copy(out, c.viewMatrix[:])
}

// ProjectionMatrix writes the camera-to-clip transform into out.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
func (c *Camera) ProjectionMatrix(out []float32) {
	copy(out, c.projectionMatrix[:])
}

// LookAt orients the camera so its forward axis points at target, then
// refreshes the matrices.
//
// Parameters:
//   - target: the world point to face
func (c *Camera) LookAt(target common.Vec3) {
	world := c.WorldPosition()
	desired := common.LookRotation(world, target, c.up)
	if parent := c.Parent(); parent != nil {
		desired = parent.WorldQuaternion().Invert().Mul(desired)
	}
	c.SetQuaternion(desired)
	c.UpdateProjection()
}
