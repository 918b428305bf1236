package camera

import "github.com/NitaCristianu/thrash-motion-canvas/common"

// CameraOption is a function that configures a Camera instance during construction.
type CameraOption func(*Camera)

// WithCameraName is an option builder that sets the camera's name.
//
// Parameters:
//   - name: the name to assign
//
// Returns:
//   - CameraOption: a function that applies the name option to a Camera
func WithCameraName(name string) CameraOption {
	return func(c *Camera) {
		c.SetName(name)
	}
}

// WithCameraUUID is an option builder that overrides the generated identifier.
//
// Parameters:
//   - uuid: the identifier to assign
//
// Returns:
//   - CameraOption: a function that applies the uuid option to a Camera
func WithCameraUUID(uuid string) CameraOption {
	return func(c *Camera) {
		c.SetUUID(uuid)
	}
}

// WithFov is an option builder that sets the vertical field of view in degrees.
//
// Parameters:
//   - fov: field of view in degrees
//
// Returns:
//   - CameraOption: a function that applies the fov option to a Camera
func WithFov(fov float32) CameraOption {
	return func(c *Camera) {
		c.fov = fov
	}
}

// WithAspect is an option builder that sets the aspect ratio (width / height).
//
// Parameters:
//   - aspect: the aspect ratio
//
// Returns:
//   - CameraOption: a function that applies the aspect option to a Camera
func WithAspect(aspect float32) CameraOption {
	return func(c *Camera) {
		if aspect > 0 {
			c.aspect = aspect
		}
	}
}

// WithNear is an option builder that sets the near clipping plane distance.
//
// Parameters:
//   - near: near plane distance (must be > 0)
//
// Returns:
//   - CameraOption: a function that applies the near option to a Camera
func WithNear(near float32) CameraOption {
	return func(c *Camera) {
		if near > 0 {
			c.near = near
		}
	}
}

// WithFar is an option builder that sets the far clipping plane distance.
//
// Parameters:
//   - far: far plane distance
//
// Returns:
//   - CameraOption: a function that applies the far option to a Camera
func WithFar(far float32) CameraOption {
	return func(c *Camera) {
		if far > 0 {
			c.far = far
		}
	}
}

// WithUp is an option builder that sets the camera's up reference vector.
//
// Parameters:
//   - up: the up vector (normalized before storing)
//
// Returns:
//   - CameraOption: a function that applies the up option to a Camera
func WithUp(up common.Vec3) CameraOption {
	return func(c *Camera) {
		if up.Length() > 0 {
			c.up = up.Normalize()
		}
	}
}

// WithCameraPosition is an option builder that sets the local translation.
//
// Parameters:
//   - p: the position to assign
//
// Returns:
//   - CameraOption: a function that applies the position option to a Camera
func WithCameraPosition(p common.Vec3) CameraOption {
	return func(c *Camera) {
		c.SetPosition(p)
	}
}

// WithCameraQuaternion is an option builder that sets the local rotation.
//
// Parameters:
//   - q: the rotation to assign
//
// Returns:
//   - CameraOption: a function that applies the rotation option to a Camera
func WithCameraQuaternion(q common.Quat) CameraOption {
	return func(c *Camera) {
		c.SetQuaternion(q)
	}
}
