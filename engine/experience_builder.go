package engine

import (
	"github.com/NitaCristianu/thrash-motion-canvas/common"
	"github.com/NitaCristianu/thrash-motion-canvas/engine/framecache"
	"github.com/NitaCristianu/thrash-motion-canvas/engine/loader"
	"github.com/NitaCristianu/thrash-motion-canvas/engine/renderer"
)

// ExperienceOption is a functional option for configuring an Experience via
// NewExperience.
type ExperienceOption func(e *experience)

// WithLoader is an option builder that supplies an existing asset loader
// instead of creating one.
//
// Parameters:
//   - l: the loader to use
//
// Returns:
//   - ExperienceOption: a function that applies the loader option to an experience
func WithLoader(l loader.Loader) ExperienceOption {
	return func(e *experience) {
		e.loader = l
	}
}

// WithRenderer is an option builder that supplies the renderer used by the
// render hook and the snapshot capture.
//
// Parameters:
//   - r: the renderer to use
//
// Returns:
//   - ExperienceOption: a function that applies the renderer option to an experience
func WithRenderer(r renderer.Renderer) ExperienceOption {
	return func(e *experience) {
		e.renderer = r
	}
}

// WithFrameCache is an option builder that supplies an existing frame cache
// instead of creating one.
//
// Parameters:
//   - c: the cache to use
//
// Returns:
//   - ExperienceOption: a function that applies the cache option to an experience
func WithFrameCache(c *framecache.Cache) ExperienceOption {
	return func(e *experience) {
		e.frames = c
	}
}

// instantiateConfig collects the optional per-instance transform deltas.
type instantiateConfig struct {
	positionDelta *common.Vec3
	rotationDelta *common.Quat
	scaleDelta    *common.Vec3
}

// InstantiateOption is a functional option for Experience.Instantiate.
type InstantiateOption func(c *instantiateConfig)

// WithPositionDelta is an option builder that adds an offset to each
// instance's copied position.
//
// Parameters:
//   - delta: the offset to add
//
// Returns:
//   - InstantiateOption: a function that applies the position delta
func WithPositionDelta(delta common.Vec3) InstantiateOption {
	return func(c *instantiateConfig) {
		c.positionDelta = &delta
	}
}

// WithRotationDelta is an option builder that post-multiplies each
// instance's copied orientation by a rotation.
//
// Parameters:
//   - delta: the rotation to compose
//
// Returns:
//   - InstantiateOption: a function that applies the rotation delta
func WithRotationDelta(delta common.Quat) InstantiateOption {
	return func(c *instantiateConfig) {
		c.rotationDelta = &delta
	}
}

// WithScaleDelta is an option builder that multiplies each instance's copied
// scale per axis.
//
// Parameters:
//   - delta: the per-axis scale factors
//
// Returns:
//   - InstantiateOption: a function that applies the scale delta
func WithScaleDelta(delta common.Vec3) InstantiateOption {
	return func(c *instantiateConfig) {
		c.scaleDelta = &delta
	}
}
