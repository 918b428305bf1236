// package light provides the light source scene graph nodes materialized from
// a scene document.
package light

import (
	"github.com/NitaCristianu/thrash-motion-canvas/engine/object"
	"github.com/chewxy/math32"
)

// Kind identifies the kind of light source.
type Kind int

const (
	// KindAmbient represents a light that illuminates every surface uniformly,
	// with no position or direction.
	KindAmbient Kind = iota

	// KindDirectional represents a light with no position, only an orientation
	// toward a target. Used for large distant sources like the sun or moon.
	KindDirectional

	// KindPoint represents a light that emits in all directions from a
	// position, attenuating with distance and decay.
	KindPoint

	// KindSpot represents a light that emits in a cone from a position toward
	// a target, attenuating with distance and angle from the cone axis.
	KindSpot
)

var _ object.Object = &Light{}

// Light is a scene graph node describing one light source. All kinds share
// the struct; kind-specific properties hold zero values when not applicable.
type Light struct {
	object.Node
	kind       Kind
	color      [3]float32
	intensity  float32
	distance   float32
	decay      float32
	angle      float32
	penumbra   float32
	castShadow bool
	target     object.Object
}

func newLight(kind Kind, opts []LightOption) *Light {
	l := &Light{
		Node:      object.NewBase(""),
		kind:      kind,
		color:     [3]float32{1, 1, 1},
		intensity: 1,
		decay:     2,
		angle:     math32.Pi / 3,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// NewAmbient creates an ambient light node.
//
// Parameters:
//   - opts: optional configuration (color, intensity, name)
//
// Returns:
//   - *Light: the new light node
func NewAmbient(opts ...LightOption) *Light {
	return newLight(KindAmbient, opts)
}

// NewDirectional creates a directional light node. Its orientation is defined
// by the vector from its position toward its target.
//
// Parameters:
//   - opts: optional configuration
//
// Returns:
//   - *Light: the new light node
func NewDirectional(opts ...LightOption) *Light {
	return newLight(KindDirectional, opts)
}

// NewPoint creates a point light node.
//
// Parameters:
//   - opts: optional configuration
//
// Returns:
//   - *Light: the new light node
func NewPoint(opts ...LightOption) *Light {
	return newLight(KindPoint, opts)
}

// NewSpot creates a spot light node aimed at its target.
//
// Parameters:
//   - opts: optional configuration
//
// Returns:
//   - *Light: the new light node
func NewSpot(opts ...LightOption) *Light {
	return newLight(KindSpot, opts)
}

// Base returns the light's shared node state.
func (l *Light) Base() *object.Node {
	return &l.Node
}

// Clone returns a copy of the light with a fresh UUID. The target reference
// is shared, not cloned. When recursive is true the children are cloned as well.
func (l *Light) Clone(recursive bool) object.Object {
	c := newLight(l.kind, nil)
	c.SetName(l.Name())
	c.CopyTransform(&l.Node)
	c.color = l.color
	c.intensity = l.intensity
	c.distance = l.distance
	c.decay = l.decay
	c.angle = l.angle
	c.penumbra = l.penumbra
	c.castShadow = l.castShadow
	c.target = l.target
	if recursive {
		object.CloneChildren(l, c)
	}
	return c
}

// Kind returns the kind of light source.
func (l *Light) Kind() Kind { return l.kind }

// Color returns the RGB color of the light.
func (l *Light) Color() [3]float32 { return l.color }

// Intensity returns the scalar intensity multiplier.
func (l *Light) Intensity() float32 { return l.intensity }

// Distance returns the maximum attenuation distance for point and spot
// lights. Zero means unbounded.
func (l *Light) Distance() float32 { return l.distance }

// Decay returns the distance falloff exponent for point and spot lights.
func (l *Light) Decay() float32 { return l.decay }

// Angle returns the cone half-angle in radians for spot lights.
func (l *Light) Angle() float32 { return l.angle }

// Penumbra returns the soft-edge fraction of the spot cone in [0, 1].
func (l *Light) Penumbra() float32 { return l.penumbra }

// CastsShadow reports whether the light is flagged as shadow-casting.
func (l *Light) CastsShadow() bool { return l.castShadow }

// Target returns the orientation anchor for directional and spot lights, or
// nil when none has been bound.
func (l *Light) Target() object.Object { return l.target }

// SetTarget binds the orientation anchor. Used by the importer once the full
// graph exists and target uuids can be resolved.
func (l *Light) SetTarget(target object.Object) {
	l.target = target
}
