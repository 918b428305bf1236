package light

import "github.com/NitaCristianu/thrash-motion-canvas/common"

// LightOption is a function that configures a Light instance during construction.
type LightOption func(*Light)

// WithLightName is an option builder that sets the light's name.
//
// Parameters:
//   - name: the name to assign
//
// Returns:
//   - LightOption: a function that applies the name option to a Light
func WithLightName(name string) LightOption {
	return func(l *Light) {
		l.SetName(name)
	}
}

// WithLightUUID is an option builder that overrides the generated identifier.
//
// Parameters:
//   - uuid: the identifier to assign
//
// Returns:
//   - LightOption: a function that applies the uuid option to a Light
func WithLightUUID(uuid string) LightOption {
	return func(l *Light) {
		l.SetUUID(uuid)
	}
}

// WithLightPosition is an option builder that sets the local translation.
//
// Parameters:
//   - p: the position to assign
//
// Returns:
//   - LightOption: a function that applies the position option to a Light
func WithLightPosition(p common.Vec3) LightOption {
	return func(l *Light) {
		l.SetPosition(p)
	}
}

// WithLightColor is an option builder that sets the RGB color of the light.
//
// Parameters:
//   - r, g, b: normalized color components
//
// Returns:
//   - LightOption: a function that applies the color option to a Light
func WithLightColor(r, g, b float32) LightOption {
	return func(l *Light) {
		l.color = [3]float32{r, g, b}
	}
}

// WithIntensity is an option builder that sets the scalar intensity multiplier.
//
// Parameters:
//   - intensity: the intensity value
//
// Returns:
//   - LightOption: a function that applies the intensity option to a Light
func WithIntensity(intensity float32) LightOption {
	return func(l *Light) {
		l.intensity = intensity
	}
}

// WithDistance is an option builder that sets the maximum attenuation distance
// for point and spot lights.
//
// Parameters:
//   - distance: the distance value (0 = unbounded)
//
// Returns:
//   - LightOption: a function that applies the distance option to a Light
func WithDistance(distance float32) LightOption {
	return func(l *Light) {
		l.distance = distance
	}
}

// WithDecay is an option builder that sets the distance falloff exponent for
// point and spot lights.
//
// Parameters:
//   - decay: the decay exponent
//
// Returns:
//   - LightOption: a function that applies the decay option to a Light
func WithDecay(decay float32) LightOption {
	return func(l *Light) {
		l.decay = decay
	}
}

// WithAngle is an option builder that sets the spot cone half-angle.
//
// Parameters:
//   - angle: the half-angle in radians
//
// Returns:
//   - LightOption: a function that applies the angle option to a Light
func WithAngle(angle float32) LightOption {
	return func(l *Light) {
		l.angle = angle
	}
}

// WithPenumbra is an option builder that sets the spot cone's soft-edge fraction.
//
// Parameters:
//   - penumbra: the soft-edge fraction in [0, 1]
//
// Returns:
//   - LightOption: a function that applies the penumbra option to a Light
func WithPenumbra(penumbra float32) LightOption {
	return func(l *Light) {
		l.penumbra = penumbra
	}
}

// WithCastShadow is an option builder that flags the light as shadow-casting.
//
// Parameters:
//   - cast: whether the light casts shadows
//
// Returns:
//   - LightOption: a function that applies the shadow option to a Light
func WithCastShadow(cast bool) LightOption {
	return func(l *Light) {
		l.castShadow = cast
	}
}
