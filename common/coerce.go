package common

import "encoding/json"

// CoerceVec3 converts a loosely typed value decoded from JSON into a Vec3.
// Accepted shapes:
//   - a single number: broadcast to all three components
//   - an array of 2 or 3 numbers: x, y and an optional z (missing z = 0)
//   - a [3]float32 or Vec3 passed through from Go callers
//
// Anything else yields the zero vector.
//
// Parameters:
//   - v: the value to coerce
//
// Returns:
//   - Vec3: the coerced vector
func CoerceVec3(v any) Vec3 {
	switch t := v.(type) {
	case Vec3:
		return t
	case [3]float32:
		return Vec3{t[0], t[1], t[2]}
	case []float32:
		parts := make([]any, len(t))
		for i, f := range t {
			parts[i] = f
		}
		return vec3FromComponents(parts)
	case []float64:
		parts := make([]any, len(t))
		for i, f := range t {
			parts[i] = f
		}
		return vec3FromComponents(parts)
	case []any:
		return vec3FromComponents(t)
	default:
		if f, ok := toFloat32(v); ok {
			return Vec3{f, f, f}
		}
		return Vec3{}
	}
}

// CoerceColor converts a loosely typed color value into normalized RGB.
// Accepted shapes:
//   - a number: packed 0xRRGGBB, each byte normalized to [0, 1]
//   - an array of 3 numbers: components already in [0, 1]
//
// Anything else yields white.
//
// Parameters:
//   - v: the value to coerce
//
// Returns:
//   - [3]float32: normalized RGB components
func CoerceColor(v any) [3]float32 {
	switch t := v.(type) {
	case [3]float32:
		return t
	case []float32:
		if len(t) >= 3 {
			return [3]float32{t[0], t[1], t[2]}
		}
	case []float64:
		if len(t) >= 3 {
			return [3]float32{float32(t[0]), float32(t[1]), float32(t[2])}
		}
	case []any:
		if len(t) >= 3 {
			r, okR := toFloat32(t[0])
			g, okG := toFloat32(t[1])
			b, okB := toFloat32(t[2])
			if okR && okG && okB {
				return [3]float32{r, g, b}
			}
		}
	default:
		if f, ok := toFloat32(v); ok {
			packed := uint32(f)
			return [3]float32{
				float32((packed>>16)&0xff) / 255,
				float32((packed>>8)&0xff) / 255,
				float32(packed&0xff) / 255,
			}
		}
	}
	return [3]float32{1, 1, 1}
}

func vec3FromComponents(parts []any) Vec3 {
	if len(parts) < 2 {
		return Vec3{}
	}
	x, okX := toFloat32(parts[0])
	y, okY := toFloat32(parts[1])
	if !okX || !okY {
		return Vec3{}
	}
	out := Vec3{X: x, Y: y}
	if len(parts) >= 3 {
		if z, ok := toFloat32(parts[2]); ok {
			out.Z = z
		}
	}
	return out
}

func toFloat32(v any) (float32, bool) {
	switch t := v.(type) {
	case float64:
		return float32(t), true
	case float32:
		return t, true
	case int:
		return float32(t), true
	case int64:
		return float32(t), true
	case uint32:
		return float32(t), true
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0, false
		}
		return float32(f), true
	default:
		return 0, false
	}
}
