// package material provides the shading descriptions attached to mesh nodes.
package material

// Side selects which triangle faces the renderer keeps.
type Side int

const (
	// SideFront renders only front-facing triangles.
	SideFront Side = iota
	// SideBack renders only back-facing triangles.
	SideBack
	// SideDouble renders both faces.
	SideDouble
)

// SideFromIndex maps the scene document's numeric side flag (0/1/2) to a Side.
// Out-of-range values default to SideFront.
func SideFromIndex(i int) Side {
	switch i {
	case 1:
		return SideBack
	case 2:
		return SideDouble
	default:
		return SideFront
	}
}

// Model selects the shading model.
type Model int

const (
	// ModelStandard is the physically-shaded model (lit, roughness/metalness).
	ModelStandard Model = iota
	// ModelBasic is the constant-shaded model (unlit flat color).
	ModelBasic
)

// Material describes how a mesh surface is shaded. Fields not meaningful for
// the chosen model are ignored by the renderer.
type Material struct {
	name              string
	model             Model
	color             [3]float32
	roughness         float32
	metalness         float32
	emissive          [3]float32
	emissiveIntensity float32
	wireframe         bool
	flatShading       bool
	opacity           float32
	transparent       bool
	side              Side
}

// NewStandard creates a physically-shaded material. Defaults: white, roughness 1,
// metalness 0, opaque, front-sided.
//
// Parameters:
//   - opts: optional configuration
//
// Returns:
//   - *Material: the new material
func NewStandard(opts ...MaterialOption) *Material {
	m := &Material{
		model:             ModelStandard,
		color:             [3]float32{1, 1, 1},
		roughness:         1,
		emissiveIntensity: 1,
		opacity:           1,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewBasic creates a constant-shaded (unlit) material. Defaults: white, opaque,
// front-sided.
//
// Parameters:
//   - opts: optional configuration
//
// Returns:
//   - *Material: the new material
func NewBasic(opts ...MaterialOption) *Material {
	m := &Material{
		model:   ModelBasic,
		color:   [3]float32{1, 1, 1},
		opacity: 1,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Default returns the material used when a mesh's material reference does not
// resolve: plain white standard shading.
func Default() *Material {
	return NewStandard()
}

// NewFlat creates the unlit single-color material used for silhouette captures.
//
// Parameters:
//   - r, g, b: the flat color components in [0, 1]
//
// Returns:
//   - *Material: the new material
func NewFlat(r, g, b float32) *Material {
	return NewBasic(WithColor(r, g, b))
}

// Name returns the material's name.
func (m *Material) Name() string { return m.name }

// Model returns the shading model.
func (m *Material) Model() Model { return m.model }

// Color returns the base color as normalized RGB.
func (m *Material) Color() [3]float32 { return m.color }

// Roughness returns the roughness factor (standard model only).
func (m *Material) Roughness() float32 { return m.roughness }

// Metalness returns the metalness factor (standard model only).
func (m *Material) Metalness() float32 { return m.metalness }

// Emissive returns the emissive color as normalized RGB.
func (m *Material) Emissive() [3]float32 { return m.emissive }

// EmissiveIntensity returns the emissive multiplier.
func (m *Material) EmissiveIntensity() float32 { return m.emissiveIntensity }

// Wireframe reports whether the material renders as wireframe.
func (m *Material) Wireframe() bool { return m.wireframe }

// FlatShading reports whether per-face normals are used instead of smooth ones.
func (m *Material) FlatShading() bool { return m.flatShading }

// Opacity returns the opacity in [0, 1].
func (m *Material) Opacity() float32 { return m.opacity }

// Transparent reports whether the material participates in alpha blending.
func (m *Material) Transparent() bool { return m.transparent }

// Side returns which triangle faces are kept.
func (m *Material) Side() Side { return m.side }
