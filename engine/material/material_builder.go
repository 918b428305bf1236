package material

// MaterialOption is a function that configures a Material instance during construction.
type MaterialOption func(*Material)

// WithName is an option builder that sets the material's name.
//
// Parameters:
//   - name: the name to assign
//
// Returns:
//   - MaterialOption: a function that applies the name option to a Material
func WithName(name string) MaterialOption {
	return func(m *Material) {
		m.name = name
	}
}

// WithColor is an option builder that sets the base color.
//
// Parameters:
//   - r, g, b: normalized color components
//
// Returns:
//   - MaterialOption: a function that applies the color option to a Material
func WithColor(r, g, b float32) MaterialOption {
	return func(m *Material) {
		m.color = [3]float32{r, g, b}
	}
}

// WithRoughness is an option builder that sets the roughness factor.
//
// Parameters:
//   - roughness: 0 (smooth) to 1 (rough)
//
// Returns:
//   - MaterialOption: a function that applies the roughness option to a Material
func WithRoughness(roughness float32) MaterialOption {
	return func(m *Material) {
		m.roughness = roughness
	}
}

// WithMetalness is an option builder that sets the metalness factor.
//
// Parameters:
//   - metalness: 0 (dielectric) to 1 (metal)
//
// Returns:
//   - MaterialOption: a function that applies the metalness option to a Material
func WithMetalness(metalness float32) MaterialOption {
	return func(m *Material) {
		m.metalness = metalness
	}
}

// WithEmissive is an option builder that sets the emissive color and multiplier.
//
// Parameters:
//   - r, g, b: normalized emissive components
//   - intensity: emissive multiplier
//
// Returns:
//   - MaterialOption: a function that applies the emissive option to a Material
func WithEmissive(r, g, b, intensity float32) MaterialOption {
	return func(m *Material) {
		m.emissive = [3]float32{r, g, b}
		m.emissiveIntensity = intensity
	}
}

// WithWireframe is an option builder that enables wireframe rendering.
//
// Returns:
//   - MaterialOption: a function that applies the wireframe option to a Material
func WithWireframe(wireframe bool) MaterialOption {
	return func(m *Material) {
		m.wireframe = wireframe
	}
}

// WithFlatShading is an option builder that enables per-face normals.
//
// Returns:
//   - MaterialOption: a function that applies the flat shading option to a Material
func WithFlatShading(flat bool) MaterialOption {
	return func(m *Material) {
		m.flatShading = flat
	}
}

// WithOpacity is an option builder that sets opacity and the transparency flag.
//
// Parameters:
//   - opacity: opacity in [0, 1]
//   - transparent: whether the material blends
//
// Returns:
//   - MaterialOption: a function that applies the opacity option to a Material
func WithOpacity(opacity float32, transparent bool) MaterialOption {
	return func(m *Material) {
		m.opacity = opacity
		m.transparent = transparent
	}
}

// WithSide is an option builder that selects which triangle faces are kept.
//
// Parameters:
//   - side: the face-culling side
//
// Returns:
//   - MaterialOption: a function that applies the side option to a Material
func WithSide(side Side) MaterialOption {
	return func(m *Material) {
		m.side = side
	}
}
