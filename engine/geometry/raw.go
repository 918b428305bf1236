package geometry

var _ Geometry = &Raw{}

// Raw wraps pre-triangulated data, used for meshes imported from external
// asset files rather than constructed from document parameters.
type Raw struct {
	tris *Triangles
}

// NewRaw creates a geometry over existing triangle data.
//
// Parameters:
//   - tris: the triangulated data (must not be nil)
//
// Returns:
//   - *Raw: the new geometry
func NewRaw(tris *Triangles) *Raw {
	if tris == nil {
		panic("geometry: triangle data is required")
	}
	return &Raw{tris: tris}
}

// Triangles returns the wrapped triangle data.
func (r *Raw) Triangles() *Triangles {
	return r.tris
}
