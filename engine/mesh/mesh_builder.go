package mesh

import "github.com/NitaCristianu/thrash-motion-canvas/common"

// MeshOption is a function that configures a Mesh instance during construction.
type MeshOption func(*Mesh)

// WithMeshName is an option builder that sets the mesh's name.
//
// Parameters:
//   - name: the name to assign
//
// Returns:
//   - MeshOption: a function that applies the name option to a Mesh
func WithMeshName(name string) MeshOption {
	return func(m *Mesh) {
		m.SetName(name)
	}
}

// WithMeshUUID is an option builder that overrides the generated identifier.
//
// Parameters:
//   - uuid: the identifier to assign
//
// Returns:
//   - MeshOption: a function that applies the uuid option to a Mesh
func WithMeshUUID(uuid string) MeshOption {
	return func(m *Mesh) {
		m.SetUUID(uuid)
	}
}

// WithMeshPosition is an option builder that sets the local translation.
//
// Parameters:
//   - p: the position to assign
//
// Returns:
//   - MeshOption: a function that applies the position option to a Mesh
func WithMeshPosition(p common.Vec3) MeshOption {
	return func(m *Mesh) {
		m.SetPosition(p)
	}
}

// WithMeshQuaternion is an option builder that sets the local rotation.
//
// Parameters:
//   - q: the rotation to assign
//
// Returns:
//   - MeshOption: a function that applies the rotation option to a Mesh
func WithMeshQuaternion(q common.Quat) MeshOption {
	return func(m *Mesh) {
		m.SetQuaternion(q)
	}
}

// WithMeshScale is an option builder that sets the local per-axis scale.
//
// Parameters:
//   - s: the scale to assign
//
// Returns:
//   - MeshOption: a function that applies the scale option to a Mesh
func WithMeshScale(s common.Vec3) MeshOption {
	return func(m *Mesh) {
		m.SetScale(s)
	}
}
