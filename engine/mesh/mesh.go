// package mesh provides the renderable scene graph node: a geometry paired
// with a material.
package mesh

import (
	"github.com/NitaCristianu/thrash-motion-canvas/engine/geometry"
	"github.com/NitaCristianu/thrash-motion-canvas/engine/material"
	"github.com/NitaCristianu/thrash-motion-canvas/engine/object"
)

var _ object.Object = &Mesh{}

// Mesh is a scene graph node that renders a geometry with a material.
type Mesh struct {
	object.Node
	geometry geometry.Geometry
	material *material.Material
}

// NewMesh creates a mesh node. The geometry is required; a nil material falls
// back to the default white standard material.
//
// Parameters:
//   - geo: the shape to render (must not be nil)
//   - mat: the surface shading (nil for default)
//   - opts: optional configuration (name, transform)
//
// Returns:
//   - *Mesh: the new mesh node
func NewMesh(geo geometry.Geometry, mat *material.Material, opts ...MeshOption) *Mesh {
	if geo == nil {
		panic("mesh: geometry is required")
	}
	if mat == nil {
		mat = material.Default()
	}
	m := &Mesh{
		Node:     object.NewBase(""),
		geometry: geo,
		material: mat,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Base returns the mesh's shared node state.
func (m *Mesh) Base() *object.Node {
	return &m.Node
}

// Clone returns a copy of the mesh with a fresh UUID. Geometry and material
// are shared with the original; replacing the clone's material does not
// affect the source. When recursive is true the children are cloned as well.
func (m *Mesh) Clone(recursive bool) object.Object {
	c := NewMesh(m.geometry, m.material, WithMeshName(m.Name()))
	c.CopyTransform(&m.Node)
	if recursive {
		object.CloneChildren(m, c)
	}
	return c
}

// Geometry returns the mesh's shape.
func (m *Mesh) Geometry() geometry.Geometry {
	return m.geometry
}

// Material returns the mesh's surface shading.
func (m *Mesh) Material() *material.Material {
	return m.material
}

// SetMaterial replaces the mesh's surface shading. Nil is ignored.
func (m *Mesh) SetMaterial(mat *material.Material) {
	if mat != nil {
		m.material = mat
	}
}
