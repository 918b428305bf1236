package mesh

import (
	"testing"

	"github.com/NitaCristianu/thrash-motion-canvas/common"
	"github.com/NitaCristianu/thrash-motion-canvas/engine/geometry"
	"github.com/NitaCristianu/thrash-motion-canvas/engine/material"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMeshDefaults(t *testing.T) {
	m := NewMesh(geometry.NewBox(), nil, WithMeshName("cube"))
	assert.Equal(t, "cube", m.Name())
	require.NotNil(t, m.Material())
	assert.Equal(t, material.ModelStandard, m.Material().Model())
	assert.Equal(t, [3]float32{1, 1, 1}, m.Material().Color())
}

func TestNewMeshNilGeometryPanics(t *testing.T) {
	assert.PanicsWithValue(t, "mesh: geometry is required", func() {
		NewMesh(nil, nil)
	})
}

func TestCloneSharesGeometryNotMaterialSlot(t *testing.T) {
	geo := geometry.NewBox()
	mat := material.NewBasic(material.WithColor(1, 0, 0))
	m := NewMesh(geo, mat, WithMeshName("cube"), WithMeshPosition(common.Vec3{X: 2}))

	clone, ok := m.Clone(false).(*Mesh)
	require.True(t, ok)
	assert.Same(t, geo, clone.Geometry())
	assert.Same(t, mat, clone.Material())
	assert.Equal(t, m.Position(), clone.Position())
	assert.NotEqual(t, m.UUID(), clone.UUID())

	// Swapping the clone's material leaves the original untouched.
	clone.SetMaterial(material.NewFlat(1, 1, 1))
	assert.Same(t, mat, m.Material())
}

func TestSetMaterialIgnoresNil(t *testing.T) {
	m := NewMesh(geometry.NewSphere(), nil)
	before := m.Material()
	m.SetMaterial(nil)
	assert.Same(t, before, m.Material())
}
