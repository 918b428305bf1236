package geometry

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoxTriangulation(t *testing.T) {
	b := NewBox(WithBoxSize(2, 4, 6))
	tris := b.Triangles()

	// Six faces, one segment each: 4 vertices and 2 triangles per face.
	assert.Len(t, tris.Positions, 24)
	assert.Len(t, tris.Normals, 24)
	assert.Len(t, tris.Indices, 36)

	// Every vertex sits on the box surface.
	for _, p := range tris.Positions {
		assert.LessOrEqual(t, math32.Abs(p.X), float32(1)+1e-5)
		assert.LessOrEqual(t, math32.Abs(p.Y), float32(2)+1e-5)
		assert.LessOrEqual(t, math32.Abs(p.Z), float32(3)+1e-5)
	}

	// Normals are unit axis vectors.
	for _, n := range tris.Normals {
		assert.InDelta(t, 1.0, n.Length(), 1e-5)
	}

	// Cached: repeated calls return the same slice backing.
	assert.Same(t, tris, b.Triangles())
}

func TestBoxSegmentsIncreaseDensity(t *testing.T) {
	coarse := NewBox()
	fine := NewBox(WithBoxSegments(2, 2, 2))
	assert.Greater(t, len(fine.Triangles().Indices), len(coarse.Triangles().Indices))
}

func TestSphereVerticesLieOnRadius(t *testing.T) {
	s := NewSphere(WithSphereRadius(3), WithSphereSegments(8, 6))
	tris := s.Triangles()
	require.NotEmpty(t, tris.Positions)

	for _, p := range tris.Positions {
		assert.InDelta(t, 3.0, p.Length(), 1e-4)
	}
	for i, n := range tris.Normals {
		assert.InDelta(t, 1.0, n.Length(), 1e-4)
		// Normal points radially outward.
		assert.InDelta(t, 3.0, n.Dot(tris.Positions[i]), 1e-3)
	}
}

func TestSphereSegmentFloors(t *testing.T) {
	s := NewSphere(WithSphereSegments(1, 1))
	tris := s.Triangles()
	// Floored to 3x2, so the grid still produces triangles.
	assert.NotEmpty(t, tris.Indices)
}
