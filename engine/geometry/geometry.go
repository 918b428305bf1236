// package geometry provides the mesh shapes constructible from a scene
// document, each able to triangulate itself for the renderer.
package geometry

import (
	"github.com/NitaCristianu/thrash-motion-canvas/common"
	"github.com/chewxy/math32"
)

// Geometry is a triangulatable shape referenced by mesh nodes.
type Geometry interface {
	// Triangles returns the triangulated form of the shape. The result is
	// computed once and shared; callers must not mutate it.
	Triangles() *Triangles
}

// Triangles is the renderer-facing form of a geometry: indexed triangle
// soup with per-vertex normals.
type Triangles struct {
	Positions []common.Vec3
	Normals   []common.Vec3
	Indices   []uint32
}

var _ Geometry = &Box{}
var _ Geometry = &Sphere{}

// Box is an axis-aligned cuboid centered at the origin.
type Box struct {
	width, height, depth                         float32
	widthSegments, heightSegments, depthSegments int

	tris *Triangles
}

// NewBox creates a box geometry. Defaults: unit dimensions, one segment per axis.
//
// Parameters:
//   - opts: optional configuration (dimensions, segment counts)
//
// Returns:
//   - *Box: the new box geometry
func NewBox(opts ...BoxOption) *Box {
	b := &Box{
		width: 1, height: 1, depth: 1,
		widthSegments: 1, heightSegments: 1, depthSegments: 1,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.widthSegments < 1 {
		b.widthSegments = 1
	}
	if b.heightSegments < 1 {
		b.heightSegments = 1
	}
	if b.depthSegments < 1 {
		b.depthSegments = 1
	}
	return b
}

// Width returns the box's extent along X.
func (b *Box) Width() float32 { return b.width }

// Height returns the box's extent along Y.
func (b *Box) Height() float32 { return b.height }

// Depth returns the box's extent along Z.
func (b *Box) Depth() float32 { return b.depth }

// Triangles triangulates the box as six segmented planes with face normals.
func (b *Box) Triangles() *Triangles {
	if b.tris != nil {
		return b.tris
	}
	t := &Triangles{}

	// Each face is a grid plane: u axis, v axis, outward normal w.
	buildPlane := func(u, v, w common.Vec3, uLen, vLen, offset float32, uSeg, vSeg int) {
		base := uint32(len(t.Positions))
		normal := w
		for j := 0; j <= vSeg; j++ {
			fv := float32(j)/float32(vSeg) - 0.5
			for i := 0; i <= uSeg; i++ {
				fu := float32(i)/float32(uSeg) - 0.5
				p := u.Scale(fu * uLen).Add(v.Scale(fv * vLen)).Add(w.Scale(offset))
				t.Positions = append(t.Positions, p)
				t.Normals = append(t.Normals, normal)
			}
		}
		stride := uint32(uSeg + 1)
		for j := 0; j < vSeg; j++ {
			for i := 0; i < uSeg; i++ {
				a := base + uint32(i) + uint32(j)*stride
				bIdx := a + stride
				t.Indices = append(t.Indices, a, bIdx, a+1, bIdx, bIdx+1, a+1)
			}
		}
	}

	px := common.Vec3{X: 1}
	py := common.Vec3{Y: 1}
	pz := common.Vec3{Z: 1}
	nx := common.Vec3{X: -1}
	ny := common.Vec3{Y: -1}
	nz := common.Vec3{Z: -1}

	hw, hh, hd := b.width/2, b.height/2, b.depth/2
	buildPlane(nz, ny, px, b.depth, b.height, hw, b.depthSegments, b.heightSegments)  // +X
	buildPlane(pz, ny, nx, b.depth, b.height, hd, b.depthSegments, b.heightSegments)  // -X
	buildPlane(px, pz, py, b.width, b.depth, hh, b.widthSegments, b.depthSegments)    // +Y
	buildPlane(px, nz, ny, b.width, b.depth, hh, b.widthSegments, b.depthSegments)    // -Y
	buildPlane(px, ny, pz, b.width, b.height, hd, b.widthSegments, b.heightSegments)  // +Z
	buildPlane(nx, ny, nz, b.width, b.height, hw, b.widthSegments, b.heightSegments)  // -Z

	b.tris = t
	return t
}

// Sphere is a latitude/longitude sphere centered at the origin, optionally
// restricted to phi (longitude) and theta (latitude) ranges.
type Sphere struct {
	radius                        float32
	widthSegments, heightSegments int
	phiStart, phiLength           float32
	thetaStart, thetaLength       float32

	tris *Triangles
}

// NewSphere creates a sphere geometry. Defaults: radius 1, 32x16 segments,
// full phi and theta sweeps.
//
// Parameters:
//   - opts: optional configuration (radius, segments, sweep ranges)
//
// Returns:
//   - *Sphere: the new sphere geometry
func NewSphere(opts ...SphereOption) *Sphere {
	s := &Sphere{
		radius:        1,
		widthSegments: 32, heightSegments: 16,
		phiLength:   2 * math32.Pi,
		thetaLength: math32.Pi,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.widthSegments < 3 {
		s.widthSegments = 3
	}
	if s.heightSegments < 2 {
		s.heightSegments = 2
	}
	return s
}

// Radius returns the sphere radius.
func (s *Sphere) Radius() float32 { return s.radius }

// Triangles triangulates the sphere over its configured sweep ranges.
func (s *Sphere) Triangles() *Triangles {
	if s.tris != nil {
		return s.tris
	}
	t := &Triangles{}

	for j := 0; j <= s.heightSegments; j++ {
		theta := s.thetaStart + s.thetaLength*float32(j)/float32(s.heightSegments)
		sinT, cosT := math32.Sin(theta), math32.Cos(theta)
		for i := 0; i <= s.widthSegments; i++ {
			phi := s.phiStart + s.phiLength*float32(i)/float32(s.widthSegments)
			n := common.Vec3{
				X: -math32.Cos(phi) * sinT,
				Y: cosT,
				Z: math32.Sin(phi) * sinT,
			}
			t.Normals = append(t.Normals, n)
			t.Positions = append(t.Positions, n.Scale(s.radius))
		}
	}

	stride := uint32(s.widthSegments + 1)
	for j := 0; j < s.heightSegments; j++ {
		for i := 0; i < s.widthSegments; i++ {
			a := uint32(i) + uint32(j)*stride
			b := a + stride
			t.Indices = append(t.Indices, a, b, a+1, b, b+1, a+1)
		}
	}

	s.tris = t
	return t
}
