package common

import "github.com/chewxy/math32"

// Plane represents a plane in 3D space using the equation
// dot(Normal, p) + Distance = 0; the positive half-space is inside.
type Plane struct {
	Normal   Vec3
	Distance float32
}

// Frustum represents the six planes of a view frustum for culling.
// Planes are oriented so that the positive half-space is inside the frustum.
type Frustum struct {
	Planes [6]Plane // Left, Right, Bottom, Top, Near, Far
}

// Frustum plane indices
const (
	FrustumLeft   = 0
	FrustumRight  = 1
	FrustumBottom = 2
	FrustumTop    = 3
	FrustumNear   = 4
	FrustumFar    = 5
)

// ExtractFrustum extracts frustum planes from a combined view-projection
// matrix with a [0, 1] depth range, using the Gribb/Hartmann method.
//
// Reference: https://www8.cs.umu.se/kurser/5DV051/HT12/lab/plane_extraction.pdf
//
// Parameters:
//   - viewProj: 16 float32 values, column-major projection * view
//
// Returns:
//   - Frustum: the extracted frustum with normalized planes
func ExtractFrustum(viewProj []float32) Frustum {
	// For a column-major matrix, row r of column c is viewProj[c*4+r].
	row := func(r int) (Vec3, float32) {
		return Vec3{X: viewProj[r], Y: viewProj[4+r], Z: viewProj[8+r]}, viewProj[12+r]
	}
	r0, d0 := row(0)
	r1, d1 := row(1)
	r2, d2 := row(2)
	r3, d3 := row(3)

	var f Frustum
	f.Planes[FrustumLeft] = Plane{Normal: r3.Add(r0), Distance: d3 + d0}
	f.Planes[FrustumRight] = Plane{Normal: r3.Sub(r0), Distance: d3 - d0}
	f.Planes[FrustumBottom] = Plane{Normal: r3.Add(r1), Distance: d3 + d1}
	f.Planes[FrustumTop] = Plane{Normal: r3.Sub(r1), Distance: d3 - d1}
	// Near is row2 alone under the [0, 1] clip convention.
	f.Planes[FrustumNear] = Plane{Normal: r2, Distance: d2}
	f.Planes[FrustumFar] = Plane{Normal: r3.Sub(r2), Distance: d3 - d2}

	for i := range f.Planes {
		f.normalizePlane(i)
	}
	return f
}

// ContainsSphere reports whether a bounding sphere is at least partially
// inside the frustum.
//
// Parameters:
//   - center: the sphere center in world space
//   - radius: the sphere radius
//
// Returns:
//   - bool: false only when the sphere is fully outside some plane
func (f *Frustum) ContainsSphere(center Vec3, radius float32) bool {
	for i := range f.Planes {
		p := &f.Planes[i]
		if p.Normal.Dot(center)+p.Distance < -radius {
			return false
		}
	}
	return true
}

// normalizePlane scales a plane so its normal has unit length.
func (f *Frustum) normalizePlane(index int) {
	p := &f.Planes[index]
	length := math32.Sqrt(p.Normal.Dot(p.Normal))
	if length > 0 {
		inv := 1 / length
		p.Normal = p.Normal.Scale(inv)
		p.Distance *= inv
	}
}
