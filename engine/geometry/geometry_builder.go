package geometry

// BoxOption is a function that configures a Box instance during construction.
type BoxOption func(*Box)

// WithBoxSize is an option builder that sets the box dimensions.
//
// Parameters:
//   - width: extent along X
//   - height: extent along Y
//   - depth: extent along Z
//
// Returns:
//   - BoxOption: a function that applies the size option to a Box
func WithBoxSize(width, height, depth float32) BoxOption {
	return func(b *Box) {
		b.width = width
		b.height = height
		b.depth = depth
	}
}

// WithBoxSegments is an option builder that sets the per-axis subdivision counts.
//
// Parameters:
//   - width: segments along X
//   - height: segments along Y
//   - depth: segments along Z
//
// Returns:
//   - BoxOption: a function that applies the segment option to a Box
func WithBoxSegments(width, height, depth int) BoxOption {
	return func(b *Box) {
		b.widthSegments = width
		b.heightSegments = height
		b.depthSegments = depth
	}
}

// SphereOption is a function that configures a Sphere instance during construction.
type SphereOption func(*Sphere)

// WithSphereRadius is an option builder that sets the sphere radius.
//
// Parameters:
//   - radius: the radius value
//
// Returns:
//   - SphereOption: a function that applies the radius option to a Sphere
func WithSphereRadius(radius float32) SphereOption {
	return func(s *Sphere) {
		s.radius = radius
	}
}

// WithSphereSegments is an option builder that sets the longitude/latitude
// subdivision counts.
//
// Parameters:
//   - width: longitudinal segments
//   - height: latitudinal segments
//
// Returns:
//   - SphereOption: a function that applies the segment option to a Sphere
func WithSphereSegments(width, height int) SphereOption {
	return func(s *Sphere) {
		s.widthSegments = width
		s.heightSegments = height
	}
}

// WithSpherePhiRange is an option builder that restricts the longitudinal sweep.
//
// Parameters:
//   - start: starting angle in radians
//   - length: sweep length in radians
//
// Returns:
//   - SphereOption: a function that applies the phi range option to a Sphere
func WithSpherePhiRange(start, length float32) SphereOption {
	return func(s *Sphere) {
		s.phiStart = start
		s.phiLength = length
	}
}

// WithSphereThetaRange is an option builder that restricts the latitudinal sweep.
//
// Parameters:
//   - start: starting angle in radians
//   - length: sweep length in radians
//
// Returns:
//   - SphereOption: a function that applies the theta range option to a Sphere
func WithSphereThetaRange(start, length float32) SphereOption {
	return func(s *Sphere) {
		s.thetaStart = start
		s.thetaLength = length
	}
}
