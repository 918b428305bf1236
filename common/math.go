package common

import (
	"github.com/chewxy/math32"
)

// Vec3 is a 3-component float32 vector in world or local space.
type Vec3 struct {
	X, Y, Z float32
}

// Quat is a rotation quaternion with components (X, Y, Z, W).
// The identity rotation is (0, 0, 0, 1).
type Quat struct {
	X, Y, Z, W float32
}

// QuatIdentity returns the identity rotation (0, 0, 0, 1).
func QuatIdentity() Quat {
	return Quat{0, 0, 0, 1}
}

// Add returns the component-wise sum v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns the component-wise difference v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Mul returns the component-wise product v * o.
func (v Vec3) Mul(o Vec3) Vec3 {
	return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z}
}

// Div returns the component-wise quotient v / o. Zero divisor components
// pass the corresponding component of v through unchanged.
func (v Vec3) Div(o Vec3) Vec3 {
	out := v
	if o.X != 0 {
		out.X = v.X / o.X
	}
	if o.Y != 0 {
		out.Y = v.Y / o.Y
	}
	if o.Z != 0 {
		out.Z = v.Z / o.Z
	}
	return out
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the Euclidean length of v.
func (v Vec3) Length() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns v scaled to unit length. The zero vector is returned unchanged.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Lerp linearly interpolates between a and b by fraction t.
//
// Parameters:
//   - a: start value (returned at t=0)
//   - b: end value (returned at t=1)
//   - t: interpolation fraction
//
// Returns:
//   - Vec3: the interpolated vector
func Lerp(a, b Vec3, t float32) Vec3 {
	return Vec3{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
		a.Z + (b.Z-a.Z)*t,
	}
}

// LerpScalar linearly interpolates between scalars a and b by fraction t.
func LerpScalar(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Normalize returns q scaled to unit length. A zero quaternion degrades to identity.
func (q Quat) Normalize() Quat {
	l := math32.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
	if l == 0 {
		return QuatIdentity()
	}
	inv := 1 / l
	return Quat{q.X * inv, q.Y * inv, q.Z * inv, q.W * inv}
}

// Mul returns the Hamilton product q * o, composing rotations so that o is
// applied first and q second.
func (q Quat) Mul(o Quat) Quat {
	return Quat{
		q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
		q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
	}
}

// Invert returns the inverse rotation of q. Assumes q is unit length.
func (q Quat) Invert() Quat {
	return Quat{-q.X, -q.Y, -q.Z, q.W}
}

// Slerp spherically interpolates between rotations a and b by fraction t.
// Takes the shortest arc; falls back to normalized linear interpolation when
// the rotations are nearly identical.
//
// Parameters:
//   - a: start rotation (returned at t=0)
//   - b: end rotation (returned at t=1)
//   - t: interpolation fraction
//
// Returns:
//   - Quat: the interpolated rotation (unit length)
func Slerp(a, b Quat, t float32) Quat {
	cosHalf := a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W

	// Negate one endpoint to take the shorter of the two arcs.
	if cosHalf < 0 {
		b = Quat{-b.X, -b.Y, -b.Z, -b.W}
		cosHalf = -cosHalf
	}

	if cosHalf > 0.9995 {
		// Nearly parallel; nlerp avoids division by a vanishing sin term.
		return Quat{
			a.X + (b.X-a.X)*t,
			a.Y + (b.Y-a.Y)*t,
			a.Z + (b.Z-a.Z)*t,
			a.W + (b.W-a.W)*t,
		}.Normalize()
	}

	halfTheta := math32.Acos(cosHalf)
	sinHalf := math32.Sqrt(1 - cosHalf*cosHalf)
	ra := math32.Sin((1-t)*halfTheta) / sinHalf
	rb := math32.Sin(t*halfTheta) / sinHalf

	return Quat{
		a.X*ra + b.X*rb,
		a.Y*ra + b.Y*rb,
		a.Z*ra + b.Z*rb,
		a.W*ra + b.W*rb,
	}
}

// TransformQuat rotates vector v by quaternion q.
//
// Parameters:
//   - v: the vector to rotate
//   - q: the rotation to apply (assumed unit length)
//
// Returns:
//   - Vec3: the rotated vector
func TransformQuat(v Vec3, q Quat) Vec3 {
	// t = 2 * cross(q.xyz, v); out = v + q.w*t + cross(q.xyz, t)
	qv := Vec3{q.X, q.Y, q.Z}
	t := qv.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(qv.Cross(t))
}

// LookRotation computes the orientation that places an object at eye facing
// target, with -Z as the forward axis and the given up reference. Degenerate
// inputs (eye == target, or up parallel to the view direction) fall back to
// the identity rotation or an arbitrary orthogonal basis.
//
// Parameters:
//   - eye: the object's world position
//   - target: the world point to face
//   - up: the up reference vector (typically 0,1,0)
//
// Returns:
//   - Quat: the facing rotation (unit length)
func LookRotation(eye, target, up Vec3) Quat {
	z := eye.Sub(target)
	if z.Length() < 1e-8 {
		return QuatIdentity()
	}
	z = z.Normalize()

	x := up.Cross(z)
	if x.Length() < 1e-8 {
		// up is parallel to the view direction; pick any orthogonal axis.
		x = Vec3{1, 0, 0}.Cross(z)
		if x.Length() < 1e-8 {
			x = Vec3{0, 0, 1}.Cross(z)
		}
	}
	x = x.Normalize()
	y := z.Cross(x)

	var m [16]float32
	m[0], m[1], m[2] = x.X, x.Y, x.Z
	m[4], m[5], m[6] = y.X, y.Y, y.Z
	m[8], m[9], m[10] = z.X, z.Y, z.Z
	m[15] = 1
	return quatFromRotation(m[:])
}

// quatFromRotation extracts a quaternion from the upper-left 3x3 rotation
// block of a column-major matrix. The block must be orthonormal.
func quatFromRotation(m []float32) Quat {
	trace := m[0] + m[5] + m[10]
	var q Quat

	switch {
	case trace > 0:
		s := math32.Sqrt(trace+1) * 2
		q.W = 0.25 * s
		q.X = (m[6] - m[9]) / s
		q.Y = (m[8] - m[2]) / s
		q.Z = (m[1] - m[4]) / s
	case m[0] > m[5] && m[0] > m[10]:
		s := math32.Sqrt(1+m[0]-m[5]-m[10]) * 2
		q.W = (m[6] - m[9]) / s
		q.X = 0.25 * s
		q.Y = (m[4] + m[1]) / s
		q.Z = (m[8] + m[2]) / s
	case m[5] > m[10]:
		s := math32.Sqrt(1+m[5]-m[0]-m[10]) * 2
		q.W = (m[8] - m[2]) / s
		q.X = (m[4] + m[1]) / s
		q.Y = 0.25 * s
		q.Z = (m[9] + m[6]) / s
	default:
		s := math32.Sqrt(1+m[10]-m[0]-m[5]) * 2
		q.W = (m[1] - m[4]) / s
		q.X = (m[8] + m[2]) / s
		q.Y = (m[9] + m[6]) / s
		q.Z = 0.25 * s
	}

	return q.Normalize()
}

// Identity resets a 4x4 matrix (flat slice) to the identity matrix.
// The matrix is stored in column-major order.
//
// Parameters:
//   - m: destination slice (must be at least 16 elements)
func Identity(m []float32) {
	for i := range m {
		m[i] = 0
	}
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
}

// Mul4 multiplies two 4x4 matrices and stores the result in out.
// All matrices are stored in column-major order. Result: out = a * b.
// out may alias a or b.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - a: left-hand matrix (16 elements)
//   - b: right-hand matrix (16 elements)
func Mul4(out, a, b []float32) {
	var buf [16]float32
	for i := 0; i < 4; i++ { // column of B
		for j := 0; j < 4; j++ { // row of A
			sum := float32(0)
			for k := 0; k < 4; k++ {
				sum += a[k*4+j] * b[i*4+k]
			}
			buf[i*4+j] = sum
		}
	}
	copy(out, buf[:])
}

// TransformPoint applies a 4x4 column-major matrix to a point (w = 1).
//
// Parameters:
//   - m: the transform matrix (16 elements)
//   - v: the point to transform
//
// Returns:
//   - Vec3: the transformed point
func TransformPoint(m []float32, v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12],
		m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13],
		m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14],
	}
}

// TransformDirection applies the rotation/scale block of a 4x4 column-major
// matrix to a direction (w = 0) and normalizes the result.
func TransformDirection(m []float32, v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[4]*v.Y + m[8]*v.Z,
		m[1]*v.X + m[5]*v.Y + m[9]*v.Z,
		m[2]*v.X + m[6]*v.Y + m[10]*v.Z,
	}.Normalize()
}

// Compose builds a 4x4 column-major matrix from translation, rotation, and
// scale, equivalent to T * R * S.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - pos: translation
//   - q: rotation (assumed unit length)
//   - scale: per-axis scale
func Compose(out []float32, pos Vec3, q Quat, scale Vec3) {
	x2, y2, z2 := q.X+q.X, q.Y+q.Y, q.Z+q.Z
	xx, xy, xz := q.X*x2, q.X*y2, q.X*z2
	yy, yz, zz := q.Y*y2, q.Y*z2, q.Z*z2
	wx, wy, wz := q.W*x2, q.W*y2, q.W*z2

	out[0] = (1 - (yy + zz)) * scale.X
	out[1] = (xy + wz) * scale.X
	out[2] = (xz - wy) * scale.X
	out[3] = 0

	out[4] = (xy - wz) * scale.Y
	out[5] = (1 - (xx + zz)) * scale.Y
	out[6] = (yz + wx) * scale.Y
	out[7] = 0

	out[8] = (xz + wy) * scale.Z
	out[9] = (yz - wx) * scale.Z
	out[10] = (1 - (xx + yy)) * scale.Z
	out[11] = 0

	out[12] = pos.X
	out[13] = pos.Y
	out[14] = pos.Z
	out[15] = 1
}

// Decompose splits a 4x4 column-major transform into translation, rotation
// quaternion, and per-axis scale. Negative determinants flip the X scale so
// mirrored transforms round-trip through Compose.
//
// Parameters:
//   - m: the transform matrix (16 elements, column-major)
//
// Returns:
//   - pos: the translation component
//   - q: the rotation component (unit length)
//   - scale: the per-axis scale component
func Decompose(m []float32) (pos Vec3, q Quat, scale Vec3) {
	pos = Vec3{m[12], m[13], m[14]}

	sx := Vec3{m[0], m[1], m[2]}.Length()
	sy := Vec3{m[4], m[5], m[6]}.Length()
	sz := Vec3{m[8], m[9], m[10]}.Length()

	if det4(m) < 0 {
		sx = -sx
	}
	scale = Vec3{sx, sy, sz}

	if sx == 0 || sy == 0 || sz == 0 {
		return pos, QuatIdentity(), scale
	}

	var rot [16]float32
	copy(rot[:], m)
	invX, invY, invZ := 1/sx, 1/sy, 1/sz
	rot[0] *= invX
	rot[1] *= invX
	rot[2] *= invX
	rot[4] *= invY
	rot[5] *= invY
	rot[6] *= invY
	rot[8] *= invZ
	rot[9] *= invZ
	rot[10] *= invZ

	q = quatFromRotation(rot[:])
	return pos, q, scale
}

// det4 computes the determinant of a 4x4 column-major matrix.
func det4(m []float32) float32 {
	s0 := m[0]*m[5] - m[4]*m[1]
	s1 := m[0]*m[6] - m[4]*m[2]
	s2 := m[0]*m[7] - m[4]*m[3]
	s3 := m[1]*m[6] - m[5]*m[2]
	s4 := m[1]*m[7] - m[5]*m[3]
	s5 := m[2]*m[7] - m[6]*m[3]

	c5 := m[10]*m[15] - m[14]*m[11]
	c4 := m[9]*m[15] - m[13]*m[11]
	c3 := m[9]*m[14] - m[13]*m[10]
	c2 := m[8]*m[15] - m[12]*m[11]
	c1 := m[8]*m[14] - m[12]*m[10]
	c0 := m[8]*m[13] - m[12]*m[9]

	return s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0
}

// Perspective creates a perspective projection matrix.
// Uses the WebGPU clip-space depth convention [0, 1].
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
func Perspective(out []float32, fovY, aspect, near, far float32) {
	f := 1.0 / math32.Tan(fovY/2.0)
	Identity(out)

	out[0] = f / aspect
	out[5] = f
	out[10] = far / (near - far)
	out[11] = -1.0
	out[14] = (near * far) / (near - far)
	out[15] = 0.0
}

// LookAt creates a view matrix that positions and orients the camera.
// The resulting matrix transforms world coordinates to view/camera space.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - eye: camera position in world space
//   - center: target point the camera looks at
//   - up: up vector defining camera orientation (typically 0,1,0)
func LookAt(out []float32, eye, center, up Vec3) {
	z := eye.Sub(center)
	if z.Length() == 0 {
		z = Vec3{0, 0, 1}
	}
	z = z.Normalize()

	x := up.Cross(z)
	if x.Length() == 0 {
		x = Vec3{1, 0, 0}
	}
	x = x.Normalize()
	y := z.Cross(x)

	out[0], out[4], out[8], out[12] = x.X, x.Y, x.Z, -x.Dot(eye)
	out[1], out[5], out[9], out[13] = y.X, y.Y, y.Z, -y.Dot(eye)
	out[2], out[6], out[10], out[14] = z.X, z.Y, z.Z, -z.Dot(eye)
	out[3], out[7], out[11], out[15] = 0, 0, 0, 1
}

// Invert4 computes the inverse of a 4x4 column-major matrix using the Laplace
// expansion (cofactor) method. If the matrix is singular (determinant ≈ 0) the
// output is left unchanged and the function returns false.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - m: source matrix (16 elements, column-major)
//
// Returns:
//   - bool: true if the matrix was successfully inverted, false if singular
func Invert4(out, m []float32) bool {
	// 2x2 sub-determinants of the upper-left and lower-right quadrants.
	s0 := m[0]*m[5] - m[4]*m[1]
	s1 := m[0]*m[6] - m[4]*m[2]
	s2 := m[0]*m[7] - m[4]*m[3]
	s3 := m[1]*m[6] - m[5]*m[2]
	s4 := m[1]*m[7] - m[5]*m[3]
	s5 := m[2]*m[7] - m[6]*m[3]

	c5 := m[10]*m[15] - m[14]*m[11]
	c4 := m[9]*m[15] - m[13]*m[11]
	c3 := m[9]*m[14] - m[13]*m[10]
	c2 := m[8]*m[15] - m[12]*m[11]
	c1 := m[8]*m[14] - m[12]*m[10]
	c0 := m[8]*m[13] - m[12]*m[9]

	det := s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0
	if det == 0 {
		return false
	}

	invDet := 1.0 / det

	out[0] = (m[5]*c5 - m[6]*c4 + m[7]*c3) * invDet
	out[1] = (-m[1]*c5 + m[2]*c4 - m[3]*c3) * invDet
	out[2] = (m[13]*s5 - m[14]*s4 + m[15]*s3) * invDet
	out[3] = (-m[9]*s5 + m[10]*s4 - m[11]*s3) * invDet

	out[4] = (-m[4]*c5 + m[6]*c2 - m[7]*c1) * invDet
	out[5] = (m[0]*c5 - m[2]*c2 + m[3]*c1) * invDet
	out[6] = (-m[12]*s5 + m[14]*s2 - m[15]*s1) * invDet
	out[7] = (m[8]*s5 - m[10]*s2 + m[11]*s1) * invDet

	out[8] = (m[4]*c4 - m[5]*c2 + m[7]*c0) * invDet
	out[9] = (-m[0]*c4 + m[1]*c2 - m[3]*c0) * invDet
	out[10] = (m[12]*s4 - m[13]*s2 + m[15]*s0) * invDet
	out[11] = (-m[8]*s4 + m[9]*s2 - m[11]*s0) * invDet

	out[12] = (-m[4]*c3 + m[5]*c1 - m[6]*c0) * invDet
	out[13] = (m[0]*c3 - m[1]*c1 + m[2]*c0) * invDet
	out[14] = (-m[12]*s3 + m[13]*s1 - m[14]*s0) * invDet
	out[15] = (m[8]*s3 - m[9]*s1 + m[10]*s0) * invDet

	return true
}
