package common

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-4

func assertVec3Near(t *testing.T, want, got Vec3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, epsilon)
	assert.InDelta(t, want.Y, got.Y, epsilon)
	assert.InDelta(t, want.Z, got.Z, epsilon)
}

func TestVec3Ops(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}

	assertVec3Near(t, Vec3{5, 7, 9}, a.Add(b))
	assertVec3Near(t, Vec3{-3, -3, -3}, a.Sub(b))
	assertVec3Near(t, Vec3{2, 4, 6}, a.Scale(2))
	assert.InDelta(t, float32(32), a.Dot(b), epsilon)
	assertVec3Near(t, Vec3{-3, 6, -3}, a.Cross(b))
	assert.InDelta(t, math32.Sqrt(14), a.Length(), epsilon)
}

func TestVec3NormalizeZeroVector(t *testing.T) {
	assertVec3Near(t, Vec3{}, Vec3{}.Normalize())
}

func TestVec3DivSkipsZeroComponents(t *testing.T) {
	got := Vec3{6, 8, 10}.Div(Vec3{2, 0, 5})
	assertVec3Near(t, Vec3{3, 8, 2}, got)
}

func TestQuatMulIdentity(t *testing.T) {
	q := Quat{0.1, 0.2, 0.3, 0.9}.Normalize()
	got := q.Mul(QuatIdentity())
	assert.InDelta(t, q.X, got.X, epsilon)
	assert.InDelta(t, q.Y, got.Y, epsilon)
	assert.InDelta(t, q.Z, got.Z, epsilon)
	assert.InDelta(t, q.W, got.W, epsilon)
}

func TestTransformQuatRotates90AroundY(t *testing.T) {
	// 90 degrees around +Y maps +X onto -Z.
	half := math32.Pi / 4
	q := Quat{0, math32.Sin(half), 0, math32.Cos(half)}
	got := TransformQuat(Vec3{1, 0, 0}, q)
	assertVec3Near(t, Vec3{0, 0, -1}, got)
}

func TestSlerpEndpoints(t *testing.T) {
	a := QuatIdentity()
	half := math32.Pi / 4
	b := Quat{0, math32.Sin(half), 0, math32.Cos(half)}

	at0 := Slerp(a, b, 0)
	assert.InDelta(t, a.W, at0.W, epsilon)

	at1 := Slerp(a, b, 1)
	assert.InDelta(t, b.Y, at1.Y, epsilon)
	assert.InDelta(t, b.W, at1.W, epsilon)
}

func TestSlerpMidpointIsHalfAngle(t *testing.T) {
	a := QuatIdentity()
	half := math32.Pi / 4
	b := Quat{0, math32.Sin(half), 0, math32.Cos(half)}

	mid := Slerp(a, b, 0.5)
	quarter := math32.Pi / 8
	assert.InDelta(t, math32.Sin(quarter), mid.Y, epsilon)
	assert.InDelta(t, math32.Cos(quarter), mid.W, epsilon)
}

func TestLookRotationFacesTarget(t *testing.T) {
	eye := Vec3{0, 0, 5}
	target := Vec3{0, 0, 0}
	q := LookRotation(eye, target, Vec3{0, 1, 0})

	// Forward axis is -Z; rotating it must point from eye toward target.
	forward := TransformQuat(Vec3{0, 0, -1}, q)
	assertVec3Near(t, Vec3{0, 0, -1}, forward)

	eye2 := Vec3{5, 0, 0}
	q2 := LookRotation(eye2, target, Vec3{0, 1, 0})
	forward2 := TransformQuat(Vec3{0, 0, -1}, q2)
	assertVec3Near(t, Vec3{-1, 0, 0}, forward2)
}

func TestLookRotationDegenerateInputs(t *testing.T) {
	q := LookRotation(Vec3{1, 2, 3}, Vec3{1, 2, 3}, Vec3{0, 1, 0})
	assert.Equal(t, QuatIdentity(), q)

	// up parallel to the view direction still yields a valid rotation.
	q2 := LookRotation(Vec3{0, 5, 0}, Vec3{}, Vec3{0, 1, 0})
	forward := TransformQuat(Vec3{0, 0, -1}, q2)
	assertVec3Near(t, Vec3{0, -1, 0}, forward)
}

func TestComposeDecomposeRoundTrip(t *testing.T) {
	pos := Vec3{1, -2, 3}
	half := math32.Pi / 6
	q := Quat{0, math32.Sin(half), 0, math32.Cos(half)}
	scale := Vec3{2, 3, 0.5}

	var m [16]float32
	Compose(m[:], pos, q, scale)

	gotPos, gotQuat, gotScale := Decompose(m[:])
	assertVec3Near(t, pos, gotPos)
	assertVec3Near(t, scale, gotScale)
	assert.InDelta(t, q.Y, gotQuat.Y, epsilon)
	assert.InDelta(t, q.W, gotQuat.W, epsilon)
}

func TestDecomposeIdentity(t *testing.T) {
	var m [16]float32
	Identity(m[:])

	pos, q, scale := Decompose(m[:])
	assertVec3Near(t, Vec3{}, pos)
	assert.Equal(t, QuatIdentity(), q)
	assertVec3Near(t, Vec3{1, 1, 1}, scale)
}

func TestMul4Identity(t *testing.T) {
	var id, m, out [16]float32
	Identity(id[:])
	Compose(m[:], Vec3{1, 2, 3}, QuatIdentity(), Vec3{2, 2, 2})

	Mul4(out[:], id[:], m[:])
	for i := range m {
		assert.InDelta(t, m[i], out[i], epsilon)
	}
}

func TestInvert4RoundTrip(t *testing.T) {
	var m, inv, out [16]float32
	half := math32.Pi / 5
	Compose(m[:], Vec3{3, -1, 2}, Quat{math32.Sin(half), 0, 0, math32.Cos(half)}, Vec3{1, 2, 1})

	require.True(t, Invert4(inv[:], m[:]))
	Mul4(out[:], m[:], inv[:])

	var id [16]float32
	Identity(id[:])
	for i := range id {
		assert.InDelta(t, id[i], out[i], epsilon)
	}
}

func TestInvert4Singular(t *testing.T) {
	var m, out [16]float32 // all zeroes, det = 0
	assert.False(t, Invert4(out[:], m[:]))
}

func TestTransformPoint(t *testing.T) {
	var m [16]float32
	Compose(m[:], Vec3{10, 0, 0}, QuatIdentity(), Vec3{2, 2, 2})
	got := TransformPoint(m[:], Vec3{1, 1, 1})
	assertVec3Near(t, Vec3{12, 2, 2}, got)
}

func TestLookAtTransformsCenterToNegativeZ(t *testing.T) {
	var view [16]float32
	eye := Vec3{0, 0, 5}
	LookAt(view[:], eye, Vec3{}, Vec3{0, 1, 0})

	got := TransformPoint(view[:], Vec3{})
	assertVec3Near(t, Vec3{0, 0, -5}, got)
}
