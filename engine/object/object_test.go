package object

import (
	"testing"

	"github.com/NitaCristianu/thrash-motion-canvas/common"
	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGroupDefaults(t *testing.T) {
	g := NewGroup(WithGroupName("root"))

	assert.Equal(t, "root", g.Name())
	assert.NotEmpty(t, g.UUID())
	assert.Equal(t, common.QuatIdentity(), g.Quaternion())
	assert.Equal(t, common.Vec3{X: 1, Y: 1, Z: 1}, g.Scale())
	assert.Nil(t, g.Parent())
	assert.Empty(t, g.Children())
}

func TestAddRemoveReparents(t *testing.T) {
	a := NewGroup(WithGroupName("a"))
	b := NewGroup(WithGroupName("b"))
	child := NewGroup(WithGroupName("child"))

	a.Add(child)
	assert.Equal(t, a.Base(), child.Parent())
	assert.Len(t, a.Children(), 1)

	// Adding to b detaches from a.
	b.Add(child)
	assert.Equal(t, b.Base(), child.Parent())
	assert.Empty(t, a.Children())

	assert.True(t, b.Remove(child))
	assert.Nil(t, child.Parent())
	assert.False(t, b.Remove(child))
}

func TestAddFrontInsertsAtHead(t *testing.T) {
	root := NewGroup()
	first := NewGroup(WithGroupName("first"))
	second := NewGroup(WithGroupName("second"))

	root.Add(first)
	root.AddFront(second)

	children := root.Children()
	require.Len(t, children, 2)
	assert.Equal(t, "second", children[0].Base().Name())
	assert.Equal(t, "first", children[1].Base().Name())
}

func TestReplacePreservesOrder(t *testing.T) {
	root := NewGroup()
	a := NewGroup(WithGroupName("a"))
	b := NewGroup(WithGroupName("b"))
	c := NewGroup(WithGroupName("c"))
	root.Add(a)
	root.Add(b)
	root.Add(c)

	repl := NewGroup(WithGroupName("replacement"))
	require.True(t, root.Replace(b, repl))

	children := root.Children()
	require.Len(t, children, 3)
	assert.Equal(t, "replacement", children[1].Base().Name())
	assert.Equal(t, root.Base(), repl.Parent())
	assert.Nil(t, b.Parent())

	assert.False(t, root.Replace(b, repl), "already removed")
}

func TestWorldPositionAppliesParentChain(t *testing.T) {
	root := NewGroup(WithGroupPosition(common.Vec3{X: 10}))
	mid := NewGroup(WithGroupPosition(common.Vec3{Y: 5}), WithGroupScale(common.Vec3{X: 2, Y: 2, Z: 2}))
	leaf := NewGroup(WithGroupPosition(common.Vec3{X: 1}))
	root.Add(mid)
	mid.Add(leaf)

	// leaf local x=1 scaled by mid's 2, plus root's x=10; y from mid.
	got := leaf.WorldPosition()
	assert.InDelta(t, 12.0, got.X, 1e-4)
	assert.InDelta(t, 5.0, got.Y, 1e-4)
	assert.InDelta(t, 0.0, got.Z, 1e-4)
}

func TestWorldQuaternionComposesRotations(t *testing.T) {
	half := math32.Pi / 8
	q := common.Quat{Y: math32.Sin(half), W: math32.Cos(half)}

	root := NewGroup(WithGroupQuaternion(q))
	leaf := NewGroup(WithGroupQuaternion(q))
	root.Add(leaf)

	// Two 45 degree rotations compose to 90 degrees around Y.
	world := leaf.WorldQuaternion()
	quarter := math32.Pi / 4
	assert.InDelta(t, math32.Sin(quarter), world.Y, 1e-4)
	assert.InDelta(t, math32.Cos(quarter), world.W, 1e-4)
}

func TestFindDepthFirst(t *testing.T) {
	root := NewGroup(WithGroupName("root"))
	a := NewGroup(WithGroupName("a"))
	deep := NewGroup(WithGroupName("target"))
	sibling := NewGroup(WithGroupName("target"))
	root.Add(a)
	a.Add(deep)
	root.Add(sibling)

	// Depth-first: the nested target under "a" wins over the later sibling.
	found := Find(root, "target")
	require.NotNil(t, found)
	assert.Equal(t, deep.UUID(), found.Base().UUID())

	assert.Nil(t, Find(root, "missing"))
	assert.Equal(t, root.UUID(), Find(root, "root").Base().UUID())
}

func TestTraverseStopsEarly(t *testing.T) {
	root := NewGroup(WithGroupName("root"))
	root.Add(NewGroup(WithGroupName("a")))
	root.Add(NewGroup(WithGroupName("b")))

	var visited []string
	Traverse(root, func(o Object) bool {
		visited = append(visited, o.Base().Name())
		return o.Base().Name() != "a"
	})
	assert.Equal(t, []string{"root", "a"}, visited)
}

func TestCloneRecursive(t *testing.T) {
	root := NewGroup(WithGroupName("root"), WithGroupPosition(common.Vec3{X: 1, Y: 2, Z: 3}))
	child := NewGroup(WithGroupName("child"), WithGroupScale(common.Vec3{X: 2, Y: 2, Z: 2}))
	root.Add(child)

	clone := root.Clone(true)
	assert.Equal(t, "root", clone.Base().Name())
	assert.NotEqual(t, root.UUID(), clone.Base().UUID())
	assert.Equal(t, root.Position(), clone.Base().Position())
	require.Len(t, clone.Base().Children(), 1)
	assert.Equal(t, "child", clone.Base().Children()[0].Base().Name())

	// Mutating the clone's child leaves the original untouched.
	clone.Base().Children()[0].Base().SetName("renamed")
	assert.Equal(t, "child", child.Name())

	shallow := root.Clone(false)
	assert.Empty(t, shallow.Base().Children())
}
