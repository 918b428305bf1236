// package object provides the runtime scene graph: a tree of named, transformable
// nodes built by the importer and mutated by the animation layer. The graph is
// cooperatively single-threaded; callers that share it across goroutines must
// serialize access themselves.
package object

import (
	"fmt"
	"sync/atomic"

	"github.com/NitaCristianu/thrash-motion-canvas/common"
)

var nodeCount atomic.Uint64

// Object is implemented by every node kind that can live in the scene graph
// (groups, meshes, lights, cameras).
type Object interface {
	// Base returns the shared node state embedded in the object.
	Base() *Node

	// Clone returns a copy of the object with a fresh UUID. When recursive is
	// true the children are cloned as well; otherwise the copy has none.
	Clone(recursive bool) Object
}

// Node is the state shared by every scene graph object: identity, local
// transform, and tree links. Concrete kinds embed it and expose it via Base().
type Node struct {
	name       string
	uuid       string
	position   common.Vec3
	quaternion common.Quat
	scale      common.Vec3
	parent     *Node
	children   []Object
}

// NewBase returns an initialized Node with identity transform, unit scale,
// and a generated UUID. Intended for embedding in concrete object kinds.
//
// Parameters:
//   - name: the node's name (may be empty)
//
// Returns:
//   - Node: the initialized base state
func NewBase(name string) Node {
	return Node{
		name:       name,
		uuid:       fmt.Sprintf("node-%d", nodeCount.Add(1)),
		quaternion: common.QuatIdentity(),
		scale:      common.Vec3{X: 1, Y: 1, Z: 1},
	}
}

// Name returns the node's name.
func (n *Node) Name() string {
	return n.name
}

// SetName sets the node's name.
func (n *Node) SetName(name string) {
	n.name = name
}

// UUID returns the node's unique identifier.
func (n *Node) UUID() string {
	return n.uuid
}

// SetUUID overrides the generated identifier, typically with the one carried
// by the scene document.
func (n *Node) SetUUID(uuid string) {
	n.uuid = uuid
}

// Position returns the node's local translation.
func (n *Node) Position() common.Vec3 {
	return n.position
}

// SetPosition sets the node's local translation.
func (n *Node) SetPosition(p common.Vec3) {
	n.position = p
}

// Quaternion returns the node's local rotation.
func (n *Node) Quaternion() common.Quat {
	return n.quaternion
}

// SetQuaternion sets the node's local rotation.
func (n *Node) SetQuaternion(q common.Quat) {
	n.quaternion = q
}

// Scale returns the node's local per-axis scale.
func (n *Node) Scale() common.Vec3 {
	return n.scale
}

// SetScale sets the node's local per-axis scale.
func (n *Node) SetScale(s common.Vec3) {
	n.scale = s
}

// Parent returns the node state of this node's parent, or nil at the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns a copy of the node's child list in insertion order.
func (n *Node) Children() []Object {
	out := make([]Object, len(n.children))
	copy(out, n.children)
	return out
}

// Add appends child to this node's children, detaching it from any previous
// parent first. Nil children are ignored.
func (n *Node) Add(child Object) {
	if child == nil {
		return
	}
	base := child.Base()
	if base.parent != nil {
		base.parent.Remove(child)
	}
	base.parent = n
	n.children = append(n.children, child)
}

// AddFront inserts child at the head of the children list, detaching it from
// any previous parent first.
func (n *Node) AddFront(child Object) {
	if child == nil {
		return
	}
	base := child.Base()
	if base.parent != nil {
		base.parent.Remove(child)
	}
	base.parent = n
	n.children = append([]Object{child}, n.children...)
}

// Remove detaches child from this node.
//
// Returns:
//   - bool: true if the child was present and removed
func (n *Node) Remove(child Object) bool {
	if child == nil {
		return false
	}
	base := child.Base()
	for i, c := range n.children {
		if c.Base() == base {
			n.children = append(n.children[:i], n.children[i+1:]...)
			base.parent = nil
			return true
		}
	}
	return false
}

// Replace swaps old for new in place, preserving the child's position in the
// list. The replacement is detached from any previous parent.
//
// Returns:
//   - bool: true if old was present and replaced
func (n *Node) Replace(old, replacement Object) bool {
	if old == nil || replacement == nil {
		return false
	}
	oldBase := old.Base()
	for i, c := range n.children {
		if c.Base() == oldBase {
			repBase := replacement.Base()
			if repBase.parent != nil {
				repBase.parent.Remove(replacement)
			}
			repBase.parent = n
			n.children[i] = replacement
			oldBase.parent = nil
			return true
		}
	}
	return false
}

// Detach removes this node from its parent, if any.
func (n *Node) Detach(self Object) {
	if n.parent != nil {
		n.parent.Remove(self)
	}
}

// CopyTransform copies position, rotation, and scale from src.
func (n *Node) CopyTransform(src *Node) {
	n.position = src.position
	n.quaternion = src.quaternion
	n.scale = src.scale
}

// LocalMatrix writes the node's local transform (T * R * S) into out.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
func (n *Node) LocalMatrix(out []float32) {
	common.Compose(out, n.position, n.quaternion, n.scale)
}

// WorldMatrix writes the node's world transform (parent chain applied) into out.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
func (n *Node) WorldMatrix(out []float32) {
	n.LocalMatrix(out)
	for p := n.parent; p != nil; p = p.parent {
		var local [16]float32
		p.LocalMatrix(local[:])
		common.Mul4(out, local[:], out)
	}
}

// WorldPosition returns the node's position in world space.
func (n *Node) WorldPosition() common.Vec3 {
	var m [16]float32
	n.WorldMatrix(m[:])
	return common.Vec3{X: m[12], Y: m[13], Z: m[14]}
}

// WorldQuaternion returns the node's rotation in world space.
func (n *Node) WorldQuaternion() common.Quat {
	var m [16]float32
	n.WorldMatrix(m[:])
	_, q, _ := common.Decompose(m[:])
	return q
}

// Traverse visits root and every descendant depth-first in child order,
// stopping early when fn returns false.
//
// Parameters:
//   - root: the subtree to walk
//   - fn: visitor; return false to stop the walk
//
// Returns:
//   - bool: false if the walk was stopped early
func Traverse(root Object, fn func(Object) bool) bool {
	if root == nil {
		return true
	}
	if !fn(root) {
		return false
	}
	for _, child := range root.Base().children {
		if !Traverse(child, fn) {
			return false
		}
	}
	return true
}

// Find returns the first object named name in depth-first order starting at
// root (root itself included), or nil when no match exists.
//
// Parameters:
//   - root: the subtree to search
//   - name: the name to match exactly
//
// Returns:
//   - Object: the first match, or nil
func Find(root Object, name string) Object {
	var found Object
	Traverse(root, func(o Object) bool {
		if o.Base().Name() == name {
			found = o
			return false
		}
		return true
	})
	return found
}

// CloneChildren clones every child of src (recursively) and adds the copies
// to dst. Used by concrete kinds implementing Clone.
func CloneChildren(src, dst Object) {
	for _, child := range src.Base().children {
		dst.Base().Add(child.Clone(true))
	}
}
