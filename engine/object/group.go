package object

var _ Object = &Group{}

// Group is a plain container node: no geometry or light of its own, just a
// transform and children. The importer materializes unsupported document node
// kinds as groups so the tree shape survives.
type Group struct {
	Node
}

// NewGroup creates a container node.
//
// Parameters:
//   - opts: optional configuration (name, transform, uuid)
//
// Returns:
//   - *Group: the new group
func NewGroup(opts ...GroupOption) *Group {
	g := &Group{Node: NewBase("")}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Base returns the group's shared node state.
func (g *Group) Base() *Node {
	return &g.Node
}

// Clone returns a copy of the group with a fresh UUID. When recursive is true
// the children are cloned as well.
func (g *Group) Clone(recursive bool) Object {
	c := NewGroup(WithGroupName(g.Name()))
	c.CopyTransform(&g.Node)
	if recursive {
		CloneChildren(g, c)
	}
	return c
}
