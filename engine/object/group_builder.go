package object

import "github.com/NitaCristianu/thrash-motion-canvas/common"

// GroupOption is a function that configures a Group instance during construction.
type GroupOption func(*Group)

// WithGroupName is an option builder that sets the group's name.
//
// Parameters:
//   - name: the name to assign
//
// Returns:
//   - GroupOption: a function that applies the name option to a Group
func WithGroupName(name string) GroupOption {
	return func(g *Group) {
		g.SetName(name)
	}
}

// WithGroupUUID is an option builder that overrides the generated identifier.
//
// Parameters:
//   - uuid: the identifier to assign
//
// Returns:
//   - GroupOption: a function that applies the uuid option to a Group
func WithGroupUUID(uuid string) GroupOption {
	return func(g *Group) {
		g.SetUUID(uuid)
	}
}

// WithGroupPosition is an option builder that sets the local translation.
//
// Parameters:
//   - p: the position to assign
//
// Returns:
//   - GroupOption: a function that applies the position option to a Group
func WithGroupPosition(p common.Vec3) GroupOption {
	return func(g *Group) {
		g.SetPosition(p)
	}
}

// WithGroupQuaternion is an option builder that sets the local rotation.
//
// Parameters:
//   - q: the rotation to assign
//
// Returns:
//   - GroupOption: a function that applies the rotation option to a Group
func WithGroupQuaternion(q common.Quat) GroupOption {
	return func(g *Group) {
		g.SetQuaternion(q)
	}
}

// WithGroupScale is an option builder that sets the local per-axis scale.
//
// Parameters:
//   - s: the scale to assign
//
// Returns:
//   - GroupOption: a function that applies the scale option to a Group
func WithGroupScale(s common.Vec3) GroupOption {
	return func(g *Group) {
		g.SetScale(s)
	}
}
