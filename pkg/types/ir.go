package types

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/kythyria/dieselkit/idstring"
)

// Channel target paths. The names follow the convention of animation
// systems that address properties by path ("location", and so on); a
// consumer is free to remap them.
const (
	TargetLocation = "location"
	TargetRotation = "rotation_quaternion"
	TargetValue    = "value"
)

// Keyframe is one sample of an animation channel. Value holds a float in
// X, a vector in XYZ, or a quaternion in XYZW, depending on the owning
// channel's TargetPath.
type Keyframe struct {
	Time  float32
	Value mgl32.Vec4
}

// AnimationChannel is a resolved animation controller attached to a node.
type AnimationChannel struct {
	// TargetPath names the animated property (TargetLocation,
	// TargetRotation, or TargetValue).
	TargetPath string

	// TargetIndex is the position of the source controller within the
	// node's controller list.
	TargetIndex int

	// Duration as declared by the controller section.
	Duration float32

	Keyframes []Keyframe
}

// IRNode is the resolved, host-independent shape of a scene node. Built
// once per SceneNode after the node table is complete; immutable
// thereafter.
type IRNode struct {
	// SectionID is the id of the source section.
	SectionID uint32

	Name idstring.Value

	// Parent points into the same resolved sequence, or is nil for
	// roots (including nodes whose parent id dangled, when decoding
	// leniently).
	Parent *IRNode

	// Decomposed local transform. Rotation is a unit quaternion with
	// unspecified sign: q and -q are the same rotation and either may
	// be produced.
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
	Scale       mgl32.Vec3

	// Payload is carried over from the source node (nil, *Bounds, or
	// *Geometry).
	Payload Payload

	// Channels holds the animation channels joined from the node's
	// controller list, in controller order. Empty when the file carries
	// no decodable controllers for this node.
	Channels []AnimationChannel
}
