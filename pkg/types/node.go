package types

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/kythyria/dieselkit/idstring"
)

// NullID is the parent id meaning "no parent". Section ids start at 1 in
// files produced by the engine's exporters.
const NullID uint32 = 0

// SceneNode is one decoded object section: the common Object3D prefix
// plus an optional payload variant. Payload is nil for plain locator
// nodes, *Bounds for collision-volume models, and *Geometry for
// renderable models.
type SceneNode struct {
	// Name is the hashed object name.
	Name idstring.Value

	// Controllers lists the section ids of this node's animation
	// controllers in wire order. Each entry's 8 reserved trailing bytes
	// are discarded.
	Controllers []uint32

	// Transform is the node's local transform. The wire carries a full
	// 4x4 column-major matrix followed by a position triple that
	// overrides the matrix translation.
	Transform mgl32.Mat4

	// Parent is the section id of the parent node, or NullID.
	Parent uint32

	Payload Payload
}

// PayloadKind discriminates SceneNode payload variants.
type PayloadKind int

const (
	PayloadBounds PayloadKind = iota + 1
	PayloadGeometry
)

// Payload is the variant part of a model node.
type Payload interface {
	PayloadKind() PayloadKind
}

// Bounds is the payload of a bounds-only model (discriminant 6). The
// engine uses these for collision volumes: only the extents matter and
// the physics engine fills in the rest.
type Bounds struct {
	Min mgl32.Vec3
	Max mgl32.Vec3

	// Radius of the bounding sphere centred on the model-space origin.
	Radius float32

	// Reserved is decoded and preserved verbatim; no observed semantics.
	Reserved uint32
}

func (*Bounds) PayloadKind() PayloadKind { return PayloadBounds }

// RenderAtom is one material-homogeneous draw range over the model's
// shared vertex and index buffers.
type RenderAtom struct {
	// BaseVertex is the start of this atom's slice of the vertex buffer.
	// It defines a slice; it is not added to indices.
	BaseVertex uint32

	// TriangleCount is the number of triangles to draw.
	TriangleCount uint32

	// BaseIndex is the start position in the index buffer, in indices.
	BaseIndex uint32

	// GeometrySliceLength is the number of vertices in the atom.
	GeometrySliceLength uint32

	// MaterialID is the material slot this atom draws with.
	MaterialID uint32
}

// Geometry is the payload of a renderable model.
type Geometry struct {
	RenderAtoms []RenderAtom

	MaterialGroup uint32
	Lightset      uint32

	// Properties looks like flags (1 = shadow caster, 2 = has opacity).
	Properties uint32

	// Culling bounds: the model is culled when the bounding sphere is
	// offscreen.
	BoundsMin    mgl32.Vec3
	BoundsMax    mgl32.Vec3
	BoundsRadius float32

	// Reserved is decoded and preserved verbatim; no observed semantics.
	Reserved uint32

	SkinBones uint32
}

func (*Geometry) PayloadKind() PayloadKind { return PayloadGeometry }
