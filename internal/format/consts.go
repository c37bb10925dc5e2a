// Package format houses the wire-level decoders for the Diesel model
// container. The container is a flat run of length-delimited sections:
//
//	Offset  Size  Field
//	------  ----  ---------------------------------------------------
//	 0x00    4    Section count (0xFFFFFFFF = extended-count escape)
//	 0x04    4    Declared total file length (informational)
//	[0x08    4    Real section count, only when the escape fired]
//	 ....         Sections, each: tag u32, id u32, length u32, body
//
// Everything is little-endian. Section bodies are decoded against their
// declared length only; a decoder can never read into the next section.
// Unknown tags are the format's forward-compatibility mechanism and are
// skipped, not rejected.
package format

// Section type tags. The full format has several dozen; these are the
// ones this decoder understands. (Geometry, topology, and material
// sections exist on the wire but carry GPU buffer data outside this
// module's scope; they fall through the unknown-tag skip path.)
const (
	// TagObject3D is a plain locator node: name, controllers, transform,
	// parent, no payload.
	TagObject3D uint32 = 0x0ffcd100

	// TagModel is an Object3D plus a discriminated payload: bounds-only
	// collision volumes or renderable geometry.
	TagModel uint32 = 0x62212d88

	// TagAuthor is informational exporter metadata.
	TagAuthor uint32 = 0x7623c465

	// Animation controller sections, referenced from Object3D controller
	// lists by section id.
	TagLinearFloatController        uint32 = 0x76bf5b66
	TagLinearVector3Controller      uint32 = 0x26a5128c
	TagQuatLinearRotationController uint32 = 0x648a206c

	// TagAnimationData carries per-scene key times.
	TagAnimationData uint32 = 0x5dc011b8
)

const (
	// ExtendedCountSentinel in the header's count word means the real
	// count follows in an extra word.
	ExtendedCountSentinel uint32 = 0xFFFFFFFF

	// Model payload discriminants. KindBounds selects the bounds-only
	// variant; KindMesh is the canonical geometry tag. Any other value
	// is decoded as geometry too, which mirrors the engine: only 6 is
	// special-cased.
	KindBounds uint32 = 6
	KindMesh   uint32 = 3
)

const (
	// SectionHeaderSize covers tag, id, and length.
	SectionHeaderSize = 12

	// ControllerEntrySize is one entry of an Object3D controller list:
	// a u32 section id plus 8 reserved bytes.
	ControllerEntrySize = 12

	// RenderAtomSize is five u32 fields.
	RenderAtomSize = 20
)
