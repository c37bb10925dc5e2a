package format

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/kythyria/dieselkit/idstring"
	"github.com/kythyria/dieselkit/internal/buf"
)

// ControllerKind tells the resolver which IR target path a controller
// animates.
type ControllerKind int

const (
	ControllerFloat ControllerKind = iota + 1
	ControllerVector3
	ControllerRotation
)

// Controller is a decoded linear animation controller section. All three
// wire variants share the layout
//
//	Size  Field
//	----  ----------------------------------------
//	 8    Name hash
//	 4    Flags
//	 4    Reserved
//	 4    Duration (f32 seconds)
//	 4    Keyframe count N
//	 N*   Keyframes: time f32 + one value per kind
//
// where the value is one float (ControllerFloat), a vec3
// (ControllerVector3), or an XYZW quaternion (ControllerRotation).
// Values are widened into Vec4 so the resolver can carry them
// uniformly; unused lanes stay zero.
type Controller struct {
	Kind     ControllerKind
	Name     idstring.Value
	Flags    uint32
	Reserved uint32
	Duration float32
	Times    []float32
	Values   []mgl32.Vec4
}

// controller value widths in floats per kind.
func valueWidth(kind ControllerKind) int {
	switch kind {
	case ControllerFloat:
		return 1
	case ControllerVector3:
		return 3
	default:
		return 4
	}
}

// DecodeController decodes one controller section of the given kind.
func DecodeController(cur *buf.Cursor, kind ControllerKind) (*Controller, error) {
	c := &Controller{Kind: kind}

	name, err := cur.U64()
	if err != nil {
		return nil, fmt.Errorf("controller name: %w", err)
	}
	c.Name = idstring.Value(name)

	if c.Flags, err = cur.U32(); err != nil {
		return nil, fmt.Errorf("controller flags: %w", err)
	}
	if c.Reserved, err = cur.U32(); err != nil {
		return nil, fmt.Errorf("controller reserved: %w", err)
	}
	if c.Duration, err = cur.F32(); err != nil {
		return nil, fmt.Errorf("controller duration: %w", err)
	}

	count, err := cur.U32()
	if err != nil {
		return nil, fmt.Errorf("controller keyframe count: %w", err)
	}
	keySize := 4 * (1 + valueWidth(kind))
	if need, ok := buf.MulOverflowSafe(int(count), keySize); !ok || need > cur.Remaining() {
		return nil, fmt.Errorf("controller: %d keyframes in %d bytes: %w",
			count, cur.Remaining(), buf.ErrOutOfBounds)
	}

	c.Times = make([]float32, 0, count)
	c.Values = make([]mgl32.Vec4, 0, count)
	scratch := make([]float32, valueWidth(kind))
	for i := uint32(0); i < count; i++ {
		t, err := cur.F32()
		if err != nil {
			return nil, fmt.Errorf("keyframe %d time: %w", i, err)
		}
		if err := cur.F32s(scratch); err != nil {
			return nil, fmt.Errorf("keyframe %d value: %w", i, err)
		}
		var v mgl32.Vec4
		copy(v[:], scratch)
		c.Times = append(c.Times, t)
		c.Values = append(c.Values, v)
	}
	return c, nil
}

// AnimationData is the per-scene key-time section.
type AnimationData struct {
	Name     idstring.Value
	Reserved uint32
	Duration float32
	Times    []float32
}

// DecodeAnimationData decodes an animation data section: name hash,
// reserved u32, duration f32, then a u32-counted list of key times.
func DecodeAnimationData(cur *buf.Cursor) (*AnimationData, error) {
	var d AnimationData

	name, err := cur.U64()
	if err != nil {
		return nil, fmt.Errorf("animation data name: %w", err)
	}
	d.Name = idstring.Value(name)

	if d.Reserved, err = cur.U32(); err != nil {
		return nil, fmt.Errorf("animation data reserved: %w", err)
	}
	if d.Duration, err = cur.F32(); err != nil {
		return nil, fmt.Errorf("animation data duration: %w", err)
	}

	count, err := cur.U32()
	if err != nil {
		return nil, fmt.Errorf("animation data count: %w", err)
	}
	if need, ok := buf.MulOverflowSafe(int(count), 4); !ok || need > cur.Remaining() {
		return nil, fmt.Errorf("animation data: %d times in %d bytes: %w",
			count, cur.Remaining(), buf.ErrOutOfBounds)
	}
	d.Times = make([]float32, count)
	if err := cur.F32s(d.Times); err != nil {
		return nil, fmt.Errorf("animation data times: %w", err)
	}
	return &d, nil
}
