package format

import (
	"fmt"

	"github.com/kythyria/dieselkit/internal/buf"
	"github.com/kythyria/dieselkit/pkg/types"
)

// DecodeModel decodes a model section: a u32 kind discriminant, the
// Object3D prefix, then a payload picked by the kind. Kind 6 is a
// bounds-only collision volume; everything else is geometry, which is
// exactly how the engine dispatches. Callers wanting stricter behavior
// check the returned kind against KindBounds/KindMesh themselves.
func DecodeModel(cur *buf.Cursor) (node *types.SceneNode, kind uint32, err error) {
	kind, err = cur.U32()
	if err != nil {
		return nil, 0, fmt.Errorf("model kind: %w", err)
	}

	node, err = DecodeObject3D(cur)
	if err != nil {
		return nil, kind, fmt.Errorf("model prefix: %w", err)
	}

	if kind == KindBounds {
		node.Payload, err = decodeBounds(cur)
	} else {
		node.Payload, err = decodeGeometry(cur)
	}
	if err != nil {
		return nil, kind, err
	}
	return node, kind, nil
}

// decodeBounds reads the bounds-only payload: min vec3, max vec3,
// sphere radius, reserved u32.
func decodeBounds(cur *buf.Cursor) (*types.Bounds, error) {
	var b types.Bounds
	if err := cur.F32s(b.Min[:]); err != nil {
		return nil, fmt.Errorf("bounds min: %w", err)
	}
	if err := cur.F32s(b.Max[:]); err != nil {
		return nil, fmt.Errorf("bounds max: %w", err)
	}
	var err error
	if b.Radius, err = cur.F32(); err != nil {
		return nil, fmt.Errorf("bounds radius: %w", err)
	}
	if b.Reserved, err = cur.U32(); err != nil {
		return nil, fmt.Errorf("bounds reserved: %w", err)
	}
	return &b, nil
}

// decodeGeometry reads the renderable payload: render atom list,
// material group, lightset, properties, culling bounds, reserved,
// skinbones.
func decodeGeometry(cur *buf.Cursor) (*types.Geometry, error) {
	count, err := cur.U32()
	if err != nil {
		return nil, fmt.Errorf("render atom count: %w", err)
	}
	if need, ok := buf.MulOverflowSafe(int(count), RenderAtomSize); !ok || need > cur.Remaining() {
		return nil, fmt.Errorf("geometry: %d render atoms in %d bytes: %w",
			count, cur.Remaining(), buf.ErrOutOfBounds)
	}

	g := &types.Geometry{RenderAtoms: make([]types.RenderAtom, 0, count)}
	for i := uint32(0); i < count; i++ {
		atom, err := decodeRenderAtom(cur)
		if err != nil {
			return nil, fmt.Errorf("render atom %d: %w", i, err)
		}
		g.RenderAtoms = append(g.RenderAtoms, atom)
	}

	if g.MaterialGroup, err = cur.U32(); err != nil {
		return nil, fmt.Errorf("geometry material group: %w", err)
	}
	if g.Lightset, err = cur.U32(); err != nil {
		return nil, fmt.Errorf("geometry lightset: %w", err)
	}
	if g.Properties, err = cur.U32(); err != nil {
		return nil, fmt.Errorf("geometry properties: %w", err)
	}
	if err = cur.F32s(g.BoundsMin[:]); err != nil {
		return nil, fmt.Errorf("geometry bounds min: %w", err)
	}
	if err = cur.F32s(g.BoundsMax[:]); err != nil {
		return nil, fmt.Errorf("geometry bounds max: %w", err)
	}
	if g.BoundsRadius, err = cur.F32(); err != nil {
		return nil, fmt.Errorf("geometry bounds radius: %w", err)
	}
	if g.Reserved, err = cur.U32(); err != nil {
		return nil, fmt.Errorf("geometry reserved: %w", err)
	}
	if g.SkinBones, err = cur.U32(); err != nil {
		return nil, fmt.Errorf("geometry skinbones: %w", err)
	}
	return g, nil
}

func decodeRenderAtom(cur *buf.Cursor) (types.RenderAtom, error) {
	var a types.RenderAtom
	fields := []*uint32{
		&a.BaseVertex, &a.TriangleCount, &a.BaseIndex,
		&a.GeometrySliceLength, &a.MaterialID,
	}
	for _, f := range fields {
		v, err := cur.U32()
		if err != nil {
			return types.RenderAtom{}, err
		}
		*f = v
	}
	return a, nil
}
