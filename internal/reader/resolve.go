package reader

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/kythyria/dieselkit/internal/format"
	"github.com/kythyria/dieselkit/pkg/types"
)

// Resolve builds the IR sequence in original file order. It runs in two
// passes over the complete node table: construct every IR node first,
// then link parents, so the result does not depend on where in the file
// a parent happened to be stored.
func (d *document) Resolve() ([]*types.IRNode, error) {
	out := make([]*types.IRNode, 0, len(d.order))
	byID := make(map[uint32]*types.IRNode, len(d.order))

	for _, id := range d.order {
		src := d.nodes[id]
		ir := &types.IRNode{
			SectionID: id,
			Name:      src.Name,
			Payload:   src.Payload,
			Channels:  d.channels(src),
		}
		ir.Translation, ir.Rotation, ir.Scale = decompose(src.Transform)
		byID[id] = ir
		out = append(out, ir)
	}

	for _, ir := range out {
		parent := d.nodes[ir.SectionID].Parent
		if parent == types.NullID {
			continue
		}
		p, ok := byID[parent]
		if !ok {
			if d.opts.StrictParents {
				return nil, &types.Error{
					Kind: types.ErrKindDanglingParent,
					Msg: fmt.Sprintf("node %d (%s): parent %d has no section",
						ir.SectionID, ir.Name, parent),
				}
			}
			// Lenient: unresolvable parent means root.
			continue
		}
		ir.Parent = p
	}
	return out, nil
}

// channels joins the node's controller-id list against the decoded
// controller sections. Ids that point at sections this decoder does not
// understand (or that are absent) contribute nothing.
func (d *document) channels(src *types.SceneNode) []types.AnimationChannel {
	var out []types.AnimationChannel
	for i, cid := range src.Controllers {
		c, ok := d.controllers[cid]
		if !ok {
			continue
		}
		ch := types.AnimationChannel{
			TargetPath:  targetPath(c.Kind),
			TargetIndex: i,
			Duration:    c.Duration,
			Keyframes:   make([]types.Keyframe, len(c.Times)),
		}
		for j := range c.Times {
			ch.Keyframes[j] = types.Keyframe{Time: c.Times[j], Value: c.Values[j]}
		}
		out = append(out, ch)
	}
	return out
}

func targetPath(kind format.ControllerKind) string {
	switch kind {
	case format.ControllerVector3:
		return types.TargetLocation
	case format.ControllerRotation:
		return types.TargetRotation
	default:
		return types.TargetValue
	}
}

// decompose splits a column-major transform into translation, rotation,
// and non-uniform scale. Scale is the column magnitudes; the rotation is
// the matrix with scale divided out, as a unit quaternion of unspecified
// sign. A negative determinant is folded into the X scale.
func decompose(m mgl32.Mat4) (mgl32.Vec3, mgl32.Quat, mgl32.Vec3) {
	t := mgl32.Vec3{m[12], m[13], m[14]}

	cols := [3]mgl32.Vec3{
		{m[0], m[1], m[2]},
		{m[4], m[5], m[6]},
		{m[8], m[9], m[10]},
	}
	s := mgl32.Vec3{cols[0].Len(), cols[1].Len(), cols[2].Len()}

	if det3(cols) < 0 {
		s[0] = -s[0]
	}

	var r mgl32.Mat4
	r[15] = 1
	for i, col := range cols {
		if s[i] != 0 {
			col = col.Mul(1 / s[i])
		}
		r[4*i], r[4*i+1], r[4*i+2] = col[0], col[1], col[2]
	}
	q := mgl32.Mat4ToQuat(r).Normalize()
	return t, q, s
}

func det3(c [3]mgl32.Vec3) float32 {
	return c[0].Dot(c[1].Cross(c[2]))
}
