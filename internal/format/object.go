package format

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/kythyria/dieselkit/idstring"
	"github.com/kythyria/dieselkit/internal/buf"
	"github.com/kythyria/dieselkit/pkg/types"
)

// DecodeObject3D decodes the node prefix shared by locator and model
// sections:
//
//	Size   Field
//	-----  -----------------------------------------------------------
//	 8     Name hash
//	 4     Controller count N
//	 12*N  Controller entries: section id u32 + 8 reserved bytes
//	 64    4x4 column-major float32 matrix
//	 12    Position, overriding the matrix translation column
//	 4     Parent section id (0 = none)
//
// The returned node has a nil Payload; model decoding fills it in.
func DecodeObject3D(cur *buf.Cursor) (*types.SceneNode, error) {
	name, err := cur.U64()
	if err != nil {
		return nil, fmt.Errorf("object3d name: %w", err)
	}

	count, err := cur.U32()
	if err != nil {
		return nil, fmt.Errorf("object3d controller count: %w", err)
	}
	// Reject counts the body cannot possibly hold before allocating.
	if need, ok := buf.MulOverflowSafe(int(count), ControllerEntrySize); !ok || need > cur.Remaining() {
		return nil, fmt.Errorf("object3d: %d controllers in %d bytes: %w",
			count, cur.Remaining(), buf.ErrOutOfBounds)
	}
	controllers := make([]uint32, 0, count)
	for i := uint32(0); i < count; i++ {
		id, err := cur.U32()
		if err != nil {
			return nil, fmt.Errorf("object3d controller %d: %w", i, err)
		}
		if err := cur.Skip(8); err != nil {
			return nil, fmt.Errorf("object3d controller %d reserved: %w", i, err)
		}
		controllers = append(controllers, id)
	}

	var m mgl32.Mat4
	if err := cur.F32s(m[:]); err != nil {
		return nil, fmt.Errorf("object3d transform: %w", err)
	}
	// The exporter writes the translation twice; the trailing position
	// wins.
	if err := cur.F32s(m[12:15]); err != nil {
		return nil, fmt.Errorf("object3d position: %w", err)
	}

	parent, err := cur.U32()
	if err != nil {
		return nil, fmt.Errorf("object3d parent: %w", err)
	}

	return &types.SceneNode{
		Name:        idstring.Value(name),
		Controllers: controllers,
		Transform:   m,
		Parent:      parent,
	}, nil
}
