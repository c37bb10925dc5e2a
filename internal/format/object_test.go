package format

import (
	"errors"
	"testing"

	"github.com/kythyria/dieselkit/internal/buf"
	"github.com/kythyria/dieselkit/internal/testutil"
)

func TestDecodeObject3D(t *testing.T) {
	mat := testutil.IdentityMat
	mat[12], mat[13], mat[14] = 9, 9, 9 // stale translation, overridden below
	body := testutil.Object3DBody(0xfeedface, []uint32{10, 20}, mat, [3]float32{1, 2, 3}, 5)

	node, err := DecodeObject3D(buf.NewCursor(body))
	if err != nil {
		t.Fatalf("DecodeObject3D: %v", err)
	}
	if uint64(node.Name) != 0xfeedface {
		t.Fatalf("name = %s", node.Name)
	}
	if len(node.Controllers) != 2 || node.Controllers[0] != 10 || node.Controllers[1] != 20 {
		t.Fatalf("controllers = %v", node.Controllers)
	}
	if node.Parent != 5 {
		t.Fatalf("parent = %d", node.Parent)
	}
	// The trailing position triple wins over the matrix column.
	if node.Transform[12] != 1 || node.Transform[13] != 2 || node.Transform[14] != 3 {
		t.Fatalf("translation column = %v", node.Transform.Col(3))
	}
	if node.Payload != nil {
		t.Fatalf("locator node must have nil payload")
	}
}

func TestDecodeObject3DNoControllers(t *testing.T) {
	body := testutil.Object3DBody(1, nil, testutil.IdentityMat, [3]float32{}, 0)
	node, err := DecodeObject3D(buf.NewCursor(body))
	if err != nil {
		t.Fatalf("DecodeObject3D: %v", err)
	}
	if len(node.Controllers) != 0 || node.Parent != 0 {
		t.Fatalf("unexpected node: %+v", node)
	}
}

func TestDecodeObject3DTruncated(t *testing.T) {
	body := testutil.Object3DBody(1, []uint32{2}, testutil.IdentityMat, [3]float32{}, 0)
	for _, n := range []int{0, 8, 11, 20, len(body) - 1} {
		if _, err := DecodeObject3D(buf.NewCursor(body[:n])); !errors.Is(err, buf.ErrOutOfBounds) {
			t.Fatalf("truncated at %d: %v, want ErrOutOfBounds", n, err)
		}
	}
}

// A controller count bigger than the body can hold must fail before any
// allocation, not after reading junk.
func TestDecodeObject3DAbsurdControllerCount(t *testing.T) {
	var w testutil.Writer
	w.U64(1).U32(0xFFFFFFF0)
	if _, err := DecodeObject3D(buf.NewCursor(w.Bytes())); !errors.Is(err, buf.ErrOutOfBounds) {
		t.Fatalf("absurd count: %v, want ErrOutOfBounds", err)
	}
}
