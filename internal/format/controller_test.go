package format

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/kythyria/dieselkit/internal/buf"
	"github.com/kythyria/dieselkit/internal/testutil"
)

func TestDecodeControllerVector3(t *testing.T) {
	body := testutil.ControllerBody(0xabc, 1, 0, 2.0,
		[]float32{0, 1, 2},
		[][]float32{{0, 0, 0}, {1, 2, 3}, {4, 5, 6}})

	c, err := DecodeController(buf.NewCursor(body), ControllerVector3)
	if err != nil {
		t.Fatalf("DecodeController: %v", err)
	}
	if uint64(c.Name) != 0xabc || c.Flags != 1 || c.Duration != 2.0 {
		t.Fatalf("controller = %+v", c)
	}
	if len(c.Times) != 3 || len(c.Values) != 3 {
		t.Fatalf("keyframes = %d/%d", len(c.Times), len(c.Values))
	}
	if c.Times[2] != 2 || c.Values[2] != (mgl32.Vec4{4, 5, 6, 0}) {
		t.Fatalf("key 2 = %v @ %v", c.Values[2], c.Times[2])
	}
}

func TestDecodeControllerFloat(t *testing.T) {
	body := testutil.ControllerBody(1, 0, 0, 1.0,
		[]float32{0.5}, [][]float32{{7.25}})

	c, err := DecodeController(buf.NewCursor(body), ControllerFloat)
	if err != nil {
		t.Fatalf("DecodeController: %v", err)
	}
	if c.Values[0] != (mgl32.Vec4{7.25, 0, 0, 0}) {
		t.Fatalf("value = %v", c.Values[0])
	}
}

func TestDecodeControllerRotation(t *testing.T) {
	body := testutil.ControllerBody(1, 0, 0, 1.0,
		[]float32{0}, [][]float32{{0, 0, 0, 1}})

	c, err := DecodeController(buf.NewCursor(body), ControllerRotation)
	if err != nil {
		t.Fatalf("DecodeController: %v", err)
	}
	if c.Values[0] != (mgl32.Vec4{0, 0, 0, 1}) {
		t.Fatalf("value = %v", c.Values[0])
	}
}

func TestDecodeControllerTruncated(t *testing.T) {
	body := testutil.ControllerBody(1, 0, 0, 1.0,
		[]float32{0, 1}, [][]float32{{1}, {2}})
	if _, err := DecodeController(buf.NewCursor(body[:len(body)-3]), ControllerFloat); !errors.Is(err, buf.ErrOutOfBounds) {
		t.Fatalf("truncated controller: %v, want ErrOutOfBounds", err)
	}
}

func TestDecodeAnimationData(t *testing.T) {
	var w testutil.Writer
	w.U64(0x55).U32(2).F32(3.0).U32(4).F32s(0, 1, 2, 3)

	d, err := DecodeAnimationData(buf.NewCursor(w.Bytes()))
	if err != nil {
		t.Fatalf("DecodeAnimationData: %v", err)
	}
	if uint64(d.Name) != 0x55 || d.Reserved != 2 || d.Duration != 3.0 {
		t.Fatalf("animation data = %+v", d)
	}
	if len(d.Times) != 4 || d.Times[3] != 3 {
		t.Fatalf("times = %v", d.Times)
	}
}

func TestDecodeAuthor(t *testing.T) {
	body := testutil.AuthorBody(0x99, "tools@example.com", `C:\art\door.max`, 1)

	a, err := DecodeAuthor(buf.NewCursor(body))
	if err != nil {
		t.Fatalf("DecodeAuthor: %v", err)
	}
	if a.Name != 0x99 || a.Email != "tools@example.com" || a.Source != `C:\art\door.max` || a.Reserved != 1 {
		t.Fatalf("author = %+v", a)
	}
}

func TestDecodeAuthorUnterminatedString(t *testing.T) {
	body := testutil.AuthorBody(0x99, "tools@example.com", "x", 1)
	// Cut before the second string's terminator.
	if _, err := DecodeAuthor(buf.NewCursor(body[:8+len("tools@example.com")+2])); !errors.Is(err, buf.ErrOutOfBounds) {
		t.Fatalf("unterminated string: %v, want ErrOutOfBounds", err)
	}
}
