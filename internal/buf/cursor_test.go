package buf

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"
)

func TestCursorFixedWidthReads(t *testing.T) {
	b := make([]byte, 16)
	binary.LittleEndian.PutUint32(b[0:], 0xdeadbeef)
	binary.LittleEndian.PutUint64(b[4:], 0x0123456789abcdef)
	binary.LittleEndian.PutUint32(b[12:], math.Float32bits(1.5))

	c := NewCursor(b)
	if v, err := c.U32(); err != nil || v != 0xdeadbeef {
		t.Fatalf("U32 = %#x, %v", v, err)
	}
	if v, err := c.U64(); err != nil || v != 0x0123456789abcdef {
		t.Fatalf("U64 = %#x, %v", v, err)
	}
	if v, err := c.F32(); err != nil || v != 1.5 {
		t.Fatalf("F32 = %v, %v", v, err)
	}
	if c.Remaining() != 0 {
		t.Fatalf("Remaining = %d, want 0", c.Remaining())
	}
	if _, err := c.U32(); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("read past end: %v, want ErrOutOfBounds", err)
	}
}

func TestCursorSeekSkip(t *testing.T) {
	c := NewCursor(make([]byte, 10))
	if err := c.Skip(4); err != nil || c.Pos() != 4 {
		t.Fatalf("Skip(4): pos=%d err=%v", c.Pos(), err)
	}
	if err := c.Seek(10); err != nil {
		t.Fatalf("Seek(len) should succeed: %v", err)
	}
	if err := c.Seek(11); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("Seek(11): %v, want ErrOutOfBounds", err)
	}
	if err := c.Seek(0); err != nil {
		t.Fatalf("Seek(0): %v", err)
	}
	if err := c.Skip(11); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("Skip(11): %v, want ErrOutOfBounds", err)
	}
	if err := c.Skip(-1); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("Skip(-1): %v, want ErrOutOfBounds", err)
	}
	// A failed skip must not move the position.
	if c.Pos() != 0 {
		t.Fatalf("pos moved on failed skip: %d", c.Pos())
	}
}

func TestCursorSliceIsConfined(t *testing.T) {
	b := make([]byte, 12)
	binary.LittleEndian.PutUint32(b[4:], 42)
	parent := NewCursor(b)
	if err := parent.Skip(4); err != nil {
		t.Fatalf("Skip: %v", err)
	}

	sub, err := parent.Slice(4)
	if err != nil {
		t.Fatalf("Slice: %v", err)
	}
	// Parent advanced past the window.
	if parent.Pos() != 8 {
		t.Fatalf("parent pos = %d, want 8", parent.Pos())
	}
	if v, err := sub.U32(); err != nil || v != 42 {
		t.Fatalf("sub U32 = %d, %v", v, err)
	}
	// The sub-cursor must not see the parent's remaining bytes.
	if _, err := sub.U32(); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("sub-cursor escaped its window: %v", err)
	}
}

func TestCursorSliceTruncated(t *testing.T) {
	c := NewCursor(make([]byte, 3))
	if _, err := c.Slice(4); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("Slice(4) of 3: %v, want ErrOutOfBounds", err)
	}
}

func TestCursorF32s(t *testing.T) {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint32(b[0:], math.Float32bits(2))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(-3))
	var dst [2]float32
	c := NewCursor(b)
	if err := c.F32s(dst[:]); err != nil {
		t.Fatalf("F32s: %v", err)
	}
	if dst[0] != 2 || dst[1] != -3 {
		t.Fatalf("F32s = %v", dst)
	}
	if err := c.F32s(dst[:]); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("F32s past end: %v, want ErrOutOfBounds", err)
	}
}
