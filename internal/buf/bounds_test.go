package buf

import (
	"math"
	"testing"
)

func TestAddOverflowSafe(t *testing.T) {
	if sum, ok := AddOverflowSafe(10, 5); !ok || sum != 15 {
		t.Fatalf("AddOverflowSafe(10,5)=%d,%v want 15,true", sum, ok)
	}
	if _, ok := AddOverflowSafe(math.MaxInt, 1); ok {
		t.Fatalf("expected overflow when adding to MaxInt")
	}
	if _, ok := AddOverflowSafe(math.MinInt, -1); ok {
		t.Fatalf("expected underflow when subtracting from MinInt")
	}
}

func TestMulOverflowSafe(t *testing.T) {
	if p, ok := MulOverflowSafe(6, 7); !ok || p != 42 {
		t.Fatalf("MulOverflowSafe(6,7)=%d,%v want 42,true", p, ok)
	}
	if p, ok := MulOverflowSafe(0, math.MaxInt); !ok || p != 0 {
		t.Fatalf("MulOverflowSafe(0,MaxInt)=%d,%v want 0,true", p, ok)
	}
	if _, ok := MulOverflowSafe(math.MaxInt, 2); ok {
		t.Fatalf("expected overflow for MaxInt*2")
	}
}

func TestSliceAndHas(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4}
	if got, ok := Slice(data, 1, 3); !ok || len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("Slice returned unexpected result: %v, %v", got, ok)
	}
	if _, ok := Slice(data, 4, 2); ok {
		t.Fatalf("Slice should fail when extending beyond len")
	}
	if _, ok := Slice(data, -1, 1); ok {
		t.Fatalf("Slice should reject negative offset")
	}
	if Has(data, 2, 4) {
		t.Fatalf("Has should be false for out-of-bounds range")
	}
	if !Has(data, 2, 1) {
		t.Fatalf("Has should be true for valid range")
	}
}

func TestEndianHelpers(t *testing.T) {
	b := []byte{0xef, 0xbe, 0xad, 0xde, 1, 2, 3, 4}
	if got := U32LE(b); got != 0xdeadbeef {
		t.Fatalf("U32LE = %#x", got)
	}
	if got := U64LE(b); got != 0x04030201deadbeef {
		t.Fatalf("U64LE = %#x", got)
	}
	if got := U32LE(b[:3]); got != 0 {
		t.Fatalf("short U32LE = %#x, want 0", got)
	}
	if got := U64LE(b[:7]); got != 0 {
		t.Fatalf("short U64LE = %#x, want 0", got)
	}
	if got := F32LE([]byte{0, 0, 0xc0, 0x3f}); got != 1.5 {
		t.Fatalf("F32LE = %v, want 1.5", got)
	}
	if got := F32LE([]byte{0, 0}); got != 0 {
		t.Fatalf("short F32LE = %v, want 0", got)
	}
}
