// Package buf contains endian helpers and the bounds-checked cursor used
// by the wire-level section decoders. Diesel model files are entirely
// little-endian.
package buf

import (
	"encoding/binary"
	"math"
)

// U32LE reads a little-endian uint32 from b. Returns 0 when b is too short.
func U32LE(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

// U64LE reads a little-endian uint64 from b. Returns 0 when b is too short.
func U64LE(b []byte) uint64 {
	if len(b) < 8 {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

// F32LE reads a little-endian IEEE 754 float32 from b. Returns 0 when b
// is too short.
func F32LE(b []byte) float32 {
	if len(b) < 4 {
		return 0
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}
