// Package idstring implements the 64-bit name hash used throughout the
// Diesel engine's asset formats. The engine never stores literal asset
// names; everything is referenced by this hash, so it must reproduce the
// engine's implementation bit for bit.
//
// The function is a 64-bit variant of Bob Jenkins' lookup hash: input is
// consumed in 24-byte blocks into three accumulators which are stirred by
// a fixed four-round mix, with a byte-position-dependent packing of the
// 1-23 byte tail. The result is the final value of the third accumulator.
//
// Hashing is pure and collision handling is the caller's problem; the
// hashlist package provides a best-effort reverse lookup for display.
package idstring

import (
	"encoding/binary"
	"fmt"
)

// Value is a hashed name. The zero value is the hash of no known name
// (it is not the hash of the empty string).
type Value uint64

// String formats the hash the way Diesel tooling conventionally does:
// sixteen lowercase hex digits, zero padded.
func (v Value) String() string {
	return fmt.Sprintf("%016x", uint64(v))
}

// golden ratio fraction, the traditional lookup-hash initializer for c.
const seedC = 0x9e3779b97f4a7c13

// Hash returns the idstring of k with level 0, which is how every name
// in the model format is hashed.
func Hash(k []byte) Value {
	return HashLevel(k, 0)
}

// HashString is Hash over the raw bytes of s.
func HashString(s string) Value {
	return HashLevel([]byte(s), 0)
}

// HashLevel returns the idstring of k seeded with level. The engine
// passes a previous hash as the level to chain hashes; asset names use
// level 0.
func HashLevel(k []byte, level uint64) Value {
	a, b, c := level, level, uint64(seedC)

	rem := len(k)
	off := 0
	for rem >= 24 {
		a += binary.LittleEndian.Uint64(k[off:])
		b += binary.LittleEndian.Uint64(k[off+8:])
		c += binary.LittleEndian.Uint64(k[off+16:])
		a, b, c = mix(a, b, c)
		off += 24
		rem -= 24
	}

	c += uint64(len(k))

	// Tail packing. Which accumulator a byte lands in, and at which
	// shift, depends on its offset within the block; note byte 8 goes
	// into b at shift 0 while byte 16 skips c's shift 0 entirely. This
	// table is part of the wire contract and must not be regularized.
	switch rem {
	case 23:
		c += uint64(k[off+22]) << 56
		fallthrough
	case 22:
		c += uint64(k[off+21]) << 48
		fallthrough
	case 21:
		c += uint64(k[off+20]) << 40
		fallthrough
	case 20:
		c += uint64(k[off+19]) << 32
		fallthrough
	case 19:
		c += uint64(k[off+18]) << 24
		fallthrough
	case 18:
		c += uint64(k[off+17]) << 16
		fallthrough
	case 17:
		c += uint64(k[off+16]) << 8
		fallthrough
	case 16:
		b += uint64(k[off+15]) << 56
		fallthrough
	case 15:
		b += uint64(k[off+14]) << 48
		fallthrough
	case 14:
		b += uint64(k[off+13]) << 40
		fallthrough
	case 13:
		b += uint64(k[off+12]) << 32
		fallthrough
	case 12:
		b += uint64(k[off+11]) << 24
		fallthrough
	case 11:
		b += uint64(k[off+10]) << 16
		fallthrough
	case 10:
		b += uint64(k[off+9]) << 8
		fallthrough
	case 9:
		b += uint64(k[off+8])
		fallthrough
	case 8:
		a += uint64(k[off+7]) << 56
		fallthrough
	case 7:
		a += uint64(k[off+6]) << 48
		fallthrough
	case 6:
		a += uint64(k[off+5]) << 40
		fallthrough
	case 5:
		a += uint64(k[off+4]) << 32
		fallthrough
	case 4:
		a += uint64(k[off+3]) << 24
		fallthrough
	case 3:
		a += uint64(k[off+2]) << 16
		fallthrough
	case 2:
		a += uint64(k[off+1]) << 8
		fallthrough
	case 1:
		a += uint64(k[off])
	}

	_, _, c = mix(a, b, c)
	return Value(c)
}

// mix stirs the three accumulators with four subtract/xor rounds. All
// shifts are right shifts (classic lookup8 shifts b left; this hash does
// not), with fixed per-round, per-accumulator amounts.
func mix(a, b, c uint64) (uint64, uint64, uint64) {
	a -= b; a -= c; a ^= c >> 43
	b -= c; b -= a; b ^= a >> 9
	c -= a; c -= b; c ^= b >> 8

	a -= b; a -= c; a ^= c >> 38
	b -= c; b -= a; b ^= a >> 23
	c -= a; c -= b; c ^= b >> 5

	a -= b; a -= c; a ^= c >> 35
	b -= c; b -= a; b ^= a >> 49
	c -= a; c -= b; c ^= b >> 11

	a -= b; a -= c; a ^= c >> 12
	b -= c; b -= a; b ^= a >> 18
	c -= a; c -= b; c ^= b >> 22

	return a, b, c
}
