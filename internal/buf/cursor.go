package buf

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds indicates a read, seek, or skip past the end of a
// cursor's window.
var ErrOutOfBounds = errors.New("buf: out of bounds")

// Cursor is a bounds-checked little-endian reader over an in-memory
// buffer. A cursor produced by Slice is confined to its own window:
// reads that would pass the window fail with ErrOutOfBounds even when
// the backing buffer has more bytes after it.
//
// Cursors never copy; they alias the buffer they were created over.
type Cursor struct {
	data []byte
	pos  int
}

// NewCursor returns a cursor positioned at the start of b.
func NewCursor(b []byte) *Cursor {
	return &Cursor{data: b}
}

// Pos returns the current read position within the window.
func (c *Cursor) Pos() int { return c.pos }

// Len returns the total size of the window.
func (c *Cursor) Len() int { return len(c.data) }

// Remaining returns the number of unread bytes left in the window.
func (c *Cursor) Remaining() int { return len(c.data) - c.pos }

// Seek moves the read position to pos. Seeking to Len() is allowed and
// leaves the cursor exhausted.
func (c *Cursor) Seek(pos int) error {
	if pos < 0 || pos > len(c.data) {
		return fmt.Errorf("seek to %d in window of %d: %w", pos, len(c.data), ErrOutOfBounds)
	}
	c.pos = pos
	return nil
}

// Skip advances the read position by n bytes.
func (c *Cursor) Skip(n int) error {
	if n < 0 {
		return fmt.Errorf("skip %d: %w", n, ErrOutOfBounds)
	}
	_, err := c.take(n)
	return err
}

// take consumes n bytes from the window, advancing the position.
func (c *Cursor) take(n int) ([]byte, error) {
	b, ok := Slice(c.data, c.pos, n)
	if !ok {
		return nil, fmt.Errorf("need %d bytes at %d of %d: %w", n, c.pos, len(c.data), ErrOutOfBounds)
	}
	c.pos += n
	return b, nil
}

// U32 reads a little-endian uint32 and advances 4 bytes.
func (c *Cursor) U32() (uint32, error) {
	b, err := c.take(4)
	if err != nil {
		return 0, err
	}
	return U32LE(b), nil
}

// U64 reads a little-endian uint64 and advances 8 bytes.
func (c *Cursor) U64() (uint64, error) {
	b, err := c.take(8)
	if err != nil {
		return 0, err
	}
	return U64LE(b), nil
}

// F32 reads a little-endian float32 and advances 4 bytes.
func (c *Cursor) F32() (float32, error) {
	b, err := c.take(4)
	if err != nil {
		return 0, err
	}
	return F32LE(b), nil
}

// F32s reads len(dst) consecutive float32 values into dst.
func (c *Cursor) F32s(dst []float32) error {
	b, err := c.take(4 * len(dst))
	if err != nil {
		return err
	}
	for i := range dst {
		dst[i] = F32LE(b[4*i:])
	}
	return nil
}

// Bytes consumes the next n bytes and returns them without copying.
func (c *Cursor) Bytes(n int) ([]byte, error) {
	return c.take(n)
}

// Slice carves a new cursor over exactly n bytes starting at the current
// position and advances this cursor past them. The sub-cursor cannot
// read outside its window.
func (c *Cursor) Slice(n int) (*Cursor, error) {
	b, err := c.take(n)
	if err != nil {
		return nil, err
	}
	return NewCursor(b), nil
}
