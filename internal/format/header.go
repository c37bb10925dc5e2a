package format

import (
	"fmt"

	"github.com/kythyria/dieselkit/internal/buf"
)

// Header is the decoded file header.
//
//	Offset  Size  Field
//	------  ----  ------------------------------------------------
//	 0x00    4    Section count, or 0xFFFFFFFF escape
//	 0x04    4    Declared file length
//	[0x08    4    Real section count when escaped]
type Header struct {
	SectionCount uint32

	// DeclaredLength is recorded but never checked against the buffer:
	// the engine reads and ignores it, and files with a stale value
	// exist in the wild.
	DeclaredLength uint32

	// Extended is set when the count escape fired.
	Extended bool
}

// ParseHeader reads the file header, advancing cur past it.
func ParseHeader(cur *buf.Cursor) (Header, error) {
	count, err := cur.U32()
	if err != nil {
		return Header{}, fmt.Errorf("header count: %w", err)
	}
	length, err := cur.U32()
	if err != nil {
		return Header{}, fmt.Errorf("header length: %w", err)
	}
	h := Header{SectionCount: count, DeclaredLength: length}
	if count == ExtendedCountSentinel {
		real, err := cur.U32()
		if err != nil {
			return Header{}, fmt.Errorf("header extended count: %w", err)
		}
		h.SectionCount = real
		h.Extended = true
	}
	return h, nil
}

// Section is one length-delimited unit of the container. Body is scoped
// to exactly the declared length.
type Section struct {
	Tag  uint32
	ID   uint32
	Body *buf.Cursor
}

// NextSection reads the next section header and carves its body,
// advancing cur past both.
func NextSection(cur *buf.Cursor) (Section, error) {
	tag, err := cur.U32()
	if err != nil {
		return Section{}, fmt.Errorf("section tag: %w", err)
	}
	id, err := cur.U32()
	if err != nil {
		return Section{}, fmt.Errorf("section 0x%08x id: %w", tag, err)
	}
	length, err := cur.U32()
	if err != nil {
		return Section{}, fmt.Errorf("section 0x%08x length: %w", tag, err)
	}
	body, err := cur.Slice(int(length))
	if err != nil {
		return Section{}, fmt.Errorf("section 0x%08x body: %w", tag, err)
	}
	return Section{Tag: tag, ID: id, Body: body}, nil
}
