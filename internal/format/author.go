package format

import (
	"fmt"

	"github.com/kythyria/dieselkit/internal/buf"
	"github.com/kythyria/dieselkit/pkg/types"
)

// DecodeAuthor decodes the informational author section: a scene-type
// name hash, two null-terminated strings (author e-mail and the absolute
// path of the exporter's input file), and a reserved u32. Release Diesel
// never reads this section.
func DecodeAuthor(cur *buf.Cursor) (types.AuthorTag, error) {
	var a types.AuthorTag

	name, err := cur.U64()
	if err != nil {
		return a, fmt.Errorf("author name: %w", err)
	}
	a.Name = name

	if a.Email, err = readCString(cur); err != nil {
		return a, fmt.Errorf("author email: %w", err)
	}
	if a.Source, err = readCString(cur); err != nil {
		return a, fmt.Errorf("author source: %w", err)
	}
	if a.Reserved, err = cur.U32(); err != nil {
		return a, fmt.Errorf("author reserved: %w", err)
	}
	return a, nil
}

// readCString consumes bytes up to and including a NUL terminator. A
// string running off the end of the section is a truncation error.
func readCString(cur *buf.Cursor) (string, error) {
	var out []byte
	for {
		b, err := cur.Bytes(1)
		if err != nil {
			return "", err
		}
		if b[0] == 0 {
			return string(out), nil
		}
		out = append(out, b[0])
	}
}
