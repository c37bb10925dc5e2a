package types

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	// ErrKindTruncated: a read or slice asked for more bytes than remain
	// in its bound. Always fatal to the current decode.
	ErrKindTruncated ErrKind = iota
	// ErrKindFormat: a structurally malformed file outside of plain
	// truncation (e.g. a section body shorter than its list claims).
	ErrKindFormat
	// ErrKindDuplicateID: two sections share an id (strict mode only;
	// the lenient default lets the later section overwrite the earlier).
	ErrKindDuplicateID
	// ErrKindDanglingParent: a node names a parent id with no section
	// (strict mode only; the lenient default treats the node as a root).
	ErrKindDanglingParent
	// ErrKindModelKind: a model section carries a discriminant that is
	// neither the bounds nor the mesh tag (strict mode only; the lenient
	// default decodes any non-bounds kind as geometry).
	ErrKindModelKind
	// ErrKindState: invalid operation for the current state (e.g. a
	// closed file).
	ErrKindState
)

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same Kind, so errors.Is(err, ErrTruncated)
// works on wrapped instances.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinels commonly returned by implementations.
var (
	// ErrTruncated indicates a read past the declared bound of the file
	// or of a section body.
	ErrTruncated = &Error{Kind: ErrKindTruncated, Msg: "truncated input"}
	// ErrFormat indicates non-truncation structural inconsistency.
	ErrFormat = &Error{Kind: ErrKindFormat, Msg: "malformed model file"}
	// ErrDuplicateID indicates two sections with the same id (strict mode).
	ErrDuplicateID = &Error{Kind: ErrKindDuplicateID, Msg: "duplicate section id"}
	// ErrDanglingParent indicates an unresolvable parent id (strict mode).
	ErrDanglingParent = &Error{Kind: ErrKindDanglingParent, Msg: "dangling parent reference"}
	// ErrModelKind indicates a non-canonical model discriminant (strict mode).
	ErrModelKind = &Error{Kind: ErrKindModelKind, Msg: "unrecognized model kind"}
	// ErrClosed indicates use of a file after Close.
	ErrClosed = &Error{Kind: ErrKindState, Msg: "file is closed"}
)

// -----------------------------------------------------------------------------
// Options
// -----------------------------------------------------------------------------

// OpenOptions selects how tolerant the decoder is of conditions the
// engine itself accepts silently. The zero value reproduces the engine's
// lenient behavior exactly.
type OpenOptions struct {
	// StrictDuplicateIDs makes a repeated section id an ErrDuplicateID
	// instead of letting the later section overwrite the earlier one.
	StrictDuplicateIDs bool

	// StrictParents makes a parent id with no matching section an
	// ErrDanglingParent instead of treating the node as a root.
	StrictParents bool

	// StrictModelKinds makes a model discriminant other than the bounds
	// (6) or mesh (3) tags an ErrModelKind instead of decoding it as
	// geometry.
	StrictModelKinds bool
}

// -----------------------------------------------------------------------------
// Document
// -----------------------------------------------------------------------------

// FileInfo carries the file header fields. DeclaredLength is recorded as
// read; the engine never validates it against the actual size and
// neither does this decoder.
type FileInfo struct {
	SectionCount   uint32
	DeclaredLength uint32

	// ExtendedCount is set when the header used the 0xFFFFFFFF escape
	// and carried the real count in a third word.
	ExtendedCount bool
}

// AuthorTag is the informational author section some exporters write.
// Release Diesel ignores it.
type AuthorTag struct {
	Name     uint64 // scene-type name hash
	Email    string
	Source   string // absolute path of the exporter's input file
	Reserved uint32
}

// Document is a fully decoded model file: the id-keyed node table plus
// everything needed to resolve it into the IR.
type Document interface {
	// Info returns the decoded file header.
	Info() FileInfo

	// NodeIDs returns the section ids of all decoded nodes in their
	// original file order.
	NodeIDs() []uint32

	// Node returns the decoded node for a section id.
	Node(id uint32) (*SceneNode, bool)

	// Author returns the author tag, if the file carried one.
	Author() (AuthorTag, bool)

	// Resolve links parents, decomposes transforms, and joins animation
	// controllers, returning the IR nodes in original file order.
	// Resolution is independent of the order sections appeared in.
	Resolve() ([]*IRNode, error)
}
