// Package reader assembles decoded sections into the public Document and
// resolves the node table into the IR. The public wrapper (the model
// package) uses it without exposing the parsing machinery.
package reader

import (
	"errors"
	"fmt"

	"github.com/kythyria/dieselkit/internal/buf"
	"github.com/kythyria/dieselkit/internal/format"
	"github.com/kythyria/dieselkit/pkg/types"
)

// document is the concrete types.Document. It owns every decoded node;
// parent relations stay section-id lookups until Resolve runs, so
// sections may reference sections that appear later in the file.
type document struct {
	opts types.OpenOptions
	info types.FileInfo

	// order holds node ids by first appearance. A duplicate id keeps its
	// original position; only the node is replaced.
	order []uint32
	nodes map[uint32]*types.SceneNode

	// controllers and animation data are keyed by section id for the
	// resolver's join against node controller lists.
	controllers map[uint32]*format.Controller

	author *types.AuthorTag
}

// Decode parses a complete in-memory model file.
func Decode(data []byte, opts types.OpenOptions) (types.Document, error) {
	cur := buf.NewCursor(data)

	head, err := format.ParseHeader(cur)
	if err != nil {
		return nil, wrapDecodeErr("file header", err)
	}

	doc := &document{
		opts: opts,
		info: types.FileInfo{
			SectionCount:   head.SectionCount,
			DeclaredLength: head.DeclaredLength,
			ExtendedCount:  head.Extended,
		},
		nodes:       make(map[uint32]*types.SceneNode),
		controllers: make(map[uint32]*format.Controller),
	}

	for i := uint32(0); i < head.SectionCount; i++ {
		sec, err := format.NextSection(cur)
		if err != nil {
			return nil, wrapDecodeErr(fmt.Sprintf("section %d", i), err)
		}
		if err := doc.decodeSection(sec); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// decodeSection dispatches one section by tag. Tags without a decoder
// are skipped: unknown section types are how the format stays forward
// compatible, so they are not errors.
func (d *document) decodeSection(sec format.Section) error {
	switch sec.Tag {
	case format.TagObject3D:
		node, err := format.DecodeObject3D(sec.Body)
		if err != nil {
			return wrapDecodeErr(sectionCtx(sec), err)
		}
		return d.insert(sec.ID, node)

	case format.TagModel:
		node, kind, err := format.DecodeModel(sec.Body)
		if err != nil {
			return wrapDecodeErr(sectionCtx(sec), err)
		}
		if d.opts.StrictModelKinds && kind != format.KindBounds && kind != format.KindMesh {
			return &types.Error{
				Kind: types.ErrKindModelKind,
				Msg:  fmt.Sprintf("section %d: model kind %d", sec.ID, kind),
			}
		}
		return d.insert(sec.ID, node)

	case format.TagLinearFloatController:
		return d.insertController(sec, format.ControllerFloat)
	case format.TagLinearVector3Controller:
		return d.insertController(sec, format.ControllerVector3)
	case format.TagQuatLinearRotationController:
		return d.insertController(sec, format.ControllerRotation)

	case format.TagAuthor:
		a, err := format.DecodeAuthor(sec.Body)
		if err != nil {
			return wrapDecodeErr(sectionCtx(sec), err)
		}
		d.author = &a
		return nil

	default:
		return nil
	}
}

func (d *document) insert(id uint32, node *types.SceneNode) error {
	if _, dup := d.nodes[id]; dup {
		if d.opts.StrictDuplicateIDs {
			return &types.Error{
				Kind: types.ErrKindDuplicateID,
				Msg:  fmt.Sprintf("section id %d appears more than once", id),
			}
		}
		// Lenient: later section wins, original position kept.
		d.nodes[id] = node
		return nil
	}
	d.nodes[id] = node
	d.order = append(d.order, id)
	return nil
}

func (d *document) insertController(sec format.Section, kind format.ControllerKind) error {
	c, err := format.DecodeController(sec.Body, kind)
	if err != nil {
		return wrapDecodeErr(sectionCtx(sec), err)
	}
	d.controllers[sec.ID] = c
	return nil
}

func (d *document) Info() types.FileInfo { return d.info }

func (d *document) NodeIDs() []uint32 {
	out := make([]uint32, len(d.order))
	copy(out, d.order)
	return out
}

func (d *document) Node(id uint32) (*types.SceneNode, bool) {
	n, ok := d.nodes[id]
	return n, ok
}

func (d *document) Author() (types.AuthorTag, bool) {
	if d.author == nil {
		return types.AuthorTag{}, false
	}
	return *d.author, true
}

func sectionCtx(sec format.Section) string {
	return fmt.Sprintf("section 0x%08x id %d", sec.Tag, sec.ID)
}

// wrapDecodeErr maps low-level decode failures onto the public taxonomy:
// out-of-bounds reads are truncation, anything else structural.
func wrapDecodeErr(ctx string, err error) error {
	var typed *types.Error
	if errors.As(err, &typed) {
		return err
	}
	kind := types.ErrKindFormat
	if errors.Is(err, buf.ErrOutOfBounds) {
		kind = types.ErrKindTruncated
	}
	return &types.Error{Kind: kind, Msg: ctx, Err: err}
}
