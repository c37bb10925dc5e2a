// Package model is the public entry point for decoding Diesel engine
// model files into the neutral scene-graph IR.
//
// # Overview
//
// A model file is a flat run of length-delimited sections, each tagged
// with a 32-bit type and a 32-bit id. Object names are idstring hashes,
// never literal strings; the hashlist package can reverse-map them for
// display. Decoding is a single forward pass building an id-keyed node
// table, followed by a resolution pass that links parents, decomposes
// transforms, and joins animation controllers.
//
// # Opening a file
//
//	f, err := model.Open("units/door.model", types.OpenOptions{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer f.Close()
//	nodes, err := f.Resolve()
//
// On unix the file is memory-mapped; elsewhere it is read into memory.
// Decoding is pure: separate files may be decoded concurrently with no
// coordination.
//
// # Errors
//
// All decode failures are *types.Error values; branch on Kind or use
// errors.Is against the sentinels in pkg/types. A true decode error
// aborts the whole file — there is no partial-result salvage, so batch
// callers should catch per file and continue.
package model

import (
	"github.com/kythyria/dieselkit/internal/mmfile"
	"github.com/kythyria/dieselkit/internal/reader"
	"github.com/kythyria/dieselkit/pkg/types"
)

// File is an opened, fully decoded model file.
type File struct {
	types.Document
	mapping *mmfile.Mapping
}

// Open maps and decodes the model file at path.
func Open(path string, opts types.OpenOptions) (*File, error) {
	m, err := mmfile.Open(path)
	if err != nil {
		return nil, err
	}
	doc, err := reader.Decode(m.Data, opts)
	if err != nil {
		_ = m.Close()
		return nil, err
	}
	return &File{Document: doc, mapping: m}, nil
}

// OpenBytes decodes a model file already held in memory. The buffer is
// not retained past the call: every decoded structure owns its data.
func OpenBytes(data []byte, opts types.OpenOptions) (*File, error) {
	doc, err := reader.Decode(data, opts)
	if err != nil {
		return nil, err
	}
	return &File{Document: doc}, nil
}

// Decode is OpenBytes without the File wrapper, for callers that manage
// their own buffers.
func Decode(data []byte, opts types.OpenOptions) (types.Document, error) {
	return reader.Decode(data, opts)
}

// Close releases the mapping, if any. The decoded document stays valid:
// nothing in it aliases the mapped bytes.
func (f *File) Close() error {
	if f.mapping == nil {
		return nil
	}
	m := f.mapping
	f.mapping = nil
	return m.Close()
}
