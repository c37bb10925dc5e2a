// Package testutil builds synthetic Diesel model files for the decoder
// tests. Real capture files are large and carry GPU sections this module
// skips, so tests assemble exactly the bytes they mean to exercise.
package testutil

import (
	"encoding/binary"
	"math"
)

// Writer accumulates little-endian fields.
type Writer struct {
	b []byte
}

func (w *Writer) U32(v uint32) *Writer {
	w.b = binary.LittleEndian.AppendUint32(w.b, v)
	return w
}

func (w *Writer) U64(v uint64) *Writer {
	w.b = binary.LittleEndian.AppendUint64(w.b, v)
	return w
}

func (w *Writer) F32(v float32) *Writer {
	return w.U32(math.Float32bits(v))
}

func (w *Writer) F32s(vs ...float32) *Writer {
	for _, v := range vs {
		w.F32(v)
	}
	return w
}

func (w *Writer) Raw(b []byte) *Writer {
	w.b = append(w.b, b...)
	return w
}

func (w *Writer) Bytes() []byte { return w.b }

// Section is one section to place in a synthetic file.
type Section struct {
	Tag  uint32
	ID   uint32
	Body []byte
}

// File assembles a complete model file around the given sections.
func File(sections ...Section) []byte {
	var w Writer
	w.U32(uint32(len(sections)))
	w.U32(0) // declared length; the decoder must not care
	appendSections(&w, sections)
	return w.Bytes()
}

// FileExtended is File using the 0xFFFFFFFF extended-count escape.
func FileExtended(sections ...Section) []byte {
	var w Writer
	w.U32(0xFFFFFFFF)
	w.U32(0)
	w.U32(uint32(len(sections)))
	appendSections(&w, sections)
	return w.Bytes()
}

func appendSections(w *Writer, sections []Section) {
	for _, s := range sections {
		w.U32(s.Tag).U32(s.ID).U32(uint32(len(s.Body))).Raw(s.Body)
	}
}

// Object3DBody builds the shared node prefix. The 16 matrix floats are
// written as given; pos follows and overrides the translation column on
// decode. Controllers get zeroed reserved trailers.
func Object3DBody(name uint64, controllers []uint32, mat [16]float32, pos [3]float32, parent uint32) []byte {
	var w Writer
	w.U64(name)
	w.U32(uint32(len(controllers)))
	for _, id := range controllers {
		w.U32(id).U32(0).U32(0)
	}
	w.F32s(mat[:]...)
	w.F32s(pos[:]...)
	w.U32(parent)
	return w.Bytes()
}

// IdentityMat is a column-major identity matrix for prefix builders.
var IdentityMat = [16]float32{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

// BoundsModelBody wraps a node prefix in a kind-6 model section body.
func BoundsModelBody(prefix []byte, min, max [3]float32, radius float32, reserved uint32) []byte {
	var w Writer
	w.U32(6).Raw(prefix)
	w.F32s(min[:]...).F32s(max[:]...)
	w.F32(radius).U32(reserved)
	return w.Bytes()
}

// GeometryModelBody wraps a node prefix in a model section body of the
// given kind (anything but 6 decodes as geometry). Each atom is
// (base vertex, triangle count, base index, slice length, material id).
func GeometryModelBody(prefix []byte, kind uint32, atoms [][5]uint32,
	materialGroup, lightset, properties uint32,
	min, max [3]float32, radius float32, reserved, skinbones uint32,
) []byte {
	var w Writer
	w.U32(kind).Raw(prefix)
	w.U32(uint32(len(atoms)))
	for _, a := range atoms {
		for _, f := range a {
			w.U32(f)
		}
	}
	w.U32(materialGroup).U32(lightset).U32(properties)
	w.F32s(min[:]...).F32s(max[:]...)
	w.F32(radius).U32(reserved).U32(skinbones)
	return w.Bytes()
}

// ControllerBody builds a linear controller body. Each value slice must
// be 1 (float), 3 (vector), or 4 (rotation) floats wide to match the tag
// the section is filed under.
func ControllerBody(name uint64, flags, reserved uint32, duration float32, times []float32, values [][]float32) []byte {
	var w Writer
	w.U64(name).U32(flags).U32(reserved).F32(duration)
	w.U32(uint32(len(times)))
	for i, t := range times {
		w.F32(t).F32s(values[i]...)
	}
	return w.Bytes()
}

// AuthorBody builds an author section body.
func AuthorBody(name uint64, email, source string, reserved uint32) []byte {
	var w Writer
	w.U64(name)
	w.Raw(append([]byte(email), 0))
	w.Raw(append([]byte(source), 0))
	w.U32(reserved)
	return w.Bytes()
}
