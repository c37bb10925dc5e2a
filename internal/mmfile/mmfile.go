// Package mmfile loads model files for in-place decoding. On unix the
// file is mapped read-only; elsewhere, or when mapping fails, it is
// read into memory.
package mmfile

// Mapping is a read-only view of a model file's bytes.
type Mapping struct {
	Data   []byte
	mapped bool
}

// Close releases the mapping, if any. Close is idempotent; Data must
// not be touched afterwards.
func (m *Mapping) Close() error {
	if !m.mapped {
		m.Data = nil
		return nil
	}
	m.mapped = false
	data := m.Data
	m.Data = nil
	return munmap(data)
}
