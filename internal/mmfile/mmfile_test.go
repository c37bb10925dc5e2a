package mmfile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenReadsContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.model")
	want := []byte{0x01, 0x00, 0x00, 0x00, 0x42}
	if err := os.WriteFile(path, want, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	m, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if len(m.Data) != len(want) {
		t.Fatalf("len mismatch: got %d want %d", len(m.Data), len(want))
	}
	for i, b := range want {
		if m.Data[i] != b {
			t.Fatalf("byte %d mismatch: got 0x%x want 0x%x", i, m.Data[i], b)
		}
	}
	if err := m.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if m.Data != nil {
		t.Fatal("Data should be nil after Close")
	}
	if err := m.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}

func TestOpenZeroLength(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.model")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	m, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if len(m.Data) != 0 {
		t.Fatalf("expected empty mapping, got %d bytes", len(m.Data))
	}
	if err := m.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestOpenMissing(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.model")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
