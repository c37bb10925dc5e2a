package main

import (
	"encoding/binary"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"
)

// resetFlags restores the global flag state between tests.
func resetFlags() {
	verbose = false
	quiet = false
	jsonOut = false
	strictDuplicates = false
	strictParents = false
	strictKinds = false
	hashlistPath = ""
	treeDepth = 0
	treeChannels = false
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	runErr := fn()

	w.Close()
	os.Stdout = origStdout

	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("failed to read captured output: %v", err)
	}
	return string(out), runErr
}

// Object3D section tag as it appears on the wire.
const testTagObject3D = 0x0ffcd100

type testSection struct {
	tag  uint32
	id   uint32
	body []byte
}

// buildModelFile writes a synthetic model file and returns its path.
func buildModelFile(t *testing.T, sections ...testSection) string {
	t.Helper()

	var body []byte
	for _, s := range sections {
		body = binary.LittleEndian.AppendUint32(body, s.tag)
		body = binary.LittleEndian.AppendUint32(body, s.id)
		body = binary.LittleEndian.AppendUint32(body, uint32(len(s.body)))
		body = append(body, s.body...)
	}
	var data []byte
	data = binary.LittleEndian.AppendUint32(data, uint32(len(sections)))
	data = binary.LittleEndian.AppendUint32(data, uint32(8+len(body)))
	data = append(data, body...)

	path := filepath.Join(t.TempDir(), "test.model")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write test model: %v", err)
	}
	return path
}

// object3DBody builds an Object3D section body with an identity transform
// and no controllers.
func object3DBody(name uint64, parent uint32) []byte {
	var b []byte
	b = binary.LittleEndian.AppendUint64(b, name)
	b = binary.LittleEndian.AppendUint32(b, 0)
	for i := 0; i < 16; i++ {
		f := float32(0)
		if i%5 == 0 {
			f = 1
		}
		b = binary.LittleEndian.AppendUint32(b, math.Float32bits(f))
	}
	for i := 0; i < 3; i++ {
		b = binary.LittleEndian.AppendUint32(b, math.Float32bits(0))
	}
	b = binary.LittleEndian.AppendUint32(b, parent)
	return b
}
