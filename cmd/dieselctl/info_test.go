package main

import (
	"strings"
	"testing"
)

func TestInfoCommand(t *testing.T) {
	path := buildModelFile(t,
		testSection{tag: testTagObject3D, id: 1, body: object3DBody(0x9ec3d2fe55aacff3, 0)},
		testSection{tag: testTagObject3D, id: 2, body: object3DBody(0x35fa3fb92dbd786c, 1)},
	)

	resetFlags()
	out, err := captureOutput(t, func() error {
		return runInfo([]string{path})
	})
	if err != nil {
		t.Fatalf("runInfo: %v", err)
	}
	for _, want := range []string{"Sections: 2", "Nodes: 2", "Locators: 2"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestInfoCommandJSON(t *testing.T) {
	path := buildModelFile(t,
		testSection{tag: testTagObject3D, id: 1, body: object3DBody(0x9ec3d2fe55aacff3, 0)},
	)

	resetFlags()
	jsonOut = true
	out, err := captureOutput(t, func() error {
		return runInfo([]string{path})
	})
	if err != nil {
		t.Fatalf("runInfo: %v", err)
	}
	for _, want := range []string{`"sections": 1`, `"nodes": 1`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestInfoCommandMissingFile(t *testing.T) {
	resetFlags()
	_, err := captureOutput(t, func() error {
		return runInfo([]string{"/nonexistent/test.model"})
	})
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
