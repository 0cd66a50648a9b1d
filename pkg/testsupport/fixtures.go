// Package testsupport holds fixture and golden file helpers shared by the
// package tests.
package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestdataDir returns the testdata directory next to the calling test file,
// so fixtures resolve regardless of the working directory.
func TestdataDir() string {
	return testdataDir(2)
}

func testdataDir(skip int) string {
	_, filename, _, ok := runtime.Caller(skip)
	if !ok {
		return "testdata"
	}
	return filepath.Join(filepath.Dir(filename), "testdata")
}

// ReadFixture reads a file under the caller's testdata directory.
func ReadFixture(t *testing.T, elem ...string) []byte {
	t.Helper()
	path := filepath.Join(append([]string{testdataDir(2)}, elem...)...)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// CompareGoldenJSON checks got against the JSON golden file name in the
// caller's testdata directory. Both sides are decoded first, so indentation
// does not matter.
func CompareGoldenJSON(t *testing.T, name string, got []byte) {
	t.Helper()
	path := filepath.Join(testdataDir(2), name)
	if WriteMaybeGolden(t, path, got) {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	var want, have any
	if err := json.Unmarshal(data, &want); err != nil {
		t.Fatalf("decode golden %s: %v", name, err)
	}
	if err := json.Unmarshal(got, &have); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if diff := cmp.Diff(want, have); diff != "" {
		t.Fatalf("golden %s mismatch (-want +got):\n%s", name, diff)
	}
}
