package output

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNextNameOnEmptyDirReturnsFalse(t *testing.T) {
	dir := t.TempDir()
	_, ok := NextName(dir)
	if ok {
		t.Errorf("expected NextName on an empty directory to return false")
	}
}

func TestNextNameOnMissingDirReturnsFalse(t *testing.T) {
	_, ok := NextName(filepath.Join(t.TempDir(), "does-not-exist"))
	if ok {
		t.Errorf("expected NextName on a missing directory to return false")
	}
}

func TestNextNameIncrementsLargestStem(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"001.png", "002.png", "005.exr"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatalf("setup: %v", err)
		}
	}

	got, ok := NextName(dir)
	if !ok {
		t.Fatalf("expected NextName to succeed")
	}
	if got != "006" {
		t.Errorf("NextName = %q, want %q", got, "006")
	}
}

func TestNextNameFailsOnNonNumericStem(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "readme.txt"), nil, 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	_, ok := NextName(dir)
	if ok {
		t.Errorf("expected a non-numeric stem to make NextName fail rather than guess")
	}
}
