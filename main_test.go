package main

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateSceneBuiltins(t *testing.T) {
	for _, name := range []string{"seven-sphere", "two-sphere", "cornell-box"} {
		s, err := createScene(name, 16.0/9.0)
		if err != nil {
			t.Errorf("createScene(%q): unexpected error %v", name, err)
		}
		if s.World == nil || s.Camera == nil {
			t.Errorf("createScene(%q) returned an incomplete scene: %+v", name, s)
		}
	}
}

func TestCreateSceneUnknownReturnsError(t *testing.T) {
	_, err := createScene("not-a-scene", 1)
	if err == nil {
		t.Errorf("expected an error for an unknown scene type")
	}
}

func TestCreateOutputDirNestsUnderSceneName(t *testing.T) {
	dir := createOutputDir("two-sphere")
	if !strings.HasPrefix(dir, "output"+string(filepath.Separator)) {
		t.Errorf("createOutputDir = %q, want it under output/", dir)
	}
	if filepath.Base(dir) != "two-sphere" {
		t.Errorf("createOutputDir base = %q, want %q", filepath.Base(dir), "two-sphere")
	}
}

func TestOutputFilenameDefaultsToOneWhenDirEmpty(t *testing.T) {
	dir := t.TempDir()
	got := outputFilename(dir, "png")
	want := filepath.Join(dir, "001.png")
	if got != want {
		t.Errorf("outputFilename on an empty dir = %q, want %q", got, want)
	}
}

func TestOutputFilenameUsesRequestedExtension(t *testing.T) {
	dir := t.TempDir()
	got := outputFilename(dir, "exr")
	if filepath.Ext(got) != ".exr" {
		t.Errorf("outputFilename extension = %q, want .exr", filepath.Ext(got))
	}
}
