package filesystem

import (
	"path/filepath"
	"testing"
)

func TestCheckerExists(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "clip.mp4", 1)
	checker := NewChecker()

	if !checker.Exists(path) {
		t.Errorf("Exists(%q) = false, want true", path)
	}
	if checker.Exists(filepath.Join(dir, "missing.mp4")) {
		t.Error("Exists() on a missing file = true, want false")
	}
}

func TestCheckerDirExists(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "clip.mp4", 1)
	checker := NewChecker()

	if !checker.DirExists(dir) {
		t.Errorf("DirExists(%q) = false, want true", dir)
	}
	if checker.DirExists(path) {
		t.Error("DirExists() on a file = true, want false")
	}
	if checker.DirExists(filepath.Join(dir, "missing")) {
		t.Error("DirExists() on a missing path = true, want false")
	}
}

func TestSizerSize(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "clip.mp4", 2048)
	sizer := NewSizer()

	if got := sizer.Size(path); got != 2048 {
		t.Errorf("Size(%q) = %d, want 2048", path, got)
	}
	if got := sizer.Size(filepath.Join(dir, "missing.mp4")); got != 0 {
		t.Errorf("Size() on a missing file = %d, want 0", got)
	}
}
