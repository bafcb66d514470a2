package systems

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestIsLevelFile(t *testing.T) {
	tests := map[string]bool{
		"levels/stage0.txt": true,
		"stage2.TMX":        true,
		"notes.md":          false,
		"stage0.txt~":       false,
	}
	for path, want := range tests {
		if got := IsLevelFile(path); got != want {
			t.Errorf("IsLevelFile(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestLevelWatcherReportsLevelWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewLevelWatcher(dir)
	if err != nil {
		t.Fatalf("NewLevelWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.md"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	level := filepath.Join(dir, "stage0.txt")
	if err := os.WriteFile(level, []byte("#info\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if name != level {
			t.Errorf("event for %q, want %q", name, level)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no event for the level file")
	}
}

func TestLevelWatcherClose(t *testing.T) {
	w, err := NewLevelWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("NewLevelWatcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
	if _, ok := <-w.Events; ok {
		t.Error("Events still open after Close")
	}
}

func TestNewLevelWatcherMissingDir(t *testing.T) {
	if _, err := NewLevelWatcher(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("watching a missing directory succeeded")
	}
}
