package codebase

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileWatcherScan(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "a.php")
	if err := os.WriteFile(path, []byte("<?php $a = 1;"), 0o644); err != nil {
		t.Fatal(err)
	}

	cb := New(root)
	w := NewFileWatcher(cb)

	w.scan()
	if cb.GetFile(path) == nil {
		t.Fatal("file not picked up by initial scan")
	}

	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	w.scan()
	if cb.GetFile(path) != nil {
		t.Error("file still in codebase after deletion")
	}
}

func TestFileWatcherIgnoresExcludedDirs(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "vendor", "dep.php")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("<?php"), 0o644); err != nil {
		t.Fatal(err)
	}

	cb := New(root)
	w := NewFileWatcher(cb)
	w.scan()

	if cb.GetFile(path) != nil {
		t.Error("excluded file was scanned")
	}
}
