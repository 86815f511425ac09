package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherDetectsDocumentWrite(t *testing.T) {
	dir := t.TempDir()

	w, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := w.Start(dir, "tasks.json"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer func() { _ = w.Stop() }()

	if err := os.WriteFile(filepath.Join(dir, "tasks.json"), []byte(`{"tasks":{}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-w.Changes():
	case <-time.After(2 * time.Second):
		t.Fatal("no change notification after document write")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()

	w, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := w.Start(dir, "tasks.json"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer func() { _ = w.Stop() }()

	if err := os.WriteFile(filepath.Join(dir, "next_id.txt"), []byte("3"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-w.Changes():
		t.Fatal("notified for unrelated file")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherDetectsRenameReplace(t *testing.T) {
	dir := t.TempDir()
	tmp := filepath.Join(dir, "tasks.json.tmp")
	doc := filepath.Join(dir, "tasks.json")

	w, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := w.Start(dir, "tasks.json"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer func() { _ = w.Stop() }()

	if err := os.WriteFile(tmp, []byte(`{"tasks":{}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(tmp, doc); err != nil {
		t.Fatal(err)
	}

	select {
	case <-w.Changes():
	case <-time.After(2 * time.Second):
		t.Fatal("no change notification after rename replace")
	}
}

func TestWatcherStopTwice(t *testing.T) {
	w, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := w.Start(t.TempDir(), "tasks.json"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := w.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if err := w.Stop(); err != nil {
		t.Fatalf("second Stop: %v", err)
	}
}

func TestWatcherRejectsDoubleStart(t *testing.T) {
	w, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	dir := t.TempDir()
	if err := w.Start(dir, "tasks.json"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer func() { _ = w.Stop() }()

	if err := w.Start(dir, "tasks.json"); err == nil {
		t.Error("second Start succeeded, want error")
	}
}
