package cache

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/steveyegge/taskly/internal/store"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := db.InitSchema(); err != nil {
		t.Fatalf("InitSchema: %v", err)
	}
	return db
}

func sampleEntries() []store.Entry {
	now := time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC)
	return []store.Entry{
		{ID: 1, Task: store.Task{Description: "a", Status: store.StatusTodo, Created: now, Updated: now}},
		{ID: 2, Task: store.Task{Description: "b", Status: store.StatusComplete, Created: now, Updated: now}},
		{ID: 3, Task: store.Task{Description: "c", Status: store.StatusTodo, Created: now, Updated: now}},
	}
}

func TestInitSchemaIdempotent(t *testing.T) {
	db := openTestDB(t)
	if err := db.InitSchema(); err != nil {
		t.Fatalf("second InitSchema: %v", err)
	}
}

func TestRebuildAndCount(t *testing.T) {
	db := openTestDB(t)

	if err := db.Rebuild(sampleEntries()); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}

	count, err := db.TaskCount()
	if err != nil {
		t.Fatalf("TaskCount: %v", err)
	}
	if count != 3 {
		t.Errorf("TaskCount = %d, want 3", count)
	}

	byStatus, err := db.CountByStatus()
	if err != nil {
		t.Fatalf("CountByStatus: %v", err)
	}
	if byStatus["Todo"] != 2 || byStatus["Complete"] != 1 {
		t.Errorf("CountByStatus = %v, want Todo:2 Complete:1", byStatus)
	}
}

func TestRebuildReplacesPreviousContents(t *testing.T) {
	db := openTestDB(t)

	if err := db.Rebuild(sampleEntries()); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}
	if err := db.Rebuild(sampleEntries()[:1]); err != nil {
		t.Fatalf("second Rebuild: %v", err)
	}

	count, err := db.TaskCount()
	if err != nil {
		t.Fatalf("TaskCount: %v", err)
	}
	if count != 1 {
		t.Errorf("TaskCount after rebuild = %d, want 1", count)
	}
}

func TestRebuildEmptySet(t *testing.T) {
	db := openTestDB(t)

	if err := db.Rebuild(sampleEntries()); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}
	if err := db.Rebuild(nil); err != nil {
		t.Fatalf("Rebuild(nil): %v", err)
	}

	count, err := db.TaskCount()
	if err != nil {
		t.Fatalf("TaskCount: %v", err)
	}
	if count != 0 {
		t.Errorf("TaskCount = %d, want 0", count)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}
