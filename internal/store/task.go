// Package store holds the task records for one user and persists them
// to a single JSON document, with task ids issued by a sidecar counter
// file. The whole document is loaded at open and rewritten after every
// successful mutation; reads never touch disk.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// DocumentName is the filename of the task document inside the state
// directory.
const DocumentName = "tasks.json"

// ErrCorrupt is wrapped into errors returned when an existing task
// document cannot be parsed.
var ErrCorrupt = errors.New("task document is corrupt")

// ErrNotFound is wrapped into errors returned by Update, Delete and
// SetStatus when the referenced task does not exist.
var ErrNotFound = errors.New("task not found")

// Task is a single trackable unit of work.
type Task struct {
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	Created     time.Time `json:"created"`
	Updated     time.Time `json:"updated"`
}

// document is the on-disk shape of tasks.json. Map keys serialize as
// decimal strings, matching the documents written by earlier versions.
type document struct {
	Tasks map[uint64]Task `json:"tasks"`
}

// loadDocument reads and parses the task document at path. A missing
// file yields an empty document.
func loadDocument(path string) (document, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return document{Tasks: make(map[uint64]Task)}, nil
	}
	if err != nil {
		return document{}, fmt.Errorf("read %s: %w", path, err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return document{}, fmt.Errorf("parse %s: %w: %v", path, ErrCorrupt, err)
	}
	if doc.Tasks == nil {
		doc.Tasks = make(map[uint64]Task)
	}
	return doc, nil
}

// save pretty-prints the document and replaces the file at path,
// writing through a temp file so a crash mid-write cannot truncate the
// previous contents.
func (d document) save(path string) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal task document: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
