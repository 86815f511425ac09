package store

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// CounterName is the filename of the id counter inside the state
// directory.
const CounterName = "next_id.txt"

// Allocator issues strictly increasing task ids backed by a plain-text
// counter file holding the last-issued id. Deleted ids are never
// reused and gaps are never filled.
type Allocator struct {
	path string
}

// NewAllocator returns an allocator persisting to the given file.
// The file is created lazily on the first Next call.
func NewAllocator(path string) *Allocator {
	return &Allocator{path: path}
}

// Last returns the most recently issued id, or 0 if none was issued
// yet.
func (a *Allocator) Last() (uint64, error) {
	data, err := os.ReadFile(a.path)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", a.path, err)
	}

	last, err := strconv.ParseUint(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w: %v", a.path, ErrCorrupt, err)
	}
	return last, nil
}

// Next increments the persisted counter and returns the new id. The
// counter file is rewritten before the id is handed out, so an id is
// never issued twice even if the caller's own write fails afterwards.
func (a *Allocator) Next() (uint64, error) {
	last, err := a.Last()
	if err != nil {
		return 0, err
	}

	id := last + 1
	if err := os.WriteFile(a.path, []byte(strconv.FormatUint(id, 10)), 0o644); err != nil {
		return 0, fmt.Errorf("write %s: %w", a.path, err)
	}
	return id, nil
}
