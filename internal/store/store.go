package store

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/steveyegge/taskly/internal/clock"
)

// Store is the loaded task collection for one state directory. All
// tasks are held in memory for the lifetime of the invocation; every
// successful mutation rewrites the full document.
type Store struct {
	path  string
	alloc *Allocator
	clock clock.Clock
	tasks map[uint64]Task
}

// Entry pairs a task with its id for listing.
type Entry struct {
	ID   uint64
	Task Task
}

// Open loads the task document from dir, or starts empty when no
// document exists yet. The clock is used to timestamp mutations.
func Open(dir string, clk clock.Clock) (*Store, error) {
	path := filepath.Join(dir, DocumentName)
	doc, err := loadDocument(path)
	if err != nil {
		return nil, err
	}

	return &Store{
		path:  path,
		alloc: NewAllocator(filepath.Join(dir, CounterName)),
		clock: clk,
		tasks: doc.Tasks,
	}, nil
}

// Add creates a Todo task with the given description, persists the
// document, and returns the newly issued id. Empty descriptions are
// accepted.
func (s *Store) Add(description string) (uint64, error) {
	id, err := s.alloc.Next()
	if err != nil {
		return 0, err
	}

	now := s.clock.Now()
	s.tasks[id] = Task{
		Description: description,
		Status:      StatusTodo,
		Created:     now,
		Updated:     now,
	}
	if err := s.save(); err != nil {
		return 0, err
	}
	return id, nil
}

// Update replaces the description of an existing task, leaving status
// and creation time untouched.
func (s *Store) Update(id uint64, description string) error {
	task, err := s.lookup(id)
	if err != nil {
		return err
	}

	task.Description = description
	task.Updated = s.clock.Now()
	s.tasks[id] = task
	return s.save()
}

// Delete removes a task from the store.
func (s *Store) Delete(id uint64) error {
	if _, err := s.lookup(id); err != nil {
		return err
	}

	delete(s.tasks, id)
	return s.save()
}

// SetStatus replaces the status of an existing task, leaving the
// description and creation time untouched.
func (s *Store) SetStatus(id uint64, status Status) error {
	task, err := s.lookup(id)
	if err != nil {
		return err
	}

	task.Status = status
	task.Updated = s.clock.Now()
	s.tasks[id] = task
	return s.save()
}

// List returns the tasks whose status equals filter, or every task
// when all is set, ordered by ascending id. Listing never writes.
func (s *Store) List(filter Status, all bool) []Entry {
	entries := make([]Entry, 0, len(s.tasks))
	for id, task := range s.tasks {
		if all || task.Status == filter {
			entries = append(entries, Entry{ID: id, Task: task})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries
}

// Get returns the task with the given id, if present.
func (s *Store) Get(id uint64) (Task, bool) {
	task, ok := s.tasks[id]
	return task, ok
}

// Len returns the number of tasks in the store.
func (s *Store) Len() int {
	return len(s.tasks)
}

// lookup fetches a task for mutation. A missing id, including the case
// where the document was never created, reports ErrNotFound.
func (s *Store) lookup(id uint64) (Task, error) {
	task, ok := s.tasks[id]
	if !ok {
		return Task{}, fmt.Errorf("no task with id %d: %w", id, ErrNotFound)
	}
	return task, nil
}

func (s *Store) save() error {
	return document{Tasks: s.tasks}.save(s.path)
}
