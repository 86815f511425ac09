// Package watch emits a notification whenever the task document
// changes on disk.
package watch

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// DocumentWatcher watches the state directory and reports changes to
// the task document. The directory is watched rather than the file so
// atomic replace-by-rename (and initial creation) is observed.
type DocumentWatcher struct {
	watcher *fsnotify.Watcher
	changes chan struct{}
	errors  chan error
	done    chan struct{}
	wg      sync.WaitGroup
	mu      sync.Mutex
	running bool
	target  string
}

// New creates a watcher for the named document inside dir. Start must
// be called before events are emitted.
func New() (*DocumentWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}

	return &DocumentWatcher{
		watcher: watcher,
		changes: make(chan struct{}, 1),
		errors:  make(chan error, 10),
		done:    make(chan struct{}),
	}, nil
}

// Start begins watching dir for changes to the file named doc.
func (w *DocumentWatcher) Start(dir, doc string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return fmt.Errorf("watcher already running")
	}

	w.target = doc
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("watch state directory %s: %w", dir, err)
	}

	w.running = true
	w.wg.Add(1)
	go w.processEvents()
	return nil
}

// Stop stops the watcher and waits for the event loop to exit.
func (w *DocumentWatcher) Stop() error {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = false
	w.mu.Unlock()

	close(w.done)
	if err := w.watcher.Close(); err != nil {
		return fmt.Errorf("close watcher: %w", err)
	}
	w.wg.Wait()

	close(w.changes)
	close(w.errors)
	return nil
}

// Changes returns the channel signaling document changes. Consecutive
// changes may be coalesced into a single notification.
func (w *DocumentWatcher) Changes() <-chan struct{} {
	return w.changes
}

// Errors returns the channel carrying watcher errors.
func (w *DocumentWatcher) Errors() <-chan error {
	return w.errors
}

func (w *DocumentWatcher) processEvents() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			// Non-blocking send: a pending notification already
			// covers this change.
			select {
			case w.changes <- struct{}{}:
			default:
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			case <-w.done:
				return
			}
		}
	}
}

func (w *DocumentWatcher) relevant(event fsnotify.Event) bool {
	if filepath.Base(event.Name) != w.target {
		return false
	}
	return event.Has(fsnotify.Create) || event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
}
