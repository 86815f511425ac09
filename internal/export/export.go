// Package export serializes the task set for consumption by other
// tools.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/steveyegge/taskly/internal/store"
)

// Format selects the export serialization.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatYAML, FormatTOML:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown export format %q (expected json, yaml, or toml)", s)
	}
}

// Task is the flattened export shape of one task. The status is the
// display string, so consumers do not need to understand the tagged
// document encoding.
type Task struct {
	ID          uint64    `json:"id" yaml:"id" toml:"id"`
	Description string    `json:"description" yaml:"description" toml:"description"`
	Status      string    `json:"status" yaml:"status" toml:"status"`
	Created     time.Time `json:"created" yaml:"created" toml:"created"`
	Updated     time.Time `json:"updated" yaml:"updated" toml:"updated"`
}

// Snapshot is the top-level export document.
type Snapshot struct {
	Tasks []Task `json:"tasks" yaml:"tasks" toml:"tasks"`
}

// Build converts store entries into an export snapshot, preserving the
// entry order.
func Build(entries []store.Entry) Snapshot {
	snap := Snapshot{Tasks: make([]Task, 0, len(entries))}
	for _, e := range entries {
		snap.Tasks = append(snap.Tasks, Task{
			ID:          e.ID,
			Description: e.Task.Description,
			Status:      e.Task.Status.String(),
			Created:     e.Task.Created,
			Updated:     e.Task.Updated,
		})
	}
	return snap
}

// Write serializes the entries to w in the requested format.
func Write(w io.Writer, entries []store.Entry, format Format) error {
	snap := Build(entries)

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(snap); err != nil {
			return fmt.Errorf("encode json export: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(snap); err != nil {
			return fmt.Errorf("encode yaml export: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("close yaml encoder: %w", err)
		}
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(snap); err != nil {
			return fmt.Errorf("encode toml export: %w", err)
		}
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
	return nil
}
