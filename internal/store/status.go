package store

import (
	"encoding/json"
	"fmt"
	"strings"
)

type statusKind int

const (
	kindTodo statusKind = iota
	kindComplete
	kindOther
)

// Status is the task's classification: Todo, Complete, or a free-text
// label for anything else. The zero value is Todo.
//
// Status is comparable; two Other statuses are equal only when their
// labels match exactly.
type Status struct {
	kind  statusKind
	label string
}

// StatusTodo is the status assigned to newly created tasks.
var StatusTodo = Status{kind: kindTodo}

// StatusComplete marks a finished task.
var StatusComplete = Status{kind: kindComplete}

// OtherStatus returns a free-text status carrying the given label verbatim.
func OtherStatus(label string) Status {
	return Status{kind: kindOther, label: label}
}

// ParseStatus converts user input into a Status. Parsing is total: the
// input is lower-cased then trimmed, "todo" and "complete" map to the
// fixed variants, and everything else becomes a free-text status
// carrying the normalized string.
func ParseStatus(s string) Status {
	switch norm := strings.TrimSpace(strings.ToLower(s)); norm {
	case "todo":
		return StatusTodo
	case "complete":
		return StatusComplete
	default:
		return OtherStatus(norm)
	}
}

// IsTodo reports whether the status is the Todo variant.
func (s Status) IsTodo() bool { return s.kind == kindTodo }

// IsComplete reports whether the status is the Complete variant.
func (s Status) IsComplete() bool { return s.kind == kindComplete }

// Label returns the free-text label and true for an Other status.
func (s Status) Label() (string, bool) {
	if s.kind != kindOther {
		return "", false
	}
	return s.label, true
}

// String renders the status the way list output shows it.
func (s Status) String() string {
	switch s.kind {
	case kindComplete:
		return "Complete"
	case kindOther:
		return s.label
	default:
		return "Todo"
	}
}

// MarshalJSON encodes the status in its wire form: the fixed variants
// as the strings "Todo" and "Complete", free-text statuses as
// {"Other": label}.
func (s Status) MarshalJSON() ([]byte, error) {
	switch s.kind {
	case kindOther:
		return json.Marshal(map[string]string{"Other": s.label})
	case kindComplete:
		return json.Marshal("Complete")
	default:
		return json.Marshal("Todo")
	}
}

// UnmarshalJSON decodes the wire form produced by MarshalJSON. Any
// other shape is rejected so a damaged document surfaces as corrupt
// instead of silently losing the status.
func (s *Status) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err == nil {
		switch tag {
		case "Todo":
			*s = StatusTodo
			return nil
		case "Complete":
			*s = StatusComplete
			return nil
		default:
			return fmt.Errorf("unknown status tag %q", tag)
		}
	}

	var tagged map[string]string
	if err := json.Unmarshal(data, &tagged); err != nil {
		return fmt.Errorf("invalid status value: %s", string(data))
	}
	label, ok := tagged["Other"]
	if !ok || len(tagged) != 1 {
		return fmt.Errorf("invalid status object: %s", string(data))
	}
	*s = OtherStatus(label)
	return nil
}
