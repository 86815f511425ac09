// Package ui renders task listings and status markers for terminal
// output.
package ui

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/steveyegge/taskly/internal/store"
)

// TimeLayout is the display format for created/updated timestamps.
const TimeLayout = "2006.01.02 at 15:04:05 -07:00"

var (
	accentStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	completeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	todoStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Renderer writes task listings, optionally with color.
type Renderer struct {
	w     io.Writer
	color bool
}

// NewRenderer builds a renderer for w. Mode is auto, always, or never;
// auto enables color only on a terminal that supports it and when
// NO_COLOR is unset.
func NewRenderer(w io.Writer, mode string) *Renderer {
	color := false
	switch mode {
	case "always":
		color = true
	case "never":
		color = false
	default:
		if f, ok := w.(*os.File); ok && f == os.Stdout {
			color = termenv.EnvColorProfile() != termenv.Ascii
		}
	}
	return &Renderer{w: w, color: color}
}

// Task prints one task in the five-line list format, followed by a
// blank separator line.
func (r *Renderer) Task(id uint64, task store.Task) {
	fmt.Fprintf(r.w, "Id: %d\n", id)
	fmt.Fprintf(r.w, "Description: %s\n", task.Description)
	fmt.Fprintf(r.w, "Status: %s\n", r.status(task.Status))
	fmt.Fprintf(r.w, "Created: %s\n", FormatTime(task.Created))
	fmt.Fprintf(r.w, "Updated: %s\n", FormatTime(task.Updated))
	fmt.Fprintln(r.w)
}

// Tasks prints every entry in order.
func (r *Renderer) Tasks(entries []store.Entry) {
	for _, e := range entries {
		r.Task(e.ID, e.Task)
	}
}

func (r *Renderer) status(s store.Status) string {
	text := s.String()
	if !r.color {
		return text
	}
	switch {
	case s.IsComplete():
		return completeStyle.Render(text)
	case s.IsTodo():
		return todoStyle.Render(text)
	default:
		return accentStyle.Render(text)
	}
}

// Warn renders a warning marker for terminal messages.
func Warn(text string) string {
	return warnStyle.Render(text)
}

// FormatTime renders a timestamp for list output.
func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}
