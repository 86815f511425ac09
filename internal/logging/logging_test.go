package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func TestLevelSelection(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want log.Level
	}{
		{"default", Options{}, log.WarnLevel},
		{"debug", Options{Level: "debug"}, log.DebugLevel},
		{"info", Options{Level: "info"}, log.InfoLevel},
		{"error", Options{Level: "error"}, log.ErrorLevel},
		{"unknown falls back", Options{Level: "chatty"}, log.WarnLevel},
		{"verbose wins", Options{Level: "error", Verbose: true}, log.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := New(tt.opts)
			if got := logger.GetLevel(); got != tt.want {
				t.Errorf("level = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFileSinkCreatesLogFile(t *testing.T) {
	dir := t.TempDir()
	logger := New(Options{Level: "info", File: "taskly.log", Dir: dir})

	logger.Info("hello")

	if _, err := os.Stat(filepath.Join(dir, "taskly.log")); err != nil {
		t.Errorf("log file not created: %v", err)
	}
}
