// Package logging configures the diagnostic logger shared by the CLI
// commands. User-facing output goes to stdout; this logger is for
// troubleshooting only.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls logger construction.
type Options struct {
	// Level is one of debug, info, warn, error. Unknown values fall
	// back to warn.
	Level string

	// Verbose forces the level down to debug.
	Verbose bool

	// File, when non-empty, duplicates log output into a rotating
	// file. Relative paths are resolved against Dir.
	File string

	// Dir is the state directory used to anchor relative File paths.
	Dir string
}

// New builds the diagnostic logger. Output always goes to stderr, plus
// the rotating file sink when configured.
func New(opts Options) *log.Logger {
	var w io.Writer = os.Stderr
	if opts.File != "" {
		path := opts.File
		if !filepath.IsAbs(path) && opts.Dir != "" {
			path = filepath.Join(opts.Dir, path)
		}
		w = io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   path,
			MaxSize:    5, // megabytes
			MaxBackups: 2,
		})
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "taskly",
	})
	logger.SetLevel(parseLevel(opts))
	return logger
}

func parseLevel(opts Options) log.Level {
	if opts.Verbose {
		return log.DebugLevel
	}
	switch opts.Level {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.WarnLevel
	}
}
