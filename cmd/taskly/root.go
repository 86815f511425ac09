// Command taskly is a single-user task tracker persisting to a JSON
// document in the per-user state directory.
package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/steveyegge/taskly/internal/clock"
	"github.com/steveyegge/taskly/internal/config"
	"github.com/steveyegge/taskly/internal/logging"
	"github.com/steveyegge/taskly/internal/store"
	"github.com/steveyegge/taskly/internal/taskly"
)

// Version is set via ldflags at build time.
var Version = "dev"

var (
	flagStateDir string
	flagVerbose  bool
)

var rootCmd = &cobra.Command{
	Use:     "taskly",
	Short:   "Manage tasks",
	Version: Version,
	Long: `Taskly tracks personal tasks in a local JSON document.

Tasks are stored in a per-user state directory and carry a
description, a status (Todo, Complete, or any label you choose),
and creation/update timestamps. One command runs per invocation.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		// A bare invocation is a deliberate no-op.
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagStateDir, "state-dir", "",
		"override the state directory")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false,
		"enable debug logging")
}

// env carries the per-invocation dependencies resolved before a
// command runs: settings, the state directory, and the diagnostic
// logger.
type env struct {
	cfg    config.Config
	dir    string
	logger *log.Logger
}

func newEnv() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	override := flagStateDir
	if override == "" {
		override = cfg.StateDir
	}
	dir, err := taskly.StateDir(override)
	if err != nil {
		return nil, err
	}

	logger := logging.New(logging.Options{
		Level:   cfg.LogLevel,
		Verbose: flagVerbose,
		File:    cfg.LogFile,
		Dir:     dir,
	})

	return &env{cfg: cfg, dir: dir, logger: logger}, nil
}

func (e *env) openStore() (*store.Store, error) {
	return store.Open(e.dir, clock.System{})
}

func parseID(arg string) (uint64, error) {
	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid task id %q", arg)
	}
	return id, nil
}
