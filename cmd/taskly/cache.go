package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/steveyegge/taskly/internal/cache"
	"github.com/steveyegge/taskly/internal/store"
	"github.com/steveyegge/taskly/internal/ui"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Query cache management",
	Long: `Manage the SQLite query cache.

The cache mirrors the task document into a local SQLite database in
the state directory so external tooling can query tasks with SQL.
The JSON document remains the source of truth; the cache is rebuilt
from it on every sync.`,
}

var cacheSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Rebuild the query cache from the task document",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newEnv()
		if err != nil {
			return err
		}

		st, err := env.openStore()
		if err != nil {
			return err
		}

		db, err := cache.Open(filepath.Join(env.dir, env.cfg.CacheFile))
		if err != nil {
			return err
		}
		defer db.Close()

		if err := db.InitSchema(); err != nil {
			return err
		}
		if err := db.Rebuild(st.List(store.StatusTodo, true)); err != nil {
			return err
		}

		count, err := db.TaskCount()
		if err != nil {
			return err
		}
		fmt.Printf("Cached %d tasks in %s\n", count, db.Path())
		return nil
	},
}

var cacheStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show query cache status",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newEnv()
		if err != nil {
			return err
		}

		path := filepath.Join(env.dir, env.cfg.CacheFile)
		info, err := os.Stat(path)
		if os.IsNotExist(err) {
			fmt.Printf("%s Cache not initialized; run 'taskly cache sync' to create it\n", ui.Warn("!"))
			return nil
		}
		if err != nil {
			return fmt.Errorf("stat cache file: %w", err)
		}

		db, err := cache.Open(path)
		if err != nil {
			return err
		}
		defer db.Close()

		count, err := db.TaskCount()
		if err != nil {
			return err
		}
		byStatus, err := db.CountByStatus()
		if err != nil {
			return err
		}

		fmt.Printf("Location: %s\n", path)
		fmt.Printf("Size: %d bytes\n", info.Size())
		fmt.Printf("Tasks: %d\n", count)
		for status, n := range byStatus {
			fmt.Printf("  %s: %d\n", status, n)
		}
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheSyncCmd)
	cacheCmd.AddCommand(cacheStatusCmd)
	rootCmd.AddCommand(cacheCmd)
}
