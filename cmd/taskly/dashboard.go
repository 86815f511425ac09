package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/steveyegge/taskly/internal/clock"
	"github.com/steveyegge/taskly/internal/dashboard"
	"github.com/steveyegge/taskly/internal/store"
	"github.com/steveyegge/taskly/internal/watch"
)

var dashboardAddr string

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Serve a read-only live view of the task set",
	Long: `Start an HTTP server with a live view of the task set.

Endpoints:
  /tasks   current task snapshot as JSON
  /ws      WebSocket pushing a fresh snapshot on every change
  /health  server health

The server only reads the task document; it never mutates state. Run
taskly commands from another terminal and watch updates arrive.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newEnv()
		if err != nil {
			return err
		}

		addr := dashboardAddr
		if addr == "" {
			addr = env.cfg.DashboardAddr
		}

		snapshot := func() ([]store.Entry, error) {
			st, err := store.Open(env.dir, clock.System{})
			if err != nil {
				return nil, err
			}
			return st.List(store.StatusTodo, true), nil
		}

		srv := dashboard.NewServer(addr, snapshot, env.logger)
		if err := srv.Start(); err != nil {
			return err
		}

		watcher, err := watch.New()
		if err != nil {
			_ = srv.Stop()
			return err
		}
		if err := watcher.Start(env.dir, store.DocumentName); err != nil {
			_ = srv.Stop()
			return err
		}

		go func() {
			for range watcher.Changes() {
				srv.NotifyChange()
			}
		}()
		go func() {
			for err := range watcher.Errors() {
				env.logger.Warn("watch error", "err", err)
			}
		}()

		fmt.Printf("Dashboard listening on http://%s\n", srv.Addr())
		fmt.Println("Press Ctrl+C to stop")

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig

		if err := watcher.Stop(); err != nil {
			env.logger.Warn("failed to stop watcher", "err", err)
		}
		return srv.Stop()
	},
}

func init() {
	dashboardCmd.Flags().StringVar(&dashboardAddr, "addr", "", "listen address (host:port)")
	rootCmd.AddCommand(dashboardCmd)
}
