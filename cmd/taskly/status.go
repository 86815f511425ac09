package main

import (
	"github.com/spf13/cobra"

	"github.com/steveyegge/taskly/internal/store"
)

var statusCmd = &cobra.Command{
	Use:   "status <id> <status>",
	Short: "Mark task as finished/to-do",
	Long: `Change the status of an existing task.

"todo" and "complete" map to the fixed statuses; any other value
becomes a free-text status carrying the lower-cased, trimmed input.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		env, err := newEnv()
		if err != nil {
			return err
		}

		st, err := env.openStore()
		if err != nil {
			return err
		}

		status := store.ParseStatus(args[1])
		if err := st.SetStatus(id, status); err != nil {
			return err
		}
		env.logger.Debug("task status changed", "id", id, "status", status.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
