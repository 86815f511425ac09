package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/steveyegge/taskly/internal/store"
	"github.com/steveyegge/taskly/internal/ui"
)

var listAll bool

var listCmd = &cobra.Command{
	Use:   "list [status]",
	Short: "List tasks",
	Long: `List tasks matching a status.

Without arguments only Todo tasks are shown. Pass a status to filter
by it, or --all to show every task regardless of status.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newEnv()
		if err != nil {
			return err
		}

		st, err := env.openStore()
		if err != nil {
			return err
		}

		filter := store.StatusTodo
		if len(args) == 1 {
			filter = store.ParseStatus(args[0])
		}

		r := ui.NewRenderer(os.Stdout, env.cfg.Color)
		r.Tasks(st.List(filter, listAll))
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVarP(&listAll, "all", "a", false, "show every task regardless of status")
	rootCmd.AddCommand(listCmd)
}
