package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/steveyegge/taskly/internal/export"
	"github.com/steveyegge/taskly/internal/store"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the task set to stdout",
	Long: `Write every task to stdout in a machine-readable format.

Supported formats: json (default), yaml, toml. The export carries the
display form of each status, so consumers do not need to understand
the task document's internal encoding.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := export.ParseFormat(exportFormat)
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

		entries := st.List(store.StatusTodo, true)
		return export.Write(os.Stdout, entries, format)
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "export format (json|yaml|toml)")
	rootCmd.AddCommand(exportCmd)
}
