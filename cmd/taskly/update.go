package main

import (
	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update <id> <description>",
	Short: "Update task",
	Long: `Replace the description of an existing task.

The status and creation time are preserved; the updated timestamp is
set to now.`,
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

		if err := st.Update(id, args[1]); err != nil {
			return err
		}
		env.logger.Debug("task updated", "id", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
}
