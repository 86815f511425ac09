package main

import (
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete task",
	Long:  `Remove a task. Its id is never reused.`,
	Args:  cobra.ExactArgs(1),
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

		if err := st.Delete(id); err != nil {
			return err
		}
		env.logger.Debug("task deleted", "id", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
