package main

import (
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <description>",
	Short: "Create task",
	Long: `Create a new task with the given description.

The task starts in the Todo status and is assigned the next unused id.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newEnv()
		if err != nil {
			return err
		}

		st, err := env.openStore()
		if err != nil {
			return err
		}

		id, err := st.Add(args[0])
		if err != nil {
			return err
		}
		env.logger.Debug("task created", "id", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
