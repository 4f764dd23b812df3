package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"taskquest/internal/application/commands"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a task",
	Long: `Delete a task by its ID.

Warning: This operation cannot be undone. Points already earned
from the task are kept.

Examples:
  taskquest-cli delete 0192f3c4-...`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		ctx := context.Background()

		svc := GetServices()
		deleteCmd := commands.NewDeleteCommand(svc.Tasks, svc.Timers, id)
		result, err := deleteCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
