package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"taskquest/internal/application/commands"
)

var completeCmd = &cobra.Command{
	Use:   "complete <id>",
	Short: "Complete a task and earn points",
	Long: `Mark a task completed and award points for it. The task stays in the
list and can no longer be edited or completed again.

Examples:
  taskquest-cli complete 0192f3c4-...`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		svc := GetServices()
		completeCmd := commands.NewCompleteTaskCommand(svc.Tasks, svc.Stats, svc.Timers, args[0], svc.PointsPerTask)
		result, err := completeCmd.Execute(ctx)
		if err != nil {
			return err
		}

		printCompletion(cmd, result)
		return nil
	},
}

func printCompletion(cmd *cobra.Command, result *commands.CompleteResult) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, result.Message)
	if result.LeveledUp {
		fmt.Fprintf(out, "Level up! You reached level %d\n", result.Stats.Level)
	}
}

func init() {
	rootCmd.AddCommand(completeCmd)
}
