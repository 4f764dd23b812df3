package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"taskquest/internal/application/commands"
	"taskquest/internal/ports"
)

var (
	resetTasksOnly bool
	resetStatsOnly bool
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear all tasks and stats",
	Long: `Clear the task list and reset points, level and streak.

Warning: This operation cannot be undone.

Examples:
  taskquest-cli reset
  taskquest-cli reset --tasks-only`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if resetTasksOnly && resetStatsOnly {
			return fmt.Errorf("--tasks-only and --stats-only cannot be combined")
		}

		svc := GetServices()
		var tasks ports.TaskRepository = svc.Tasks
		var stats ports.StatsRepository = svc.Stats
		if resetTasksOnly {
			stats = nil
		}
		if resetStatsOnly {
			tasks = nil
		}

		message, err := commands.NewResetCommand(tasks, stats).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), message)
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetTasksOnly, "tasks-only", false, "only clear the task list")
	resetCmd.Flags().BoolVar(&resetStatsOnly, "stats-only", false, "only reset the stats")
	rootCmd.AddCommand(resetCmd)
}
