package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"taskquest/internal/application"
	"taskquest/internal/application/commands"
	"taskquest/internal/domain"
)

var timerNoComplete bool

var timerCmd = &cobra.Command{
	Use:   "timer <id>",
	Short: "Time a task in the foreground",
	Long: `Run a stopwatch for a task until interrupted with Ctrl+C. The task is
then completed and points are awarded, unless --no-complete is given.
Timers are not saved.

Examples:
  taskquest-cli timer 0192f3c4-...
  taskquest-cli timer 0192f3c4-... --no-complete`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := GetServices()
		id := args[0]

		task, err := commands.NewGetTaskCommand(svc.Tasks, id).Execute(cmd.Context())
		if err != nil {
			return err
		}
		if task.Completed {
			return &application.TaskError{ID: id, Err: application.ErrTaskCompleted}
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Timing %q, press Ctrl+C to stop\n", task.Description)
		fmt.Fprintf(out, "\r%s", domain.FormatClock(0))
		elapsed := svc.Timers.Run(ctx, task.ID, ticker.C, func(elapsed int) {
			fmt.Fprintf(out, "\r%s", domain.FormatClock(elapsed))
		})
		fmt.Fprintf(out, "\nStopped after %s\n", domain.FormatClock(elapsed))
		svc.Logger.Debug("timer stopped", "id", task.ID, "elapsed", elapsed)

		if timerNoComplete {
			return nil
		}

		completeCmd := commands.NewCompleteTaskCommand(svc.Tasks, svc.Stats, svc.Timers, task.ID, svc.PointsPerTask)
		result, err := completeCmd.Execute(context.Background())
		if err != nil {
			return err
		}
		printCompletion(cmd, result)
		return nil
	},
}

func init() {
	timerCmd.Flags().BoolVar(&timerNoComplete, "no-complete", false, "stop without completing the task")
	rootCmd.AddCommand(timerCmd)
}
