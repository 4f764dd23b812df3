package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"taskquest/internal/application/commands"
	"taskquest/internal/domain"
)

var (
	listJSON    bool
	listPending bool
	showJSON    bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long: `List tasks in the order they were added.

Examples:
  taskquest-cli list
  taskquest-cli list --pending
  taskquest-cli list --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		listCmd := commands.NewListTasksCommand(GetServices().Tasks, listPending)
		tasks, err := listCmd.Execute(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if listJSON {
			return writeJSON(out, tasks)
		}
		if len(tasks) == 0 {
			fmt.Fprintln(out, "No tasks.")
			return nil
		}
		today := time.Now()
		for _, t := range tasks {
			fmt.Fprintln(out, formatTaskLine(t, today))
		}
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a single task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		task, err := commands.NewGetTaskCommand(GetServices().Tasks, args[0]).Execute(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if showJSON {
			return writeJSON(out, task)
		}
		status := "pending"
		if task.Completed {
			status = "completed"
		}
		fmt.Fprintf(out, "ID:          %s\n", task.ID)
		fmt.Fprintf(out, "Description: %s\n", task.Description)
		fmt.Fprintf(out, "Deadline:    %s\n", task.Deadline)
		fmt.Fprintf(out, "Urgency:     %s\n", task.Urgency)
		fmt.Fprintf(out, "Importance:  %s\n", task.Importance)
		fmt.Fprintf(out, "Status:      %s\n", status)
		return nil
	},
}

func formatTaskLine(t domain.Task, today time.Time) string {
	box := "[ ]"
	if t.Completed {
		box = "[x]"
	}
	line := fmt.Sprintf("%s %s  %s  U:%-6s I:%-6s %s",
		box, t.ID, t.Deadline, t.Urgency, t.Importance, t.Description)
	if t.Overdue(today) {
		line += "  (overdue)"
	}
	return line
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "print tasks as JSON")
	listCmd.Flags().BoolVar(&listPending, "pending", false, "skip completed tasks")
	showCmd.Flags().BoolVar(&showJSON, "json", false, "print the task as JSON")
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
}
