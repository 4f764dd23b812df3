package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"taskquest/internal/application/commands"
)

var (
	addDeadline   string
	addUrgency    string
	addImportance string
)

var addCmd = &cobra.Command{
	Use:   "add <description>",
	Short: "Add a task",
	Long: `Add a task to the end of the list.

Urgency and importance are Low, Medium or High and default to Low.

Examples:
  taskquest-cli add "Write Report" --deadline 2025-01-10 --urgency High --importance Medium
  taskquest-cli add Groceries -d 2025-01-11`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		addCmd := commands.NewAddTaskCommand(GetServices().Tasks,
			strings.Join(args, " "), addDeadline, addUrgency, addImportance)
		result, err := addCmd.Execute(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, result.Message)
		fmt.Fprintf(out, "ID: %s\n", result.Task.ID)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&addDeadline, "deadline", "d", "", "due date as YYYY-MM-DD (required)")
	addCmd.Flags().StringVarP(&addUrgency, "urgency", "u", "", "Low, Medium or High")
	addCmd.Flags().StringVarP(&addImportance, "importance", "i", "", "Low, Medium or High")
	_ = addCmd.MarkFlagRequired("deadline")
	rootCmd.AddCommand(addCmd)
}
