package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"taskquest/internal/adapters/editor"
	"taskquest/internal/application/commands"
	"taskquest/internal/domain"
	"taskquest/internal/ports"
)

var (
	editDescription string
	editDeadline    string
	editUrgency     string
	editImportance  string
	editInEditor    bool
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Change fields of a task",
	Long: `Change fields of a task in place. Only the flags given are changed and
the task keeps its position. Completed tasks cannot be edited.

With --editor the task opens as YAML in $EDITOR and the saved fields
are applied.

Examples:
  taskquest-cli edit 0192f3c4-... --editor
  taskquest-cli edit 0192f3c4-... --deadline 2025-02-01
  taskquest-cli edit 0192f3c4-... --urgency High --importance High`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		editCmd := commands.NewEditTaskCommand(GetServices().Tasks, args[0])
		flags := cmd.Flags()
		if editInEditor {
			task, changed, err := editWithEditor(ctx, editCmd, editor.NewOpener())
			if err != nil {
				return err
			}
			if !changed && !anyChanged(flags, "description", "deadline", "urgency", "importance") {
				fmt.Fprintf(cmd.OutOrStdout(), "No changes to task: %s\n", task.Description)
				return nil
			}
		}

		if flags.Changed("description") {
			editCmd.SetDescription(editDescription)
		}
		if flags.Changed("deadline") {
			editCmd.SetDeadline(editDeadline)
		}
		if flags.Changed("urgency") {
			editCmd.SetUrgency(editUrgency)
		}
		if flags.Changed("importance") {
			editCmd.SetImportance(editImportance)
		}

		result, err := editCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

// editWithEditor sets every field the user changed in the editor and
// reports whether there was any
func editWithEditor(ctx context.Context, editCmd *commands.EditTaskCommand, ed ports.TaskEditor) (*domain.Task, bool, error) {
	task, err := commands.NewGetTaskCommand(GetServices().Tasks, editCmd.ID).Execute(ctx)
	if err != nil {
		return nil, false, err
	}

	current := domain.NewTask{
		Description: task.Description,
		Deadline:    task.Deadline,
		Urgency:     task.Urgency,
		Importance:  task.Importance,
	}
	edited, err := ed.EditTask(current)
	if err != nil {
		return nil, false, err
	}

	changed := false
	if edited.Description != current.Description {
		editCmd.SetDescription(edited.Description)
		changed = true
	}
	if edited.Deadline != current.Deadline {
		editCmd.SetDeadline(edited.Deadline)
		changed = true
	}
	if edited.Urgency != current.Urgency {
		editCmd.SetUrgency(string(edited.Urgency))
		changed = true
	}
	if edited.Importance != current.Importance {
		editCmd.SetImportance(string(edited.Importance))
		changed = true
	}
	return task, changed, nil
}

func anyChanged(flags *pflag.FlagSet, names ...string) bool {
	for _, name := range names {
		if flags.Changed(name) {
			return true
		}
	}
	return false
}

func init() {
	editCmd.Flags().StringVar(&editDescription, "description", "", "new description")
	editCmd.Flags().StringVarP(&editDeadline, "deadline", "d", "", "new due date as YYYY-MM-DD")
	editCmd.Flags().StringVarP(&editUrgency, "urgency", "u", "", "Low, Medium or High")
	editCmd.Flags().StringVarP(&editImportance, "importance", "i", "", "Low, Medium or High")
	editCmd.Flags().BoolVarP(&editInEditor, "editor", "e", false, "edit the task as YAML in $EDITOR")
	rootCmd.AddCommand(editCmd)
}
