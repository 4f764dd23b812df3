package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"taskquest/internal/application/commands"
	"taskquest/internal/ports"
)

// RegisterWriteTools adds all task-mutating tools to the MCP server.
// Completions award pointsPerTask points each.
func RegisterWriteTools(s *server.MCPServer, tasks ports.TaskRepository, stats ports.StatsRepository, pointsPerTask int) {
	s.AddTool(addTaskTool(), addTaskHandler(tasks))
	s.AddTool(editTaskTool(), editTaskHandler(tasks))
	s.AddTool(deleteTaskTool(), deleteTaskHandler(tasks))
	s.AddTool(completeTaskTool(), completeTaskHandler(tasks, stats, pointsPerTask))
}

func ratingOption(name, desc string) mcp.ToolOption {
	return mcp.WithString(name,
		mcp.Description(desc),
		mcp.Enum("Low", "Medium", "High"),
	)
}

// --- add_task ---

func addTaskTool() mcp.Tool {
	return mcp.NewTool("add_task",
		mcp.WithDescription("Add a new task. Urgency and importance default to Low."),
		mcp.WithString("description",
			mcp.Description("What needs doing"),
			mcp.Required(),
		),
		mcp.WithString("deadline",
			mcp.Description("Due date as YYYY-MM-DD"),
			mcp.Required(),
		),
		ratingOption("urgency", "How soon it matters"),
		ratingOption("importance", "How much it matters"),
	)
}

func addTaskHandler(repo ports.TaskRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewAddTaskCommand(repo,
			req.GetString("description", ""),
			req.GetString("deadline", ""),
			req.GetString("urgency", ""),
			req.GetString("importance", ""),
		)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message + "\n" + formatTask(*result.Task)), nil
	}
}

// --- edit_task ---

func editTaskTool() mcp.Tool {
	return mcp.NewTool("edit_task",
		mcp.WithDescription("Change fields of a task in place. Only the fields given are changed. Completed tasks cannot be edited."),
		mcp.WithString("id",
			mcp.Description("Task id"),
			mcp.Required(),
		),
		mcp.WithString("description",
			mcp.Description("New description"),
		),
		mcp.WithString("deadline",
			mcp.Description("New due date as YYYY-MM-DD"),
		),
		ratingOption("urgency", "New urgency"),
		ratingOption("importance", "New importance"),
	)
}

func editTaskHandler(repo ports.TaskRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewEditTaskCommand(repo, req.GetString("id", ""))

		args := req.GetArguments()
		if _, ok := args["description"]; ok {
			cmd.SetDescription(req.GetString("description", ""))
		}
		if _, ok := args["deadline"]; ok {
			cmd.SetDeadline(req.GetString("deadline", ""))
		}
		if _, ok := args["urgency"]; ok {
			cmd.SetUrgency(req.GetString("urgency", ""))
		}
		if _, ok := args["importance"]; ok {
			cmd.SetImportance(req.GetString("importance", ""))
		}

		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message + "\n" + formatTask(*result.Task)), nil
	}
}

// --- delete_task ---

func deleteTaskTool() mcp.Tool {
	return mcp.NewTool("delete_task",
		mcp.WithDescription("Delete a task by its id."),
		mcp.WithString("id",
			mcp.Description("Task id"),
			mcp.Required(),
		),
	)
}

func deleteTaskHandler(repo ports.TaskRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")

		cmd := commands.NewDeleteCommand(repo, nil, id)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- complete_task ---

func completeTaskTool() mcp.Tool {
	return mcp.NewTool("complete_task",
		mcp.WithDescription("Mark a task completed and award points. The task stays in the list."),
		mcp.WithString("id",
			mcp.Description("Task id"),
			mcp.Required(),
		),
	)
}

func completeTaskHandler(tasks ports.TaskRepository, stats ports.StatsRepository, points int) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")

		cmd := commands.NewCompleteTaskCommand(tasks, stats, nil, id, points)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		text := result.Message
		if result.LeveledUp {
			text += "\nLevel up!"
		}
		return mcp.NewToolResultText(text), nil
	}
}
