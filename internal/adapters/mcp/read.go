package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"taskquest/internal/application/commands"
	"taskquest/internal/domain"
	"taskquest/internal/ports"
)

// RegisterReadTools adds all read-only task tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, tasks ports.TaskRepository, stats ports.StatsRepository) {
	s.AddTool(listTasksTool(), listTasksHandler(tasks))
	s.AddTool(getTaskTool(), getTaskHandler(tasks))
	s.AddTool(getStatsTool(), getStatsHandler(stats))
}

// --- list_tasks ---

func listTasksTool() mcp.Tool {
	return mcp.NewTool("list_tasks",
		mcp.WithDescription("List tasks in the order they were added. Each line shows id, completion, deadline, urgency, importance and description."),
		mcp.WithBoolean("pending",
			mcp.Description("Only list tasks that are not completed yet"),
		),
	)
}

func listTasksHandler(repo ports.TaskRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewListTasksCommand(repo, req.GetBool("pending", false))
		tasks, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(tasks, formatTask)
	}
}

// --- get_task ---

func getTaskTool() mcp.Tool {
	return mcp.NewTool("get_task",
		mcp.WithDescription("Show a single task by its id."),
		mcp.WithString("id",
			mcp.Description("Task id as shown by list_tasks"),
			mcp.Required(),
		),
	)
}

func getTaskHandler(repo ports.TaskRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")
		if id == "" {
			return toolError(fmt.Errorf("id is required"))
		}

		task, err := commands.NewGetTaskCommand(repo, id).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(formatTask(*task)), nil
	}
}

// --- get_stats ---

func getStatsTool() mcp.Tool {
	return mcp.NewTool("get_stats",
		mcp.WithDescription("Show points, level and daily completion streak."),
	)
}

func getStatsHandler(repo ports.StatsRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		stats, err := commands.NewShowStatsCommand(repo).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(formatStats(stats)), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatTask(t domain.Task) string {
	state := "[ ]"
	if t.Completed {
		state = "[x]"
	}
	return fmt.Sprintf("%s  %s  %s  urgency=%s  importance=%s  %s",
		t.ID, state, t.Deadline, t.Urgency, t.Importance, t.Description)
}

func formatStats(s domain.Stats) string {
	out := fmt.Sprintf("points=%d  level=%d  streak=%d", s.Points, s.Level, s.Streak)
	if s.LastCompletedDate != "" {
		out += "  last_completed=" + s.LastCompletedDate
	}
	return out
}
