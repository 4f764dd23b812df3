package commands

import (
	"context"
	"fmt"

	"taskquest/internal/domain"
	"taskquest/internal/ports"
)

// ShowStatsCommand reads the current points, level and streak
type ShowStatsCommand struct {
	stats ports.StatsRepository
}

// NewShowStatsCommand creates a new ShowStatsCommand
func NewShowStatsCommand(stats ports.StatsRepository) *ShowStatsCommand {
	return &ShowStatsCommand{stats: stats}
}

// Execute runs the show stats command
func (c *ShowStatsCommand) Execute(ctx context.Context) (domain.Stats, error) {
	return c.stats.Current()
}

// ResetCommand clears the task list, the stats, or both
type ResetCommand struct {
	tasks ports.TaskRepository
	stats ports.StatsRepository
}

// NewResetCommand creates a new ResetCommand. Either repository may be nil
// to leave that document alone.
func NewResetCommand(tasks ports.TaskRepository, stats ports.StatsRepository) *ResetCommand {
	return &ResetCommand{tasks: tasks, stats: stats}
}

// Execute runs the reset command
func (c *ResetCommand) Execute(ctx context.Context) (string, error) {
	switch {
	case c.tasks != nil && c.stats != nil:
		if err := c.tasks.Reset(); err != nil {
			return "", fmt.Errorf("failed to reset tasks: %w", err)
		}
		if err := c.stats.Reset(); err != nil {
			return "", fmt.Errorf("failed to reset stats: %w", err)
		}
		return "Cleared all tasks and stats", nil
	case c.tasks != nil:
		if err := c.tasks.Reset(); err != nil {
			return "", fmt.Errorf("failed to reset tasks: %w", err)
		}
		return "Cleared all tasks", nil
	case c.stats != nil:
		if err := c.stats.Reset(); err != nil {
			return "", fmt.Errorf("failed to reset stats: %w", err)
		}
		return "Reset stats", nil
	default:
		return "Nothing to reset", nil
	}
}

// Snapshot is the exported state of a tracker
type Snapshot struct {
	Tasks []domain.Task `json:"tasks" yaml:"tasks"`
	Stats domain.Stats  `json:"userStats" yaml:"userStats"`
}

// ExportCommand collects tasks and stats for export
type ExportCommand struct {
	tasks ports.TaskRepository
	stats ports.StatsRepository
}

// NewExportCommand creates a new ExportCommand
func NewExportCommand(tasks ports.TaskRepository, stats ports.StatsRepository) *ExportCommand {
	return &ExportCommand{tasks: tasks, stats: stats}
}

// Execute runs the export command
func (c *ExportCommand) Execute(ctx context.Context) (*Snapshot, error) {
	tasks, err := c.tasks.List()
	if err != nil {
		return nil, err
	}
	stats, err := c.stats.Current()
	if err != nil {
		return nil, err
	}
	return &Snapshot{Tasks: tasks, Stats: stats}, nil
}
