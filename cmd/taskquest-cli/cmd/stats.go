package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"taskquest/internal/application/commands"
	"taskquest/internal/domain"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show points, level and streak",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		stats, err := commands.NewShowStatsCommand(GetServices().Stats).Execute(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if statsJSON {
			return writeJSON(out, stats)
		}

		toNext := domain.PointsPerLevel - stats.Points%domain.PointsPerLevel
		fmt.Fprintf(out, "Points: %d (%d to level %d)\n", stats.Points, toNext, stats.Level+1)
		fmt.Fprintf(out, "Level:  %d\n", stats.Level)
		fmt.Fprintf(out, "Streak: %d\n", stats.Streak)
		if stats.LastCompletedDate != "" {
			fmt.Fprintf(out, "Last completion: %s\n", stats.LastCompletedDate)
		}
		return nil
	},
}

var statsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset points, level and streak",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		message, err := commands.NewResetCommand(nil, GetServices().Stats).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), message)
		return nil
	},
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "print stats as JSON")
	statsCmd.AddCommand(statsResetCmd)
	rootCmd.AddCommand(statsCmd)
}
