package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"taskquest/internal/application/commands"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export tasks and stats",
	Long: `Write all tasks and the stats as one JSON or YAML document, using the
same field names as the stored data.

Examples:
  taskquest-cli export
  taskquest-cli export --format yaml --output backup.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		svc := GetServices()
		snapshot, err := commands.NewExportCommand(svc.Tasks, svc.Stats).Execute(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if exportOutput != "" {
			f, err := os.Create(exportOutput)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", exportOutput, err)
			}
			defer f.Close()
			out = f
		}

		return writeSnapshot(out, snapshot, exportFormat)
	},
}

func writeSnapshot(w io.Writer, snapshot *commands.Snapshot, format string) error {
	switch format {
	case "json":
		return writeJSON(w, snapshot)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(snapshot); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (expected json or yaml)", format)
	}
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "output format: json or yaml")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}
