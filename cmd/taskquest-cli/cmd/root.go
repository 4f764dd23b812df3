package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"taskquest/internal/bootstrap"
	"taskquest/internal/config"
	"taskquest/internal/logging"
)

var (
	configFile string
	dataDir    string
	backend    string
	logLevel   string
	services   *bootstrap.Services
)

var rootCmd = &cobra.Command{
	Use:   "taskquest-cli",
	Short: "CLI for the TaskQuest task tracker",
	Long: `taskquest-cli manages the same tasks and stats as the taskquest TUI.

Tasks have a description, a deadline and Low/Medium/High urgency and
importance. Completing a task awards points; every 100 points is a level
and completing tasks on consecutive days builds a streak.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		logger := logging.New(os.Stderr, cfg.LogLevel)
		services, err = bootstrap.Open(cfg, logger)
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if services == nil {
			return nil
		}
		err := services.Close()
		services = nil
		return err
	},
}

// loadConfig resolves the configuration, letting explicit flags win
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()
	var dir string
	if flags.Changed("data-dir") {
		dir = dataDir
	}

	cfg, err := config.Load(configFile, dir)
	if err != nil {
		return nil, err
	}

	if flags.Changed("backend") {
		cfg.Backend = backend
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configFile, "config", "c", "", "config file (default <data-dir>/config.yaml)")
	flags.StringVar(&dataDir, "data-dir", config.DataDir(), "directory holding the task database")
	flags.StringVar(&backend, "backend", config.BackendSQLite, "storage backend: sqlite, file or memory")
	flags.StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")
}

// GetServices returns the initialized services
func GetServices() *bootstrap.Services {
	return services
}
