package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"taskquest/internal/adapters/tui"
	"taskquest/internal/bootstrap"
	"taskquest/internal/config"
	"taskquest/internal/logging"
)

func main() {
	configFlag := flag.String("config", "", "config file (default <data-dir>/config.yaml)")
	flag.Parse()

	if err := run(*configFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configFile string) error {
	cfg, err := config.Load(configFile, "")
	if err != nil {
		return err
	}

	// The terminal belongs to the TUI, so logs go to a file
	logger, logFile, err := logging.NewFile(cfg.LogPath(), cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logFile.Close()

	services, err := bootstrap.Open(cfg, logger)
	if err != nil {
		return err
	}
	defer services.Close()

	app := tui.NewApp(tui.Deps{
		Tasks:         services.Tasks,
		Stats:         services.Stats,
		Timers:        services.Timers,
		PointsPerTask: services.PointsPerTask,
		Logger:        logger,
	})

	p := tea.NewProgram(app, tea.WithAltScreen())

	logger.Info("taskquest started", "backend", cfg.Backend)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
