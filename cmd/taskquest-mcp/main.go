package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "taskquest/internal/adapters/mcp"
	"taskquest/internal/bootstrap"
	"taskquest/internal/config"
	"taskquest/internal/logging"
)

func main() {
	configFlag := flag.String("config", "", "config file (default <data-dir>/config.yaml)")
	flag.Parse()

	if err := run(*configFlag); err != nil {
		log.Printf("taskquest-mcp: %v", err)
		os.Exit(1)
	}
}

func run(configFile string) error {
	cfg, err := config.Load(configFile, "")
	if err != nil {
		return err
	}

	// stdout carries the protocol
	logger := logging.New(os.Stderr, cfg.LogLevel)

	services, err := bootstrap.Open(cfg, logger)
	if err != nil {
		return err
	}
	defer services.Close()

	mcpServer := server.NewMCPServer(
		"taskquest-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, services.Tasks, services.Stats)
	mcpadapter.RegisterWriteTools(mcpServer, services.Tasks, services.Stats, services.PointsPerTask)

	logger.Info("serving MCP on stdio", "backend", cfg.Backend)
	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Error("server stopped", "error", err)
		return err
	}
	return nil
}
