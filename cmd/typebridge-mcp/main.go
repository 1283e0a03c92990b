package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/usestring/typebridge-mcp/internal/cache"
	"github.com/usestring/typebridge-mcp/internal/config"
	"github.com/usestring/typebridge-mcp/internal/logging"
	"github.com/usestring/typebridge-mcp/internal/mcp"
	"github.com/usestring/typebridge-mcp/internal/mcp/tools"
)

func main() {
	// Set up context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Configuration is loaded from environment variables:
	// - LOG_LEVEL: debug, info, warn, error (default: info)
	// - LOG_FILE: path to log file (default: stderr only)
	// - DEFAULT_ROOT_NAME: root name for generated declarations
	// - etc. (see internal/config for all options)
	cfg := config.Load()

	cleanup, err := logging.Setup(logging.Config{
		Level:      cfg.LogLevel,
		Format:     cfg.LogFormat,
		FilePath:   cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
		Compress:   cfg.LogCompress,
	})
	if err != nil {
		slog.Error("failed to set up logging", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	validators, err := cache.NewValidatorCache(cfg.ValidatorCacheMaxItems)
	if err != nil {
		slog.Error("failed to create validator cache", "error", err)
		os.Exit(1)
	}

	server, err := mcp.NewServer(&tools.Deps{
		Config:     cfg,
		Validators: validators,
	})
	if err != nil {
		slog.Error("failed to create MCP server", "error", err)
		os.Exit(1)
	}

	// Run the server with stdio transport
	slog.Info("starting typebridge MCP server on stdio")
	if err := server.Run(ctx); err != nil && err != context.Canceled {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
