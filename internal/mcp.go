package internal

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/starford/fehu/internal/host"
	"github.com/starford/fehu/internal/index"
	"github.com/starford/fehu/internal/itemservice"
	"github.com/starford/fehu/internal/mcpserver"
	"github.com/starford/fehu/internal/storage"
)

// RunMCP serves the panel tools over MCP stdio instead of HTTP.
// Logs go to stderr because stdout carries the protocol.
func RunMCP(ctx context.Context, opts ...Option) error {
	app := &application{}
	for _, opt := range opts {
		opt(app)
	}
	if app.config == nil {
		return fmt.Errorf("config is required")
	}
	cfg := app.config

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	client := app.client
	if client == nil {
		switch cfg.Host.Mode {
		case HostModeAPI:
			client = host.NewAPIClient(cfg.Host.APIURL, cfg.Host.Token, cfg.Host.APIVersion, cfg.Host.Timeout)
		default:
			demo := host.NewDemoClient()
			if cfg.Host.Dataset != "" {
				if err := demo.LoadDataset(cfg.Host.Dataset); err != nil {
					logger.Warn("demo dataset load failed, using built-in item",
						slog.String("path", cfg.Host.Dataset),
						slog.String("error", err.Error()))
				}
			}
			client = demo
		}
	}

	db, err := index.Open(cfg.SQLite.Path)
	if err != nil {
		return fmt.Errorf("init index: %w", err)
	}
	defer db.Close()

	store, err := storage.NewFS(cfg.Exports.Dir)
	if err != nil {
		return fmt.Errorf("init exports storage: %w", err)
	}

	svc := itemservice.NewService(client, db, cfg.Host.ItemID)
	if err := svc.Refresh(ctx); err != nil {
		logger.Warn("initial item fetch failed", slog.String("error", err.Error()))
	}

	logger.Info("Starting MCP server on stdio", slog.String("host_mode", cfg.Host.Mode))
	return mcpserver.New(svc, store).ServeStdio()
}
