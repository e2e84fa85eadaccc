// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/starford/fehu/internal/api"
	"github.com/starford/fehu/internal/host"
	"github.com/starford/fehu/internal/index"
	"github.com/starford/fehu/internal/itemservice"
	"github.com/starford/fehu/internal/notice"
	"github.com/starford/fehu/internal/sse"
	"github.com/starford/fehu/internal/storage"
)

// noticingClient routes host notifications into the notice center so
// they reach both the REST listing and the SSE stream.
type noticingClient struct {
	host.Client
	center *notice.Center
}

func (c *noticingClient) Notify(ctx context.Context, message, kind string) {
	c.Client.Notify(ctx, message, kind)
	c.center.Post(message, notice.Kind(kind))
}

// Run starts the application with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	// Initialize structured JSON logger.
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("http_address", cfg.App.HTTP.Address()),
		slog.String("host_mode", cfg.Host.Mode),
		slog.String("sqlite_path", cfg.SQLite.Path),
		slog.String("log_level", cfg.App.LogLevel.String()))

	// SSE broker.
	broker := sse.NewBroker(2 * time.Second)
	defer broker.Close()

	// Notice center publishing into the SSE stream.
	center := notice.NewCenter(50, func(n notice.Notice) {
		broker.Publish(sse.Event{Type: "notice", Data: n})
	})

	// Build the host client, unless a test injected one.
	var demo *host.DemoClient
	client := app.client
	if client == nil {
		switch cfg.Host.Mode {
		case HostModeAPI:
			client = host.NewAPIClient(cfg.Host.APIURL, cfg.Host.Token, cfg.Host.APIVersion, cfg.Host.Timeout)
		default:
			demo = host.NewDemoClient()
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
	client = &noticingClient{Client: client, center: center}

	// Initialize SQLite field index.
	db, err := index.Open(cfg.SQLite.Path)
	if err != nil {
		return fmt.Errorf("init index: %w", err)
	}
	defer db.Close()

	// Exports directory.
	store, err := storage.NewFS(cfg.Exports.Dir)
	if err != nil {
		return fmt.Errorf("init exports storage: %w", err)
	}

	svc := itemservice.NewService(client, db, cfg.Host.ItemID)

	// Initial fetch. A failure is not fatal; the periodic refresh and
	// POST /api/item/refresh can recover later.
	if err := svc.Refresh(ctx); err != nil {
		logger.Warn("initial item fetch failed", slog.String("error", err.Error()))
	}

	// Build API handlers and router.
	h := api.NewHandler(svc, store, center, broker, cfg.Theme.Default)
	var dh *api.DatasetHandler
	if demo != nil {
		datasetDir := "./datasets"
		if cfg.Host.Dataset != "" {
			datasetDir = filepath.Dir(cfg.Host.Dataset)
		}
		dh = api.NewDatasetHandler(demo, svc, datasetDir)
	}
	apiRouter := api.NewRouter(h, cfg.Auth.AuthEnabled(), cfg.Auth.Token, broker, dh)

	// Build chi router.
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Health check endpoints (unauthenticated).
	r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/health/ready", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Mount API routes under /api.
	r.Mount("/api", apiRouter)

	httpServer := &http.Server{
		Addr:    cfg.App.HTTP.Address(),
		Handler: r,
	}

	logger.Info("Server starting...", slog.String("http_address", cfg.App.HTTP.Address()))

	g, gCtx := errgroup.WithContext(ctx)

	// Periodic re-fetch. Each tick replaces the snapshot wholesale;
	// the last completed fetch always wins.
	if cfg.Refresh.Auto {
		g.Go(func() error {
			ticker := time.NewTicker(cfg.Refresh.Interval)
			defer ticker.Stop()
			for {
				select {
				case <-gCtx.Done():
					return nil
				case <-ticker.C:
					if err := svc.Refresh(gCtx); err != nil {
						logger.Warn("periodic refresh failed", slog.String("error", err.Error()))
						continue
					}
					broker.PublishRefresh(svc.Checksum())
				}
			}
		})
	}

	// Watch the demo dataset file for edits.
	if demo != nil && cfg.Host.Dataset != "" {
		g.Go(func() error {
			err := host.WatchDataset(gCtx, demo, cfg.Host.Dataset, logger, func() {
				if err := svc.Refresh(gCtx); err != nil {
					logger.Warn("refresh after dataset reload failed", slog.String("error", err.Error()))
					return
				}
				broker.PublishRefresh(svc.Checksum())
			})
			if err != nil {
				logger.Warn("dataset watcher stopped", slog.String("error", err.Error()))
			}
			return nil
		})
	}

	// Start HTTP server.
	g.Go(func() error {
		logger.Info("Starting HTTP server", slog.String("address", cfg.App.HTTP.Address()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
			logger.Info("Context cancelled, initiating shutdown")
		}

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Server stopped successfully")
	return nil
}
