package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/JonMunkholm/pfmdash/internal/config"
	"github.com/JonMunkholm/pfmdash/internal/core"
	"github.com/JonMunkholm/pfmdash/internal/logging"
	"github.com/JonMunkholm/pfmdash/internal/sheets"
	"github.com/JonMunkholm/pfmdash/internal/web"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"source", cfg.Source.Kind,
		"rate_limit_enabled", cfg.Rate.Enabled,
	)
	slog.Debug("effective configuration", "config", cfg.String())

	service := core.NewService(newSource(cfg.Source), logger)
	server := web.NewServer(service, cfg)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// newSource picks the row source named by SOURCE_KIND. Load has already
// validated the kind.
func newSource(cfg config.SourceConfig) core.RowSource {
	if cfg.Kind == config.SourceXLSX {
		slog.Info("reading rows from workbook", "path", cfg.XLSXPath)
		return sheets.NewWorkbook(cfg.XLSXPath)
	}
	slog.Info("reading rows from opensheet", "base_url", cfg.BaseURL)
	return sheets.NewClient(cfg.BaseURL, cfg.SheetID)
}
