package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cellarhub/winestore/internal/config"
	"github.com/cellarhub/winestore/internal/export"
	"github.com/cellarhub/winestore/internal/handlers"
	"github.com/cellarhub/winestore/internal/server"
	"github.com/cellarhub/winestore/internal/services"
	"github.com/cellarhub/winestore/internal/store"
	"github.com/cellarhub/winestore/pkg/scheduler"
)

// exportTimeout bounds a single report generation.
const exportTimeout = 2 * time.Minute

func main() {
	cmd := &cobra.Command{
		Use:          "winestore",
		Short:        "Wine collection inventory manager",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1) //nolint:gocritic
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck
	undo := zap.ReplaceGlobals(logger)
	defer undo()

	zap.S().Named("main").Infow("starting winestore", "config", cfg.DebugMap())

	db, err := store.NewDB(cfg.DSN(), cfg.Database.MaxOpenConns)
	if err != nil {
		return err
	}
	gateway := store.NewGateway(db)
	defer gateway.Close() //nolint:errcheck

	if err := gateway.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to prepare schema: %w", err)
	}

	if err := os.MkdirAll(cfg.Export.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	sched := scheduler.NewScheduler(cfg.Export.NumWorkers)
	defer sched.Close()

	exporters := map[services.ExportKind]services.Exporter{
		services.ExportExcel:          export.NewExcelExporter(gateway, cfg.App.Name, cfg.App.Operator),
		services.ExportPDFStatistical: export.NewPDFExporter(gateway, export.PDFStatistical, cfg.App.Name, cfg.App.Operator),
		services.ExportPDFDetailed:    export.NewPDFExporter(gateway, export.PDFDetailed, cfg.App.Name, cfg.App.Operator),
	}

	handler := handlers.New(
		services.NewBottleService(gateway),
		services.NewStatisticsService(gateway),
		services.NewExportService(sched, exporters, cfg.Export.Dir, exportTimeout),
	)

	srv := server.NewServer(cfg, handler.Register)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start(ctx)
	}()

	select {
	case err := <-serverErr:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
	case <-ctx.Done():
		zap.S().Named("main").Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Stop(shutdownCtx); err != nil {
			zap.S().Named("main").Errorw("failed to stop server cleanly", "error", err)
		}
	}
	return nil
}

func newLogger(cfg *config.Configuration) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	var zapCfg zap.Config
	if cfg.Server.Mode == "prod" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	return zapCfg.Build()
}
