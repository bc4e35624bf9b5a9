package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wallace-museum/nft-importer/internal/adapter"
	"github.com/wallace-museum/nft-importer/internal/config"
	"github.com/wallace-museum/nft-importer/internal/logger"
	"github.com/wallace-museum/nft-importer/internal/pipeline"
	"github.com/wallace-museum/nft-importer/internal/store"
	"github.com/wallace-museum/nft-importer/internal/sweeper"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadSweeperConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "sweeper",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Sweeper")

	// Connect to database
	db, err := store.OpenPostgres(cfg.Database)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Wire the import pipeline
	p, err := pipeline.Build(ctx, cfg.PipelineConfig, db, pipeline.Deps{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to build import pipeline", zap.Error(err))
	}
	defer p.Close()

	// Initialize queue processor
	queueProcessor := sweeper.NewQueueProcessor(sweeper.QueueProcessorConfig{
		Interval:     cfg.QueueSweeper.Interval,
		BatchSize:    cfg.QueueSweeper.BatchSize,
		RetryFailed:  cfg.QueueSweeper.RetryFailed,
		MaxAttempts:  cfg.QueueSweeper.MaxAttempts,
		RunOnStartup: cfg.QueueSweeper.RunOnStartup,
		LeaseTimeout: cfg.QueueSweeper.LeaseTimeout,
	}, p.Tracker, adapter.NewClock())

	logger.InfoCtx(ctx, "Initialized queue processor",
		zap.Duration("interval", cfg.QueueSweeper.Interval),
		zap.Int("batch_size", cfg.QueueSweeper.BatchSize),
		zap.Bool("retry_failed", cfg.QueueSweeper.RetryFailed),
		zap.Int("max_attempts", cfg.QueueSweeper.MaxAttempts),
	)

	// Start the sweeper in a goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := queueProcessor.Start(ctx); err != nil {
			errChan <- err
		}
	}()

	// Wait for interrupt signal or error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errChan:
		logger.ErrorCtx(ctx, err)
	}

	// Cancel context to stop the sweeper
	cancel()

	// Give the in-flight batch time to finish
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := queueProcessor.Stop(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}

	logger.InfoCtx(shutdownCtx, "Sweeper stopped")
}
