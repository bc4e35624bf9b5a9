package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/wallace-museum/nft-importer/internal/adapter"
	"github.com/wallace-museum/nft-importer/internal/domain"
	"github.com/wallace-museum/nft-importer/internal/logger"
	"github.com/wallace-museum/nft-importer/internal/queue"
)

const (
	// DEFAULT_SWEEP_INTERVAL is the time between queue runs
	DEFAULT_SWEEP_INTERVAL = 12 * time.Hour

	// DEFAULT_MAX_BATCHES_PER_CYCLE bounds how many batches one cycle drains
	DEFAULT_MAX_BATCHES_PER_CYCLE = 20
)

// QueueProcessorConfig holds configuration for the queue processor
type QueueProcessorConfig struct {
	Interval           time.Duration // Time between cycles
	BatchSize          int           // Rows per ProcessQueue call
	RetryFailed        bool          // Requeue failed rows before each cycle
	MaxAttempts        int           // Failed rows at or above this many attempts stay failed
	RunOnStartup       bool          // Run a cycle before the first wait
	LeaseTimeout       time.Duration // In-flight rows older than this are failed at the start of a cycle
	MaxBatchesPerCycle int
}

// CycleResult sums one queue processor cycle
type CycleResult struct {
	Reclaimed  int64
	Requeued   int64
	Batches    int
	Processed  int
	Successful int
	Failed     int
}

type queueProcessor struct {
	config    QueueProcessorConfig
	tracker   queue.Tracker
	clock     adapter.Clock
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// QueueProcessor is a Sweeper that also exposes a single cycle
type QueueProcessor interface {
	Sweeper

	// RunCycle fails expired in-flight rows, requeues failed rows when configured
	// and drains pending rows
	RunCycle(ctx context.Context) (*CycleResult, error)
}

// NewQueueProcessor creates a new scheduled queue processor
func NewQueueProcessor(config QueueProcessorConfig, tracker queue.Tracker, clock adapter.Clock) QueueProcessor {
	if config.Interval <= 0 {
		config.Interval = DEFAULT_SWEEP_INTERVAL
	}
	if config.BatchSize <= 0 {
		config.BatchSize = domain.DEFAULT_QUEUE_LIMIT
	}
	if config.LeaseTimeout <= 0 {
		config.LeaseTimeout = queue.DEFAULT_LEASE_TIMEOUT
	}
	if config.MaxBatchesPerCycle <= 0 {
		config.MaxBatchesPerCycle = DEFAULT_MAX_BATCHES_PER_CYCLE
	}
	return &queueProcessor{
		config:    config,
		tracker:   tracker,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *queueProcessor) Name() string {
	return "queue-processor"
}

// Start runs a cycle every interval until stopped
func (s *queueProcessor) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh)
	}()

	logger.InfoCtx(ctx, "Starting queue processor",
		zap.Duration("interval", s.config.Interval),
		zap.Int("batch_size", s.config.BatchSize),
		zap.Bool("retry_failed", s.config.RetryFailed),
		zap.Int("max_attempts", s.config.MaxAttempts),
		zap.Duration("lease_timeout", s.config.LeaseTimeout),
	)

	if s.config.RunOnStartup {
		s.runAndLog(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Queue processor stopping due to context cancellation", zap.Error(ctx.Err()))
			return nil
		case <-s.stopChan:
			logger.InfoCtx(ctx, "Queue processor stop requested")
			return nil
		case <-s.clock.After(s.config.Interval):
			s.runAndLog(ctx)
		}
	}
}

// Stop gracefully stops the processor with timeout support
func (s *queueProcessor) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil
	}

	logger.InfoCtx(ctx, "Stopping queue processor")
	close(s.stopChan)

	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Queue processor stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Queue processor stop interrupted by context timeout")
		return ctx.Err()
	}
}

func (s *queueProcessor) runAndLog(ctx context.Context) {
	if _, err := s.RunCycle(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.ErrorCtx(ctx, err)
	}
}

// RunCycle drains pending rows batch by batch. A batch that processes fewer rows
// than requested means the queue is empty for now.
func (s *queueProcessor) RunCycle(ctx context.Context) (*CycleResult, error) {
	startTime := s.clock.Now()
	result := &CycleResult{}

	reclaimed, err := s.tracker.ReclaimStale(ctx, s.config.LeaseTimeout, domain.MAX_QUEUE_LIMIT)
	if err != nil {
		return nil, fmt.Errorf("failed to reclaim stale rows: %w", err)
	}
	result.Reclaimed = reclaimed

	if s.config.RetryFailed {
		requeued, err := s.tracker.RequeueFailed(ctx, s.config.MaxAttempts, domain.MAX_QUEUE_LIMIT)
		if err != nil {
			return nil, fmt.Errorf("failed to requeue failed rows: %w", err)
		}
		result.Requeued = requeued
	}

	for result.Batches < s.config.MaxBatchesPerCycle {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		batch, err := s.tracker.ProcessQueue(ctx, domain.ImportStatusPending, s.config.BatchSize)
		if err != nil {
			return result, fmt.Errorf("failed to process queue: %w", err)
		}

		result.Batches++
		result.Processed += batch.Processed
		result.Successful += batch.Successful
		result.Failed += batch.Failed

		if batch.Processed < s.config.BatchSize {
			break
		}
	}

	logger.InfoCtx(ctx, "Queue processor cycle finished",
		zap.Int64("reclaimed", result.Reclaimed),
		zap.Int64("requeued", result.Requeued),
		zap.Int("batches", result.Batches),
		zap.Int("processed", result.Processed),
		zap.Int("successful", result.Successful),
		zap.Int("failed", result.Failed),
		zap.Duration("duration", s.clock.Since(startTime)),
	)

	return result, nil
}
