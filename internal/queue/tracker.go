package queue

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/wallace-museum/nft-importer/internal/adapter"
	"github.com/wallace-museum/nft-importer/internal/domain"
	"github.com/wallace-museum/nft-importer/internal/enrichment"
	"github.com/wallace-museum/nft-importer/internal/importer"
	"github.com/wallace-museum/nft-importer/internal/logger"
	"github.com/wallace-museum/nft-importer/internal/registry"
	"github.com/wallace-museum/nft-importer/internal/store"
)

const (
	// DEFAULT_RECENT_FAILURES is how many failures Stats reports when none is requested
	DEFAULT_RECENT_FAILURES = 10

	// DEFAULT_LEASE_TIMEOUT is how long a claimed row may stay in flight before it is failed
	DEFAULT_LEASE_TIMEOUT = time.Hour
)

// ErrUnclaimableStatus is returned when a batch is requested for a status rows cannot be claimed from
var ErrUnclaimableStatus = errors.New("status cannot be processed")

// EnqueueResult describes the queue row written for a raw record
type EnqueueResult struct {
	IndexID uint64              `json:"index_id"`
	NFTUID  string              `json:"nft_uid"`
	Status  domain.ImportStatus `json:"status"`
	// Unchanged is set when an imported row already carries the same payload
	Unchanged bool `json:"unchanged"`
}

// BatchError is a failed record of a batch
type BatchError struct {
	IndexID uint64 `json:"index_id"`
	NFTUID  string `json:"nft_uid"`
	Message string `json:"message"`
}

// BatchResult summarizes one ProcessQueue run
type BatchResult struct {
	RunID      string                  `json:"run_id"`
	Status     domain.ImportStatus     `json:"status"`
	Processed  int                     `json:"processed"`
	Successful int                     `json:"successful"`
	Failed     int                     `json:"failed"`
	Errors     []BatchError            `json:"errors"`
	Results    []importer.ImportResult `json:"results"`
}

// FailureSummary is a failed queue row as reported by Stats
type FailureSummary struct {
	IndexID      uint64     `json:"index_id"`
	NFTUID       string     `json:"nft_uid"`
	ErrorMessage string     `json:"error_message"`
	Attempts     int        `json:"attempts"`
	LastAttempt  *time.Time `json:"last_attempt,omitempty"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// QueueStats is a snapshot of the queue
type QueueStats struct {
	Counts         map[domain.ImportStatus]int64 `json:"counts"`
	RecentFailures []FailureSummary              `json:"recent_failures"`
}

// Tracker records import attempts and drives queued rows through the engine
//
//go:generate mockgen -source=tracker.go -destination=../mocks/tracker.go -package=mocks -mock_names=Tracker=MockTracker
type Tracker interface {
	// Enqueue upserts the queue row for a raw record
	Enqueue(ctx context.Context, raw domain.RawRecord) (*EnqueueResult, error)
	// ProcessQueue claims up to limit rows in status, oldest first, and imports them one by one.
	// A failing record never aborts the batch.
	ProcessQueue(ctx context.Context, status domain.ImportStatus, limit int) (*BatchResult, error)
	// Stats returns per-status counts and the most recent failures
	Stats(ctx context.Context, recentFailures int) (*QueueStats, error)
	// Retry moves a failed row back to pending
	Retry(ctx context.Context, nftUID string) (*EnqueueResult, error)
	// RequeueFailed moves failed rows under maxAttempts back to pending
	RequeueFailed(ctx context.Context, maxAttempts int, limit int) (int64, error)
	// ReclaimStale fails rows claimed more than leaseTimeout ago that never finished,
	// so RequeueFailed and Retry can pick them up again
	ReclaimStale(ctx context.Context, leaseTimeout time.Duration, limit int) (int64, error)
}

type tracker struct {
	store    store.Store
	engine   importer.Engine
	skiplist registry.SkipRegistry
	jcs      adapter.JCS
}

// NewTracker creates a tracker. skiplist may be nil.
func NewTracker(st store.Store, engine importer.Engine, skiplist registry.SkipRegistry, jcs adapter.JCS) Tracker {
	if skiplist == nil {
		skiplist = registry.NewSkipRegistry(nil)
	}
	return &tracker{store: st, engine: engine, skiplist: skiplist, jcs: jcs}
}

func (t *tracker) Enqueue(ctx context.Context, raw domain.RawRecord) (*EnqueueResult, error) {
	if len(raw.Payload) == 0 {
		return nil, fmt.Errorf("empty raw payload for %s", raw.NFTUID())
	}

	hash, err := t.jcs.Hash(raw.Payload)
	if err != nil {
		return nil, fmt.Errorf("failed to hash raw payload: %w", err)
	}

	nftUID := raw.NFTUID()
	existing, err := t.store.GetIndexByNFTUID(ctx, nftUID)
	if err != nil {
		return nil, fmt.Errorf("failed to get artwork index: %w", err)
	}

	status := domain.ImportStatusPending
	switch {
	case t.skiplist.IsSkipped(raw.Blockchain, raw.ContractAddress):
		status = domain.ImportStatusSkipped
	case existing != nil && existing.ImportStatus == domain.ImportStatusImported && existing.RawHash == hash:
		logger.DebugCtx(ctx, "Raw payload unchanged since last import", zap.String("nft_uid", nftUID))
		return &EnqueueResult{IndexID: existing.ID, NFTUID: nftUID, Status: existing.ImportStatus, Unchanged: true}, nil
	}

	row, err := t.store.UpsertIndex(ctx, store.UpsertIndexInput{
		NFTUID:          nftUID,
		DataSource:      raw.Source,
		Blockchain:      raw.Blockchain,
		ContractAddress: raw.ContractAddress,
		TokenID:         raw.TokenID,
		RawResponse:     raw.Payload,
		RawHash:         hash,
		Status:          status,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to enqueue %s: %w", nftUID, err)
	}

	return &EnqueueResult{IndexID: row.ID, NFTUID: nftUID, Status: row.ImportStatus}, nil
}

func (t *tracker) ProcessQueue(ctx context.Context, status domain.ImportStatus, limit int) (*BatchResult, error) {
	if status == "" {
		status = domain.ImportStatusPending
	}
	if status == domain.ImportStatusProcessing || !status.CanTransition(domain.ImportStatusProcessing) {
		return nil, fmt.Errorf("%w: %s", ErrUnclaimableStatus, status)
	}
	if limit <= 0 {
		limit = domain.DEFAULT_QUEUE_LIMIT
	}
	if limit > domain.MAX_QUEUE_LIMIT {
		limit = domain.MAX_QUEUE_LIMIT
	}

	result := &BatchResult{
		RunID:   ulid.Make().String(),
		Status:  status,
		Errors:  []BatchError{},
		Results: []importer.ImportResult{},
	}
	log := logger.Default().With(zap.String("run_id", result.RunID), zap.String("status", string(status)))

	ids, err := t.store.ListIndexIDsByStatus(ctx, status, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list queued rows: %w", err)
	}

	log.Info("Processing queue", zap.Int("queued", len(ids)), zap.Int("limit", limit))

	cache := enrichment.NewCache()
	for _, id := range ids {
		if ctx.Err() != nil {
			log.Warn("Queue run cancelled", zap.Error(ctx.Err()), zap.Int("processed", result.Processed))
			break
		}

		claimed, err := t.store.ClaimIndex(ctx, id, status)
		if err != nil {
			log.Error("Failed to claim queue row", zap.Uint64("index_id", id), zap.Error(err))
			result.Processed++
			result.Failed++
			result.Errors = append(result.Errors, BatchError{IndexID: id, Message: err.Error()})
			continue
		}
		if !claimed {
			log.Debug("Queue row claimed elsewhere", zap.Uint64("index_id", id))
			continue
		}

		res := t.engine.ImportRecord(ctx, id, cache)
		result.Processed++
		result.Results = append(result.Results, res)
		if res.Success {
			result.Successful++
			continue
		}

		result.Failed++
		result.Errors = append(result.Errors, BatchError{
			IndexID: id,
			NFTUID:  res.NFTUID,
			Message: strings.Join(res.Errors, "; "),
		})
	}

	creators, collections := cache.Size()
	log.Info("Queue run finished",
		zap.Int("processed", result.Processed),
		zap.Int("successful", result.Successful),
		zap.Int("failed", result.Failed),
		zap.Int("cached_creators", creators),
		zap.Int("cached_collections", collections))

	return result, nil
}

func (t *tracker) Stats(ctx context.Context, recentFailures int) (*QueueStats, error) {
	if recentFailures <= 0 {
		recentFailures = DEFAULT_RECENT_FAILURES
	}

	counts, err := t.store.CountIndexByStatus(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := t.store.ListRecentFailures(ctx, recentFailures)
	if err != nil {
		return nil, err
	}

	stats := &QueueStats{Counts: counts, RecentFailures: make([]FailureSummary, 0, len(rows))}
	for _, row := range rows {
		summary := FailureSummary{
			IndexID:     row.ID,
			NFTUID:      row.NFTUID,
			Attempts:    row.Attempts,
			LastAttempt: row.LastAttempt,
			UpdatedAt:   row.UpdatedAt,
		}
		if row.ErrorMessage != nil {
			summary.ErrorMessage = *row.ErrorMessage
		}
		stats.RecentFailures = append(stats.RecentFailures, summary)
	}

	return stats, nil
}

func (t *tracker) Retry(ctx context.Context, nftUID string) (*EnqueueResult, error) {
	row, err := t.store.GetIndexByNFTUID(ctx, nftUID)
	if err != nil {
		return nil, fmt.Errorf("failed to get artwork index: %w", err)
	}
	if row == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrIndexNotFound, nftUID)
	}
	if row.ImportStatus != domain.ImportStatusFailed {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidStatusTransition, row.ImportStatus, domain.ImportStatusPending)
	}

	if err := t.store.UpdateIndexStatus(ctx, row.ID, domain.ImportStatusPending, nil); err != nil {
		return nil, fmt.Errorf("failed to requeue %s: %w", nftUID, err)
	}

	logger.InfoCtx(ctx, "Requeued failed record", zap.String("nft_uid", nftUID), zap.Int("attempts", row.Attempts))

	return &EnqueueResult{IndexID: row.ID, NFTUID: nftUID, Status: domain.ImportStatusPending}, nil
}

func (t *tracker) RequeueFailed(ctx context.Context, maxAttempts int, limit int) (int64, error) {
	if limit <= 0 {
		limit = domain.MAX_QUEUE_LIMIT
	}
	return t.store.RequeueFailed(ctx, maxAttempts, limit)
}

func (t *tracker) ReclaimStale(ctx context.Context, leaseTimeout time.Duration, limit int) (int64, error) {
	if leaseTimeout <= 0 {
		leaseTimeout = DEFAULT_LEASE_TIMEOUT
	}
	if limit <= 0 {
		limit = domain.MAX_QUEUE_LIMIT
	}

	reclaimed, err := t.store.ReclaimStale(ctx, time.Now().UTC().Add(-leaseTimeout), limit)
	if err != nil {
		return 0, err
	}
	if reclaimed > 0 {
		logger.WarnCtx(ctx, "Reclaimed rows left in flight past their lease",
			zap.Int64("reclaimed", reclaimed),
			zap.Duration("lease_timeout", leaseTimeout))
	}
	return reclaimed, nil
}
