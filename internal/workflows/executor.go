package workflows

import (
	"context"
	"errors"
	"fmt"

	"go.temporal.io/sdk/temporal"
	"go.uber.org/zap"

	"github.com/wallace-museum/nft-importer/internal/domain"
	"github.com/wallace-museum/nft-importer/internal/logger"
	"github.com/wallace-museum/nft-importer/internal/queue"
	"github.com/wallace-museum/nft-importer/internal/source"
	"github.com/wallace-museum/nft-importer/internal/store"
)

// WalletPageResult summarizes one fetched and enqueued wallet page
type WalletPageResult struct {
	Fetched    int     `json:"fetched"`
	Enqueued   int     `json:"enqueued"`
	Skipped    int     `json:"skipped"`
	Unchanged  int     `json:"unchanged"`
	Failed     int     `json:"failed"`
	NextCursor *string `json:"next_cursor,omitempty"`
}

// Executor defines the activities run by the import workflows
//
//go:generate mockgen -source=executor.go -destination=../mocks/executor.go -package=mocks -mock_names=Executor=MockExecutor
type Executor interface {
	// GetCrawlCursor returns the stored resume cursor of a wallet crawl, nil to start from the first page
	GetCrawlCursor(ctx context.Context, src domain.DataSource, address string) (*string, error)

	// SaveCrawlCursor stores the resume cursor of a wallet crawl. A nil cursor clears it.
	SaveCrawlCursor(ctx context.Context, src domain.DataSource, address string, cursor *string) error

	// FetchAndEnqueueWalletPage fetches one wallet page from the source and enqueues every record
	FetchAndEnqueueWalletPage(ctx context.Context, src domain.DataSource, address string, cursor *string) (*WalletPageResult, error)

	// ProcessQueue imports up to limit rows with the given status
	ProcessQueue(ctx context.Context, status domain.ImportStatus, limit int) (*queue.BatchResult, error)
}

// executor is the concrete implementation of Executor
type executor struct {
	sources *source.Registry
	tracker queue.Tracker
	cursors store.CursorStore
}

// NewExecutor creates a new executor instance
func NewExecutor(sources *source.Registry, tracker queue.Tracker, cursors store.CursorStore) Executor {
	return &executor{
		sources: sources,
		tracker: tracker,
		cursors: cursors,
	}
}

// GetCrawlCursor returns the stored resume cursor of a wallet crawl
func (e *executor) GetCrawlCursor(ctx context.Context, src domain.DataSource, address string) (*string, error) {
	cursor, err := e.cursors.GetCrawlCursor(ctx, src, address)
	if err != nil {
		return nil, fmt.Errorf("failed to get crawl cursor: %w", err)
	}
	return cursor, nil
}

// SaveCrawlCursor stores or clears the resume cursor of a wallet crawl
func (e *executor) SaveCrawlCursor(ctx context.Context, src domain.DataSource, address string, cursor *string) error {
	if cursor == nil {
		if err := e.cursors.ClearCrawlCursor(ctx, src, address); err != nil {
			return fmt.Errorf("failed to clear crawl cursor: %w", err)
		}
		return nil
	}

	if err := e.cursors.SetCrawlCursor(ctx, src, address, *cursor); err != nil {
		return fmt.Errorf("failed to save crawl cursor: %w", err)
	}
	return nil
}

// FetchAndEnqueueWalletPage fetches one wallet page and enqueues its records.
// A record that fails to enqueue is counted and logged; it does not fail the page.
func (e *executor) FetchAndEnqueueWalletPage(ctx context.Context, src domain.DataSource, address string, cursor *string) (*WalletPageResult, error) {
	adapter, err := e.sources.Get(src)
	if err != nil {
		return nil, temporal.NewNonRetryableApplicationError(err.Error(), "UnsupportedSource", err)
	}

	page, err := adapter.FetchByWallet(ctx, address, cursor)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch wallet page: %w", err)
	}

	result := &WalletPageResult{
		Fetched:    len(page.Records),
		NextCursor: page.NextCursor,
	}

	for _, record := range page.Records {
		enqueued, err := e.tracker.Enqueue(ctx, record)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, err
			}
			result.Failed++
			logger.WarnCtx(ctx, "Failed to enqueue record",
				zap.String("source", string(src)),
				zap.String("address", address),
				zap.String("contract_address", record.ContractAddress),
				zap.String("token_id", record.TokenID),
				zap.Error(err))
			continue
		}

		switch {
		case enqueued.Unchanged:
			result.Unchanged++
		case enqueued.Status == domain.ImportStatusSkipped:
			result.Skipped++
		default:
			result.Enqueued++
		}
	}

	logger.InfoCtx(ctx, "Wallet page enqueued",
		zap.String("source", string(src)),
		zap.String("address", address),
		zap.Int("fetched", result.Fetched),
		zap.Int("enqueued", result.Enqueued),
		zap.Int("skipped", result.Skipped),
		zap.Int("unchanged", result.Unchanged),
		zap.Int("failed", result.Failed),
		zap.Bool("has_next", result.NextCursor != nil))

	return result, nil
}

// ProcessQueue imports up to limit rows with the given status
func (e *executor) ProcessQueue(ctx context.Context, status domain.ImportStatus, limit int) (*queue.BatchResult, error) {
	result, err := e.tracker.ProcessQueue(ctx, status, limit)
	if err != nil {
		if errors.Is(err, queue.ErrUnclaimableStatus) {
			return nil, temporal.NewNonRetryableApplicationError(err.Error(), "InvalidStatus", err)
		}
		return nil, fmt.Errorf("failed to process queue: %w", err)
	}
	return result, nil
}
