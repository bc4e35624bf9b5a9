package workflows

import (
	"fmt"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"

	"github.com/wallace-museum/nft-importer/internal/domain"
	"github.com/wallace-museum/nft-importer/internal/logger"
	"github.com/wallace-museum/nft-importer/internal/queue"
)

const (
	// DEFAULT_CRAWL_PAGE_LIMIT is how many wallet pages a single crawl run fetches
	DEFAULT_CRAWL_PAGE_LIMIT = 20
)

// CrawlWalletInput selects the wallet and source to crawl
type CrawlWalletInput struct {
	Address string            `json:"address"`
	Source  domain.DataSource `json:"source"`
	// ProcessAfter runs a queue batch once the pages are enqueued
	ProcessAfter bool `json:"process_after"`
}

// CrawlWalletResult sums the pages crawled in one run
type CrawlWalletResult struct {
	Pages     int  `json:"pages"`
	Fetched   int  `json:"fetched"`
	Enqueued  int  `json:"enqueued"`
	Skipped   int  `json:"skipped"`
	Unchanged int  `json:"unchanged"`
	Failed    int  `json:"failed"`
	Completed bool `json:"completed"`

	Batch *queue.BatchResult `json:"batch,omitempty"`
}

// ProcessQueueInput selects the rows a queue workflow imports
type ProcessQueueInput struct {
	Status domain.ImportStatus `json:"status"`
	Limit  int                 `json:"limit"`
}

// WorkerCore defines the import workflows
//
//go:generate mockgen -source=worker.go -destination=../mocks/worker_core.go -package=mocks -mock_names=WorkerCore=MockWorkerCore
type WorkerCore interface {
	// CrawlWallet enqueues a wallet's tokens page by page, resuming from the stored cursor
	CrawlWallet(ctx workflow.Context, input CrawlWalletInput) (*CrawlWalletResult, error)

	// ProcessQueue imports one batch of queued rows
	ProcessQueue(ctx workflow.Context, input ProcessQueueInput) (*queue.BatchResult, error)
}

type WorkerCoreConfig struct {
	// CrawlPageLimit caps the pages fetched per crawl run; the cursor keeps the rest for the next run
	CrawlPageLimit int
	// ProcessBatchLimit is the queue batch size run after a crawl
	ProcessBatchLimit int
}

// workerCore is the concrete implementation of WorkerCore
type workerCore struct {
	config   WorkerCoreConfig
	executor Executor
}

// NewWorkerCore creates a new worker core instance
func NewWorkerCore(executor Executor, config WorkerCoreConfig) WorkerCore {
	if config.CrawlPageLimit <= 0 {
		config.CrawlPageLimit = DEFAULT_CRAWL_PAGE_LIMIT
	}
	if config.ProcessBatchLimit <= 0 {
		config.ProcessBatchLimit = domain.DEFAULT_QUEUE_LIMIT
	}
	return &workerCore{
		executor: executor,
		config:   config,
	}
}

// CrawlWallet walks the wallet listing one page per activity. The cursor is saved
// after every page so a failed or capped run picks up where it stopped.
func (w *workerCore) CrawlWallet(ctx workflow.Context, input CrawlWalletInput) (*CrawlWalletResult, error) {
	logger.InfoWf(ctx, "Starting wallet crawl",
		zap.String("address", input.Address),
		zap.String("source", string(input.Source)),
	)

	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 10 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    time.Minute,
			MaximumAttempts:    3,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, activityOptions)

	var cursor *string
	if err := workflow.ExecuteActivity(ctx, w.executor.GetCrawlCursor, input.Source, input.Address).Get(ctx, &cursor); err != nil {
		logger.ErrorWf(ctx, fmt.Errorf("failed to get crawl cursor: %w", err), zap.String("address", input.Address))
		return nil, err
	}

	result := &CrawlWalletResult{}
	for result.Pages < w.config.CrawlPageLimit {
		var page WalletPageResult
		err := workflow.ExecuteActivity(ctx, w.executor.FetchAndEnqueueWalletPage, input.Source, input.Address, cursor).Get(ctx, &page)
		if err != nil {
			logger.ErrorWf(ctx, fmt.Errorf("failed to crawl wallet page: %w", err),
				zap.String("address", input.Address),
				zap.Int("page", result.Pages),
			)
			return nil, err
		}

		result.Pages++
		result.Fetched += page.Fetched
		result.Enqueued += page.Enqueued
		result.Skipped += page.Skipped
		result.Unchanged += page.Unchanged
		result.Failed += page.Failed

		if err := workflow.ExecuteActivity(ctx, w.executor.SaveCrawlCursor, input.Source, input.Address, page.NextCursor).Get(ctx, nil); err != nil {
			logger.ErrorWf(ctx, fmt.Errorf("failed to save crawl cursor: %w", err), zap.String("address", input.Address))
			return nil, err
		}

		if page.NextCursor == nil {
			result.Completed = true
			break
		}
		cursor = page.NextCursor
	}

	if !result.Completed {
		logger.WarnWf(ctx, "Wallet crawl stopped at page limit, cursor kept for the next run",
			zap.String("address", input.Address),
			zap.Int("pages", result.Pages),
		)
	}

	if input.ProcessAfter && result.Enqueued > 0 {
		batch, err := w.ProcessQueue(ctx, ProcessQueueInput{
			Status: domain.ImportStatusPending,
			Limit:  w.config.ProcessBatchLimit,
		})
		if err != nil {
			// rows stay pending for the sweeper
			logger.ErrorWf(ctx, fmt.Errorf("failed to process crawled records: %w", err), zap.String("address", input.Address))
		} else {
			result.Batch = batch
		}
	}

	logger.InfoWf(ctx, "Wallet crawl completed",
		zap.String("address", input.Address),
		zap.Int("pages", result.Pages),
		zap.Int("enqueued", result.Enqueued),
		zap.Bool("completed", result.Completed),
	)

	return result, nil
}

// ProcessQueue imports one batch of queued rows in a single activity
func (w *workerCore) ProcessQueue(ctx workflow.Context, input ProcessQueueInput) (*queue.BatchResult, error) {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Hour,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 1,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, activityOptions)

	var batch queue.BatchResult
	if err := workflow.ExecuteActivity(ctx, w.executor.ProcessQueue, input.Status, input.Limit).Get(ctx, &batch); err != nil {
		logger.ErrorWf(ctx, fmt.Errorf("failed to process queue: %w", err), zap.String("status", string(input.Status)))
		return nil, err
	}

	logger.InfoWf(ctx, "Queue batch processed",
		zap.String("run_id", batch.RunID),
		zap.Int("processed", batch.Processed),
		zap.Int("successful", batch.Successful),
		zap.Int("failed", batch.Failed),
	)

	return &batch, nil
}
