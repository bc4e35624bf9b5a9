package executor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/wallace-museum/nft-importer/internal/api/shared/dto"
	apierrors "github.com/wallace-museum/nft-importer/internal/api/shared/errors"
	"github.com/wallace-museum/nft-importer/internal/domain"
	"github.com/wallace-museum/nft-importer/internal/providers/temporal"
	"github.com/wallace-museum/nft-importer/internal/queue"
	"github.com/wallace-museum/nft-importer/internal/source"
	"github.com/wallace-museum/nft-importer/internal/workflows"
)

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/mock_api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// ProcessQueue runs one queue batch. Partial failure is reported in the response, not as an error.
	ProcessQueue(ctx context.Context, status domain.ImportStatus, limit int) (*dto.ProcessQueueResponse, error)

	// GetQueueStatus returns per-status counts and the most recent failures
	GetQueueStatus(ctx context.Context, recentFailures int) (*dto.QueueStatusResponse, error)

	// EnqueueRecord fetches a single token from its source and queues it
	EnqueueRecord(ctx context.Context, req dto.EnqueueRecordRequest) (*dto.EnqueueRecordResponse, error)

	// RetryRecord moves a failed row back to pending
	RetryRecord(ctx context.Context, nftUID string) (*dto.EnqueueRecordResponse, error)

	// CrawlWallet starts the wallet crawl workflow
	CrawlWallet(ctx context.Context, req dto.CrawlWalletRequest) (*dto.CrawlWalletResponse, error)
}

type executor struct {
	tracker               queue.Tracker
	sources               *source.Registry
	orchestrator          temporal.TemporalOrchestrator
	orchestratorTaskQueue string
}

// NewExecutor creates the API executor. orchestrator may be nil, in which case wallet crawls are refused.
func NewExecutor(tracker queue.Tracker, sources *source.Registry, orchestrator temporal.TemporalOrchestrator, orchestratorTaskQueue string) Executor {
	return &executor{
		tracker:               tracker,
		sources:               sources,
		orchestrator:          orchestrator,
		orchestratorTaskQueue: orchestratorTaskQueue,
	}
}

func (e *executor) ProcessQueue(ctx context.Context, status domain.ImportStatus, limit int) (*dto.ProcessQueueResponse, error) {
	result, err := e.tracker.ProcessQueue(ctx, status, limit)
	if err != nil {
		if errors.Is(err, queue.ErrUnclaimableStatus) {
			return nil, apierrors.NewValidationError(err.Error())
		}
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to process queue: %v", err))
	}

	return dto.MapBatchResult(result), nil
}

func (e *executor) GetQueueStatus(ctx context.Context, recentFailures int) (*dto.QueueStatusResponse, error) {
	stats, err := e.tracker.Stats(ctx, recentFailures)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get queue status: %v", err))
	}

	failures := stats.RecentFailures
	if failures == nil {
		failures = []queue.FailureSummary{}
	}
	return &dto.QueueStatusResponse{
		Counts:         stats.Counts,
		RecentFailures: failures,
	}, nil
}

func (e *executor) EnqueueRecord(ctx context.Context, req dto.EnqueueRecordRequest) (*dto.EnqueueRecordResponse, error) {
	adapter, err := e.sources.Get(req.Source)
	if err != nil {
		return nil, apierrors.NewValidationError(err.Error())
	}
	if req.Blockchain != "" && domain.ParseBlockchain(req.Blockchain) != adapter.Blockchain() {
		return nil, apierrors.NewValidationError(fmt.Sprintf("source %s does not serve blockchain %s", req.Source, req.Blockchain))
	}

	raw, err := adapter.FetchByToken(ctx, strings.TrimSpace(req.ContractAddress), strings.TrimSpace(req.TokenID))
	if errors.Is(err, domain.ErrTokenNotFound) || (err == nil && raw == nil) {
		return nil, apierrors.NewNotFoundError("Token not found", domain.NFTUID(req.ContractAddress, req.TokenID))
	}
	if err != nil {
		return nil, apierrors.NewServiceError(fmt.Sprintf("Failed to fetch token: %v", err))
	}

	result, err := e.tracker.Enqueue(ctx, *raw)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to enqueue record: %v", err))
	}

	return dto.MapEnqueueResult(result), nil
}

func (e *executor) RetryRecord(ctx context.Context, nftUID string) (*dto.EnqueueRecordResponse, error) {
	result, err := e.tracker.Retry(ctx, nftUID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrIndexNotFound):
			return nil, apierrors.NewNotFoundError("Record not found", nftUID)
		case errors.Is(err, domain.ErrInvalidStatusTransition):
			return nil, apierrors.NewConflictError("Record is not in failed status", err.Error())
		default:
			return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to retry record: %v", err))
		}
	}

	return dto.MapEnqueueResult(result), nil
}

func (e *executor) CrawlWallet(ctx context.Context, req dto.CrawlWalletRequest) (*dto.CrawlWalletResponse, error) {
	if e.orchestrator == nil {
		return nil, apierrors.NewServiceError("Wallet crawling is not configured")
	}
	if _, err := e.sources.Get(req.Source); err != nil {
		return nil, apierrors.NewValidationError(err.Error())
	}

	w := workflows.NewWorkerCore(nil, workflows.WorkerCoreConfig{})
	options := temporal.CrawlWorkflowOptions(e.orchestratorTaskQueue, string(req.Source), req.Address)
	wfRun, err := e.orchestrator.ExecuteWorkflow(ctx, options, w.CrawlWallet, workflows.CrawlWalletInput{
		Address:      req.Address,
		Source:       req.Source,
		ProcessAfter: req.ProcessAfter,
	})
	if err != nil {
		return nil, apierrors.NewServiceError(fmt.Sprintf("Failed to start wallet crawl: %v", err))
	}

	return &dto.CrawlWalletResponse{
		WorkflowID: wfRun.GetID(),
		RunID:      wfRun.GetRunID(),
	}, nil
}
