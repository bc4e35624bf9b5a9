package dto

import (
	"github.com/wallace-museum/nft-importer/internal/domain"
	"github.com/wallace-museum/nft-importer/internal/queue"
)

// BatchErrorResponse is a record that failed during a queue run
type BatchErrorResponse struct {
	IndexID uint64 `json:"index_id"`
	NFTUID  string `json:"nft_uid,omitempty"`
	Message string `json:"message"`
}

// ProcessQueueResponse summarizes a queue run
type ProcessQueueResponse struct {
	RunID      string               `json:"run_id"`
	Status     domain.ImportStatus  `json:"status"`
	Processed  int                  `json:"processed"`
	Successful int                  `json:"successful"`
	Failed     int                  `json:"failed"`
	Errors     []BatchErrorResponse `json:"errors"`
}

// QueueStatusResponse is a snapshot of the queue
type QueueStatusResponse struct {
	Counts         map[domain.ImportStatus]int64 `json:"counts"`
	RecentFailures []queue.FailureSummary        `json:"recent_failures"`
}

// EnqueueRecordResponse describes the queue row written for a request
type EnqueueRecordResponse struct {
	IndexID   uint64              `json:"index_id"`
	NFTUID    string              `json:"nft_uid"`
	Status    domain.ImportStatus `json:"status"`
	Unchanged bool                `json:"unchanged"`
}

// CrawlWalletResponse identifies the started crawl workflow
type CrawlWalletResponse struct {
	WorkflowID string `json:"workflow_id"`
	RunID      string `json:"run_id"`
}

// MapBatchResult maps a queue run onto its response
func MapBatchResult(result *queue.BatchResult) *ProcessQueueResponse {
	resp := &ProcessQueueResponse{
		RunID:      result.RunID,
		Status:     result.Status,
		Processed:  result.Processed,
		Successful: result.Successful,
		Failed:     result.Failed,
		Errors:     make([]BatchErrorResponse, 0, len(result.Errors)),
	}
	for _, e := range result.Errors {
		resp.Errors = append(resp.Errors, BatchErrorResponse{IndexID: e.IndexID, NFTUID: e.NFTUID, Message: e.Message})
	}
	return resp
}

// MapEnqueueResult maps a queue row onto its response
func MapEnqueueResult(result *queue.EnqueueResult) *EnqueueRecordResponse {
	return &EnqueueRecordResponse{
		IndexID:   result.IndexID,
		NFTUID:    result.NFTUID,
		Status:    result.Status,
		Unchanged: result.Unchanged,
	}
}
