package rest

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/wallace-museum/nft-importer/internal/api/shared/dto"
	"github.com/wallace-museum/nft-importer/internal/api/shared/executor"
	"github.com/wallace-museum/nft-importer/internal/domain"
)

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// ProcessQueue imports one batch of queued rows
	// POST /api/v1/queue/process {"status": "pending", "limit": 50}
	ProcessQueue(c *gin.Context)

	// GetQueueStatus reports per-status counts and recent failures
	// GET /api/v1/queue/status?failures=<n>
	GetQueueStatus(c *gin.Context)

	// EnqueueRecord fetches one token from its source and queues it
	// POST /api/v1/queue/records
	EnqueueRecord(c *gin.Context)

	// RetryRecord moves a failed row back to pending
	// POST /api/v1/queue/records/:nft_uid/retry
	RetryRecord(c *gin.Context)

	// CrawlWallet starts a wallet crawl workflow
	// POST /api/v1/wallets/crawl
	CrawlWallet(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{
		executor: exec,
	}
}

// ProcessQueue runs a queue batch. An empty body processes pending rows with the default limit.
func (h *handler) ProcessQueue(c *gin.Context) {
	var req dto.ProcessQueueRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	status := domain.ImportStatusPending
	if req.Status != nil {
		status = *req.Status
	}
	limit := 0
	if req.Limit != nil {
		limit = *req.Limit
	}

	response, err := h.executor.ProcessQueue(c.Request.Context(), status, limit)
	if err != nil {
		respondError(c, err, zap.String("status", string(status)))
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetQueueStatus reports per-status counts and recent failures
func (h *handler) GetQueueStatus(c *gin.Context) {
	failures := 0
	if raw := c.Query("failures"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			respondValidationError(c, fmt.Sprintf("invalid failures: %s", raw))
			return
		}
		failures = n
	}

	response, err := h.executor.GetQueueStatus(c.Request.Context(), failures)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// EnqueueRecord fetches one token from its source and queues it
func (h *handler) EnqueueRecord(c *gin.Context) {
	var req dto.EnqueueRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.EnqueueRecord(c.Request.Context(), req)
	if err != nil {
		respondError(c, err,
			zap.String("source", string(req.Source)),
			zap.String("contract_address", req.ContractAddress),
			zap.String("token_id", req.TokenID))
		return
	}

	c.JSON(http.StatusAccepted, response)
}

// RetryRecord moves a failed row back to pending
func (h *handler) RetryRecord(c *gin.Context) {
	nftUID := c.Param("nft_uid")
	if _, _, ok := domain.ParseNFTUID(nftUID); !ok {
		respondBadRequest(c, "Invalid NFT UID", nftUID)
		return
	}

	response, err := h.executor.RetryRecord(c.Request.Context(), nftUID)
	if err != nil {
		respondError(c, err, zap.String("nft_uid", nftUID))
		return
	}

	c.JSON(http.StatusOK, response)
}

// CrawlWallet starts a wallet crawl workflow
func (h *handler) CrawlWallet(c *gin.Context) {
	var req dto.CrawlWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.CrawlWallet(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, zap.String("address", req.Address), zap.String("source", string(req.Source)))
		return
	}

	c.JSON(http.StatusAccepted, response)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "nft-importer-api",
	})
}
