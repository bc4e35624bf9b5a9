package dto

import (
	"fmt"
	"strings"

	"github.com/wallace-museum/nft-importer/internal/domain"
)

// ProcessQueueRequest selects the rows a queue run imports. Both fields are optional.
type ProcessQueueRequest struct {
	Status *domain.ImportStatus `json:"status,omitempty"`
	Limit  *int                 `json:"limit,omitempty"`
}

// Validate checks the requested status is a known one
func (r *ProcessQueueRequest) Validate() error {
	if r.Status != nil && !r.Status.IsValid() {
		return fmt.Errorf("unknown status: %s", *r.Status)
	}
	if r.Limit != nil && *r.Limit < 0 {
		return fmt.Errorf("limit must not be negative")
	}
	return nil
}

// EnqueueRecordRequest asks for a single token to be fetched and queued
type EnqueueRecordRequest struct {
	Source          domain.DataSource `json:"source" binding:"required"`
	Blockchain      string            `json:"blockchain"`
	ContractAddress string            `json:"contract_address" binding:"required"`
	TokenID         string            `json:"token_id" binding:"required"`
}

// Validate validates the enqueue request
func (r *EnqueueRecordRequest) Validate() error {
	if !r.Source.IsValid() {
		return fmt.Errorf("%w: %s", domain.ErrUnsupportedSource, r.Source)
	}
	if r.Blockchain != "" && !domain.ParseBlockchain(r.Blockchain).IsValid() {
		return fmt.Errorf("%w: %s", domain.ErrUnsupportedBlockchain, r.Blockchain)
	}
	if strings.TrimSpace(r.ContractAddress) == "" {
		return domain.ErrMissingContractAddress
	}
	if strings.TrimSpace(r.TokenID) == "" {
		return domain.ErrMissingTokenID
	}
	return nil
}

// CrawlWalletRequest asks for a wallet to be crawled from one source
type CrawlWalletRequest struct {
	Address      string            `json:"address" binding:"required"`
	Source       domain.DataSource `json:"source" binding:"required"`
	ProcessAfter bool              `json:"process_after"`
}

// Validate validates the crawl request
func (r *CrawlWalletRequest) Validate() error {
	if !r.Source.IsValid() {
		return fmt.Errorf("%w: %s", domain.ErrUnsupportedSource, r.Source)
	}
	if !domain.LooksLikeAddress(r.Address) {
		return fmt.Errorf("invalid address: %s. Must be a valid Tezos or Ethereum address", r.Address)
	}
	return nil
}
