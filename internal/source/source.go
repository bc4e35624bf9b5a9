package source

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/wallace-museum/nft-importer/internal/domain"
	"github.com/wallace-museum/nft-importer/internal/logger"
)

// DEFAULT_PAGE_LIMIT is the page size requested from upstream wallet listings
const DEFAULT_PAGE_LIMIT = 50

// Page is one page of a wallet listing. NextCursor is nil on the last page.
type Page struct {
	Records    []domain.RawRecord
	NextCursor *string
}

// Adapter fetches raw provider records for a wallet or a single token
//
//go:generate mockgen -source=source.go -destination=../mocks/source_adapter.go -package=mocks -mock_names=Adapter=MockSourceAdapter
type Adapter interface {
	// Source is the data source every record of this adapter carries
	Source() domain.DataSource

	// Blockchain is the chain every record of this adapter carries
	Blockchain() domain.Blockchain

	// FetchByWallet returns the page after cursor, starting from the first page when cursor is nil
	FetchByWallet(ctx context.Context, address string, cursor *string) (*Page, error)

	// FetchByToken returns the raw record of a single token
	FetchByToken(ctx context.Context, contractAddress, tokenID string) (*domain.RawRecord, error)
}

// AdapterError reports a failed upstream fetch
type AdapterError struct {
	Source domain.DataSource
	Op     string
	Err    error
}

func (e *AdapterError) Error() string {
	return fmt.Sprintf("%s %s failed: %v", e.Source, e.Op, e.Err)
}

func (e *AdapterError) Unwrap() error {
	return e.Err
}

// identifiers pulls the record coordinates out of a raw provider item
type identifiers func(raw json.RawMessage) (contractAddress, tokenID string, err error)

// decodeRecords turns raw provider items into records. Items that cannot be decoded are
// dropped with a warning; items missing identifiers are kept so the queue can fail them.
func decodeRecords(source domain.DataSource, blockchain domain.Blockchain, items []json.RawMessage, ids identifiers) []domain.RawRecord {
	records := make([]domain.RawRecord, 0, len(items))
	for _, item := range items {
		record, err := decodeRecord(source, blockchain, item, ids)
		if err != nil {
			logger.Warn("Dropping undecodable upstream record",
				zap.String("source", string(source)),
				zap.Error(err))
			continue
		}
		records = append(records, record)
	}
	return records
}

func decodeRecord(source domain.DataSource, blockchain domain.Blockchain, item json.RawMessage, ids identifiers) (domain.RawRecord, error) {
	contractAddress, tokenID, err := ids(item)
	if err != nil {
		return domain.RawRecord{}, err
	}
	return domain.DecodeRawRecord(source, blockchain, contractAddress, tokenID, item)
}

// Registry looks adapters up by data source
type Registry struct {
	adapters map[domain.DataSource]Adapter
}

// NewRegistry creates a registry of the given adapters, ignoring nil entries
func NewRegistry(adapters ...Adapter) *Registry {
	r := &Registry{adapters: make(map[domain.DataSource]Adapter, len(adapters))}
	for _, a := range adapters {
		if a != nil {
			r.adapters[a.Source()] = a
		}
	}
	return r
}

// Get returns the adapter for source
func (r *Registry) Get(source domain.DataSource) (Adapter, error) {
	if a, ok := r.adapters[source]; ok {
		return a, nil
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedSource, source)
}
