package messaging

import (
	"context"
	"time"

	"github.com/wallace-museum/nft-importer/internal/domain"
)

// ArtworkImportedEvent is emitted after an artwork row is written
type ArtworkImportedEvent struct {
	ArtworkID       uint64            `json:"artwork_id"`
	NFTUID          string            `json:"nft_uid"`
	ContractAddress string            `json:"contract_address"`
	TokenID         string            `json:"token_id"`
	Blockchain      domain.Blockchain `json:"blockchain"`
	ArtistID        *uint64           `json:"artist_id,omitempty"`
	CollectionID    *uint64           `json:"collection_id,omitempty"`
	Created         bool              `json:"created"`
	ImportedAt      time.Time         `json:"imported_at"`
}

// Publisher defines the interface for publishing events to message queue
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishArtworkImported publishes an artwork imported event
	PublishArtworkImported(ctx context.Context, event *ArtworkImportedEvent) error
	// Close closes the connection
	Close()
}

type noopPublisher struct{}

// NewNoopPublisher returns a publisher that drops every event
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) PublishArtworkImported(context.Context, *ArtworkImportedEvent) error {
	return nil
}

func (noopPublisher) Close() {}
