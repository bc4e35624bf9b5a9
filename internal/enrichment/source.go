package enrichment

import (
	"context"
	"time"

	"github.com/wallace-museum/nft-importer/internal/domain"
)

// Source fetches secondary data for one blockchain. Each method returns nil when the
// upstream knows nothing; errors are logged by the enricher and never propagated.
//
//go:generate mockgen -source=source.go -destination=../mocks/enrichment_source.go -package=mocks -mock_names=Source=MockEnrichmentSource
type Source interface {
	// FetchMintDate returns when the token was minted
	FetchMintDate(ctx context.Context, contractAddress, tokenID string) (*time.Time, error)

	// FetchCreatorProfile returns the public profile of a wallet
	FetchCreatorProfile(ctx context.Context, address string) (*domain.Creator, error)

	// FetchCollectionMetadata returns collection metadata by slug or contract
	FetchCollectionMetadata(ctx context.Context, slug, contractAddress string) (*domain.Collection, error)
}
