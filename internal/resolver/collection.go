package resolver

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/wallace-museum/nft-importer/internal/adapter"
	"github.com/wallace-museum/nft-importer/internal/domain"
	"github.com/wallace-museum/nft-importer/internal/logger"
	"github.com/wallace-museum/nft-importer/internal/store"
	"github.com/wallace-museum/nft-importer/internal/store/schema"
)

// CollectionResolver finds or creates the collection of a normalized token
//
//go:generate mockgen -source=collection.go -destination=../mocks/collection_resolver.go -package=mocks -mock_names=CollectionResolver=MockCollectionResolver
type CollectionResolver interface {
	// Resolve returns nil when neither a slug nor a contract address is known
	Resolve(ctx context.Context, collection *domain.Collection) (*Resolution, error)
}

type collectionResolver struct {
	store store.Store
	clock adapter.Clock
}

// NewCollectionResolver creates a new collection resolver
func NewCollectionResolver(st store.Store, clock adapter.Clock) CollectionResolver {
	return &collectionResolver{store: st, clock: clock}
}

// CollectionSlug returns the slug, defaulting to the normalized contract address
func CollectionSlug(c *domain.Collection) string {
	if c == nil {
		return ""
	}
	if slug := strings.TrimSpace(c.Slug); slug != "" {
		return slug
	}
	return domain.NormalizeAddress(c.Blockchain, c.ContractAddress)
}

// Resolve upserts the collection keyed by slug
func (r *collectionResolver) Resolve(ctx context.Context, collection *domain.Collection) (*Resolution, error) {
	slug := CollectionSlug(collection)
	if slug == "" {
		return nil, nil
	}

	existing, err := r.store.GetCollectionBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to look up collection: %w", err)
	}

	now := r.clock.Now()
	if existing == nil {
		created := newCollection(collection, slug)
		created.LastSyncedAt = now
		if err := r.store.UpsertCollection(ctx, created); err != nil {
			return nil, fmt.Errorf("failed to create collection: %w", err)
		}
		logger.DebugCtx(ctx, "Created collection", zap.String("slug", slug), zap.Uint64("collection_id", created.ID))
		return &Resolution{ID: created.ID, Created: true}, nil
	}

	MergeCollection(existing, collection)
	existing.LastSyncedAt = now
	if err := r.store.UpsertCollection(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update collection: %w", err)
	}

	return &Resolution{ID: existing.ID}, nil
}

func newCollection(c *domain.Collection, slug string) *schema.Collection {
	title := strings.TrimSpace(c.Title)
	if title == "" {
		title = slug
	}
	return &schema.Collection{
		Slug:             slug,
		Title:            title,
		Description:      c.Description,
		ContractAddress:  domain.NormalizeAddress(c.Blockchain, c.ContractAddress),
		WebsiteURL:       c.WebsiteURL,
		ImageURL:         c.ImageURL,
		BannerImageURL:   c.BannerImageURL,
		IsGenerativeArt:  c.IsGenerativeArt,
		IsSharedContract: c.IsSharedContract,
		TotalSupply:      c.TotalSupply,
		MintedAt:         c.MintedAt,
		FeePercent:       nullDecimal(c.FeePercent),
		Blockchain:       c.Blockchain,
	}
}

// MergeCollection refreshes descriptive fields from non-empty incoming values and fills
// blank identity fields. A title equal to the slug never replaces a real title.
func MergeCollection(existing *schema.Collection, c *domain.Collection) {
	refresh := func(dst *string, v string) {
		if v = strings.TrimSpace(v); v != "" {
			*dst = v
		}
	}

	if title := strings.TrimSpace(c.Title); title != "" && (title != existing.Slug || existing.Title == "") {
		existing.Title = title
	}
	refresh(&existing.Description, c.Description)
	refresh(&existing.WebsiteURL, c.WebsiteURL)
	refresh(&existing.ImageURL, c.ImageURL)
	refresh(&existing.BannerImageURL, c.BannerImageURL)

	if existing.ContractAddress == "" && c.ContractAddress != "" {
		existing.ContractAddress = domain.NormalizeAddress(c.Blockchain, c.ContractAddress)
	}
	if existing.Blockchain == "" {
		existing.Blockchain = c.Blockchain
	}
	if c.IsGenerativeArt != nil {
		existing.IsGenerativeArt = c.IsGenerativeArt
	}
	if c.IsSharedContract != nil {
		existing.IsSharedContract = c.IsSharedContract
	}
	if c.TotalSupply != nil {
		existing.TotalSupply = c.TotalSupply
	}
	if existing.MintedAt == nil && c.MintedAt != nil {
		existing.MintedAt = c.MintedAt
	}
	if c.FeePercent != nil {
		existing.FeePercent = nullDecimal(c.FeePercent)
	}
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}
