package importer

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/wallace-museum/nft-importer/internal/adapter"
	"github.com/wallace-museum/nft-importer/internal/domain"
	"github.com/wallace-museum/nft-importer/internal/enrichment"
	"github.com/wallace-museum/nft-importer/internal/logger"
	"github.com/wallace-museum/nft-importer/internal/messaging"
	"github.com/wallace-museum/nft-importer/internal/normalizer"
	"github.com/wallace-museum/nft-importer/internal/pinning"
	"github.com/wallace-museum/nft-importer/internal/resolver"
	"github.com/wallace-museum/nft-importer/internal/store"
	"github.com/wallace-museum/nft-importer/internal/store/schema"
	"github.com/wallace-museum/nft-importer/internal/types"
)

// CreatedRecords reports which entities were inserted rather than updated
type CreatedRecords struct {
	Artist     bool `json:"artist"`
	Collection bool `json:"collection"`
	Artwork    bool `json:"artwork"`
}

// ImportResult is the outcome of importing one queue row
type ImportResult struct {
	IndexID        uint64         `json:"index_id"`
	NFTUID         string         `json:"nft_uid"`
	Success        bool           `json:"success"`
	ArtworkID      *uint64        `json:"artwork_id,omitempty"`
	ArtistID       *uint64        `json:"artist_id,omitempty"`
	CollectionID   *uint64        `json:"collection_id,omitempty"`
	Errors         []string       `json:"errors"`
	Warnings       []string       `json:"warnings"`
	CreatedRecords CreatedRecords `json:"created_records"`
}

// Engine turns a queued raw record into artwork, artist and collection rows
//
//go:generate mockgen -source=engine.go -destination=../mocks/engine.go -package=mocks -mock_names=Engine=MockEngine
type Engine interface {
	// ImportRecord runs the full import of one queue row. It never returns an error;
	// failures are recorded on the row and in the result.
	ImportRecord(ctx context.Context, indexID uint64, cache *enrichment.Cache) ImportResult
}

// Deps are the collaborators of the engine
type Deps struct {
	Store              store.Store
	Normalizer         normalizer.Normalizer
	Enricher           enrichment.Enricher
	ArtistResolver     resolver.ArtistResolver
	CollectionResolver resolver.CollectionResolver
	Pinner             pinning.Pinner
	Publisher          messaging.Publisher
	Clock              adapter.Clock
}

type engine struct {
	Deps
}

// NewEngine creates an engine. Pinner and Publisher may be nil.
func NewEngine(deps Deps) Engine {
	if deps.Pinner == nil {
		deps.Pinner = pinning.NewNoopPinner()
	}
	if deps.Publisher == nil {
		deps.Publisher = messaging.NewNoopPublisher()
	}
	if deps.Clock == nil {
		deps.Clock = adapter.NewClock()
	}
	return &engine{Deps: deps}
}

func (e *engine) ImportRecord(ctx context.Context, indexID uint64, cache *enrichment.Cache) ImportResult {
	result := ImportResult{IndexID: indexID, Errors: []string{}, Warnings: []string{}}
	ctx = logger.WithRecord(ctx, indexID, "")
	log := logger.FromContext(ctx)

	row, err := e.Store.GetIndexByID(ctx, indexID)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("failed to load artwork index: %v", err))
		return result
	}
	if row == nil {
		result.Errors = append(result.Errors, fmt.Sprintf("%v: %d", domain.ErrIndexNotFound, indexID))
		return result
	}
	result.NFTUID = row.NFTUID
	ctx = logger.WithRecord(ctx, indexID, row.NFTUID)
	log = logger.FromContext(ctx)

	switch row.ImportStatus {
	case domain.ImportStatusPending, domain.ImportStatusProcessing:
	default:
		result.Errors = append(result.Errors, fmt.Sprintf("row is %s, not queued for import", row.ImportStatus))
		return result
	}

	fail := func(err error) ImportResult {
		msg := err.Error()
		result.Errors = append(result.Errors, msg)
		// the run's ctx may already be cancelled; the failure must still land
		if markErr := e.Store.MarkIndexFailed(context.WithoutCancel(ctx), indexID, msg); markErr != nil {
			log.Error("Failed to mark index as failed", zap.Error(markErr))
			result.Errors = append(result.Errors, fmt.Sprintf("failed to mark index as failed: %v", markErr))
		}
		log.Warn("Import failed", zap.String("reason", msg))
		return result
	}

	raw, err := domain.DecodeRawRecord(row.DataSource, row.Blockchain, row.ContractAddress, row.TokenID, row.RawResponse)
	if err != nil {
		return fail(fmt.Errorf("failed to decode raw response: %w", err))
	}
	if err := raw.Validate(); err != nil {
		return fail(err)
	}
	for _, field := range raw.DroppedFields {
		result.Warnings = append(result.Warnings, fmt.Sprintf("dropped malformed field %q", field))
	}

	nft := e.Normalizer.Normalize(raw)
	normalized, err := json.Marshal(nft)
	if err != nil {
		return fail(fmt.Errorf("failed to marshal normalized record: %w", err))
	}
	if err := e.Store.SetIndexNormalized(ctx, indexID, normalized); err != nil {
		return fail(fmt.Errorf("failed to store normalized record: %w", err))
	}

	nft = e.Enricher.Enrich(ctx, nft, raw.ContractAddress, raw.TokenID, cache)

	// (a) artist
	artist, err := e.ArtistResolver.Resolve(ctx, nft.Creator, nft.Blockchain)
	if err != nil {
		return fail(fmt.Errorf("failed to resolve artist: %w", err))
	}
	if artist != nil {
		result.ArtistID = types.Uint64Ptr(artist.ID)
		result.CreatedRecords.Artist = artist.Created
	} else {
		result.Warnings = append(result.Warnings, "no artist could be resolved")
	}

	// (b) collection
	collection, err := e.CollectionResolver.Resolve(ctx, nft.Collection)
	if err != nil {
		return fail(fmt.Errorf("failed to resolve collection: %w", err))
	}
	if collection != nil {
		result.CollectionID = types.Uint64Ptr(collection.ID)
		result.CreatedRecords.Collection = collection.Created
	} else {
		result.Warnings = append(result.Warnings, "no collection could be resolved")
	}

	if err := e.Store.UpdateIndexStatus(ctx, indexID, domain.ImportStatusReferenced, nil); err != nil {
		return fail(fmt.Errorf("failed to mark index as referenced: %w", err))
	}

	// (c) artist <-> collection
	if artist != nil && collection != nil {
		if err := e.Store.LinkArtistCollection(ctx, artist.ID, collection.ID); err != nil {
			return fail(fmt.Errorf("failed to link artist to collection: %w", err))
		}
	}

	// (d) media
	nft.ThumbnailURL = normalizer.SanitizeThumbnail(nft.ThumbnailURL, nft.ImageURL)
	if !nft.HasMedia() {
		result.Warnings = append(result.Warnings, "record has no displayable media")
	}

	// (e) artwork
	artwork := BuildArtwork(nft, result.CollectionID)
	created, err := e.Store.UpsertArtwork(ctx, artwork)
	if err != nil {
		return fail(fmt.Errorf("failed to upsert artwork: %w", err))
	}
	result.ArtworkID = types.Uint64Ptr(artwork.ID)
	result.CreatedRecords.Artwork = created

	// (f) artist <-> artwork
	if artist != nil {
		if err := e.Store.LinkArtistArtwork(ctx, artist.ID, artwork.ID); err != nil {
			return fail(fmt.Errorf("failed to link artist to artwork: %w", err))
		}
	}

	// (g) done
	if err := e.Store.MarkIndexImported(ctx, indexID, artwork.ID); err != nil {
		return fail(fmt.Errorf("failed to mark index as imported: %w", err))
	}
	result.Success = true

	// (h) best effort
	result.Warnings = append(result.Warnings, e.pin(ctx, artwork)...)
	if err := e.Publisher.PublishArtworkImported(ctx, &messaging.ArtworkImportedEvent{
		ArtworkID:       artwork.ID,
		NFTUID:          row.NFTUID,
		ContractAddress: artwork.ContractAddress,
		TokenID:         artwork.TokenID,
		Blockchain:      artwork.Blockchain,
		ArtistID:        result.ArtistID,
		CollectionID:    result.CollectionID,
		Created:         created,
		ImportedAt:      e.Clock.Now().UTC(),
	}); err != nil {
		log.Warn("Failed to publish artwork imported event", zap.Error(err))
		result.Warnings = append(result.Warnings, fmt.Sprintf("failed to publish event: %v", err))
	}

	log.Info("Imported artwork",
		zap.Uint64("artwork_id", artwork.ID),
		zap.Bool("created", created),
		zap.Int("warnings", len(result.Warnings)))

	return result
}

// pin pins every IPFS reference of the artwork and returns a warning per failure
func (e *engine) pin(ctx context.Context, artwork *schema.Artwork) []string {
	var warnings []string
	for _, cid := range e.Pinner.ExtractReferences(artwork) {
		if err := e.Pinner.Pin(ctx, cid, artwork.UID); err != nil {
			logger.WarnCtx(ctx, "Failed to pin content", zap.String("cid", cid), zap.Error(err))
			warnings = append(warnings, fmt.Sprintf("failed to pin %s: %v", cid, err))
		}
	}
	return warnings
}

// BuildArtwork maps a normalized record onto the artwork row.
// The uid keeps the contract address as the source reported it.
func BuildArtwork(nft domain.NormalizedNFT, collectionID *uint64) *schema.Artwork {
	contract := nft.ContractAddress

	artwork := &schema.Artwork{
		UID:             domain.NFTUID(contract, nft.TokenID),
		ContractAddress: contract,
		TokenID:         nft.TokenID,
		Title:           nft.Title,
		Description:     nft.Description,
		ImageURL:        nft.ImageURL,
		ThumbnailURL:    nft.ThumbnailURL,
		AnimationURL:    nft.AnimationURL,
		GeneratorURL:    nft.GeneratorURL,
		MetadataURL:     nft.MetadataURL,
		Mime:            nft.Mime,
		Blockchain:      nft.Blockchain,
		TokenStandard:   nft.TokenStandard,
		Supply:          nft.Supply,
		MintDate:        nft.MintDate,
		Attributes:      datatypes.NewJSONSlice(nft.Attributes),
		Tags:            datatypes.NewJSONSlice(nft.Tags),
		CollectionID:    collectionID,
	}
	if nft.Dimensions != nil {
		width, height := nft.Dimensions.Width, nft.Dimensions.Height
		artwork.Width = &width
		artwork.Height = &height
	}
	if len(nft.Features) > 0 {
		artwork.Features = datatypes.JSONMap(nft.Features)
	}
	return artwork
}
