package store

import (
	"context"
	"errors"
	"time"

	"github.com/wallace-museum/nft-importer/internal/domain"
	"github.com/wallace-museum/nft-importer/internal/store/schema"
)

var (
	// ErrDuplicateArtistName is returned when an artist insert or rename collides on name
	ErrDuplicateArtistName = errors.New("artist name already exists")

	// ErrConcurrentStatusChange is returned when a row changed status underneath a conditional update
	ErrConcurrentStatusChange = errors.New("import status changed concurrently")
)

// UpsertIndexInput carries the fields written when a raw record is enqueued
type UpsertIndexInput struct {
	NFTUID          string
	DataSource      domain.DataSource
	Blockchain      domain.Blockchain
	ContractAddress string
	TokenID         string
	RawResponse     []byte
	RawHash         string
	// Status is the status the row is reset to
	Status domain.ImportStatus
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	CursorStore

	// =============================================================================
	// Artwork index (import queue)
	// =============================================================================

	// UpsertIndex inserts or refreshes the queue row for an nft_uid and returns the stored row.
	// last_attempt and error_message are cleared.
	UpsertIndex(ctx context.Context, input UpsertIndexInput) (*schema.ArtworkIndex, error)
	// GetIndexByID retrieves a queue row by id, nil when absent
	GetIndexByID(ctx context.Context, id uint64) (*schema.ArtworkIndex, error)
	// GetIndexByNFTUID retrieves a queue row by nft_uid, nil when absent
	GetIndexByNFTUID(ctx context.Context, nftUID string) (*schema.ArtworkIndex, error)
	// ClaimIndex moves a row from the expected status to processing, stamping last_attempt
	// and incrementing attempts. Returns false when the row is no longer in that status.
	ClaimIndex(ctx context.Context, id uint64, expected domain.ImportStatus) (bool, error)
	// UpdateIndexStatus moves a row to a new status, enforcing the import state machine
	UpdateIndexStatus(ctx context.Context, id uint64, status domain.ImportStatus, errorMessage *string) error
	// SetIndexNormalized stores the normalized document and moves the row to normalized
	SetIndexNormalized(ctx context.Context, id uint64, normalized []byte) error
	// MarkIndexImported moves the row to imported and records the artwork id
	MarkIndexImported(ctx context.Context, id uint64, artworkID uint64) error
	// MarkIndexFailed moves the row to failed and records the reason
	MarkIndexFailed(ctx context.Context, id uint64, message string) error
	// ListIndexIDsByStatus returns up to limit row ids in the status, oldest first
	ListIndexIDsByStatus(ctx context.Context, status domain.ImportStatus, limit int) ([]uint64, error)
	// CountIndexByStatus returns the number of rows per status
	CountIndexByStatus(ctx context.Context) (map[domain.ImportStatus]int64, error)
	// ListRecentFailures returns the most recently failed rows
	ListRecentFailures(ctx context.Context, limit int) ([]schema.ArtworkIndex, error)
	// RequeueFailed moves up to limit failed rows with fewer than maxAttempts attempts back to pending
	RequeueFailed(ctx context.Context, maxAttempts int, limit int) (int64, error)
	// ReclaimStale fails up to limit in-flight rows whose last attempt started before staleBefore
	ReclaimStale(ctx context.Context, staleBefore time.Time, limit int) (int64, error)

	// =============================================================================
	// Artists
	// =============================================================================

	// GetArtistByID retrieves an artist by id, nil when absent
	GetArtistByID(ctx context.Context, id uint64) (*schema.Artist, error)
	// FindArtistByAddress looks up an artist through the address index, nil when absent
	FindArtistByAddress(ctx context.Context, address string, blockchain domain.Blockchain) (*schema.Artist, error)
	// FindArtistByName looks up an artist by case-insensitive name, nil when absent
	FindArtistByName(ctx context.Context, name string) (*schema.Artist, error)
	// CreateArtist inserts an artist and its address index rows.
	// Returns ErrDuplicateArtistName when the name is taken.
	CreateArtist(ctx context.Context, artist *schema.Artist) error
	// UpdateArtist saves an artist and re-syncs its address index rows in one transaction
	UpdateArtist(ctx context.Context, artist *schema.Artist) error

	// =============================================================================
	// Collections
	// =============================================================================

	// GetCollectionByID retrieves a collection by id, nil when absent
	GetCollectionByID(ctx context.Context, id uint64) (*schema.Collection, error)
	// GetCollectionBySlug retrieves a collection by slug, nil when absent
	GetCollectionBySlug(ctx context.Context, slug string) (*schema.Collection, error)
	// UpsertCollection inserts or updates a collection keyed by slug and sets its id
	UpsertCollection(ctx context.Context, collection *schema.Collection) error

	// =============================================================================
	// Artworks and relations
	// =============================================================================

	// GetArtworkByID retrieves an artwork by id, nil when absent
	GetArtworkByID(ctx context.Context, id uint64) (*schema.Artwork, error)
	// GetArtworkByUID retrieves an artwork by uid, nil when absent
	GetArtworkByUID(ctx context.Context, uid string) (*schema.Artwork, error)
	// UpsertArtwork inserts or updates the artwork keyed by (contract_address, token_id).
	// Returns true when a new row was created.
	UpsertArtwork(ctx context.Context, artwork *schema.Artwork) (bool, error)
	// CountArtworks returns the total number of artworks
	CountArtworks(ctx context.Context) (int64, error)
	// LinkArtistArtwork records that an artist made an artwork. Idempotent.
	LinkArtistArtwork(ctx context.Context, artistID, artworkID uint64) error
	// LinkArtistCollection records that an artist appears in a collection. Idempotent.
	LinkArtistCollection(ctx context.Context, artistID, collectionID uint64) error
	// GetArtworkArtistIDs returns the artist ids linked to an artwork
	GetArtworkArtistIDs(ctx context.Context, artworkID uint64) ([]uint64, error)
	// GetCollectionArtistIDs returns the artist ids linked to a collection
	GetCollectionArtistIDs(ctx context.Context, collectionID uint64) ([]uint64, error)

	// =============================================================================
	// Key-value store
	// =============================================================================

	// GetKeyValue retrieves a value by key, empty when absent
	GetKeyValue(ctx context.Context, key string) (string, error)
	// SetKeyValue stores a value by key
	SetKeyValue(ctx context.Context, key string, value string) error
	// DeleteKeyValue removes a key
	DeleteKeyValue(ctx context.Context, key string) error
}
