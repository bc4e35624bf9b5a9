package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/wallace-museum/nft-importer/internal/config"
	"github.com/wallace-museum/nft-importer/internal/domain"
	"github.com/wallace-museum/nft-importer/internal/logger"
	"github.com/wallace-museum/nft-importer/internal/store/schema"
)

const uniqueViolationCode = "23505"

type pgStore struct {
	CursorStore
	db *gorm.DB
}

// NewPGStore creates a new store instance over a gorm connection.
// Production runs against PostgreSQL; any gorm dialector with the same schema works.
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{
		CursorStore: NewCursorStore(db),
		db:          db,
	}
}

// OpenPostgres connects to PostgreSQL and applies the pool settings from cfg
func OpenPostgres(cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := ConfigureConnectionPool(db, cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime, cfg.ConnMaxIdleTime); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates or updates every table managed by the store
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(schema.All()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// If any of the pool settings are 0, defaults from NormalizeConnectionPoolSettings are used.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// isUniqueViolation recognizes unique constraint errors from PostgreSQL and SQLite
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolationCode
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

// =============================================================================
// Artwork index
// =============================================================================

// UpsertIndex inserts or refreshes the queue row for an nft_uid
func (s *pgStore) UpsertIndex(ctx context.Context, input UpsertIndexInput) (*schema.ArtworkIndex, error) {
	if input.Status == "" {
		input.Status = domain.ImportStatusPending
	}

	row := schema.ArtworkIndex{
		NFTUID:          input.NFTUID,
		DataSource:      input.DataSource,
		Blockchain:      input.Blockchain,
		ContractAddress: input.ContractAddress,
		TokenID:         input.TokenID,
		RawResponse:     datatypes.JSON(input.RawResponse),
		RawHash:         input.RawHash,
		ImportStatus:    input.Status,
	}

	var stored schema.ArtworkIndex
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := clause.AssignmentColumns([]string{
			"data_source",
			"blockchain",
			"contract_address",
			"token_id",
			"raw_response",
			"raw_hash",
			"import_status",
			"updated_at",
		})
		updates = append(updates, clause.Assignments(map[string]interface{}{
			"last_attempt":  nil,
			"error_message": nil,
		})...)

		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "nft_uid"}},
			DoUpdates: updates,
		}).Create(&row).Error; err != nil {
			return fmt.Errorf("failed to upsert artwork index: %w", err)
		}

		if err := tx.Where("nft_uid = ?", input.NFTUID).First(&stored).Error; err != nil {
			return fmt.Errorf("failed to reload artwork index: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &stored, nil
}

// GetIndexByID retrieves a queue row by id
func (s *pgStore) GetIndexByID(ctx context.Context, id uint64) (*schema.ArtworkIndex, error) {
	var row schema.ArtworkIndex
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get artwork index: %w", err)
	}
	return &row, nil
}

// GetIndexByNFTUID retrieves a queue row by nft_uid
func (s *pgStore) GetIndexByNFTUID(ctx context.Context, nftUID string) (*schema.ArtworkIndex, error) {
	var row schema.ArtworkIndex
	err := s.db.WithContext(ctx).Where("nft_uid = ?", nftUID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get artwork index: %w", err)
	}
	return &row, nil
}

// ClaimIndex moves a row from expected to processing with a conditional update
func (s *pgStore) ClaimIndex(ctx context.Context, id uint64, expected domain.ImportStatus) (bool, error) {
	if !expected.CanTransition(domain.ImportStatusProcessing) || expected == domain.ImportStatusProcessing {
		return false, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidStatusTransition, expected, domain.ImportStatusProcessing)
	}

	now := time.Now().UTC()
	result := s.db.WithContext(ctx).
		Model(&schema.ArtworkIndex{}).
		Where("id = ? AND import_status = ?", id, expected).
		Updates(map[string]interface{}{
			"import_status": domain.ImportStatusProcessing,
			"attempts":      gorm.Expr("attempts + 1"),
			"last_attempt":  now,
			"error_message": nil,
			"updated_at":    now,
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to claim artwork index: %w", result.Error)
	}

	return result.RowsAffected == 1, nil
}

// transitionIndex applies a state machine checked status change together with extra column updates
func (s *pgStore) transitionIndex(ctx context.Context, id uint64, next domain.ImportStatus, extra map[string]interface{}) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current schema.ArtworkIndex
		if err := tx.Select("id", "import_status").Where("id = ?", id).First(&current).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %d", domain.ErrIndexNotFound, id)
			}
			return fmt.Errorf("failed to load artwork index: %w", err)
		}

		if !current.ImportStatus.CanTransition(next) {
			return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidStatusTransition, current.ImportStatus, next)
		}

		updates := map[string]interface{}{
			"import_status": next,
			"updated_at":    time.Now().UTC(),
		}
		for k, v := range extra {
			updates[k] = v
		}

		result := tx.Model(&schema.ArtworkIndex{}).
			Where("id = ? AND import_status = ?", id, current.ImportStatus).
			Updates(updates)
		if result.Error != nil {
			return fmt.Errorf("failed to update import status: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: %d", ErrConcurrentStatusChange, id)
		}

		return nil
	})
}

// UpdateIndexStatus moves a row to a new status
func (s *pgStore) UpdateIndexStatus(ctx context.Context, id uint64, status domain.ImportStatus, errorMessage *string) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: unknown status %q", domain.ErrInvalidStatusTransition, status)
	}
	return s.transitionIndex(ctx, id, status, map[string]interface{}{
		"error_message": errorMessage,
	})
}

// SetIndexNormalized stores the normalized document and moves the row to normalized
func (s *pgStore) SetIndexNormalized(ctx context.Context, id uint64, normalized []byte) error {
	return s.transitionIndex(ctx, id, domain.ImportStatusNormalized, map[string]interface{}{
		"normalized_data": datatypes.JSON(normalized),
	})
}

// MarkIndexImported moves the row to imported and records the artwork id
func (s *pgStore) MarkIndexImported(ctx context.Context, id uint64, artworkID uint64) error {
	return s.transitionIndex(ctx, id, domain.ImportStatusImported, map[string]interface{}{
		"artwork_id":    artworkID,
		"error_message": nil,
	})
}

// MarkIndexFailed moves the row to failed and records the reason
func (s *pgStore) MarkIndexFailed(ctx context.Context, id uint64, message string) error {
	return s.transitionIndex(ctx, id, domain.ImportStatusFailed, map[string]interface{}{
		"error_message": message,
	})
}

// ListIndexIDsByStatus returns up to limit row ids in the status, oldest first
func (s *pgStore) ListIndexIDsByStatus(ctx context.Context, status domain.ImportStatus, limit int) ([]uint64, error) {
	var ids []uint64
	err := s.db.WithContext(ctx).
		Model(&schema.ArtworkIndex{}).
		Where("import_status = ?", status).
		Order("created_at ASC").
		Order("id ASC").
		Limit(limit).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list artwork index ids: %w", err)
	}
	return ids, nil
}

// CountIndexByStatus returns the number of rows per status, zero-filled
func (s *pgStore) CountIndexByStatus(ctx context.Context) (map[domain.ImportStatus]int64, error) {
	var rows []struct {
		ImportStatus domain.ImportStatus
		Count        int64
	}
	err := s.db.WithContext(ctx).
		Model(&schema.ArtworkIndex{}).
		Select("import_status, COUNT(*) AS count").
		Group("import_status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count artwork index: %w", err)
	}

	counts := make(map[domain.ImportStatus]int64, len(domain.AllImportStatuses))
	for _, st := range domain.AllImportStatuses {
		counts[st] = 0
	}
	for _, r := range rows {
		counts[r.ImportStatus] = r.Count
	}
	return counts, nil
}

// ListRecentFailures returns the most recently failed rows
func (s *pgStore) ListRecentFailures(ctx context.Context, limit int) ([]schema.ArtworkIndex, error) {
	var rows []schema.ArtworkIndex
	err := s.db.WithContext(ctx).
		Omit("raw_response", "normalized_data").
		Where("import_status = ?", domain.ImportStatusFailed).
		Order("updated_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recent failures: %w", err)
	}
	return rows, nil
}

// RequeueFailed moves failed rows under the attempt cap back to pending
func (s *pgStore) RequeueFailed(ctx context.Context, maxAttempts int, limit int) (int64, error) {
	var requeued int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ids []uint64
		if err := tx.Model(&schema.ArtworkIndex{}).
			Where("import_status = ? AND attempts < ?", domain.ImportStatusFailed, maxAttempts).
			Order("updated_at ASC").
			Limit(limit).
			Pluck("id", &ids).Error; err != nil {
			return fmt.Errorf("failed to select failed rows: %w", err)
		}
		if len(ids) == 0 {
			return nil
		}

		result := tx.Model(&schema.ArtworkIndex{}).
			Where("id IN ? AND import_status = ?", ids, domain.ImportStatusFailed).
			Updates(map[string]interface{}{
				"import_status": domain.ImportStatusPending,
				"updated_at":    time.Now().UTC(),
			})
		if result.Error != nil {
			return fmt.Errorf("failed to requeue failed rows: %w", result.Error)
		}
		requeued = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return requeued, nil
}

// ReclaimStale fails up to limit in-flight rows whose last attempt started before staleBefore
func (s *pgStore) ReclaimStale(ctx context.Context, staleBefore time.Time, limit int) (int64, error) {
	inFlight := []domain.ImportStatus{
		domain.ImportStatusProcessing,
		domain.ImportStatusNormalized,
		domain.ImportStatusReferenced,
	}

	var reclaimed int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ids []uint64
		if err := tx.Model(&schema.ArtworkIndex{}).
			Where("import_status IN ?", inFlight).
			Where("last_attempt < ? OR (last_attempt IS NULL AND updated_at < ?)", staleBefore, staleBefore).
			Order("id ASC").
			Limit(limit).
			Pluck("id", &ids).Error; err != nil {
			return fmt.Errorf("failed to select stale rows: %w", err)
		}
		if len(ids) == 0 {
			return nil
		}

		result := tx.Model(&schema.ArtworkIndex{}).
			Where("id IN ? AND import_status IN ?", ids, inFlight).
			Updates(map[string]interface{}{
				"import_status": domain.ImportStatusFailed,
				"error_message": domain.ErrImportLeaseExpired.Error(),
				"updated_at":    time.Now().UTC(),
			})
		if result.Error != nil {
			return fmt.Errorf("failed to reclaim stale rows: %w", result.Error)
		}
		reclaimed = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return reclaimed, nil
}

// =============================================================================
// Artists
// =============================================================================

// GetArtistByID retrieves an artist by id
func (s *pgStore) GetArtistByID(ctx context.Context, id uint64) (*schema.Artist, error) {
	var artist schema.Artist
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&artist).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get artist: %w", err)
	}
	return &artist, nil
}

// FindArtistByAddress looks up an artist through the address index
func (s *pgStore) FindArtistByAddress(ctx context.Context, address string, blockchain domain.Blockchain) (*schema.Artist, error) {
	normalized := domain.NormalizeAddress(blockchain, address)
	if normalized == "" {
		return nil, nil
	}

	var artist schema.Artist
	err := s.db.WithContext(ctx).
		Joins("JOIN artist_addresses ON artist_addresses.artist_id = artists.id").
		Where("artist_addresses.address = ? AND artist_addresses.blockchain = ?", normalized, blockchain).
		First(&artist).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find artist by address: %w", err)
	}
	return &artist, nil
}

// FindArtistByName looks up an artist by case-insensitive name
func (s *pgStore) FindArtistByName(ctx context.Context, name string) (*schema.Artist, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}

	var artist schema.Artist
	err := s.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).First(&artist).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find artist by name: %w", err)
	}
	return &artist, nil
}

// nameTaken reports whether another artist already uses the name
func nameTaken(tx *gorm.DB, name string, exceptID uint64) (bool, error) {
	var count int64
	q := tx.Model(&schema.Artist{}).Where("LOWER(name) = LOWER(?)", name)
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check artist name: %w", err)
	}
	return count > 0, nil
}

// syncArtistAddresses rewrites the address index rows of an artist from its wallet list
func syncArtistAddresses(tx *gorm.DB, artist *schema.Artist) error {
	if err := tx.Where("artist_id = ?", artist.ID).Delete(&schema.ArtistAddress{}).Error; err != nil {
		return fmt.Errorf("failed to clear artist addresses: %w", err)
	}

	rows := make([]schema.ArtistAddress, 0, len(artist.WalletAddresses))
	seen := make(map[string]struct{}, len(artist.WalletAddresses))
	for _, w := range artist.WalletAddresses {
		address := domain.NormalizeAddress(w.Blockchain, w.Address)
		if !domain.IsUsableAddress(w.Blockchain, address) {
			continue
		}
		key := string(w.Blockchain) + "|" + address
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		rows = append(rows, schema.ArtistAddress{
			Address:    address,
			Blockchain: w.Blockchain,
			ArtistID:   artist.ID,
		})
	}
	if len(rows) == 0 {
		return nil
	}

	result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows)
	if result.Error != nil {
		return fmt.Errorf("failed to index artist addresses: %w", result.Error)
	}
	if result.RowsAffected < int64(len(rows)) {
		logger.Warn("Some artist addresses already belong to another artist",
			zap.Uint64("artist_id", artist.ID),
			zap.Int("addresses", len(rows)),
			zap.Int64("indexed", result.RowsAffected))
	}

	return nil
}

// CreateArtist inserts an artist and its address index rows
func (s *pgStore) CreateArtist(ctx context.Context, artist *schema.Artist) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := nameTaken(tx, artist.Name, 0)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("%w: %s", ErrDuplicateArtistName, artist.Name)
		}

		if err := tx.Create(artist).Error; err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: %s", ErrDuplicateArtistName, artist.Name)
			}
			return fmt.Errorf("failed to create artist: %w", err)
		}

		return syncArtistAddresses(tx, artist)
	})
}

// UpdateArtist saves an artist and re-syncs its address index rows
func (s *pgStore) UpdateArtist(ctx context.Context, artist *schema.Artist) error {
	if artist.ID == 0 {
		return fmt.Errorf("failed to update artist: missing id")
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := nameTaken(tx, artist.Name, artist.ID)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("%w: %s", ErrDuplicateArtistName, artist.Name)
		}

		if err := tx.Save(artist).Error; err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: %s", ErrDuplicateArtistName, artist.Name)
			}
			return fmt.Errorf("failed to update artist: %w", err)
		}

		return syncArtistAddresses(tx, artist)
	})
}

// =============================================================================
// Collections
// =============================================================================

// GetCollectionByID retrieves a collection by id
func (s *pgStore) GetCollectionByID(ctx context.Context, id uint64) (*schema.Collection, error) {
	var collection schema.Collection
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&collection).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get collection: %w", err)
	}
	return &collection, nil
}

// GetCollectionBySlug retrieves a collection by slug
func (s *pgStore) GetCollectionBySlug(ctx context.Context, slug string) (*schema.Collection, error) {
	var collection schema.Collection
	err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&collection).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get collection: %w", err)
	}
	return &collection, nil
}

// UpsertCollection inserts or updates a collection keyed by slug
func (s *pgStore) UpsertCollection(ctx context.Context, collection *schema.Collection) error {
	if collection.LastSyncedAt.IsZero() {
		collection.LastSyncedAt = time.Now().UTC()
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if collection.ID != 0 {
			if err := tx.Save(collection).Error; err != nil {
				return fmt.Errorf("failed to update collection: %w", err)
			}
			return nil
		}

		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "slug"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"title",
				"description",
				"contract_address",
				"website_url",
				"image_url",
				"banner_image_url",
				"is_generative_art",
				"is_shared_contract",
				"total_supply",
				"minted_at",
				"fee_percent",
				"blockchain",
				"last_synced_at",
				"updated_at",
			}),
		}).Create(collection).Error; err != nil {
			return fmt.Errorf("failed to upsert collection: %w", err)
		}

		var stored schema.Collection
		if err := tx.Select("id", "created_at").Where("slug = ?", collection.Slug).First(&stored).Error; err != nil {
			return fmt.Errorf("failed to reload collection: %w", err)
		}
		collection.ID = stored.ID
		collection.CreatedAt = stored.CreatedAt

		return nil
	})
}

// =============================================================================
// Artworks and relations
// =============================================================================

// GetArtworkByID retrieves an artwork by id
func (s *pgStore) GetArtworkByID(ctx context.Context, id uint64) (*schema.Artwork, error) {
	var artwork schema.Artwork
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&artwork).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get artwork: %w", err)
	}
	return &artwork, nil
}

// GetArtworkByUID retrieves an artwork by uid
func (s *pgStore) GetArtworkByUID(ctx context.Context, uid string) (*schema.Artwork, error) {
	var artwork schema.Artwork
	err := s.db.WithContext(ctx).Where("uid = ?", uid).First(&artwork).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get artwork: %w", err)
	}
	return &artwork, nil
}

// UpsertArtwork inserts or updates the artwork keyed by (contract_address, token_id)
func (s *pgStore) UpsertArtwork(ctx context.Context, artwork *schema.Artwork) (bool, error) {
	created := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&schema.Artwork{}).
			Where("contract_address = ? AND token_id = ?", artwork.ContractAddress, artwork.TokenID).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check artwork: %w", err)
		}
		created = count == 0

		artwork.ID = 0
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "contract_address"}, {Name: "token_id"}},
			UpdateAll: true,
		}).Create(artwork).Error; err != nil {
			return fmt.Errorf("failed to upsert artwork: %w", err)
		}

		var stored schema.Artwork
		if err := tx.Select("id", "created_at").
			Where("contract_address = ? AND token_id = ?", artwork.ContractAddress, artwork.TokenID).
			First(&stored).Error; err != nil {
			return fmt.Errorf("failed to reload artwork: %w", err)
		}
		artwork.ID = stored.ID
		artwork.CreatedAt = stored.CreatedAt

		return nil
	})
	if err != nil {
		return false, err
	}
	return created, nil
}

// CountArtworks returns the total number of artworks
func (s *pgStore) CountArtworks(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&schema.Artwork{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count artworks: %w", err)
	}
	return count, nil
}

// LinkArtistArtwork records that an artist made an artwork
func (s *pgStore) LinkArtistArtwork(ctx context.Context, artistID, artworkID uint64) error {
	link := schema.ArtistArtwork{ArtistID: artistID, ArtworkID: artworkID}
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error; err != nil {
		return fmt.Errorf("failed to link artist to artwork: %w", err)
	}
	return nil
}

// LinkArtistCollection records that an artist appears in a collection
func (s *pgStore) LinkArtistCollection(ctx context.Context, artistID, collectionID uint64) error {
	link := schema.ArtistCollection{ArtistID: artistID, CollectionID: collectionID}
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error; err != nil {
		return fmt.Errorf("failed to link artist to collection: %w", err)
	}
	return nil
}

// GetArtworkArtistIDs returns the artist ids linked to an artwork
func (s *pgStore) GetArtworkArtistIDs(ctx context.Context, artworkID uint64) ([]uint64, error) {
	var ids []uint64
	err := s.db.WithContext(ctx).
		Model(&schema.ArtistArtwork{}).
		Where("artwork_id = ?", artworkID).
		Order("artist_id ASC").
		Pluck("artist_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get artwork artists: %w", err)
	}
	return ids, nil
}

// GetCollectionArtistIDs returns the artist ids linked to a collection
func (s *pgStore) GetCollectionArtistIDs(ctx context.Context, collectionID uint64) ([]uint64, error) {
	var ids []uint64
	err := s.db.WithContext(ctx).
		Model(&schema.ArtistCollection{}).
		Where("collection_id = ?", collectionID).
		Order("artist_id ASC").
		Pluck("artist_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get collection artists: %w", err)
	}
	return ids, nil
}

// =============================================================================
// Key-value store
// =============================================================================

// SetKeyValue sets a key-value pair in the key-value store
func (s *pgStore) SetKeyValue(ctx context.Context, key string, value string) error {
	kv := schema.KeyValueStore{
		Key:   key,
		Value: value,
	}

	if err := s.db.WithContext(ctx).Save(&kv).Error; err != nil {
		return fmt.Errorf("failed to set key-value: %w", err)
	}

	return nil
}

// GetKeyValue retrieves a value by key from the key-value store
func (s *pgStore) GetKeyValue(ctx context.Context, key string) (string, error) {
	var kv schema.KeyValueStore
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&kv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get key-value: %w", err)
	}

	return kv.Value, nil
}

// DeleteKeyValue removes a key from the key-value store
func (s *pgStore) DeleteKeyValue(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Where("key = ?", key).Delete(&schema.KeyValueStore{}).Error; err != nil {
		return fmt.Errorf("failed to delete key-value: %w", err)
	}
	return nil
}
