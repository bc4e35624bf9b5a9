package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/wallace-museum/nft-importer/internal/domain"
	"github.com/wallace-museum/nft-importer/internal/store/schema"
)

// CursorStore defines the interface for storing and retrieving wallet crawl cursors
type CursorStore interface {
	// GetCrawlCursor retrieves the next-page cursor of a wallet crawl, nil when none is stored
	GetCrawlCursor(ctx context.Context, source domain.DataSource, address string) (*string, error)
	// SetCrawlCursor stores the next-page cursor of a wallet crawl
	SetCrawlCursor(ctx context.Context, source domain.DataSource, address string, cursor string) error
	// ClearCrawlCursor removes the cursor once a crawl completes
	ClearCrawlCursor(ctx context.Context, source domain.DataSource, address string) error
}

type cursorStore struct {
	db *gorm.DB
}

// NewCursorStore creates a new cursor store
func NewCursorStore(db *gorm.DB) CursorStore {
	return &cursorStore{db: db}
}

func crawlCursorKey(source domain.DataSource, address string) string {
	return fmt.Sprintf("crawl_cursor:%s:%s", source, strings.ToLower(strings.TrimSpace(address)))
}

// GetCrawlCursor retrieves the next-page cursor of a wallet crawl
func (s *cursorStore) GetCrawlCursor(ctx context.Context, source domain.DataSource, address string) (*string, error) {
	var kv schema.KeyValueStore
	err := s.db.WithContext(ctx).Where("key = ?", crawlCursorKey(source, address)).First(&kv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get crawl cursor: %w", err)
	}

	return &kv.Value, nil
}

// SetCrawlCursor stores the next-page cursor of a wallet crawl
func (s *cursorStore) SetCrawlCursor(ctx context.Context, source domain.DataSource, address string, cursor string) error {
	kv := schema.KeyValueStore{
		Key:   crawlCursorKey(source, address),
		Value: cursor,
	}

	if err := s.db.WithContext(ctx).Save(&kv).Error; err != nil {
		return fmt.Errorf("failed to set crawl cursor: %w", err)
	}

	return nil
}

// ClearCrawlCursor removes the cursor once a crawl completes
func (s *cursorStore) ClearCrawlCursor(ctx context.Context, source domain.DataSource, address string) error {
	err := s.db.WithContext(ctx).
		Where("key = ?", crawlCursorKey(source, address)).
		Delete(&schema.KeyValueStore{}).Error
	if err != nil {
		return fmt.Errorf("failed to clear crawl cursor: %w", err)
	}

	return nil
}
