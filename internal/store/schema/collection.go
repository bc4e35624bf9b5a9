package schema

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/wallace-museum/nft-importer/internal/domain"
)

// Collection is a persisted collection keyed by slug
type Collection struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Slug is the marketplace slug or the contract address
	Slug             string              `gorm:"column:slug;not null;uniqueIndex;type:text"`
	Title            string              `gorm:"column:title;not null;type:text"`
	Description      string              `gorm:"column:description;type:text"`
	ContractAddress  string              `gorm:"column:contract_address;type:text;index"`
	WebsiteURL       string              `gorm:"column:website_url;type:text"`
	ImageURL         string              `gorm:"column:image_url;type:text"`
	BannerImageURL   string              `gorm:"column:banner_image_url;type:text"`
	IsGenerativeArt  *bool               `gorm:"column:is_generative_art"`
	IsSharedContract *bool               `gorm:"column:is_shared_contract"`
	TotalSupply      *int64              `gorm:"column:total_supply"`
	MintedAt         *time.Time          `gorm:"column:minted_at"`
	FeePercent       decimal.NullDecimal `gorm:"column:fee_percent;type:numeric(7,4)"`
	Blockchain       domain.Blockchain   `gorm:"column:blockchain;type:text"`
	// LastSyncedAt is refreshed on every import touching the collection
	LastSyncedAt time.Time `gorm:"column:last_synced_at;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;not null;autoUpdateTime"`
}

// TableName specifies the table name for the Collection model
func (Collection) TableName() string {
	return "collections"
}
