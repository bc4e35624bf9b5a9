package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/wallace-museum/nft-importer/internal/domain"
)

// Artwork is the gallery record produced by an import
type Artwork struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// UID is contractAddress:tokenId
	UID             string `gorm:"column:uid;not null;uniqueIndex;type:text"`
	ContractAddress string `gorm:"column:contract_address;not null;type:text;uniqueIndex:idx_artworks_contract_token,priority:1"`
	TokenID         string `gorm:"column:token_id;not null;type:text;uniqueIndex:idx_artworks_contract_token,priority:2"`
	Title           string `gorm:"column:title;not null;type:text"`
	Description     string `gorm:"column:description;type:text"`
	ImageURL        *string `gorm:"column:image_url;type:text"`
	ThumbnailURL    *string `gorm:"column:thumbnail_url;type:text"`
	AnimationURL    *string `gorm:"column:animation_url;type:text"`
	GeneratorURL    *string `gorm:"column:generator_url;type:text"`
	MetadataURL     *string `gorm:"column:metadata_url;type:text"`
	Mime            string  `gorm:"column:mime;type:text"`
	Blockchain      domain.Blockchain    `gorm:"column:blockchain;not null;type:text"`
	TokenStandard   domain.TokenStandard `gorm:"column:token_standard;type:text"`
	Supply          *int64               `gorm:"column:supply"`
	MintDate        *time.Time           `gorm:"column:mint_date"`
	Width           *int                 `gorm:"column:width"`
	Height          *int                 `gorm:"column:height"`
	Attributes      datatypes.JSONSlice[domain.Attribute] `gorm:"column:attributes"`
	Features        datatypes.JSONMap                     `gorm:"column:features"`
	Tags            datatypes.JSONSlice[string]           `gorm:"column:tags"`
	CollectionID    *uint64                               `gorm:"column:collection_id;index"`
	CreatedAt       time.Time                             `gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt       time.Time                             `gorm:"column:updated_at;not null;autoUpdateTime"`
}

// TableName specifies the table name for the Artwork model
func (Artwork) TableName() string {
	return "artworks"
}

// ArtistArtwork links artists to artworks
type ArtistArtwork struct {
	ArtistID  uint64    `gorm:"column:artist_id;primaryKey"`
	ArtworkID uint64    `gorm:"column:artwork_id;primaryKey;index"`
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime"`
}

// TableName specifies the table name for the ArtistArtwork model
func (ArtistArtwork) TableName() string {
	return "artist_artworks"
}

// ArtistCollection links artists to the collections they appear in
type ArtistCollection struct {
	ArtistID     uint64    `gorm:"column:artist_id;primaryKey"`
	CollectionID uint64    `gorm:"column:collection_id;primaryKey;index"`
	CreatedAt    time.Time `gorm:"column:created_at;not null;autoCreateTime"`
}

// TableName specifies the table name for the ArtistCollection model
func (ArtistCollection) TableName() string {
	return "artist_collections"
}

// All returns every model managed by the store, in migration order
func All() []any {
	return []any{
		&KeyValueStore{},
		&ArtworkIndex{},
		&Artist{},
		&ArtistAddress{},
		&Collection{},
		&Artwork{},
		&ArtistArtwork{},
		&ArtistCollection{},
	}
}
