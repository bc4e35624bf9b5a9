package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/wallace-museum/nft-importer/internal/domain"
)

// ArtworkIndex is the durable import queue: one row per nft_uid carrying the
// raw provider payload and the progress of its import
type ArtworkIndex struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// NFTUID is contractAddress:tokenId
	NFTUID string `gorm:"column:nft_uid;not null;uniqueIndex;type:text"`
	// DataSource is the provider the raw payload came from
	DataSource domain.DataSource `gorm:"column:data_source;not null;type:text"`
	// Blockchain is the chain the token lives on
	Blockchain domain.Blockchain `gorm:"column:blockchain;not null;type:text"`
	// ContractAddress as reported by the provider
	ContractAddress string `gorm:"column:contract_address;type:text"`
	// TokenID as reported by the provider
	TokenID string `gorm:"column:token_id;type:text"`
	// RawResponse is the verbatim provider payload
	RawResponse datatypes.JSON `gorm:"column:raw_response;not null"`
	// RawHash is the sha256 of the JCS canonical raw payload
	RawHash string `gorm:"column:raw_hash;type:text"`
	// NormalizedData is the NormalizedNFT produced by the last run
	NormalizedData datatypes.JSON `gorm:"column:normalized_data"`
	// ImportStatus is the lifecycle state
	ImportStatus domain.ImportStatus `gorm:"column:import_status;not null;type:text;index:idx_artwork_index_status_created,priority:1"`
	// ErrorMessage is the last failure reason
	ErrorMessage *string `gorm:"column:error_message;type:text"`
	// Attempts counts import runs against this row
	Attempts int `gorm:"column:attempts;not null;default:0"`
	// LastAttempt is reset on enqueue and stamped on every run
	LastAttempt *time.Time `gorm:"column:last_attempt"`
	// ArtworkID points at the produced artwork once imported
	ArtworkID *uint64 `gorm:"column:artwork_id;index"`
	// CreatedAt orders the queue
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime;index:idx_artwork_index_status_created,priority:2"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;autoUpdateTime"`
}

// TableName specifies the table name for the ArtworkIndex model
func (ArtworkIndex) TableName() string {
	return "artwork_index"
}
