package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/wallace-museum/nft-importer/internal/domain"
)

// WalletAddress is one entry of an artist's ordered address list
type WalletAddress struct {
	Address     string            `json:"address"`
	Blockchain  domain.Blockchain `json:"blockchain"`
	LastIndexed *time.Time        `json:"lastIndexed,omitempty"`
}

// Artist is a resolved creator
type Artist struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Name is the unique display key
	Name        string `gorm:"column:name;not null;uniqueIndex;type:text"`
	Username    string `gorm:"column:username;type:text"`
	Bio         string `gorm:"column:bio;type:text"`
	AvatarURL   string `gorm:"column:avatar_url;type:text"`
	ProfileURL  string `gorm:"column:profile_url;type:text"`
	WebsiteURL  string `gorm:"column:website_url;type:text"`
	DisplayName string `gorm:"column:display_name;type:text"`
	ENSName     string `gorm:"column:ens_name;type:text"`
	IsVerified  *bool  `gorm:"column:is_verified"`
	// SocialLinks maps network name to profile URL
	SocialLinks datatypes.JSONType[map[string]string] `gorm:"column:social_links"`
	// WalletAddresses is the ordered list of known addresses; ArtistAddress mirrors it for lookup
	WalletAddresses  datatypes.JSONSlice[WalletAddress] `gorm:"column:wallet_addresses"`
	ResolutionSource string                             `gorm:"column:resolution_source;type:text"`
	CreatedAt        time.Time                          `gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt        time.Time                          `gorm:"column:updated_at;not null;autoUpdateTime"`
}

// TableName specifies the table name for the Artist model
func (Artist) TableName() string {
	return "artists"
}

// HasAddress reports whether the normalized address is already listed for the chain
func (a *Artist) HasAddress(address string, blockchain domain.Blockchain) bool {
	for _, w := range a.WalletAddresses {
		if w.Address == address && w.Blockchain == blockchain {
			return true
		}
	}
	return false
}

// ArtistAddress indexes (address, blockchain) to its artist. It is rewritten
// in the same transaction as Artist.WalletAddresses.
type ArtistAddress struct {
	Address    string            `gorm:"column:address;primaryKey;type:text"`
	Blockchain domain.Blockchain `gorm:"column:blockchain;primaryKey;type:text"`
	ArtistID   uint64            `gorm:"column:artist_id;not null;index"`
	CreatedAt  time.Time         `gorm:"column:created_at;not null;autoCreateTime"`
}

// TableName specifies the table name for the ArtistAddress model
func (ArtistAddress) TableName() string {
	return "artist_addresses"
}
