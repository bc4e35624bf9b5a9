package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// NormalizedNFT is the canonical shape every raw record is reduced to
type NormalizedNFT struct {
	ContractAddress string         `json:"contract_address"`
	TokenID         string         `json:"token_id"`
	Title           string         `json:"title"`
	Description     string         `json:"description,omitempty"`
	ImageURL        *string        `json:"image_url,omitempty"`
	ThumbnailURL    *string        `json:"thumbnail_url,omitempty"`
	AnimationURL    *string        `json:"animation_url,omitempty"`
	GeneratorURL    *string        `json:"generator_url,omitempty"`
	MetadataURL     *string        `json:"metadata_url,omitempty"`
	Mime            string         `json:"mime,omitempty"`
	Blockchain      Blockchain     `json:"blockchain"`
	TokenStandard   TokenStandard  `json:"token_standard,omitempty"`
	Supply          *int64         `json:"supply,omitempty"`
	MintDate        *time.Time     `json:"mint_date,omitempty"`
	Dimensions      *Dimensions    `json:"dimensions,omitempty"`
	Attributes      []Attribute    `json:"attributes"`
	Features        map[string]any `json:"features,omitempty"`
	Tags            []string       `json:"tags"`
	Creator         *Creator       `json:"creator,omitempty"`
	Collection      *Collection    `json:"collection,omitempty"`
}

// HasMedia reports whether at least one displayable URL is present
func (n *NormalizedNFT) HasMedia() bool {
	return n.ImageURL != nil || n.AnimationURL != nil || n.GeneratorURL != nil
}

// Dimensions holds positive pixel dimensions
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// NewDimensions returns nil unless both sides are positive
func NewDimensions(width, height int) *Dimensions {
	if width <= 0 || height <= 0 {
		return nil
	}
	return &Dimensions{Width: width, Height: height}
}

// Attribute is a flattened trait
type Attribute struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}

// Creator is the normalized creator of a token
type Creator struct {
	Address          string            `json:"address,omitempty"`
	Username         string            `json:"username,omitempty"`
	Bio              string            `json:"bio,omitempty"`
	AvatarURL        string            `json:"avatar_url,omitempty"`
	ProfileURL       string            `json:"profile_url,omitempty"`
	WebsiteURL       string            `json:"website_url,omitempty"`
	DisplayName      string            `json:"display_name,omitempty"`
	ENSName          string            `json:"ens_name,omitempty"`
	IsVerified       *bool             `json:"is_verified,omitempty"`
	SocialLinks      map[string]string `json:"social_links,omitempty"`
	ResolutionSource string            `json:"resolution_source,omitempty"`
}

// PreferredName returns the best human name known for the creator
func (c *Creator) PreferredName() string {
	if c == nil {
		return ""
	}
	for _, n := range []string{c.DisplayName, c.Username, c.ENSName} {
		if n != "" {
			return n
		}
	}
	return ""
}

// Collection is the normalized collection a token belongs to
type Collection struct {
	Slug             string           `json:"slug"`
	Title            string           `json:"title,omitempty"`
	Description      string           `json:"description,omitempty"`
	ContractAddress  string           `json:"contract_address,omitempty"`
	Blockchain       Blockchain       `json:"blockchain,omitempty"`
	WebsiteURL       string           `json:"website_url,omitempty"`
	ImageURL         string           `json:"image_url,omitempty"`
	BannerImageURL   string           `json:"banner_image_url,omitempty"`
	IsGenerativeArt  *bool            `json:"is_generative_art,omitempty"`
	IsSharedContract *bool            `json:"is_shared_contract,omitempty"`
	TotalSupply      *int64           `json:"total_supply,omitempty"`
	MintedAt         *time.Time       `json:"minted_at,omitempty"`
	FeePercent       *decimal.Decimal `json:"fee_percent,omitempty"`
}
