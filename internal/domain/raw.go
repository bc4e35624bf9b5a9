package domain

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// RawRecord is an immutable provider record plus its identifying coordinates.
// Exactly one of the decoded variants is set, matching Source.
type RawRecord struct {
	Source          DataSource      `json:"source"`
	Blockchain      Blockchain      `json:"blockchain"`
	ContractAddress string          `json:"contract_address"`
	TokenID         string          `json:"token_id"`
	Payload         json.RawMessage `json:"payload"`

	OpenSea *OpenSeaPayload `json:"-"`
	Alchemy *AlchemyPayload `json:"-"`
	Tezos   *TezosPayload   `json:"-"`

	// DroppedFields lists payload members whose shape did not fit the variant
	DroppedFields []string `json:"-"`
}

// NFTUID returns contractAddress:tokenId
func (r RawRecord) NFTUID() string {
	return NFTUID(r.ContractAddress, r.TokenID)
}

// Validate checks the structural identifiers every record must carry
func (r RawRecord) Validate() error {
	if strings.TrimSpace(r.ContractAddress) == "" {
		return ErrMissingContractAddress
	}
	if strings.TrimSpace(r.TokenID) == "" {
		return ErrMissingTokenID
	}
	return nil
}

// DecodeRawRecord decodes payload into the variant selected by source
func DecodeRawRecord(source DataSource, blockchain Blockchain, contractAddress, tokenID string, payload []byte) (RawRecord, error) {
	rec := RawRecord{
		Source:          source,
		Blockchain:      blockchain,
		ContractAddress: strings.TrimSpace(contractAddress),
		TokenID:         strings.TrimSpace(tokenID),
		Payload:         json.RawMessage(payload),
	}

	var err error
	switch source {
	case DataSourceOpenSea:
		rec.OpenSea, rec.DroppedFields, err = decodeMembers[OpenSeaPayload](payload)
	case DataSourceAlchemy:
		rec.Alchemy, rec.DroppedFields, err = decodeMembers[AlchemyPayload](payload)
	case DataSourceTezos:
		rec.Tezos, rec.DroppedFields, err = decodeMembers[TezosPayload](payload)
	default:
		return rec, fmt.Errorf("%w: %s", ErrUnsupportedSource, source)
	}
	if err != nil {
		return rec, fmt.Errorf("failed to decode %s payload: %w", source, err)
	}

	return rec, nil
}

// decodeMembers decodes payload into T. When the whole object does not fit, members
// are decoded one at a time and the ones with a wrong shape are skipped and returned
// by name. It fails only when payload is not a JSON object.
func decodeMembers[T any](payload []byte) (*T, []string, error) {
	var out T
	if err := json.Unmarshal(payload, &out); err == nil {
		return &out, nil, nil
	}

	var members map[string]json.RawMessage
	if err := json.Unmarshal(payload, &members); err != nil {
		return nil, nil, fmt.Errorf("payload is not a JSON object: %w", err)
	}
	if members == nil {
		return nil, nil, fmt.Errorf("payload is not a JSON object")
	}

	keys := make([]string, 0, len(members))
	for k := range members {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out = *new(T)
	var dropped []string
	for _, k := range keys {
		member, err := json.Marshal(map[string]json.RawMessage{k: members[k]})
		if err != nil {
			dropped = append(dropped, k)
			continue
		}
		// decode into a scratch value first so a bad member never half-fills out
		var scratch T
		if err := json.Unmarshal(member, &scratch); err != nil {
			dropped = append(dropped, k)
			continue
		}
		_ = json.Unmarshal(member, &out)
	}

	return &out, dropped, nil
}

// =============================================================================
// OpenSea (API v2 NFT object)
// =============================================================================

// OpenSeaPayload is the NFT object returned by the OpenSea v2 API
type OpenSeaPayload struct {
	Identifier          string          `json:"identifier"`
	Collection          string          `json:"collection"`
	Contract            string          `json:"contract"`
	Chain               string          `json:"chain"`
	TokenStandard       string          `json:"token_standard"`
	Name                string          `json:"name"`
	Description         string          `json:"description"`
	ImageURL            string          `json:"image_url"`
	DisplayImageURL     string          `json:"display_image_url"`
	DisplayAnimationURL string          `json:"display_animation_url"`
	AnimationURL        string          `json:"animation_url"`
	MetadataURL         string          `json:"metadata_url"`
	OpenSeaURL          string          `json:"opensea_url"`
	UpdatedAt           string          `json:"updated_at"`
	CreatedDate         string          `json:"created_date"`
	MintDate            string          `json:"mint_date"`
	Supply              json.RawMessage `json:"supply"`
	Traits              []OpenSeaTrait  `json:"traits"`
	Creator             *OpenSeaCreator `json:"creator"`
	CreatorUsername     string          `json:"creator_username"`
	ImageDetails        map[string]any  `json:"image_details"`
	Dimensions          json.RawMessage `json:"dimensions"`
	Tags                json.RawMessage `json:"tags"`
	Metadata            map[string]any  `json:"metadata"`
}

// OpenSeaTrait is a single trait entry
type OpenSeaTrait struct {
	TraitType   string `json:"trait_type"`
	DisplayType string `json:"display_type"`
	MaxValue    any    `json:"max_value"`
	Value       any    `json:"value"`
}

// OpenSeaCreator is either a bare address string or an account object
type OpenSeaCreator struct {
	Address       string `json:"address"`
	Username      string `json:"username"`
	ProfileImgURL string `json:"profile_img_url"`
	Config        string `json:"config"`
}

// UnmarshalJSON accepts both "0xabc" and {"address": "0xabc", "user": {"username": "x"}}
func (c *OpenSeaCreator) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		c.Address = s
		return nil
	}

	var obj struct {
		Address       string `json:"address"`
		Username      string `json:"username"`
		ProfileImgURL string `json:"profile_img_url"`
		Config        string `json:"config"`
		User          *struct {
			Username string `json:"username"`
		} `json:"user"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	c.Address = obj.Address
	c.Username = obj.Username
	c.ProfileImgURL = obj.ProfileImgURL
	c.Config = obj.Config
	if c.Username == "" && obj.User != nil {
		c.Username = obj.User.Username
	}
	return nil
}

// =============================================================================
// Alchemy (NFT API v3)
// =============================================================================

// AlchemyPayload is the NFT object returned by the Alchemy NFT v3 API
type AlchemyPayload struct {
	Contract        AlchemyContract   `json:"contract"`
	TokenID         string            `json:"tokenId"`
	TokenType       string            `json:"tokenType"`
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	TokenURI        string            `json:"tokenUri"`
	Image           AlchemyMedia      `json:"image"`
	Animation       AlchemyMedia      `json:"animation"`
	Raw             AlchemyRaw        `json:"raw"`
	Collection      AlchemyCollection `json:"collection"`
	Mint            AlchemyMint       `json:"mint"`
	TimeLastUpdated string            `json:"timeLastUpdated"`
	Balance         string            `json:"balance"`
}

// AlchemyContract is the contract section of an Alchemy NFT
type AlchemyContract struct {
	Address          string                 `json:"address"`
	Name             string                 `json:"name"`
	Symbol           string                 `json:"symbol"`
	TotalSupply      string                 `json:"totalSupply"`
	TokenType        string                 `json:"tokenType"`
	ContractDeployer string                 `json:"contractDeployer"`
	OpenSeaMetadata  AlchemyOpenSeaMetadata `json:"openSeaMetadata"`
}

// AlchemyOpenSeaMetadata is the OpenSea collection snapshot Alchemy carries
type AlchemyOpenSeaMetadata struct {
	CollectionName  string `json:"collectionName"`
	CollectionSlug  string `json:"collectionSlug"`
	ImageURL        string `json:"imageUrl"`
	Description     string `json:"description"`
	ExternalURL     string `json:"externalUrl"`
	TwitterUsername string `json:"twitterUsername"`
	BannerImageURL  string `json:"bannerImageUrl"`
}

// AlchemyMedia is a cached media descriptor
type AlchemyMedia struct {
	CachedURL    string `json:"cachedUrl"`
	ThumbnailURL string `json:"thumbnailUrl"`
	PngURL       string `json:"pngUrl"`
	ContentType  string `json:"contentType"`
	OriginalURL  string `json:"originalUrl"`
}

// AlchemyRaw is the untouched token metadata Alchemy fetched
type AlchemyRaw struct {
	TokenURI string         `json:"tokenUri"`
	Metadata map[string]any `json:"metadata"`
	Error    string         `json:"error"`
}

// AlchemyCollection is the collection section of an Alchemy NFT
type AlchemyCollection struct {
	Name           string `json:"name"`
	Slug           string `json:"slug"`
	ExternalURL    string `json:"externalUrl"`
	BannerImageURL string `json:"bannerImageUrl"`
}

// AlchemyMint describes the mint transaction when Alchemy knows it
type AlchemyMint struct {
	MintAddress     string `json:"mintAddress"`
	BlockNumber     int64  `json:"blockNumber"`
	Timestamp       string `json:"timestamp"`
	TransactionHash string `json:"transactionHash"`
}

// =============================================================================
// Tezos (objkt v3 token)
// =============================================================================

// TezosPayload is the token object returned by the objkt v3 GraphQL API
type TezosPayload struct {
	TokenID      string           `json:"token_id"`
	FaContract   string           `json:"fa_contract"`
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	DisplayURI   string           `json:"display_uri"`
	ArtifactURI  string           `json:"artifact_uri"`
	ThumbnailURI string           `json:"thumbnail_uri"`
	Mime         string           `json:"mime"`
	Metadata     string           `json:"metadata"`
	Supply       json.RawMessage  `json:"supply"`
	Timestamp    string           `json:"timestamp"`
	IPFS         string           `json:"ipfs"`
	Attributes   []TezosAttribute `json:"attributes"`
	Tags         []TezosTag       `json:"tags"`
	Creators     []TezosCreator   `json:"creators"`
	Fa           *TezosFa         `json:"fa"`
	Formats      []TezosFormat    `json:"formats"`
	Dimensions   json.RawMessage  `json:"dimensions"`
	Features     map[string]any   `json:"features"`
}

// TezosAttribute wraps an objkt attribute row
type TezosAttribute struct {
	Attribute struct {
		Name  string `json:"name"`
		Value any    `json:"value"`
	} `json:"attribute"`
}

// TezosTag wraps an objkt tag row
type TezosTag struct {
	Tag struct {
		Name string `json:"name"`
	} `json:"tag"`
}

// TezosCreator wraps an objkt creator holder
type TezosCreator struct {
	Holder TezosHolder `json:"holder"`
}

// TezosHolder is an objkt account
type TezosHolder struct {
	Address     string `json:"address"`
	Alias       string `json:"alias"`
	Tzdomain    string `json:"tzdomain"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
	Website     string `json:"website"`
	Twitter     string `json:"twitter"`
	Instagram   string `json:"instagram"`
}

// TezosFa is the objkt collection (fa) object
type TezosFa struct {
	Contract       string          `json:"contract"`
	Name           string          `json:"name"`
	Path           string          `json:"path"`
	Description    string          `json:"description"`
	Logo           string          `json:"logo"`
	Website        string          `json:"website"`
	CollectionType string          `json:"collection_type"`
	Editions       json.RawMessage `json:"editions"`
}

// TezosFormat is a TZIP-21 format entry
type TezosFormat struct {
	URI        string `json:"uri"`
	MimeType   string `json:"mimeType"`
	Dimensions *struct {
		Value string `json:"value"`
		Unit  string `json:"unit"`
	} `json:"dimensions"`
}
