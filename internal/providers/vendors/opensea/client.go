package opensea

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/wallace-museum/nft-importer/internal/adapter"
	"github.com/wallace-museum/nft-importer/internal/ratelimit"
)

const PROVIDER_NAME = "opensea"

var ErrNoAPIKey = errors.New("no API key provided")

// AccountNFTsResponse is a page of the account NFTs endpoint. NFTs are kept verbatim.
type AccountNFTsResponse struct {
	NFTs []json.RawMessage `json:"nfts"`
	Next string            `json:"next"`
}

// nftResponse represents the response from OpenSea Get NFT endpoint
type nftResponse struct {
	NFT    json.RawMessage `json:"nft"`
	Errors []string        `json:"errors,omitempty"`
}

// Account is an OpenSea account profile
type Account struct {
	Address       string `json:"address"`
	Username      string `json:"username"`
	ProfileImgURL string `json:"profile_image_url"`
	BannerImgURL  string `json:"banner_image_url"`
	Website       string `json:"website"`
	Bio           string `json:"bio"`
	JoinedDate    string `json:"joined_date"`
	SocialMedia   []struct {
		Platform string `json:"platform"`
		Username string `json:"username"`
	} `json:"social_media_accounts"`
}

// Collection is an OpenSea collection
type Collection struct {
	Collection     string `json:"collection"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	ImageURL       string `json:"image_url"`
	BannerImageURL string `json:"banner_image_url"`
	Owner          string `json:"owner"`
	ProjectURL     string `json:"project_url"`
	OpenSeaURL     string `json:"opensea_url"`
	TotalSupply    int64  `json:"total_supply"`
	CreatedDate    string `json:"created_date"`
	Fees           []struct {
		Fee       float64 `json:"fee"`
		Recipient string  `json:"recipient"`
		Required  bool    `json:"required"`
	} `json:"fees"`
	Contracts []struct {
		Address string `json:"address"`
		Chain   string `json:"chain"`
	} `json:"contracts"`
}

// Client defines the interface for OpenSea client operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../../mocks/opensea_client.go -package=mocks -mock_names=Client=MockOpenSeaClient
type Client interface {
	// ListAccountNFTs fetches one page of NFTs held by an account
	ListAccountNFTs(ctx context.Context, chain, address, next string, limit int) (*AccountNFTsResponse, error)
	// GetNFT fetches the raw NFT object from OpenSea API v2
	GetNFT(ctx context.Context, chain, contractAddress, tokenID string) (json.RawMessage, error)
	// GetAccount fetches an account profile by address or username
	GetAccount(ctx context.Context, addressOrUsername string) (*Account, error)
	// GetCollection fetches a collection by slug
	GetCollection(ctx context.Context, slug string) (*Collection, error)
}

// OpenSeaClient implements OpenSea client
type OpenSeaClient struct {
	httpClient adapter.HTTPClient
	limiter    ratelimit.AdaptiveLimiter
	apiURL     string
	apiKey     string
}

// NewClient creates a new OpenSea client
func NewClient(httpClient adapter.HTTPClient, limiter ratelimit.AdaptiveLimiter, apiURL string, apiKey string) Client {
	return &OpenSeaClient{
		httpClient: httpClient,
		limiter:    limiter,
		apiURL:     strings.TrimRight(apiURL, "/"),
		apiKey:     apiKey,
	}
}

// get performs an authenticated GET through the limiter
func (c *OpenSeaClient) get(ctx context.Context, endpoint string) ([]byte, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	headers := map[string]string{
		"X-API-KEY": c.apiKey,
	}

	respBody, err := ratelimit.Do(ctx, c.limiter, func(ctx context.Context) ([]byte, error) {
		return c.httpClient.GetBytes(ctx, endpoint, headers)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to call OpenSea API: %w", err)
	}

	return respBody, nil
}

// ListAccountNFTs fetches one page of NFTs held by an account
func (c *OpenSeaClient) ListAccountNFTs(ctx context.Context, chain, address, next string, limit int) (*AccountNFTsResponse, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	if next != "" {
		query.Set("next", next)
	}

	endpoint := fmt.Sprintf("%s/chain/%s/account/%s/nfts", c.apiURL, chain, strings.ToLower(address))
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	respBody, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var response AccountNFTsResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal OpenSea response: %w", err)
	}

	return &response, nil
}

// GetNFT fetches the raw NFT object from OpenSea API v2
func (c *OpenSeaClient) GetNFT(ctx context.Context, chain, contractAddress, tokenID string) (json.RawMessage, error) {
	endpoint := fmt.Sprintf("%s/chain/%s/contract/%s/nfts/%s",
		c.apiURL,
		chain,
		strings.ToLower(contractAddress),
		tokenID,
	)

	respBody, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var response nftResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal OpenSea response: %w", err)
	}

	if len(response.Errors) > 0 {
		return nil, fmt.Errorf("OpenSea API errors: %v", response.Errors)
	}
	if len(response.NFT) == 0 || string(response.NFT) == "null" {
		return nil, nil
	}

	return response.NFT, nil
}

// GetAccount fetches an account profile by address or username
func (c *OpenSeaClient) GetAccount(ctx context.Context, addressOrUsername string) (*Account, error) {
	endpoint := fmt.Sprintf("%s/accounts/%s", c.apiURL, url.PathEscape(addressOrUsername))

	respBody, err := c.get(ctx, endpoint)
	if err != nil {
		if adapter.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	var account Account
	if err := json.Unmarshal(respBody, &account); err != nil {
		return nil, fmt.Errorf("failed to unmarshal OpenSea account: %w", err)
	}

	return &account, nil
}

// GetCollection fetches a collection by slug
func (c *OpenSeaClient) GetCollection(ctx context.Context, slug string) (*Collection, error) {
	endpoint := fmt.Sprintf("%s/collections/%s", c.apiURL, url.PathEscape(slug))

	respBody, err := c.get(ctx, endpoint)
	if err != nil {
		if adapter.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	var collection Collection
	if err := json.Unmarshal(respBody, &collection); err != nil {
		return nil, fmt.Errorf("failed to unmarshal OpenSea collection: %w", err)
	}

	return &collection, nil
}

// TotalFeePercent sums the collection fees
func (c *Collection) TotalFeePercent() (float64, bool) {
	if c == nil || len(c.Fees) == 0 {
		return 0, false
	}
	total := 0.0
	for _, f := range c.Fees {
		total += f.Fee
	}
	return total, true
}

// SocialLinks maps the account's social media entries to profile URLs
func (a *Account) SocialLinks() map[string]string {
	if a == nil || len(a.SocialMedia) == 0 {
		return nil
	}
	links := make(map[string]string, len(a.SocialMedia))
	for _, s := range a.SocialMedia {
		if s.Username == "" {
			continue
		}
		switch strings.ToLower(s.Platform) {
		case "twitter", "x":
			links["twitter"] = "https://x.com/" + strings.TrimPrefix(s.Username, "@")
		case "instagram":
			links["instagram"] = "https://instagram.com/" + strings.TrimPrefix(s.Username, "@")
		default:
			links[strings.ToLower(s.Platform)] = s.Username
		}
	}
	return links
}
