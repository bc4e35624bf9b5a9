package alchemy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/wallace-museum/nft-importer/internal/adapter"
	"github.com/wallace-museum/nft-importer/internal/ratelimit"
)

const PROVIDER_NAME = "alchemy"

var ErrNoAPIKey = errors.New("no API key provided")

// OwnerNFTsResponse is a page of getNFTsForOwner. NFTs are kept verbatim.
type OwnerNFTsResponse struct {
	OwnedNFTs  []json.RawMessage `json:"ownedNfts"`
	PageKey    string            `json:"pageKey"`
	TotalCount int64             `json:"totalCount"`
}

// Client defines the interface for Alchemy NFT API operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../../mocks/alchemy_client.go -package=mocks -mock_names=Client=MockAlchemyClient
type Client interface {
	// GetNFTsForOwner fetches one page of NFTs held by owner, with metadata
	GetNFTsForOwner(ctx context.Context, owner, pageKey string) (*OwnerNFTsResponse, error)
	// GetNFTMetadata fetches the raw NFT object for a single token
	GetNFTMetadata(ctx context.Context, contractAddress, tokenID string) (json.RawMessage, error)
}

// AlchemyClient implements the Alchemy NFT API v3 client
type AlchemyClient struct {
	httpClient adapter.HTTPClient
	limiter    ratelimit.AdaptiveLimiter
	baseURL    string
	apiKey     string
}

// NewClient creates a new Alchemy client. baseURL is the network host, e.g. https://eth-mainnet.g.alchemy.com
func NewClient(httpClient adapter.HTTPClient, limiter ratelimit.AdaptiveLimiter, baseURL string, apiKey string) Client {
	return &AlchemyClient{
		httpClient: httpClient,
		limiter:    limiter,
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
	}
}

func (c *AlchemyClient) endpoint(method string, query url.Values) string {
	return fmt.Sprintf("%s/nft/v3/%s/%s?%s", c.baseURL, c.apiKey, method, query.Encode())
}

func (c *AlchemyClient) get(ctx context.Context, endpoint string) ([]byte, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	respBody, err := ratelimit.Do(ctx, c.limiter, func(ctx context.Context) ([]byte, error) {
		return c.httpClient.GetBytes(ctx, endpoint, map[string]string{"Accept": "application/json"})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to call Alchemy API: %w", err)
	}

	return respBody, nil
}

// GetNFTsForOwner fetches one page of NFTs held by owner
func (c *AlchemyClient) GetNFTsForOwner(ctx context.Context, owner, pageKey string) (*OwnerNFTsResponse, error) {
	query := url.Values{}
	query.Set("owner", strings.ToLower(owner))
	query.Set("withMetadata", "true")
	if pageKey != "" {
		query.Set("pageKey", pageKey)
	}

	respBody, err := c.get(ctx, c.endpoint("getNFTsForOwner", query))
	if err != nil {
		return nil, err
	}

	var response OwnerNFTsResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Alchemy response: %w", err)
	}

	return &response, nil
}

// GetNFTMetadata fetches the raw NFT object for a single token. Returns nil when Alchemy has no such token.
func (c *AlchemyClient) GetNFTMetadata(ctx context.Context, contractAddress, tokenID string) (json.RawMessage, error) {
	query := url.Values{}
	query.Set("contractAddress", strings.ToLower(contractAddress))
	query.Set("tokenId", tokenID)

	respBody, err := c.get(ctx, c.endpoint("getNFTMetadata", query))
	if err != nil {
		if adapter.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	if !json.Valid(respBody) {
		return nil, fmt.Errorf("failed to unmarshal Alchemy response: invalid JSON")
	}

	return json.RawMessage(respBody), nil
}
