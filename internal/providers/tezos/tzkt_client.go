package tezos

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/wallace-museum/nft-importer/internal/adapter"
	"github.com/wallace-museum/nft-importer/internal/ratelimit"
)

// TzKTToken represents a token from the TzKT API
type TzKTToken struct {
	ID        uint64    `json:"id"`
	TokenID   string    `json:"tokenId"`
	Standard  string    `json:"standard"`
	FirstTime time.Time `json:"firstTime"`
	LastTime  time.Time `json:"lastTime"`
	Contract  struct {
		Address string `json:"address"`
		Alias   string `json:"alias"`
	} `json:"contract"`
	TotalSupply string `json:"totalSupply"`
}

// TzKTClient defines an interface for TzKT API client operations to enable mocking
//
//go:generate mockgen -source=tzkt_client.go -destination=../../mocks/tzkt_client.go -package=mocks -mock_names=TzKTClient=MockTzKTClient
type TzKTClient interface {
	// GetToken returns the token record, nil when TzKT does not know it
	GetToken(ctx context.Context, contractAddress, tokenID string) (*TzKTToken, error)

	// GetTokenFirstTime returns when the token was first seen on chain, nil when unknown
	GetTokenFirstTime(ctx context.Context, contractAddress, tokenID string) (*time.Time, error)
}

// tzktClient is the concrete implementation of TzKTClient
type tzktClient struct {
	baseURL    string
	httpClient adapter.HTTPClient
	limiter    ratelimit.AdaptiveLimiter
}

// NewTzKTClient creates a new TzKT API client
func NewTzKTClient(baseURL string, httpClient adapter.HTTPClient, limiter ratelimit.AdaptiveLimiter) TzKTClient {
	return &tzktClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		limiter:    limiter,
	}
}

// GetToken retrieves a token by contract and token id
func (c *tzktClient) GetToken(ctx context.Context, contractAddress, tokenID string) (*TzKTToken, error) {
	query := url.Values{}
	query.Set("contract", contractAddress)
	query.Set("tokenId", tokenID)
	query.Set("limit", "1")
	endpoint := fmt.Sprintf("%s/v1/tokens?%s", c.baseURL, query.Encode())

	tokens, err := ratelimit.Do(ctx, c.limiter, func(ctx context.Context) ([]TzKTToken, error) {
		var tokens []TzKTToken
		err := c.httpClient.Get(ctx, endpoint, &tokens)
		return tokens, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get token %s:%s: %w", contractAddress, tokenID, err)
	}

	if len(tokens) == 0 {
		return nil, nil
	}

	return &tokens[0], nil
}

// GetTokenFirstTime returns the token's firstTime
func (c *tzktClient) GetTokenFirstTime(ctx context.Context, contractAddress, tokenID string) (*time.Time, error) {
	token, err := c.GetToken(ctx, contractAddress, tokenID)
	if err != nil {
		return nil, err
	}
	if token == nil || token.FirstTime.IsZero() {
		return nil, nil
	}

	firstTime := token.FirstTime.UTC()
	return &firstTime, nil
}
