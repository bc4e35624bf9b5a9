package objkt

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/wallace-museum/nft-importer/internal/adapter"
	"github.com/wallace-museum/nft-importer/internal/ratelimit"
)

// tokenFields is the token selection shared by every token query
const tokenFields = `
    token_id
    fa_contract
    name
    description
    display_uri
    artifact_uri
    thumbnail_uri
    mime
    metadata
    supply
    timestamp
    attributes {
      attribute {
        name
        value
      }
    }
    tags {
      tag {
        name
      }
    }
    creators {
      holder {
        address
        alias
        tzdomain
        description
        logo
        website
        twitter
        instagram
      }
    }
    fa {
      contract
      name
      path
      description
      logo
      website
      collection_type
      editions
    }`

const tokensByHolderQuery = `query TokensByHolder($address: String!, $offset: Int!, $limit: Int!) {
  token(
    where: {holders: {holder_address: {_eq: $address}, quantity: {_gt: "0"}}}
    order_by: {token_pk: asc}
    offset: $offset
    limit: $limit
  ) {` + tokenFields + `
  }
}`

const tokenQuery = `query GetToken($contract: String!, $tokenId: String!) {
  token(where: {fa_contract: {_eq: $contract}, token_id: {_eq: $tokenId}}) {` + tokenFields + `
  }
}`

const holderQuery = `query GetHolder($address: String!) {
  holder(where: {address: {_eq: $address}}) {
    address
    alias
    tzdomain
    description
    logo
    website
    twitter
    instagram
  }
}`

const faQuery = `query GetFa($contract: String!) {
  fa(where: {contract: {_eq: $contract}}) {
    contract
    name
    path
    description
    logo
    website
    collection_type
    editions
    floor_price
  }
}`

// Holder represents an objkt account
type Holder struct {
	Address     string `json:"address"`
	Alias       string `json:"alias"`
	Tzdomain    string `json:"tzdomain"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
	Website     string `json:"website"`
	Twitter     string `json:"twitter"`
	Instagram   string `json:"instagram"`
}

// Fa represents an objkt collection (FA2 contract or open edition path)
type Fa struct {
	Contract       string `json:"contract"`
	Name           string `json:"name"`
	Path           string `json:"path"`
	Description    string `json:"description"`
	Logo           string `json:"logo"`
	Website        string `json:"website"`
	CollectionType string `json:"collection_type"`
	Editions       int64  `json:"editions"`
}

// GraphQLRequest represents a GraphQL request
type GraphQLRequest struct {
	Query         string      `json:"query"`
	Variables     interface{} `json:"variables"`
	OperationName string      `json:"operationName"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type tokenResponse struct {
	Data struct {
		Token []json.RawMessage `json:"token"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

type holderResponse struct {
	Data struct {
		Holder []Holder `json:"holder"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

type faResponse struct {
	Data struct {
		Fa []Fa `json:"fa"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

// Client defines the interface for objkt client operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../../mocks/objkt_client.go -package=mocks -mock_names=Client=MockObjktClient
type Client interface {
	// GetTokensByHolder fetches a page of raw tokens held by an address
	GetTokensByHolder(ctx context.Context, address string, offset, limit int) ([]json.RawMessage, error)
	// GetToken fetches a raw token, nil when objkt does not know it
	GetToken(ctx context.Context, contractAddress, tokenID string) (json.RawMessage, error)
	// GetHolder fetches an account profile, nil when unknown
	GetHolder(ctx context.Context, address string) (*Holder, error)
	// GetFa fetches a collection by contract, nil when unknown
	GetFa(ctx context.Context, contractAddress string) (*Fa, error)
}

// ObjktClient implements objkt client
type ObjktClient struct {
	httpClient adapter.HTTPClient
	limiter    ratelimit.AdaptiveLimiter
	apiURL     string
}

// NewClient creates a new objkt client
func NewClient(httpClient adapter.HTTPClient, limiter ratelimit.AdaptiveLimiter, apiURL string) Client {
	return &ObjktClient{
		httpClient: httpClient,
		limiter:    limiter,
		apiURL:     apiURL,
	}
}

// query posts a GraphQL request and decodes the response into result
func (c *ObjktClient) query(ctx context.Context, operation, query string, variables map[string]interface{}, result interface{}) error {
	requestBody, err := json.Marshal(GraphQLRequest{
		Query:         query,
		Variables:     variables,
		OperationName: operation,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal GraphQL request: %w", err)
	}

	responseBody, err := ratelimit.Do(ctx, c.limiter, func(ctx context.Context) ([]byte, error) {
		return c.httpClient.Post(ctx, c.apiURL, "application/json", bytes.NewReader(requestBody))
	})
	if err != nil {
		return fmt.Errorf("failed to call objkt v3 API: %w", err)
	}

	if err := json.Unmarshal(responseBody, result); err != nil {
		return fmt.Errorf("failed to unmarshal objkt response: %w", err)
	}

	return nil
}

func graphQLErr(errs []graphQLError) error {
	if len(errs) == 0 {
		return nil
	}
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		messages = append(messages, e.Message)
	}
	return fmt.Errorf("objkt GraphQL errors: %s", strings.Join(messages, "; "))
}

// GetTokensByHolder fetches a page of raw tokens held by an address
func (c *ObjktClient) GetTokensByHolder(ctx context.Context, address string, offset, limit int) ([]json.RawMessage, error) {
	var response tokenResponse
	err := c.query(ctx, "TokensByHolder", tokensByHolderQuery, map[string]interface{}{
		"address": address,
		"offset":  offset,
		"limit":   limit,
	}, &response)
	if err != nil {
		return nil, err
	}
	if err := graphQLErr(response.Errors); err != nil {
		return nil, err
	}

	return response.Data.Token, nil
}

// GetToken fetches a raw token using GraphQL
func (c *ObjktClient) GetToken(ctx context.Context, contractAddress, tokenID string) (json.RawMessage, error) {
	var response tokenResponse
	err := c.query(ctx, "GetToken", tokenQuery, map[string]interface{}{
		"contract": contractAddress,
		"tokenId":  tokenID,
	}, &response)
	if err != nil {
		return nil, err
	}
	if err := graphQLErr(response.Errors); err != nil {
		return nil, err
	}

	if len(response.Data.Token) == 0 {
		return nil, nil
	}

	return response.Data.Token[0], nil
}

// GetHolder fetches an account profile
func (c *ObjktClient) GetHolder(ctx context.Context, address string) (*Holder, error) {
	var response holderResponse
	if err := c.query(ctx, "GetHolder", holderQuery, map[string]interface{}{"address": address}, &response); err != nil {
		return nil, err
	}
	if err := graphQLErr(response.Errors); err != nil {
		return nil, err
	}

	if len(response.Data.Holder) == 0 {
		return nil, nil
	}

	return &response.Data.Holder[0], nil
}

// GetFa fetches a collection by contract
func (c *ObjktClient) GetFa(ctx context.Context, contractAddress string) (*Fa, error) {
	var response faResponse
	if err := c.query(ctx, "GetFa", faQuery, map[string]interface{}{"contract": contractAddress}, &response); err != nil {
		return nil, err
	}
	if err := graphQLErr(response.Errors); err != nil {
		return nil, err
	}

	if len(response.Data.Fa) == 0 {
		return nil, nil
	}

	return &response.Data.Fa[0], nil
}
