package source

import (
	"context"
	"encoding/json"

	"github.com/wallace-museum/nft-importer/internal/domain"
	"github.com/wallace-museum/nft-importer/internal/providers/vendors/opensea"
)

type openSeaAdapter struct {
	client     opensea.Client
	chain      string
	blockchain domain.Blockchain
	limit      int
}

// NewOpenSeaAdapter creates an adapter over the OpenSea v2 API for the given chain label
func NewOpenSeaAdapter(client opensea.Client, chain string) Adapter {
	if chain == "" {
		chain = "ethereum"
	}
	return &openSeaAdapter{
		client:     client,
		chain:      chain,
		blockchain: domain.ParseBlockchain(chain),
		limit:      DEFAULT_PAGE_LIMIT,
	}
}

func (a *openSeaAdapter) Source() domain.DataSource {
	return domain.DataSourceOpenSea
}

func (a *openSeaAdapter) Blockchain() domain.Blockchain {
	return a.blockchain
}

func openSeaIdentifiers(raw json.RawMessage) (string, string, error) {
	var ids struct {
		Contract   string `json:"contract"`
		Identifier string `json:"identifier"`
	}
	if err := json.Unmarshal(raw, &ids); err != nil {
		return "", "", err
	}
	return ids.Contract, ids.Identifier, nil
}

func (a *openSeaAdapter) FetchByWallet(ctx context.Context, address string, cursor *string) (*Page, error) {
	next := ""
	if cursor != nil {
		next = *cursor
	}

	resp, err := a.client.ListAccountNFTs(ctx, a.chain, address, next, a.limit)
	if err != nil {
		return nil, &AdapterError{Source: a.Source(), Op: "fetch_by_wallet", Err: err}
	}

	page := &Page{Records: decodeRecords(a.Source(), a.blockchain, resp.NFTs, openSeaIdentifiers)}
	if resp.Next != "" {
		n := resp.Next
		page.NextCursor = &n
	}
	return page, nil
}

func (a *openSeaAdapter) FetchByToken(ctx context.Context, contractAddress, tokenID string) (*domain.RawRecord, error) {
	raw, err := a.client.GetNFT(ctx, a.chain, contractAddress, tokenID)
	if err != nil {
		return nil, &AdapterError{Source: a.Source(), Op: "fetch_by_token", Err: err}
	}
	if raw == nil {
		return nil, &AdapterError{Source: a.Source(), Op: "fetch_by_token", Err: domain.ErrTokenNotFound}
	}

	record, err := domain.DecodeRawRecord(a.Source(), a.blockchain, contractAddress, tokenID, raw)
	if err != nil {
		return nil, &AdapterError{Source: a.Source(), Op: "decode", Err: err}
	}
	return &record, nil
}
