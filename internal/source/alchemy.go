package source

import (
	"context"
	"encoding/json"

	"github.com/wallace-museum/nft-importer/internal/domain"
	"github.com/wallace-museum/nft-importer/internal/providers/vendors/alchemy"
)

type alchemyAdapter struct {
	client     alchemy.Client
	blockchain domain.Blockchain
}

// NewAlchemyAdapter creates an adapter over the Alchemy NFT v3 API
func NewAlchemyAdapter(client alchemy.Client, blockchain domain.Blockchain) Adapter {
	if blockchain == "" {
		blockchain = domain.BlockchainEthereum
	}
	return &alchemyAdapter{client: client, blockchain: blockchain}
}

func (a *alchemyAdapter) Source() domain.DataSource {
	return domain.DataSourceAlchemy
}

func (a *alchemyAdapter) Blockchain() domain.Blockchain {
	return a.blockchain
}

func alchemyIdentifiers(raw json.RawMessage) (string, string, error) {
	var ids struct {
		Contract struct {
			Address string `json:"address"`
		} `json:"contract"`
		TokenID string `json:"tokenId"`
	}
	if err := json.Unmarshal(raw, &ids); err != nil {
		return "", "", err
	}
	return ids.Contract.Address, ids.TokenID, nil
}

func (a *alchemyAdapter) FetchByWallet(ctx context.Context, address string, cursor *string) (*Page, error) {
	pageKey := ""
	if cursor != nil {
		pageKey = *cursor
	}

	resp, err := a.client.GetNFTsForOwner(ctx, address, pageKey)
	if err != nil {
		return nil, &AdapterError{Source: a.Source(), Op: "fetch_by_wallet", Err: err}
	}

	page := &Page{Records: decodeRecords(a.Source(), a.blockchain, resp.OwnedNFTs, alchemyIdentifiers)}
	if resp.PageKey != "" {
		key := resp.PageKey
		page.NextCursor = &key
	}
	return page, nil
}

func (a *alchemyAdapter) FetchByToken(ctx context.Context, contractAddress, tokenID string) (*domain.RawRecord, error) {
	raw, err := a.client.GetNFTMetadata(ctx, contractAddress, tokenID)
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
