package source

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/wallace-museum/nft-importer/internal/domain"
	"github.com/wallace-museum/nft-importer/internal/providers/vendors/objkt"
)

type tezosAdapter struct {
	client objkt.Client
	limit  int
}

// NewTezosAdapter creates an adapter over the objkt GraphQL API. The cursor is the row offset.
func NewTezosAdapter(client objkt.Client) Adapter {
	return &tezosAdapter{client: client, limit: DEFAULT_PAGE_LIMIT}
}

func (a *tezosAdapter) Source() domain.DataSource {
	return domain.DataSourceTezos
}

func (a *tezosAdapter) Blockchain() domain.Blockchain {
	return domain.BlockchainTezos
}

func tezosIdentifiers(raw json.RawMessage) (string, string, error) {
	var ids struct {
		FaContract string `json:"fa_contract"`
		TokenID    string `json:"token_id"`
	}
	if err := json.Unmarshal(raw, &ids); err != nil {
		return "", "", err
	}
	return ids.FaContract, ids.TokenID, nil
}

func (a *tezosAdapter) FetchByWallet(ctx context.Context, address string, cursor *string) (*Page, error) {
	offset := 0
	if cursor != nil && *cursor != "" {
		n, err := strconv.Atoi(*cursor)
		if err != nil || n < 0 {
			return nil, &AdapterError{Source: a.Source(), Op: "fetch_by_wallet", Err: fmt.Errorf("invalid cursor: %q", *cursor)}
		}
		offset = n
	}

	tokens, err := a.client.GetTokensByHolder(ctx, address, offset, a.limit)
	if err != nil {
		return nil, &AdapterError{Source: a.Source(), Op: "fetch_by_wallet", Err: err}
	}

	page := &Page{Records: decodeRecords(a.Source(), a.Blockchain(), tokens, tezosIdentifiers)}
	if len(tokens) == a.limit {
		next := strconv.Itoa(offset + len(tokens))
		page.NextCursor = &next
	}
	return page, nil
}

func (a *tezosAdapter) FetchByToken(ctx context.Context, contractAddress, tokenID string) (*domain.RawRecord, error) {
	raw, err := a.client.GetToken(ctx, contractAddress, tokenID)
	if err != nil {
		return nil, &AdapterError{Source: a.Source(), Op: "fetch_by_token", Err: err}
	}
	if raw == nil {
		return nil, &AdapterError{Source: a.Source(), Op: "fetch_by_token", Err: domain.ErrTokenNotFound}
	}

	record, err := domain.DecodeRawRecord(a.Source(), a.Blockchain(), contractAddress, tokenID, raw)
	if err != nil {
		return nil, &AdapterError{Source: a.Source(), Op: "decode", Err: err}
	}
	return &record, nil
}
