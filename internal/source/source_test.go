package source_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wallace-museum/nft-importer/internal/domain"
	"github.com/wallace-museum/nft-importer/internal/logger"
	"github.com/wallace-museum/nft-importer/internal/mocks"
	"github.com/wallace-museum/nft-importer/internal/providers/vendors/alchemy"
	"github.com/wallace-museum/nft-importer/internal/providers/vendors/opensea"
	"github.com/wallace-museum/nft-importer/internal/source"
	"github.com/wallace-museum/nft-importer/internal/types"
)

func TestMain(m *testing.M) {
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

func TestOpenSeaAdapter_FetchByWallet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockOpenSeaClient(ctrl)
	adapter := source.NewOpenSeaAdapter(client, "ethereum")

	ctx := context.Background()
	client.EXPECT().
		ListAccountNFTs(ctx, "ethereum", "0xowner", "", source.DEFAULT_PAGE_LIMIT).
		Return(&opensea.AccountNFTsResponse{
			NFTs: []json.RawMessage{
				json.RawMessage(`{"identifier": "5", "contract": "0xABC", "image_url": "https://x/5.png"}`),
				json.RawMessage(`{"identifier": "6", "contract": "0xABC"}`),
				json.RawMessage(`not json`),
			},
			Next: "cursor-2",
		}, nil)

	page, err := adapter.FetchByWallet(ctx, "0xowner", nil)

	require.NoError(t, err)
	require.Len(t, page.Records, 2)
	assert.Equal(t, "0xABC:5", page.Records[0].NFTUID())
	assert.Equal(t, domain.DataSourceOpenSea, page.Records[0].Source)
	assert.Equal(t, domain.BlockchainEthereum, page.Records[0].Blockchain)
	require.NotNil(t, page.Records[0].OpenSea)
	assert.Equal(t, "https://x/5.png", page.Records[0].OpenSea.ImageURL)
	require.NotNil(t, page.NextCursor)
	assert.Equal(t, "cursor-2", *page.NextCursor)
}

func TestOpenSeaAdapter_LastPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockOpenSeaClient(ctrl)
	adapter := source.NewOpenSeaAdapter(client, "")

	ctx := context.Background()
	client.EXPECT().
		ListAccountNFTs(ctx, "ethereum", "0xowner", "cursor-2", source.DEFAULT_PAGE_LIMIT).
		Return(&opensea.AccountNFTsResponse{}, nil)

	page, err := adapter.FetchByWallet(ctx, "0xowner", types.StringPtr("cursor-2"))

	require.NoError(t, err)
	assert.Empty(t, page.Records)
	assert.Nil(t, page.NextCursor)
}

func TestOpenSeaAdapter_FetchByToken_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockOpenSeaClient(ctrl)
	adapter := source.NewOpenSeaAdapter(client, "ethereum")

	ctx := context.Background()
	client.EXPECT().GetNFT(ctx, "ethereum", "0xabc", "1").Return(nil, nil)

	record, err := adapter.FetchByToken(ctx, "0xabc", "1")

	assert.Nil(t, record)
	assert.ErrorIs(t, err, domain.ErrTokenNotFound)

	var adapterErr *source.AdapterError
	require.True(t, errors.As(err, &adapterErr))
	assert.Equal(t, domain.DataSourceOpenSea, adapterErr.Source)
	assert.Equal(t, "fetch_by_token", adapterErr.Op)
}

func TestAlchemyAdapter_FetchByWallet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockAlchemyClient(ctrl)
	adapter := source.NewAlchemyAdapter(client, "")

	ctx := context.Background()
	client.EXPECT().
		GetNFTsForOwner(ctx, "0xowner", "").
		Return(&alchemy.OwnerNFTsResponse{
			OwnedNFTs: []json.RawMessage{
				json.RawMessage(`{"contract": {"address": "0xdef"}, "tokenId": "9", "name": "Ringers #9"}`),
			},
		}, nil)

	page, err := adapter.FetchByWallet(ctx, "0xowner", nil)

	require.NoError(t, err)
	require.Len(t, page.Records, 1)
	assert.Equal(t, "0xdef:9", page.Records[0].NFTUID())
	require.NotNil(t, page.Records[0].Alchemy)
	assert.Equal(t, "Ringers #9", page.Records[0].Alchemy.Name)
	assert.Nil(t, page.NextCursor)
}

func TestAlchemyAdapter_FetchByToken_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockAlchemyClient(ctrl)
	adapter := source.NewAlchemyAdapter(client, domain.BlockchainEthereum)

	ctx := context.Background()
	upstream := errors.New("rate limited")
	client.EXPECT().GetNFTMetadata(ctx, "0xdef", "9").Return(nil, upstream)

	_, err := adapter.FetchByToken(ctx, "0xdef", "9")

	assert.ErrorIs(t, err, upstream)
}

func TestTezosAdapter_OffsetCursor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockObjktClient(ctrl)
	adapter := source.NewTezosAdapter(client)

	ctx := context.Background()
	full := make([]json.RawMessage, source.DEFAULT_PAGE_LIMIT)
	for i := range full {
		full[i] = json.RawMessage(`{"fa_contract": "KT1abc", "token_id": "1"}`)
	}

	gomock.InOrder(
		client.EXPECT().GetTokensByHolder(ctx, "tz1holder", 0, source.DEFAULT_PAGE_LIMIT).Return(full, nil),
		client.EXPECT().GetTokensByHolder(ctx, "tz1holder", source.DEFAULT_PAGE_LIMIT, source.DEFAULT_PAGE_LIMIT).
			Return([]json.RawMessage{json.RawMessage(`{"fa_contract": "KT1abc", "token_id": "2"}`)}, nil),
	)

	first, err := adapter.FetchByWallet(ctx, "tz1holder", nil)
	require.NoError(t, err)
	assert.Len(t, first.Records, source.DEFAULT_PAGE_LIMIT)
	require.NotNil(t, first.NextCursor)
	assert.Equal(t, "50", *first.NextCursor)

	second, err := adapter.FetchByWallet(ctx, "tz1holder", first.NextCursor)
	require.NoError(t, err)
	require.Len(t, second.Records, 1)
	assert.Equal(t, domain.BlockchainTezos, second.Records[0].Blockchain)
	assert.Nil(t, second.NextCursor)
}

func TestTezosAdapter_InvalidCursor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adapter := source.NewTezosAdapter(mocks.NewMockObjktClient(ctrl))

	_, err := adapter.FetchByWallet(context.Background(), "tz1holder", types.StringPtr("abc"))
	assert.Error(t, err)
}

func TestRegistry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tezos := source.NewTezosAdapter(mocks.NewMockObjktClient(ctrl))
	registry := source.NewRegistry(tezos, nil)

	got, err := registry.Get(domain.DataSourceTezos)
	require.NoError(t, err)
	assert.Equal(t, tezos, got)

	_, err = registry.Get(domain.DataSourceOpenSea)
	assert.ErrorIs(t, err, domain.ErrUnsupportedSource)
}
