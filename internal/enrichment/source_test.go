package enrichment_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wallace-museum/nft-importer/internal/domain"
	"github.com/wallace-museum/nft-importer/internal/enrichment"
	"github.com/wallace-museum/nft-importer/internal/mocks"
	"github.com/wallace-museum/nft-importer/internal/providers/vendors/objkt"
	"github.com/wallace-museum/nft-importer/internal/providers/vendors/opensea"
)

func TestEthereumSource_FetchMintDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	chain := mocks.NewMockEthereumClient(ctrl)
	src := enrichment.NewEthereumSource(chain, mocks.NewMockOpenSeaClient(ctrl))

	mint := time.Date(2021, 6, 11, 0, 0, 0, 0, time.UTC)
	chain.EXPECT().GetMintTime(gomock.Any(), testContract, "5").Return(&mint, nil)

	got, err := src.FetchMintDate(context.Background(), testContract, "5")
	require.NoError(t, err)
	assert.Equal(t, &mint, got)
}

func TestEthereumSource_NoChainClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := enrichment.NewEthereumSource(nil, mocks.NewMockOpenSeaClient(ctrl))

	got, err := src.FetchMintDate(context.Background(), testContract, "5")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestEthereumSource_FetchCreatorProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockOpenSeaClient(ctrl)
	src := enrichment.NewEthereumSource(nil, client)

	client.EXPECT().GetAccount(gomock.Any(), testCreator).Return(&opensea.Account{
		Address:       testCreator,
		Username:      "alice",
		ProfileImgURL: "https://img/avatar.png",
		Bio:           "Painter",
	}, nil)

	creator, err := src.FetchCreatorProfile(context.Background(), testCreator)

	require.NoError(t, err)
	require.NotNil(t, creator)
	assert.Equal(t, "alice", creator.Username)
	assert.Equal(t, "https://opensea.io/alice", creator.ProfileURL)
	assert.Equal(t, "https://img/avatar.png", creator.AvatarURL)
	assert.Equal(t, enrichment.RESOLUTION_SOURCE_OPENSEA, creator.ResolutionSource)
}

func TestEthereumSource_FetchCollectionMetadata(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockOpenSeaClient(ctrl)
	src := enrichment.NewEthereumSource(nil, client)

	col := &opensea.Collection{
		Collection:  "alice-works",
		Name:        "Alice Works",
		Description: "Works by Alice",
		ImageURL:    "https://img/alice.png",
		TotalSupply: 100,
		CreatedDate: "2021-06-11",
	}
	col.Fees = append(col.Fees, struct {
		Fee       float64 `json:"fee"`
		Recipient string  `json:"recipient"`
		Required  bool    `json:"required"`
	}{Fee: 7.5})
	client.EXPECT().GetCollection(gomock.Any(), "alice-works").Return(col, nil)

	got, err := src.FetchCollectionMetadata(context.Background(), "alice-works", testContract)

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Alice Works", got.Title)
	assert.Equal(t, testContract, got.ContractAddress)
	require.NotNil(t, got.TotalSupply)
	assert.Equal(t, int64(100), *got.TotalSupply)
	require.NotNil(t, got.FeePercent)
	assert.Equal(t, "7.5", got.FeePercent.String())
	require.NotNil(t, got.MintedAt)
	assert.Equal(t, 2021, got.MintedAt.Year())
}

func TestEthereumSource_SlugIsAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := enrichment.NewEthereumSource(nil, mocks.NewMockOpenSeaClient(ctrl))

	got, err := src.FetchCollectionMetadata(context.Background(), testContract, testContract)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestTezosSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	tzkt := mocks.NewMockTzKTClient(ctrl)
	objktClient := mocks.NewMockObjktClient(ctrl)
	src := enrichment.NewTezosSource(tzkt, objktClient)
	ctx := context.Background()

	first := time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC)
	tzkt.EXPECT().GetTokenFirstTime(ctx, "KT1abc", "1").Return(&first, nil)
	objktClient.EXPECT().GetHolder(ctx, "tz1artist").Return(&objkt.Holder{
		Address:   "tz1artist",
		Alias:     "zancan",
		Twitter:   "zancan",
		Instagram: "zancan.art",
	}, nil)
	objktClient.EXPECT().GetFa(ctx, "KT1abc").Return(&objkt.Fa{
		Contract:    "KT1abc",
		Name:        "Garden, Monoliths",
		Path:        "garden-monoliths",
		Description: "Generative series",
		Logo:        "ipfs://QmLogo",
		Editions:    256,
	}, nil)

	mint, err := src.FetchMintDate(ctx, "KT1abc", "1")
	require.NoError(t, err)
	assert.Equal(t, &first, mint)

	creator, err := src.FetchCreatorProfile(ctx, "tz1artist")
	require.NoError(t, err)
	require.NotNil(t, creator)
	assert.Equal(t, "zancan", creator.Username)
	assert.Equal(t, "https://objkt.com/profile/tz1artist", creator.ProfileURL)
	assert.Equal(t, map[string]string{"twitter": "zancan", "instagram": "zancan.art"}, creator.SocialLinks)

	collection, err := src.FetchCollectionMetadata(ctx, "", "KT1abc")
	require.NoError(t, err)
	require.NotNil(t, collection)
	assert.Equal(t, "garden-monoliths", collection.Slug)
	assert.Equal(t, domain.BlockchainTezos, collection.Blockchain)
	assert.Equal(t, int64(256), *collection.TotalSupply)
}

func TestTezosSource_UnknownHolder(t *testing.T) {
	ctrl := gomock.NewController(t)
	objktClient := mocks.NewMockObjktClient(ctrl)
	src := enrichment.NewTezosSource(mocks.NewMockTzKTClient(ctrl), objktClient)

	objktClient.EXPECT().GetHolder(gomock.Any(), "tz1nobody").Return(nil, nil)

	creator, err := src.FetchCreatorProfile(context.Background(), "tz1nobody")
	assert.NoError(t, err)
	assert.Nil(t, creator)
}
