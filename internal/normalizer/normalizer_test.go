package normalizer_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wallace-museum/nft-importer/internal/domain"
	"github.com/wallace-museum/nft-importer/internal/logger"
	"github.com/wallace-museum/nft-importer/internal/normalizer"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func decode(t *testing.T, source domain.DataSource, blockchain domain.Blockchain, contract, token, payload string) domain.RawRecord {
	t.Helper()
	raw, err := domain.DecodeRawRecord(source, blockchain, contract, token, []byte(payload))
	require.NoError(t, err)
	return raw
}

func TestNormalize_OpenSeaScenarioA(t *testing.T) {
	raw := decode(t, domain.DataSourceOpenSea, domain.BlockchainEthereum, "0xABC", "5",
		`{"identifier":"5","contract":"0xABC","image_url":"https://x/5.png","creator":"0xCAFE"}`)

	nft := normalizer.New().Normalize(raw)

	require.NotNil(t, nft.ImageURL)
	assert.Equal(t, "https://x/5.png", *nft.ImageURL)
	assert.Nil(t, nft.AnimationURL)
	assert.Nil(t, nft.ThumbnailURL)
	require.NotNil(t, nft.Creator)
	assert.Equal(t, "0xcafe", nft.Creator.Address)
	assert.Nil(t, nft.Collection)
	assert.Equal(t, "0xABC", nft.ContractAddress)
	assert.Equal(t, "5", nft.TokenID)
	assert.Equal(t, "image/png", nft.Mime)
	assert.Equal(t, "Untitled #5", nft.Title)
	assert.NotNil(t, nft.Attributes)
	assert.NotNil(t, nft.Tags)
}

func TestNormalize_TezosScenarioC(t *testing.T) {
	raw := decode(t, domain.DataSourceTezos, domain.BlockchainTezos, "KT1abc", "1", `{
		"token_id":"1",
		"name":"Circle",
		"thumbnail_uri":"ipfs://QmNrhZHUaEqxhyLfqoq1mtHSipkWHeT31LNHb1QEbDHgnc",
		"display_uri":"ipfs://QmReal"
	}`)

	nft := normalizer.New().Normalize(raw)

	require.NotNil(t, nft.ThumbnailURL)
	assert.Equal(t, "ipfs://QmReal", *nft.ThumbnailURL)
	require.NotNil(t, nft.ImageURL)
	assert.Equal(t, "ipfs://QmReal", *nft.ImageURL)
	assert.Equal(t, domain.StandardFA2, nft.TokenStandard)
}

func TestNormalize_ImageFallback(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected string
	}{
		{
			name:     "display uri wins over artifact",
			payload:  `{"display_uri":"ipfs://QmDisplay","artifact_uri":"ipfs://QmArtifact","mime":"image/png"}`,
			expected: "ipfs://QmDisplay",
		},
		{
			name:     "artifact used when display absent",
			payload:  `{"artifact_uri":"ipfs://QmArtifact","mime":"image/png"}`,
			expected: "ipfs://QmArtifact",
		},
		{
			name:     "image format used when both absent",
			payload:  `{"formats":[{"uri":"ipfs://QmFormat","mimeType":"image/jpeg"}]}`,
			expected: "ipfs://QmFormat",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := decode(t, domain.DataSourceTezos, domain.BlockchainTezos, "KT1abc", "1", tt.payload)
			nft := normalizer.New().Normalize(raw)
			require.NotNil(t, nft.ImageURL)
			assert.Equal(t, tt.expected, *nft.ImageURL)
		})
	}

	t.Run("opensea display image when image_url absent", func(t *testing.T) {
		raw := decode(t, domain.DataSourceOpenSea, domain.BlockchainEthereum, "0xabc", "1",
			`{"display_image_url":"https://cdn/x.png","metadata":{"image":"ipfs://QmRawImage"}}`)
		nft := normalizer.New().Normalize(raw)
		require.NotNil(t, nft.ImageURL)
		assert.Equal(t, "https://cdn/x.png", *nft.ImageURL)
	})

	t.Run("opensea raw metadata image last", func(t *testing.T) {
		raw := decode(t, domain.DataSourceOpenSea, domain.BlockchainEthereum, "0xabc", "1",
			`{"metadata":{"image":"ipfs://QmRawImage"}}`)
		nft := normalizer.New().Normalize(raw)
		require.NotNil(t, nft.ImageURL)
		assert.Equal(t, "ipfs://QmRawImage", *nft.ImageURL)
	})
}

func TestNormalize_AnimationGate(t *testing.T) {
	tests := []struct {
		name      string
		payload   string
		expected  *string
		expectGen bool
	}{
		{
			name:    "static png animation rejected",
			payload: `{"image_url":"https://x/5.png","animation_url":"https://x/5-large.png"}`,
		},
		{
			name:     "mp4 accepted",
			payload:  `{"image_url":"https://x/5.png","animation_url":"https://x/5.mp4"}`,
			expected: strPtr("https://x/5.mp4"),
		},
		{
			name:     "html accepted",
			payload:  `{"image_url":"https://x/5.png","animation_url":"https://x/index.html"}`,
			expected: strPtr("https://x/index.html"),
		},
		{
			name:     "generative platform accepted",
			payload:  `{"image_url":"https://x/5.png","animation_url":"https://gateway.fxhash.xyz/ipfs/QmX/"}`,
			expected: strPtr("https://gateway.fxhash.xyz/ipfs/QmX/"),
		},
		{
			name:     "ipfs without extension accepted",
			payload:  `{"image_url":"https://x/5.png","animation_url":"ipfs://QmWork"}`,
			expected: strPtr("ipfs://QmWork"),
		},
		{
			name:     "keyword accepted",
			payload:  `{"image_url":"https://x/5.png","animation_url":"https://x.io/viewer/5"}`,
			expected: strPtr("https://x.io/viewer/5"),
		},
		{
			name:     "dynamic query accepted",
			payload:  `{"image_url":"https://x/5.png","animation_url":"https://x.io/work?seed=5"}`,
			expected: strPtr("https://x.io/work?seed=5"),
		},
		{
			name:    "plain url without signal rejected",
			payload: `{"image_url":"https://x/5.png","animation_url":"https://x.io/work/5"}`,
		},
		{
			name:     "falls through to generator",
			payload:  `{"image_url":"https://x/5.png","animation_url":"https://x/5.jpg","metadata":{"generator_url":"https://generator.artblocks.io/0xabc/5"}}`,
			expected: strPtr("https://generator.artblocks.io/0xabc/5"),
		},
		{
			name:     "gif image copied to animation",
			payload:  `{"image_url":"https://x/loop.gif"}`,
			expected: strPtr("https://x/loop.gif"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := decode(t, domain.DataSourceOpenSea, domain.BlockchainEthereum, "0xabc", "5", tt.payload)
			nft := normalizer.New().Normalize(raw)
			assert.Equal(t, tt.expected, nft.AnimationURL)
		})
	}
}

func TestAcceptAnimation(t *testing.T) {
	assert.False(t, normalizer.AcceptAnimation("", ""))
	assert.False(t, normalizer.AcceptAnimation("ipfs://QmWork", "image/png"))
	assert.True(t, normalizer.AcceptAnimation("ipfs://QmWork", "video/mp4"))
	assert.False(t, normalizer.AcceptAnimation("ipfs://QmWork", "application/pdf"), "a known static mime rejects even ipfs")
	assert.True(t, normalizer.AcceptAnimation("data:text/html;base64,PGh0bWw+", ""))
	assert.True(t, normalizer.AcceptAnimation("https://objkt.com/asset/KT1/1", "image/png"))
}

func TestNormalize_TezosAnimationFromArtifact(t *testing.T) {
	raw := decode(t, domain.DataSourceTezos, domain.BlockchainTezos, "KT1abc", "9", `{
		"display_uri":"ipfs://QmDisplay",
		"artifact_uri":"ipfs://QmArtifact",
		"thumbnail_uri":"ipfs://QmThumb",
		"mime":"video/mp4"
	}`)

	nft := normalizer.New().Normalize(raw)

	require.NotNil(t, nft.AnimationURL)
	assert.Equal(t, "ipfs://QmArtifact", *nft.AnimationURL)
	assert.Equal(t, "video/mp4", nft.Mime)
	require.NotNil(t, nft.ThumbnailURL)
	assert.Equal(t, "ipfs://QmThumb", *nft.ThumbnailURL)
}

func TestNormalize_Thumbnail(t *testing.T) {
	t.Run("non tezos prefers display", func(t *testing.T) {
		raw := decode(t, domain.DataSourceAlchemy, domain.BlockchainEthereum, "0xabc", "1", `{
			"image":{"originalUrl":"https://x/orig.png","cachedUrl":"https://cache/x.png","thumbnailUrl":"https://cache/thumb.png"}
		}`)
		nft := normalizer.New().Normalize(raw)
		require.NotNil(t, nft.ImageURL)
		assert.Equal(t, "https://x/orig.png", *nft.ImageURL)
		require.NotNil(t, nft.ThumbnailURL)
		assert.Equal(t, "https://cache/x.png", *nft.ThumbnailURL)
	})

	t.Run("thumbnail equal to image dropped", func(t *testing.T) {
		raw := decode(t, domain.DataSourceOpenSea, domain.BlockchainEthereum, "0xabc", "1",
			`{"image_url":"https://x/a.png","display_image_url":"https://x/a.png"}`)
		nft := normalizer.New().Normalize(raw)
		assert.Nil(t, nft.ThumbnailURL)
	})

	t.Run("tezos prefers thumbnail", func(t *testing.T) {
		raw := decode(t, domain.DataSourceTezos, domain.BlockchainTezos, "KT1abc", "1",
			`{"display_uri":"ipfs://QmDisplay","thumbnail_uri":"ipfs://QmThumb"}`)
		nft := normalizer.New().Normalize(raw)
		require.NotNil(t, nft.ThumbnailURL)
		assert.Equal(t, "ipfs://QmThumb", *nft.ThumbnailURL)
	})
}

func TestSanitizeThumbnail(t *testing.T) {
	placeholder := "ipfs://" + domain.PLACEHOLDER_THUMBNAIL_CID
	image := "ipfs://QmImage"

	assert.Equal(t, &image, normalizer.SanitizeThumbnail(&placeholder, &image))
	assert.Nil(t, normalizer.SanitizeThumbnail(&placeholder, nil))
	assert.Nil(t, normalizer.SanitizeThumbnail(&image, &image))
	assert.Nil(t, normalizer.SanitizeThumbnail(nil, &image))

	other := "ipfs://QmOther"
	assert.Equal(t, &other, normalizer.SanitizeThumbnail(&other, &image))
}

func TestNormalize_Attributes(t *testing.T) {
	raw := decode(t, domain.DataSourceOpenSea, domain.BlockchainEthereum, "0xabc", "1", `{
		"traits":[
			{"trait_type":"Palette","value":"Warm"},
			{"trait_type":"palette","value":"warm"},
			{"trait_type":"Lines","value":12},
			{"trait_type":"Animated","value":true},
			{"trait_type":"Empty","value":null}
		],
		"metadata":{
			"properties":{"Seed":"0x01"},
			"features":{"Density":0.5}
		}
	}`)

	nft := normalizer.New().Normalize(raw)

	assert.Equal(t, []domain.Attribute{
		{TraitType: "Palette", Value: "Warm"},
		{TraitType: "Lines", Value: "12"},
		{TraitType: "Animated", Value: "true"},
		{TraitType: "Seed", Value: "0x01"},
		{TraitType: "Density", Value: "0.5"},
	}, nft.Attributes)
	assert.Equal(t, map[string]any{"Density": 0.5}, nft.Features)
}

func TestNormalize_Tags(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected []string
	}{
		{
			name:     "explicit list",
			payload:  `{"tags":["generative","Generative","abstract"]}`,
			expected: []string{"generative", "abstract"},
		},
		{
			name:     "comma separated",
			payload:  `{"tags":"glitch, pixel ,,"}`,
			expected: []string{"glitch", "pixel"},
		},
		{
			name:     "first five attribute values",
			payload:  `{"traits":[{"trait_type":"a","value":"1"},{"trait_type":"b","value":"2"},{"trait_type":"c","value":"3"},{"trait_type":"d","value":"4"},{"trait_type":"e","value":"5"},{"trait_type":"f","value":"6"}]}`,
			expected: []string{"1", "2", "3", "4", "5"},
		},
		{
			name:     "nothing",
			payload:  `{}`,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := decode(t, domain.DataSourceOpenSea, domain.BlockchainEthereum, "0xabc", "1", tt.payload)
			nft := normalizer.New().Normalize(raw)
			assert.Equal(t, tt.expected, nft.Tags)
		})
	}

	t.Run("tezos tag rows", func(t *testing.T) {
		raw := decode(t, domain.DataSourceTezos, domain.BlockchainTezos, "KT1abc", "1",
			`{"tags":[{"tag":{"name":"hicetnunc"}},{"tag":{"name":"pixelart"}}]}`)
		nft := normalizer.New().Normalize(raw)
		assert.Equal(t, []string{"hicetnunc", "pixelart"}, nft.Tags)
	})
}

func TestNormalize_MintDate(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected *time.Time
	}{
		{
			name:     "rfc3339",
			payload:  `{"mint_date":"2021-03-04T05:06:07Z"}`,
			expected: timePtr(time.Date(2021, 3, 4, 5, 6, 7, 0, time.UTC)),
		},
		{
			name:     "date only",
			payload:  `{"mint_date":"2021-03-04"}`,
			expected: timePtr(time.Date(2021, 3, 4, 0, 0, 0, 0, time.UTC)),
		},
		{
			name:     "unix seconds",
			payload:  `{"metadata":{"mint_date":1614834367}}`,
			expected: timePtr(time.Unix(1614834367, 0).UTC()),
		},
		{
			name:     "unix millis",
			payload:  `{"metadata":{"mint_date":1614834367000}}`,
			expected: timePtr(time.Unix(1614834367, 0).UTC()),
		},
		{
			name:    "garbage dropped",
			payload: `{"mint_date":"next tuesday"}`,
		},
		{
			name:     "falls back to created date",
			payload:  `{"mint_date":"bad","created_date":"2022-01-02T03:04:05.123456"}`,
			expected: timePtr(time.Date(2022, 1, 2, 3, 4, 5, 123456000, time.UTC)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := decode(t, domain.DataSourceOpenSea, domain.BlockchainEthereum, "0xabc", "1", tt.payload)
			nft := normalizer.New().Normalize(raw)
			if tt.expected == nil {
				assert.Nil(t, nft.MintDate)
				return
			}
			require.NotNil(t, nft.MintDate)
			assert.True(t, tt.expected.Equal(*nft.MintDate), "got %s", nft.MintDate)
		})
	}
}

func TestNormalize_Dimensions(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected *domain.Dimensions
	}{
		{
			name:     "explicit object",
			payload:  `{"dimensions":{"width":1200,"height":800}}`,
			expected: &domain.Dimensions{Width: 1200, Height: 800},
		},
		{
			name:     "image details",
			payload:  `{"image_details":{"width":"640","height":"480"}}`,
			expected: &domain.Dimensions{Width: 640, Height: 480},
		},
		{
			name:     "string form",
			payload:  `{"dimensions":"1920x1080"}`,
			expected: &domain.Dimensions{Width: 1920, Height: 1080},
		},
		{
			name:     "zero width falls through",
			payload:  `{"dimensions":{"width":0,"height":800},"image_details":{"width":10,"height":20}}`,
			expected: &domain.Dimensions{Width: 10, Height: 20},
		},
		{
			name:    "negative dropped",
			payload: `{"dimensions":{"width":-1,"height":800}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := decode(t, domain.DataSourceOpenSea, domain.BlockchainEthereum, "0xabc", "1", tt.payload)
			nft := normalizer.New().Normalize(raw)
			assert.Equal(t, tt.expected, nft.Dimensions)
		})
	}

	t.Run("tezos format dimensions", func(t *testing.T) {
		raw := decode(t, domain.DataSourceTezos, domain.BlockchainTezos, "KT1abc", "1",
			`{"formats":[{"uri":"ipfs://QmA","mimeType":"image/png","dimensions":{"value":"2000x2000","unit":"px"}}]}`)
		nft := normalizer.New().Normalize(raw)
		assert.Equal(t, &domain.Dimensions{Width: 2000, Height: 2000}, nft.Dimensions)
	})
}

func TestNormalize_Creator(t *testing.T) {
	t.Run("opensea object with username", func(t *testing.T) {
		raw := decode(t, domain.DataSourceOpenSea, domain.BlockchainEthereum, "0xabc", "1",
			`{"creator":{"address":"0xCAFE","user":{"username":"alice"},"config":"verified"}}`)
		nft := normalizer.New().Normalize(raw)
		require.NotNil(t, nft.Creator)
		assert.Equal(t, "0xcafe", nft.Creator.Address)
		assert.Equal(t, "alice", nft.Creator.Username)
		assert.Equal(t, "https://opensea.io/alice", nft.Creator.ProfileURL)
		require.NotNil(t, nft.Creator.IsVerified)
		assert.True(t, *nft.Creator.IsVerified)
	})

	t.Run("creator_username only", func(t *testing.T) {
		raw := decode(t, domain.DataSourceOpenSea, domain.BlockchainEthereum, "0xabc", "1",
			`{"creator":"0xCAFE","creator_username":"Alice"}`)
		nft := normalizer.New().Normalize(raw)
		require.NotNil(t, nft.Creator)
		assert.Equal(t, "Alice", nft.Creator.Username)
	})

	t.Run("artist trait fallback", func(t *testing.T) {
		raw := decode(t, domain.DataSourceOpenSea, domain.BlockchainEthereum, "0xabc", "1",
			`{"traits":[{"trait_type":"Artist","value":"Vera Molnar"}]}`)
		nft := normalizer.New().Normalize(raw)
		require.NotNil(t, nft.Creator)
		assert.Equal(t, "", nft.Creator.Address)
		assert.Equal(t, "Vera Molnar", nft.Creator.DisplayName)
	})

	t.Run("alchemy deployer", func(t *testing.T) {
		raw := decode(t, domain.DataSourceAlchemy, domain.BlockchainEthereum, "0xabc", "1",
			`{"contract":{"address":"0xabc","contractDeployer":"0x000000000000000000000000000000000000BEEF","openSeaMetadata":{"twitterUsername":"artist"}}}`)
		nft := normalizer.New().Normalize(raw)
		require.NotNil(t, nft.Creator)
		assert.Equal(t, "0x000000000000000000000000000000000000beef", nft.Creator.Address)
		assert.Equal(t, "https://twitter.com/artist", nft.Creator.SocialLinks["twitter"])
	})

	t.Run("tezos holder", func(t *testing.T) {
		raw := decode(t, domain.DataSourceTezos, domain.BlockchainTezos, "KT1abc", "1",
			`{"creators":[{"holder":{"address":"tz1VSUr8wwNhLAzempoch5d6hLRiTh8Cjcjb","alias":"bob","twitter":"https://twitter.com/bob"}}]}`)
		nft := normalizer.New().Normalize(raw)
		require.NotNil(t, nft.Creator)
		assert.Equal(t, "tz1VSUr8wwNhLAzempoch5d6hLRiTh8Cjcjb", nft.Creator.Address)
		assert.Equal(t, "bob", nft.Creator.Username)
		assert.Equal(t, "https://objkt.com/profile/tz1VSUr8wwNhLAzempoch5d6hLRiTh8Cjcjb", nft.Creator.ProfileURL)
	})

	t.Run("no creator", func(t *testing.T) {
		raw := decode(t, domain.DataSourceOpenSea, domain.BlockchainEthereum, "0xabc", "1", `{}`)
		nft := normalizer.New().Normalize(raw)
		assert.Nil(t, nft.Creator)
	})
}

func TestNormalize_Collection(t *testing.T) {
	t.Run("opensea slug", func(t *testing.T) {
		raw := decode(t, domain.DataSourceOpenSea, domain.BlockchainEthereum, "0xABC", "1",
			`{"collection":"cool-cats"}`)
		nft := normalizer.New().Normalize(raw)
		require.NotNil(t, nft.Collection)
		assert.Equal(t, "cool-cats", nft.Collection.Slug)
		assert.Equal(t, "0xabc", nft.Collection.ContractAddress)
	})

	t.Run("alchemy without slug defaults to contract", func(t *testing.T) {
		raw := decode(t, domain.DataSourceAlchemy, domain.BlockchainEthereum, "0xABC", "1",
			`{"contract":{"address":"0xABC","name":"Genesis","totalSupply":"100"}}`)
		nft := normalizer.New().Normalize(raw)
		require.NotNil(t, nft.Collection)
		assert.Equal(t, "0xabc", nft.Collection.Slug)
		assert.Equal(t, "Genesis", nft.Collection.Title)
		require.NotNil(t, nft.Collection.TotalSupply)
		assert.Equal(t, int64(100), *nft.Collection.TotalSupply)
	})

	t.Run("tezos fa", func(t *testing.T) {
		raw := decode(t, domain.DataSourceTezos, domain.BlockchainTezos, "KT1RJ6PbjHpwc3M5rw5s2Nbmefwbuwbdxton", "152",
			`{"fa":{"contract":"KT1RJ6PbjHpwc3M5rw5s2Nbmefwbuwbdxton","name":"OBJKT","path":"hicetnunc"}}`)
		nft := normalizer.New().Normalize(raw)
		require.NotNil(t, nft.Collection)
		assert.Equal(t, "hicetnunc", nft.Collection.Slug)
		require.NotNil(t, nft.Collection.IsSharedContract)
		assert.True(t, *nft.Collection.IsSharedContract)
	})
}

func TestNormalize_AlchemySharedContractCreator(t *testing.T) {
	const shared = "0x495f947276749ce646f68ac8c248420045cb7b5e"
	payload := func(tokenID, artist string) string {
		return `{"tokenId":"` + tokenID + `","tokenType":"ERC1155",
			"contract":{"address":"` + shared + `","contractDeployer":"0xD00000000000000000000000000000000000D0D1"},
			"raw":{"metadata":{"name":"Piece ` + tokenID + `","attributes":[{"trait_type":"Artist","value":"` + artist + `"}]}}}`
	}

	alice := normalizer.New().Normalize(decode(t, domain.DataSourceAlchemy, domain.BlockchainEthereum, shared, "1", payload("1", "Alice")))
	bob := normalizer.New().Normalize(decode(t, domain.DataSourceAlchemy, domain.BlockchainEthereum, shared, "2", payload("2", "Bob")))

	require.NotNil(t, alice.Creator)
	require.NotNil(t, bob.Creator)
	assert.Empty(t, alice.Creator.Address)
	assert.Empty(t, bob.Creator.Address)
	assert.Equal(t, "Alice", alice.Creator.PreferredName())
	assert.Equal(t, "Bob", bob.Creator.PreferredName())

	t.Run("own contract keeps the deployer", func(t *testing.T) {
		raw := decode(t, domain.DataSourceAlchemy, domain.BlockchainEthereum, "0xabc", "1",
			`{"tokenId":"1","contract":{"address":"0xabc","contractDeployer":"0xD00000000000000000000000000000000000D0D1"},
			"raw":{"metadata":{"attributes":[{"trait_type":"Artist","value":"Alice"}]}}}`)
		nft := normalizer.New().Normalize(raw)
		require.NotNil(t, nft.Creator)
		assert.Equal(t, "0xd00000000000000000000000000000000000d0d1", nft.Creator.Address)
	})
}

func TestNormalize_MalformedMembers(t *testing.T) {
	t.Run("opensea keeps everything but the bad members", func(t *testing.T) {
		raw := decode(t, domain.DataSourceOpenSea, domain.BlockchainEthereum, "0xABC", "5",
			`{"identifier":"5","contract":"0xABC","name":"Dawn","image_url":5,"display_image_url":"https://x/5.png","traits":{"bg":"red"},"creator":"0xCAFE"}`)

		nft := normalizer.New().Normalize(raw)

		assert.Equal(t, "Dawn", nft.Title)
		require.NotNil(t, nft.ImageURL)
		assert.Equal(t, "https://x/5.png", *nft.ImageURL)
		assert.Empty(t, nft.Attributes)
		require.NotNil(t, nft.Creator)
		assert.Equal(t, "0xcafe", nft.Creator.Address)
	})

	t.Run("objkt editions", func(t *testing.T) {
		tests := []struct {
			name     string
			editions string
			expected *int64
		}{
			{name: "number", editions: `10`, expected: int64Ptr(10)},
			{name: "numeric string", editions: `"10"`, expected: int64Ptr(10)},
			{name: "object", editions: `{"total":10}`, expected: nil},
			{name: "zero", editions: `0`, expected: nil},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				raw := decode(t, domain.DataSourceTezos, domain.BlockchainTezos, "KT1abc", "1",
					`{"token_id":"1","display_uri":"ipfs://QmReal","fa":{"contract":"KT1abc","name":"Circles","editions":`+tt.editions+`}}`)

				nft := normalizer.New().Normalize(raw)

				require.NotNil(t, nft.Collection)
				assert.Equal(t, "Circles", nft.Collection.Title)
				assert.Equal(t, tt.expected, nft.Collection.TotalSupply)
			})
		}
	})
}

func TestNormalize_UndecodedPayload(t *testing.T) {
	raw := domain.RawRecord{
		Source:          domain.DataSourceOpenSea,
		Blockchain:      domain.BlockchainEthereum,
		ContractAddress: "0xabc",
		TokenID:         "7",
		Payload:         []byte(`{"name":"Lazy","image_url":"https://x/7.png"}`),
	}
	nft := normalizer.New().Normalize(raw)
	assert.Equal(t, "Lazy", nft.Title)
	require.NotNil(t, nft.ImageURL)

	broken := raw
	broken.Payload = []byte(`{not json`)
	nft = normalizer.New().Normalize(broken)
	assert.Equal(t, "0xabc", nft.ContractAddress)
	assert.Nil(t, nft.ImageURL)
}

func int64Ptr(i int64) *int64 {
	return &i
}

func strPtr(s string) *string {
	return &s
}

func timePtr(t time.Time) *time.Time {
	return &t
}
