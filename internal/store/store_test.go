package store

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/wallace-museum/nft-importer/internal/domain"
	"github.com/wallace-museum/nft-importer/internal/store/schema"
)

const (
	testArtistAddress = "0xAbCdEf0123456789aBcDeF0123456789AbCdEf01"
	testOtherAddress  = "0x1111111111111111111111111111111111111111"
	testContract      = "0x2222222222222222222222222222222222222222"
)

// =============================================================================
// Test Data Builders
// =============================================================================

func buildIndexInput(contract, tokenID string) UpsertIndexInput {
	return UpsertIndexInput{
		NFTUID:          domain.NFTUID(contract, tokenID),
		DataSource:      domain.DataSourceOpenSea,
		Blockchain:      domain.BlockchainEthereum,
		ContractAddress: contract,
		TokenID:         tokenID,
		RawResponse:     []byte(`{"identifier":"` + tokenID + `"}`),
		RawHash:         "hash-" + tokenID,
		Status:          domain.ImportStatusPending,
	}
}

func enqueue(t *testing.T, store Store, contract, tokenID string) *schema.ArtworkIndex {
	t.Helper()
	row, err := store.UpsertIndex(context.Background(), buildIndexInput(contract, tokenID))
	require.NoError(t, err)
	require.NotNil(t, row)
	return row
}

func buildArtist(name string, addresses ...string) *schema.Artist {
	artist := &schema.Artist{
		Name:     name,
		Username: name,
	}
	for _, a := range addresses {
		artist.WalletAddresses = append(artist.WalletAddresses, schema.WalletAddress{
			Address:    a,
			Blockchain: domain.BlockchainEthereum,
		})
	}
	return artist
}

// =============================================================================
// Test: Artwork Index
// =============================================================================

func testArtworkIndexLifecycle(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("upsert creates a pending row", func(t *testing.T) {
		row := enqueue(t, store, testContract, "1")
		assert.NotZero(t, row.ID)
		assert.Equal(t, domain.ImportStatusPending, row.ImportStatus)
		assert.Equal(t, "0x2222222222222222222222222222222222222222:1", row.NFTUID)
		assert.JSONEq(t, `{"identifier":"1"}`, string(row.RawResponse))
		assert.Nil(t, row.LastAttempt)
	})

	t.Run("upsert refreshes the same row", func(t *testing.T) {
		first := enqueue(t, store, testContract, "2")

		input := buildIndexInput(testContract, "2")
		input.RawResponse = []byte(`{"identifier":"2","name":"changed"}`)
		input.RawHash = "hash-2b"
		input.Status = domain.ImportStatusSkipped
		second, err := store.UpsertIndex(ctx, input)
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, domain.ImportStatusSkipped, second.ImportStatus)
		assert.Equal(t, "hash-2b", second.RawHash)
	})

	t.Run("full pipeline transitions", func(t *testing.T) {
		row := enqueue(t, store, testContract, "3")

		claimed, err := store.ClaimIndex(ctx, row.ID, domain.ImportStatusPending)
		require.NoError(t, err)
		assert.True(t, claimed)

		claimed, err = store.ClaimIndex(ctx, row.ID, domain.ImportStatusPending)
		require.NoError(t, err)
		assert.False(t, claimed, "second claim must not succeed")

		require.NoError(t, store.SetIndexNormalized(ctx, row.ID, []byte(`{"title":"x"}`)))

		err = store.MarkIndexImported(ctx, row.ID, 99)
		assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)

		require.NoError(t, store.UpdateIndexStatus(ctx, row.ID, domain.ImportStatusReferenced, nil))
		require.NoError(t, store.MarkIndexImported(ctx, row.ID, 99))

		stored, err := store.GetIndexByID(ctx, row.ID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, domain.ImportStatusImported, stored.ImportStatus)
		assert.Equal(t, 1, stored.Attempts)
		require.NotNil(t, stored.LastAttempt)
		require.NotNil(t, stored.ArtworkID)
		assert.Equal(t, uint64(99), *stored.ArtworkID)
		assert.JSONEq(t, `{"title":"x"}`, string(stored.NormalizedData))

		err = store.MarkIndexFailed(ctx, row.ID, "too late")
		assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)
	})

	t.Run("failure keeps message until re-enqueued", func(t *testing.T) {
		row := enqueue(t, store, testContract, "4")

		claimed, err := store.ClaimIndex(ctx, row.ID, domain.ImportStatusPending)
		require.NoError(t, err)
		require.True(t, claimed)
		require.NoError(t, store.MarkIndexFailed(ctx, row.ID, "boom"))

		stored, err := store.GetIndexByNFTUID(ctx, row.NFTUID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, domain.ImportStatusFailed, stored.ImportStatus)
		require.NotNil(t, stored.ErrorMessage)
		assert.Equal(t, "boom", *stored.ErrorMessage)

		again := enqueue(t, store, testContract, "4")
		assert.Equal(t, domain.ImportStatusPending, again.ImportStatus)
		assert.Nil(t, again.ErrorMessage)
		assert.Nil(t, again.LastAttempt)
		assert.Equal(t, 1, again.Attempts)
	})

	t.Run("missing rows", func(t *testing.T) {
		row, err := store.GetIndexByID(ctx, 987654)
		require.NoError(t, err)
		assert.Nil(t, row)

		row, err = store.GetIndexByNFTUID(ctx, "0xnope:1")
		require.NoError(t, err)
		assert.Nil(t, row)

		err = store.MarkIndexFailed(ctx, 987654, "x")
		assert.ErrorIs(t, err, domain.ErrIndexNotFound)
	})

	t.Run("claim rejects processing as the expected status", func(t *testing.T) {
		row := enqueue(t, store, testContract, "5")
		_, err := store.ClaimIndex(ctx, row.ID, domain.ImportStatusProcessing)
		assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)
	})
}

func testQueueQueries(t *testing.T, store Store) {
	ctx := context.Background()

	a := enqueue(t, store, testContract, "10")
	b := enqueue(t, store, testContract, "11")
	c := enqueue(t, store, testContract, "12")

	ids, err := store.ListIndexIDsByStatus(ctx, domain.ImportStatusPending, 2)
	require.NoError(t, err)
	assert.Equal(t, []uint64{a.ID, b.ID}, ids)

	claimed, err := store.ClaimIndex(ctx, c.ID, domain.ImportStatusPending)
	require.NoError(t, err)
	require.True(t, claimed)
	require.NoError(t, store.MarkIndexFailed(ctx, c.ID, "upstream 500"))

	counts, err := store.CountIndexByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[domain.ImportStatusPending])
	assert.Equal(t, int64(1), counts[domain.ImportStatusFailed])
	assert.Equal(t, int64(0), counts[domain.ImportStatusImported])
	assert.Len(t, counts, len(domain.AllImportStatuses))

	failures, err := store.ListRecentFailures(ctx, 5)
	require.NoError(t, err)
	require.Len(t, failures, 1)
	assert.Equal(t, c.NFTUID, failures[0].NFTUID)
	require.NotNil(t, failures[0].ErrorMessage)
	assert.Equal(t, "upstream 500", *failures[0].ErrorMessage)

	requeued, err := store.RequeueFailed(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(0), requeued, "row already used its single attempt")

	requeued, err = store.RequeueFailed(ctx, 3, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), requeued)

	row, err := store.GetIndexByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ImportStatusPending, row.ImportStatus)
}

func testReclaimStale(t *testing.T, store Store) {
	ctx := context.Background()

	processing := enqueue(t, store, testContract, "20")
	normalized := enqueue(t, store, testContract, "21")
	pending := enqueue(t, store, testContract, "22")

	for _, row := range []*schema.ArtworkIndex{processing, normalized} {
		claimed, err := store.ClaimIndex(ctx, row.ID, domain.ImportStatusPending)
		require.NoError(t, err)
		require.True(t, claimed)
	}
	require.NoError(t, store.SetIndexNormalized(ctx, normalized.ID, []byte(`{}`)))

	// leases still fresh
	reclaimed, err := store.ReclaimStale(ctx, time.Now().UTC().Add(-time.Hour), 10)
	require.NoError(t, err)
	assert.Equal(t, int64(0), reclaimed)

	reclaimed, err = store.ReclaimStale(ctx, time.Now().UTC().Add(time.Minute), 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), reclaimed)

	for _, id := range []uint64{processing.ID, normalized.ID} {
		row, err := store.GetIndexByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, domain.ImportStatusFailed, row.ImportStatus)
		require.NotNil(t, row.ErrorMessage)
		assert.Equal(t, domain.ErrImportLeaseExpired.Error(), *row.ErrorMessage)
	}

	row, err := store.GetIndexByID(ctx, pending.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ImportStatusPending, row.ImportStatus)

	requeued, err := store.RequeueFailed(ctx, 3, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), requeued)
}

// =============================================================================
// Test: Artists
// =============================================================================

func testArtists(t *testing.T, store Store) {
	ctx := context.Background()

	artist := buildArtist("alice", testArtistAddress)
	require.NoError(t, store.CreateArtist(ctx, artist))
	require.NotZero(t, artist.ID)

	t.Run("find by address is case-insensitive", func(t *testing.T) {
		found, err := store.FindArtistByAddress(ctx, "0xABCDEF0123456789ABCDEF0123456789ABCDEF01", domain.BlockchainEthereum)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, artist.ID, found.ID)
	})

	t.Run("address lookup is per chain", func(t *testing.T) {
		found, err := store.FindArtistByAddress(ctx, testArtistAddress, domain.BlockchainTezos)
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("find by name is case-insensitive", func(t *testing.T) {
		found, err := store.FindArtistByName(ctx, "ALICE")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, artist.ID, found.ID)

		found, err = store.FindArtistByName(ctx, "nobody")
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("duplicate name", func(t *testing.T) {
		err := store.CreateArtist(ctx, buildArtist("Alice"))
		assert.ErrorIs(t, err, ErrDuplicateArtistName)
	})

	t.Run("update re-syncs addresses", func(t *testing.T) {
		found, err := store.GetArtistByID(ctx, artist.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		require.Len(t, found.WalletAddresses, 1)

		found.WalletAddresses = append(found.WalletAddresses, schema.WalletAddress{
			Address:    testOtherAddress,
			Blockchain: domain.BlockchainEthereum,
		})
		found.Bio = "painter"
		require.NoError(t, store.UpdateArtist(ctx, found))

		byNew, err := store.FindArtistByAddress(ctx, testOtherAddress, domain.BlockchainEthereum)
		require.NoError(t, err)
		require.NotNil(t, byNew)
		assert.Equal(t, artist.ID, byNew.ID)
		assert.Equal(t, "painter", byNew.Bio)
		assert.True(t, byNew.HasAddress(testOtherAddress, domain.BlockchainEthereum))

		byOld, err := store.FindArtistByAddress(ctx, testArtistAddress, domain.BlockchainEthereum)
		require.NoError(t, err)
		require.NotNil(t, byOld)
	})

	t.Run("rename onto a taken name", func(t *testing.T) {
		bob := buildArtist("bob")
		require.NoError(t, store.CreateArtist(ctx, bob))

		bob.Name = "alice"
		err := store.UpdateArtist(ctx, bob)
		assert.ErrorIs(t, err, ErrDuplicateArtistName)
	})

	t.Run("social links round trip", func(t *testing.T) {
		carol := buildArtist("carol")
		carol.SocialLinks = datatypes.NewJSONType(map[string]string{"twitter": "https://x.com/carol"})
		require.NoError(t, store.CreateArtist(ctx, carol))

		found, err := store.GetArtistByID(ctx, carol.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "https://x.com/carol", found.SocialLinks.Data()["twitter"])
	})
}

// =============================================================================
// Test: Collections
// =============================================================================

func testCollections(t *testing.T, store Store) {
	ctx := context.Background()

	collection := &schema.Collection{
		Slug:            "fidenza",
		Title:           "Fidenza",
		ContractAddress: testContract,
		Blockchain:      domain.BlockchainEthereum,
		FeePercent:      decimal.NullDecimal{Decimal: decimal.RequireFromString("2.5"), Valid: true},
	}
	require.NoError(t, store.UpsertCollection(ctx, collection))
	require.NotZero(t, collection.ID)

	t.Run("upsert by slug keeps the id", func(t *testing.T) {
		again := &schema.Collection{
			Slug:        "fidenza",
			Title:       "Fidenza by Tyler Hobbs",
			Description: "flow fields",
			Blockchain:  domain.BlockchainEthereum,
		}
		require.NoError(t, store.UpsertCollection(ctx, again))
		assert.Equal(t, collection.ID, again.ID)

		stored, err := store.GetCollectionBySlug(ctx, "fidenza")
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, "Fidenza by Tyler Hobbs", stored.Title)
		assert.Equal(t, "flow fields", stored.Description)
		assert.False(t, stored.LastSyncedAt.IsZero())
	})

	t.Run("save existing keeps fee percent", func(t *testing.T) {
		stored, err := store.GetCollectionByID(ctx, collection.ID)
		require.NoError(t, err)
		require.NotNil(t, stored)

		stored.FeePercent = decimal.NullDecimal{Decimal: decimal.RequireFromString("7.5"), Valid: true}
		require.NoError(t, store.UpsertCollection(ctx, stored))

		reloaded, err := store.GetCollectionByID(ctx, collection.ID)
		require.NoError(t, err)
		require.True(t, reloaded.FeePercent.Valid)
		assert.True(t, reloaded.FeePercent.Decimal.Equal(decimal.RequireFromString("7.5")))
	})

	t.Run("missing slug", func(t *testing.T) {
		stored, err := store.GetCollectionBySlug(ctx, "nope")
		require.NoError(t, err)
		assert.Nil(t, stored)
	})
}

// =============================================================================
// Test: Artworks
// =============================================================================

func testArtworks(t *testing.T, store Store) {
	ctx := context.Background()

	image := "https://example.com/1.png"
	artwork := &schema.Artwork{
		UID:             domain.NFTUID(testContract, "1"),
		ContractAddress: testContract,
		TokenID:         "1",
		Title:           "First",
		ImageURL:        &image,
		Blockchain:      domain.BlockchainEthereum,
		TokenStandard:   domain.StandardERC721,
		Attributes:      datatypes.JSONSlice[domain.Attribute]{{TraitType: "Palette", Value: "Luxe"}},
		Tags:            datatypes.JSONSlice[string]{"generative"},
	}

	created, err := store.UpsertArtwork(ctx, artwork)
	require.NoError(t, err)
	assert.True(t, created)
	require.NotZero(t, artwork.ID)

	t.Run("second upsert updates in place", func(t *testing.T) {
		again := &schema.Artwork{
			UID:             domain.NFTUID(testContract, "1"),
			ContractAddress: testContract,
			TokenID:         "1",
			Title:           "First (renamed)",
			Blockchain:      domain.BlockchainEthereum,
		}
		created, err := store.UpsertArtwork(ctx, again)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, artwork.ID, again.ID)
		assert.WithinDuration(t, artwork.CreatedAt, again.CreatedAt, time.Millisecond)

		count, err := store.CountArtworks(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)

		stored, err := store.GetArtworkByUID(ctx, again.UID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, "First (renamed)", stored.Title)
	})

	t.Run("attributes round trip", func(t *testing.T) {
		_, err := store.UpsertArtwork(ctx, artwork)
		require.NoError(t, err)

		stored, err := store.GetArtworkByID(ctx, artwork.ID)
		require.NoError(t, err)
		require.Len(t, stored.Attributes, 1)
		assert.Equal(t, "Luxe", stored.Attributes[0].Value)
		assert.Equal(t, []string{"generative"}, []string(stored.Tags))
	})

	t.Run("links are idempotent", func(t *testing.T) {
		artist := buildArtist("linker")
		require.NoError(t, store.CreateArtist(ctx, artist))

		collection := &schema.Collection{Slug: "links", Title: "Links"}
		require.NoError(t, store.UpsertCollection(ctx, collection))

		for i := 0; i < 2; i++ {
			require.NoError(t, store.LinkArtistArtwork(ctx, artist.ID, artwork.ID))
			require.NoError(t, store.LinkArtistCollection(ctx, artist.ID, collection.ID))
		}

		artistIDs, err := store.GetArtworkArtistIDs(ctx, artwork.ID)
		require.NoError(t, err)
		assert.Equal(t, []uint64{artist.ID}, artistIDs)

		artistIDs, err = store.GetCollectionArtistIDs(ctx, collection.ID)
		require.NoError(t, err)
		assert.Equal(t, []uint64{artist.ID}, artistIDs)
	})
}

// =============================================================================
// Test: Key-value store and crawl cursors
// =============================================================================

func testKeyValueStore(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("set and get key-value", func(t *testing.T) {
		require.NoError(t, store.SetKeyValue(ctx, "test:key1", "value1"))

		value, err := store.GetKeyValue(ctx, "test:key1")
		require.NoError(t, err)
		assert.Equal(t, "value1", value)
	})

	t.Run("get non-existent key returns empty string", func(t *testing.T) {
		value, err := store.GetKeyValue(ctx, "nonexistent:key")
		require.NoError(t, err)
		assert.Equal(t, "", value)
	})

	t.Run("update and delete", func(t *testing.T) {
		require.NoError(t, store.SetKeyValue(ctx, "test:key2", "value1"))
		require.NoError(t, store.SetKeyValue(ctx, "test:key2", "value2"))

		value, err := store.GetKeyValue(ctx, "test:key2")
		require.NoError(t, err)
		assert.Equal(t, "value2", value)

		require.NoError(t, store.DeleteKeyValue(ctx, "test:key2"))
		value, err = store.GetKeyValue(ctx, "test:key2")
		require.NoError(t, err)
		assert.Equal(t, "", value)
	})
}

func testCrawlCursor(t *testing.T, store Store) {
	ctx := context.Background()

	cursor, err := store.GetCrawlCursor(ctx, domain.DataSourceOpenSea, testArtistAddress)
	require.NoError(t, err)
	assert.Nil(t, cursor)

	require.NoError(t, store.SetCrawlCursor(ctx, domain.DataSourceOpenSea, testArtistAddress, "page-2"))

	cursor, err = store.GetCrawlCursor(ctx, domain.DataSourceOpenSea, "0xABCDEF0123456789ABCDEF0123456789ABCDEF01")
	require.NoError(t, err)
	require.NotNil(t, cursor)
	assert.Equal(t, "page-2", *cursor)

	other, err := store.GetCrawlCursor(ctx, domain.DataSourceAlchemy, testArtistAddress)
	require.NoError(t, err)
	assert.Nil(t, other)

	require.NoError(t, store.ClearCrawlCursor(ctx, domain.DataSourceOpenSea, testArtistAddress))
	cursor, err = store.GetCrawlCursor(ctx, domain.DataSourceOpenSea, testArtistAddress)
	require.NoError(t, err)
	assert.Nil(t, cursor)
}

// RunStoreTests runs every store test against the store produced by initDB
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"ArtworkIndexLifecycle", testArtworkIndexLifecycle},
		{"QueueQueries", testQueueQueries},
		{"ReclaimStale", testReclaimStale},
		{"Artists", testArtists},
		{"Collections", testCollections},
		{"Artworks", testArtworks},
		{"KeyValueStore", testKeyValueStore},
		{"CrawlCursor", testCrawlCursor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}

func TestNormalizeConnectionPoolSettings(t *testing.T) {
	open, idle, life, idleTime := NormalizeConnectionPoolSettings(0, 0, 0, 0)
	assert.Equal(t, 20, open)
	assert.Equal(t, 5, idle)
	assert.NotZero(t, life)
	assert.NotZero(t, idleTime)

	open, idle, _, _ = NormalizeConnectionPoolSettings(3, 10, 0, 0)
	assert.Equal(t, 3, open)
	assert.Equal(t, 3, idle)
}
