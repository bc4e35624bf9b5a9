package queue_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wallace-museum/nft-importer/internal/adapter"
	"github.com/wallace-museum/nft-importer/internal/domain"
	"github.com/wallace-museum/nft-importer/internal/enrichment"
	"github.com/wallace-museum/nft-importer/internal/importer"
	"github.com/wallace-museum/nft-importer/internal/logger"
	"github.com/wallace-museum/nft-importer/internal/mocks"
	"github.com/wallace-museum/nft-importer/internal/normalizer"
	"github.com/wallace-museum/nft-importer/internal/queue"
	"github.com/wallace-museum/nft-importer/internal/registry"
	"github.com/wallace-museum/nft-importer/internal/resolver"
	"github.com/wallace-museum/nft-importer/internal/store"
	"github.com/wallace-museum/nft-importer/internal/store/storetest"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func rawRecord(t *testing.T, contract, tokenID, payload string) domain.RawRecord {
	t.Helper()
	raw, err := domain.DecodeRawRecord(domain.DataSourceOpenSea, domain.BlockchainEthereum, contract, tokenID, []byte(payload))
	require.NoError(t, err)
	return raw
}

func newRealEngine(t *testing.T, st store.Store) importer.Engine {
	t.Helper()
	clock := adapter.NewClock()
	enricher := enrichment.New(enrichment.Config{Enabled: false}, nil, nil, nil, clock)
	t.Cleanup(enricher.Close)

	return importer.NewEngine(importer.Deps{
		Store:              st,
		Normalizer:         normalizer.New(),
		Enricher:           enricher,
		ArtistResolver:     resolver.NewArtistResolver(st),
		CollectionResolver: resolver.NewCollectionResolver(st, clock),
		Clock:              clock,
	})
}

func TestTracker_Enqueue(t *testing.T) {
	ctx := context.Background()
	st := storetest.New(t)
	tr := queue.NewTracker(st, nil, nil, adapter.NewJCS())

	raw := rawRecord(t, "0xabc", "1", `{"identifier":"1","name":"One"}`)
	res, err := tr.Enqueue(ctx, raw)
	require.NoError(t, err)
	assert.Equal(t, "0xabc:1", res.NFTUID)
	assert.Equal(t, domain.ImportStatusPending, res.Status)
	assert.False(t, res.Unchanged)

	row, err := st.GetIndexByID(ctx, res.IndexID)
	require.NoError(t, err)
	assert.Len(t, row.RawHash, 64)
	assert.Nil(t, row.LastAttempt)

	// Enqueueing again keeps a single row
	again, err := tr.Enqueue(ctx, raw)
	require.NoError(t, err)
	assert.Equal(t, res.IndexID, again.IndexID)
}

func TestTracker_EnqueueSkipsListedContract(t *testing.T) {
	ctx := context.Background()
	st := storetest.New(t)
	skiplist := registry.NewSkipRegistry(registry.SkiplistData{"ethereum": {"0xSPAM"}})
	tr := queue.NewTracker(st, nil, skiplist, adapter.NewJCS())

	res, err := tr.Enqueue(ctx, rawRecord(t, "0xspam", "1", `{"identifier":"1"}`))
	require.NoError(t, err)
	assert.Equal(t, domain.ImportStatusSkipped, res.Status)
}

func TestTracker_EnqueueUnchangedImportedRow(t *testing.T) {
	ctx := context.Background()
	st := storetest.New(t)
	tr := queue.NewTracker(st, newRealEngine(t, st), nil, adapter.NewJCS())

	payload := `{"identifier":"5","contract":"0xABC","image_url":"https://x/5.png","creator":"0xCAFE"}`
	_, err := tr.Enqueue(ctx, rawRecord(t, "0xABC", "5", payload))
	require.NoError(t, err)

	batch, err := tr.ProcessQueue(ctx, "", 0)
	require.NoError(t, err)
	require.Equal(t, 1, batch.Successful)

	// Same payload with different key order hashes the same
	res, err := tr.Enqueue(ctx, rawRecord(t, "0xABC", "5", `{"creator":"0xCAFE","image_url":"https://x/5.png","contract":"0xABC","identifier":"5"}`))
	require.NoError(t, err)
	assert.True(t, res.Unchanged)
	assert.Equal(t, domain.ImportStatusImported, res.Status)

	// A changed payload is queued again
	res, err = tr.Enqueue(ctx, rawRecord(t, "0xABC", "5", `{"identifier":"5","contract":"0xABC","image_url":"https://x/5.png","creator":"0xCAFE","creator_username":"Alice"}`))
	require.NoError(t, err)
	assert.False(t, res.Unchanged)
	assert.Equal(t, domain.ImportStatusPending, res.Status)
}

func TestTracker_EnqueueInvalidPayload(t *testing.T) {
	st := storetest.New(t)
	tr := queue.NewTracker(st, nil, nil, adapter.NewJCS())

	_, err := tr.Enqueue(context.Background(), domain.RawRecord{Source: domain.DataSourceOpenSea, ContractAddress: "0xabc", TokenID: "1"})
	assert.Error(t, err)

	_, err = tr.Enqueue(context.Background(), domain.RawRecord{Source: domain.DataSourceOpenSea, ContractAddress: "0xabc", TokenID: "1", Payload: []byte(`{not json`)})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to hash raw payload")
}

func TestTracker_ProcessQueue_PartialFailure(t *testing.T) {
	ctx := context.Background()
	st := storetest.New(t)
	tr := queue.NewTracker(st, newRealEngine(t, st), nil, adapter.NewJCS())

	for _, rec := range []domain.RawRecord{
		rawRecord(t, "0xabc", "1", `{"identifier":"1","image_url":"https://x/1.png","creator":"0xCAFE"}`),
		rawRecord(t, "", "2", `{"identifier":"2"}`),
		rawRecord(t, "0xabc", "3", `{"identifier":"3","image_url":"https://x/3.png","creator":"0xCAFE"}`),
	} {
		_, err := tr.Enqueue(ctx, rec)
		require.NoError(t, err)
	}

	batch, err := tr.ProcessQueue(ctx, domain.ImportStatusPending, 10)

	require.NoError(t, err)
	assert.NotEmpty(t, batch.RunID)
	assert.Equal(t, 3, batch.Processed)
	assert.Equal(t, 2, batch.Successful)
	assert.Equal(t, 1, batch.Failed)
	require.Len(t, batch.Errors, 1)
	assert.Equal(t, ":2", batch.Errors[0].NFTUID)
	assert.Equal(t, domain.ErrMissingContractAddress.Error(), batch.Errors[0].Message)
	assert.Len(t, batch.Results, 3)

	stats, err := tr.Stats(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Counts[domain.ImportStatusImported])
	assert.Equal(t, int64(1), stats.Counts[domain.ImportStatusFailed])
	assert.Equal(t, int64(0), stats.Counts[domain.ImportStatusPending])
	require.Len(t, stats.RecentFailures, 1)
	assert.Equal(t, ":2", stats.RecentFailures[0].NFTUID)
	assert.Equal(t, 1, stats.RecentFailures[0].Attempts)

	// Nothing left to claim
	empty, err := tr.ProcessQueue(ctx, domain.ImportStatusPending, 10)
	require.NoError(t, err)
	assert.Zero(t, empty.Processed)
}

func TestTracker_ProcessQueue_OldestFirstAndLimit(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	st := storetest.New(t)
	engine := mocks.NewMockEngine(ctrl)
	tr := queue.NewTracker(st, engine, nil, adapter.NewJCS())

	var ids []uint64
	for _, token := range []string{"1", "2", "3"} {
		res, err := tr.Enqueue(ctx, rawRecord(t, "0xabc", token, `{"identifier":"`+token+`"}`))
		require.NoError(t, err)
		ids = append(ids, res.IndexID)
		time.Sleep(5 * time.Millisecond)
	}

	var seen []uint64
	engine.EXPECT().
		ImportRecord(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id uint64, cache *enrichment.Cache) importer.ImportResult {
			require.NotNil(t, cache)
			seen = append(seen, id)
			row, err := st.GetIndexByID(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, domain.ImportStatusProcessing, row.ImportStatus)
			return importer.ImportResult{IndexID: id, Success: true}
		}).Times(2)

	batch, err := tr.ProcessQueue(ctx, domain.ImportStatusPending, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, batch.Processed)
	assert.Equal(t, ids[:2], seen)
}

func TestTracker_ProcessQueue_SharesCacheAcrossBatch(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	st := storetest.New(t)
	engine := mocks.NewMockEngine(ctrl)
	tr := queue.NewTracker(st, engine, nil, adapter.NewJCS())

	for _, token := range []string{"1", "2"} {
		_, err := tr.Enqueue(ctx, rawRecord(t, "0xabc", token, `{"identifier":"`+token+`"}`))
		require.NoError(t, err)
	}

	var caches []*enrichment.Cache
	engine.EXPECT().
		ImportRecord(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id uint64, cache *enrichment.Cache) importer.ImportResult {
			caches = append(caches, cache)
			return importer.ImportResult{IndexID: id, Errors: []string{"boom", "again"}}
		}).Times(2)

	batch, err := tr.ProcessQueue(ctx, domain.ImportStatusPending, 0)
	require.NoError(t, err)
	require.Len(t, caches, 2)
	assert.Same(t, caches[0], caches[1])
	assert.Equal(t, 2, batch.Failed)
	assert.Equal(t, "boom; again", batch.Errors[0].Message)
}

func TestTracker_ProcessQueue_InvalidStatus(t *testing.T) {
	st := storetest.New(t)
	tr := queue.NewTracker(st, nil, nil, adapter.NewJCS())

	for _, status := range []domain.ImportStatus{domain.ImportStatusProcessing, domain.ImportStatusImported, domain.ImportStatusSkipped, "bogus"} {
		_, err := tr.ProcessQueue(context.Background(), status, 10)
		assert.ErrorIs(t, err, queue.ErrUnclaimableStatus, status)
	}
}

func TestTracker_ProcessQueue_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStore(ctrl)
	tr := queue.NewTracker(st, nil, nil, adapter.NewJCS())

	st.EXPECT().ListIndexIDsByStatus(gomock.Any(), domain.ImportStatusPending, domain.DEFAULT_QUEUE_LIMIT).Return(nil, errors.New("connection refused"))

	_, err := tr.ProcessQueue(context.Background(), "", 0)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list queued rows")
}

func TestTracker_ProcessQueue_ClaimErrorDoesNotAbort(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStore(ctrl)
	engine := mocks.NewMockEngine(ctrl)
	tr := queue.NewTracker(st, engine, nil, adapter.NewJCS())
	ctx := context.Background()

	st.EXPECT().ListIndexIDsByStatus(ctx, domain.ImportStatusPending, 50).Return([]uint64{1, 2, 3}, nil)
	st.EXPECT().ClaimIndex(ctx, uint64(1), domain.ImportStatusPending).Return(false, errors.New("deadlock"))
	st.EXPECT().ClaimIndex(ctx, uint64(2), domain.ImportStatusPending).Return(false, nil)
	st.EXPECT().ClaimIndex(ctx, uint64(3), domain.ImportStatusPending).Return(true, nil)
	engine.EXPECT().ImportRecord(ctx, uint64(3), gomock.Any()).Return(importer.ImportResult{IndexID: 3, Success: true})

	batch, err := tr.ProcessQueue(ctx, domain.ImportStatusPending, 50)
	require.NoError(t, err)
	assert.Equal(t, 2, batch.Processed)
	assert.Equal(t, 1, batch.Successful)
	assert.Equal(t, 1, batch.Failed)
	assert.Equal(t, "deadlock", batch.Errors[0].Message)
}

func TestTracker_Retry(t *testing.T) {
	ctx := context.Background()
	st := storetest.New(t)
	tr := queue.NewTracker(st, newRealEngine(t, st), nil, adapter.NewJCS())

	_, err := tr.Enqueue(ctx, rawRecord(t, "", "2", `{"identifier":"2"}`))
	require.NoError(t, err)
	_, err = tr.ProcessQueue(ctx, domain.ImportStatusPending, 10)
	require.NoError(t, err)

	res, err := tr.Retry(ctx, ":2")
	require.NoError(t, err)
	assert.Equal(t, domain.ImportStatusPending, res.Status)

	_, err = tr.Retry(ctx, ":2")
	assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)

	_, err = tr.Retry(ctx, "0xnone:1")
	assert.ErrorIs(t, err, domain.ErrIndexNotFound)
}

func TestTracker_RequeueFailed(t *testing.T) {
	ctx := context.Background()
	st := storetest.New(t)
	tr := queue.NewTracker(st, newRealEngine(t, st), nil, adapter.NewJCS())

	_, err := tr.Enqueue(ctx, rawRecord(t, "", "2", `{"identifier":"2"}`))
	require.NoError(t, err)
	_, err = tr.ProcessQueue(ctx, domain.ImportStatusPending, 10)
	require.NoError(t, err)

	requeued, err := tr.RequeueFailed(ctx, 1, 0)
	require.NoError(t, err)
	assert.Zero(t, requeued)

	requeued, err = tr.RequeueFailed(ctx, 3, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), requeued)
}

func TestTracker_ReclaimStale(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStore(ctrl)
	tr := queue.NewTracker(st, nil, nil, adapter.NewJCS())
	ctx := context.Background()

	var cutoff time.Time
	st.EXPECT().ReclaimStale(ctx, gomock.Any(), domain.MAX_QUEUE_LIMIT).
		DoAndReturn(func(_ context.Context, staleBefore time.Time, _ int) (int64, error) {
			cutoff = staleBefore
			return 2, nil
		})

	before := time.Now().UTC()
	reclaimed, err := tr.ReclaimStale(ctx, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), reclaimed)
	assert.WithinDuration(t, before.Add(-queue.DEFAULT_LEASE_TIMEOUT), cutoff, 5*time.Second)

	st.EXPECT().ReclaimStale(ctx, gomock.Any(), 7).Return(int64(0), errors.New("connection refused"))
	_, err = tr.ReclaimStale(ctx, time.Minute, 7)
	assert.Error(t, err)
}
