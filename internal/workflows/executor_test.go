package workflows_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wallace-museum/nft-importer/internal/domain"
	"github.com/wallace-museum/nft-importer/internal/mocks"
	"github.com/wallace-museum/nft-importer/internal/queue"
	"github.com/wallace-museum/nft-importer/internal/source"
	"github.com/wallace-museum/nft-importer/internal/workflows"
)

type executorFixture struct {
	adapter  *mocks.MockSourceAdapter
	tracker  *mocks.MockTracker
	store    *mocks.MockStore
	executor workflows.Executor
}

func newExecutorFixture(t *testing.T) *executorFixture {
	ctrl := gomock.NewController(t)
	adapter := mocks.NewMockSourceAdapter(ctrl)
	adapter.EXPECT().Source().Return(domain.DataSourceOpenSea).AnyTimes()

	f := &executorFixture{
		adapter: adapter,
		tracker: mocks.NewMockTracker(ctrl),
		store:   mocks.NewMockStore(ctrl),
	}
	f.executor = workflows.NewExecutor(source.NewRegistry(adapter), f.tracker, f.store)
	return f
}

func TestExecutor_FetchAndEnqueueWalletPage(t *testing.T) {
	f := newExecutorFixture(t)
	ctx := context.Background()

	records := []domain.RawRecord{
		{Source: domain.DataSourceOpenSea, ContractAddress: "0xa", TokenID: "1"},
		{Source: domain.DataSourceOpenSea, ContractAddress: "0xb", TokenID: "2"},
		{Source: domain.DataSourceOpenSea, ContractAddress: "0xc", TokenID: "3"},
		{Source: domain.DataSourceOpenSea, ContractAddress: "0xd", TokenID: "4"},
	}
	next := "page-2"
	f.adapter.EXPECT().FetchByWallet(ctx, testWallet, (*string)(nil)).
		Return(&source.Page{Records: records, NextCursor: &next}, nil)

	gomock.InOrder(
		f.tracker.EXPECT().Enqueue(ctx, records[0]).Return(&queue.EnqueueResult{IndexID: 1, Status: domain.ImportStatusPending}, nil),
		f.tracker.EXPECT().Enqueue(ctx, records[1]).Return(&queue.EnqueueResult{IndexID: 2, Status: domain.ImportStatusSkipped}, nil),
		f.tracker.EXPECT().Enqueue(ctx, records[2]).Return(&queue.EnqueueResult{IndexID: 3, Status: domain.ImportStatusImported, Unchanged: true}, nil),
		f.tracker.EXPECT().Enqueue(ctx, records[3]).Return(nil, errors.New("db write failed")),
	)

	result, err := f.executor.FetchAndEnqueueWalletPage(ctx, domain.DataSourceOpenSea, testWallet, nil)

	require.NoError(t, err)
	assert.Equal(t, 4, result.Fetched)
	assert.Equal(t, 1, result.Enqueued)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 1, result.Unchanged)
	assert.Equal(t, 1, result.Failed)
	require.NotNil(t, result.NextCursor)
	assert.Equal(t, "page-2", *result.NextCursor)
}

func TestExecutor_FetchAndEnqueueWalletPage_UnsupportedSource(t *testing.T) {
	f := newExecutorFixture(t)

	result, err := f.executor.FetchAndEnqueueWalletPage(context.Background(), domain.DataSourceTezos, "tz1abc", nil)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrUnsupportedSource.Error())
	assert.Nil(t, result)
}

func TestExecutor_FetchAndEnqueueWalletPage_FetchError(t *testing.T) {
	f := newExecutorFixture(t)
	ctx := context.Background()

	f.adapter.EXPECT().FetchByWallet(ctx, testWallet, gomock.Any()).
		Return(nil, &source.AdapterError{Source: domain.DataSourceOpenSea, Op: "list account nfts", Err: errors.New("503")})

	result, err := f.executor.FetchAndEnqueueWalletPage(ctx, domain.DataSourceOpenSea, testWallet, nil)

	require.Error(t, err)
	var adapterErr *source.AdapterError
	assert.True(t, errors.As(err, &adapterErr))
	assert.Nil(t, result)
}

func TestExecutor_SaveCrawlCursor(t *testing.T) {
	f := newExecutorFixture(t)
	ctx := context.Background()

	f.store.EXPECT().SetCrawlCursor(ctx, domain.DataSourceOpenSea, testWallet, "page-3").Return(nil)
	f.store.EXPECT().ClearCrawlCursor(ctx, domain.DataSourceOpenSea, testWallet).Return(nil)

	cursor := "page-3"
	require.NoError(t, f.executor.SaveCrawlCursor(ctx, domain.DataSourceOpenSea, testWallet, &cursor))
	require.NoError(t, f.executor.SaveCrawlCursor(ctx, domain.DataSourceOpenSea, testWallet, nil))
}

func TestExecutor_GetCrawlCursor(t *testing.T) {
	f := newExecutorFixture(t)
	ctx := context.Background()

	cursor := "page-9"
	f.store.EXPECT().GetCrawlCursor(ctx, domain.DataSourceOpenSea, testWallet).Return(&cursor, nil)

	got, err := f.executor.GetCrawlCursor(ctx, domain.DataSourceOpenSea, testWallet)
	require.NoError(t, err)
	assert.Equal(t, &cursor, got)
}

func TestExecutor_ProcessQueue(t *testing.T) {
	f := newExecutorFixture(t)
	ctx := context.Background()

	f.tracker.EXPECT().ProcessQueue(ctx, domain.ImportStatusPending, 50).
		Return(&queue.BatchResult{RunID: "run", Processed: 1, Successful: 1}, nil)
	f.tracker.EXPECT().ProcessQueue(ctx, domain.ImportStatusImported, 50).
		Return(nil, queue.ErrUnclaimableStatus)

	result, err := f.executor.ProcessQueue(ctx, domain.ImportStatusPending, 50)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Successful)

	_, err = f.executor.ProcessQueue(ctx, domain.ImportStatusImported, 50)
	assert.ErrorIs(t, err, queue.ErrUnclaimableStatus)
}
