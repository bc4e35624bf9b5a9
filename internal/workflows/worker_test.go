package workflows_test

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.temporal.io/sdk/testsuite"

	"github.com/wallace-museum/nft-importer/internal/domain"
	"github.com/wallace-museum/nft-importer/internal/logger"
	"github.com/wallace-museum/nft-importer/internal/mocks"
	"github.com/wallace-museum/nft-importer/internal/queue"
	"github.com/wallace-museum/nft-importer/internal/workflows"
)

const testWallet = "0x1234567890123456789012345678901234567890"

func cursorIs(want string) interface{} {
	return mock.MatchedBy(func(c *string) bool { return c != nil && *c == want })
}

func noCursor() interface{} {
	return mock.MatchedBy(func(c *string) bool { return c == nil })
}

func strPtr(s string) *string {
	return &s
}

// CrawlWalletWorkflowTestSuite is the test suite for the import workflows
type CrawlWalletWorkflowTestSuite struct {
	suite.Suite
	testsuite.WorkflowTestSuite

	env        *testsuite.TestWorkflowEnvironment
	ctrl       *gomock.Controller
	executor   *mocks.MockExecutor
	workerCore workflows.WorkerCore
}

// SetupTest is called before each test
func (s *CrawlWalletWorkflowTestSuite) SetupTest() {
	_ = logger.Initialize(logger.Config{
		Debug: true,
	})

	s.env = s.NewTestWorkflowEnvironment()
	s.ctrl = gomock.NewController(s.T())
	s.executor = mocks.NewMockExecutor(s.ctrl)
	s.workerCore = workflows.NewWorkerCore(s.executor, workflows.WorkerCoreConfig{
		CrawlPageLimit:    3,
		ProcessBatchLimit: 25,
	})
}

// TearDownTest is called after each test
func (s *CrawlWalletWorkflowTestSuite) TearDownTest() {
	s.env.AssertExpectations(s.T())
	s.ctrl.Finish()
}

// TestCrawlWalletWorkflowTestSuite runs the test suite
func TestCrawlWalletWorkflowTestSuite(t *testing.T) {
	suite.Run(t, new(CrawlWalletWorkflowTestSuite))
}

func (s *CrawlWalletWorkflowTestSuite) input() workflows.CrawlWalletInput {
	return workflows.CrawlWalletInput{
		Address: testWallet,
		Source:  domain.DataSourceOpenSea,
	}
}

func (s *CrawlWalletWorkflowTestSuite) TestCrawlWallet_TwoPages() {
	s.env.OnActivity(s.executor.GetCrawlCursor, mock.Anything, domain.DataSourceOpenSea, testWallet).
		Return((*string)(nil), nil).Once()

	s.env.OnActivity(s.executor.FetchAndEnqueueWalletPage, mock.Anything, domain.DataSourceOpenSea, testWallet, noCursor()).
		Return(&workflows.WalletPageResult{Fetched: 50, Enqueued: 48, Skipped: 2, NextCursor: strPtr("page-2")}, nil).Once()
	s.env.OnActivity(s.executor.SaveCrawlCursor, mock.Anything, domain.DataSourceOpenSea, testWallet, cursorIs("page-2")).
		Return(nil).Once()

	s.env.OnActivity(s.executor.FetchAndEnqueueWalletPage, mock.Anything, domain.DataSourceOpenSea, testWallet, cursorIs("page-2")).
		Return(&workflows.WalletPageResult{Fetched: 10, Enqueued: 9, Unchanged: 1}, nil).Once()
	s.env.OnActivity(s.executor.SaveCrawlCursor, mock.Anything, domain.DataSourceOpenSea, testWallet, noCursor()).
		Return(nil).Once()

	s.env.ExecuteWorkflow(s.workerCore.CrawlWallet, s.input())

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())

	var result workflows.CrawlWalletResult
	s.NoError(s.env.GetWorkflowResult(&result))
	s.Equal(2, result.Pages)
	s.Equal(60, result.Fetched)
	s.Equal(57, result.Enqueued)
	s.Equal(2, result.Skipped)
	s.Equal(1, result.Unchanged)
	s.True(result.Completed)
	s.Nil(result.Batch)
}

func (s *CrawlWalletWorkflowTestSuite) TestCrawlWallet_ResumesFromStoredCursor() {
	s.env.OnActivity(s.executor.GetCrawlCursor, mock.Anything, domain.DataSourceOpenSea, testWallet).
		Return(strPtr("page-7"), nil).Once()
	s.env.OnActivity(s.executor.FetchAndEnqueueWalletPage, mock.Anything, domain.DataSourceOpenSea, testWallet, cursorIs("page-7")).
		Return(&workflows.WalletPageResult{Fetched: 3, Enqueued: 3}, nil).Once()
	s.env.OnActivity(s.executor.SaveCrawlCursor, mock.Anything, domain.DataSourceOpenSea, testWallet, noCursor()).
		Return(nil).Once()

	s.env.ExecuteWorkflow(s.workerCore.CrawlWallet, s.input())

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())

	var result workflows.CrawlWalletResult
	s.NoError(s.env.GetWorkflowResult(&result))
	s.Equal(1, result.Pages)
	s.True(result.Completed)
}

func (s *CrawlWalletWorkflowTestSuite) TestCrawlWallet_StopsAtPageLimit() {
	s.env.OnActivity(s.executor.GetCrawlCursor, mock.Anything, domain.DataSourceOpenSea, testWallet).
		Return((*string)(nil), nil).Once()
	s.env.OnActivity(s.executor.FetchAndEnqueueWalletPage, mock.Anything, domain.DataSourceOpenSea, testWallet, mock.Anything).
		Return(&workflows.WalletPageResult{Fetched: 50, Enqueued: 50, NextCursor: strPtr("more")}, nil).Times(3)
	s.env.OnActivity(s.executor.SaveCrawlCursor, mock.Anything, domain.DataSourceOpenSea, testWallet, cursorIs("more")).
		Return(nil).Times(3)

	s.env.ExecuteWorkflow(s.workerCore.CrawlWallet, s.input())

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())

	var result workflows.CrawlWalletResult
	s.NoError(s.env.GetWorkflowResult(&result))
	s.Equal(3, result.Pages)
	s.Equal(150, result.Enqueued)
	s.False(result.Completed)
}

func (s *CrawlWalletWorkflowTestSuite) TestCrawlWallet_FetchFails() {
	s.env.OnActivity(s.executor.GetCrawlCursor, mock.Anything, domain.DataSourceOpenSea, testWallet).
		Return((*string)(nil), nil).Once()
	s.env.OnActivity(s.executor.FetchAndEnqueueWalletPage, mock.Anything, domain.DataSourceOpenSea, testWallet, mock.Anything).
		Return(nil, errors.New("opensea unavailable"))

	s.env.ExecuteWorkflow(s.workerCore.CrawlWallet, s.input())

	s.True(s.env.IsWorkflowCompleted())
	s.Error(s.env.GetWorkflowError())
}

func (s *CrawlWalletWorkflowTestSuite) TestCrawlWallet_ProcessAfter() {
	input := s.input()
	input.ProcessAfter = true

	s.env.OnActivity(s.executor.GetCrawlCursor, mock.Anything, domain.DataSourceOpenSea, testWallet).
		Return((*string)(nil), nil).Once()
	s.env.OnActivity(s.executor.FetchAndEnqueueWalletPage, mock.Anything, domain.DataSourceOpenSea, testWallet, noCursor()).
		Return(&workflows.WalletPageResult{Fetched: 2, Enqueued: 2}, nil).Once()
	s.env.OnActivity(s.executor.SaveCrawlCursor, mock.Anything, domain.DataSourceOpenSea, testWallet, noCursor()).
		Return(nil).Once()
	s.env.OnActivity(s.executor.ProcessQueue, mock.Anything, domain.ImportStatusPending, 25).
		Return(&queue.BatchResult{RunID: "run-1", Processed: 2, Successful: 2}, nil).Once()

	s.env.ExecuteWorkflow(s.workerCore.CrawlWallet, input)

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())

	var result workflows.CrawlWalletResult
	s.NoError(s.env.GetWorkflowResult(&result))
	s.Require().NotNil(result.Batch)
	s.Equal("run-1", result.Batch.RunID)
	s.Equal(2, result.Batch.Successful)
}

func (s *CrawlWalletWorkflowTestSuite) TestCrawlWallet_ProcessAfterFailureKeepsCrawlResult() {
	input := s.input()
	input.ProcessAfter = true

	s.env.OnActivity(s.executor.GetCrawlCursor, mock.Anything, domain.DataSourceOpenSea, testWallet).
		Return((*string)(nil), nil).Once()
	s.env.OnActivity(s.executor.FetchAndEnqueueWalletPage, mock.Anything, domain.DataSourceOpenSea, testWallet, noCursor()).
		Return(&workflows.WalletPageResult{Fetched: 1, Enqueued: 1}, nil).Once()
	s.env.OnActivity(s.executor.SaveCrawlCursor, mock.Anything, domain.DataSourceOpenSea, testWallet, noCursor()).
		Return(nil).Once()
	s.env.OnActivity(s.executor.ProcessQueue, mock.Anything, domain.ImportStatusPending, 25).
		Return(nil, errors.New("database gone")).Once()

	s.env.ExecuteWorkflow(s.workerCore.CrawlWallet, input)

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())

	var result workflows.CrawlWalletResult
	s.NoError(s.env.GetWorkflowResult(&result))
	s.Equal(1, result.Enqueued)
	s.Nil(result.Batch)
}

func (s *CrawlWalletWorkflowTestSuite) TestProcessQueue() {
	s.env.OnActivity(s.executor.ProcessQueue, mock.Anything, domain.ImportStatusFailed, 10).
		Return(&queue.BatchResult{RunID: "run-2", Processed: 3, Successful: 1, Failed: 2}, nil).Once()

	s.env.ExecuteWorkflow(s.workerCore.ProcessQueue, workflows.ProcessQueueInput{
		Status: domain.ImportStatusFailed,
		Limit:  10,
	})

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())

	var result queue.BatchResult
	s.NoError(s.env.GetWorkflowResult(&result))
	s.Equal(2, result.Failed)
}
