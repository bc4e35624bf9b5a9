package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"

	"github.com/wallace-museum/nft-importer/internal/adapter"
	"github.com/wallace-museum/nft-importer/internal/logger"
)

// DEFAULT_LOG_STEP_BLOCK is the block range scanned per eth_getLogs call
const DEFAULT_LOG_STEP_BLOCK = uint64(2_000_000)

var (
	transferEventSignature       = crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)"))
	transferSingleEventSignature = crypto.Keccak256Hash([]byte("TransferSingle(address,address,address,uint256,uint256)"))
	zeroAddressHash              = common.Hash{}
)

// EthereumClient looks up on-chain facts used to enrich imported tokens
//
//go:generate mockgen -source=client.go -destination=../../mocks/ethereum_client.go -package=mocks -mock_names=EthereumClient=MockEthereumClient
type EthereumClient interface {
	// GetMintTime returns the block time of the token's mint transfer, nil when no mint log exists
	GetMintTime(ctx context.Context, contractAddress, tokenID string) (*time.Time, error)

	// Close closes the connection
	Close()
}

type ethereumClient struct {
	client   adapter.EthClient
	stepSize uint64
}

// NewClient creates an Ethereum client scanning logs stepSize blocks at a time
func NewClient(client adapter.EthClient, stepSize uint64) EthereumClient {
	if stepSize == 0 {
		stepSize = DEFAULT_LOG_STEP_BLOCK
	}
	return &ethereumClient{client: client, stepSize: stepSize}
}

// GetMintTime finds the earliest Transfer from the zero address for the token.
// ERC721 is tried first since its token id is indexed; ERC1155 TransferSingle
// mints are matched on the id carried in the log data.
func (c *ethereumClient) GetMintTime(ctx context.Context, contractAddress, tokenID string) (*time.Time, error) {
	if !common.IsHexAddress(contractAddress) {
		return nil, fmt.Errorf("invalid contract address: %s", contractAddress)
	}
	id, ok := new(big.Int).SetString(strings.TrimSpace(tokenID), 10)
	if !ok {
		return nil, fmt.Errorf("invalid token id: %s", tokenID)
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	latest, err := c.client.HeaderByNumber(timeoutCtx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest block: %w", err)
	}

	contract := common.HexToAddress(contractAddress)
	erc721 := ethereum.FilterQuery{
		Addresses: []common.Address{contract},
		Topics: [][]common.Hash{
			{transferEventSignature},
			{zeroAddressHash},
			nil,
			{common.BigToHash(id)},
		},
	}

	mintLog, err := c.firstLog(timeoutCtx, erc721, latest.Number, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to filter ERC721 mint logs: %w", err)
	}

	if mintLog == nil {
		erc1155 := ethereum.FilterQuery{
			Addresses: []common.Address{contract},
			Topics: [][]common.Hash{
				{transferSingleEventSignature},
				nil,
				{zeroAddressHash},
			},
		}
		mintLog, err = c.firstLog(timeoutCtx, erc1155, latest.Number, func(l types.Log) bool {
			return len(l.Data) >= 32 && new(big.Int).SetBytes(l.Data[:32]).Cmp(id) == 0
		})
		if err != nil {
			return nil, fmt.Errorf("failed to filter ERC1155 mint logs: %w", err)
		}
	}

	if mintLog == nil {
		return nil, nil
	}

	header, err := c.client.HeaderByNumber(timeoutCtx, new(big.Int).SetUint64(mintLog.BlockNumber))
	if err != nil {
		return nil, fmt.Errorf("failed to get block header: %w", err)
	}

	mintedAt := time.Unix(int64(header.Time), 0).UTC() //nolint:gosec,G115
	return &mintedAt, nil
}

// firstLog walks the chain from genesis to toBlock in steps and returns the first
// log accepted by match, stopping as soon as one is found
func (c *ethereumClient) firstLog(ctx context.Context, query ethereum.FilterQuery, toBlock *big.Int, match func(types.Log) bool) (*types.Log, error) {
	currentFrom := big.NewInt(0)

	for currentFrom.Cmp(toBlock) <= 0 {
		currentTo := new(big.Int).Add(currentFrom, new(big.Int).SetUint64(c.stepSize-1))
		if currentTo.Cmp(toBlock) > 0 {
			currentTo.Set(toBlock)
		}

		rangeQuery := query
		rangeQuery.FromBlock = new(big.Int).Set(currentFrom)
		rangeQuery.ToBlock = currentTo

		logs, err := c.getLogsWithRetry(ctx, rangeQuery, c.stepSize)
		if err != nil {
			return nil, fmt.Errorf("failed to get logs for range %d-%d: %w", currentFrom.Uint64(), currentTo.Uint64(), err)
		}

		for i := range logs {
			if match == nil || match(logs[i]) {
				return &logs[i], nil
			}
		}

		currentFrom.SetUint64(currentTo.Uint64() + 1)
	}

	return nil, nil
}

// getLogsWithRetry fetches the range in chunks, halving the chunk when the node
// reports too many results
func (c *ethereumClient) getLogsWithRetry(ctx context.Context, query ethereum.FilterQuery, stepSize uint64) ([]types.Log, error) {
	currentStepSize := stepSize

	var allLogs []types.Log
	currentFrom := new(big.Int).Set(query.FromBlock)

	for currentFrom.Cmp(query.ToBlock) <= 0 {
		currentTo := new(big.Int).Add(currentFrom, new(big.Int).SetUint64(currentStepSize-1))
		if currentTo.Cmp(query.ToBlock) > 0 {
			currentTo.Set(query.ToBlock)
		}

		queryCopy := query
		queryCopy.FromBlock = new(big.Int).Set(currentFrom)
		queryCopy.ToBlock = new(big.Int).Set(currentTo)

		logs, err := c.client.FilterLogs(ctx, queryCopy)
		if err == nil {
			allLogs = append(allLogs, logs...)
			currentFrom.SetUint64(currentTo.Uint64() + 1)
			continue
		}

		if !isTooManyResultsError(err) || currentStepSize <= 1 {
			return nil, err
		}

		currentStepSize = currentStepSize / 2

		logger.Warn("Too many results, reducing step size",
			zap.Uint64("oldStepSize", currentStepSize*2),
			zap.Uint64("newStepSize", currentStepSize),
			zap.Uint64("fromBlock", currentFrom.Uint64()),
			zap.Uint64("toBlock", currentTo.Uint64()))
	}

	return allLogs, nil
}

// isTooManyResultsError checks if the error is related to too many results
func isTooManyResultsError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	return strings.Contains(errStr, "query returned more than 10000 results") ||
		strings.Contains(errStr, "query timeout exceeded") ||
		strings.Contains(errStr, "too many results") ||
		strings.Contains(errStr, "exceeded maximum")
}

// Close closes the connection
func (c *ethereumClient) Close() {
	c.client.Close()
}
