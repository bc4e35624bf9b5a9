package domain

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Blockchain represents the blockchain name
type Blockchain string

const (
	BlockchainEthereum Blockchain = "ethereum"
	BlockchainPolygon  Blockchain = "polygon"
	BlockchainBase     Blockchain = "base"
	BlockchainArbitrum Blockchain = "arbitrum"
	BlockchainOptimism Blockchain = "optimism"
	BlockchainTezos    Blockchain = "tezos"
)

// ParseBlockchain maps a provider chain label onto a Blockchain
func ParseBlockchain(s string) Blockchain {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ethereum", "eth", "eth-mainnet", "mainnet", "eip155:1":
		return BlockchainEthereum
	case "matic", "polygon", "polygon-mainnet":
		return BlockchainPolygon
	case "base", "base-mainnet":
		return BlockchainBase
	case "arbitrum", "arb-mainnet":
		return BlockchainArbitrum
	case "optimism", "opt-mainnet":
		return BlockchainOptimism
	case "tezos", "xtz", "tezos:mainnet":
		return BlockchainTezos
	default:
		return Blockchain(strings.ToLower(strings.TrimSpace(s)))
	}
}

// IsEthereumFamily reports whether addresses on the chain are hex EVM addresses
func (b Blockchain) IsEthereumFamily() bool {
	switch b {
	case BlockchainEthereum, BlockchainPolygon, BlockchainBase, BlockchainArbitrum, BlockchainOptimism:
		return true
	default:
		return false
	}
}

// IsValid checks if the blockchain is supported
func (b Blockchain) IsValid() bool {
	return b.IsEthereumFamily() || b == BlockchainTezos
}

// DataSource identifies the upstream provider a raw record came from
type DataSource string

const (
	DataSourceOpenSea DataSource = "opensea"
	DataSourceAlchemy DataSource = "alchemy"
	DataSourceTezos   DataSource = "tezos"
)

// IsValid checks if the data source is supported
func (s DataSource) IsValid() bool {
	return s == DataSourceOpenSea || s == DataSourceAlchemy || s == DataSourceTezos
}

// TokenStandard represents blockchain token standards
type TokenStandard string

const (
	StandardERC721  TokenStandard = "erc721"
	StandardERC1155 TokenStandard = "erc1155"
	StandardFA2     TokenStandard = "fa2"
)

// ParseTokenStandard maps a provider label onto a TokenStandard
func ParseTokenStandard(s string) TokenStandard {
	switch strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "-", "")) {
	case "erc721":
		return StandardERC721
	case "erc1155":
		return StandardERC1155
	case "fa2":
		return StandardFA2
	default:
		return ""
	}
}

// ImportStatus is the lifecycle state of an artwork index row
type ImportStatus string

const (
	ImportStatusPending    ImportStatus = "pending"
	ImportStatusProcessing ImportStatus = "processing"
	ImportStatusNormalized ImportStatus = "normalized"
	ImportStatusReferenced ImportStatus = "referenced"
	ImportStatusImported   ImportStatus = "imported"
	ImportStatusFailed     ImportStatus = "failed"
	ImportStatusSkipped    ImportStatus = "skipped"
)

// AllImportStatuses lists every status in lifecycle order
var AllImportStatuses = []ImportStatus{
	ImportStatusPending,
	ImportStatusProcessing,
	ImportStatusNormalized,
	ImportStatusReferenced,
	ImportStatusImported,
	ImportStatusFailed,
	ImportStatusSkipped,
}

// IsValid checks if the status is known
func (s ImportStatus) IsValid() bool {
	for _, st := range AllImportStatuses {
		if st == s {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further pipeline stage applies.
// Failed is terminal for a run but may be re-queued.
func (s ImportStatus) IsTerminal() bool {
	return s == ImportStatusImported || s == ImportStatusFailed || s == ImportStatusSkipped
}

// importTransitions lists the allowed forward moves of the pipeline
var importTransitions = map[ImportStatus][]ImportStatus{
	ImportStatusPending:    {ImportStatusProcessing, ImportStatusNormalized, ImportStatusSkipped},
	ImportStatusProcessing: {ImportStatusNormalized, ImportStatusSkipped},
	ImportStatusNormalized: {ImportStatusReferenced, ImportStatusProcessing},
	ImportStatusReferenced: {ImportStatusImported, ImportStatusProcessing},
	ImportStatusImported:   {ImportStatusPending},
	ImportStatusFailed:     {ImportStatusPending, ImportStatusProcessing},
	ImportStatusSkipped:    {ImportStatusPending},
}

// CanTransition reports whether a row may move from s to next.
// Failed is reachable from any non-terminal state.
func (s ImportStatus) CanTransition(next ImportStatus) bool {
	if s == next {
		return true
	}
	if next == ImportStatusFailed {
		return !s.IsTerminal()
	}
	for _, allowed := range importTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// NFTUID builds the pipeline-wide token key contractAddress:tokenId
func NFTUID(contractAddress, tokenID string) string {
	return fmt.Sprintf("%s:%s", contractAddress, tokenID)
}

// ParseNFTUID splits an nftUid at its last colon
func ParseNFTUID(uid string) (contractAddress string, tokenID string, ok bool) {
	idx := strings.LastIndex(uid, ":")
	if idx <= 0 || idx == len(uid)-1 {
		return "", "", false
	}
	return uid[:idx], uid[idx+1:], true
}

// NormalizeAddress normalizes a wallet or contract address for identity comparison.
// EVM addresses are lowercased hex; anything else is trimmed only.
func NormalizeAddress(blockchain Blockchain, address string) string {
	address = strings.TrimSpace(address)
	if address == "" {
		return ""
	}
	if blockchain.IsEthereumFamily() || (blockchain == "" && common.IsHexAddress(address)) {
		if common.IsHexAddress(address) {
			return strings.ToLower(common.HexToAddress(address).Hex())
		}
		return strings.ToLower(address)
	}
	return address
}

// IsZeroAddress reports whether the address is the chain's null/burn address
func IsZeroAddress(blockchain Blockchain, address string) bool {
	if address == "" {
		return false
	}
	if blockchain == BlockchainTezos {
		return address == TEZOS_ZERO_ADDRESS
	}
	if common.IsHexAddress(address) {
		return common.HexToAddress(address) == common.Address{}
	}
	if hex, ok := strings.CutPrefix(strings.ToLower(address), "0x"); ok {
		return strings.Trim(hex, "0") == ""
	}
	return false
}

// IsUsableAddress reports whether the address can serve as an identity key
func IsUsableAddress(blockchain Blockchain, address string) bool {
	address = strings.TrimSpace(address)
	return address != "" && !IsZeroAddress(blockchain, address)
}

// ShortAddress renders 0x1234…abcd style short form of an address
func ShortAddress(address string) string {
	if len(address) <= 12 {
		return address
	}
	return address[:6] + "…" + address[len(address)-4:]
}

// LooksLikeAddress reports whether s is shaped like an EVM or Tezos address
func LooksLikeAddress(s string) bool {
	s = strings.TrimSpace(s)
	if common.IsHexAddress(s) {
		return true
	}
	if len(s) == 36 {
		for _, p := range []string{"tz1", "tz2", "tz3", "tz4", "KT1"} {
			if strings.HasPrefix(s, p) {
				return true
			}
		}
	}
	return false
}
