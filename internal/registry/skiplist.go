package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/wallace-museum/nft-importer/internal/domain"
)

// SkipRegistry lists contracts whose tokens are never imported
//
//go:generate mockgen -source=skiplist.go -destination=../mocks/skip_registry.go -package=mocks -mock_names=SkipRegistry=MockSkipRegistry
type SkipRegistry interface {
	// IsSkipped checks if a contract address is skipped on a given blockchain
	IsSkipped(blockchain domain.Blockchain, contractAddress string) bool
}

// SkiplistData represents the structure of the skiplist file
// Key format: blockchain -> list of contract addresses
type SkiplistData map[string][]string

type skipRegistry struct {
	// Fast lookup map: "blockchain:contract" -> true
	contracts map[string]bool
}

// NewSkipRegistry builds a registry from already parsed data
func NewSkipRegistry(data SkiplistData) SkipRegistry {
	reg := &skipRegistry{contracts: make(map[string]bool)}
	for chain, addresses := range data {
		blockchain := domain.ParseBlockchain(chain)
		for _, addr := range addresses {
			reg.contracts[skipKey(blockchain, addr)] = true
		}
	}
	return reg
}

// LoadSkiplist loads the skip registry from a JSON file. An empty path yields an empty registry.
func LoadSkiplist(filePath string) (SkipRegistry, error) {
	if filePath == "" {
		return NewSkipRegistry(nil), nil
	}

	data, err := os.ReadFile(filePath) //nolint:gosec,G304 // This should be a trusted file
	if err != nil {
		return nil, fmt.Errorf("failed to read skiplist file: %w", err)
	}

	var skiplist SkiplistData
	if err := json.Unmarshal(data, &skiplist); err != nil {
		return nil, fmt.Errorf("failed to parse skiplist JSON: %w", err)
	}

	return NewSkipRegistry(skiplist), nil
}

func skipKey(blockchain domain.Blockchain, contractAddress string) string {
	// Tezos addresses are case sensitive but never collide when folded
	return fmt.Sprintf("%s:%s", blockchain, strings.ToLower(strings.TrimSpace(contractAddress)))
}

// IsSkipped checks if a contract address is skipped on a given blockchain
func (r *skipRegistry) IsSkipped(blockchain domain.Blockchain, contractAddress string) bool {
	if r == nil || contractAddress == "" {
		return false
	}
	return r.contracts[skipKey(blockchain, contractAddress)]
}
