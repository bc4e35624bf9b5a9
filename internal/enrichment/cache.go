package enrichment

import (
	"strings"
	"sync"

	"github.com/wallace-museum/nft-importer/internal/domain"
)

// Cache holds enrichment lookups for the lifetime of one batch. Misses are stored as
// nil entries so a failed lookup is not repeated. A nil *Cache never hits and drops writes.
type Cache struct {
	mu          sync.RWMutex
	creators    map[string]*domain.Creator
	collections map[string]*domain.Collection
}

// NewCache creates an empty cache
func NewCache() *Cache {
	return &Cache{
		creators:    make(map[string]*domain.Creator),
		collections: make(map[string]*domain.Collection),
	}
}

func creatorKey(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

// Creator returns the cached profile for address and whether a lookup was recorded
func (c *Cache) Creator(address string) (*domain.Creator, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	creator, ok := c.creators[creatorKey(address)]
	return creator, ok
}

// SetCreator records a lookup result, nil for a miss
func (c *Cache) SetCreator(address string, creator *domain.Creator) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.creators[creatorKey(address)] = creator
}

// Collection returns the cached metadata for slug and whether a lookup was recorded
func (c *Cache) Collection(slug string) (*domain.Collection, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	collection, ok := c.collections[slug]
	return collection, ok
}

// SetCollection records a lookup result, nil for a miss
func (c *Cache) SetCollection(slug string, collection *domain.Collection) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.collections[slug] = collection
}

// Size returns the number of cached creator and collection entries
func (c *Cache) Size() (creators int, collections int) {
	if c == nil {
		return 0, 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.creators), len(c.collections)
}
