package enrichment

import (
	"context"
	"strings"

	"github.com/alitto/pond/v2"
	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"github.com/wallace-museum/nft-importer/internal/adapter"
	"github.com/wallace-museum/nft-importer/internal/domain"
	"github.com/wallace-museum/nft-importer/internal/logger"
	"github.com/wallace-museum/nft-importer/internal/ratelimit"
	"github.com/wallace-museum/nft-importer/internal/uri"
)

const (
	// DEFAULT_GROUP_SIZE is how many enrichment calls run at once
	DEFAULT_GROUP_SIZE = 2

	// MIME_SNIFF_BYTES is how much of a media file is fetched to detect its type
	MIME_SNIFF_BYTES = 512
)

// Enricher fills gaps in a normalized record from secondary sources
//
//go:generate mockgen -source=enricher.go -destination=../mocks/enricher.go -package=mocks -mock_names=Enricher=MockEnricher
type Enricher interface {
	// Enrich never fails; lookups that error leave their fields untouched
	Enrich(ctx context.Context, nft domain.NormalizedNFT, contractAddress, tokenID string, cache *Cache) domain.NormalizedNFT

	// Close stops the worker pool
	Close()
}

// Config tunes the enricher
type Config struct {
	Enabled    bool
	GroupSize  int
	DetectMime bool
}

type enricher struct {
	config     Config
	sources    map[domain.Blockchain]Source
	limiter    ratelimit.AdaptiveLimiter
	httpClient adapter.HTTPClient
	clock      adapter.Clock
	pool       pond.Pool
}

// New creates an enricher. limiter and httpClient may be nil.
func New(cfg Config, sources map[domain.Blockchain]Source, limiter ratelimit.AdaptiveLimiter, httpClient adapter.HTTPClient, clock adapter.Clock) Enricher {
	if cfg.GroupSize <= 0 {
		cfg.GroupSize = DEFAULT_GROUP_SIZE
	}
	return &enricher{
		config:     cfg,
		sources:    sources,
		limiter:    limiter,
		httpClient: httpClient,
		clock:      clock,
		pool:       pond.NewPool(cfg.GroupSize),
	}
}

func (e *enricher) Close() {
	e.pool.StopAndWait()
}

// CreatorComplete reports whether the creator has address, username and profile
func CreatorComplete(c *domain.Creator) bool {
	return c != nil && c.Address != "" && c.Username != "" && c.ProfileURL != ""
}

// CollectionComplete reports whether the collection has slug, description and image
func CollectionComplete(c *domain.Collection) bool {
	return c != nil && c.Slug != "" && c.Description != "" && c.ImageURL != ""
}

// IsComplete reports whether every enrichable part is already present
func IsComplete(nft domain.NormalizedNFT) bool {
	return nft.MintDate != nil && CreatorComplete(nft.Creator) && CollectionComplete(nft.Collection)
}

// collectionKey is the slug used to cache collection lookups
func collectionKey(c *domain.Collection) string {
	if c.Slug != "" {
		return c.Slug
	}
	return domain.NormalizeAddress(c.Blockchain, c.ContractAddress)
}

func (e *enricher) Enrich(ctx context.Context, nft domain.NormalizedNFT, contractAddress, tokenID string, cache *Cache) domain.NormalizedNFT {
	if !e.config.Enabled || IsComplete(nft) {
		return nft
	}

	log := logger.Default().With(
		zap.String("contract_address", contractAddress),
		zap.String("token_id", tokenID),
		zap.String("blockchain", string(nft.Blockchain)))

	src := e.sources[nft.Blockchain]

	var (
		mintDate   = nft.MintDate
		creator    *domain.Creator
		collection *domain.Collection
		mime       string
		tasks      []func(ctx context.Context)
	)

	if src != nil && nft.MintDate == nil && contractAddress != "" && tokenID != "" {
		tasks = append(tasks, func(ctx context.Context) {
			t, err := src.FetchMintDate(ctx, contractAddress, tokenID)
			if err != nil {
				log.Warn("Mint date enrichment failed", zap.Error(err))
				return
			}
			if t != nil {
				mintDate = t
			}
		})
	}

	if src != nil && !CreatorComplete(nft.Creator) && nft.Creator != nil && domain.IsUsableAddress(nft.Blockchain, nft.Creator.Address) {
		address := nft.Creator.Address
		tasks = append(tasks, func(ctx context.Context) {
			if cached, ok := cache.Creator(address); ok {
				creator = cached
				return
			}
			profile, err := src.FetchCreatorProfile(ctx, address)
			if err != nil {
				log.Warn("Creator profile enrichment failed", zap.String("address", address), zap.Error(err))
				profile = nil
			}
			cache.SetCreator(address, profile)
			creator = profile
		})
	}

	if src != nil && !CollectionComplete(nft.Collection) && nft.Collection != nil && collectionKey(nft.Collection) != "" {
		key := collectionKey(nft.Collection)
		contract := nft.Collection.ContractAddress
		if contract == "" {
			contract = contractAddress
		}
		tasks = append(tasks, func(ctx context.Context) {
			if cached, ok := cache.Collection(key); ok {
				collection = cached
				return
			}
			metadata, err := src.FetchCollectionMetadata(ctx, nft.Collection.Slug, contract)
			if err != nil {
				log.Warn("Collection metadata enrichment failed", zap.String("slug", key), zap.Error(err))
				metadata = nil
			}
			cache.SetCollection(key, metadata)
			collection = metadata
		})
	}

	if e.config.DetectMime && e.httpClient != nil && nft.Mime == "" && nft.ImageURL != nil {
		target := uri.ToGatewayURL(*nft.ImageURL, domain.DEFAULT_IPFS_GATEWAY, domain.DEFAULT_ARWEAVE_GATEWAY)
		if uri.IsHTTPURL(target) {
			tasks = append(tasks, func(ctx context.Context) {
				mime = e.sniffMime(ctx, target, log)
			})
		}
	}

	if len(tasks) == 0 {
		return nft
	}

	e.runGroups(ctx, tasks, log)

	nft.MintDate = mintDate
	nft.Creator = mergeCreator(nft.Creator, creator)
	nft.Collection = mergeCollection(nft.Collection, collection)
	if nft.Mime == "" && mime != "" {
		nft.Mime = mime
	}

	return nft
}

// runGroups runs tasks in groups of GroupSize, waiting the limiter's current backoff
// before every group after the first
func (e *enricher) runGroups(ctx context.Context, tasks []func(ctx context.Context), log *zap.Logger) {
	size := e.config.GroupSize
	for start := 0; start < len(tasks); start += size {
		if start > 0 && !e.pause(ctx) {
			log.Warn("Enrichment interrupted", zap.Error(ctx.Err()))
			return
		}

		end := start + size
		if end > len(tasks) {
			end = len(tasks)
		}

		group := e.pool.NewGroup()
		for _, task := range tasks[start:end] {
			task := task
			group.Submit(func() {
				task(ctx)
			})
		}
		if err := group.Wait(); err != nil {
			log.Error("Enrichment task panicked", zap.Error(err))
		}
	}
}

// pause waits for the limiter's current backoff. Returns false when ctx is done first.
func (e *enricher) pause(ctx context.Context) bool {
	if e.limiter == nil {
		return ctx.Err() == nil
	}
	delay := e.limiter.CurrentBackoff()
	if delay <= 0 {
		return ctx.Err() == nil
	}

	select {
	case <-e.clock.After(delay):
		return true
	case <-ctx.Done():
		return false
	}
}

// sniffMime detects the media type from the first bytes of the resource
func (e *enricher) sniffMime(ctx context.Context, url string, log *zap.Logger) string {
	data, err := e.httpClient.GetPartialContent(ctx, url, MIME_SNIFF_BYTES)
	if err != nil {
		log.Debug("MIME sniff failed", zap.String("url", url), zap.Error(err))
		return ""
	}
	if len(data) == 0 {
		return ""
	}

	detected := mimetype.Detect(data).String()
	if i := strings.Index(detected, ";"); i >= 0 {
		detected = detected[:i]
	}
	if detected == "application/octet-stream" {
		return ""
	}
	return detected
}

// mergeCreator fills blank fields of current from fetched. current is copied, never mutated.
func mergeCreator(current, fetched *domain.Creator) *domain.Creator {
	if fetched == nil || current == nil {
		return current
	}

	merged := *current
	fill := func(dst *string, v string) {
		if strings.TrimSpace(*dst) == "" && v != "" {
			*dst = v
		}
	}
	fill(&merged.Username, fetched.Username)
	fill(&merged.Bio, fetched.Bio)
	fill(&merged.AvatarURL, fetched.AvatarURL)
	fill(&merged.ProfileURL, fetched.ProfileURL)
	fill(&merged.WebsiteURL, fetched.WebsiteURL)
	fill(&merged.DisplayName, fetched.DisplayName)
	fill(&merged.ENSName, fetched.ENSName)
	fill(&merged.ResolutionSource, fetched.ResolutionSource)
	if merged.IsVerified == nil {
		merged.IsVerified = fetched.IsVerified
	}
	if len(fetched.SocialLinks) > 0 {
		links := make(map[string]string, len(current.SocialLinks)+len(fetched.SocialLinks))
		for k, v := range current.SocialLinks {
			links[k] = v
		}
		for k, v := range fetched.SocialLinks {
			if _, ok := links[k]; !ok {
				links[k] = v
			}
		}
		merged.SocialLinks = links
	}
	return &merged
}

// mergeCollection fills blank fields of current from fetched. current is copied, never mutated.
func mergeCollection(current, fetched *domain.Collection) *domain.Collection {
	if fetched == nil || current == nil {
		return current
	}

	merged := *current
	fill := func(dst *string, v string) {
		if strings.TrimSpace(*dst) == "" && v != "" {
			*dst = v
		}
	}
	fill(&merged.Slug, fetched.Slug)
	fill(&merged.Title, fetched.Title)
	fill(&merged.Description, fetched.Description)
	fill(&merged.ContractAddress, fetched.ContractAddress)
	fill(&merged.WebsiteURL, fetched.WebsiteURL)
	fill(&merged.ImageURL, fetched.ImageURL)
	fill(&merged.BannerImageURL, fetched.BannerImageURL)
	if merged.Blockchain == "" {
		merged.Blockchain = fetched.Blockchain
	}
	if merged.IsGenerativeArt == nil {
		merged.IsGenerativeArt = fetched.IsGenerativeArt
	}
	if merged.IsSharedContract == nil {
		merged.IsSharedContract = fetched.IsSharedContract
	}
	if merged.TotalSupply == nil {
		merged.TotalSupply = fetched.TotalSupply
	}
	if merged.MintedAt == nil {
		merged.MintedAt = fetched.MintedAt
	}
	if merged.FeePercent == nil {
		merged.FeePercent = fetched.FeePercent
	}
	return &merged
}
