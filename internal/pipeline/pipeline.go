package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/wallace-museum/nft-importer/internal/adapter"
	"github.com/wallace-museum/nft-importer/internal/config"
	"github.com/wallace-museum/nft-importer/internal/domain"
	"github.com/wallace-museum/nft-importer/internal/enrichment"
	"github.com/wallace-museum/nft-importer/internal/importer"
	"github.com/wallace-museum/nft-importer/internal/logger"
	"github.com/wallace-museum/nft-importer/internal/messaging"
	"github.com/wallace-museum/nft-importer/internal/normalizer"
	"github.com/wallace-museum/nft-importer/internal/pinning"
	"github.com/wallace-museum/nft-importer/internal/providers/ethereum"
	"github.com/wallace-museum/nft-importer/internal/providers/jetstream"
	"github.com/wallace-museum/nft-importer/internal/providers/tezos"
	"github.com/wallace-museum/nft-importer/internal/providers/vendors/alchemy"
	"github.com/wallace-museum/nft-importer/internal/providers/vendors/objkt"
	"github.com/wallace-museum/nft-importer/internal/providers/vendors/opensea"
	"github.com/wallace-museum/nft-importer/internal/queue"
	"github.com/wallace-museum/nft-importer/internal/ratelimit"
	"github.com/wallace-museum/nft-importer/internal/registry"
	"github.com/wallace-museum/nft-importer/internal/resolver"
	"github.com/wallace-museum/nft-importer/internal/source"
	"github.com/wallace-museum/nft-importer/internal/store"
)

// Pipeline holds the import components every service shares
type Pipeline struct {
	Store   store.Store
	Sources *source.Registry
	Tracker queue.Tracker

	enricher  enrichment.Enricher
	publisher messaging.Publisher
	ethClient adapter.EthClient
}

// Deps lets callers replace the connections Build would open
type Deps struct {
	// ConnectJetStream defaults to adapter.ConnectJetStream
	ConnectJetStream jetstream.ConnectFunc
	// DialEthClient defaults to adapter.DialEthClient
	DialEthClient func(ctx context.Context, rawurl string) (adapter.EthClient, error)
	// HTTPClient defaults to a client built from cfg.HTTP
	HTTPClient adapter.HTTPClient
	Clock      adapter.Clock
}

// Build wires the store, source adapters, enrichment and import engine over db.
// Optional collaborators (Ethereum RPC, Alchemy, NATS, pinning) are skipped when unconfigured.
func Build(ctx context.Context, cfg config.PipelineConfig, db *gorm.DB, deps Deps) (*Pipeline, error) {
	if deps.ConnectJetStream == nil {
		deps.ConnectJetStream = adapter.ConnectJetStream
	}
	if deps.DialEthClient == nil {
		deps.DialEthClient = adapter.DialEthClient
	}
	if deps.HTTPClient == nil {
		deps.HTTPClient = adapter.NewHTTPClient(adapter.HTTPClientOptions{
			Timeout:         cfg.HTTP.Timeout,
			MaxRetryElapsed: cfg.HTTP.MaxRetryElapsed,
		})
	}
	if deps.Clock == nil {
		deps.Clock = adapter.NewClock()
	}

	if cfg.Database.AutoMigrate {
		if err := store.Migrate(db); err != nil {
			return nil, err
		}
	}

	p := &Pipeline{Store: store.NewPGStore(db)}

	limiter, err := ratelimit.NewAdaptiveLimiter(cfg.Import.RateLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limiter: %w", err)
	}

	skiplist, err := registry.LoadSkiplist(cfg.Import.SkiplistPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load skiplist: %w", err)
	}

	// Vendor clients
	openseaClient := opensea.NewClient(deps.HTTPClient, limiter, cfg.Vendors.OpenSeaURL, cfg.Vendors.OpenSeaAPIKey)
	objktClient := objkt.NewClient(deps.HTTPClient, limiter, cfg.Vendors.ObjktURL)
	tzktClient := tezos.NewTzKTClient(cfg.Tezos.APIURL, deps.HTTPClient, limiter)

	adapters := []source.Adapter{
		source.NewOpenSeaAdapter(openseaClient, cfg.Vendors.OpenSeaChain),
		source.NewTezosAdapter(objktClient),
	}
	if cfg.Vendors.AlchemyAPIKey != "" {
		alchemyClient := alchemy.NewClient(deps.HTTPClient, limiter, cfg.Vendors.AlchemyURL, cfg.Vendors.AlchemyAPIKey)
		adapters = append(adapters, source.NewAlchemyAdapter(alchemyClient, domain.BlockchainEthereum))
	} else {
		logger.WarnCtx(ctx, "Alchemy API key not configured, alchemy source disabled")
	}
	p.Sources = source.NewRegistry(adapters...)

	// Chain clients for mint dates
	var ethereumClient ethereum.EthereumClient
	if cfg.Ethereum.RPCURL != "" {
		p.ethClient, err = deps.DialEthClient(ctx, cfg.Ethereum.RPCURL)
		if err != nil {
			return nil, fmt.Errorf("failed to dial Ethereum RPC: %w", err)
		}
		ethereumClient = ethereum.NewClient(p.ethClient, cfg.Ethereum.LogStepBlock)
		logger.InfoCtx(ctx, "Connected to Ethereum RPC", zap.String("rpc_url", cfg.Ethereum.RPCURL))
	} else {
		logger.WarnCtx(ctx, "Ethereum RPC not configured, mint dates will not be looked up on chain")
	}

	p.enricher = enrichment.New(enrichment.Config{
		Enabled:    cfg.Import.EnrichmentEnabled,
		GroupSize:  cfg.Import.EnrichmentGroupSize,
		DetectMime: cfg.Import.DetectMime,
	}, map[domain.Blockchain]enrichment.Source{
		domain.BlockchainEthereum: enrichment.NewEthereumSource(ethereumClient, openseaClient),
		domain.BlockchainTezos:    enrichment.NewTezosSource(tzktClient, objktClient),
	}, limiter, deps.HTTPClient, deps.Clock)

	var pinner pinning.Pinner
	if cfg.Pinning.Enabled {
		pinner = pinning.NewHTTPPinner(deps.HTTPClient, cfg.Pinning.Endpoint, cfg.Pinning.AccessToken)
	}

	if cfg.NATS.URL != "" {
		p.publisher, err = jetstream.NewPublisher(ctx, jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		}, deps.ConnectJetStream)
		if err != nil {
			p.Close()
			return nil, err
		}
		logger.InfoCtx(ctx, "Connected to NATS JetStream", zap.String("url", cfg.NATS.URL))
	} else {
		logger.WarnCtx(ctx, "NATS not configured, artwork events will not be published")
	}

	engine := importer.NewEngine(importer.Deps{
		Store:              p.Store,
		Normalizer:         normalizer.New(),
		Enricher:           p.enricher,
		ArtistResolver:     resolver.NewArtistResolver(p.Store),
		CollectionResolver: resolver.NewCollectionResolver(p.Store, deps.Clock),
		Pinner:             pinner,
		Publisher:          p.publisher,
		Clock:              deps.Clock,
	})
	p.Tracker = queue.NewTracker(p.Store, engine, skiplist, adapter.NewJCS())

	return p, nil
}

// Close releases the pool and connections opened by Build
func (p *Pipeline) Close() {
	if p.enricher != nil {
		p.enricher.Close()
	}
	if p.publisher != nil {
		p.publisher.Close()
	}
	if p.ethClient != nil {
		p.ethClient.Close()
	}
}
