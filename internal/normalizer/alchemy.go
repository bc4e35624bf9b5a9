package normalizer

import (
	"strings"

	"go.uber.org/zap"

	"github.com/wallace-museum/nft-importer/internal/domain"
	"github.com/wallace-museum/nft-importer/internal/types"
)

func normalizeAlchemy(raw domain.RawRecord, p *domain.AlchemyPayload, log *zap.Logger) domain.NormalizedNFT {
	nft := base(raw)
	if nft.ContractAddress == "" {
		nft.ContractAddress = strings.TrimSpace(p.Contract.Address)
	}
	if nft.TokenID == "" {
		nft.TokenID = strings.TrimSpace(p.TokenID)
	}
	if nft.Blockchain == "" {
		nft.Blockchain = domain.BlockchainEthereum
	}

	metadata := p.Raw.Metadata
	if p.Raw.Error != "" {
		log.Warn("provider reported metadata error", zap.String("error", p.Raw.Error))
	}

	nft.Title = types.FirstNonEmpty(p.Name, stringFrom(metadata, "name"))
	nft.Description = types.FirstNonEmpty(p.Description, stringFrom(metadata, "description"))
	nft.MetadataURL = types.NonEmptyStringPtr(types.FirstNonEmpty(p.Raw.TokenURI, p.TokenURI))
	nft.TokenStandard = domain.ParseTokenStandard(types.FirstNonEmpty(p.TokenType, p.Contract.TokenType))
	if nft.TokenStandard == domain.StandardERC721 {
		nft.Supply = types.Int64Ptr(1)
	}

	media := mediaFields{
		image:       candidate(p.Image.OriginalURL, p.Image.ContentType),
		display:     candidate(p.Image.CachedURL, p.Image.ContentType),
		rawImage:    candidate(stringFrom(metadata, "image", "image_url", "imageUrl"), ""),
		animation:   candidate(p.Animation.OriginalURL, p.Animation.ContentType),
		interactive: candidate(stringFrom(metadata, "animation_url", "animation"), ""),
		generator:   candidate(stringFrom(metadata, "generator_url"), ""),
		alternate:   candidate(p.Animation.CachedURL, p.Animation.ContentType),
		thumbnail:   candidate(p.Image.ThumbnailURL, ""),
	}
	applyMedia(&nft, selectMedia(media, false), stringFrom(metadata, "mime", "mime_type"))

	attrs := newAttributeCollector()
	attributesFromMetadata(attrs, metadata)
	nft.Attributes = attrs.result()
	if features, ok := metadata["features"].(map[string]any); ok {
		nft.Features = features
	}

	nft.Tags = chooseTags(parseTags(metadata["tags"]), nft.Attributes)

	nft.MintDate = firstDate(log,
		namedValue{"mint.timestamp", p.Mint.Timestamp},
		namedValue{"metadata.mint_date", metadata["mint_date"]},
		namedValue{"metadata.created_at", metadata["created_at"]},
	)

	nft.Dimensions = firstDimensions(log,
		namedValue{"metadata.dimensions", metadata["dimensions"]},
		namedValue{"metadata.image_details", metadata["image_details"]},
		namedValue{"metadata.resolution", metadata["resolution"]},
	)

	nft.Creator = applyCreatorNameFallback(alchemyCreator(nft.Blockchain, nft.ContractAddress, p), nft.Attributes, metadata)
	nft.Collection = alchemyCollection(nft, p)

	return nft
}

// alchemyCreator uses the contract deployer as the artist. On shared contracts the
// deployer is the platform, so the artist has to come from the token metadata.
func alchemyCreator(blockchain domain.Blockchain, contract string, p *domain.AlchemyPayload) *domain.Creator {
	if shared, _ := contractFlags(blockchain, contract); shared != nil && *shared {
		return nil
	}

	address := domain.NormalizeAddress(blockchain, p.Contract.ContractDeployer)
	if address == "" {
		return nil
	}

	creator := &domain.Creator{
		Address:          address,
		ResolutionSource: string(domain.DataSourceAlchemy),
	}
	if twitter := strings.TrimSpace(p.Contract.OpenSeaMetadata.TwitterUsername); twitter != "" {
		creator.SocialLinks = map[string]string{"twitter": "https://twitter.com/" + twitter}
	}
	return creator
}

func alchemyCollection(nft domain.NormalizedNFT, p *domain.AlchemyPayload) *domain.Collection {
	osm := p.Contract.OpenSeaMetadata
	slug := types.FirstNonEmpty(osm.CollectionSlug, p.Collection.Slug)
	title := types.FirstNonEmpty(osm.CollectionName, p.Collection.Name, p.Contract.Name)
	if slug == "" && title == "" {
		return nil
	}

	shared, generative := contractFlags(nft.Blockchain, nft.ContractAddress)
	collection := &domain.Collection{
		Slug:             slug,
		Title:            title,
		Description:      strings.TrimSpace(osm.Description),
		ContractAddress:  domain.NormalizeAddress(nft.Blockchain, nft.ContractAddress),
		Blockchain:       nft.Blockchain,
		WebsiteURL:       types.FirstNonEmpty(osm.ExternalURL, p.Collection.ExternalURL),
		ImageURL:         strings.TrimSpace(osm.ImageURL),
		BannerImageURL:   types.FirstNonEmpty(osm.BannerImageURL, p.Collection.BannerImageURL),
		IsSharedContract: shared,
		IsGenerativeArt:  generative,
		TotalSupply:      parseInt64(p.Contract.TotalSupply),
	}
	return collection
}
