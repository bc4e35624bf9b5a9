package normalizer

import (
	"strings"

	"go.uber.org/zap"

	"github.com/wallace-museum/nft-importer/internal/domain"
	"github.com/wallace-museum/nft-importer/internal/types"
)

func normalizeOpenSea(raw domain.RawRecord, p *domain.OpenSeaPayload, log *zap.Logger) domain.NormalizedNFT {
	nft := base(raw)
	if nft.ContractAddress == "" {
		nft.ContractAddress = strings.TrimSpace(p.Contract)
	}
	if nft.TokenID == "" {
		nft.TokenID = strings.TrimSpace(p.Identifier)
	}
	if nft.Blockchain == "" {
		nft.Blockchain = domain.ParseBlockchain(p.Chain)
	}

	metadata := p.Metadata
	nft.Title = types.FirstNonEmpty(p.Name, stringFrom(metadata, "name"))
	nft.Description = types.FirstNonEmpty(p.Description, stringFrom(metadata, "description"))
	nft.MetadataURL = types.NonEmptyStringPtr(p.MetadataURL)
	nft.TokenStandard = domain.ParseTokenStandard(p.TokenStandard)
	nft.Supply = parseInt64(decodeRaw("supply", p.Supply, log))

	media := mediaFields{
		image:       candidate(p.ImageURL, ""),
		display:     candidate(p.DisplayImageURL, ""),
		rawImage:    candidate(stringFrom(metadata, "image", "image_url"), ""),
		animation:   candidate(p.AnimationURL, stringFrom(metadata, "animation_mime_type")),
		interactive: candidate(p.DisplayAnimationURL, ""),
		generator:   candidate(stringFrom(metadata, "generator_url"), ""),
		alternate:   candidate(stringFrom(metadata, "animation_url"), ""),
	}
	applyMedia(&nft, selectMedia(media, false), stringFrom(metadata, "mime", "mime_type"))

	attrs := newAttributeCollector()
	for _, t := range p.Traits {
		attrs.add(t.TraitType, t.Value)
	}
	attributesFromMetadata(attrs, metadata)
	nft.Attributes = attrs.result()
	if features, ok := metadata["features"].(map[string]any); ok {
		nft.Features = features
	}

	explicitTags := parseTags(decodeRaw("tags", p.Tags, log))
	if len(explicitTags) == 0 {
		explicitTags = parseTags(metadata["tags"])
	}
	nft.Tags = chooseTags(explicitTags, nft.Attributes)

	nft.MintDate = firstDate(log,
		namedValue{"mint_date", p.MintDate},
		namedValue{"metadata.mint_date", metadata["mint_date"]},
		namedValue{"created_date", p.CreatedDate},
	)

	nft.Dimensions = firstDimensions(log,
		namedValue{"dimensions", decodeRaw("dimensions", p.Dimensions, log)},
		namedValue{"image_details", mapOrNil(p.ImageDetails)},
		namedValue{"metadata.dimensions", metadata["dimensions"]},
	)

	nft.Creator = applyCreatorNameFallback(openSeaCreator(nft.Blockchain, p), nft.Attributes, metadata)
	nft.Collection = openSeaCollection(nft, p)

	return nft
}

func openSeaCreator(blockchain domain.Blockchain, p *domain.OpenSeaPayload) *domain.Creator {
	var creator domain.Creator
	if p.Creator != nil {
		creator.Address = domain.NormalizeAddress(blockchain, p.Creator.Address)
		creator.Username = strings.TrimSpace(p.Creator.Username)
		creator.AvatarURL = strings.TrimSpace(p.Creator.ProfileImgURL)
		if p.Creator.Config == "verified" {
			creator.IsVerified = types.BoolPtr(true)
		}
	}
	if creator.Username == "" {
		creator.Username = strings.TrimSpace(p.CreatorUsername)
	}
	if creator.Address == "" && creator.Username == "" {
		return nil
	}
	if creator.Username != "" {
		creator.ProfileURL = "https://opensea.io/" + creator.Username
	} else if creator.Address != "" {
		creator.ProfileURL = "https://opensea.io/" + creator.Address
	}
	creator.ResolutionSource = string(domain.DataSourceOpenSea)
	return &creator
}

// openSeaCollection only exists when OpenSea reports a collection slug
func openSeaCollection(nft domain.NormalizedNFT, p *domain.OpenSeaPayload) *domain.Collection {
	slug := strings.TrimSpace(p.Collection)
	if slug == "" {
		return nil
	}
	shared, generative := contractFlags(nft.Blockchain, nft.ContractAddress)
	return &domain.Collection{
		Slug:             slug,
		Title:            slug,
		ContractAddress:  domain.NormalizeAddress(nft.Blockchain, nft.ContractAddress),
		Blockchain:       nft.Blockchain,
		WebsiteURL:       "https://opensea.io/collection/" + slug,
		IsSharedContract: shared,
		IsGenerativeArt:  generative,
	}
}

func mapOrNil(m map[string]any) any {
	if len(m) == 0 {
		return nil
	}
	return m
}
