package normalizer

import (
	"strings"

	"go.uber.org/zap"

	"github.com/wallace-museum/nft-importer/internal/domain"
	"github.com/wallace-museum/nft-importer/internal/types"
)

func normalizeTezos(raw domain.RawRecord, p *domain.TezosPayload, log *zap.Logger) domain.NormalizedNFT {
	nft := base(raw)
	if nft.ContractAddress == "" {
		nft.ContractAddress = strings.TrimSpace(p.FaContract)
	}
	if nft.TokenID == "" {
		nft.TokenID = strings.TrimSpace(p.TokenID)
	}
	nft.Blockchain = domain.BlockchainTezos
	nft.TokenStandard = domain.StandardFA2

	nft.Title = p.Name
	nft.Description = p.Description
	nft.MetadataURL = types.NonEmptyStringPtr(p.Metadata)
	nft.Supply = parseInt64(decodeRaw("supply", p.Supply, log))

	media := mediaFields{
		display:   candidate(p.DisplayURI, formatMime(p.Formats, p.DisplayURI)),
		artifact:  candidate(p.ArtifactURI, p.Mime),
		rawImage:  candidate(firstImageFormat(p.Formats), ""),
		// objkt carries the artifact as the interactive work for html/video tokens
		interactive: candidate(p.ArtifactURI, p.Mime),
		alternate:   candidate(p.IPFS, ""),
		thumbnail:   candidate(p.ThumbnailURI, ""),
	}
	applyMedia(&nft, selectMedia(media, true), p.Mime)

	attrs := newAttributeCollector()
	for _, a := range p.Attributes {
		attrs.add(a.Attribute.Name, a.Attribute.Value)
	}
	if len(p.Features) > 0 {
		attrs.addObject(scalarMembers(p.Features))
		nft.Features = p.Features
	}
	nft.Attributes = attrs.result()

	tags := make([]string, 0, len(p.Tags))
	for _, t := range p.Tags {
		tags = append(tags, t.Tag.Name)
	}
	nft.Tags = chooseTags(dedupeTags(tags), nft.Attributes)

	nft.MintDate = firstDate(log, namedValue{"timestamp", p.Timestamp})

	nft.Dimensions = firstDimensions(log,
		namedValue{"dimensions", decodeRaw("dimensions", p.Dimensions, log)},
		namedValue{"formats", formatDimensions(p.Formats)},
	)

	nft.Creator = applyCreatorNameFallback(tezosCreator(p), nft.Attributes, nil)
	nft.Collection = tezosCollection(nft, p, log)

	return nft
}

func tezosCreator(p *domain.TezosPayload) *domain.Creator {
	for _, c := range p.Creators {
		h := c.Holder
		address := strings.TrimSpace(h.Address)
		if address == "" && h.Alias == "" {
			continue
		}
		creator := &domain.Creator{
			Address:          address,
			Username:         strings.TrimSpace(h.Alias),
			Bio:              strings.TrimSpace(h.Description),
			AvatarURL:        strings.TrimSpace(h.Logo),
			WebsiteURL:       strings.TrimSpace(h.Website),
			ENSName:          strings.TrimSpace(h.Tzdomain),
			ResolutionSource: "objkt",
		}
		if address != "" {
			creator.ProfileURL = "https://objkt.com/profile/" + address
		}
		links := map[string]string{}
		if h.Twitter != "" {
			links["twitter"] = h.Twitter
		}
		if h.Instagram != "" {
			links["instagram"] = h.Instagram
		}
		if len(links) > 0 {
			creator.SocialLinks = links
		}
		return creator
	}
	return nil
}

func tezosCollection(nft domain.NormalizedNFT, p *domain.TezosPayload, log *zap.Logger) *domain.Collection {
	contract := nft.ContractAddress
	if contract == "" && p.Fa == nil {
		return nil
	}

	shared, generative := contractFlags(domain.BlockchainTezos, contract)
	collection := &domain.Collection{
		Slug:             contract,
		ContractAddress:  contract,
		Blockchain:       domain.BlockchainTezos,
		IsSharedContract: shared,
		IsGenerativeArt:  generative,
	}
	if p.Fa != nil {
		collection.Slug = types.FirstNonEmpty(p.Fa.Path, p.Fa.Contract, contract)
		collection.Title = strings.TrimSpace(p.Fa.Name)
		collection.Description = strings.TrimSpace(p.Fa.Description)
		collection.ImageURL = strings.TrimSpace(p.Fa.Logo)
		collection.WebsiteURL = strings.TrimSpace(p.Fa.Website)
		if editions := parseInt64(decodeRaw("fa.editions", p.Fa.Editions, log)); editions != nil && *editions > 0 {
			collection.TotalSupply = editions
		}
		if collection.IsSharedContract == nil && p.Fa.CollectionType == "open" {
			collection.IsSharedContract = types.BoolPtr(true)
		}
	}
	return collection
}

func firstImageFormat(formats []domain.TezosFormat) string {
	for _, f := range formats {
		if strings.HasPrefix(f.MimeType, "image/") && f.URI != "" {
			return f.URI
		}
	}
	return ""
}

func formatMime(formats []domain.TezosFormat, u string) string {
	if u == "" {
		return ""
	}
	for _, f := range formats {
		if f.URI == u {
			return f.MimeType
		}
	}
	return ""
}

// formatDimensions returns the dimensions of the first format declaring them
func formatDimensions(formats []domain.TezosFormat) any {
	for _, f := range formats {
		if f.Dimensions != nil && f.Dimensions.Value != "" {
			return f.Dimensions.Value
		}
	}
	return nil
}
