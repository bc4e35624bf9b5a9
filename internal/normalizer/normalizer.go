package normalizer

import (
	"strings"

	"go.uber.org/zap"

	"github.com/wallace-museum/nft-importer/internal/domain"
	"github.com/wallace-museum/nft-importer/internal/types"
)

// Normalizer reduces provider specific raw records to the canonical NormalizedNFT shape
//
//go:generate mockgen -source=normalizer.go -destination=../mocks/normalizer.go -package=mocks -mock_names=Normalizer=MockNormalizer
type Normalizer interface {
	// Normalize never fails; malformed sub-fields are dropped with a warning
	Normalize(raw domain.RawRecord) domain.NormalizedNFT
}

type normalizer struct{}

// New returns the default normalizer
func New() Normalizer {
	return &normalizer{}
}

func (n *normalizer) Normalize(raw domain.RawRecord) domain.NormalizedNFT {
	log := recordLogger(raw)

	if raw.OpenSea == nil && raw.Alchemy == nil && raw.Tezos == nil && len(raw.Payload) > 0 {
		decoded, err := domain.DecodeRawRecord(raw.Source, raw.Blockchain, raw.ContractAddress, raw.TokenID, raw.Payload)
		if err != nil {
			log.Warn("failed to decode raw payload, normalizing identifiers only", zap.Error(err))
		} else {
			raw = decoded
		}
	}
	for _, field := range raw.DroppedFields {
		log.Warn("dropped malformed payload field", zap.String("field", field))
	}

	var nft domain.NormalizedNFT
	switch {
	case raw.Source == domain.DataSourceOpenSea && raw.OpenSea != nil:
		nft = normalizeOpenSea(raw, raw.OpenSea, log)
	case raw.Source == domain.DataSourceAlchemy && raw.Alchemy != nil:
		nft = normalizeAlchemy(raw, raw.Alchemy, log)
	case raw.Source == domain.DataSourceTezos && raw.Tezos != nil:
		nft = normalizeTezos(raw, raw.Tezos, log)
	default:
		log.Warn("no decoded payload for source")
		nft = base(raw)
	}

	return finalize(nft)
}

// base fills the identity fields every record carries
func base(raw domain.RawRecord) domain.NormalizedNFT {
	return domain.NormalizedNFT{
		ContractAddress: strings.TrimSpace(raw.ContractAddress),
		TokenID:         strings.TrimSpace(raw.TokenID),
		Blockchain:      raw.Blockchain,
		Attributes:      []domain.Attribute{},
		Tags:            []string{},
	}
}

// applyMedia copies the media selection onto the record
func applyMedia(nft *domain.NormalizedNFT, res mediaResult, explicitMime string) {
	nft.ImageURL = res.image
	nft.ThumbnailURL = res.thumbnail
	nft.AnimationURL = res.animation
	nft.GeneratorURL = res.generator
	nft.Mime = types.FirstNonEmpty(strings.ToLower(explicitMime), res.mime)
}

// finalize applies the rules shared by every source
func finalize(nft domain.NormalizedNFT) domain.NormalizedNFT {
	if strings.TrimSpace(nft.Title) == "" {
		nft.Title = "Untitled #" + nft.TokenID
	}
	if nft.Attributes == nil {
		nft.Attributes = []domain.Attribute{}
	}
	if nft.Tags == nil {
		nft.Tags = []string{}
	}
	if len(nft.Features) == 0 {
		nft.Features = nil
	}
	if nft.Creator != nil && isEmptyCreator(nft.Creator) {
		nft.Creator = nil
	}
	if nft.Collection != nil && nft.Collection.Slug == "" {
		nft.Collection.Slug = domain.NormalizeAddress(nft.Blockchain, nft.Collection.ContractAddress)
		if nft.Collection.Slug == "" {
			nft.Collection = nil
		}
	}
	if nft.Collection != nil && nft.Collection.Title == "" {
		nft.Collection.Title = nft.Collection.Slug
	}
	if nft.Collection != nil && nft.Collection.IsGenerativeArt == nil && nft.GeneratorURL != nil {
		nft.Collection.IsGenerativeArt = types.BoolPtr(true)
	}
	return nft
}

func isEmptyCreator(c *domain.Creator) bool {
	return c.Address == "" && c.PreferredName() == ""
}

// artistTraitNames are trait types that carry the artist name
var artistTraitNames = map[string]struct{}{
	"artist":     {},
	"creator":    {},
	"created by": {},
	"created_by": {},
	"createdby":  {},
}

// artistFromAttributes returns the value of an artist-like trait
func artistFromAttributes(attrs []domain.Attribute) string {
	for _, a := range attrs {
		if _, ok := artistTraitNames[strings.ToLower(strings.TrimSpace(a.TraitType))]; ok {
			return a.Value
		}
	}
	return ""
}

// artistFromMetadata resolves an artist name from common metadata members
func artistFromMetadata(metadata map[string]any) string {
	if name := stringFrom(metadata, "artist", "created_by", "createdBy"); name != "" {
		return name
	}
	if collectionName := stringFrom(metadata, "collection_name"); collectionName != "" {
		if _, artist, ok := strings.Cut(collectionName, " by "); ok {
			return strings.TrimSpace(artist)
		}
	}
	if creator := stringFrom(metadata, "creator"); creator != "" && !domain.LooksLikeAddress(creator) {
		return creator
	}
	return ""
}

// applyCreatorNameFallback fills a display name from traits when the creator has no address
func applyCreatorNameFallback(creator *domain.Creator, attrs []domain.Attribute, metadata map[string]any) *domain.Creator {
	if creator != nil && (creator.Address != "" || creator.PreferredName() != "") {
		return creator
	}
	name := types.FirstNonEmpty(artistFromAttributes(attrs), artistFromMetadata(metadata))
	if name == "" {
		return creator
	}
	if creator == nil {
		creator = &domain.Creator{}
	}
	creator.DisplayName = name
	if creator.ResolutionSource == "" {
		creator.ResolutionSource = "metadata"
	}
	return creator
}

// sharedContracts are multi-artist minting contracts
var sharedContracts = map[string]struct{}{
	"0x495f947276749ce646f68ac8c248420045cb7b5e": {}, // OpenSea shared storefront
	"0x60f80121c31a0d46b5279700f9df786054aa5ee5": {}, // Rarible
	"0x3b3ee1931dc30c1957379fac9aba94d1c48a5405": {}, // Foundation
	"0xb932a70a57673d89f4acffbe830e8ed7f75fb9e0": {}, // SuperRare v2
	"0x41a322b28d0ff354040e2cbc676f0320d8c8850d": {}, // SuperRare v1
	"KT1RJ6PbjHpwc3M5rw5s2Nbmefwbuwbdxton":       {}, // hic et nunc OBJKTs
	"KT1KEa8z6vWXDJrVqtMrAeDVzsvxat3kHaCE":       {}, // fxhash gentk v1
	"KT1U6EHmNxJTkvaWJ4ThczG4FSDaHC21ssvi":       {}, // fxhash gentk v2
	"KT1EfsNuqwLAWDd3o4pvfUx1CAh5GMdTrRvr":       {}, // fxhash gentk v3
}

// generativeContracts are contracts whose tokens are generative works
var generativeContracts = map[string]struct{}{
	"0x059edd72cd353df5106d2b9cc5ab83a52287ac3a": {}, // Art Blocks v0
	"0xa7d8d9ef8d8ce8992df33d8b8cf4aebabd5bd270": {}, // Art Blocks v1
	"0x99a9b7c1116f9ceeb1652de04d5969cce509b069": {}, // Art Blocks v3
	"KT1KEa8z6vWXDJrVqtMrAeDVzsvxat3kHaCE":       {},
	"KT1U6EHmNxJTkvaWJ4ThczG4FSDaHC21ssvi":       {},
	"KT1EfsNuqwLAWDd3o4pvfUx1CAh5GMdTrRvr":       {},
}

// contractFlags reports known shared and generative contracts
func contractFlags(blockchain domain.Blockchain, contract string) (shared *bool, generative *bool) {
	key := domain.NormalizeAddress(blockchain, contract)
	if _, ok := sharedContracts[key]; ok {
		shared = types.BoolPtr(true)
	}
	if _, ok := generativeContracts[key]; ok {
		generative = types.BoolPtr(true)
	}
	return shared, generative
}
