package enrichment

import (
	"context"
	"time"

	"github.com/wallace-museum/nft-importer/internal/domain"
	"github.com/wallace-museum/nft-importer/internal/providers/tezos"
	"github.com/wallace-museum/nft-importer/internal/providers/vendors/objkt"
)

// RESOLUTION_SOURCE_OBJKT marks profiles resolved through objkt
const RESOLUTION_SOURCE_OBJKT = "objkt"

type tezosSource struct {
	tzkt  tezos.TzKTClient
	objkt objkt.Client
}

// NewTezosSource enriches from TzKT and objkt
func NewTezosSource(tzkt tezos.TzKTClient, objktClient objkt.Client) Source {
	return &tezosSource{tzkt: tzkt, objkt: objktClient}
}

func (s *tezosSource) FetchMintDate(ctx context.Context, contractAddress, tokenID string) (*time.Time, error) {
	return s.tzkt.GetTokenFirstTime(ctx, contractAddress, tokenID)
}

func (s *tezosSource) FetchCreatorProfile(ctx context.Context, address string) (*domain.Creator, error) {
	holder, err := s.objkt.GetHolder(ctx, address)
	if err != nil || holder == nil {
		return nil, err
	}

	creator := &domain.Creator{
		Address:          holder.Address,
		Username:         holder.Alias,
		DisplayName:      holder.Alias,
		Bio:              holder.Description,
		AvatarURL:        holder.Logo,
		ProfileURL:       "https://objkt.com/profile/" + holder.Address,
		WebsiteURL:       holder.Website,
		ResolutionSource: RESOLUTION_SOURCE_OBJKT,
	}
	links := map[string]string{}
	if holder.Twitter != "" {
		links["twitter"] = holder.Twitter
	}
	if holder.Instagram != "" {
		links["instagram"] = holder.Instagram
	}
	if len(links) > 0 {
		creator.SocialLinks = links
	}
	return creator, nil
}

func (s *tezosSource) FetchCollectionMetadata(ctx context.Context, slug, contractAddress string) (*domain.Collection, error) {
	if contractAddress == "" {
		return nil, nil
	}

	fa, err := s.objkt.GetFa(ctx, contractAddress)
	if err != nil || fa == nil {
		return nil, err
	}

	collection := &domain.Collection{
		Slug:            fa.Path,
		Title:           fa.Name,
		Description:     fa.Description,
		ContractAddress: fa.Contract,
		Blockchain:      domain.BlockchainTezos,
		WebsiteURL:      fa.Website,
		ImageURL:        fa.Logo,
	}
	if collection.Slug == "" {
		collection.Slug = slug
	}
	if fa.Editions > 0 {
		editions := fa.Editions
		collection.TotalSupply = &editions
	}
	return collection, nil
}
