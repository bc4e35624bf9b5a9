package enrichment

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wallace-museum/nft-importer/internal/domain"
	"github.com/wallace-museum/nft-importer/internal/providers/ethereum"
	"github.com/wallace-museum/nft-importer/internal/providers/vendors/opensea"
)

// RESOLUTION_SOURCE_OPENSEA marks profiles resolved through OpenSea
const RESOLUTION_SOURCE_OPENSEA = "opensea"

type ethereumSource struct {
	chain   ethereum.EthereumClient
	opensea opensea.Client
}

// NewEthereumSource enriches from chain logs and OpenSea. chain may be nil when no RPC is configured.
func NewEthereumSource(chain ethereum.EthereumClient, openseaClient opensea.Client) Source {
	return &ethereumSource{chain: chain, opensea: openseaClient}
}

func (s *ethereumSource) FetchMintDate(ctx context.Context, contractAddress, tokenID string) (*time.Time, error) {
	if s.chain == nil {
		return nil, nil
	}
	return s.chain.GetMintTime(ctx, contractAddress, tokenID)
}

func (s *ethereumSource) FetchCreatorProfile(ctx context.Context, address string) (*domain.Creator, error) {
	account, err := s.opensea.GetAccount(ctx, address)
	if err != nil || account == nil {
		return nil, err
	}

	creator := &domain.Creator{
		Address:          strings.ToLower(address),
		Username:         account.Username,
		Bio:              account.Bio,
		AvatarURL:        account.ProfileImgURL,
		WebsiteURL:       account.Website,
		SocialLinks:      account.SocialLinks(),
		ResolutionSource: RESOLUTION_SOURCE_OPENSEA,
	}
	if account.Username != "" {
		creator.ProfileURL = "https://opensea.io/" + account.Username
	} else {
		creator.ProfileURL = "https://opensea.io/" + strings.ToLower(address)
	}
	return creator, nil
}

func (s *ethereumSource) FetchCollectionMetadata(ctx context.Context, slug, contractAddress string) (*domain.Collection, error) {
	// OpenSea looks collections up by marketplace slug only
	if slug == "" || domain.LooksLikeAddress(slug) {
		return nil, nil
	}

	c, err := s.opensea.GetCollection(ctx, slug)
	if err != nil || c == nil {
		return nil, err
	}

	collection := &domain.Collection{
		Slug:            c.Collection,
		Title:           c.Name,
		Description:     c.Description,
		ContractAddress: contractAddress,
		WebsiteURL:      c.ProjectURL,
		ImageURL:        c.ImageURL,
		BannerImageURL:  c.BannerImageURL,
	}
	if c.TotalSupply > 0 {
		supply := c.TotalSupply
		collection.TotalSupply = &supply
	}
	if fee, ok := c.TotalFeePercent(); ok {
		d := decimal.NewFromFloat(fee)
		collection.FeePercent = &d
	}
	if created, err := time.Parse("2006-01-02", c.CreatedDate); err == nil {
		collection.MintedAt = &created
	}
	return collection, nil
}
