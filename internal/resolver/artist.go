package resolver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/wallace-museum/nft-importer/internal/domain"
	"github.com/wallace-museum/nft-importer/internal/logger"
	"github.com/wallace-museum/nft-importer/internal/store"
	"github.com/wallace-museum/nft-importer/internal/store/schema"
)

// MaxNameAttempts bounds the suffixed names tried when creating an artist
const MaxNameAttempts = 5

// ErrArtistNameExhausted is returned when every name candidate is taken
var ErrArtistNameExhausted = errors.New("artist name candidates exhausted")

// CreationError reports an artist that could not be created
type CreationError struct {
	Name     string
	Attempts int
	Err      error
}

func (e *CreationError) Error() string {
	return fmt.Sprintf("failed to create artist %q after %d attempts: %v", e.Name, e.Attempts, e.Err)
}

func (e *CreationError) Unwrap() error {
	return e.Err
}

// Resolution is the outcome of resolving an entity
type Resolution struct {
	ID      uint64
	Created bool
}

// ArtistResolver finds or creates the artist for a normalized creator
//
//go:generate mockgen -source=artist.go -destination=../mocks/artist_resolver.go -package=mocks -mock_names=ArtistResolver=MockArtistResolver
type ArtistResolver interface {
	// Resolve returns nil when the creator carries neither a usable address nor a usable name
	Resolve(ctx context.Context, creator *domain.Creator, blockchain domain.Blockchain) (*Resolution, error)
}

type artistResolver struct {
	store store.Store
}

// NewArtistResolver creates a new artist resolver
func NewArtistResolver(st store.Store) ArtistResolver {
	return &artistResolver{store: st}
}

// Resolve looks the artist up by address, or by name when no address is usable,
// merges additively into a hit and creates the artist otherwise
func (r *artistResolver) Resolve(ctx context.Context, creator *domain.Creator, blockchain domain.Blockchain) (*Resolution, error) {
	if creator == nil {
		return nil, nil
	}

	address := domain.NormalizeAddress(blockchain, creator.Address)
	hasAddress := domain.IsUsableAddress(blockchain, address)
	name := usableName(creator)

	var existing *schema.Artist
	var err error
	switch {
	case hasAddress:
		existing, err = r.store.FindArtistByAddress(ctx, address, blockchain)
	case name != "":
		existing, err = r.store.FindArtistByName(ctx, name)
	default:
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up artist: %w", err)
	}

	if existing != nil {
		if hasAddress && name != "" && !isPlaceholderName(existing.Name) && !strings.EqualFold(existing.Name, name) {
			logger.WarnCtx(ctx, "Artist found by address carries a different name",
				zap.Uint64("artist_id", existing.ID),
				zap.String("stored_name", existing.Name),
				zap.String("incoming_name", name),
				zap.String("address", address))
		}
		if err := r.update(ctx, existing, creator, name, address, blockchain, hasAddress); err != nil {
			return nil, err
		}
		return &Resolution{ID: existing.ID}, nil
	}

	artist := newArtist(creator, address, blockchain, hasAddress)
	base := name
	if base == "" {
		base = placeholderName(address)
	}
	if err := r.create(ctx, artist, base); err != nil {
		return nil, err
	}

	return &Resolution{ID: artist.ID, Created: true}, nil
}

// update merges the creator into the stored artist and writes only when something changed.
// A name upgrade that collides with another artist is dropped and the rest is still saved.
func (r *artistResolver) update(ctx context.Context, artist *schema.Artist, creator *domain.Creator, name, address string, blockchain domain.Blockchain, hasAddress bool) error {
	previousName := artist.Name
	changed := MergeArtist(artist, creator, name)
	if hasAddress && !artist.HasAddress(address, blockchain) {
		artist.WalletAddresses = append(artist.WalletAddresses, schema.WalletAddress{
			Address:    address,
			Blockchain: blockchain,
		})
		changed = true
	}
	if !changed {
		return nil
	}

	err := r.store.UpdateArtist(ctx, artist)
	if errors.Is(err, store.ErrDuplicateArtistName) && artist.Name != previousName {
		logger.WarnCtx(ctx, "Artist name upgrade collides with another artist, keeping the stored name",
			zap.Uint64("artist_id", artist.ID),
			zap.String("stored_name", previousName),
			zap.String("incoming_name", artist.Name))
		artist.Name = previousName
		err = r.store.UpdateArtist(ctx, artist)
	}
	if err != nil {
		return fmt.Errorf("failed to update artist: %w", err)
	}

	return nil
}

// create inserts the artist, retrying with -2, -3, ... suffixes on name collisions
func (r *artistResolver) create(ctx context.Context, artist *schema.Artist, base string) error {
	for attempt := 1; attempt <= MaxNameAttempts; attempt++ {
		artist.Name = base
		if attempt > 1 {
			artist.Name = fmt.Sprintf("%s-%d", base, attempt)
		}

		err := r.store.CreateArtist(ctx, artist)
		if err == nil {
			return nil
		}
		if !errors.Is(err, store.ErrDuplicateArtistName) {
			return &CreationError{Name: base, Attempts: attempt, Err: err}
		}

		logger.DebugCtx(ctx, "Artist name taken, trying next candidate",
			zap.String("name", artist.Name),
			zap.Int("attempt", attempt))
		artist.ID = 0
	}

	return &CreationError{Name: base, Attempts: MaxNameAttempts, Err: ErrArtistNameExhausted}
}

// MergeArtist fills blank fields of artist from creator and upgrades an address-like
// stored name to name. Non-empty stored values are never overwritten. Returns whether
// anything changed.
func MergeArtist(artist *schema.Artist, creator *domain.Creator, name string) bool {
	changed := false
	fill := func(dst *string, v string) {
		v = strings.TrimSpace(v)
		if *dst == "" && v != "" {
			*dst = v
			changed = true
		}
	}

	fill(&artist.Username, creator.Username)
	fill(&artist.Bio, creator.Bio)
	fill(&artist.AvatarURL, creator.AvatarURL)
	fill(&artist.ProfileURL, creator.ProfileURL)
	fill(&artist.WebsiteURL, creator.WebsiteURL)
	fill(&artist.DisplayName, creator.DisplayName)
	fill(&artist.ENSName, creator.ENSName)
	fill(&artist.ResolutionSource, creator.ResolutionSource)

	if artist.IsVerified == nil && creator.IsVerified != nil {
		v := *creator.IsVerified
		artist.IsVerified = &v
		changed = true
	}

	if len(creator.SocialLinks) > 0 {
		links := map[string]string{}
		for k, v := range artist.SocialLinks.Data() {
			links[k] = v
		}
		added := false
		for k, v := range creator.SocialLinks {
			if _, ok := links[k]; !ok && v != "" {
				links[k] = v
				added = true
			}
		}
		if added {
			artist.SocialLinks = datatypes.NewJSONType(links)
			changed = true
		}
	}

	if name != "" && isPlaceholderName(artist.Name) && !strings.EqualFold(artist.Name, name) {
		artist.Name = name
		changed = true
	}

	return changed
}

func newArtist(creator *domain.Creator, address string, blockchain domain.Blockchain, hasAddress bool) *schema.Artist {
	artist := &schema.Artist{
		Username:         strings.TrimSpace(creator.Username),
		Bio:              creator.Bio,
		AvatarURL:        creator.AvatarURL,
		ProfileURL:       creator.ProfileURL,
		WebsiteURL:       creator.WebsiteURL,
		DisplayName:      strings.TrimSpace(creator.DisplayName),
		ENSName:          strings.TrimSpace(creator.ENSName),
		IsVerified:       creator.IsVerified,
		SocialLinks:      datatypes.NewJSONType(creator.SocialLinks),
		WalletAddresses:  datatypes.JSONSlice[schema.WalletAddress]{},
		ResolutionSource: creator.ResolutionSource,
	}
	if hasAddress {
		artist.WalletAddresses = append(artist.WalletAddresses, schema.WalletAddress{
			Address:    address,
			Blockchain: blockchain,
		})
	}
	return artist
}

// usableName returns the creator's preferred human name, ignoring values that are addresses
func usableName(creator *domain.Creator) string {
	for _, n := range []string{creator.DisplayName, creator.Username, creator.ENSName} {
		n = strings.TrimSpace(n)
		if n != "" && !domain.LooksLikeAddress(n) {
			return n
		}
	}
	return ""
}

func placeholderName(address string) string {
	return "Artist " + domain.ShortAddress(address)
}

// isPlaceholderName reports whether a stored name is an address or the generated placeholder
func isPlaceholderName(name string) bool {
	name = strings.TrimSpace(name)
	return name == "" || domain.LooksLikeAddress(name) || strings.HasPrefix(name, "Artist 0x") || strings.HasPrefix(name, "Artist tz") || strings.HasPrefix(name, "Artist KT")
}
