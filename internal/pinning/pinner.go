package pinning

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/wallace-museum/nft-importer/internal/adapter"
	"github.com/wallace-museum/nft-importer/internal/store/schema"
	"github.com/wallace-museum/nft-importer/internal/uri"
)

// Pinner keeps the IPFS content behind an artwork available
//
//go:generate mockgen -source=pinner.go -destination=../mocks/pinner.go -package=mocks -mock_names=Pinner=MockPinner
type Pinner interface {
	// ExtractReferences returns the distinct CIDs referenced by the artwork's URLs
	ExtractReferences(artwork *schema.Artwork) []string
	// Pin asks the pinning service to pin a CID
	Pin(ctx context.Context, cid, label string) error
}

// pinRequest is the IPFS Pinning Service API pin object
type pinRequest struct {
	CID  string `json:"cid"`
	Name string `json:"name,omitempty"`
}

type httpPinner struct {
	httpClient  adapter.HTTPClient
	endpoint    string
	accessToken string
}

// NewHTTPPinner creates a pinner backed by an IPFS Pinning Service API endpoint
func NewHTTPPinner(httpClient adapter.HTTPClient, endpoint, accessToken string) Pinner {
	return &httpPinner{
		httpClient:  httpClient,
		endpoint:    strings.TrimSuffix(endpoint, "/"),
		accessToken: accessToken,
	}
}

func (p *httpPinner) ExtractReferences(artwork *schema.Artwork) []string {
	return ExtractReferences(artwork)
}

func (p *httpPinner) Pin(ctx context.Context, cid, label string) error {
	if cid == "" {
		return fmt.Errorf("empty cid")
	}

	body, err := json.Marshal(pinRequest{CID: cid, Name: label})
	if err != nil {
		return fmt.Errorf("failed to marshal pin request: %w", err)
	}

	headers := map[string]string{}
	if p.accessToken != "" {
		headers["Authorization"] = "Bearer " + p.accessToken
	}

	_, err = p.httpClient.PostWithHeaders(ctx, p.endpoint+"/pins", "application/json", bytes.NewReader(body), headers)
	if err != nil {
		var statusErr *adapter.StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusConflict {
			// already pinned
			return nil
		}
		return fmt.Errorf("failed to pin %s: %w", cid, err)
	}

	return nil
}

// ExtractReferences returns the distinct CIDs referenced by the artwork's URLs, in field order
func ExtractReferences(artwork *schema.Artwork) []string {
	if artwork == nil {
		return nil
	}

	seen := make(map[string]bool)
	var cids []string
	for _, u := range []*string{artwork.ImageURL, artwork.ThumbnailURL, artwork.AnimationURL, artwork.GeneratorURL, artwork.MetadataURL} {
		if u == nil {
			continue
		}
		cid, ok := uri.ExtractIPFSCID(*u)
		if !ok || seen[cid] {
			continue
		}
		seen[cid] = true
		cids = append(cids, cid)
	}
	return cids
}

type noopPinner struct{}

// NewNoopPinner returns a pinner that never pins
func NewNoopPinner() Pinner {
	return noopPinner{}
}

func (noopPinner) ExtractReferences(*schema.Artwork) []string {
	return nil
}

func (noopPinner) Pin(context.Context, string, string) error {
	return nil
}
