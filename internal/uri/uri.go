package uri

import (
	"net/url"
	"path"
	"regexp"
	"strings"

	"github.com/wallace-museum/nft-importer/internal/domain"
)

var (
	// cidV0 matches base58 CIDv0 hashes
	cidV0 = regexp.MustCompile(`^Qm[1-9A-HJ-NP-Za-km-z]{44}$`)
	// cidV1 matches base32 CIDv1 hashes
	cidV1 = regexp.MustCompile(`^b[a-z2-7]{58,}$`)
)

// IsCID reports whether s is shaped like an IPFS content identifier
func IsCID(s string) bool {
	return cidV0.MatchString(s) || cidV1.MatchString(s)
}

// IsHTTPURL reports whether s is an absolute http(s) URL
func IsHTTPURL(s string) bool {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// IsDataURI reports whether s is an inline data: URI
func IsDataURI(s string) bool {
	return strings.HasPrefix(strings.TrimSpace(s), "data:")
}

// ExtractIPFSCID returns the root CID referenced by an ipfs:// URI, a gateway
// path (/ipfs/<cid>), a subdomain gateway host or a bare CID.
func ExtractIPFSCID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}

	if rest, ok := strings.CutPrefix(s, "ipfs://"); ok {
		rest = strings.TrimPrefix(rest, "ipfs/")
		return rootSegment(rest)
	}

	if IsCID(s) {
		return s, true
	}

	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		return "", false
	}

	if _, rest, ok := strings.Cut(u.Path, "/ipfs/"); ok {
		return rootSegment(rest)
	}

	// Subdomain gateways: https://<cid>.ipfs.<gateway>/path
	if label, _, ok := strings.Cut(u.Host, ".ipfs."); ok && IsCID(label) {
		return label, true
	}

	return "", false
}

// IsIPFSReference reports whether s points at IPFS content
func IsIPFSReference(s string) bool {
	_, ok := ExtractIPFSCID(s)
	return ok
}

// ContainsCID reports whether s references the given CID
func ContainsCID(s, cid string) bool {
	if s == "" || cid == "" {
		return false
	}
	if found, ok := ExtractIPFSCID(s); ok {
		return found == cid
	}
	return strings.Contains(s, cid)
}

// IsPlaceholderThumbnail reports whether s references a known generic thumbnail
func IsPlaceholderThumbnail(s string) bool {
	for _, cid := range domain.PlaceholderThumbnailCIDs {
		if ContainsCID(s, cid) {
			return true
		}
	}
	return false
}

// ToGatewayURL rewrites ipfs:// and ar:// URIs to fetchable http(s) URLs.
// Other values are returned unchanged.
func ToGatewayURL(s, ipfsGateway, arweaveGateway string) string {
	s = strings.TrimSpace(s)
	if ipfsGateway == "" {
		ipfsGateway = domain.DEFAULT_IPFS_GATEWAY
	}
	if arweaveGateway == "" {
		arweaveGateway = domain.DEFAULT_ARWEAVE_GATEWAY
	}

	if rest, ok := strings.CutPrefix(s, "ipfs://"); ok {
		rest = strings.TrimPrefix(rest, "ipfs/")
		return strings.TrimSuffix(ipfsGateway, "/") + "/ipfs/" + rest
	}
	if txID, ok := strings.CutPrefix(s, "ar://"); ok {
		return strings.TrimSuffix(arweaveGateway, "/") + "/" + txID
	}
	if IsCID(s) {
		return strings.TrimSuffix(ipfsGateway, "/") + "/ipfs/" + s
	}
	return s
}

// Extension returns the lowercase file extension of the URL path without the dot
func Extension(s string) string {
	p := s
	if u, err := url.Parse(s); err == nil && u.Path != "" {
		p = u.Path
	}
	return strings.TrimPrefix(strings.ToLower(path.Ext(p)), ".")
}

// HasDynamicParams reports whether the URL carries a query string or fragment
func HasDynamicParams(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.RawQuery != "" || u.Fragment != ""
}

// Host returns the lowercase host of s or an empty string
func Host(s string) string {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}

func rootSegment(s string) (string, bool) {
	root, _, _ := strings.Cut(s, "/")
	root, _, _ = strings.Cut(root, "?")
	root, _, _ = strings.Cut(root, "#")
	if root == "" {
		return "", false
	}
	return root, true
}
