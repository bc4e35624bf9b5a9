package normalizer

import (
	"strings"

	"github.com/wallace-museum/nft-importer/internal/types"
	"github.com/wallace-museum/nft-importer/internal/uri"
)

// mediaCandidate is a URL together with whatever MIME the provider declared for it
type mediaCandidate struct {
	url  string
	mime string
}

func candidate(url, mime string) mediaCandidate {
	return mediaCandidate{url: strings.TrimSpace(url), mime: strings.TrimSpace(mime)}
}

// mediaFields are the per-provider media fields, already mapped onto the
// generic slots of the fallback chains
type mediaFields struct {
	// imageUrl chain
	image    mediaCandidate
	display  mediaCandidate
	artifact mediaCandidate
	rawImage mediaCandidate

	// animationUrl chain
	animation   mediaCandidate
	interactive mediaCandidate
	generator   mediaCandidate
	alternate   mediaCandidate

	thumbnail mediaCandidate
}

// mediaResult is the outcome of media selection
type mediaResult struct {
	image     *string
	thumbnail *string
	animation *string
	generator *string
	mime      string
}

var extensionMimes = map[string]string{
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
	"webp": "image/webp",
	"svg":  "image/svg+xml",
	"avif": "image/avif",
	"bmp":  "image/bmp",
	"tif":  "image/tiff",
	"tiff": "image/tiff",
	"mp4":  "video/mp4",
	"m4v":  "video/x-m4v",
	"mov":  "video/quicktime",
	"webm": "video/webm",
	"ogv":  "video/ogg",
	"html": "text/html",
	"htm":  "text/html",
	"js":   "application/javascript",
	"glb":  "model/gltf-binary",
	"gltf": "model/gltf+json",
	"mp3":  "audio/mpeg",
	"wav":  "audio/wav",
	"pdf":  "application/pdf",
}

// generativePlatformDomains are hosts serving interactive or generative works
var generativePlatformDomains = []string{
	"fxhash",
	"artblocks",
	"objkt",
	"hicetnunc",
	"teia",
	"verse.works",
	"editart",
	"gen.art",
	"highlight.xyz",
	"async.art",
	"feralfile",
}

var interactiveKeywords = []string{
	"generator",
	"interactive",
	"viewer",
	"render",
	"embed",
	"animation",
}

// MimeFromURL derives a MIME type from a data: URI prefix or the file extension
func MimeFromURL(u string) string {
	u = strings.TrimSpace(u)
	if uri.IsDataURI(u) {
		head, _, _ := strings.Cut(strings.TrimPrefix(u, "data:"), ",")
		mediaType, _, _ := strings.Cut(head, ";")
		return strings.ToLower(mediaType)
	}
	return extensionMimes[uri.Extension(u)]
}

// ResolveMime returns the explicit MIME when set, otherwise the one derived from the URL
func ResolveMime(u, explicit string) string {
	explicit = strings.ToLower(strings.TrimSpace(explicit))
	if explicit != "" {
		mediaType, _, _ := strings.Cut(explicit, ";")
		return strings.TrimSpace(mediaType)
	}
	return MimeFromURL(u)
}

// IsAnimatedMime reports whether a MIME type denotes time-based or interactive media
func IsAnimatedMime(m string) bool {
	return strings.HasPrefix(m, "video/") ||
		m == "image/gif" ||
		m == "text/html" ||
		m == "application/javascript" ||
		m == "application/x-javascript" ||
		m == "text/javascript"
}

// IsGenerativePlatformURL reports whether the URL is hosted by a known generative art platform
func IsGenerativePlatformURL(u string) bool {
	host := uri.Host(u)
	if host == "" {
		return false
	}
	for _, d := range generativePlatformDomains {
		if strings.Contains(host, d) {
			return true
		}
	}
	return false
}

func hasInteractiveKeyword(u string) bool {
	lower := strings.ToLower(u)
	for _, k := range interactiveKeywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// AcceptAnimation decides whether a candidate animation URL really points at
// animated or interactive content. Static images mislabelled as animation by
// a provider are rejected.
func AcceptAnimation(u, explicitMime string) bool {
	u = strings.TrimSpace(u)
	if u == "" {
		return false
	}

	if IsGenerativePlatformURL(u) {
		return true
	}

	if m := ResolveMime(u, explicitMime); m != "" {
		return IsAnimatedMime(m)
	}

	return uri.IsIPFSReference(u) || hasInteractiveKeyword(u) || uri.HasDynamicParams(u)
}

// SanitizeThumbnail substitutes a placeholder thumbnail with the image and
// drops a provider thumbnail identical to the image
func SanitizeThumbnail(thumbnail, image *string) *string {
	if types.StringNilOrEmpty(thumbnail) {
		return nil
	}
	if uri.IsPlaceholderThumbnail(*thumbnail) {
		if types.StringNilOrEmpty(image) || uri.IsPlaceholderThumbnail(*image) {
			return nil
		}
		return types.StringPtr(*image)
	}
	if image != nil && *thumbnail == *image {
		return nil
	}
	return thumbnail
}

func firstURL(candidates ...mediaCandidate) mediaCandidate {
	for _, c := range candidates {
		if c.url != "" {
			return c
		}
	}
	return mediaCandidate{}
}

// selectMedia applies the image, animation and thumbnail fallback chains
func selectMedia(f mediaFields, preferThumbnail bool) mediaResult {
	var res mediaResult

	img := firstURL(f.image, f.display, f.artifact, f.rawImage)
	if img.url != "" {
		res.image = types.StringPtr(img.url)
	}

	if f.generator.url != "" {
		res.generator = types.StringPtr(f.generator.url)
	}

	for _, c := range []mediaCandidate{f.animation, f.interactive, f.generator, f.alternate} {
		if c.url == "" {
			continue
		}
		if AcceptAnimation(c.url, c.mime) {
			res.animation = types.StringPtr(c.url)
			res.mime = ResolveMime(c.url, c.mime)
			break
		}
	}

	imageMime := ResolveMime(img.url, img.mime)
	if res.animation == nil && img.url != "" &&
		(strings.HasPrefix(imageMime, "video/") || imageMime == "image/gif") {
		res.animation = types.StringPtr(img.url)
	}
	if res.mime == "" {
		res.mime = imageMime
	}

	var thumb mediaCandidate
	if preferThumbnail {
		thumb = firstURL(f.thumbnail, f.display)
	} else {
		thumb = firstURL(f.display, f.thumbnail)
	}
	if thumb.url != "" {
		res.thumbnail = SanitizeThumbnail(types.StringPtr(thumb.url), res.image)
	}

	return res
}
