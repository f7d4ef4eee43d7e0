package popscrape

import "strings"

// minImageURLLength rejects URLs too short to name a real asset.
const minImageURLLength = 10

// urlBlacklist marks non-content images wherever the substring appears:
// data URIs, loading placeholders, tracking pixels, spacers, favicons
// and analytics beacons. SVG is excluded wholesale (icons, logos).
var urlBlacklist = []string{
	"data:image",
	"placeholder",
	"loading",
	"spinner",
	".svg",
	"1x1",
	"pixel",
	"spacer",
	"blank",
	"transparent",
	"favicon",
	"noimage",
	"analytics",
	"tracking",
}

// filenamePrefixBlacklist rejects by the final path segment's prefix.
var filenamePrefixBlacklist = []string{
	"btn_",
	"spacer_",
	"blank_",
}

// imageExtensions are the recognized raster formats.
var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp"}

// imageKeywords accept extension-less URLs that still look like images
// (CDN paths, dynamic image endpoints).
var imageKeywords = []string{"image", "img", "photo", "picture", "gallery", "media"}

// ValidImageURL reports whether a candidate URL may enter scoring.
// The reject side is strict (known non-content markers) and the accept
// side permissive (extension or image-ish keyword): missing a real
// image is worse than letting a low-value one through, since scoring
// ranks it to the bottom anyway.
func ValidImageURL(rawURL string) bool {
	if len(rawURL) < minImageURLLength {
		return false
	}

	lower := strings.ToLower(rawURL)
	for _, marker := range urlBlacklist {
		if strings.Contains(lower, marker) {
			return false
		}
	}

	filename := urlFilename(lower)
	for _, prefix := range filenamePrefixBlacklist {
		if strings.HasPrefix(filename, prefix) {
			return false
		}
	}

	for _, ext := range imageExtensions {
		if strings.Contains(lower, ext) {
			return true
		}
	}
	for _, keyword := range imageKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}

	return false
}

// urlFilename returns the final path segment with any query string
// stripped.
func urlFilename(u string) string {
	if i := strings.IndexByte(u, '?'); i >= 0 {
		u = u[:i]
	}
	if i := strings.LastIndexByte(u, '/'); i >= 0 {
		u = u[i+1:]
	}
	return u
}
