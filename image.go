package popscrape

import "context"

// ImageTier is the provenance category of an image candidate, reflecting
// how confident the collector is that the image belongs to the article
// body (higher tiers are consumed first during selection).
type ImageTier int

// Candidate tiers in selection order.
const (
	TierMain       ImageTier = iota // inside the content root
	TierArticle                     // inside product/event containers
	TierGeneral                     // any other img element
	TierMeta                        // og:image / twitter:image
	TierBackground                  // inline background-image styles
)

// String returns the tier's identifier.
func (t ImageTier) String() string {
	switch t {
	case TierMain:
		return "main"
	case TierArticle:
		return "article"
	case TierGeneral:
		return "general"
	case TierMeta:
		return "meta"
	case TierBackground:
		return "background"
	}
	return "unknown"
}

// ImageCandidate is an image reference found during collection. URL is
// always absolute. Candidates are annotated by the scorer and consumed
// by the selector; only the final URL list survives the pipeline.
type ImageCandidate struct {
	URL  string
	Tier ImageTier

	// DOMImportance is the markup-derived score, only meaningful for
	// TierGeneral candidates (can be negative).
	DOMImportance int

	// Width and Height are the declared attribute values, 0 when
	// absent.
	Width  int
	Height int
}

// ScoredImage pairs a candidate with its URL-derived quality score.
// Every image that reaches the final output has Quality >= the
// configured floor.
type ScoredImage struct {
	ImageCandidate
	Quality int
}

// ImageCollector walks an HTML page and produces tiered image
// candidates with absolute URLs, already passed through the validity
// filter and deduplicated by exact URL.
type ImageCollector interface {
	Collect(html string, baseURL string) ([]ImageCandidate, error)
}

// ImageDownload is the outcome of downloading one image. Failures are
// isolated per candidate: Err is set and Data is nil, and the other
// downloads are unaffected.
type ImageDownload struct {
	URL         string
	Data        []byte
	ContentType string
	Err         error
}

// ImageDownloader fetches image bytes for publishing. Downloads are
// independent, order-insensitive and may run concurrently under a
// bounded limit.
type ImageDownloader interface {
	DownloadAll(ctx context.Context, urls []string) []ImageDownload
}
