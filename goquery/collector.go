package goquery

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/popscrape"
)

// Ensure Collector implements the interface.
var _ popscrape.ImageCollector = (*Collector)(nil)

// Collector walks a page and produces tiered image candidates with
// absolute URLs, validity-filtered and deduplicated by exact URL.
type Collector struct{}

// NewCollector creates a new image candidate collector.
func NewCollector() *Collector {
	return &Collector{}
}

// srcAttrs is the attribute preference order for img elements. Earlier
// attributes are less likely to hold a lazy-load placeholder stub; the
// first non-empty one wins.
var srcAttrs = []string{
	"src",
	"data-src",
	"data-original",
	"data-lazy-src",
	"data-lazy",
	"data-srcset",
	"srcset",
}

// articleSelectors name merchandise and event containers whose images
// rank just below the content root.
var articleSelectors = []string{
	".goods", ".product", ".item", ".merchandise",
	".gallery", ".photos", ".images",
	".character", ".anime", ".collaboration",
	".popup", ".store", ".campaign",
	".novelty", ".special", ".limited",
	".featured", ".highlight",
}

// metaImageSelectors are social-preview tags, used only to pad a thin
// result.
var metaImageSelectors = []string{
	`meta[property="og:image"]`,
	`meta[name="twitter:image"]`,
	`meta[name="twitter:image:src"]`,
}

var backgroundImagePattern = regexp.MustCompile(`background-image:\s*url\(["']?([^"')]+)["']?\)`)

// minDeclaredSize rejects img elements that declare a dimension below
// this many pixels; such images are icons or thumbnails.
const minDeclaredSize = 200

// Collect gathers image candidates from the page in tier order: the
// content root first, then merchandise containers, then the remaining
// img elements (kept only with a positive DOM-importance score), then
// social-preview meta tags and inline background-image styles. A URL
// accepted in an earlier tier is never reconsidered in a later one.
func (c *Collector) Collect(html string, baseURL string) ([]popscrape.ImageCandidate, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, popscrape.Errorf(popscrape.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, popscrape.Errorf(popscrape.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]bool)
	var out []popscrape.ImageCandidate

	addImg := func(img *goquery.Selection, tier popscrape.ImageTier) {
		u := imageSrc(img, base)
		if u == "" || seen[u] || !popscrape.ValidImageURL(u) {
			return
		}
		w, h := declaredSize(img)
		if (w > 0 && w < minDeclaredSize) || (h > 0 && h < minDeclaredSize) {
			return
		}
		cand := popscrape.ImageCandidate{URL: u, Tier: tier, Width: w, Height: h}
		if tier == popscrape.TierGeneral {
			cand.DOMImportance = domImportance(img)
			if cand.DOMImportance <= 0 {
				return
			}
		}
		seen[u] = true
		out = append(out, cand)
	}

	addURL := func(raw string, tier popscrape.ImageTier) {
		u := ResolveImageURL(base, raw)
		if u == "" || seen[u] || !popscrape.ValidImageURL(u) {
			return
		}
		seen[u] = true
		out = append(out, popscrape.ImageCandidate{URL: u, Tier: tier})
	}

	if root, selector := findContentRoot(doc); selector != "" {
		root.Find("img").Each(func(_ int, img *goquery.Selection) {
			addImg(img, popscrape.TierMain)
		})
	}

	for _, sel := range articleSelectors {
		doc.Find(sel).Each(func(_ int, area *goquery.Selection) {
			area.Find("img").Each(func(_ int, img *goquery.Selection) {
				addImg(img, popscrape.TierArticle)
			})
		})
	}

	doc.Find("img").Each(func(_ int, img *goquery.Selection) {
		addImg(img, popscrape.TierGeneral)
	})

	for _, sel := range metaImageSelectors {
		if tag := doc.Find(sel).First(); tag.Length() > 0 {
			addURL(tag.AttrOr("content", ""), popscrape.TierMeta)
		}
	}

	doc.Find("[style]").Each(func(_ int, el *goquery.Selection) {
		style := el.AttrOr("style", "")
		if !strings.Contains(style, "background-image") {
			return
		}
		for _, m := range backgroundImagePattern.FindAllStringSubmatch(style, -1) {
			addURL(m[1], popscrape.TierBackground)
		}
	})

	return out, nil
}

// imageSrc extracts the image URL from an img element, preferring src
// over the lazy-load attributes, and resolves it against the page URL.
func imageSrc(img *goquery.Selection, base *url.URL) string {
	for _, attr := range srcAttrs {
		if v := img.AttrOr(attr, ""); v != "" {
			if u := ResolveImageURL(base, v); u != "" {
				return u
			}
		}
	}
	return ""
}
