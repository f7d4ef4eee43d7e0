package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/popscrape"
)

// Ensure Extractor implements the interface.
var _ popscrape.Extractor = (*Extractor)(nil)

// Extractor locates the main content of an announcement page using CSS
// selector heuristics. It is the default static extractor; the
// trafilatura engine can be layered behind it for pages it handles
// poorly.
type Extractor struct{}

// NewExtractor creates a new selector-based extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// noiseSelector matches presentation and navigation elements that are
// never announcement content.
const noiseSelector = "script, style, nav, header, footer, aside"

// contentNamePattern matches class/id names that conventionally mark a
// content container.
var contentNamePattern = regexp.MustCompile(`(?i)content|main|article`)

var whitespacePattern = regexp.MustCompile(`\s+`)

// Extract parses the page and returns its normalized content. Malformed
// markup degrades the result but never produces an error; only input
// that cannot be read at all fails, with EINVALID.
func (e *Extractor) Extract(html string) (*popscrape.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, popscrape.Errorf(popscrape.EINVALID, "failed to parse HTML: %v", err)
	}

	// Title and description come from the whole document, before the
	// noise strip: an h1 inside a site header is still the title.
	res := &popscrape.ExtractResult{
		Title:       extractTitle(doc),
		Description: extractDescription(doc),
	}

	doc.Find(noiseSelector).Remove()

	root, selector := findContentRoot(doc)
	res.ContentSelector = selector

	if markup, err := goquery.OuterHtml(root); err == nil {
		res.ContentHTML = markup
	}
	res.CleanedText = collapseWhitespace(root.Text())

	return res, nil
}

// findContentRoot searches for the main-content container in priority
// order: the semantic tags first, then any div whose class or id looks
// content-like. The search short-circuits on the first match. When
// nothing matches, the whole document is the root and the returned
// selector is empty; callers treat that as a degraded parse worth a
// warning, not an error.
func findContentRoot(doc *goquery.Document) (*goquery.Selection, string) {
	if s := doc.Find("main").First(); s.Length() > 0 {
		return s, "main"
	}
	if s := doc.Find("article").First(); s.Length() > 0 {
		return s, "article"
	}

	var root *goquery.Selection
	doc.Find("div").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if contentNamePattern.MatchString(s.AttrOr("class", "")) ||
			contentNamePattern.MatchString(s.AttrOr("id", "")) {
			root = s
			return false
		}
		return true
	})
	if root != nil {
		return root, "div"
	}

	return doc.Selection, ""
}

func extractTitle(doc *goquery.Document) string {
	if t := collapseWhitespace(doc.Find("h1").First().Text()); t != "" {
		return t
	}
	if t := collapseWhitespace(doc.Find("title").First().Text()); t != "" {
		return t
	}
	return strings.TrimSpace(doc.Find(`meta[property="og:title"]`).AttrOr("content", ""))
}

func extractDescription(doc *goquery.Document) string {
	if d := strings.TrimSpace(doc.Find(`meta[property="og:description"]`).AttrOr("content", "")); d != "" {
		return d
	}
	if d := strings.TrimSpace(doc.Find(`meta[name="description"]`).AttrOr("content", "")); d != "" {
		return d
	}
	return collapseWhitespace(doc.Find("p").First().Text())
}

func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(s, " "))
}
