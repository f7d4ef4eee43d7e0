package trafilatura

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/fwojciec/popscrape"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements popscrape.Extractor at compile time.
var _ popscrape.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
// It serves as the fallback behind the selector-based extractor for
// pages whose markup defeats the selector heuristics.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

var whitespacePattern = regexp.MustCompile(`\s+`)

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*popscrape.ExtractResult, error) {
	if rawHTML == "" {
		return nil, popscrape.Errorf(popscrape.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, popscrape.Errorf(popscrape.EINVALID, "trafilatura extraction: %v", err)
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	cleaned := strings.TrimSpace(whitespacePattern.ReplaceAllString(result.ContentText, " "))

	return &popscrape.ExtractResult{
		Title:       result.Metadata.Title,
		Description: result.Metadata.Description,
		CleanedText: cleaned,
		ContentHTML: contentHTML,

		// The engine does its own content discovery; label it so the
		// pipeline logs which path produced the result.
		ContentSelector: "trafilatura",
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
