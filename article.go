package popscrape

import (
	"context"
	"time"
)

// FormatPattern selects one of the fixed article layouts.
type FormatPattern string

// Supported format patterns.
const (
	FormatPatternA FormatPattern = "A"
	FormatPatternB FormatPattern = "B"
	FormatPatternC FormatPattern = "C"
	FormatPatternD FormatPattern = "D"
)

// ParseFormatPattern validates a format key. Unknown keys fail closed
// with EINVALID rather than silently defaulting.
func ParseFormatPattern(s string) (FormatPattern, error) {
	switch FormatPattern(s) {
	case FormatPatternA, FormatPatternB, FormatPatternC, FormatPatternD:
		return FormatPattern(s), nil
	}
	return "", Errorf(EINVALID, "unknown format pattern %q", s)
}

// Article is a generated piece of marketing copy ready for publishing.
type Article struct {
	ID        string        `json:"id"`
	ContentID string        `json:"contentId"`
	Format    FormatPattern `json:"format"`
	Title     string        `json:"title"`
	HTML      string        `json:"html"`

	// Images carries the source image URLs in the scrape's priority
	// order so publishers can consume them positionally.
	Images []string `json:"images"`

	PostURL   string    `json:"postUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if a.ContentID == "" {
		return Errorf(EINVALID, "article content ID required")
	}
	if _, err := ParseFormatPattern(string(a.Format)); err != nil {
		return err
	}
	return nil
}

// Generator produces article copy from scraped content.
type Generator interface {
	// Generate renders an article for the given format pattern.
	// Unknown patterns return EINVALID.
	Generate(ctx context.Context, content *ScrapedContent, format FormatPattern) (*Article, error)
}

// PublishResult identifies where a published article ended up.
type PublishResult struct {
	// URL is the public or local location of the published article.
	URL string

	// PostID is the CMS post identifier, zero for non-CMS targets.
	PostID int
}

// Publisher delivers a generated article to its destination (CMS post,
// local document, ...).
type Publisher interface {
	Publish(ctx context.Context, article *Article) (*PublishResult, error)
}

// ArticleFilter represents a filter for FindArticles.
type ArticleFilter struct {
	ID        *string `json:"id"`
	ContentID *string `json:"contentId"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ArticleService archives generated articles.
type ArticleService interface {
	// CreateArticle stores an article, assigning ID and timestamp.
	CreateArticle(ctx context.Context, article *Article) error

	// FindArticles retrieves articles matching the filter.
	FindArticles(ctx context.Context, filter ArticleFilter) ([]*Article, error)
}
