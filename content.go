package popscrape

import (
	"context"
	"time"
)

// RawPage is a fetched page before any processing. It is produced by a
// Fetcher and consumed once by the extraction pipeline.
type RawPage struct {
	URL  string
	HTML string
}

// StoreType classifies the venue running a pop-up store. Partner chains
// have their own novelty distribution rules, which changes the article
// copy downstream.
type StoreType string

// Store types recognized by the fact extractor.
const (
	StoreNormal  StoreType = "normal"
	StoreA3      StoreType = "a3"
	StoreTSUTAYA StoreType = "tsutaya"
)

// IllustrationType says whether the merchandise uses newly drawn art or
// existing anime visuals.
type IllustrationType string

// Illustration types recognized by the fact extractor.
const (
	IllustrationOriginal IllustrationType = "original"
	IllustrationLicensed IllustrationType = "licensed"
)

// StoreInfo holds venue facts extracted from page text. Every field is a
// best-effort string; empty means "not found", never an error.
type StoreInfo struct {
	Name       string           `json:"name"`
	Type       StoreType        `json:"type"`
	IllustKind IllustrationType `json:"illustKind"`
	StartDate  string           `json:"startDate"`
	EndDate    string           `json:"endDate"`
	Location   string           `json:"location"`
}

// NoveltyInfo holds purchase-bonus facts extracted from page text.
type NoveltyInfo struct {
	Name       string `json:"name"`
	Price      int    `json:"price"`
	TotalTypes int    `json:"totalTypes"`
	IsRandom   bool   `json:"isRandom"`
	IsOriginal bool   `json:"isOriginal"`
}

// ScrapedContent is the output of a scrape: cleaned text, ranked unique
// image URLs and structured facts for one announcement page. It is
// immutable once returned by the pipeline; ownership passes to the
// caller.
type ScrapedContent struct {
	ID          string `json:"id"`
	SourceURL   string `json:"sourceUrl"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CleanedText string `json:"cleanedText"`

	// Images is relevance-ranked, deduplicated and capped by the
	// selection config; the first image is the most important one.
	Images []string `json:"images"`

	Store          StoreInfo   `json:"store"`
	Novelty        NoveltyInfo `json:"novelty"`
	CharacterNames []string    `json:"characterNames"`

	// ParseDegraded is true when no content selector matched and the
	// text was taken from the whole document, navigation and all.
	ParseDegraded bool `json:"parseDegraded"`

	ContentHash string    `json:"contentHash"`
	ScrapedAt   time.Time `json:"scrapedAt"`
}

// Validate returns an error if the content contains invalid fields.
func (c *ScrapedContent) Validate() error {
	if c.SourceURL == "" {
		return Errorf(EINVALID, "content source URL required")
	}
	seen := make(map[string]bool, len(c.Images))
	for _, u := range c.Images {
		if seen[u] {
			return Errorf(EINVALID, "duplicate image URL %q", u)
		}
		seen[u] = true
	}
	return nil
}

// Scraper runs the full pipeline: fetch, normalize, collect and rank
// images, extract facts.
type Scraper interface {
	// Scrape fetches and processes a single announcement page.
	// Fetch failures are hard errors; everything downstream degrades to
	// zero values instead of failing.
	Scrape(ctx context.Context, url string) (*ScrapedContent, error)
}

// ContentSortOrder is the sort order for content queries.
type ContentSortOrder string

// Sort orders for ContentFilter.
const (
	ContentSortByScrapedAt ContentSortOrder = "scraped_at"
	ContentSortBySourceURL ContentSortOrder = "source_url"
)

// ContentFilter represents a filter for FindContents.
type ContentFilter struct {
	ID        *string `json:"id"`
	SourceURL *string `json:"sourceUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	SortBy ContentSortOrder `json:"sortBy"`
}

// ContentService archives scraped content.
type ContentService interface {
	// CreateContent stores a scrape result, assigning ID, hash and
	// timestamp.
	CreateContent(ctx context.Context, content *ScrapedContent) error

	// FindContentByID retrieves a scrape by ID.
	// Returns ENOTFOUND if it does not exist.
	FindContentByID(ctx context.Context, id string) (*ScrapedContent, error)

	// FindContents retrieves scrapes matching the filter.
	FindContents(ctx context.Context, filter ContentFilter) ([]*ScrapedContent, error)

	// DeleteContent permanently removes a scrape and its articles.
	// Returns ENOTFOUND if it does not exist.
	DeleteContent(ctx context.Context, id string) error
}
