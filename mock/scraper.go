package mock

import (
	"context"

	"github.com/fwojciec/popscrape"
)

var _ popscrape.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of popscrape.Scraper.
type Scraper struct {
	ScrapeFn func(ctx context.Context, url string) (*popscrape.ScrapedContent, error)
}

func (s *Scraper) Scrape(ctx context.Context, url string) (*popscrape.ScrapedContent, error) {
	return s.ScrapeFn(ctx, url)
}
