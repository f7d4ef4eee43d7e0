package mock

import (
	"context"

	"github.com/fwojciec/popscrape"
)

var _ popscrape.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of popscrape.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *popscrape.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *popscrape.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}
