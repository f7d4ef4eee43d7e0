package mock

import (
	"context"

	"github.com/fwojciec/popscrape"
)

var _ popscrape.ContentService = (*ContentService)(nil)

// ContentService is a mock implementation of popscrape.ContentService.
type ContentService struct {
	CreateContentFn   func(ctx context.Context, content *popscrape.ScrapedContent) error
	FindContentByIDFn func(ctx context.Context, id string) (*popscrape.ScrapedContent, error)
	FindContentsFn    func(ctx context.Context, filter popscrape.ContentFilter) ([]*popscrape.ScrapedContent, error)
	DeleteContentFn   func(ctx context.Context, id string) error
}

func (s *ContentService) CreateContent(ctx context.Context, content *popscrape.ScrapedContent) error {
	return s.CreateContentFn(ctx, content)
}

func (s *ContentService) FindContentByID(ctx context.Context, id string) (*popscrape.ScrapedContent, error) {
	return s.FindContentByIDFn(ctx, id)
}

func (s *ContentService) FindContents(ctx context.Context, filter popscrape.ContentFilter) ([]*popscrape.ScrapedContent, error) {
	return s.FindContentsFn(ctx, filter)
}

func (s *ContentService) DeleteContent(ctx context.Context, id string) error {
	return s.DeleteContentFn(ctx, id)
}
