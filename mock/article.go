package mock

import (
	"context"

	"github.com/fwojciec/popscrape"
)

var _ popscrape.ArticleService = (*ArticleService)(nil)

// ArticleService is a mock implementation of popscrape.ArticleService.
type ArticleService struct {
	CreateArticleFn func(ctx context.Context, article *popscrape.Article) error
	FindArticlesFn  func(ctx context.Context, filter popscrape.ArticleFilter) ([]*popscrape.Article, error)
}

func (s *ArticleService) CreateArticle(ctx context.Context, article *popscrape.Article) error {
	return s.CreateArticleFn(ctx, article)
}

func (s *ArticleService) FindArticles(ctx context.Context, filter popscrape.ArticleFilter) ([]*popscrape.Article, error) {
	return s.FindArticlesFn(ctx, filter)
}
