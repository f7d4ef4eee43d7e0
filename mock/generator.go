package mock

import (
	"context"

	"github.com/fwojciec/popscrape"
)

var _ popscrape.Generator = (*Generator)(nil)

// Generator is a mock implementation of popscrape.Generator.
type Generator struct {
	GenerateFn func(ctx context.Context, content *popscrape.ScrapedContent, format popscrape.FormatPattern) (*popscrape.Article, error)
}

func (g *Generator) Generate(ctx context.Context, content *popscrape.ScrapedContent, format popscrape.FormatPattern) (*popscrape.Article, error) {
	return g.GenerateFn(ctx, content, format)
}

var _ popscrape.Publisher = (*Publisher)(nil)

// Publisher is a mock implementation of popscrape.Publisher.
type Publisher struct {
	PublishFn func(ctx context.Context, article *popscrape.Article) (*popscrape.PublishResult, error)
}

func (p *Publisher) Publish(ctx context.Context, article *popscrape.Article) (*popscrape.PublishResult, error) {
	return p.PublishFn(ctx, article)
}
