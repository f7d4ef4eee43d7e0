package mock

import "github.com/fwojciec/popscrape"

var _ popscrape.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of popscrape.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*popscrape.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*popscrape.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ popscrape.ImageCollector = (*Collector)(nil)

// Collector is a mock implementation of popscrape.ImageCollector.
type Collector struct {
	CollectFn func(html string, baseURL string) ([]popscrape.ImageCandidate, error)
}

func (c *Collector) Collect(html string, baseURL string) ([]popscrape.ImageCandidate, error) {
	return c.CollectFn(html, baseURL)
}
