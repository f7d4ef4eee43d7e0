// Package scrape provides announcement scraping orchestration.
// It coordinates fetching, content extraction, image collection and
// ranking, and fact extraction for pop-up store announcement pages.
package scrape

import (
	"context"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/fwojciec/popscrape"
	"golang.org/x/sync/errgroup"
)

// Ensure Pipeline implements the interface.
var _ popscrape.Scraper = (*Pipeline)(nil)

// DefaultMinStaticImages is the image count below which the dynamic
// rendering fallback kicks in.
const DefaultMinStaticImages = 3

// Pipeline runs the scraping stages for announcement pages. Only the
// fetch can fail the scrape; every later stage degrades to zero values
// so a reachable page always yields a result.
type Pipeline struct {
	Fetcher   popscrape.Fetcher
	Extractor popscrape.Extractor
	Collector popscrape.ImageCollector

	// Fallback, if set, is tried when the primary extractor errors or
	// finds no text.
	Fallback popscrape.Extractor

	// Dynamic, if set, renders the page in a browser and the page is
	// rescanned when the static pass finds fewer than MinStaticImages
	// candidates. Sites that populate their galleries with JavaScript
	// yield nothing to the static pass.
	Dynamic popscrape.Fetcher

	// MinStaticImages overrides DefaultMinStaticImages when positive.
	MinStaticImages int

	// Selection overrides the default image selection tunables.
	Selection *popscrape.SelectionConfig

	// RetryDelays overrides the default fetch backoff schedule.
	RetryDelays []time.Duration
}

// Scrape fetches and processes a single announcement page.
func (p *Pipeline) Scrape(ctx context.Context, pageURL string) (*popscrape.ScrapedContent, error) {
	if pageURL == "" {
		return nil, popscrape.Errorf(popscrape.EINVALID, "url required")
	}

	delays := p.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	html, err := fetchWithRetry(ctx, pageURL, p.Fetcher.Fetch, nil, delays)
	if err != nil {
		return nil, err
	}

	res := p.extract(html)
	cands := p.collect(html, pageURL)

	if p.Dynamic != nil && len(cands) < p.minStaticImages() {
		if rendered, err := p.Dynamic.Fetch(ctx, pageURL); err == nil {
			if dyn := p.collect(rendered, pageURL); len(dyn) > len(cands) {
				cands = dyn
			}
			if res.CleanedText == "" {
				if dres := p.extract(rendered); dres.CleanedText != "" {
					res = dres
				}
			}
		}
	}

	selection := popscrape.DefaultSelectionConfig()
	if p.Selection != nil {
		selection = *p.Selection
	}
	images := popscrape.SelectImages(cands, selection)

	facts := popscrape.ExtractFacts(res.CleanedText)

	content := &popscrape.ScrapedContent{
		SourceURL:      pageURL,
		Title:          res.Title,
		Description:    res.Description,
		CleanedText:    res.CleanedText,
		Images:         popscrape.ImageURLs(images),
		Store:          facts.Store,
		Novelty:        facts.Novelty,
		CharacterNames: facts.CharacterNames,
		ParseDegraded:  res.ContentSelector == "",
	}
	if err := content.Validate(); err != nil {
		return nil, err
	}
	return content, nil
}

// extract runs the primary extractor with the fallback behind it. A
// failed extraction degrades to an empty result, never to an error.
func (p *Pipeline) extract(html string) *popscrape.ExtractResult {
	res, err := p.Extractor.Extract(html)
	if (err != nil || res.CleanedText == "") && p.Fallback != nil {
		if fres, ferr := p.Fallback.Extract(html); ferr == nil && fres.CleanedText != "" {
			return fres
		}
	}
	if err != nil || res == nil {
		return &popscrape.ExtractResult{}
	}
	return res
}

// collect degrades a failed collection to no candidates.
func (p *Pipeline) collect(html, pageURL string) []popscrape.ImageCandidate {
	cands, err := p.Collector.Collect(html, pageURL)
	if err != nil {
		return nil
	}
	return cands
}

func (p *Pipeline) minStaticImages() int {
	if p.MinStaticImages > 0 {
		return p.MinStaticImages
	}
	return DefaultMinStaticImages
}

// Result holds the outcome of a batch scrape.
type Result struct {
	// Contents holds successful scrapes in input order.
	Contents []*popscrape.ScrapedContent
	Failed   int
}

// ProgressType indicates the type of progress event.
type ProgressType int

// Progress event types.
const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports progress during a batch scrape.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressFunc is a callback for reporting batch scrape progress.
type ProgressFunc func(event ProgressEvent)

type scrapeResult struct {
	position int
	url      string
	content  *popscrape.ScrapedContent
	err      error
}

// ScrapeAll scrapes the given pages concurrently through any Scraper,
// decorators included. Each page failure is isolated; the batch keeps
// going. The progress callback, if provided, receives events as
// scraping proceeds.
func ScrapeAll(ctx context.Context, scraper popscrape.Scraper, urls []string, limiter popscrape.DomainLimiter, concurrency int, progress ProgressFunc) (*Result, error) {
	if len(urls) == 0 {
		return &Result{}, nil
	}
	if concurrency <= 0 {
		concurrency = 5
	}

	resultCh := make(chan scrapeResult, len(urls))

	var completed atomic.Int64
	total := len(urls)

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, u := range urls {
			i, u := i, u
			g.Go(func() error {
				resultCh <- scrapeOne(gctx, scraper, i, u, limiter)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	results := make([]scrapeResult, len(urls))
	for result := range resultCh {
		completed.Add(1)
		results[result.position] = result

		if progress == nil {
			continue
		}
		event := ProgressEvent{
			Completed: int(completed.Load()),
			Total:     total,
			URL:       result.url,
		}
		if result.err != nil {
			event.Type = ProgressFailed
			event.Error = result.err
		} else {
			event.Type = ProgressCompleted
		}
		progress(event)
	}

	out := &Result{}
	for _, result := range results {
		if result.err != nil {
			out.Failed++
			continue
		}
		out.Contents = append(out.Contents, result.content)
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return out, nil
}

func scrapeOne(ctx context.Context, scraper popscrape.Scraper, position int, pageURL string, limiter popscrape.DomainLimiter) scrapeResult {
	result := scrapeResult{position: position, url: pageURL}

	if limiter != nil {
		domain := pageURL
		if u, err := url.Parse(pageURL); err == nil && u.Host != "" {
			domain = u.Host
		}
		if err := limiter.Wait(ctx, domain); err != nil {
			result.err = err
			return result
		}
	}

	result.content, result.err = scraper.Scrape(ctx, pageURL)
	return result
}
