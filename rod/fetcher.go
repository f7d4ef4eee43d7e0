// Package rod provides a browser-automation implementation of
// popscrape.Fetcher for announcement pages that populate their content
// and galleries with JavaScript.
package rod

import (
	"context"
	"time"

	"github.com/fwojciec/popscrape"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Fetcher implements popscrape.Fetcher at compile time.
var _ popscrape.Fetcher = (*Fetcher)(nil)

// DefaultSettleDelay is how long Fetch waits after the load event so
// lazy gallery scripts can finish inserting images.
const DefaultSettleDelay = 2 * time.Second

// Fetcher retrieves rendered HTML from URLs using Chrome browser
// automation. The underlying browser is recycled by a BrowserManager.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	manager  *BrowserManager
	settle   time.Duration
	maxPages int64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithSettleDelay sets the post-load wait before the DOM is captured.
func WithSettleDelay(d time.Duration) Option {
	return func(f *Fetcher) {
		f.settle = d
	}
}

// WithMaxPagesPerBrowser sets how many pages are rendered before the
// browser is recycled.
func WithMaxPagesPerBrowser(n int64) Option {
	return func(f *Fetcher) {
		f.maxPages = n
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome
// browser. Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		settle:   DefaultSettleDelay,
		maxPages: DefaultMaxPages,
	}
	for _, opt := range opts {
		opt(f)
	}

	manager, err := NewBrowserManager(WithMaxPages(f.maxPages))
	if err != nil {
		return nil, err
	}
	f.manager = manager

	return f, nil
}

// Fetch navigates to the URL and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	page, err := f.manager.Browser().Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", popscrape.Errorf(popscrape.EUNAVAILABLE, "opening page: %v", err)
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", popscrape.Errorf(popscrape.EUNAVAILABLE, "navigate %s: %v", url, err)
	}
	if err := page.WaitLoad(); err != nil {
		return "", popscrape.Errorf(popscrape.EUNAVAILABLE, "waiting for load of %s: %v", url, err)
	}

	// Let lazy scripts settle before capturing the DOM.
	if f.settle > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(f.settle):
		}
	}

	html, err := page.HTML()
	if err != nil {
		return "", popscrape.Errorf(popscrape.EUNAVAILABLE, "capturing DOM of %s: %v", url, err)
	}

	f.manager.IncrementPageCount()
	return html, nil
}

// LauncherPID returns the PID of the browser launcher process, or 0 when
// no browser is running.
func (f *Fetcher) LauncherPID() int {
	return f.manager.LauncherPID()
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	return f.manager.Close()
}
