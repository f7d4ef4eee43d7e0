package popscrape

import "context"

// Fetcher retrieves HTML from URLs.
// Implementations may use plain HTTP or browser automation for
// JavaScript-rendered store pages.
type Fetcher interface {
	// Fetch retrieves the page at url and returns its HTML.
	// The context controls timeout and cancellation. Failures carry a
	// distinct code: ENOTFOUND for HTTP 404, EUNAVAILABLE for network
	// errors and 5xx responses, so callers can decide between aborting
	// and returning a partial result.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases underlying resources (connection pools, browsers).
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// DomainLimiter rate-limits requests per domain, so that batch scrapes
// stay polite to each host while still running hosts in parallel.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled first.
	Wait(ctx context.Context, domain string) error
}
