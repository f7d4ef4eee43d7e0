package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/popscrape"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Ensure Downloader implements popscrape.ImageDownloader at compile time.
var _ popscrape.ImageDownloader = (*Downloader)(nil)

// DefaultDownloadConcurrency bounds parallel image downloads.
const DefaultDownloadConcurrency = 4

// DefaultDownloadRPS is the default request rate for image downloads.
const DefaultDownloadRPS = 8

// maxImageBytes caps a single download; anything larger is not a page
// image worth publishing.
const maxImageBytes = 20 << 20

// Downloader fetches image bytes for publishing. Failures are isolated
// per URL: one broken image never fails the batch.
type Downloader struct {
	client      *http.Client
	userAgent   string
	concurrency int
	limiter     *rate.Limiter
}

// DownloaderOption configures a Downloader.
type DownloaderOption func(*Downloader)

// WithDownloadTimeout sets the per-request timeout.
func WithDownloadTimeout(d time.Duration) DownloaderOption {
	return func(dl *Downloader) {
		dl.client.Timeout = d
	}
}

// WithDownloadConcurrency bounds the number of parallel downloads.
func WithDownloadConcurrency(n int) DownloaderOption {
	return func(dl *Downloader) {
		if n > 0 {
			dl.concurrency = n
		}
	}
}

// WithDownloadRate limits downloads to rps requests per second.
func WithDownloadRate(rps float64) DownloaderOption {
	return func(dl *Downloader) {
		dl.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewDownloader creates a new image downloader.
func NewDownloader(opts ...DownloaderOption) *Downloader {
	dl := &Downloader{
		client:      &http.Client{Timeout: DefaultFetchTimeout},
		userAgent:   defaultUserAgent,
		concurrency: DefaultDownloadConcurrency,
		limiter:     rate.NewLimiter(rate.Limit(DefaultDownloadRPS), 1),
	}
	for _, opt := range opts {
		opt(dl)
	}
	return dl
}

// DownloadAll downloads the given image URLs concurrently under the
// configured bound. Results come back in input order; a failed URL has
// Err set and nil Data.
func (dl *Downloader) DownloadAll(ctx context.Context, urls []string) []popscrape.ImageDownload {
	results := make([]popscrape.ImageDownload, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(dl.concurrency)

	for i, u := range urls {
		i, u := i, u
		g.Go(func() error {
			results[i] = dl.download(gctx, u)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (dl *Downloader) download(ctx context.Context, url string) popscrape.ImageDownload {
	result := popscrape.ImageDownload{URL: url}

	if dl.limiter != nil {
		if err := dl.limiter.Wait(ctx); err != nil {
			result.Err = err
			return result
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		result.Err = popscrape.Errorf(popscrape.EINVALID, "invalid image URL %q: %v", url, err)
		return result
	}
	req.Header.Set("User-Agent", dl.userAgent)

	resp, err := dl.client.Do(req)
	if err != nil {
		result.Err = popscrape.Errorf(popscrape.EUNAVAILABLE, "download %s: %v", url, err)
		return result
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		result.Err = popscrape.Errorf(popscrape.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
		return result
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		result.Err = popscrape.Errorf(popscrape.EUNAVAILABLE, "read %s: %v", url, err)
		return result
	}

	result.Data = data
	result.ContentType = resp.Header.Get("Content-Type")
	return result
}
