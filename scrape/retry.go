package scrape

import (
	"context"
	"time"

	"github.com/fwojciec/popscrape"
)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// fetchWithRetry attempts a fetch with exponential backoff. Only
// EUNAVAILABLE failures (network errors, timeouts, 5xx) are retried; a
// 404, an invalid URL or an unexpected status will not get better on
// the next attempt. The logger function, if provided, is called for
// each retry.
func fetchWithRetry(ctx context.Context, url string, fetch func(context.Context, string) (string, error), logger LogFunc, delays []time.Duration) (string, error) {
	maxAttempts := len(delays) + 1 // 1 initial + N retries

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		html, err := fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if !retryable(err) || attempt >= maxAttempts-1 {
			break
		}

		if logger != nil {
			logger("retry %s (attempt %d): %v", url, attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}

func retryable(err error) bool {
	return popscrape.ErrorCode(err) == popscrape.EUNAVAILABLE
}
