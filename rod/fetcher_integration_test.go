//go:build integration

package rod_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/popscrape/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Renders a real, JS-heavy site end to end. Content assertions are kept
// structural so the test does not break when the site's copy changes.
func TestFetcher_Integration_LiveSite(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fetcher, err := rod.NewFetcher()
	require.NoError(t, err)
	defer fetcher.Close()

	html, err := fetcher.Fetch(ctx, "https://www.animatetimes.com/")
	require.NoError(t, err)
	assert.NotEmpty(t, html, "expected non-empty HTML response")

	lower := strings.TrimSpace(strings.ToLower(html))
	assert.True(t, strings.HasPrefix(lower, "<!doctype html>") || strings.HasPrefix(lower, "<html"),
		"expected valid HTML document start")
	assert.Contains(t, html, "</head>", "expected closing head tag")
	assert.Contains(t, html, "<body", "expected body tag")
	assert.Contains(t, html, "</html>", "expected closing html tag")
	assert.Contains(t, html, "<img", "expected rendered images")

	t.Logf("Fetched %d bytes", len(html))
}
