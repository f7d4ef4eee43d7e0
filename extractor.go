package popscrape

// ExtractResult holds the normalized content of an HTML page.
type ExtractResult struct {
	// Title is the page title (h1, then <title>, then og:title).
	Title string

	// Description comes from og:description, the description meta tag,
	// or the first paragraph as a last resort.
	Description string

	// CleanedText is the visible text of the content root with all
	// whitespace runs collapsed to single spaces and the ends trimmed.
	// It may be empty for pages with no text at all; that is a
	// usability signal, not an error.
	CleanedText string

	// ContentHTML is the markup of the content root, for downstream
	// conversion.
	ContentHTML string

	// ContentSelector names the selector that located the content
	// root. Empty means no selector matched and the whole document was
	// used. That is the intentional degraded mode, worth a warning log
	// but never an error.
	ContentSelector string
}

// Extractor locates the main content of an HTML page and returns its
// normalized form. Implementations must tolerate malformed markup:
// unclosed tags degrade the result, they never produce an error.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}
