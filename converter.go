package popscrape

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms article HTML into Markdown.
	// The input should be well-formed HTML (e.g., from a Generator).
	// Returns the Markdown representation of the content.
	Convert(html string) (string, error)
}
