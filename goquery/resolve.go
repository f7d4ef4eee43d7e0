package goquery

import (
	"net/url"
	"strings"
)

// ResolveImageURL resolves a raw image attribute value against the page
// URL. Absolute URLs pass through, protocol-relative URLs inherit the
// base scheme, and relative paths are joined per RFC 3986.
//
// srcset-style comma-separated values contribute only their first URL
// token (descriptors stripped). The highest-resolution candidate is not
// guaranteed to come first; that is a documented simplification.
//
// Returns "" when the value is empty or unparsable; callers skip those
// candidates.
func ResolveImageURL(base *url.URL, raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	if i := strings.Index(raw, ","); i >= 0 {
		raw = strings.TrimSpace(raw[:i])
	}
	if i := strings.IndexAny(raw, " \t"); i >= 0 {
		raw = raw[:i]
	}
	if raw == "" {
		return ""
	}

	ref, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}
