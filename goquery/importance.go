package goquery

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// importantAltKeywords grant a one-time +3 when the alt text mentions
// merchandise or event vocabulary. First match wins.
var importantAltKeywords = []string{
	"goods", "product", "character", "anime",
	"collaboration", "popup", "campaign", "event",
	"novelty", "special", "limited", "exclusive",
	"featured", "main",
}

// importantClassKeywords add +2 each; matches accumulate.
var importantClassKeywords = []string{
	"main", "hero", "featured", "primary",
	"goods", "product", "gallery", "character",
	"artwork", "campaign", "special", "highlight",
}

// unimportantClassKeywords subtract 3 each; matches accumulate.
var unimportantClassKeywords = []string{
	"thumb", "thumbnail", "small", "mini",
	"icon", "logo", "brand", "header", "footer",
	"nav", "menu", "ad", "banner", "sidebar",
}

// importantParentPatterns grant a one-time +2 when the direct parent's
// class or id looks like a gallery or product container.
var importantParentPatterns = []string{
	"gallery", "photos", "images", "slideshow",
	"goods", "products", "items", "merchandise",
	"main", "content", "article", "featured",
	"hero", "banner", "highlight",
}

// domImportance scores an img element from its markup context: alt
// text, class names, the parent container, and declared dimensions.
// Negative scores are meaningful; general-tier candidates with a
// non-positive score are dropped.
func domImportance(img *goquery.Selection) int {
	score := 0

	if alt := strings.ToLower(img.AttrOr("alt", "")); alt != "" {
		for _, kw := range importantAltKeywords {
			if strings.Contains(alt, kw) {
				score += 3
				break
			}
		}
	}

	if class := strings.ToLower(img.AttrOr("class", "")); class != "" {
		for _, kw := range importantClassKeywords {
			if strings.Contains(class, kw) {
				score += 2
			}
		}
		for _, kw := range unimportantClassKeywords {
			if strings.Contains(class, kw) {
				score -= 3
			}
		}
	}

	if parent := img.Parent(); parent.Length() > 0 {
		hints := strings.ToLower(parent.AttrOr("class", "") + " " + parent.AttrOr("id", ""))
		for _, kw := range importantParentPatterns {
			if strings.Contains(hints, kw) {
				score += 2
				break
			}
		}
	}

	// Size bonus applies only when both dimensions are declared.
	w, h := declaredSize(img)
	if w > 0 && h > 0 {
		switch {
		case w >= 400 || h >= 300:
			score += 2
		case w >= 200 || h >= 150:
			score++
		case w < 100 && h < 100:
			score -= 2
		}
	}

	return score
}

// declaredSize parses the width/height attributes. Non-numeric values
// (percentages, "auto") count as absent.
func declaredSize(img *goquery.Selection) (int, int) {
	w, _ := strconv.Atoi(strings.TrimSpace(img.AttrOr("width", "")))
	h, _ := strconv.Atoi(strings.TrimSpace(img.AttrOr("height", "")))
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return w, h
}
