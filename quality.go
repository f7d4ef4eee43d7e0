package popscrape

import (
	"regexp"
	"strconv"
	"strings"
)

// qualityBase is the starting score before bonuses and penalties.
const qualityBase = 10

// QualityFloor is the minimum score ever returned; every image in the
// final output satisfies it by construction.
const QualityFloor = 5

// qualityKeywords raise the score when present anywhere in the URL.
// Each keyword is checked independently, so overlapping matches
// ("thumbnail" also contains "thumb") accumulate.
var qualityKeywords = map[string]int{
	"large":         4,
	"big":           3,
	"full":          4,
	"original":      5,
	"high":          3,
	"main":          4,
	"hero":          5,
	"featured":      4,
	"gallery":       3,
	"photo":         3,
	"image":         2,
	"picture":       2,
	"visual":        2,
	"artwork":       4,
	"character":     4,
	"anime":         4,
	"goods":         4,
	"product":       4,
	"item":          3,
	"merchandise":   3,
	"collaboration": 3,
	"event":         3,
	"popup":         4,
	"store":         2,
	"campaign":      3,
	"special":       3,
	"limited":       3,
	"exclusive":     3,
	"new":           2,
	"latest":        2,
	"banner":        2,
	"logo":          1,
	"icon":          1,
}

// lowQualityKeywords lower the score; the tracking-pixel family is
// penalized hard enough to sink to the floor regardless of bonuses.
var lowQualityKeywords = map[string]int{
	"thumb":       -2,
	"thumbnail":   -2,
	"small":       -1,
	"mini":        -1,
	"tiny":        -2,
	"pixel":       -5,
	"tracking":    -5,
	"spacer":      -5,
	"blank":       -5,
	"placeholder": -3,
	"default":     -1,
}

// cdnHints mark media/asset servers, which tend to host the full-size
// originals.
var cdnHints = []string{"cdn", "media", "assets", "static", "images"}

// Embedded resolution tokens: 1200x800, w640, h480.
var (
	sizePairPattern   = regexp.MustCompile(`(\d{3,4})x(\d{3,4})`)
	sizeWidthPattern  = regexp.MustCompile(`w(\d{3,4})`)
	sizeHeightPattern = regexp.MustCompile(`h(\d{3,4})`)
)

// QualityScore rates an image URL on string heuristics alone, so it
// applies equally to candidates with no DOM context (meta tags,
// background styles). Higher is better; the result is never below
// QualityFloor.
func QualityScore(rawURL string) int {
	score := qualityBase
	lower := strings.ToLower(rawURL)

	for keyword, points := range qualityKeywords {
		if strings.Contains(lower, keyword) {
			score += points
		}
	}
	for keyword, points := range lowQualityKeywords {
		if strings.Contains(lower, keyword) {
			score += points
		}
	}

	// Deep paths usually mean detail pages rather than site chrome.
	if strings.Count(lower, "/") >= 5 {
		score += 2
	}

	for _, hint := range cdnHints {
		if strings.Contains(lower, hint) {
			score += 2
			break
		}
	}

	// Product codes in the filename.
	if digitCount(urlFilename(lower)) >= 3 {
		score++
	}

	// Long URLs carry resize parameters and nested asset paths; both
	// bonuses apply to a >150-char URL.
	if len(rawURL) > 100 {
		score++
	}
	if len(rawURL) > 150 {
		score += 2
	}

	score += resolutionBonus(lower)

	return max(QualityFloor, score)
}

// resolutionBonus inspects embedded size tokens and rewards large
// declared dimensions: >=800 in either dimension earns +3, >=400
// earns +1, per token form.
func resolutionBonus(lower string) int {
	bonus := 0

	if m := sizePairPattern.FindStringSubmatch(lower); m != nil {
		w, _ := strconv.Atoi(m[1])
		h, _ := strconv.Atoi(m[2])
		switch {
		case w >= 800 || h >= 800:
			bonus += 3
		case w >= 400 || h >= 400:
			bonus++
		}
	}
	for _, pattern := range []*regexp.Regexp{sizeWidthPattern, sizeHeightPattern} {
		if m := pattern.FindStringSubmatch(lower); m != nil {
			size, _ := strconv.Atoi(m[1])
			switch {
			case size >= 800:
				bonus += 3
			case size >= 400:
				bonus++
			}
		}
	}

	return bonus
}

func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
