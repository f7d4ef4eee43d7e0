package popscrape

import "sort"

// SelectionConfig holds the empirically tuned caps and thresholds of
// the image selector. The defaults reproduce the tuning that worked on
// real store announcement pages; sites with unusual layouts may want to
// adjust them per target.
type SelectionConfig struct {
	// MaxImages caps the final output list.
	MaxImages int

	// Per-tier caps applied during assembly.
	MainCap       int
	ArticleCap    int
	GeneralCap    int
	MetaCap       int
	BackgroundCap int

	// MetaFillBelow admits META candidates only while the assembled
	// list is shorter than this; BackgroundFillBelow does the same for
	// BACKGROUND candidates (the last resort).
	MetaFillBelow       int
	BackgroundFillBelow int
}

// DefaultSelectionConfig returns the standard tuning.
func DefaultSelectionConfig() SelectionConfig {
	return SelectionConfig{
		MaxImages:           10,
		MainCap:             5,
		ArticleCap:          3,
		GeneralCap:          3,
		MetaCap:             2,
		BackgroundCap:       1,
		MetaFillBelow:       3,
		BackgroundFillBelow: 2,
	}
}

// AssembleByTier merges candidates in tier order (MAIN in document
// order, ARTICLE, GENERAL by descending DOM importance, then META and
// BACKGROUND as fill), applying per-tier caps and exact-URL
// deduplication at every insertion point. GENERAL candidates with a
// non-positive DOM importance never qualify.
func AssembleByTier(candidates []ImageCandidate, cfg SelectionConfig) []ImageCandidate {
	byTier := make(map[ImageTier][]ImageCandidate)
	for _, c := range candidates {
		byTier[c.Tier] = append(byTier[c.Tier], c)
	}

	general := byTier[TierGeneral][:0:0]
	for _, c := range byTier[TierGeneral] {
		if c.DOMImportance > 0 {
			general = append(general, c)
		}
	}
	sort.SliceStable(general, func(i, j int) bool {
		return general[i].DOMImportance > general[j].DOMImportance
	})

	seen := make(map[string]bool)
	var out []ImageCandidate
	add := func(tier []ImageCandidate, limit int) {
		taken := 0
		for _, c := range tier {
			if taken >= limit {
				return
			}
			if seen[c.URL] {
				continue
			}
			seen[c.URL] = true
			out = append(out, c)
			taken++
		}
	}

	add(byTier[TierMain], cfg.MainCap)
	add(byTier[TierArticle], cfg.ArticleCap)
	add(general, cfg.GeneralCap)
	if len(out) < cfg.MetaFillBelow {
		add(byTier[TierMeta], cfg.MetaCap)
	}
	if len(out) < cfg.BackgroundFillBelow {
		add(byTier[TierBackground], cfg.BackgroundCap)
	}

	return out
}

// SelectImages runs the full selection: tier assembly, quality scoring,
// a stable descending re-sort across the combined list (ties keep
// their tier order) and truncation to the output cap. The returned
// URLs are unique and every score is at or above QualityFloor.
func SelectImages(candidates []ImageCandidate, cfg SelectionConfig) []ScoredImage {
	assembled := AssembleByTier(candidates, cfg)

	scored := make([]ScoredImage, 0, len(assembled))
	for _, c := range assembled {
		scored = append(scored, ScoredImage{ImageCandidate: c, Quality: QualityScore(c.URL)})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Quality > scored[j].Quality
	})

	if len(scored) > cfg.MaxImages {
		scored = scored[:cfg.MaxImages]
	}
	return scored
}

// ImageURLs flattens scored images into the output URL list.
func ImageURLs(images []ScoredImage) []string {
	urls := make([]string, 0, len(images))
	for _, img := range images {
		urls = append(urls, img.URL)
	}
	return urls
}
