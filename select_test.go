package popscrape_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/popscrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidate(url string, tier popscrape.ImageTier) popscrape.ImageCandidate {
	return popscrape.ImageCandidate{URL: url, Tier: tier}
}

func TestAssembleByTier(t *testing.T) {
	t.Parallel()

	cfg := popscrape.DefaultSelectionConfig()

	t.Run("main tier first in document order", func(t *testing.T) {
		t.Parallel()

		var cands []popscrape.ImageCandidate
		for i := 0; i < 7; i++ {
			cands = append(cands, candidate(fmt.Sprintf("https://x.com/main/%d.jpg", i), popscrape.TierMain))
		}
		for i := 0; i < 3; i++ {
			cands = append(cands, candidate(fmt.Sprintf("https://x.com/art/%d.jpg", i), popscrape.TierArticle))
		}

		out := popscrape.AssembleByTier(cands, cfg)

		require.Len(t, out, 8) // 5 main + 3 article
		for i := 0; i < 5; i++ {
			assert.Equal(t, fmt.Sprintf("https://x.com/main/%d.jpg", i), out[i].URL)
		}
		for i := 0; i < 3; i++ {
			assert.Equal(t, fmt.Sprintf("https://x.com/art/%d.jpg", i), out[5+i].URL)
		}
	})

	t.Run("general tier sorted by DOM importance, positives only", func(t *testing.T) {
		t.Parallel()

		cands := []popscrape.ImageCandidate{
			{URL: "https://x.com/g/low.jpg", Tier: popscrape.TierGeneral, DOMImportance: 1},
			{URL: "https://x.com/g/zero.jpg", Tier: popscrape.TierGeneral, DOMImportance: 0},
			{URL: "https://x.com/g/high.jpg", Tier: popscrape.TierGeneral, DOMImportance: 6},
			{URL: "https://x.com/g/neg.jpg", Tier: popscrape.TierGeneral, DOMImportance: -3},
			{URL: "https://x.com/g/mid.jpg", Tier: popscrape.TierGeneral, DOMImportance: 3},
		}

		out := popscrape.AssembleByTier(cands, cfg)

		require.Len(t, out, 3)
		assert.Equal(t, "https://x.com/g/high.jpg", out[0].URL)
		assert.Equal(t, "https://x.com/g/mid.jpg", out[1].URL)
		assert.Equal(t, "https://x.com/g/low.jpg", out[2].URL)
	})

	t.Run("meta fills only below threshold", func(t *testing.T) {
		t.Parallel()

		cands := []popscrape.ImageCandidate{
			candidate("https://x.com/main/a.jpg", popscrape.TierMain),
			candidate("https://x.com/meta/og.jpg", popscrape.TierMeta),
		}
		out := popscrape.AssembleByTier(cands, cfg)
		require.Len(t, out, 2, "meta admitted while under threshold")

		cands = []popscrape.ImageCandidate{
			candidate("https://x.com/main/a.jpg", popscrape.TierMain),
			candidate("https://x.com/main/b.jpg", popscrape.TierMain),
			candidate("https://x.com/main/c.jpg", popscrape.TierMain),
			candidate("https://x.com/meta/og.jpg", popscrape.TierMeta),
		}
		out = popscrape.AssembleByTier(cands, cfg)
		require.Len(t, out, 3, "meta skipped at threshold")
	})

	t.Run("background is last resort", func(t *testing.T) {
		t.Parallel()

		cands := []popscrape.ImageCandidate{
			candidate("https://x.com/main/a.jpg", popscrape.TierMain),
			candidate("https://x.com/bg/hero.jpg", popscrape.TierBackground),
		}
		out := popscrape.AssembleByTier(cands, cfg)
		require.Len(t, out, 2)

		cands = append([]popscrape.ImageCandidate{
			candidate("https://x.com/main/b.jpg", popscrape.TierMain),
		}, cands...)
		out = popscrape.AssembleByTier(cands, cfg)
		require.Len(t, out, 2, "background skipped once two images exist")
		assert.NotEqual(t, "https://x.com/bg/hero.jpg", out[1].URL)
	})

	t.Run("deduplicates across tiers", func(t *testing.T) {
		t.Parallel()

		cands := []popscrape.ImageCandidate{
			candidate("https://x.com/a.jpg", popscrape.TierMain),
			candidate("https://x.com/a.jpg", popscrape.TierArticle),
			candidate("https://x.com/b.jpg", popscrape.TierArticle),
		}

		out := popscrape.AssembleByTier(cands, cfg)

		require.Len(t, out, 2)
		assert.Equal(t, popscrape.TierMain, out[0].Tier)
	})
}

func TestSelectImages(t *testing.T) {
	t.Parallel()

	cfg := popscrape.DefaultSelectionConfig()

	t.Run("truncates to max and keeps URLs unique", func(t *testing.T) {
		t.Parallel()

		var cands []popscrape.ImageCandidate
		for i := 0; i < 5; i++ {
			cands = append(cands, candidate(fmt.Sprintf("https://x.com/main/%d.jpg", i), popscrape.TierMain))
		}
		for i := 0; i < 3; i++ {
			cands = append(cands, candidate(fmt.Sprintf("https://x.com/art/%d.jpg", i), popscrape.TierArticle))
		}
		for i := 0; i < 3; i++ {
			cands = append(cands, popscrape.ImageCandidate{
				URL: fmt.Sprintf("https://x.com/g/%d.jpg", i), Tier: popscrape.TierGeneral, DOMImportance: 1,
			})
		}

		out := popscrape.SelectImages(cands, cfg)

		assert.LessOrEqual(t, len(out), cfg.MaxImages)
		seen := make(map[string]bool)
		for _, img := range out {
			assert.False(t, seen[img.URL])
			seen[img.URL] = true
		}
	})

	t.Run("every selected image meets the quality floor", func(t *testing.T) {
		t.Parallel()

		cands := []popscrape.ImageCandidate{
			candidate("https://x.com/main/placeholder_x.jpg", popscrape.TierMain),
			candidate("https://x.com/main/hero_1200x800.jpg", popscrape.TierMain),
		}

		for _, img := range popscrape.SelectImages(cands, cfg) {
			assert.GreaterOrEqual(t, img.Quality, popscrape.QualityFloor)
		}
	})

	t.Run("final sort is stable descending by quality", func(t *testing.T) {
		t.Parallel()

		cands := []popscrape.ImageCandidate{
			candidate("https://x.com/main/first.jpg", popscrape.TierMain),
			candidate("https://x.com/main/second.jpg", popscrape.TierMain),
			candidate("https://x.com/art/hero_original_1200x900.jpg", popscrape.TierArticle),
		}

		out := popscrape.SelectImages(cands, cfg)

		require.Len(t, out, 3)
		// The keyword-rich article image outranks the plain main images;
		// the equal-scoring main images keep their document order.
		assert.Equal(t, "https://x.com/art/hero_original_1200x900.jpg", out[0].URL)
		assert.Equal(t, "https://x.com/main/first.jpg", out[1].URL)
		assert.Equal(t, "https://x.com/main/second.jpg", out[2].URL)
	})

	t.Run("main tier dominates when scores are comparable", func(t *testing.T) {
		t.Parallel()

		var cands []popscrape.ImageCandidate
		for i := 0; i < 5; i++ {
			cands = append(cands, candidate(fmt.Sprintf("https://x.com/body/pic%d.jpg", i), popscrape.TierMain))
		}
		for i := 0; i < 3; i++ {
			cands = append(cands, candidate(fmt.Sprintf("https://x.com/side/pic%d.jpg", i), popscrape.TierArticle))
		}

		out := popscrape.SelectImages(cands, cfg)

		require.Len(t, out, 8)
		for i := 0; i < 5; i++ {
			assert.Equal(t, fmt.Sprintf("https://x.com/body/pic%d.jpg", i), out[i].URL)
		}
	})
}

func TestImageURLs(t *testing.T) {
	t.Parallel()

	urls := popscrape.ImageURLs([]popscrape.ScoredImage{
		{ImageCandidate: popscrape.ImageCandidate{URL: "https://x.com/a.jpg"}},
		{ImageCandidate: popscrape.ImageCandidate{URL: "https://x.com/b.jpg"}},
	})

	assert.Equal(t, []string{"https://x.com/a.jpg", "https://x.com/b.jpg"}, urls)
}
