package sqlite_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/fwojciec/popscrape"
	"github.com/fwojciec/popscrape/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestContent(t *testing.T, db *sqlite.DB, sourceURL string) *popscrape.ScrapedContent {
	t.Helper()
	svc := sqlite.NewContentService(db)
	content := &popscrape.ScrapedContent{
		SourceURL:   sourceURL,
		Title:       "POP UP STORE開催決定",
		CleanedText: "期間限定ポップアップストアを開催します。",
		Images: []string{
			"https://example.com/images/main_visual.jpg",
			"https://example.com/images/goods_lineup.jpg",
		},
		Store: popscrape.StoreInfo{
			Name:      "渋谷パルコ",
			Type:      popscrape.StoreNormal,
			StartDate: "2026-09-01",
			EndDate:   "2026-09-15",
		},
		Novelty: popscrape.NoveltyInfo{
			Name:       "特製ステッカー",
			Price:      2000,
			TotalTypes: 5,
			IsRandom:   true,
		},
		CharacterNames: []string{"アキラ", "ユイ"},
		ParseDegraded:  true,
	}
	require.NoError(t, svc.CreateContent(context.Background(), content))
	return content
}

func TestContentService_CreateContent(t *testing.T) {
	t.Parallel()

	t.Run("assigns ID, hash and timestamp", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		content := createTestContent(t, db, "https://example.com/news/popup")

		assert.NotEmpty(t, content.ID, "ID should be generated")
		assert.NotEmpty(t, content.ContentHash, "ContentHash should be generated")
		assert.False(t, content.ScrapedAt.IsZero(), "ScrapedAt should be set")
	})

	t.Run("same cleaned text produces same hash", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		c1 := createTestContent(t, db, "https://example.com/news/1")
		c2 := createTestContent(t, db, "https://example.com/news/2")

		assert.Equal(t, c1.ContentHash, c2.ContentHash)
	})

	t.Run("returns error for invalid content", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewContentService(db)

		err := svc.CreateContent(context.Background(), &popscrape.ScrapedContent{})
		require.Error(t, err)
		assert.Equal(t, popscrape.EINVALID, popscrape.ErrorCode(err))
	})
}

func TestContentService_FindContentByID(t *testing.T) {
	t.Parallel()

	t.Run("round-trips all fields", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewContentService(db)
		content := createTestContent(t, db, "https://example.com/news/popup")

		found, err := svc.FindContentByID(context.Background(), content.ID)
		require.NoError(t, err)
		assert.Equal(t, content.SourceURL, found.SourceURL)
		assert.Equal(t, content.Title, found.Title)
		assert.Equal(t, content.CleanedText, found.CleanedText)
		assert.Equal(t, content.Images, found.Images)
		assert.Equal(t, content.Store, found.Store)
		assert.Equal(t, content.Novelty, found.Novelty)
		assert.Equal(t, content.CharacterNames, found.CharacterNames)
		assert.Equal(t, content.ParseDegraded, found.ParseDegraded)
		assert.Equal(t, content.ContentHash, found.ContentHash)
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewContentService(db)

		_, err := svc.FindContentByID(context.Background(), "nonexistent-id")
		require.Error(t, err)
		assert.Equal(t, popscrape.ENOTFOUND, popscrape.ErrorCode(err))
	})
}

func TestContentService_FindContents(t *testing.T) {
	t.Parallel()

	t.Run("returns all contents with empty filter", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewContentService(db)

		for i := 0; i < 3; i++ {
			createTestContent(t, db, fmt.Sprintf("https://example.com/news/%d", i+1))
		}

		contents, err := svc.FindContents(context.Background(), popscrape.ContentFilter{})
		require.NoError(t, err)
		assert.Len(t, contents, 3)
	})

	t.Run("filters by source URL", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewContentService(db)

		url := "https://example.com/news/unique"
		createTestContent(t, db, url)
		createTestContent(t, db, "https://example.com/news/other")

		contents, err := svc.FindContents(context.Background(), popscrape.ContentFilter{SourceURL: &url})
		require.NoError(t, err)
		require.Len(t, contents, 1)
		assert.Equal(t, url, contents[0].SourceURL)
	})

	t.Run("sorts by source URL when requested", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewContentService(db)

		createTestContent(t, db, "https://example.com/news/c")
		createTestContent(t, db, "https://example.com/news/a")
		createTestContent(t, db, "https://example.com/news/b")

		contents, err := svc.FindContents(context.Background(), popscrape.ContentFilter{
			SortBy: popscrape.ContentSortBySourceURL,
		})
		require.NoError(t, err)
		require.Len(t, contents, 3)
		assert.Equal(t, "https://example.com/news/a", contents[0].SourceURL)
		assert.Equal(t, "https://example.com/news/b", contents[1].SourceURL)
		assert.Equal(t, "https://example.com/news/c", contents[2].SourceURL)
	})

	t.Run("respects limit and offset", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewContentService(db)

		for i := 0; i < 5; i++ {
			createTestContent(t, db, fmt.Sprintf("https://example.com/news/%d", i+1))
		}

		contents, err := svc.FindContents(context.Background(), popscrape.ContentFilter{Limit: 2, Offset: 1})
		require.NoError(t, err)
		assert.Len(t, contents, 2)
	})
}

func TestContentService_DeleteContent(t *testing.T) {
	t.Parallel()

	t.Run("deletes existing content", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewContentService(db)
		content := createTestContent(t, db, "https://example.com/news/popup")

		err := svc.DeleteContent(context.Background(), content.ID)
		require.NoError(t, err)

		_, err = svc.FindContentByID(context.Background(), content.ID)
		assert.Equal(t, popscrape.ENOTFOUND, popscrape.ErrorCode(err))
	})

	t.Run("cascades to generated articles", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		contentSvc := sqlite.NewContentService(db)
		articleSvc := sqlite.NewArticleService(db)
		ctx := context.Background()

		content := createTestContent(t, db, "https://example.com/news/popup")
		article := &popscrape.Article{
			ContentID: content.ID,
			Format:    popscrape.FormatPatternA,
			Title:     "POP UP STORE開催決定",
		}
		require.NoError(t, articleSvc.CreateArticle(ctx, article))

		require.NoError(t, contentSvc.DeleteContent(ctx, content.ID))

		articles, err := articleSvc.FindArticles(ctx, popscrape.ArticleFilter{ContentID: &content.ID})
		require.NoError(t, err)
		assert.Empty(t, articles)
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewContentService(db)

		err := svc.DeleteContent(context.Background(), "nonexistent-id")
		require.Error(t, err)
		assert.Equal(t, popscrape.ENOTFOUND, popscrape.ErrorCode(err))
	})
}
