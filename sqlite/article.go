package sqlite

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/fwojciec/popscrape"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ popscrape.ArticleService = (*ArticleService)(nil)

// ArticleService implements popscrape.ArticleService using SQLite.
type ArticleService struct {
	db *DB
}

// NewArticleService creates a new ArticleService.
func NewArticleService(db *DB) *ArticleService {
	return &ArticleService{db: db}
}

// CreateArticle stores an article, assigning ID and timestamp.
func (s *ArticleService) CreateArticle(ctx context.Context, article *popscrape.Article) error {
	if err := article.Validate(); err != nil {
		return err
	}

	article.ID = uuid.New().String()
	article.CreatedAt = time.Now().UTC()

	images, err := json.Marshal(article.Images)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO articles (id, content_id, format, title, html, images, post_url, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, article.ID, article.ContentID, string(article.Format), article.Title, article.HTML,
		string(images), article.PostURL, article.CreatedAt.Format(time.RFC3339))

	return err
}

// FindArticles retrieves articles matching the filter, newest first.
func (s *ArticleService) FindArticles(ctx context.Context, filter popscrape.ArticleFilter) ([]*popscrape.Article, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, content_id, format, title, html, images, post_url, created_at FROM articles WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.ContentID != nil {
		query.WriteString(" AND content_id = ?")
		args = append(args, *filter.ContentID)
	}

	query.WriteString(" ORDER BY created_at DESC")

	query.WriteString(paginationClause(filter.Limit, filter.Offset))

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []*popscrape.Article
	for rows.Next() {
		var article popscrape.Article
		var format, images, createdAt string

		if err := rows.Scan(&article.ID, &article.ContentID, &format, &article.Title,
			&article.HTML, &images, &article.PostURL, &createdAt); err != nil {
			return nil, err
		}

		article.Format = popscrape.FormatPattern(format)
		if err := json.Unmarshal([]byte(images), &article.Images); err != nil {
			return nil, err
		}
		article.CreatedAt, err = parseTimestamp(createdAt, "created_at")
		if err != nil {
			return nil, err
		}

		articles = append(articles, &article)
	}

	return articles, rows.Err()
}
