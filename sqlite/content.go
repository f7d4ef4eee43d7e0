package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/popscrape"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ popscrape.ContentService = (*ContentService)(nil)

// ContentService implements popscrape.ContentService using SQLite.
type ContentService struct {
	db *DB
}

// NewContentService creates a new ContentService.
func NewContentService(db *DB) *ContentService {
	return &ContentService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// CreateContent stores a scrape result, assigning ID, hash and timestamp.
func (s *ContentService) CreateContent(ctx context.Context, content *popscrape.ScrapedContent) error {
	if err := content.Validate(); err != nil {
		return err
	}

	content.ID = uuid.New().String()
	content.ScrapedAt = time.Now().UTC()
	content.ContentHash = hashContent(content.CleanedText)

	images, err := json.Marshal(content.Images)
	if err != nil {
		return err
	}
	store, err := json.Marshal(content.Store)
	if err != nil {
		return err
	}
	novelty, err := json.Marshal(content.Novelty)
	if err != nil {
		return err
	}
	characters, err := json.Marshal(content.CharacterNames)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO contents (id, source_url, title, description, cleaned_text, images, store, novelty, character_names, parse_degraded, content_hash, scraped_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, content.ID, content.SourceURL, content.Title, content.Description, content.CleanedText,
		string(images), string(store), string(novelty), string(characters),
		content.ParseDegraded, content.ContentHash, content.ScrapedAt.Format(time.RFC3339))

	return err
}

// FindContentByID retrieves a scrape by ID.
func (s *ContentService) FindContentByID(ctx context.Context, id string) (*popscrape.ScrapedContent, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, source_url, title, description, cleaned_text, images, store, novelty, character_names, parse_degraded, content_hash, scraped_at
		FROM contents
		WHERE id = ?
	`, id)

	content, err := scanContent(row)
	if err == sql.ErrNoRows {
		return nil, popscrape.Errorf(popscrape.ENOTFOUND, "content not found")
	}
	if err != nil {
		return nil, err
	}

	return content, nil
}

// FindContents retrieves scrapes matching the filter.
func (s *ContentService) FindContents(ctx context.Context, filter popscrape.ContentFilter) ([]*popscrape.ScrapedContent, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source_url, title, description, cleaned_text, images, store, novelty, character_names, parse_degraded, content_hash, scraped_at FROM contents WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	switch filter.SortBy {
	case popscrape.ContentSortBySourceURL:
		query.WriteString(" ORDER BY source_url ASC")
	default:
		query.WriteString(" ORDER BY scraped_at DESC")
	}

	query.WriteString(paginationClause(filter.Limit, filter.Offset))

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contents []*popscrape.ScrapedContent
	for rows.Next() {
		content, err := scanContent(rows)
		if err != nil {
			return nil, err
		}
		contents = append(contents, content)
	}

	return contents, rows.Err()
}

// DeleteContent permanently removes a scrape. Generated articles are
// removed by the foreign key cascade.
func (s *ContentService) DeleteContent(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM contents WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return popscrape.Errorf(popscrape.ENOTFOUND, "content not found")
	}

	return nil
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanContent(row rowScanner) (*popscrape.ScrapedContent, error) {
	var content popscrape.ScrapedContent
	var images, store, novelty, characters, scrapedAt string

	if err := row.Scan(&content.ID, &content.SourceURL, &content.Title, &content.Description,
		&content.CleanedText, &images, &store, &novelty, &characters,
		&content.ParseDegraded, &content.ContentHash, &scrapedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(images), &content.Images); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(store), &content.Store); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(novelty), &content.Novelty); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(characters), &content.CharacterNames); err != nil {
		return nil, err
	}

	var err error
	content.ScrapedAt, err = parseTimestamp(scrapedAt, "scraped_at")
	if err != nil {
		return nil, err
	}

	return &content, nil
}
