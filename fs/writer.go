// Package fs provides file-based publishing for generated articles.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/popscrape"
)

// ArticleFilename derives the markdown filename for an article.
// Example: content-1 + format A → content-1-a.md
func ArticleFilename(article *popscrape.Article) string {
	id := article.ID
	if id == "" {
		id = article.ContentID
	}
	return fmt.Sprintf("%s-%s.md", id, strings.ToLower(string(article.Format)))
}

// FormatArticle renders an article with YAML frontmatter above the
// markdown body.
func FormatArticle(article *popscrape.Article, markdown string) string {
	created := article.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("title: ")
	b.WriteString(article.Title)
	b.WriteString("\nformat: ")
	b.WriteString(string(article.Format))
	b.WriteString("\ncreated: ")
	b.WriteString(created.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(markdown)
	return b.String()
}

// Ensure Publisher implements popscrape.Publisher at compile time.
var _ popscrape.Publisher = (*Publisher)(nil)

// Publisher writes articles as markdown files to a directory.
type Publisher struct {
	baseDir string
	conv    popscrape.Converter
}

// NewPublisher creates a Publisher that writes converted articles to
// the given base directory.
func NewPublisher(baseDir string, conv popscrape.Converter) *Publisher {
	return &Publisher{baseDir: baseDir, conv: conv}
}

// Publish converts the article HTML to markdown and writes it to disk.
// The result URL is the written file path.
func (p *Publisher) Publish(ctx context.Context, article *popscrape.Article) (*popscrape.PublishResult, error) {
	if article == nil {
		return nil, popscrape.Errorf(popscrape.EINVALID, "article required")
	}
	if err := article.Validate(); err != nil {
		return nil, err
	}

	markdown, err := p.conv.Convert(article.HTML)
	if err != nil {
		return nil, err
	}

	fullPath := filepath.Join(p.baseDir, ArticleFilename(article))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return nil, err
	}

	content := FormatArticle(article, markdown)
	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		return nil, err
	}

	return &popscrape.PublishResult{URL: fullPath}, nil
}
