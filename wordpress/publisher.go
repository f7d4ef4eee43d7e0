// Package wordpress implements article publishing to a WordPress site
// over the REST API. Images referenced by an article are uploaded to
// the media library first, and their URLs in the article body are
// rewritten to the hosted copies.
package wordpress

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/fwojciec/popscrape"
)

// DefaultPublishTimeout bounds a single publish, media uploads
// included.
const DefaultPublishTimeout = 60 * time.Second

// Ensure Publisher implements popscrape.Publisher at compile time.
var _ popscrape.Publisher = (*Publisher)(nil)

// Publisher posts articles to a WordPress site.
type Publisher struct {
	client      *http.Client
	baseURL     string
	username    string
	appPassword string
	status      string
	downloader  popscrape.ImageDownloader
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithStatus sets the post status, "draft" by default.
func WithStatus(status string) Option {
	return func(p *Publisher) {
		p.status = status
	}
}

// WithDownloader enables media uploads: article images are fetched
// with the downloader and re-hosted in the WordPress media library.
func WithDownloader(d popscrape.ImageDownloader) Option {
	return func(p *Publisher) {
		p.downloader = d
	}
}

// WithPublishTimeout sets the HTTP client timeout.
func WithPublishTimeout(timeout time.Duration) Option {
	return func(p *Publisher) {
		p.client.Timeout = timeout
	}
}

// NewPublisher creates a Publisher for the WordPress site at baseURL,
// authenticating with an application password.
func NewPublisher(baseURL, username, appPassword string, opts ...Option) *Publisher {
	p := &Publisher{
		client:      &http.Client{Timeout: DefaultPublishTimeout},
		baseURL:     strings.TrimRight(baseURL, "/"),
		username:    username,
		appPassword: appPassword,
		status:      "draft",
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

type postRequest struct {
	Title         string `json:"title"`
	Content       string `json:"content"`
	Status        string `json:"status"`
	FeaturedMedia int    `json:"featured_media,omitempty"`
}

type postResponse struct {
	ID   int    `json:"id"`
	Link string `json:"link"`
}

type mediaResponse struct {
	ID        int    `json:"id"`
	SourceURL string `json:"source_url"`
}

// Publish creates a post for the article. Media upload failures are
// skipped; only the post creation itself can fail the publish.
func (p *Publisher) Publish(ctx context.Context, article *popscrape.Article) (*popscrape.PublishResult, error) {
	if article == nil {
		return nil, popscrape.Errorf(popscrape.EINVALID, "article required")
	}
	if article.Title == "" {
		return nil, popscrape.Errorf(popscrape.EINVALID, "article title required")
	}

	content := article.HTML
	featured := 0

	if p.downloader != nil && len(article.Images) > 0 {
		uploads := p.uploadImages(ctx, article.Images)
		for src, media := range uploads {
			content = strings.ReplaceAll(content, src, media.SourceURL)
		}
		if media, ok := uploads[article.Images[0]]; ok {
			featured = media.ID
		}
	}

	body, err := json.Marshal(postRequest{
		Title:         article.Title,
		Content:       content,
		Status:        p.status,
		FeaturedMedia: featured,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/wp-json/wp/v2/posts", bytes.NewReader(body))
	if err != nil {
		return nil, popscrape.Errorf(popscrape.EINVALID, "failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(p.username, p.appPassword)

	var post postResponse
	if err := p.do(req, &post); err != nil {
		return nil, err
	}

	return &popscrape.PublishResult{URL: post.Link, PostID: post.ID}, nil
}

// uploadImages re-hosts images in the media library, keyed by source
// URL. Failed downloads and uploads are simply absent from the result.
func (p *Publisher) uploadImages(ctx context.Context, urls []string) map[string]mediaResponse {
	uploads := make(map[string]mediaResponse, len(urls))

	for _, dl := range p.downloader.DownloadAll(ctx, urls) {
		if dl.Err != nil {
			continue
		}
		media, err := p.uploadMedia(ctx, dl)
		if err != nil {
			continue
		}
		uploads[dl.URL] = media
	}
	return uploads
}

func (p *Publisher) uploadMedia(ctx context.Context, dl popscrape.ImageDownload) (mediaResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/wp-json/wp/v2/media", bytes.NewReader(dl.Data))
	if err != nil {
		return mediaResponse{}, err
	}
	req.Header.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", mediaFilename(dl.URL)))
	if dl.ContentType != "" {
		req.Header.Set("Content-Type", dl.ContentType)
	}
	req.SetBasicAuth(p.username, p.appPassword)

	var media mediaResponse
	if err := p.do(req, &media); err != nil {
		return mediaResponse{}, err
	}
	return media, nil
}

func (p *Publisher) do(req *http.Request, out any) error {
	resp, err := p.client.Do(req)
	if err != nil {
		return popscrape.Errorf(popscrape.EUNAVAILABLE, "wordpress request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return popscrape.Errorf(popscrape.EUNAVAILABLE, "failed to read response: %v", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return popscrape.Errorf(popscrape.EINVALID, "wordpress rejected credentials (HTTP %d)", resp.StatusCode)
	case resp.StatusCode >= 500:
		return popscrape.Errorf(popscrape.EUNAVAILABLE, "wordpress returned HTTP %d", resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return popscrape.Errorf(popscrape.EINTERNAL, "wordpress returned HTTP %d", resp.StatusCode)
	}

	return json.Unmarshal(body, out)
}

// mediaFilename derives an upload filename from the image URL path.
func mediaFilename(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || path.Base(u.Path) == "/" || path.Base(u.Path) == "." {
		return "image.jpg"
	}
	return path.Base(u.Path)
}
