package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/popscrape"
)

// Ensure LoggingScraper implements popscrape.Scraper.
var _ popscrape.Scraper = (*LoggingScraper)(nil)

// LoggingScraper wraps a Scraper with debug logging.
type LoggingScraper struct {
	next   popscrape.Scraper
	logger *slog.Logger
}

// NewLoggingScraper creates a new LoggingScraper.
func NewLoggingScraper(next popscrape.Scraper, logger *slog.Logger) *LoggingScraper {
	return &LoggingScraper{next: next, logger: logger}
}

// Scrape delegates to the wrapped scraper and logs the outcome. A scrape
// that yields no text is worth a warning: it usually means the page is
// fully JavaScript-rendered or the content heuristics missed. A degraded
// parse (text taken from the whole document because no content container
// matched) also warns, since the text likely carries navigation noise.
func (s *LoggingScraper) Scrape(ctx context.Context, url string) (content *popscrape.ScrapedContent, err error) {
	defer func(begin time.Time) {
		if err == nil && content != nil && content.CleanedText == "" {
			s.logger.Warn("scrape found no text", "url", url)
		}
		if err == nil && content != nil && content.ParseDegraded {
			s.logger.Warn("no content container matched, used whole document", "url", url)
		}
		var images, chars int
		if content != nil {
			images = len(content.Images)
			chars = len(content.CleanedText)
		}
		s.logger.Info("scrape",
			"url", url,
			"images", images,
			"text_chars", chars,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Scrape(ctx, url)
}
