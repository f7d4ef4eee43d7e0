package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fwojciec/popscrape"
	"github.com/fwojciec/popscrape/scrape"
)

// Run executes the scrape command. A single URL is scraped directly;
// multiple URLs run as a rate-limited concurrent batch where one failed
// page never aborts the rest.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	if len(c.URLs) == 1 {
		content, err := deps.Scraper.Scrape(deps.Ctx, c.URLs[0])
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", popscrape.ErrorMessage(err))
			return err
		}
		return c.archive(deps, content)
	}

	limiter := scrape.NewDomainLimiter(c.RPS)
	progress := func(e scrape.ProgressEvent) {
		if e.Type == scrape.ProgressFailed {
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", e.URL, popscrape.ErrorMessage(e.Error))
		}
	}

	result, err := scrape.ScrapeAll(deps.Ctx, deps.Scraper, c.URLs, limiter, c.Concurrency, progress)
	if err != nil {
		return err
	}

	for _, content := range result.Contents {
		if err := c.archive(deps, content); err != nil {
			return err
		}
	}

	fmt.Fprintf(deps.Stdout, "Scraped %d of %d pages\n", len(result.Contents), len(c.URLs))
	if len(result.Contents) == 0 {
		return popscrape.Errorf(popscrape.EUNAVAILABLE, "all %d scrapes failed", result.Failed)
	}
	return nil
}

// archive stores the content and prints it in the requested format.
func (c *ScrapeCmd) archive(deps *Dependencies, content *popscrape.ScrapedContent) error {
	if err := deps.Contents.CreateContent(deps.Ctx, content); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", popscrape.ErrorMessage(err))
		return err
	}

	if c.Out == "json" {
		data, err := json.MarshalIndent(content, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(deps.Stdout, string(data))
		return nil
	}

	printContentSummary(deps.Stdout, content)
	return nil
}

func printContentSummary(w io.Writer, content *popscrape.ScrapedContent) {
	fmt.Fprintf(w, "Scraped %s\n", content.SourceURL)
	fmt.Fprintf(w, "  ID:     %s\n", content.ID)
	if content.Title != "" {
		fmt.Fprintf(w, "  Title:  %s\n", content.Title)
	}
	fmt.Fprintf(w, "  Text:   %d chars\n", len([]rune(content.CleanedText)))
	fmt.Fprintf(w, "  Images: %d\n", len(content.Images))
	if content.Store.Name != "" {
		fmt.Fprintf(w, "  Store:  %s (%s〜%s)\n", content.Store.Name, content.Store.StartDate, content.Store.EndDate)
	}
	if content.Novelty.Name != "" {
		fmt.Fprintf(w, "  Bonus:  %s 全%d種 / %d円\n", content.Novelty.Name, content.Novelty.TotalTypes, content.Novelty.Price)
	}
}
