package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/popscrape"
)

// isURL reports whether the generate target is a page URL rather than
// an archived content ID.
func isURL(target string) bool {
	return strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://")
}

// Run executes the generate command.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	pattern, err := popscrape.ParseFormatPattern(c.Format)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", popscrape.ErrorMessage(err))
		return err
	}

	content, err := c.resolveContent(deps)
	if err != nil {
		return err
	}

	article, err := deps.Generator.Generate(deps.Ctx, content, pattern)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", popscrape.ErrorMessage(err))
		return err
	}

	if deps.Publisher != nil {
		result, err := deps.Publisher.Publish(deps.Ctx, article)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error publishing: %s\n", popscrape.ErrorMessage(err))
			return err
		}
		article.PostURL = result.URL
	}

	if err := deps.Articles.CreateArticle(deps.Ctx, article); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", popscrape.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Generated article %s (format %s)\n", article.ID, article.Format)
	if article.PostURL != "" {
		fmt.Fprintf(deps.Stdout, "  Published: %s\n", article.PostURL)
	}
	return nil
}

// resolveContent scrapes the target when it is a URL, otherwise loads
// it from the archive.
func (c *GenerateCmd) resolveContent(deps *Dependencies) (*popscrape.ScrapedContent, error) {
	if isURL(c.Target) {
		content, err := deps.Scraper.Scrape(deps.Ctx, c.Target)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", popscrape.ErrorMessage(err))
			return nil, err
		}
		if err := deps.Contents.CreateContent(deps.Ctx, content); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", popscrape.ErrorMessage(err))
			return nil, err
		}
		return content, nil
	}

	content, err := deps.Contents.FindContentByID(deps.Ctx, c.Target)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: content %q not found. Use 'popscrape list' to see archived scrapes.\n", c.Target)
		return nil, err
	}
	return content, nil
}
