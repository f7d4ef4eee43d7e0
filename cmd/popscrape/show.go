package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/popscrape"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	content, err := deps.Contents.FindContentByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: content %q not found. Use 'popscrape list' to see archived scrapes.\n", c.ID)
		return err
	}

	data, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, string(data))

	articles, err := deps.Articles.FindArticles(deps.Ctx, popscrape.ArticleFilter{ContentID: &content.ID})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", popscrape.ErrorMessage(err))
		return err
	}

	if len(articles) > 0 {
		fmt.Fprintf(deps.Stdout, "\nArticles (%d):\n", len(articles))
		for _, article := range articles {
			line := fmt.Sprintf("  %s  format %s", article.ID, article.Format)
			if article.PostURL != "" {
				line += "  " + article.PostURL
			}
			fmt.Fprintln(deps.Stdout, line)
		}
	}

	return nil
}
