package main

import (
	"fmt"

	"github.com/fwojciec/popscrape"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	contents, err := deps.Contents.FindContents(deps.Ctx, popscrape.ContentFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", popscrape.ErrorMessage(err))
		return err
	}

	if len(contents) == 0 {
		fmt.Fprintln(deps.Stdout, "No scrapes found. Use 'popscrape scrape <url>' to create one.")
		return nil
	}

	for _, content := range contents {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n",
			content.ID, content.ScrapedAt.Format("2006-01-02"), content.SourceURL)
		if c.Full {
			if content.Title != "" {
				fmt.Fprintf(deps.Stdout, "    %s\n", content.Title)
			}
			for _, img := range content.Images {
				fmt.Fprintf(deps.Stdout, "    %s\n", img)
			}
		}
	}

	return nil
}
