package main

import (
	"fmt"
	"regexp"

	"github.com/fwojciec/popscrape"
)

// defaultDiscoverPattern targets announcement-shaped paths when the
// user gives no filters of their own.
var defaultDiscoverPattern = regexp.MustCompile(`(?i)pop-?up|event|campaign|news`)

// Run executes the discover command.
func (c *DiscoverCmd) Run(deps *Dependencies) error {
	filter := &popscrape.URLFilter{}
	if len(c.Filter) == 0 {
		filter.Include = []*regexp.Regexp{defaultDiscoverPattern}
	}
	for _, pattern := range c.Filter {
		re, err := regexp.Compile(pattern)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: invalid filter pattern %q: %v\n", pattern, err)
			return err
		}
		filter.Include = append(filter.Include, re)
	}

	urls, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, c.URL, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", popscrape.ErrorMessage(err))
		return err
	}

	if len(urls) == 0 {
		fmt.Fprintln(deps.Stdout, "No matching URLs found.")
		return nil
	}

	for _, u := range urls {
		fmt.Fprintln(deps.Stdout, u)
	}
	return nil
}
