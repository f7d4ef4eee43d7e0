package main

import (
	"context"
	"io"

	"github.com/fwojciec/popscrape"
	"github.com/fwojciec/popscrape/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Contents  popscrape.ContentService
	Articles  popscrape.ArticleService
	Sitemaps  popscrape.SitemapService
	Scraper   popscrape.Scraper
	Generator popscrape.Generator
	Publisher popscrape.Publisher
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Scrape   ScrapeCmd   `cmd:"" help:"Scrape an announcement page and archive the result"`
	Generate GenerateCmd `cmd:"" help:"Generate an article from scraped content"`
	List     ListCmd     `cmd:"" help:"List archived scrapes"`
	Show     ShowCmd     `cmd:"" help:"Show an archived scrape"`
	Discover DiscoverCmd `cmd:"" help:"Discover announcement URLs via sitemap"`
	Delete   DeleteCmd   `cmd:"" help:"Delete an archived scrape and its articles"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URLs        []string `arg:"" name:"url" help:"Announcement page URLs"`
	Render      bool     `short:"r" help:"Enable browser rendering fallback for JavaScript galleries"`
	Out         string   `short:"o" default:"text" enum:"text,json" help:"Output format (text or json)"`
	Concurrency int      `short:"c" default:"3" help:"Concurrent scrapes when multiple URLs are given"`
	RPS         float64  `name:"rps" default:"1" help:"Per-domain requests per second when multiple URLs are given"`
}

// GenerateCmd is the "generate" subcommand.
type GenerateCmd struct {
	Target  string `arg:"" help:"Announcement URL or archived content ID"`
	Engine  string `short:"e" default:"template" enum:"template,gemini" help:"Generation engine"`
	Format  string `short:"f" default:"A" help:"Format pattern (A, B, C or D)"`
	Publish string `short:"p" default:"" enum:",wordpress,dir" help:"Publish target"`
	Dir     string `default:"articles" help:"Output directory for --publish dir"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Full bool `help:"Show titles and image URLs"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Content ID"`
}

// DiscoverCmd is the "discover" subcommand.
type DiscoverCmd struct {
	URL    string   `arg:"" help:"Site base URL"`
	Filter []string `short:"F" name:"filter" help:"Filter URLs by regex (repeatable)"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Content ID"`
	Force bool   `help:"Confirm deletion"`
}
