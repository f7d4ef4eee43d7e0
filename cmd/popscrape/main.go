package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/popscrape"
	"github.com/fwojciec/popscrape/format"
	"github.com/fwojciec/popscrape/fs"
	"github.com/fwojciec/popscrape/gemini"
	"github.com/fwojciec/popscrape/goquery"
	"github.com/fwojciec/popscrape/htmltomarkdown"
	pophttp "github.com/fwojciec/popscrape/http"
	"github.com/fwojciec/popscrape/rod"
	"github.com/fwojciec/popscrape/scrape"
	popslog "github.com/fwojciec/popscrape/slog"
	"github.com/fwojciec/popscrape/sqlite"
	"github.com/fwojciec/popscrape/trafilatura"
	"github.com/fwojciec/popscrape/wordpress"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	ContentService popscrape.ContentService
	ArticleService popscrape.ArticleService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("popscrape"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'popscrape --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set POPSCRAPE_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	// Wire core services into dependencies
	m.ContentService = sqlite.NewContentService(m.DB)
	m.ArticleService = sqlite.NewArticleService(m.DB)
	deps.DB = m.DB
	deps.Contents = m.ContentService
	deps.Articles = m.ArticleService
	deps.Sitemaps = popslog.NewLoggingSitemapService(pophttp.NewSitemapService(nil), logger)

	// Wire command-specific dependencies
	needsScraper := cmd == "scrape" || (cmd == "generate" && isURL(cli.Generate.Target))
	if needsScraper {
		pipeline := &scrape.Pipeline{
			Fetcher:   popslog.NewLoggingFetcher(pophttp.NewFetcher(), logger),
			Extractor: goquery.NewExtractor(),
			Collector: goquery.NewCollector(),
			Fallback:  trafilatura.NewExtractor(),
		}

		if cmd == "scrape" && cli.Scrape.Render {
			fetcher, err := rod.NewFetcher()
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --render")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			defer fetcher.Close()
			pipeline.Dynamic = fetcher
		}

		deps.Scraper = popslog.NewLoggingScraper(pipeline, logger)
	}

	if cmd == "generate" {
		switch cli.Generate.Engine {
		case "gemini":
			apiKey := os.Getenv("GEMINI_API_KEY")
			if apiKey == "" {
				return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
			}
			client, err := genai.NewClient(ctx, &genai.ClientConfig{
				APIKey:  apiKey,
				Backend: genai.BackendGeminiAPI,
			})
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
				return fmt.Errorf("failed to connect to Gemini API: %w", err)
			}
			deps.Generator = gemini.NewGenerator(client)
		default:
			deps.Generator = format.NewGenerator()
		}

		switch cli.Generate.Publish {
		case "wordpress":
			siteURL := os.Getenv("WORDPRESS_URL")
			user := os.Getenv("WORDPRESS_USER")
			password := os.Getenv("WORDPRESS_APP_PASSWORD")
			if siteURL == "" || user == "" || password == "" {
				return fmt.Errorf("WORDPRESS_URL, WORDPRESS_USER and WORDPRESS_APP_PASSWORD must be set for --publish wordpress")
			}
			deps.Publisher = wordpress.NewPublisher(siteURL, user, password,
				wordpress.WithDownloader(pophttp.NewDownloader()))
		case "dir":
			deps.Publisher = fs.NewPublisher(cli.Generate.Dir, htmltomarkdown.NewConverter())
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("POPSCRAPE_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "popscrape.db"
	}
	dir := filepath.Join(home, ".popscrape")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "popscrape.db")
}
