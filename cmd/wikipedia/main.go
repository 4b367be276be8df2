package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/wikipedia"
	"github.com/fwojciec/wikipedia/fs"
	"github.com/fwojciec/wikipedia/goquery"
	"github.com/fwojciec/wikipedia/htmltomarkdown"
	wikihttp "github.com/fwojciec/wikipedia/http"
	wikislog "github.com/fwojciec/wikipedia/slog"
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
	// Config file consulted when --config is not given.
	ConfigPath string

	// Getenv looks up environment overrides.
	Getenv func(string) string

	// Transport used instead of the HTTP fetcher, for end-to-end testing.
	Fetcher wikipedia.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPath: DefaultConfigPath(),
		Getenv:     os.Getenv,
	}
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
		kong.Name("wikipedia"),
		kong.Description("Read Wikipedia and other MediaWiki sites from the terminal."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'wikipedia --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	settings, err := m.settings(cli)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", wikipedia.ErrorMessage(err))
		return err
	}

	logger := newLogger(stderr, cli.Verbose)

	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher = wikihttp.NewFetcher(settings.Wiki,
			wikihttp.WithTimeout(settings.Timeout),
			wikihttp.WithRateLimit(settings.RateLimit),
		)
	}
	fetcher = wikislog.NewLoggingFetcher(fetcher, logger)

	deps.Config = settings.Wiki
	deps.Pages = wikislog.NewLoggingPageService(wikipedia.NewClient(fetcher, settings.Wiki), logger)
	deps.Extractor = goquery.NewExtractor()
	deps.Converter = htmltomarkdown.NewConverter(htmltomarkdown.WithDomain(settings.Wiki.BaseURL()))
	deps.NewStore = func(dir, name string) wikipedia.PageStore {
		return fs.NewFileStore(dir, name)
	}

	return kongCtx.Run(deps)
}

// settings resolves configuration from the config file, the environment and
// command-line flags, in increasing order of precedence.
func (m *Main) settings(cli *CLI) (Settings, error) {
	getenv := m.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	path, required := m.ConfigPath, false
	if cli.Config != "" {
		path, required = cli.Config, true
	}

	settings, err := LoadSettings(path, required, getenv)
	if err != nil {
		return Settings{}, err
	}
	cli.apply(&settings)

	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
