package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/lexarchive"
	"github.com/fwojciec/lexarchive/bloom"
	"github.com/fwojciec/lexarchive/fs"
	"github.com/fwojciec/lexarchive/goquery"
	"github.com/fwojciec/lexarchive/harvest"
	"github.com/fwojciec/lexarchive/htmltomarkdown"
	lexhttp "github.com/fwojciec/lexarchive/http"
	"github.com/fwojciec/lexarchive/rod"
	lexslog "github.com/fwojciec/lexarchive/slog"
	"github.com/fwojciec/lexarchive/sqlite"
	"github.com/fwojciec/lexarchive/toml"
	"github.com/google/uuid"
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
	// Database path. Overrides the default but not the config file or flags.
	DBPath string

	// Config file path. Set before calling Run().
	ConfigPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Archive is the fully decorated archive, exposed for end-to-end testing.
	Archive lexarchive.ArchiveService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPath: lexarchive.DefaultConfigPath(),
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
		kong.Name("lexarchive"),
		kong.Description("Archive one section of dictionary pages into a local SQLite store."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'lexarchive --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	cfg, err := m.loadConfig(cli)
	if err != nil {
		fmt.Fprintf(stderr, "Hint: Check %s\n", m.configPath(cli))
		return err
	}
	deps.Config = cfg

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})).
		With("run", uuid.NewString())

	if cfg.DBPath != ":memory:" {
		dir := filepath.Dir(cfg.DBPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Fprintf(stderr, "Hint: Set LEXARCHIVE_DB or --db to use a different database path\n")
			return fmt.Errorf("failed to create database directory %q: %w", dir, err)
		}
	}
	m.DB = sqlite.NewDB(cfg.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set LEXARCHIVE_DB or --db to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", cfg.DBPath, err)
	}
	defer m.Close()

	store := sqlite.NewKeyValueStore(m.DB)
	var archive lexarchive.ArchiveService = lexarchive.NewArchive(store)
	deps.Entries = store

	// Batches check many keys, so misses are answered from memory.
	if cmd == "harvest" && len(cli.Harvest.URLs) > 1 {
		index, err := bloom.NewIndex(ctx, archive)
		if err != nil {
			return fmt.Errorf("failed to build key index: %w", err)
		}
		archive = index
	}

	m.Archive = lexslog.NewLoggingArchive(archive, logger)
	deps.Archive = m.Archive

	switch cmd {
	case "harvest":
		fetcher, err := newFetcher(cfg, cli.Harvest.Render)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --render")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		defer fetcher.Close()

		deps.Harvester = &harvest.Harvester{
			Archive: m.Archive,
			Fetcher: lexslog.NewLoggingFetcher(fetcher, logger),
			Extractor: goquery.NewSectionExtractor(
				goquery.WithAnchorID(cfg.AnchorID),
				goquery.WithStopTag(cfg.StopTag),
				goquery.WithPageCopy(cfg.PageCopy),
			),
			FetchTimeout: cfg.FetchTimeout,
		}
	case "show":
		deps.Converter = htmltomarkdown.NewConverter()
	case "export":
		deps.Converter = htmltomarkdown.NewConverter()
		deps.Writer = fs.NewWriter(cli.Export.Dir)
	}

	return kongCtx.Run(deps)
}

// loadConfig layers defaults, the config file and command-line flags, in
// that order, and validates the result.
func (m *Main) loadConfig(cli *CLI) (lexarchive.Config, error) {
	cfg := lexarchive.DefaultConfig()
	if m.DBPath != "" {
		cfg.DBPath = m.DBPath
	}

	cfg, err := toml.LoadConfig(m.configPath(cli), cfg)
	if err != nil {
		return cfg, err
	}

	if cli.DB != "" {
		cfg.DBPath = cli.DB
	}
	if cli.Harvest.Relay != "" {
		cfg.RelayPrefix = cli.Harvest.Relay
	}
	if cli.Harvest.Timeout > 0 {
		cfg.FetchTimeout = cli.Harvest.Timeout
	}
	if cli.Harvest.SectionOnly {
		cfg.PageCopy = false
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (m *Main) configPath(cli *CLI) string {
	if cli.Config != "" {
		return cli.Config
	}
	return m.ConfigPath
}

// newFetcher returns a headless browser fetcher when render is set and a
// plain HTTP fetcher otherwise.
func newFetcher(cfg lexarchive.Config, render bool) (lexarchive.Fetcher, error) {
	if render {
		return rod.NewFetcher(rod.WithRelayPrefix(cfg.RelayPrefix))
	}
	return lexhttp.NewFetcher(
		lexhttp.WithTimeout(cfg.FetchTimeout),
		lexhttp.WithRelayPrefix(cfg.RelayPrefix),
		lexhttp.WithUserAgent(cfg.UserAgent),
	), nil
}
