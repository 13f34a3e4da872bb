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
	"github.com/fwojciec/pagesafe"
	"github.com/fwojciec/pagesafe/aescbc"
	"github.com/fwojciec/pagesafe/goquery"
	pshttp "github.com/fwojciec/pagesafe/http"
	"github.com/fwojciec/pagesafe/readability"
	"github.com/fwojciec/pagesafe/scrape"
	pslog "github.com/fwojciec/pagesafe/slog"
	"github.com/fwojciec/pagesafe/sqlite"
	"github.com/fwojciec/pagesafe/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// Stdin is read by encrypt and decrypt when no text argument is given.
	Stdin io.Reader

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	RecordService pagesafe.RecordService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
		Stdin:  os.Stdin,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// storageCommands need the database.
var storageCommands = map[string]bool{
	"save":   true,
	"list":   true,
	"get":    true,
	"delete": true,
	"health": true,
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagesafe"),
		kong.Description("Scrape web pages and keep their text encrypted"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pagesafe --help' to see available commands")
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

	logger := newLogger(stderr, cli.Verbose)
	deps.Logger = logger

	extractor, err := newExtractor(cli.Extractor)
	if err != nil {
		return err
	}

	fetcher := pshttp.NewFetcher(
		pshttp.WithTimeout(cli.Timeout),
		pshttp.WithInsecureSkipVerify(cli.Insecure),
		pshttp.WithAttemptFunc(pslog.AttemptLogger(logger)),
	)
	defer fetcher.Close()

	scraper := &scrape.Scraper{
		Fetcher:     pslog.NewLoggingFetcher(fetcher, logger),
		Extractor:   pslog.NewLoggingExtractor(extractor, logger),
		Concurrency: cli.Scrape.Concurrency,
		OnState:     pslog.StateLogger(logger),
	}
	deps.Scraper = pslog.NewLoggingScraper(scraper, logger)
	deps.Batch = scraper
	deps.Prober = pslog.NewLoggingProber(pshttp.NewProber(pshttp.DefaultProbeTimeout), logger)
	deps.Cipher = pslog.NewLoggingCipher(aescbc.NewCipher(), logger)

	if storageCommands[cmd] {
		m.DB = sqlite.NewDB(m.DBPath)
		defer m.Close()
		deps.DB = m.DB

		if err := m.DB.Open(); err != nil {
			// health reports an unreachable database instead of failing.
			if cmd != "health" {
				fmt.Fprintf(stderr, "Hint: Set PAGESAFE_DB to use a different database path\n")
				return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
			}
		} else {
			m.RecordService = sqlite.NewRecordService(m.DB)
			deps.Records = m.RecordService
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("PAGESAFE_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "pagesafe.db"
	}
	dir := filepath.Join(home, ".pagesafe")
	_ = os.MkdirAll(dir, 0700)
	return filepath.Join(dir, "pagesafe.db")
}

// newLogger logs to stderr at debug level when verbose, and discards otherwise.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// newExtractor returns the extraction strategy registered under name.
func newExtractor(name string) (pagesafe.Extractor, error) {
	switch name {
	case "", "goquery":
		return goquery.NewExtractor(), nil
	case "readability":
		return readability.NewExtractor(), nil
	case "trafilatura":
		return trafilatura.NewExtractor(), nil
	default:
		return nil, pagesafe.Errorf(pagesafe.EINVALID, "unknown extractor %q", name)
	}
}
