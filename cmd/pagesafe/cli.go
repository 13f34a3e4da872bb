package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/pagesafe"
	"github.com/fwojciec/pagesafe/scrape"
)

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// BatchScraper scrapes several URLs concurrently.
type BatchScraper interface {
	ScrapeAll(ctx context.Context, urls []string, progress scrape.ProgressFunc) []scrape.Item
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	DB      Pinger
	Records pagesafe.RecordService
	Scraper pagesafe.Scraper
	Batch   BatchScraper
	Prober  pagesafe.Prober
	Cipher  pagesafe.Cipher

	// Now defaults to time.Now.
	Now func() time.Time
}

func (d *Dependencies) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose   bool          `short:"v" help:"Log pipeline steps to stderr"`
	Timeout   time.Duration `default:"15s" env:"PAGESAFE_TIMEOUT" help:"Per-request fetch timeout"`
	Insecure  bool          `default:"true" negatable:"" env:"PAGESAFE_INSECURE" help:"Skip TLS certificate verification when fetching"`
	Extractor string        `default:"goquery" enum:"goquery,readability,trafilatura" env:"PAGESAFE_EXTRACTOR" help:"Content extraction strategy (${enum})"`

	Scrape  ScrapeCmd  `cmd:"" help:"Fetch pages and extract their text"`
	Probe   ProbeCmd   `cmd:"" help:"Check whether a URL is reachable"`
	Encrypt EncryptCmd `cmd:"" help:"Encrypt text with a passphrase"`
	Decrypt DecryptCmd `cmd:"" help:"Decrypt text produced by encrypt"`
	Save    SaveCmd    `cmd:"" help:"Scrape a page and store its text encrypted"`
	List    ListCmd    `cmd:"" help:"List saved records"`
	Get     GetCmd     `cmd:"" help:"Show a saved record, decrypting it with --key"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a saved record"`
	Health  HealthCmd  `cmd:"" help:"Report database connectivity"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URLs        []string `arg:"" name:"url" help:"Page URLs to scrape"`
	JSON        bool     `help:"Print JSON responses"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent scrape limit for multiple URLs"`
}

// ProbeCmd is the "probe" subcommand.
type ProbeCmd struct {
	URL  string `arg:"" help:"URL to check"`
	JSON bool   `help:"Print JSON response"`
}

// EncryptCmd is the "encrypt" subcommand.
type EncryptCmd struct {
	Text string `arg:"" optional:"" help:"Text to encrypt (read from stdin when omitted)"`
	Key  string `short:"k" env:"PAGESAFE_KEY" help:"Passphrase"`
	JSON bool   `help:"Print JSON response"`
}

// DecryptCmd is the "decrypt" subcommand.
type DecryptCmd struct {
	Text string `arg:"" optional:"" help:"Encrypted text (read from stdin when omitted)"`
	Key  string `short:"k" env:"PAGESAFE_KEY" help:"Passphrase"`
	JSON bool   `help:"Print JSON response"`
}

// SaveCmd is the "save" subcommand.
type SaveCmd struct {
	URL  string `arg:"" help:"Page URL to scrape and save"`
	Key  string `short:"k" env:"PAGESAFE_KEY" help:"Passphrase"`
	JSON bool   `help:"Print JSON response"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	URL    string `help:"Only show records for this URL"`
	Limit  int    `short:"n" default:"20" help:"Maximum number of records"`
	Offset int    `help:"Number of records to skip"`
	JSON   bool   `help:"Print JSON response"`
}

// GetCmd is the "get" subcommand.
type GetCmd struct {
	ID   string `arg:"" help:"Record ID"`
	Key  string `short:"k" env:"PAGESAFE_KEY" help:"Passphrase to decrypt the record with"`
	JSON bool   `help:"Print JSON response"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Record ID"`
	Force bool   `help:"Confirm deletion"`
	JSON  bool   `help:"Print JSON response"`
}

// HealthCmd is the "health" subcommand.
type HealthCmd struct {
	JSON bool `help:"Print JSON response"`
}
