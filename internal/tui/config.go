package tui

import (
	"time"

	"github.com/Veraticus/paydece-ledger/internal/locale"
	"github.com/Veraticus/paydece-ledger/internal/model"
	"github.com/Veraticus/paydece-ledger/internal/pager"
	"github.com/Veraticus/paydece-ledger/internal/service"
	"github.com/Veraticus/paydece-ledger/internal/tui/themes"
	"github.com/atotto/clipboard"
)

// DefaultDetailDelay is the simulated latency of a detail lookup.
const DefaultDetailDelay = 500 * time.Millisecond

// Config holds TUI configuration.
type Config struct {
	Theme           themes.Theme
	Formatter       locale.Formatter
	Store           service.TransactionStore
	Now             func() time.Time
	Clipboard       func(string) error
	OpenURL         func(string) error
	ExportDir       string
	Transactions    []model.Transaction
	PageSize        int
	ScrollThreshold int
	InitialDelay    time.Duration
	Delay           time.Duration
	DetailDelay     time.Duration
	Width           int
	Height          int
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:           themes.Default,
		Formatter:       locale.NewFormatter(time.Local, locale.DefaultLanguage),
		Now:             time.Now,
		Clipboard:       clipboard.WriteAll,
		OpenURL:         openBrowser,
		ExportDir:       ".",
		PageSize:        pager.DefaultPageSize,
		ScrollThreshold: pager.DefaultScrollThreshold,
		InitialDelay:    pager.DefaultInitialDelay,
		Delay:           pager.DefaultDelay,
		DetailDelay:     DefaultDetailDelay,
		Width:           120,
		Height:          40,
	}
}

// WithStore sets the store used for detail lookups.
func WithStore(store service.TransactionStore) Option {
	return func(c *Config) {
		c.Store = store
	}
}

// WithTransactions sets the collection to browse. Without it Run lists the store.
func WithTransactions(txns []model.Transaction) Option {
	return func(c *Config) {
		c.Transactions = txns
	}
}

// WithFormatter sets the display zone and language.
func WithFormatter(f locale.Formatter) Option {
	return func(c *Config) {
		c.Formatter = f
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithClock sets the source of "now" for the summary cards and export names.
func WithClock(now func() time.Time) Option {
	return func(c *Config) {
		c.Now = now
	}
}

// WithClipboard replaces the clipboard writer.
func WithClipboard(write func(string) error) Option {
	return func(c *Config) {
		c.Clipboard = write
	}
}

// WithURLOpener replaces the browser launcher.
func WithURLOpener(open func(string) error) Option {
	return func(c *Config) {
		c.OpenURL = open
	}
}

// WithExportDir sets where CSV exports are written.
func WithExportDir(dir string) Option {
	return func(c *Config) {
		c.ExportDir = dir
	}
}

// WithPaging sets the page size and how close to the end a load triggers.
func WithPaging(pageSize, threshold int) Option {
	return func(c *Config) {
		c.PageSize = pageSize
		c.ScrollThreshold = threshold
	}
}

// WithDelays sets the simulated latencies.
func WithDelays(initial, subsequent, detail time.Duration) Option {
	return func(c *Config) {
		c.InitialDelay = initial
		c.Delay = subsequent
		c.DetailDelay = detail
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}
