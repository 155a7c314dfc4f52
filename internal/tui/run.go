package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run opens the history screen and blocks until the user quits or ctx is
// cancelled. Without WithTransactions the configured store is listed.
func Run(ctx context.Context, opts ...Option) error {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Transactions == nil {
		if cfg.Store == nil {
			return errors.New("tui: a store or a transaction list is required")
		}
		txns, err := cfg.Store.ListTransactions(ctx)
		if err != nil {
			return fmt.Errorf("failed to load transactions: %w", err)
		}
		cfg.Transactions = txns
	}

	p := tea.NewProgram(
		newModel(ctx, cfg),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
