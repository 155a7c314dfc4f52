package tui

import (
	"github.com/Veraticus/paydece-ledger/internal/model"
	"github.com/Veraticus/paydece-ledger/internal/pager"
)

// pageLoadedMsg fires when a simulated page load finishes.
type pageLoadedMsg struct {
	ticket pager.Ticket
}

// detailLoadedMsg carries the result of a detail lookup.
type detailLoadedMsg struct {
	err         error
	transaction *model.Transaction
	id          string
}

// exportDoneMsg reports a finished CSV export.
type exportDoneMsg struct {
	err  error
	path string
}

// statusMsg replaces the status line.
type statusMsg struct {
	text  string
	isErr bool
}
