package components

import (
	"github.com/Veraticus/paydece-ledger/internal/model"
	"github.com/Veraticus/paydece-ledger/internal/query"
	tea "github.com/charmbracelet/bubbletea"
)

// TransactionSelectedMsg is sent when a row is opened.
type TransactionSelectedMsg struct {
	Transaction model.Transaction
	Index       int
}

// BackToListMsg requests to go back to the transaction list.
type BackToListMsg struct{}

// SearchChangedMsg carries the search box contents after each edit.
type SearchChangedMsg struct {
	Term string
}

// DateRangeChangedMsg carries a submitted, valid date range.
type DateRangeChangedMsg struct {
	Range query.DateRange
}

// CopyRequestMsg asks for a value to be put on the clipboard.
type CopyRequestMsg struct {
	Label string
	Value string
}

// OpenURLRequestMsg asks for a link to be opened in the browser.
type OpenURLRequestMsg struct {
	URL string
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
