package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"
	"time"

	"github.com/Veraticus/paydece-ledger/internal/common"
	"github.com/Veraticus/paydece-ledger/internal/export"
	"github.com/Veraticus/paydece-ledger/internal/model"
	"github.com/Veraticus/paydece-ledger/internal/pager"
	tea "github.com/charmbracelet/bubbletea"
)

// errNoBrowser is returned on platforms without a known launcher.
var errNoBrowser = errors.New("no browser launcher for this platform")

// scheduleLoad delivers the ticket after its simulated latency.
func (m Model) scheduleLoad(ticket pager.Ticket) tea.Cmd {
	delay := pager.Delay(ticket, m.config.InitialDelay, m.config.Delay)
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return pageLoadedMsg{ticket: ticket}
	})
}

// lookupTransaction fetches id after the simulated detail latency.
func (m Model) lookupTransaction(id string) tea.Cmd {
	ctx := m.ctx
	store := m.config.Store
	all := m.state.All()
	delay := m.config.DetailDelay

	return func() tea.Msg {
		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return detailLoadedMsg{id: id, err: ctx.Err()}
		case <-timer.C:
		}

		if store == nil {
			txn, ok := model.Find(all, id)
			if !ok {
				return detailLoadedMsg{id: id, err: fmt.Errorf("transaction %s: %w", id, common.ErrNotFound)}
			}
			return detailLoadedMsg{id: id, transaction: &txn}
		}

		txn, err := store.GetTransaction(ctx, id)
		return detailLoadedMsg{id: id, transaction: txn, err: err}
	}
}

// copyToClipboard puts value on the clipboard and reports it on the status line.
func (m Model) copyToClipboard(label, value string) tea.Cmd {
	write := m.config.Clipboard
	return func() tea.Msg {
		if err := write(value); err != nil {
			slog.Warn("clipboard write failed", "label", label, "error", err)
			return statusMsg{text: "No se pudo copiar " + label + ": " + err.Error(), isErr: true}
		}
		return statusMsg{text: label + " copiado al portapapeles"}
	}
}

// openURL opens url in the browser.
func (m Model) openURL(url string) tea.Cmd {
	open := m.config.OpenURL
	return func() tea.Msg {
		if err := open(url); err != nil {
			slog.Warn("failed to open browser", "url", url, "error", err)
			return statusMsg{text: "No se pudo abrir " + url, isErr: true}
		}
		return statusMsg{text: "Abriendo " + url}
	}
}

// exportCSV writes the whole filtered list, not just the revealed pages.
func (m Model) exportCSV() tea.Cmd {
	ctx := m.ctx
	dir := m.config.ExportDir
	now := m.config.Now()
	txns := m.state.Filtered
	f := m.config.Formatter

	return func() tea.Msg {
		path, err := export.WriteFile(ctx, dir, now, txns, f, nil)
		if err != nil {
			return exportDoneMsg{err: err}
		}
		common.LogInfo("exported transactions", common.Fields{"path": path, "count": len(txns)})
		return exportDoneMsg{path: path}
	}
}

// openBrowser tries to open the URL in the default browser.
func openBrowser(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "linux":
		cmd = exec.Command("xdg-open", url) //nolint:gosec
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url) //nolint:gosec
	case "darwin":
		cmd = exec.Command("open", url) //nolint:gosec
	default:
		return errNoBrowser
	}
	return cmd.Start()
}
