package components

import (
	"strings"

	"github.com/Veraticus/paydece-ledger/internal/locale"
	"github.com/Veraticus/paydece-ledger/internal/model"
	"github.com/Veraticus/paydece-ledger/internal/tui/themes"
	"github.com/Veraticus/paydece-ledger/internal/tui/viewmodel"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DetailState is the lifecycle of the detail screen.
type DetailState int

// Detail states.
const (
	DetailLoading DetailState = iota
	DetailLoaded
	DetailNotFound
)

// Texts shown when a lookup finds nothing.
const (
	NotFoundTitle = "Transacción no encontrada"
	NotFoundBody  = "La transacción que buscas no existe o ha sido eliminada."
)

// TransactionDetailModel shows one transaction looked up by id.
type TransactionDetailModel struct {
	theme  themes.Theme
	detail viewmodel.TransactionDetail
	id     string
	state  DetailState
	width  int
	height int
}

type detailKeyMap struct {
	CopyWallet key.Binding
	CopyHandle key.Binding
	Telegram   key.Binding
	Back       key.Binding
}

var detailKeys = detailKeyMap{
	CopyWallet: key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "copiar wallet"),
	),
	CopyHandle: key.NewBinding(
		key.WithKeys("h"),
		key.WithHelp("h", "copiar telegram"),
	),
	Telegram: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "abrir telegram"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "backspace"),
		key.WithHelp("esc", "volver"),
	),
}

// NewTransactionDetailModel creates a detail model.
func NewTransactionDetailModel(theme themes.Theme) TransactionDetailModel {
	return TransactionDetailModel{theme: theme}
}

// StartLoading shows the loading state for id.
func (m *TransactionDetailModel) StartLoading(id string) {
	m.id = id
	m.state = DetailLoading
	m.detail = viewmodel.TransactionDetail{}
}

// SetTransaction shows txn.
func (m *TransactionDetailModel) SetTransaction(txn model.Transaction, f locale.Formatter) {
	m.id = txn.ID
	m.state = DetailLoaded
	m.detail = viewmodel.NewTransactionDetail(txn, f)
}

// SetNotFound shows the not-found state.
func (m *TransactionDetailModel) SetNotFound() {
	m.state = DetailNotFound
	m.detail = viewmodel.TransactionDetail{}
}

// ID returns the id being shown or looked up.
func (m TransactionDetailModel) ID() string {
	return m.id
}

// State returns the current lifecycle state.
func (m TransactionDetailModel) State() DetailState {
	return m.state
}

// Update handles messages.
func (m TransactionDetailModel) Update(msg tea.Msg) (TransactionDetailModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.Matches(keyMsg, detailKeys.Back) {
		return m, emit(BackToListMsg{})
	}
	if m.state != DetailLoaded {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, detailKeys.CopyWallet):
		return m, emit(CopyRequestMsg{Label: "Wallet", Value: m.detail.Wallet})
	case key.Matches(keyMsg, detailKeys.CopyHandle):
		return m, emit(CopyRequestMsg{Label: "Telegram", Value: m.detail.Handle})
	case key.Matches(keyMsg, detailKeys.Telegram):
		return m, emit(OpenURLRequestMsg{URL: m.detail.TelegramURL})
	}
	return m, nil
}

// View renders the detail screen.
func (m TransactionDetailModel) View() string {
	muted := lipgloss.NewStyle().Foreground(m.theme.Muted)

	switch m.state {
	case DetailLoading:
		return m.theme.RoundedBox.Render(muted.Render("Cargando transacción " + m.id + "..."))

	case DetailNotFound:
		return m.theme.RoundedBox.Render(lipgloss.JoinVertical(lipgloss.Left,
			m.theme.Title.Render(NotFoundTitle),
			muted.Render(NotFoundBody),
			"",
			muted.Render("esc volver al historial"),
		))
	}

	d := m.detail
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		m.theme.Title.MarginBottom(0).Render(d.Title()),
		"  ",
		m.theme.OperationBadge(d.Operation),
		"  ",
		m.theme.StatusBadge(d.Status),
	)

	sections := []string{
		header,
		m.renderFields(d.Overview),
		m.theme.Bold.Render("Información de contraparte"),
		m.renderFields(d.Counterparty),
		m.theme.Link.Render(d.TelegramURL),
		m.theme.Bold.Render("Detalles financieros"),
		m.renderFields(d.Financial),
		muted.Render("w copiar wallet · h copiar telegram · t abrir telegram · esc volver"),
	}

	width := 0
	if m.width > 4 {
		width = m.width - 4
	}
	return m.theme.RoundedBox.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m TransactionDetailModel) renderFields(fields []viewmodel.Field) string {
	label := lipgloss.NewStyle().Foreground(m.theme.Muted).Width(16)
	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, label.Render(f.Label), m.theme.Normal.Render(f.Value)))
	}
	return strings.Join(lines, "\n") + "\n"
}

// Resize updates the component dimensions.
func (m *TransactionDetailModel) Resize(width, height int) {
	m.width = width
	m.height = height
}
