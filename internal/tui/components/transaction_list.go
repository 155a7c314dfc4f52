package components

import (
	"strings"

	"github.com/Veraticus/paydece-ledger/internal/locale"
	"github.com/Veraticus/paydece-ledger/internal/model"
	"github.com/Veraticus/paydece-ledger/internal/pager"
	"github.com/Veraticus/paydece-ledger/internal/query"
	"github.com/Veraticus/paydece-ledger/internal/tui/themes"
	"github.com/Veraticus/paydece-ledger/internal/tui/viewmodel"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TransactionListModel shows the revealed part of the filtered history.
type TransactionListModel struct {
	theme      themes.Theme
	formatter  locale.Formatter
	criteria   query.Criteria
	displayed  []model.Transaction
	footer     viewmodel.ListFooter
	spinner    spinner.Model
	table      table.Model
	generation uint64
	width      int
	height     int
}

var openKey = key.NewBinding(
	key.WithKeys("enter"),
	key.WithHelp("enter", "ver detalle"),
)

// NewTransactionList creates an empty list.
func NewTransactionList(theme themes.Theme, formatter locale.Formatter) TransactionListModel {
	t := table.New(
		table.WithFocused(true),
		table.WithHeight(20),
	)

	// d and u belong to the date filter.
	t.KeyMap.HalfPageDown.SetKeys("ctrl+d")
	t.KeyMap.HalfPageUp.SetKeys("ctrl+u")

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Bold(true)
	s.Selected = theme.Selected
	t.SetStyles(s)

	m := TransactionListModel{
		theme:     theme,
		formatter: formatter,
		criteria:  query.DefaultCriteria(),
		table:     t,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Primary)),
		),
		width:  80,
		height: 24,
	}
	m.updateColumnWidths()
	return m
}

// SpinnerTick starts the loading indicator.
func (m TransactionListModel) SpinnerTick() tea.Msg {
	return m.spinner.Tick()
}

// SetData replaces the rows with the pager's revealed transactions. A new
// pager generation moves the cursor back to the top.
func (m *TransactionListModel) SetData(p pager.State, criteria query.Criteria, total int) {
	m.criteria = criteria
	m.displayed = p.Displayed
	m.footer = viewmodel.ListFooter{
		Displayed: len(p.Displayed),
		Total:     total,
		Loading:   p.Loading,
		HasMore:   p.HasMore,
	}

	m.table.SetRows(m.buildTableRows())
	if p.Generation != m.generation || m.table.Cursor() < 0 {
		m.generation = p.Generation
		m.table.SetCursor(0)
	}
	m.updateColumnWidths()
}

// Cursor returns the highlighted row index.
func (m TransactionListModel) Cursor() int {
	return m.table.Cursor()
}

// Selected returns the highlighted transaction.
func (m TransactionListModel) Selected() (model.Transaction, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.displayed) {
		return model.Transaction{}, false
	}
	return m.displayed[i], true
}

// ScrollWindow reports the visible window in rows for the infinite scroll
// check. While the rows do not fill the table the whole table counts as
// visible so that more pages are pulled in.
func (m TransactionListModel) ScrollWindow() (offset, viewport, content int) {
	content = len(m.displayed)
	if content < m.table.Height() {
		return 0, m.table.Height(), content
	}
	return m.table.Cursor(), 1, content
}

// Update handles messages.
func (m TransactionListModel) Update(msg tea.Msg) (TransactionListModel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if key.Matches(msg, openKey) {
			txn, ok := m.Selected()
			if !ok {
				return m, nil
			}
			return m, emit(TransactionSelectedMsg{Transaction: txn, Index: m.table.Cursor()})
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the table and its footer.
func (m TransactionListModel) View() string {
	if m.height < 6 {
		return "Terminal demasiado pequeña"
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.table.View(), m.renderFooter())
}

func (m TransactionListModel) renderFooter() string {
	muted := lipgloss.NewStyle().Foreground(m.theme.Muted)

	parts := []string{m.theme.Bold.Render(m.footer.Count())}
	if msg := m.footer.Message(); msg != "" {
		if m.footer.Loading {
			msg = m.spinner.View() + " " + msg
		}
		parts = append(parts, muted.Render(msg))
	}
	return strings.Join(parts, "  ")
}

func (m TransactionListModel) buildTableRows() []table.Row {
	rows := make([]table.Row, 0, len(m.displayed))
	for _, txn := range m.displayed {
		r := viewmodel.NewTransactionRow(txn, m.formatter)
		rows = append(rows, table.Row{
			r.DateCell(),
			r.CounterpartyCell(),
			r.Crypto,
			r.Fiat,
			r.Operation.Label(),
			r.ID,
			r.Status.Label(),
		})
	}
	return rows
}

// Resize updates the component size.
func (m *TransactionListModel) Resize(width, height int) {
	m.width = width
	m.height = height

	// Header row, its border and the footer line.
	m.table.SetHeight(max(3, height-1))
	m.updateColumnWidths()
}

// updateColumnWidths splits the width between the seven columns.
func (m *TransactionListModel) updateColumnWidths() {
	available := max(m.width-4, 90)

	ratios := []float64{0.19, 0.22, 0.13, 0.15, 0.09, 0.10, 0.12}
	minimums := []int{23, 20, 12, 14, 9, 17, 11}

	columns := viewmodel.Columns()
	tableColumns := make([]table.Column, len(columns))
	for i, c := range columns {
		tableColumns[i] = table.Column{
			Title: c.HeaderTitle(m.criteria),
			Width: max(minimums[i], int(float64(available)*ratios[i])),
		}
	}
	m.table.SetColumns(tableColumns)
}
