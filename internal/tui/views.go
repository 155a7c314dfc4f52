package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Layout rows reserved outside the table.
const (
	titleRows     = 2
	filterRows    = 4
	statusRows    = 1
	minTableRows  = 6
	detailMargins = 2
)

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.screen {
	case ScreenDetail:
		body = m.detail.View()
	default:
		body = lipgloss.JoinVertical(lipgloss.Left,
			m.theme.Title.Render("Historial de transacciones"),
			m.cards.View(),
			m.filters.View(),
			"",
			m.list.View(),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderStatusLine(), m.help.View(m.keymap))
}

func (m Model) renderStatusLine() string {
	if m.status == "" {
		return ""
	}
	color := m.theme.Success
	if m.statusErr {
		color = m.theme.Error
	}
	return lipgloss.NewStyle().Foreground(color).Render(m.status)
}

// resize hands the space left after the fixed rows to the table.
func (m *Model) resize() {
	m.help.Width = m.width
	m.cards.SetWidth(m.width)
	m.filters.SetWidth(m.width)
	m.detail.Resize(m.width, m.height-detailMargins)

	used := titleRows + lipgloss.Height(m.cards.View()) + filterRows + statusRows + lipgloss.Height(m.help.View(m.keymap))
	m.list.Resize(m.width, max(minTableRows, m.height-used))
}
