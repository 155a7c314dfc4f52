package components

import (
	"fmt"

	"github.com/Veraticus/paydece-ledger/internal/locale"
	"github.com/Veraticus/paydece-ledger/internal/stats"
	"github.com/Veraticus/paydece-ledger/internal/tui/themes"
	"github.com/Veraticus/paydece-ledger/internal/tui/viewmodel"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// StatsCardsModel displays the summary cards above the table.
type StatsCardsModel struct {
	theme       themes.Theme
	cards       []viewmodel.Card
	progressBar progress.Model
	settled     float64
	width       int
}

// NewStatsCardsModel creates the cards for s.
func NewStatsCardsModel(theme themes.Theme, s stats.Summary, f locale.Formatter) StatsCardsModel {
	prog := progress.New(
		progress.WithSolidFill(string(theme.Primary)),
		progress.WithoutPercentage(),
	)
	prog.Width = 30

	return StatsCardsModel{
		theme:       theme,
		cards:       viewmodel.SummaryCards(s, f),
		progressBar: prog,
		settled:     settledRatio(s),
		width:       80,
	}
}

// settledRatio is the completed share of orders that are either completed
// in the window or still open.
func settledRatio(s stats.Summary) float64 {
	total := s.Completed + s.InProcess
	if total == 0 {
		return 0
	}
	return float64(s.Completed) / float64(total)
}

// Cards returns the formatted cards.
func (m StatsCardsModel) Cards() []viewmodel.Card {
	return m.cards
}

// SetWidth updates the available width.
func (m *StatsCardsModel) SetWidth(width int) {
	m.width = width
	m.progressBar.Width = min(max(width/3, 10), 40)
}

// View renders the cards side by side, or stacked when narrow.
func (m StatsCardsModel) View() string {
	cardWidth := max(m.width/2-4, 30)
	muted := lipgloss.NewStyle().Foreground(m.theme.Muted)
	value := m.theme.Bold.Foreground(m.theme.Primary)

	rendered := make([]string, 0, len(m.cards))
	for _, c := range m.cards {
		lines := []string{muted.Render(c.Title), value.Render(c.Value)}
		if c.Caption != "" {
			lines = append(lines, muted.Render(c.Caption))
		}
		rendered = append(rendered, m.theme.Card.Width(cardWidth).Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
	}

	cards := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	if m.width < 2*(cardWidth+4) {
		cards = lipgloss.JoinVertical(lipgloss.Left, rendered...)
	}

	bar := fmt.Sprintf("%s %s", m.progressBar.ViewAs(m.settled), muted.Render("completadas frente a en proceso"))
	return lipgloss.JoinVertical(lipgloss.Left, cards, bar)
}
