package components

import (
	"strings"
	"time"

	"github.com/Veraticus/paydece-ledger/internal/query"
	"github.com/Veraticus/paydece-ledger/internal/tui/themes"
	"github.com/Veraticus/paydece-ledger/internal/tui/viewmodel"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// FilterMode is what the filter bar is editing.
type FilterMode int

// Filter bar modes.
const (
	FilterIdle FilterMode = iota
	FilterSearch
	FilterDates
)

// FilterBarModel edits the search term and the date range and shows the
// remaining filters.
type FilterBarModel struct {
	theme   themes.Theme
	loc     *time.Location
	err     error
	summary viewmodel.FilterSummary
	search  textinput.Model
	from    textinput.Model
	to      textinput.Model
	mode    FilterMode
	focus   int
	width   int
}

// NewFilterBar creates an idle filter bar. Dates are read in loc.
func NewFilterBar(theme themes.Theme, loc *time.Location) FilterBarModel {
	return FilterBarModel{
		theme:   theme,
		loc:     loc,
		search:  newInput(viewmodel.SearchHint, 64),
		from:    newInput("dd/mm/aaaa", 10),
		to:      newInput("dd/mm/aaaa", 10),
		summary: viewmodel.NewFilterSummary(query.DefaultCriteria(), loc),
		width:   80,
	}
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Prompt = ""
	ti.Cursor.SetMode(cursor.CursorStatic)
	return ti
}

// Mode returns what is being edited.
func (m FilterBarModel) Mode() FilterMode {
	return m.mode
}

// Editing reports whether keys belong to the filter bar.
func (m FilterBarModel) Editing() bool {
	return m.mode != FilterIdle
}

// Err returns the last date range validation error.
func (m FilterBarModel) Err() error {
	return m.err
}

// StartSearch focuses the search box.
func (m *FilterBarModel) StartSearch() tea.Cmd {
	m.mode = FilterSearch
	m.search.CursorEnd()
	return m.search.Focus()
}

// StartDates opens the date range editor pre-filled with r.
func (m *FilterBarModel) StartDates(r query.DateRange) tea.Cmd {
	m.mode = FilterDates
	m.err = nil
	m.focus = 0

	m.from.SetValue("")
	m.to.SetValue("")
	if r.From != nil {
		m.from.SetValue(r.From.In(m.loc).Format(viewmodel.DateInputLayout))
	}
	if r.To != nil {
		m.to.SetValue(r.To.In(m.loc).Format(viewmodel.DateInputLayout))
	}
	m.to.Blur()
	return m.from.Focus()
}

// SetCriteria refreshes the summary. The search box follows the criteria
// unless it is being typed in.
func (m *FilterBarModel) SetCriteria(c query.Criteria) {
	m.summary = viewmodel.NewFilterSummary(c, m.loc)
	if m.mode != FilterSearch && m.search.Value() != c.Search {
		m.search.SetValue(c.Search)
	}
}

// SetWidth updates the available width.
func (m *FilterBarModel) SetWidth(width int) {
	m.width = width
}

// Update handles key presses while editing.
func (m FilterBarModel) Update(msg tea.Msg) (FilterBarModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.mode {
	case FilterSearch:
		return m.updateSearch(keyMsg)
	case FilterDates:
		return m.updateDates(keyMsg)
	default:
		return m, nil
	}
}

func (m FilterBarModel) updateSearch(msg tea.KeyMsg) (FilterBarModel, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.mode = FilterIdle
		m.search.Blur()
		return m, nil

	case "esc":
		m.mode = FilterIdle
		m.search.Blur()
		if m.search.Value() == "" {
			return m, nil
		}
		m.search.SetValue("")
		return m, emit(SearchChangedMsg{Term: ""})
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if after := m.search.Value(); after != before {
		return m, tea.Batch(cmd, emit(SearchChangedMsg{Term: after}))
	}
	return m, cmd
}

func (m FilterBarModel) updateDates(msg tea.KeyMsg) (FilterBarModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = FilterIdle
		m.err = nil
		m.from.Blur()
		m.to.Blur()
		return m, nil

	case "tab", "shift+tab":
		m.focus = 1 - m.focus
		if m.focus == 0 {
			m.to.Blur()
			return m, m.from.Focus()
		}
		m.from.Blur()
		return m, m.to.Focus()

	case "enter":
		r, err := query.ParseDayRange(m.from.Value(), m.to.Value(), viewmodel.DateInputLayout, m.loc)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.mode = FilterIdle
		m.err = nil
		m.from.Blur()
		m.to.Blur()
		return m, emit(DateRangeChangedMsg{Range: r})
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.from, cmd = m.from.Update(msg)
	} else {
		m.to, cmd = m.to.Update(msg)
	}
	return m, cmd
}

// View renders the filter bar.
func (m FilterBarModel) View() string {
	label := lipgloss.NewStyle().Foreground(m.theme.Muted)
	value := m.theme.Bold

	search := label.Render(viewmodel.SearchHint)
	switch {
	case m.mode == FilterSearch:
		search = m.search.View()
	case m.summary.Search != "":
		search = value.Render(m.summary.Search)
	}

	line := strings.Join([]string{
		label.Render("Buscar: ") + search,
		label.Render("Estado: ") + value.Render(m.summary.Status),
		label.Render("Operación: ") + value.Render(m.summary.Operation),
		label.Render("Fechas: ") + value.Render(m.summary.Dates),
	}, "  │  ")

	if m.summary.Active {
		line += "  " + lipgloss.NewStyle().Foreground(m.theme.Warning).Render("[c] Limpiar filtros")
	}

	if m.mode != FilterDates {
		return line
	}

	editor := label.Render("Desde: ") + m.from.View() + "  " + label.Render("Hasta: ") + m.to.View()
	hint := label.Render("tab cambia de campo · enter aplica · esc cancela")
	lines := []string{line, editor, hint}
	if m.err != nil {
		lines = append(lines, lipgloss.NewStyle().Foreground(m.theme.Error).Render(m.err.Error()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
