package tui

import (
	"context"
	"errors"

	"github.com/Veraticus/paydece-ledger/internal/browse"
	"github.com/Veraticus/paydece-ledger/internal/common"
	"github.com/Veraticus/paydece-ledger/internal/export"
	"github.com/Veraticus/paydece-ledger/internal/query"
	"github.com/Veraticus/paydece-ledger/internal/stats"
	"github.com/Veraticus/paydece-ledger/internal/tui/components"
	"github.com/Veraticus/paydece-ledger/internal/tui/themes"
	"github.com/Veraticus/paydece-ledger/internal/tui/viewmodel"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Screen is the page being shown.
type Screen int

// Screens.
const (
	ScreenList Screen = iota
	ScreenDetail
)

// Model holds the main TUI state.
type Model struct {
	ctx       context.Context
	theme     themes.Theme
	state     browse.State
	config    Config
	keymap    KeyMap
	filters   components.FilterBarModel
	list      components.TransactionListModel
	detail    components.TransactionDetailModel
	cards     components.StatsCardsModel
	help      help.Model
	status    string
	statusErr bool
	screen    Screen
	width     int
	height    int
	quitting  bool
}

// New creates the history model over the configured transactions.
func New(ctx context.Context, opts ...Option) Model {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return newModel(ctx, cfg)
}

// newModel creates a new model with the given configuration.
func newModel(ctx context.Context, cfg Config) Model {
	f := cfg.Formatter
	engine := query.New(f, f.Language())
	summary := stats.Summarize(cfg.Transactions, cfg.Now())

	m := Model{
		ctx:     ctx,
		config:  cfg,
		theme:   cfg.Theme,
		keymap:  DefaultKeyMap(),
		state:   browse.New(cfg.Transactions, engine, cfg.PageSize),
		filters: components.NewFilterBar(cfg.Theme, f.Location()),
		list:    components.NewTransactionList(cfg.Theme, f),
		detail:  components.NewTransactionDetailModel(cfg.Theme),
		cards:   components.NewStatsCardsModel(cfg.Theme, summary, f),
		help:    help.New(),
		screen:  ScreenList,
		width:   cfg.Width,
		height:  cfg.Height,
	}
	m.resize()
	m.syncList()
	return m
}

// Init starts the first page load and the spinner.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.list.SpinnerTick}
	if ticket, ok := m.state.PendingTicket(); ok {
		cmds = append(cmds, m.scheduleLoad(ticket))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		cmd := m.maybeLoadMore()
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd

	case pageLoadedMsg:
		cmd := m.dispatch(browse.PageLoaded{Ticket: msg.ticket})
		more := m.maybeLoadMore()
		return m, tea.Batch(cmd, more)

	case detailLoadedMsg:
		m.handleDetailLoaded(msg)
		return m, nil

	case exportDoneMsg:
		m.handleExportDone(msg)
		return m, nil

	case statusMsg:
		m.setStatus(msg.text, msg.isErr)
		return m, nil

	case components.TransactionSelectedMsg:
		m.screen = ScreenDetail
		m.detail.StartLoading(msg.Transaction.ID)
		cmd := m.lookupTransaction(msg.Transaction.ID)
		return m, cmd

	case components.BackToListMsg:
		m.screen = ScreenList
		return m, nil

	case components.SearchChangedMsg:
		cmd := m.dispatch(browse.SetSearch{Term: msg.Term})
		return m, cmd

	case components.DateRangeChangedMsg:
		cmd := m.dispatch(browse.SetDateRange{Range: msg.Range})
		return m, cmd

	case components.CopyRequestMsg:
		cmd := m.copyToClipboard(msg.Label, msg.Value)
		return m, cmd

	case components.OpenURLRequestMsg:
		cmd := m.openURL(msg.URL)
		return m, cmd
	}

	return m, nil
}

// handleKey routes a key press to the active screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	if m.screen == ScreenDetail {
		if msg.String() == "q" {
			m.quitting = true
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}

	if m.filters.Editing() {
		var cmd tea.Cmd
		m.filters, cmd = m.filters.Update(msg)
		return m, cmd
	}

	criteria := m.state.Criteria
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return m, nil

	case key.Matches(msg, m.keymap.Search):
		cmd := m.filters.StartSearch()
		return m, cmd

	case key.Matches(msg, m.keymap.Dates):
		cmd := m.filters.StartDates(criteria.Range)
		return m, cmd

	case key.Matches(msg, m.keymap.NextStatus):
		cmd := m.dispatch(browse.SetStatus{Status: viewmodel.Cycle(viewmodel.StatusOptions(), criteria.Status, 1)})
		return m, cmd

	case key.Matches(msg, m.keymap.PrevStatus):
		cmd := m.dispatch(browse.SetStatus{Status: viewmodel.Cycle(viewmodel.StatusOptions(), criteria.Status, -1)})
		return m, cmd

	case key.Matches(msg, m.keymap.NextOp):
		cmd := m.dispatch(browse.SetOperation{Operation: viewmodel.Cycle(viewmodel.OperationOptions(), criteria.Operation, 1)})
		return m, cmd

	case key.Matches(msg, m.keymap.PrevOp):
		cmd := m.dispatch(browse.SetOperation{Operation: viewmodel.Cycle(viewmodel.OperationOptions(), criteria.Operation, -1)})
		return m, cmd

	case key.Matches(msg, m.keymap.ClearFilters):
		m.setStatus("Filtros restablecidos", false)
		cmd := m.dispatch(browse.ClearFilters{})
		return m, cmd

	case key.Matches(msg, m.keymap.Export):
		m.setStatus("Exportando...", false)
		cmd := m.exportCSV()
		return m, cmd
	}

	if sortKey, ok := m.keymap.SortKeyFor(msg.String()); ok {
		cmd := m.dispatch(browse.RequestSort{Key: sortKey})
		return m, cmd
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	more := m.maybeLoadMore()
	return m, tea.Batch(cmd, more)
}

// dispatch runs the reducer and schedules the load it asked for, if new.
func (m *Model) dispatch(a browse.Action) tea.Cmd {
	before, hadBefore := m.state.PendingTicket()
	m.state = browse.Reduce(m.state, a)
	m.syncList()

	after, ok := m.state.PendingTicket()
	if !ok || (hadBefore && before == after) {
		return nil
	}
	return m.scheduleLoad(after)
}

// maybeLoadMore requests the next page when the cursor nears the end.
func (m *Model) maybeLoadMore() tea.Cmd {
	offset, viewport, content := m.list.ScrollWindow()
	if !m.state.Pager.ShouldLoad(offset, viewport, content, m.config.ScrollThreshold) {
		return nil
	}
	return m.dispatch(browse.LoadMore{})
}

func (m *Model) syncList() {
	m.list.SetData(m.state.Pager, m.state.Criteria, len(m.state.Filtered))
	m.filters.SetCriteria(m.state.Criteria)
}

func (m *Model) handleDetailLoaded(msg detailLoadedMsg) {
	if m.screen != ScreenDetail || msg.id != m.detail.ID() {
		return
	}

	switch {
	case msg.err == nil && msg.transaction != nil:
		m.detail.SetTransaction(*msg.transaction, m.config.Formatter)
	case msg.err == nil || errors.Is(msg.err, common.ErrNotFound):
		m.detail.SetNotFound()
	default:
		common.LogError(msg.err, "transaction lookup failed", common.Fields{"id": msg.id})
		m.detail.SetNotFound()
		m.setStatus(msg.err.Error(), true)
	}
}

func (m *Model) handleExportDone(msg exportDoneMsg) {
	switch {
	case errors.Is(msg.err, export.ErrNothingToExport):
		m.setStatus("No hay transacciones para exportar", true)
	case msg.err != nil:
		common.LogError(msg.err, "export failed", nil)
		m.setStatus("Error al exportar: "+msg.err.Error(), true)
	default:
		m.setStatus("Exportado a "+msg.path, false)
	}
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

// State returns the browsing state.
func (m Model) State() browse.State {
	return m.state
}

// Screen returns the page being shown.
func (m Model) Screen() Screen {
	return m.screen
}

// Status returns the status line text.
func (m Model) Status() string {
	return m.status
}
