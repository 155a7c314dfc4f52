package tui

import (
	"github.com/Veraticus/paydece-ledger/internal/query"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keyboard shortcuts of the history screen.
type KeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding

	// Filters
	Search       key.Binding
	NextStatus   key.Binding
	PrevStatus   key.Binding
	NextOp       key.Binding
	PrevOp       key.Binding
	Dates        key.Binding
	ClearFilters key.Binding

	// Sorting, one binding per column
	Sort []key.Binding

	// Actions
	Open   key.Binding
	Export key.Binding

	// Application
	Help key.Binding
	Quit key.Binding
}

var sortHelp = map[query.SortKey]string{
	query.SortByTimestamp:    "ordenar por fecha",
	query.SortByCounterparty: "ordenar por contraparte",
	query.SortByCrypto:       "ordenar por cripto",
	query.SortByFiat:         "ordenar por FIAT",
	query.SortByOperation:    "ordenar por operación",
	query.SortByID:           "ordenar por número",
	query.SortByStatus:       "ordenar por estado",
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	keys := query.SortKeys()
	sort := make([]key.Binding, len(keys))
	for i, k := range keys {
		digit := string(rune('1' + i))
		sort[i] = key.NewBinding(
			key.WithKeys(digit),
			key.WithHelp(digit, sortHelp[k]),
		)
	}

	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "subir"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "bajar"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "b"),
			key.WithHelp("PgUp", "página anterior"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "f", " "),
			key.WithHelp("PgDn", "página siguiente"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("Home/g", "inicio"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("End/G", "final"),
		),

		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "buscar"),
		),
		NextStatus: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s/S", "filtrar estado"),
		),
		PrevStatus: key.NewBinding(
			key.WithKeys("S"),
		),
		NextOp: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o/O", "filtrar operación"),
		),
		PrevOp: key.NewBinding(
			key.WithKeys("O"),
		),
		Dates: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "rango de fechas"),
		),
		ClearFilters: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "limpiar filtros"),
		),

		Sort: sort,

		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "ver detalle"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "exportar CSV"),
		),

		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "ayuda"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "salir"),
		),
	}
}

// SortKeyFor returns the column bound to the pressed digit.
func (k KeyMap) SortKeyFor(pressed string) (query.SortKey, bool) {
	keys := query.SortKeys()
	for i, b := range k.Sort {
		for _, bound := range b.Keys() {
			if bound == pressed && i < len(keys) {
				return keys[i], true
			}
		}
	}
	return "", false
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.NextStatus, k.NextOp, k.Dates, k.Open, k.Help, k.Quit}
}

// FullHelp returns all key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End},
		{k.Search, k.NextStatus, k.NextOp, k.Dates, k.ClearFilters},
		k.Sort,
		{k.Open, k.Export, k.Help, k.Quit},
	}
}
