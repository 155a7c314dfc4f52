// Package browse holds the history screen state and the reducer that is its
// only mutation path.
package browse

import (
	"github.com/Veraticus/paydece-ledger/internal/model"
	"github.com/Veraticus/paydece-ledger/internal/pager"
	"github.com/Veraticus/paydece-ledger/internal/query"
)

// Filterer is the part of the query engine the reducer needs.
type Filterer interface {
	FilterAndSort(all []model.Transaction, c query.Criteria) []model.Transaction
}

// State is everything the history screen shows besides layout.
type State struct {
	engine   Filterer
	all      []model.Transaction
	Filtered []model.Transaction
	Criteria query.Criteria
	Pager    pager.State
}

// New builds the initial state and requests the first page.
func New(all []model.Transaction, engine Filterer, pageSize int) State {
	s := State{
		engine:   engine,
		all:      all,
		Criteria: query.DefaultCriteria(),
		Pager:    pager.New(pageSize),
	}
	return s.refresh()
}

// All returns the full, unfiltered collection.
func (s State) All() []model.Transaction {
	return s.all
}

// PendingTicket returns the load the caller must schedule, if any.
func (s State) PendingTicket() (pager.Ticket, bool) {
	if s.Pager.InFlight == nil {
		return pager.Ticket{}, false
	}
	return *s.Pager.InFlight, true
}

// Action is a discrete user or timer event.
type Action interface {
	apply(s State) State
}

// Reduce applies a to s.
func Reduce(s State, a Action) State {
	if a == nil {
		return s
	}
	return a.apply(s)
}

// SetSearch changes the search box contents.
type SetSearch struct{ Term string }

func (a SetSearch) apply(s State) State {
	if s.Criteria.Search == a.Term {
		return s
	}
	s.Criteria.Search = a.Term
	return s.refresh()
}

// SetStatus changes the status filter; query.All clears it.
type SetStatus struct{ Status string }

func (a SetStatus) apply(s State) State {
	if s.Criteria.Status == a.Status {
		return s
	}
	s.Criteria.Status = a.Status
	return s.refresh()
}

// SetOperation changes the operation filter. Picking a concrete operation
// also puts the list back to newest first.
type SetOperation struct{ Operation string }

func (a SetOperation) apply(s State) State {
	if s.Criteria.Operation == a.Operation {
		return s
	}
	s.Criteria.Operation = a.Operation
	if model.Operation(a.Operation).Known() {
		s.Criteria.SortKey = query.SortByTimestamp
		s.Criteria.Direction = query.Descending
	}
	return s.refresh()
}

// SetDateRange replaces the date range.
type SetDateRange struct{ Range query.DateRange }

func (a SetDateRange) apply(s State) State {
	s.Criteria.Range = a.Range
	return s.refresh()
}

// RequestSort is a click on a column header.
type RequestSort struct{ Key query.SortKey }

func (a RequestSort) apply(s State) State {
	s.Criteria = s.Criteria.Toggle(a.Key)
	return s.refresh()
}

// SetSort sets key and direction explicitly.
type SetSort struct {
	Key       query.SortKey
	Direction query.Direction
}

func (a SetSort) apply(s State) State {
	s.Criteria.SortKey = a.Key
	s.Criteria.Direction = a.Direction
	return s.refresh()
}

// ClearFilters restores the default criteria.
type ClearFilters struct{}

func (ClearFilters) apply(s State) State {
	s.Criteria = query.DefaultCriteria()
	return s.refresh()
}

// LoadMore asks for the next page.
type LoadMore struct{}

func (LoadMore) apply(s State) State {
	s.Pager, _, _ = s.Pager.Request()
	return s
}

// PageLoaded delivers a finished simulated load.
type PageLoaded struct{ Ticket pager.Ticket }

func (a PageLoaded) apply(s State) State {
	s.Pager = s.Pager.Complete(a.Ticket, s.Filtered)
	return s
}

// refresh recomputes the derived list, resets pagination and asks for the
// first page.
func (s State) refresh() State {
	if s.engine != nil {
		s.Filtered = s.engine.FilterAndSort(s.all, s.Criteria)
	}
	s.Pager = s.Pager.Reset()
	return LoadMore{}.apply(s)
}
