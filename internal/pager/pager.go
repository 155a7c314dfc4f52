// Package pager reveals a filtered list one page at a time, the way a paged
// backend would, while keeping every transition an explicit value change.
package pager

import (
	"time"

	"github.com/Veraticus/paydece-ledger/internal/model"
)

// Page sizes seen in the product.
const (
	DefaultPageSize = 30
	CompactPageSize = 10
)

// Simulated latencies.
const (
	DefaultInitialDelay = 600 * time.Millisecond
	DefaultDelay        = 300 * time.Millisecond
)

// DefaultScrollThreshold is how many rows from the end a load is triggered.
const DefaultScrollThreshold = 3

// Ticket identifies one in-flight page load. A ticket from an older
// generation is stale and its result must be dropped.
type Ticket struct {
	Generation uint64
	Page       int
	Initial    bool
}

// State is the pagination cursor over a filtered list.
type State struct {
	InFlight   *Ticket
	Displayed  []model.Transaction
	Generation uint64
	Page       int
	PageSize   int
	HasMore    bool
	Loading    bool
}

// New returns an empty state ready for its first load.
func New(pageSize int) State {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return State{
		PageSize:  pageSize,
		HasMore:   true,
		Displayed: []model.Transaction{},
	}
}

// Request starts a load. It returns ok=false, leaving s untouched, when a load
// is already running or there is nothing left.
func (s State) Request() (State, Ticket, bool) {
	if s.Loading || !s.HasMore {
		return s, Ticket{}, false
	}

	ticket := Ticket{
		Generation: s.Generation,
		Page:       s.Page,
		Initial:    s.Page == 0,
	}
	s.Loading = true
	s.InFlight = &ticket
	return s, ticket, true
}

// Complete reveals the page the ticket asked for. Stale tickets are ignored.
func (s State) Complete(ticket Ticket, filtered []model.Transaction) State {
	if ticket.Generation != s.Generation || s.InFlight == nil || *s.InFlight != ticket {
		return s
	}

	start := s.Page * s.PageSize
	end := start + s.PageSize

	var slice []model.Transaction
	if start < len(filtered) {
		slice = filtered[start:min(end, len(filtered))]
	}

	if len(slice) == 0 {
		s.HasMore = false
	} else {
		displayed := make([]model.Transaction, 0, len(s.Displayed)+len(slice))
		if s.Page > 0 {
			displayed = append(displayed, s.Displayed...)
		}
		s.Displayed = append(displayed, slice...)
		s.Page++
		s.HasMore = end < len(filtered)
	}

	s.Loading = false
	s.InFlight = nil
	return s
}

// Reset forgets everything revealed so far and invalidates any load in flight.
func (s State) Reset() State {
	return State{
		PageSize:   s.PageSize,
		Generation: s.Generation + 1,
		HasMore:    true,
		Displayed:  []model.Transaction{},
	}
}

// ShouldLoad reports whether the scroll position warrants another page.
func (s State) ShouldLoad(offset, viewport, content, threshold int) bool {
	return !s.Loading && s.HasMore && NearBottom(offset, viewport, content, threshold)
}

// NearBottom reports whether the visible window ends within threshold units
// of the end of the content.
func NearBottom(offset, viewport, content, threshold int) bool {
	return offset+viewport >= content-threshold
}

// Delay returns the simulated latency for a ticket.
func Delay(ticket Ticket, initial, subsequent time.Duration) time.Duration {
	if ticket.Initial {
		return initial
	}
	return subsequent
}
