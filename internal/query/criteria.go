// Package query filters and orders transactions for the history views.
package query

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// All disables the status or operation filter.
const All = "all"

// MinSearchLength is the trimmed length a search term needs before it filters.
const MinSearchLength = 3

// Criteria errors.
var (
	ErrInvalidSortKey   = errors.New("invalid sort key")
	ErrInvalidDirection = errors.New("invalid sort direction")
	ErrInvalidDateRange = errors.New("date range ends before it starts")
)

// SortKey names the column the list is ordered by.
type SortKey string

// Sort keys.
const (
	SortByTimestamp    SortKey = "timestamp"
	SortByCounterparty SortKey = "counterparty"
	SortByCrypto       SortKey = "crypto"
	SortByFiat         SortKey = "fiat"
	SortByOperation    SortKey = "operation"
	SortByID           SortKey = "id"
	SortByStatus       SortKey = "status"
)

// SortKeys returns the keys in table column order.
func SortKeys() []SortKey {
	return []SortKey{
		SortByTimestamp,
		SortByCounterparty,
		SortByCrypto,
		SortByFiat,
		SortByOperation,
		SortByID,
		SortByStatus,
	}
}

// ParseSortKey validates a sort key name.
func ParseSortKey(s string) (SortKey, error) {
	key := SortKey(strings.ToLower(strings.TrimSpace(s)))
	for _, k := range SortKeys() {
		if k == key {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSortKey, s)
}

// Direction is the sort order.
type Direction string

// Sort directions.
const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// ParseDirection validates a direction name.
func ParseDirection(s string) (Direction, error) {
	switch Direction(strings.ToLower(strings.TrimSpace(s))) {
	case Ascending:
		return Ascending, nil
	case Descending:
		return Descending, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
}

// Arrow returns the indicator drawn next to the active column.
func (d Direction) Arrow() string {
	if d == Ascending {
		return "↑"
	}
	return "↓"
}

// DateRange bounds transactions by timestamp. Both ends are inclusive and optional.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// IsZero reports whether neither bound is set.
func (r DateRange) IsZero() bool {
	return r.From == nil && r.To == nil
}

// Validate rejects ranges whose end precedes their start.
func (r DateRange) Validate() error {
	if r.From != nil && r.To != nil && r.To.Before(*r.From) {
		return fmt.Errorf("%w: %s > %s", ErrInvalidDateRange,
			r.From.Format(time.RFC3339), r.To.Format(time.RFC3339))
	}
	return nil
}

// Contains reports whether t falls inside the range.
func (r DateRange) Contains(t time.Time) bool {
	if r.From != nil && t.Before(*r.From) {
		return false
	}
	if r.To != nil && t.After(*r.To) {
		return false
	}
	return true
}

// Day layouts accepted by ParseDayRange.
const (
	DisplayDayLayout = "02/01/2006"
	ISODayLayout     = "2006-01-02"
)

// ParseDayRange builds a range from whole days written in layout. An empty
// string leaves that end open. from starts at midnight and to runs through the
// last nanosecond of its day, both in loc.
func ParseDayRange(from, to, layout string, loc *time.Location) (DateRange, error) {
	var r DateRange

	if from = strings.TrimSpace(from); from != "" {
		day, err := time.ParseInLocation(layout, from, loc)
		if err != nil {
			return DateRange{}, fmt.Errorf("invalid start date %q: %w", from, err)
		}
		r.From = &day
	}

	if to = strings.TrimSpace(to); to != "" {
		day, err := time.ParseInLocation(layout, to, loc)
		if err != nil {
			return DateRange{}, fmt.Errorf("invalid end date %q: %w", to, err)
		}
		end := day.AddDate(0, 0, 1).Add(-time.Nanosecond)
		r.To = &end
	}

	if err := r.Validate(); err != nil {
		return DateRange{}, err
	}
	return r, nil
}

// Format renders the range as days in layout, using "…" for an open end.
func (r DateRange) Format(layout string, loc *time.Location) string {
	if r.IsZero() {
		return ""
	}
	from, to := "…", "…"
	if r.From != nil {
		from = r.From.In(loc).Format(layout)
	}
	if r.To != nil {
		to = r.To.In(loc).Format(layout)
	}
	return from + " - " + to
}

// Criteria is everything the user can change about the list.
type Criteria struct {
	Range     DateRange
	Search    string
	Status    string
	Operation string
	SortKey   SortKey
	Direction Direction
}

// DefaultCriteria shows everything, most recent first.
func DefaultCriteria() Criteria {
	return Criteria{
		Status:    All,
		Operation: All,
		SortKey:   SortByTimestamp,
		Direction: Descending,
	}
}

// IsDefault reports whether no filter or custom sort is active.
func (c Criteria) IsDefault() bool {
	d := DefaultCriteria()
	return strings.TrimSpace(c.Search) == "" &&
		c.statusFilter() == "" &&
		c.operationFilter() == "" &&
		c.Range.IsZero() &&
		c.SortKey == d.SortKey &&
		c.Direction == d.Direction
}

// Toggle applies a column-header click: the active ascending column flips to
// descending, anything else sorts ascending.
func (c Criteria) Toggle(key SortKey) Criteria {
	direction := Ascending
	if c.SortKey == key && c.Direction == Ascending {
		direction = Descending
	}
	c.SortKey = key
	c.Direction = direction
	return c
}

// SearchTerm returns the trimmed term, or "" when it is too short to filter.
func (c Criteria) SearchTerm() string {
	term := strings.TrimSpace(c.Search)
	if len([]rune(term)) < MinSearchLength {
		return ""
	}
	return term
}

func (c Criteria) statusFilter() string {
	if c.Status == All {
		return ""
	}
	return c.Status
}

func (c Criteria) operationFilter() string {
	if c.Operation == All {
		return ""
	}
	return c.Operation
}
