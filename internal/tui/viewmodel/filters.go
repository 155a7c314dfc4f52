package viewmodel

import (
	"time"

	"github.com/Veraticus/paydece-ledger/internal/model"
	"github.com/Veraticus/paydece-ledger/internal/query"
)

// Placeholder labels for inactive filters.
const (
	AllStatuses     = "Todos los estados"
	AllOperations   = "Todas las operaciones"
	NoDateRange     = "Seleccionar rango"
	SearchHint      = "Escribe las primeras 3 letras"
	DateInputLayout = query.DisplayDayLayout
)

// StatusOptions returns the status filter values in menu order, starting
// with query.All.
func StatusOptions() []string {
	options := []string{query.All}
	for _, s := range model.Statuses() {
		options = append(options, string(s))
	}
	return options
}

// OperationOptions returns the operation filter values, starting with query.All.
func OperationOptions() []string {
	options := []string{query.All}
	for _, o := range model.Operations() {
		options = append(options, string(o))
	}
	return options
}

// Cycle returns the option after current, or before it when step is
// negative. Unknown values start over from the first option.
func Cycle(options []string, current string, step int) string {
	if len(options) == 0 {
		return current
	}
	idx := -1
	for i, o := range options {
		if o == current {
			idx = i
			break
		}
	}
	if idx < 0 {
		return options[0]
	}
	n := len(options)
	return options[((idx+step)%n+n)%n]
}

// FilterSummary is the filter bar content.
type FilterSummary struct {
	Search    string
	Status    string
	Operation string
	Dates     string
	Active    bool
}

// NewFilterSummary labels each part of the criteria.
func NewFilterSummary(c query.Criteria, loc *time.Location) FilterSummary {
	s := FilterSummary{
		Search:    c.Search,
		Status:    AllStatuses,
		Operation: AllOperations,
		Dates:     NoDateRange,
		Active:    !c.IsDefault(),
	}
	if c.Status != query.All && c.Status != "" {
		s.Status = model.Status(c.Status).Label()
	}
	if c.Operation != query.All && c.Operation != "" {
		s.Operation = model.Operation(c.Operation).Label()
	}
	if !c.Range.IsZero() {
		s.Dates = c.Range.Format(DateInputLayout, loc)
	}
	return s
}
