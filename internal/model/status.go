package model

import (
	"unicode"
	"unicode/utf8"
)

// Status is the lifecycle state of a transaction.
type Status string

// Transaction statuses.
const (
	StatusStarted     Status = "iniciada"
	StatusEscrow      Status = "en custodia"
	StatusPaid        Status = "pagado"
	StatusCompleted   Status = "finalizado"
	StatusCancelled   Status = "cancelado"
	StatusRefunded    Status = "reembolsado"
	StatusDisputed    Status = "apelado"
	StatusReleased    Status = "liberado"
	StatusTransferred Status = "transferido"

	// statusEscrowLegacy is the hyphenated spelling older records used.
	statusEscrowLegacy Status = "en-custodia"
)

// UnknownStatusRank is the sort rank of any status outside the enumeration.
const UnknownStatusRank = 10

var statusLabels = map[Status]string{
	StatusStarted:      "Iniciada",
	StatusEscrow:       "En Custodia",
	statusEscrowLegacy: "En Custodia",
	StatusPaid:         "Pagado",
	StatusCompleted:    "Finalizado",
	StatusCancelled:    "Cancelado",
	StatusRefunded:     "Reembolsado",
	StatusDisputed:     "Apelado",
	StatusReleased:     "Liberado",
	StatusTransferred:  "Transferido",
}

var statusRanks = map[Status]int{
	StatusDisputed:    1,
	StatusEscrow:      2,
	StatusStarted:     3,
	StatusPaid:        4,
	StatusCompleted:   5,
	StatusCancelled:   6,
	StatusRefunded:    7,
	StatusReleased:    8,
	StatusTransferred: 9,
}

// Statuses returns the statuses offered by the status filter, in menu order.
func Statuses() []Status {
	return []Status{
		StatusStarted,
		StatusEscrow,
		StatusPaid,
		StatusCompleted,
		StatusCancelled,
		StatusRefunded,
		StatusDisputed,
		StatusReleased,
		StatusTransferred,
	}
}

// Label returns the human readable status. Unknown values keep their text
// with the first letter upper-cased.
func (s Status) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	r, size := utf8.DecodeRuneInString(string(s))
	if r == utf8.RuneError {
		return string(s)
	}
	return string(unicode.ToUpper(r)) + string(s)[size:]
}

// Rank returns the sort priority, lower meaning more urgent.
func (s Status) Rank() int {
	if rank, ok := statusRanks[s]; ok {
		return rank
	}
	return UnknownStatusRank
}

// Known reports whether the status belongs to the enumeration.
func (s Status) Known() bool {
	_, ok := statusLabels[s]
	return ok
}

// InProcess reports whether the order is still open.
func (s Status) InProcess() bool {
	switch s {
	case StatusStarted, StatusEscrow, statusEscrowLegacy, StatusPaid, StatusDisputed:
		return true
	default:
		return false
	}
}
