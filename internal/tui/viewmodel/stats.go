package viewmodel

import (
	"fmt"

	"github.com/Veraticus/paydece-ledger/internal/locale"
	"github.com/Veraticus/paydece-ledger/internal/stats"
)

// Card is one summary tile above the table.
type Card struct {
	Title   string
	Value   string
	Caption string
}

// SummaryCards formats the volume and completed cards.
func SummaryCards(s stats.Summary, f locale.Formatter) []Card {
	return []Card{
		{
			Title: "Volumen Mensual (últimos 30 días)",
			Value: f.Integer(s.MonthlyVolume) + " " + stats.VolumeCurrency,
		},
		{
			Title:   "Transacciones completadas (últimos 30 días)",
			Value:   f.Integer(float64(s.Completed)),
			Caption: fmt.Sprintf("%d órdenes en proceso", s.InProcess),
		},
	}
}
