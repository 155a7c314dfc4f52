package cli

import (
	"strings"

	"github.com/Veraticus/paydece-ledger/internal/locale"
	"github.com/Veraticus/paydece-ledger/internal/model"
	"github.com/Veraticus/paydece-ledger/internal/stats"
	"github.com/charmbracelet/lipgloss"
)

type field struct {
	label string
	value string
}

func renderFields(fields []field) string {
	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, LabelStyle.Render(f.label), f.value))
	}
	return strings.Join(lines, "\n")
}

// RenderTransaction renders the detail box used by `paydece show`.
func RenderTransaction(txn model.Transaction, f locale.Formatter) string {
	body := renderFields([]field{
		{"Fecha", f.FullDateTime(txn.Timestamp)},
		{"Operación", txn.Operation.Label()},
		{"Estado", StatusStyle(txn.Status).Render(txn.Status.Label())},
		{"Cripto", f.Amount(txn.CryptoAmount, txn.CryptoCurrency)},
		{"FIAT", f.Amount(txn.FiatAmount, txn.FiatCurrency)},
		{"Comisión", f.Amount(txn.Fee, txn.CryptoCurrency)},
		{"Neto", BoldStyle.Render(f.Amount(txn.Net, txn.CryptoCurrency))},
		{"Referencia", txn.Reference},
		{"Wallet", txn.Counterparty.Wallet},
		{"Telegram", txn.Counterparty.Handle},
		{"Enlace", SubtleStyle.Render(txn.Counterparty.TelegramURL())},
	})
	return RenderBox("Transacción "+txn.ID, body)
}

// RenderSummary renders the three summary cards used by `paydece stats`.
func RenderSummary(s stats.Summary, f locale.Formatter) string {
	body := renderFields([]field{
		{"Volumen mensual", f.Integer(s.MonthlyVolume) + " " + stats.VolumeCurrency},
		{"Completadas", f.Integer(float64(s.Completed))},
		{"En proceso", f.Integer(float64(s.InProcess))},
	})
	return RenderBox(ChartIcon+" Resumen (últimos 30 días)", body)
}

// StatusStyle colors a status by how settled it is.
func StatusStyle(s model.Status) lipgloss.Style {
	switch {
	case s == model.StatusCompleted || s == model.StatusReleased || s == model.StatusTransferred:
		return SuccessStyle
	case s == model.StatusCancelled || s == model.StatusRefunded:
		return ErrorStyle
	case s == model.StatusDisputed:
		return WarningStyle
	case s.InProcess():
		return InfoStyle
	default:
		return SubtleStyle
	}
}
