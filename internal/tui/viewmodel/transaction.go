package viewmodel

import (
	"fmt"

	"github.com/Veraticus/paydece-ledger/internal/locale"
	"github.com/Veraticus/paydece-ledger/internal/model"
	"github.com/Veraticus/paydece-ledger/internal/query"
)

// Column is one header of the history table.
type Column struct {
	Title string
	Key   query.SortKey
}

// Columns returns the history table headers in display order.
func Columns() []Column {
	return []Column{
		{Title: "Fecha", Key: query.SortByTimestamp},
		{Title: "Contraparte", Key: query.SortByCounterparty},
		{Title: "Cripto", Key: query.SortByCrypto},
		{Title: "FIAT", Key: query.SortByFiat},
		{Title: "Operación", Key: query.SortByOperation},
		{Title: "# de Transacción", Key: query.SortByID},
		{Title: "Estado", Key: query.SortByStatus},
	}
}

// HeaderTitle returns the column title with a direction arrow when the list
// is sorted by it.
func (c Column) HeaderTitle(criteria query.Criteria) string {
	if criteria.SortKey != c.Key {
		return c.Title
	}
	return c.Title + " " + criteria.Direction.Arrow()
}

// TransactionRow holds the formatted cells of one table row.
type TransactionRow struct {
	ID        string
	Date      string
	Time      string
	Wallet    string
	Handle    string
	Crypto    string
	Fiat      string
	Operation model.Operation
	Status    model.Status
}

// NewTransactionRow formats txn for the history table.
func NewTransactionRow(txn model.Transaction, f locale.Formatter) TransactionRow {
	return TransactionRow{
		ID:        txn.ID,
		Date:      f.Date(txn.Timestamp),
		Time:      f.Time(txn.Timestamp) + " " + f.UTCOffset(txn.Timestamp),
		Wallet:    model.ShortWallet(txn.Counterparty.Wallet),
		Handle:    txn.Counterparty.Handle,
		Crypto:    f.Amount(txn.CryptoAmount, txn.CryptoCurrency),
		Fiat:      f.Amount(txn.FiatAmount, txn.FiatCurrency),
		Operation: txn.Operation,
		Status:    txn.Status,
	}
}

// DateCell joins date and time on one line.
func (r TransactionRow) DateCell() string {
	return r.Date + " " + r.Time
}

// CounterpartyCell joins the abbreviated wallet and the handle.
func (r TransactionRow) CounterpartyCell() string {
	if r.Handle == "" {
		return r.Wallet
	}
	return r.Wallet + " " + r.Handle
}

// Field is a labelled value on the detail screen.
type Field struct {
	Label string
	Value string
}

// TransactionDetail is the formatted detail screen content.
type TransactionDetail struct {
	ID           string
	Operation    model.Operation
	Status       model.Status
	Wallet       string
	Handle       string
	TelegramURL  string
	Overview     []Field
	Counterparty []Field
	Financial    []Field
}

// NewTransactionDetail formats txn for the detail screen. Fee and net are
// denominated in the crypto currency.
func NewTransactionDetail(txn model.Transaction, f locale.Formatter) TransactionDetail {
	return TransactionDetail{
		ID:          txn.ID,
		Operation:   txn.Operation,
		Status:      txn.Status,
		Wallet:      txn.Counterparty.Wallet,
		Handle:      txn.Counterparty.Handle,
		TelegramURL: txn.Counterparty.TelegramURL(),
		Overview: []Field{
			{Label: "Fecha y hora", Value: f.FullDateTime(txn.Timestamp)},
			{Label: "Referencia", Value: txn.Reference},
			{Label: "Monto Cripto", Value: f.Amount(txn.CryptoAmount, txn.CryptoCurrency)},
			{Label: "Monto FIAT", Value: f.Amount(txn.FiatAmount, txn.FiatCurrency)},
		},
		Counterparty: []Field{
			{Label: "Wallet", Value: txn.Counterparty.Wallet},
			{Label: "Telegram", Value: txn.Counterparty.Handle},
		},
		Financial: []Field{
			{Label: "Monto bruto", Value: f.Amount(txn.CryptoAmount, txn.CryptoCurrency)},
			{Label: "Comisión", Value: f.Amount(txn.Fee, txn.CryptoCurrency)},
			{Label: "Monto neto", Value: f.Amount(txn.Net, txn.CryptoCurrency)},
		},
	}
}

// Title returns the detail heading.
func (d TransactionDetail) Title() string {
	return "Transacción " + d.ID
}

// Footer messages under the history table.
const (
	FooterLoading = "Cargando más transacciones..."
	FooterEnd     = "No hay más transacciones para mostrar"
	FooterEmpty   = "No se encontraron transacciones"
)

// ListFooter describes the state under the history table.
type ListFooter struct {
	Displayed int
	Total     int
	Loading   bool
	HasMore   bool
}

// Count returns the "N de M" progress text.
func (l ListFooter) Count() string {
	return fmt.Sprintf("%d de %d", l.Displayed, l.Total)
}

// Message returns the loading, end-of-list or empty message, if any.
func (l ListFooter) Message() string {
	switch {
	case l.Loading:
		return FooterLoading
	case l.Displayed == 0:
		return FooterEmpty
	case !l.HasMore:
		return FooterEnd
	default:
		return ""
	}
}
