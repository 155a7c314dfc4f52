package query

import (
	"slices"
	"testing"
	"time"

	"github.com/Veraticus/paydece-ledger/internal/locale"
	"github.com/Veraticus/paydece-ledger/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2024, 12, 15, 14, 30, 0, 0, time.UTC)

func newTestEngine() *Engine {
	return New(locale.NewFormatter(time.UTC, locale.DefaultLanguage), locale.DefaultLanguage)
}

func fixture() []model.Transaction {
	return []model.Transaction{
		{
			ID:             "TXN-001",
			Timestamp:      base,
			CryptoAmount:   1250,
			CryptoCurrency: "USDC",
			FiatAmount:     1312500,
			FiatCurrency:   "ARS",
			Status:         model.StatusCompleted,
			Operation:      model.OperationPurchase,
			Counterparty:   model.Counterparty{Wallet: "0x1234567890abcdef", Handle: "@maria_crypto"},
			Reference:      "REF-2024-001",
		},
		{
			ID:             "TXN-002",
			Timestamp:      base.Add(-2*time.Hour - 15*time.Minute),
			CryptoAmount:   850,
			CryptoCurrency: "USDC",
			FiatAmount:     765,
			FiatCurrency:   "EUR",
			Status:         model.StatusDisputed,
			Operation:      model.OperationSale,
			Counterparty:   model.Counterparty{Wallet: "0x9876543210fedcba", Handle: "@carlos_trader"},
			Reference:      "REF-2024-002",
		},
		{
			ID:             "TXN-003",
			Timestamp:      base.Add(-22 * time.Hour),
			CryptoAmount:   2100,
			CryptoCurrency: "USDC",
			FiatAmount:     2100,
			FiatCurrency:   "USD",
			Status:         model.StatusEscrow,
			Operation:      model.OperationPurchase,
			Counterparty:   model.Counterparty{Wallet: "0x5555555555555555", Handle: "@ana_defi"},
			Reference:      "REF-2024-003",
		},
		{
			ID:             "TXN-004",
			Timestamp:      base.Add(-29 * time.Hour),
			CryptoAmount:   450,
			CryptoCurrency: "USDC",
			FiatAmount:     472500,
			FiatCurrency:   "ARS",
			Status:         model.Status("bloqueado"),
			Operation:      model.OperationSale,
			Counterparty:   model.Counterparty{Wallet: "0x7777777777777777", Handle: "@luis_p2p"},
			Reference:      "REF-2024-004",
		},
		{
			ID:             "TXN-005",
			Timestamp:      base.Add(-50 * time.Hour),
			CryptoAmount:   3200.5,
			CryptoCurrency: "USDC",
			FiatAmount:     2880,
			FiatCurrency:   "EUR",
			Status:         model.StatusCompleted,
			Operation:      model.OperationPurchase,
			Counterparty:   model.Counterparty{Wallet: "0x2222222222222222", Handle: "@sofia_btc"},
			Reference:      "REF-2024-005",
		},
	}
}

func ids(txns []model.Transaction) []string {
	out := make([]string, 0, len(txns))
	for _, txn := range txns {
		out = append(out, txn.ID)
	}
	return out
}

func TestFilterAndSort_DefaultCriteriaReturnsEverything(t *testing.T) {
	e := newTestEngine()
	all := fixture()

	got := e.FilterAndSort(all, DefaultCriteria())

	require.Len(t, got, len(all))
	assert.Equal(t, []string{"TXN-001", "TXN-002", "TXN-003", "TXN-004", "TXN-005"}, ids(got))
}

func TestFilterAndSort_DoesNotMutateInput(t *testing.T) {
	e := newTestEngine()
	all := fixture()
	before := ids(all)

	c := DefaultCriteria()
	c.SortKey = SortByCrypto
	c.Direction = Ascending
	_ = e.FilterAndSort(all, c)

	assert.Equal(t, before, ids(all))
}

func TestFilterAndSort_ShortSearchIsNoop(t *testing.T) {
	e := newTestEngine()
	all := fixture()
	want := ids(e.FilterAndSort(all, DefaultCriteria()))

	for _, term := range []string{"", "T", "TX", "  zz  ", "@m", " 12 "} {
		t.Run(term, func(t *testing.T) {
			c := DefaultCriteria()
			c.Search = term
			assert.Equal(t, want, ids(e.FilterAndSort(all, c)))
		})
	}
}

func TestFilterAndSort_Search(t *testing.T) {
	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{name: "id prefix", search: "txn-00", want: []string{"TXN-001", "TXN-002", "TXN-003", "TXN-004", "TXN-005"}},
		{name: "exact id", search: "TXN-003", want: []string{"TXN-003"}},
		{name: "handle case insensitive", search: "@MARIA", want: []string{"TXN-001"}},
		{name: "wallet prefix", search: "0x98", want: []string{"TXN-002"}},
		{name: "reference", search: "ref-2024-005", want: []string{"TXN-005"}},
		{name: "fiat currency", search: "eur", want: []string{"TXN-002", "TXN-005"}},
		{name: "crypto currency", search: "usd", want: []string{"TXN-001", "TXN-002", "TXN-003", "TXN-004", "TXN-005"}},
		{name: "status label", search: "en cus", want: []string{"TXN-003"}},
		{name: "unknown status label", search: "bloq", want: []string{"TXN-004"}},
		{name: "operation label", search: "vent", want: []string{"TXN-002", "TXN-004"}},
		{name: "crypto amount raw prefix", search: "3200.5", want: []string{"TXN-005"}},
		{name: "fiat amount raw prefix", search: "13125", want: []string{"TXN-001"}},
		{name: "amount is prefix only", search: "500", want: []string{}},
		{name: "date string", search: "15/12", want: []string{"TXN-001", "TXN-002"}},
		{name: "time string", search: "14:30", want: []string{"TXN-001"}},
		{name: "term is trimmed", search: "  @ana  ", want: []string{"TXN-003"}},
		{name: "substring does not match", search: "crypto", want: []string{}},
	}

	e := newTestEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultCriteria()
			c.Search = tt.search
			assert.Equal(t, tt.want, ids(e.FilterAndSort(fixture(), c)))
		})
	}
}

func TestFilterAndSort_StatusAndOperation(t *testing.T) {
	e := newTestEngine()

	c := DefaultCriteria()
	c.Status = string(model.StatusCompleted)
	assert.Equal(t, []string{"TXN-001", "TXN-005"}, ids(e.FilterAndSort(fixture(), c)))

	c.Operation = string(model.OperationSale)
	assert.Empty(t, e.FilterAndSort(fixture(), c))

	c = DefaultCriteria()
	c.Operation = string(model.OperationSale)
	assert.Equal(t, []string{"TXN-002", "TXN-004"}, ids(e.FilterAndSort(fixture(), c)))

	c = DefaultCriteria()
	c.Status = "bloqueado"
	assert.Equal(t, []string{"TXN-004"}, ids(e.FilterAndSort(fixture(), c)))
}

func TestFilterAndSort_DateRange(t *testing.T) {
	e := newTestEngine()
	all := fixture()
	from := all[2].Timestamp
	to := all[1].Timestamp

	t.Run("from only is inclusive", func(t *testing.T) {
		c := DefaultCriteria()
		c.Range = DateRange{From: &from}
		assert.Equal(t, []string{"TXN-001", "TXN-002", "TXN-003"}, ids(e.FilterAndSort(all, c)))
	})

	t.Run("to only is inclusive", func(t *testing.T) {
		c := DefaultCriteria()
		c.Range = DateRange{To: &to}
		assert.Equal(t, []string{"TXN-002", "TXN-003", "TXN-004", "TXN-005"}, ids(e.FilterAndSort(all, c)))
	})

	t.Run("both bounds", func(t *testing.T) {
		c := DefaultCriteria()
		c.Range = DateRange{From: &from, To: &to}
		assert.Equal(t, []string{"TXN-002", "TXN-003"}, ids(e.FilterAndSort(all, c)))
	})

	t.Run("single instant", func(t *testing.T) {
		c := DefaultCriteria()
		c.Range = DateRange{From: &from, To: &from}
		assert.Equal(t, []string{"TXN-003"}, ids(e.FilterAndSort(all, c)))
	})
}

func TestFilterAndSort_PredicatesAreANDed(t *testing.T) {
	e := newTestEngine()
	from := base.Add(-24 * time.Hour)

	c := DefaultCriteria()
	c.Search = "usdc"
	c.Operation = string(model.OperationPurchase)
	c.Range = DateRange{From: &from}

	assert.Equal(t, []string{"TXN-001", "TXN-003"}, ids(e.FilterAndSort(fixture(), c)))
}

func TestFilterAndSort_TimestampDirectionsAreReverses(t *testing.T) {
	e := newTestEngine()

	c := DefaultCriteria()
	desc := ids(e.FilterAndSort(fixture(), c))

	c.Direction = Ascending
	asc := ids(e.FilterAndSort(fixture(), c))

	slices.Reverse(asc)
	assert.Equal(t, desc, asc)
}

func TestFilterAndSort_SortKeys(t *testing.T) {
	tests := []struct {
		key  SortKey
		dir  Direction
		want []string
	}{
		{SortByCounterparty, Ascending, []string{"TXN-003", "TXN-002", "TXN-004", "TXN-001", "TXN-005"}},
		{SortByCounterparty, Descending, []string{"TXN-005", "TXN-001", "TXN-004", "TXN-002", "TXN-003"}},
		{SortByCrypto, Ascending, []string{"TXN-004", "TXN-002", "TXN-001", "TXN-003", "TXN-005"}},
		{SortByCrypto, Descending, []string{"TXN-005", "TXN-003", "TXN-001", "TXN-002", "TXN-004"}},
		{SortByID, Ascending, []string{"TXN-001", "TXN-002", "TXN-003", "TXN-004", "TXN-005"}},
		{SortByID, Descending, []string{"TXN-005", "TXN-004", "TXN-003", "TXN-002", "TXN-001"}},
		// ARS, EUR, USD with newest first inside each currency, both directions.
		{SortByFiat, Ascending, []string{"TXN-001", "TXN-004", "TXN-002", "TXN-005", "TXN-003"}},
		{SortByFiat, Descending, []string{"TXN-003", "TXN-002", "TXN-005", "TXN-001", "TXN-004"}},
		{SortByOperation, Ascending, []string{"TXN-001", "TXN-003", "TXN-005", "TXN-002", "TXN-004"}},
		{SortByOperation, Descending, []string{"TXN-002", "TXN-004", "TXN-001", "TXN-003", "TXN-005"}},
		// apelado(1), en custodia(2), finalizado(5) x2, unknown(10).
		{SortByStatus, Ascending, []string{"TXN-002", "TXN-003", "TXN-001", "TXN-005", "TXN-004"}},
		{SortByStatus, Descending, []string{"TXN-004", "TXN-001", "TXN-005", "TXN-003", "TXN-002"}},
	}

	e := newTestEngine()
	for _, tt := range tests {
		t.Run(string(tt.key)+"_"+string(tt.dir), func(t *testing.T) {
			c := DefaultCriteria()
			c.SortKey = tt.key
			c.Direction = tt.dir
			assert.Equal(t, tt.want, ids(e.FilterAndSort(fixture(), c)))
		})
	}
}

func TestFilterAndSort_FiatTiebreakIgnoresDirection(t *testing.T) {
	e := newTestEngine()
	same := []model.Transaction{
		{ID: "A", Timestamp: base.Add(-3 * time.Hour), FiatCurrency: "ARS"},
		{ID: "B", Timestamp: base, FiatCurrency: "ARS"},
		{ID: "C", Timestamp: base.Add(-1 * time.Hour), FiatCurrency: "ARS"},
	}

	for _, dir := range []Direction{Ascending, Descending} {
		c := DefaultCriteria()
		c.SortKey = SortByFiat
		c.Direction = dir
		assert.Equal(t, []string{"B", "C", "A"}, ids(e.FilterAndSort(same, c)), "direction %s", dir)
	}
}

func TestFilterAndSort_UnknownSortKeyKeepsOrder(t *testing.T) {
	e := newTestEngine()
	all := fixture()

	c := DefaultCriteria()
	c.SortKey = SortKey("nope")

	assert.Equal(t, ids(all), ids(e.FilterAndSort(all, c)))
}

func TestFilterAndSort_Empty(t *testing.T) {
	e := newTestEngine()
	got := e.FilterAndSort(nil, DefaultCriteria())
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
