// Package mockdata builds the deterministic transaction collection the
// history screen and the CLI browse.
package mockdata

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/Veraticus/paydece-ledger/internal/model"
)

// DefaultCount is the number of generated records appended to the fixed ones.
const DefaultCount = 100

// DefaultSeed feeds the generator when none is configured.
const DefaultSeed uint64 = 2024

// Options controls generation. The same options always produce the same data.
type Options struct {
	Now   time.Time
	Seed  uint64
	Count int
}

var fiatCurrencies = []string{"ARS", "EUR", "USD"}

// Generate returns the fixed December 2024 records followed by opts.Count
// generated ones, in id order.
func Generate(opts Options) []model.Transaction {
	if opts.Count < 0 {
		opts.Count = 0
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}

	fixed := Fixed()
	txns := make([]model.Transaction, 0, len(fixed)+opts.Count)
	txns = append(txns, fixed...)

	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
	statuses := model.Statuses()
	operations := model.Operations()

	for i := range opts.Count {
		n := len(fixed) + i + 1

		day := opts.Now.AddDate(0, 0, -(rng.IntN(25) + 1))
		ts := time.Date(day.Year(), day.Month(), day.Day(), rng.IntN(24), rng.IntN(60), 0, 0, day.Location())

		txns = append(txns, model.Transaction{
			ID:             fmt.Sprintf("TXN-%03d", n),
			Timestamp:      ts,
			CryptoAmount:   float64(rng.IntN(5000) + 100),
			CryptoCurrency: "USDC",
			FiatAmount:     float64(rng.IntN(5000000) + 100000),
			FiatCurrency:   fiatCurrencies[rng.IntN(len(fiatCurrencies))],
			Status:         statuses[rng.IntN(len(statuses))],
			Operation:      operations[rng.IntN(len(operations))],
			Counterparty: model.Counterparty{
				Wallet: wallet(rng),
				Handle: fmt.Sprintf("@user_%d", n),
			},
			Reference: fmt.Sprintf("REF-2024-%03d", n),
			Fee:       float64(rng.IntN(100) + 10),
			Net:       float64(rng.IntN(4900) + 90),
		})
	}

	return txns
}

func wallet(rng *rand.Rand) string {
	const hexDigits = "0123456789abcdef"
	var b strings.Builder
	b.Grow(42)
	b.WriteString("0x")
	for range 40 {
		b.WriteByte(hexDigits[rng.IntN(len(hexDigits))])
	}
	return b.String()
}

// Fixed returns the seven hand-written records.
func Fixed() []model.Transaction {
	return []model.Transaction{
		fixed("TXN-001", "2024-12-15T14:30:00Z", 1250, 1312500, "ARS", model.StatusCompleted, model.OperationPurchase,
			"0x1234567890abcdef1234567890abcdef12345678", "@maria_crypto", 37.5, 1212.5),
		fixed("TXN-002", "2024-12-15T12:15:00Z", 850, 765, "EUR", model.StatusCompleted, model.OperationSale,
			"0x9876543210fedcba9876543210fedcba98765432", "@carlos_trader", 25.5, 824.5),
		fixed("TXN-003", "2024-12-14T16:45:00Z", 2100, 2100, "USD", model.StatusCompleted, model.OperationPurchase,
			"0x5555555555555555555555555555555555555555", "@ana_defi", 63, 2037),
		fixed("TXN-004", "2024-12-14T09:20:00Z", 450, 472500, "ARS", model.StatusCancelled, model.OperationSale,
			"0x7777777777777777777777777777777777777777", "@luis_p2p", 0, 0),
		fixed("TXN-005", "2024-12-13T11:55:00Z", 3200, 2880, "EUR", model.StatusCompleted, model.OperationPurchase,
			"0x2222222222222222222222222222222222222222", "@sofia_btc", 96, 3104),
		fixed("TXN-006", "2024-12-13T08:30:00Z", 750, 750, "USD", model.StatusCompleted, model.OperationSale,
			"0x4444444444444444444444444444444444444444", "@diego_hodl", 22.5, 727.5),
		fixed("TXN-007", "2024-12-16T10:15:00Z", 1800, 1620, "EUR", model.StatusCompleted, model.OperationPurchase,
			"0x8888888888888888888888888888888888888888", "@pedro_crypto", 54, 1746),
	}
}

func fixed(id, ts string, crypto, fiat float64, fiatCurrency string, status model.Status, op model.Operation,
	wallet, handle string, fee, net float64,
) model.Transaction {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		panic(fmt.Sprintf("mockdata: bad timestamp %q: %v", ts, err))
	}
	return model.Transaction{
		ID:             id,
		Timestamp:      t,
		CryptoAmount:   crypto,
		CryptoCurrency: "USDC",
		FiatAmount:     fiat,
		FiatCurrency:   fiatCurrency,
		Status:         status,
		Operation:      op,
		Counterparty:   model.Counterparty{Wallet: wallet, Handle: handle},
		Reference:      "REF-2024-" + strings.TrimPrefix(id, "TXN-"),
		Fee:            fee,
		Net:            net,
	}
}
