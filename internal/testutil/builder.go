package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/Veraticus/paydece-ledger/internal/model"
)

// DefaultStart is the timestamp of the first built transaction.
var DefaultStart = time.Date(2024, 12, 15, 12, 0, 0, 0, time.UTC)

// Builder makes predictable transaction lists. Transaction i (from 0) gets
// id TXN-<i+1>, a timestamp i steps before the start, crypto 100+i, fiat
// 1000+i and the handle @user_<i+1>; operations rotate through the
// configured list.
type Builder struct {
	t          *testing.T
	start      time.Time
	step       time.Duration
	status     model.Status
	fiat       string
	operations []model.Operation
}

// NewBuilder returns a builder of completed USD transactions one hour apart,
// alternating purchase and sale.
func NewBuilder(t *testing.T) *Builder {
	t.Helper()
	return &Builder{
		t:          t,
		start:      DefaultStart,
		step:       time.Hour,
		status:     model.StatusCompleted,
		fiat:       "USD",
		operations: []model.Operation{model.OperationPurchase, model.OperationSale},
	}
}

// StartingAt sets the newest timestamp.
func (b *Builder) StartingAt(ts time.Time) *Builder {
	b.start = ts
	return b
}

// Every sets the gap between consecutive timestamps.
func (b *Builder) Every(step time.Duration) *Builder {
	b.step = step
	return b
}

// WithStatus gives every transaction status s.
func (b *Builder) WithStatus(s model.Status) *Builder {
	b.status = s
	return b
}

// WithFiat sets the fiat currency.
func (b *Builder) WithFiat(currency string) *Builder {
	b.fiat = currency
	return b
}

// WithOperations sets the operations to rotate through.
func (b *Builder) WithOperations(ops ...model.Operation) *Builder {
	if len(ops) == 0 {
		b.t.Fatal("testutil: at least one operation is required")
	}
	b.operations = ops
	return b
}

// Build returns n transactions, newest first.
func (b *Builder) Build(n int) []model.Transaction {
	txns := make([]model.Transaction, n)
	for i := range txns {
		txns[i] = model.Transaction{
			ID:             fmt.Sprintf("TXN-%03d", i+1),
			Timestamp:      b.start.Add(-time.Duration(i) * b.step),
			Operation:      b.operations[i%len(b.operations)],
			Status:         b.status,
			CryptoAmount:   float64(100 + i),
			CryptoCurrency: "USDC",
			FiatAmount:     float64(1000 + i),
			FiatCurrency:   b.fiat,
			Counterparty: model.Counterparty{
				Wallet: Wallet(i + 1),
				Handle: fmt.Sprintf("@user_%d", i+1),
			},
			Reference: fmt.Sprintf("REF-%03d", i+1),
			Fee:       1,
			Net:       float64(99 + i),
		}
	}
	return txns
}

// Wallet returns the wallet address Build assigns to the nth transaction.
func Wallet(n int) string {
	return fmt.Sprintf("0x%040d", n)
}
