package query

import (
	"cmp"
	"slices"
	"strings"

	"github.com/Veraticus/paydece-ledger/internal/locale"
	"github.com/Veraticus/paydece-ledger/internal/model"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Engine applies Criteria to a transaction collection.
type Engine struct {
	formatter locale.Formatter
	collation language.Tag
}

// New creates an engine. The formatter decides which date and time strings
// search sees; the collation language drives string ordering.
func New(formatter locale.Formatter, collation language.Tag) *Engine {
	return &Engine{
		formatter: formatter,
		collation: collation,
	}
}

// FilterAndSort returns the transactions matching c in the order c asks for.
// The input slice is never modified.
func (e *Engine) FilterAndSort(all []model.Transaction, c Criteria) []model.Transaction {
	result := make([]model.Transaction, 0, len(all))
	for _, txn := range all {
		if e.Matches(txn, c) {
			result = append(result, txn)
		}
	}

	slices.SortStableFunc(result, e.comparator(c))
	return result
}

// Matches reports whether txn passes every filter in c.
func (e *Engine) Matches(txn model.Transaction, c Criteria) bool {
	if status := c.statusFilter(); status != "" && string(txn.Status) != status {
		return false
	}
	if op := c.operationFilter(); op != "" && string(txn.Operation) != op {
		return false
	}
	if !c.Range.Contains(txn.Timestamp) {
		return false
	}
	return e.matchesSearch(txn, c.SearchTerm())
}

func (e *Engine) matchesSearch(txn model.Transaction, term string) bool {
	if term == "" {
		return true
	}
	lower := strings.ToLower(term)

	fields := []string{
		txn.ID,
		txn.Counterparty.Wallet,
		txn.Counterparty.Handle,
		txn.Reference,
		txn.CryptoCurrency,
		txn.FiatCurrency,
		txn.Status.Label(),
		txn.Operation.Label(),
	}
	for _, field := range fields {
		if field != "" && strings.HasPrefix(strings.ToLower(field), lower) {
			return true
		}
	}

	raw := []string{
		locale.RawNumber(txn.CryptoAmount),
		locale.RawNumber(txn.FiatAmount),
		e.formatter.Date(txn.Timestamp),
		e.formatter.Time(txn.Timestamp),
	}
	for _, field := range raw {
		if strings.HasPrefix(field, term) {
			return true
		}
	}

	return false
}

// comparator builds the ordering for c. Secondary timestamp ordering on the
// fiat, operation and status keys is always most recent first, whatever the
// requested direction.
func (e *Engine) comparator(c Criteria) func(a, b model.Transaction) int {
	collator := collate.New(e.collation)
	sign := 1
	if c.Direction == Descending {
		sign = -1
	}

	newestFirst := func(a, b model.Transaction) int {
		return b.Timestamp.Compare(a.Timestamp)
	}

	withTiebreak := func(primary func(a, b model.Transaction) int) func(a, b model.Transaction) int {
		return func(a, b model.Transaction) int {
			if r := primary(a, b); r != 0 {
				return sign * r
			}
			return newestFirst(a, b)
		}
	}

	switch c.SortKey {
	case SortByTimestamp:
		return func(a, b model.Transaction) int {
			return sign * a.Timestamp.Compare(b.Timestamp)
		}
	case SortByCounterparty:
		return func(a, b model.Transaction) int {
			return sign * collator.CompareString(a.Counterparty.Handle, b.Counterparty.Handle)
		}
	case SortByCrypto:
		return func(a, b model.Transaction) int {
			return sign * cmp.Compare(a.CryptoAmount, b.CryptoAmount)
		}
	case SortByFiat:
		return withTiebreak(func(a, b model.Transaction) int {
			return collator.CompareString(a.FiatCurrency, b.FiatCurrency)
		})
	case SortByOperation:
		return withTiebreak(func(a, b model.Transaction) int {
			return collator.CompareString(string(a.Operation), string(b.Operation))
		})
	case SortByID:
		return func(a, b model.Transaction) int {
			return sign * collator.CompareString(a.ID, b.ID)
		}
	case SortByStatus:
		return withTiebreak(func(a, b model.Transaction) int {
			return cmp.Compare(a.Status.Rank(), b.Status.Rank())
		})
	default:
		return func(_, _ model.Transaction) int { return 0 }
	}
}
