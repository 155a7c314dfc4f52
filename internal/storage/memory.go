package storage

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/Veraticus/paydece-ledger/internal/common"
	"github.com/Veraticus/paydece-ledger/internal/model"
)

// MemoryStorage implements service.TransactionStore with a sorted slice and
// an id index.
type MemoryStorage struct {
	index        map[string]int
	transactions []model.Transaction
	mu           sync.RWMutex
}

// NewMemoryStorage returns an empty store.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{index: make(map[string]int)}
}

// Seed adds a batch of transactions. The whole batch is rejected if any id
// is already present.
func (m *MemoryStorage) Seed(ctx context.Context, transactions []model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateTransactions(transactions); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, txn := range transactions {
		if _, ok := m.index[txn.ID]; ok {
			return fmt.Errorf("%w: transaction %s", common.ErrDuplicateEntry, txn.ID)
		}
	}

	for _, txn := range transactions {
		txn.Timestamp = txn.Timestamp.UTC()
		m.transactions = append(m.transactions, txn)
	}
	slices.SortFunc(m.transactions, func(a, b model.Transaction) int {
		return strings.Compare(a.ID, b.ID)
	})

	clear(m.index)
	for i, txn := range m.transactions {
		m.index[txn.ID] = i
	}
	return nil
}

// ListTransactions returns a copy of every transaction in ascending id order.
func (m *MemoryStorage) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.transactions), nil
}

// GetTransaction returns one transaction or common.ErrNotFound.
func (m *MemoryStorage) GetTransaction(ctx context.Context, id string) (*model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	i, ok := m.index[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	txn := m.transactions[i]
	return &txn, nil
}

// Count returns the number of stored transactions.
func (m *MemoryStorage) Count(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.transactions), nil
}

// Close releases nothing; it exists to satisfy service.TransactionStore.
func (m *MemoryStorage) Close() error {
	return nil
}
