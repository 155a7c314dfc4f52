// Package testutil provides fixtures shared by the package tests: a fluent
// transaction builder and seeded stores with automatic cleanup.
package testutil

import (
	"context"
	"testing"

	"github.com/Veraticus/paydece-ledger/internal/model"
	"github.com/Veraticus/paydece-ledger/internal/service"
	"github.com/Veraticus/paydece-ledger/internal/storage"
)

// TestStore is a seeded store and the data it was seeded with.
type TestStore struct {
	Store        service.TransactionStore
	t            *testing.T
	Transactions []model.Transaction
}

// SetupStore opens driver, seeds it with txns and closes it when the test ends.
//
// Example:
//
//	db := testutil.SetupStore(t, storage.DriverSQLite,
//		testutil.NewBuilder(t).WithStatus(model.StatusPaid).Build(10),
//	)
func SetupStore(t *testing.T, driver string, txns []model.Transaction) *TestStore {
	t.Helper()

	ctx := context.Background()
	store, err := storage.Open(ctx, driver)
	if err != nil {
		t.Fatalf("failed to open %s store: %v", driver, err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})

	if len(txns) > 0 {
		if err := store.Seed(ctx, txns); err != nil {
			t.Fatalf("failed to seed %d transactions: %v", len(txns), err)
		}
	}

	return &TestStore{
		Store:        store,
		Transactions: txns,
		t:            t,
	}
}

// MustGet returns the stored transaction with id or fails the test.
func (db *TestStore) MustGet(id string) model.Transaction {
	db.t.Helper()

	txn, err := db.Store.GetTransaction(context.Background(), id)
	if err != nil {
		db.t.Fatalf("failed to get transaction %s: %v", id, err)
	}
	return *txn
}
