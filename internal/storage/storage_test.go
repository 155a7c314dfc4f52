package storage

import (
	"context"
	"testing"
	"time"

	"github.com/Veraticus/paydece-ledger/internal/common"
	"github.com/Veraticus/paydece-ledger/internal/model"
	"github.com/Veraticus/paydece-ledger/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestTransactions() []model.Transaction {
	ts := time.Date(2024, 12, 15, 14, 30, 0, 0, time.UTC)
	return []model.Transaction{
		{
			ID:             "TXN-002",
			Timestamp:      ts.Add(-2 * time.Hour),
			CryptoAmount:   850,
			CryptoCurrency: "USDC",
			FiatAmount:     765,
			FiatCurrency:   "EUR",
			Status:         model.StatusCompleted,
			Operation:      model.OperationSale,
			Counterparty:   model.Counterparty{Wallet: "0x9876543210fedcba9876543210fedcba98765432", Handle: "@carlos_trader"},
			Reference:      "REF-2024-002",
			Fee:            25.5,
			Net:            824.5,
		},
		{
			ID:             "TXN-001",
			Timestamp:      ts,
			CryptoAmount:   1250,
			CryptoCurrency: "USDC",
			FiatAmount:     1312500,
			FiatCurrency:   "ARS",
			Status:         model.StatusCompleted,
			Operation:      model.OperationPurchase,
			Counterparty:   model.Counterparty{Wallet: "0x1234567890abcdef1234567890abcdef12345678", Handle: "@maria_crypto"},
			Reference:      "REF-2024-001",
			Fee:            37.5,
			Net:            1212.5,
		},
		{
			ID:             "TXN-003",
			Timestamp:      ts.In(time.FixedZone("ART", -3*3600)).Add(-24 * time.Hour),
			CryptoAmount:   2100,
			CryptoCurrency: "USDC",
			FiatAmount:     2100,
			FiatCurrency:   "USD",
			Status:         "bloqueado",
			Operation:      model.OperationPurchase,
		},
	}
}

// forEachDriver runs fn against a fresh store of every backend.
func forEachDriver(t *testing.T, fn func(t *testing.T, store service.TransactionStore)) {
	t.Helper()
	for _, driver := range Drivers() {
		t.Run(driver, func(t *testing.T) {
			store, err := Open(context.Background(), driver)
			require.NoError(t, err)
			t.Cleanup(func() { _ = store.Close() })
			fn(t, store)
		})
	}
}

func TestStore_SeedAndList(t *testing.T) {
	forEachDriver(t, func(t *testing.T, store service.TransactionStore) {
		ctx := context.Background()
		require.NoError(t, store.Seed(ctx, createTestTransactions()))

		got, err := store.ListTransactions(ctx)
		require.NoError(t, err)
		require.Len(t, got, 3)

		assert.Equal(t, "TXN-001", got[0].ID)
		assert.Equal(t, "TXN-002", got[1].ID)
		assert.Equal(t, "TXN-003", got[2].ID)

		assert.Equal(t, time.UTC, got[0].Timestamp.Location())
		assert.True(t, got[2].Timestamp.Equal(createTestTransactions()[2].Timestamp))
		assert.Equal(t, model.Status("bloqueado"), got[2].Status)
		assert.Equal(t, "@maria_crypto", got[0].Counterparty.Handle)
		assert.InDelta(t, 37.5, got[0].Fee, 0)

		n, err := store.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, n)
	})
}

func TestStore_BackendsAgree(t *testing.T) {
	ctx := context.Background()

	results := make(map[string][]model.Transaction)
	for _, driver := range Drivers() {
		store, err := Open(ctx, driver)
		require.NoError(t, err)
		require.NoError(t, store.Seed(ctx, createTestTransactions()))

		results[driver], err = store.ListTransactions(ctx)
		require.NoError(t, err)
		require.NoError(t, store.Close())
	}

	assert.Equal(t, results[DriverMemory], results[DriverSQLite])
}

func TestStore_GetTransaction(t *testing.T) {
	forEachDriver(t, func(t *testing.T, store service.TransactionStore) {
		ctx := context.Background()
		require.NoError(t, store.Seed(ctx, createTestTransactions()))

		txn, err := store.GetTransaction(ctx, "TXN-002")
		require.NoError(t, err)
		assert.Equal(t, "@carlos_trader", txn.Counterparty.Handle)
		assert.Equal(t, model.OperationSale, txn.Operation)

		_, err = store.GetTransaction(ctx, "TXN-999")
		assert.ErrorIs(t, err, common.ErrNotFound)

		_, err = store.GetTransaction(ctx, "  ")
		assert.ErrorIs(t, err, ErrEmptyString)
	})
}

func TestStore_SeedRejectsDuplicates(t *testing.T) {
	forEachDriver(t, func(t *testing.T, store service.TransactionStore) {
		ctx := context.Background()
		txns := createTestTransactions()
		require.NoError(t, store.Seed(ctx, txns[:1]))

		err := store.Seed(ctx, txns)
		require.ErrorIs(t, err, common.ErrDuplicateEntry)

		n, err := store.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n, "a rejected batch must leave the store untouched")

		err = store.Seed(ctx, []model.Transaction{txns[1], txns[1]})
		assert.ErrorIs(t, err, common.ErrDuplicateEntry)
	})
}

func TestStore_Validation(t *testing.T) {
	forEachDriver(t, func(t *testing.T, store service.TransactionStore) {
		ctx := context.Background()

		assert.ErrorIs(t, store.Seed(ctx, nil), ErrEmptySlice)
		assert.ErrorIs(t, store.Seed(ctx, []model.Transaction{{ID: "TXN-001"}}), ErrInvalidTransaction)

		//nolint:staticcheck // nil context is the case under test
		_, err := store.ListTransactions(nil)
		assert.ErrorIs(t, err, ErrNilContext)
	})
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), "postgres")
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}

func TestMigrate_Idempotent(t *testing.T) {
	store, err := NewSQLiteStorage()
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	ctx := context.Background()
	require.NoError(t, store.Migrate(ctx))
	require.NoError(t, store.Migrate(ctx))

	version, err := store.schemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, ExpectedSchemaVersion, version)
}

func TestValidateTransaction(t *testing.T) {
	valid := createTestTransactions()[0]

	tests := []struct {
		name   string
		mutate func(*model.Transaction)
	}{
		{"missing id", func(txn *model.Transaction) { txn.ID = " " }},
		{"missing timestamp", func(txn *model.Transaction) { txn.Timestamp = time.Time{} }},
		{"missing status", func(txn *model.Transaction) { txn.Status = "" }},
		{"missing operation", func(txn *model.Transaction) { txn.Operation = "" }},
	}

	require.NoError(t, validateTransaction(&valid))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := valid
			tt.mutate(&txn)
			assert.ErrorIs(t, validateTransaction(&txn), ErrInvalidTransaction)
		})
	}
}
