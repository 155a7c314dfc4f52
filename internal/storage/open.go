package storage

import (
	"context"
	"fmt"

	"github.com/Veraticus/paydece-ledger/internal/common"
	"github.com/Veraticus/paydece-ledger/internal/service"
)

// Store drivers accepted by Open.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)

// Drivers lists the accepted driver names.
func Drivers() []string {
	return []string{DriverMemory, DriverSQLite}
}

// Open returns a ready-to-seed store for driver. An empty driver means memory.
func Open(ctx context.Context, driver string) (service.TransactionStore, error) {
	switch driver {
	case "", DriverMemory:
		return NewMemoryStorage(), nil
	case DriverSQLite:
		store, err := NewSQLiteStorage()
		if err != nil {
			return nil, err
		}
		if err := store.Migrate(ctx); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("failed to migrate: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("%w: unknown storage driver %q", common.ErrInvalidConfig, driver)
	}
}
