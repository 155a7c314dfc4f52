// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/Veraticus/paydece-ledger/internal/model"
)

// TransactionStore defines the contract for the transaction persistence layer.
// Implementations return transactions in ascending id order.
type TransactionStore interface {
	Seed(ctx context.Context, transactions []model.Transaction) error
	ListTransactions(ctx context.Context) ([]model.Transaction, error)
	GetTransaction(ctx context.Context, id string) (*model.Transaction, error)
	Count(ctx context.Context) (int, error)
	Close() error
}
