// Package storage provides the transaction stores behind the history views.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/paydece-ledger/internal/common"
	"github.com/Veraticus/paydece-ledger/internal/model"
)

// Validation errors.
var (
	ErrNilContext         = errors.New("context cannot be nil")
	ErrEmptyString        = errors.New("string parameter cannot be empty")
	ErrEmptySlice         = errors.New("slice cannot be empty")
	ErrInvalidTransaction = errors.New("invalid transaction")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateTransactions validates a batch and rejects repeated ids within it.
func validateTransactions(transactions []model.Transaction) error {
	if len(transactions) == 0 {
		return fmt.Errorf("%w: transactions", ErrEmptySlice)
	}

	seen := make(map[string]struct{}, len(transactions))
	for i := range transactions {
		if err := validateTransaction(&transactions[i]); err != nil {
			return fmt.Errorf("transaction at index %d: %w", i, err)
		}
		if _, dup := seen[transactions[i].ID]; dup {
			return fmt.Errorf("%w: transaction %s", common.ErrDuplicateEntry, transactions[i].ID)
		}
		seen[transactions[i].ID] = struct{}{}
	}
	return nil
}

// validateTransaction validates a single transaction.
func validateTransaction(txn *model.Transaction) error {
	if strings.TrimSpace(txn.ID) == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidTransaction)
	}
	if txn.Timestamp.IsZero() {
		return fmt.Errorf("%w: missing timestamp", ErrInvalidTransaction)
	}
	if txn.Status == "" {
		return fmt.Errorf("%w: missing status", ErrInvalidTransaction)
	}
	if txn.Operation == "" {
		return fmt.Errorf("%w: missing operation", ErrInvalidTransaction)
	}
	return nil
}
