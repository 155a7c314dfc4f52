package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Veraticus/paydece-ledger/internal/common"
	"github.com/Veraticus/paydece-ledger/internal/model"
	"github.com/mattn/go-sqlite3"
)

const transactionColumns = `id, timestamp_ns, crypto_amount, crypto_currency, fiat_amount, fiat_currency,
	status, operation, wallet, handle, reference, fee, net`

// Seed inserts a batch of transactions inside one database transaction.
func (s *SQLiteStorage) Seed(ctx context.Context, transactions []model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateTransactions(transactions); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := s.seedTx(ctx, tx, transactions); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed: %w", err)
	}
	return nil
}

func (s *SQLiteStorage) seedTx(ctx context.Context, tx *sql.Tx, transactions []model.Transaction) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO transactions (`+transactionColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, txn := range transactions {
		_, err = stmt.ExecContext(ctx,
			txn.ID,
			txn.Timestamp.UnixNano(),
			txn.CryptoAmount,
			txn.CryptoCurrency,
			txn.FiatAmount,
			txn.FiatCurrency,
			string(txn.Status),
			string(txn.Operation),
			txn.Counterparty.Wallet,
			txn.Counterparty.Handle,
			txn.Reference,
			txn.Fee,
			txn.Net,
		)
		if isPrimaryKeyViolation(err) {
			return fmt.Errorf("%w: transaction %s", common.ErrDuplicateEntry, txn.ID)
		}
		if err != nil {
			return fmt.Errorf("failed to insert transaction %s: %w", txn.ID, err)
		}
	}

	return nil
}

// ListTransactions returns every transaction in ascending id order.
func (s *SQLiteStorage) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	return s.listTransactions(ctx, s.db)
}

func (s *SQLiteStorage) listTransactions(ctx context.Context, q queryable) ([]model.Transaction, error) {
	rows, err := q.QueryContext(ctx, `SELECT `+transactionColumns+` FROM transactions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var transactions []model.Transaction
	for rows.Next() {
		txn, scanErr := scanTransaction(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		transactions = append(transactions, txn)
	}

	return transactions, rows.Err()
}

// GetTransaction returns one transaction or common.ErrNotFound.
func (s *SQLiteStorage) GetTransaction(ctx context.Context, id string) (*model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE id = ?`, id)
	txn, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// Count returns the number of stored transactions.
func (s *SQLiteStorage) Count(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row scanner) (model.Transaction, error) {
	var (
		txn       model.Transaction
		timestamp int64
		status    string
		operation string
	)

	err := row.Scan(
		&txn.ID,
		&timestamp,
		&txn.CryptoAmount,
		&txn.CryptoCurrency,
		&txn.FiatAmount,
		&txn.FiatCurrency,
		&status,
		&operation,
		&txn.Counterparty.Wallet,
		&txn.Counterparty.Handle,
		&txn.Reference,
		&txn.Fee,
		&txn.Net,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return txn, err
	}
	if err != nil {
		return txn, fmt.Errorf("failed to scan transaction: %w", err)
	}

	txn.Timestamp = time.Unix(0, timestamp).UTC()
	txn.Status = model.Status(status)
	txn.Operation = model.Operation(operation)
	return txn, nil
}

func isPrimaryKeyViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
}
