// Package export writes the current history view as a CSV summary.
package export

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/Veraticus/paydece-ledger/internal/locale"
	"github.com/Veraticus/paydece-ledger/internal/model"
)

// ErrNothingToExport is returned when the view is empty.
var ErrNothingToExport = errors.New("no transactions to export")

// Header is the fixed column order of the summary.
var Header = []string{
	"Fecha",
	"Contraparte",
	"Monto Cripto",
	"Moneda Cripto",
	"Monto FIAT",
	"Moneda FIAT",
	"Operación",
	"# de Transacción",
	"Estado",
}

// ProgressFunc is called after each row is written.
type ProgressFunc func(written, total int)

// Row renders one transaction in column order.
func Row(txn model.Transaction, f locale.Formatter) []string {
	return []string{
		f.FullDateTime(txn.Timestamp),
		txn.Counterparty.Wallet + " " + txn.Counterparty.Handle,
		locale.RawNumber(txn.CryptoAmount),
		txn.CryptoCurrency,
		locale.RawNumber(txn.FiatAmount),
		txn.FiatCurrency,
		string(txn.Operation),
		txn.ID,
		txn.Status.Label(),
	}
}

// WriteCSV writes the header and one row per transaction, in the order given.
func WriteCSV(w io.Writer, txns []model.Transaction, f locale.Formatter) error {
	return writeCSV(context.Background(), w, txns, f, nil)
}

func writeCSV(ctx context.Context, w io.Writer, txns []model.Transaction, f locale.Formatter, progress ProgressFunc) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, txn := range txns {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := cw.Write(Row(txn, f)); err != nil {
			return fmt.Errorf("failed to write %s: %w", txn.ID, err)
		}
		if progress != nil {
			progress(i+1, len(txns))
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

// Filename is the download name for an export made at now.
func Filename(now time.Time) string {
	return fmt.Sprintf("resumen_transacciones_paydece_%s.csv", now.UTC().Format("2006-01-02"))
}

// Path returns where WriteFile puts an export made at now.
func Path(dir string, now time.Time) string {
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, Filename(now))
}

// WriteFile writes txns into dir under Filename(now) and returns the path.
// A cancelled context removes the partial file.
func WriteFile(ctx context.Context, dir string, now time.Time, txns []model.Transaction, f locale.Formatter, progress ProgressFunc) (string, error) {
	if len(txns) == 0 {
		return "", ErrNothingToExport
	}
	path := Path(dir, now)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	file, err := os.Create(path) //nolint:gosec // path is built from a fixed name
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := writeCSV(ctx, file, txns, f, progress); err != nil {
		_ = file.Close()
		_ = os.Remove(path)
		return "", err
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", path, err)
	}
	return path, nil
}
