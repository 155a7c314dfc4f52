package main

import (
	"context"
	"fmt"

	"github.com/Veraticus/paydece-ledger/internal/common"
	"github.com/Veraticus/paydece-ledger/internal/config"
	"github.com/Veraticus/paydece-ledger/internal/mockdata"
	"github.com/Veraticus/paydece-ledger/internal/model"
	"github.com/Veraticus/paydece-ledger/internal/query"
	"github.com/Veraticus/paydece-ledger/internal/service"
	"github.com/Veraticus/paydece-ledger/internal/storage"
	"github.com/spf13/cobra"
)

// openStore creates the configured store and seeds it with the mock dataset.
// The caller closes the store.
func openStore(ctx context.Context, s *config.Settings) (service.TransactionStore, []model.Transaction, error) {
	store, err := storage.Open(ctx, s.StorageDriver)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open storage: %w", err)
	}

	if err := store.Seed(ctx, mockdata.Generate(s.DataOptions())); err != nil {
		_ = store.Close()
		return nil, nil, fmt.Errorf("failed to seed storage: %w", err)
	}

	txns, err := store.ListTransactions(ctx)
	if err != nil {
		_ = store.Close()
		return nil, nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	common.LogDebug("storage ready", common.Fields{"driver": s.StorageDriver, "count": len(txns)})
	return store, txns, nil
}

// filterFlags are the list filters shared by the non-interactive commands.
type filterFlags struct {
	search    string
	status    string
	operation string
	from      string
	to        string
	sort      string
	direction string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.search, "search", "", "search term (at least 3 characters)")
	cmd.Flags().StringVar(&f.status, "status", query.All, "status filter (all, iniciada, en custodia, pagado, ...)")
	cmd.Flags().StringVar(&f.operation, "operation", query.All, "operation filter (all, compra, venta)")
	cmd.Flags().StringVar(&f.from, "from", "", "first day to include (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.to, "to", "", "last day to include (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.sort, "sort", string(query.SortByTimestamp), "sort column (timestamp, counterparty, crypto, fiat, operation, id, status)")
	cmd.Flags().StringVar(&f.direction, "direction", string(query.Descending), "sort direction (asc, desc)")
}

// criteria validates the flags and turns them into list criteria. Days are
// read in the display timezone.
func (f filterFlags) criteria(s *config.Settings) (query.Criteria, error) {
	c := query.DefaultCriteria()
	c.Search = f.search

	switch {
	case f.status == "" || f.status == query.All:
	case model.Status(f.status).Known():
		c.Status = f.status
	default:
		return c, common.NewUserError(fmt.Sprintf("estado desconocido: %s", f.status), nil)
	}

	switch {
	case f.operation == "" || f.operation == query.All:
	case model.Operation(f.operation).Known():
		c.Operation = f.operation
	default:
		return c, common.NewUserError(fmt.Sprintf("operación desconocida: %s", f.operation), nil)
	}

	r, err := query.ParseDayRange(f.from, f.to, query.ISODayLayout, s.Location)
	if err != nil {
		return c, common.NewUserError("rango de fechas inválido", err)
	}
	c.Range = r

	key, err := query.ParseSortKey(f.sort)
	if err != nil {
		return c, common.NewUserError("columna de orden inválida", err)
	}
	dir, err := query.ParseDirection(f.direction)
	if err != nil {
		return c, common.NewUserError("dirección de orden inválida", err)
	}
	c.SortKey = key
	c.Direction = dir
	return c, nil
}
