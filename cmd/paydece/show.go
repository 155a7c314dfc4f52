package main

import (
	"errors"
	"fmt"

	"github.com/Veraticus/paydece-ledger/internal/cli"
	"github.com/Veraticus/paydece-ledger/internal/common"
	"github.com/spf13/cobra"
)

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show the detail of one transaction",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	store, _, err := openStore(cmd.Context(), settings)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	txn, err := store.GetTransaction(cmd.Context(), args[0])
	if errors.Is(err, common.ErrNotFound) {
		return common.NewUserError(fmt.Sprintf("Transacción no encontrada: %s", args[0]), err)
	}
	if err != nil {
		return fmt.Errorf("failed to get transaction %s: %w", args[0], err)
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), cli.RenderTransaction(*txn, settings.Formatter()))
	return nil
}
