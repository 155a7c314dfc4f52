package main

import (
	"fmt"

	"github.com/Veraticus/paydece-ledger/internal/cli"
	"github.com/Veraticus/paydece-ledger/internal/stats"
	"github.com/spf13/cobra"
)

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the 30-day summary cards",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, txns, err := openStore(cmd.Context(), settings)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			summary := stats.Summarize(txns, settings.Clock())
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), cli.RenderSummary(summary, settings.Formatter()))
			return nil
		},
	}
}
