package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Veraticus/paydece-ledger/internal/cli"
	"github.com/Veraticus/paydece-ledger/internal/common"
	"github.com/Veraticus/paydece-ledger/internal/export"
	"github.com/Veraticus/paydece-ledger/internal/query"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func exportCmd() *cobra.Command {
	var (
		filters filterFlags
		dir     string
		force   bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the filtered history as CSV",
		Long: `Write the transactions matching the filters to
resumen_transacciones_paydece_<fecha>.csv, in the requested order.

Examples:
  paydece export --status finalizado --operation compra
  paydece export --from 2024-12-01 --to 2024-12-15 --sort fiat --direction asc`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if dir == "" {
				dir = settings.ExportDir
			}
			return runExport(cmd, filters, dir, force)
		},
	}

	filters.register(cmd)
	cmd.Flags().StringVar(&dir, "dir", "", "output directory (default: export.dir)")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing export without asking")

	return cmd
}

func runExport(cmd *cobra.Command, filters filterFlags, dir string, force bool) error {
	criteria, err := filters.criteria(settings)
	if err != nil {
		return err
	}

	store, txns, err := openStore(cmd.Context(), settings)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	f := settings.Formatter()
	filtered := query.New(f, f.Language()).FilterAndSort(txns, criteria)
	if len(filtered) == 0 {
		return common.NewUserError("no hay transacciones para exportar", export.ErrNothingToExport)
	}

	out := cmd.OutOrStdout()
	now := settings.Clock()
	path := export.Path(dir, now)

	if _, statErr := os.Stat(path); statErr == nil && !force {
		ok, confirmErr := cli.Confirm(cmd.Context(), cmd.InOrStdin(), out, fmt.Sprintf("%s ya existe. ¿Sobrescribir?", path))
		if confirmErr != nil {
			return confirmErr
		}
		if !ok {
			_, _ = fmt.Fprintln(out, cli.FormatInfo("Exportación cancelada"))
			return nil
		}
	}

	handler := cli.NewInterruptHandler(out)
	ctx, stop := handler.HandleInterrupts(cmd.Context(), "Exportación")
	defer stop()

	bar := newExportBar(out, len(filtered))
	written, err := export.WriteFile(ctx, dir, now, filtered, f, func(_, _ int) {
		if addErr := bar.Add(1); addErr != nil {
			slog.Warn("Failed to update progress bar", "error", addErr)
		}
	})
	if err != nil {
		if handler.WasInterrupted() || errors.Is(err, ctx.Err()) {
			return ctx.Err()
		}
		return fmt.Errorf("failed to export: %w", err)
	}

	common.LogInfo("exported transactions", common.Fields{"path": written, "count": len(filtered)})
	_, _ = fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("%d transacciones exportadas a %s", len(filtered), written)))
	return nil
}

func newExportBar(w io.Writer, total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Exportando...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			_, _ = fmt.Fprintln(w)
		}),
	)
}
