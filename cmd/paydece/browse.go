package main

import (
	"github.com/Veraticus/paydece-ledger/internal/tui"
	"github.com/Veraticus/paydece-ledger/internal/tui/themes"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func browseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "browse",
		Short:       "Open the interactive transaction history",
		Annotations: map[string]string{tuiAnnotation: "true"},
		RunE:        runBrowse,
	}

	cmd.Flags().String("theme", "default", "color theme (default, catppuccin-mocha)")
	_ = viper.BindPFlag("display.theme", cmd.Flags().Lookup("theme"))

	return cmd
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, txns, err := openStore(ctx, settings)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	return tui.Run(ctx,
		tui.WithStore(store),
		tui.WithTransactions(txns),
		tui.WithTheme(themes.GetTheme(viper.GetString("display.theme"))),
		tui.WithFormatter(settings.Formatter()),
		tui.WithClock(settings.Clock),
		tui.WithExportDir(settings.ExportDir),
		tui.WithPaging(settings.PageSize, settings.ScrollThreshold),
		tui.WithDelays(settings.InitialDelay, settings.Delay, tui.DefaultDetailDelay),
	)
}
