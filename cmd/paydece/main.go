package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Veraticus/paydece-ledger/internal/common"
	"github.com/Veraticus/paydece-ledger/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// tuiAnnotation marks commands that take over the terminal; their logs go to
// logging.file instead of stderr.
const tuiAnnotation = "tui"

var (
	cfgFile  string
	version  = "dev"
	settings *config.Settings
	rootCmd  = &cobra.Command{
		Use:   "paydece",
		Short: "Historial de transacciones P2P de paydece",
		Long: `paydece browses the P2P crypto/fiat transaction history: filter,
sort and page through it in the terminal, open the detail of any transaction
and export the current view as CSV.

Without a subcommand it opens the interactive history.`,
		Annotations:       map[string]string{tuiAnnotation: "true"},
		PersistentPreRunE: initConfig,
		RunE:              runBrowse,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/paydece/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")

	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))

	rootCmd.AddCommand(browseCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(showCmd())
	rootCmd.AddCommand(statsCmd())
	rootCmd.AddCommand(versionCmd())
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("Received interrupt signal, shutting down gracefully...")
		cancel()
	}()

	err := rootCmd.ExecuteContext(ctx)
	cancel()

	if err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, common.UserMessage(err))
		}
		os.Exit(1)
	}
}

func initConfig(cmd *cobra.Command, _ []string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		viper.AddConfigPath(fmt.Sprintf("%s/.config/paydece", home))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("PAYDECE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	config.SetDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	s, err := config.Load(viper.GetViper())
	if err != nil {
		return common.NewUserError("configuración inválida", err)
	}
	settings = s

	if err := setupLogging(s, cmd.Annotations[tuiAnnotation] == "true"); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	return nil
}

// setupLogging sends logs to stderr, or for the TUI to logging.file when set
// and nowhere otherwise.
func setupLogging(s *config.Settings, tui bool) error {
	level, err := common.ParseLevel(s.LogLevel)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stderr
	if tui {
		w = io.Discard
		if s.LogFile != "" {
			f, openErr := os.OpenFile(s.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
			if openErr != nil {
				return fmt.Errorf("failed to open log file: %w", openErr)
			}
			w = f
		}
	}

	common.SetupLogger(w, level, s.LogFormat)
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "paydece %s\n", version)
		},
	}
}
