package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Veraticus/financer/internal/common"
	"github.com/Veraticus/financer/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile  string
	version  = "dev"
	settings config.Settings
	rootCmd  = &cobra.Command{
		Use:   "financer",
		Short: "Browse transactions, categories and people",
		Long: `financer loads transactions from YAML ledgers and OFX/QFX bank exports and
lets you browse them as searchable lists grouped by day or by initial.

Edits made in the browser are kept in memory only.`,
		PersistentPreRunE: initConfig,
		SilenceUsage:      true,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/financer/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")
	rootCmd.PersistentFlags().String("ledger", "", "YAML ledger file")
	rootCmd.PersistentFlags().StringSlice("ofx", nil, "OFX/QFX files or glob patterns")
	rootCmd.PersistentFlags().Bool("demo", false, "include generated demo data")
	rootCmd.PersistentFlags().Duration("debounce", 0, "search quiet period (default 500ms)")
	rootCmd.PersistentFlags().String("search", "", "search mode (substring, fuzzy)")
	rootCmd.PersistentFlags().Bool("keywords", false, "also match categories, notes and email addresses")

	_ = viper.BindPFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag(config.KeyLogFormat, rootCmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag(config.KeyLedger, rootCmd.PersistentFlags().Lookup("ledger"))
	_ = viper.BindPFlag(config.KeyOFX, rootCmd.PersistentFlags().Lookup("ofx"))
	_ = viper.BindPFlag(config.KeyDemo, rootCmd.PersistentFlags().Lookup("demo"))
	config.SetDefaults(viper.GetViper())

	rootCmd.AddCommand(browseCmd())
	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(versionCmd())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, common.UserMessage(err))
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

		viper.AddConfigPath(fmt.Sprintf("%s/.config/financer", home))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("FINANCER")
	viper.AutomaticEnv()

	// Only explicitly set flags override the config file.
	flags := cmd.Flags()
	if flags.Changed("debounce") {
		d, _ := flags.GetDuration("debounce")
		viper.Set(config.KeySearchDebounce, d)
	}
	if flags.Changed("search") {
		mode, _ := flags.GetString("search")
		viper.Set(config.KeySearchMode, mode)
	}
	if flags.Changed("keywords") {
		keywords, _ := flags.GetBool("keywords")
		viper.Set(config.KeySearchKeywords, keywords)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	loaded, err := config.Load(viper.GetViper())
	if err != nil {
		return common.NewUserError("invalid configuration", err)
	}
	settings = loaded

	if err := common.SetupLogger(os.Stderr, settings.Logging.Level, settings.Logging.Format); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	slog.Debug("configuration loaded", "file", viper.ConfigFileUsed())
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "financer %s\n", version)
		},
	}
}
