package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Veraticus/financer/internal/common"
	"github.com/Veraticus/financer/internal/sectioned"
	"github.com/Veraticus/financer/internal/tui"
	"github.com/Veraticus/financer/internal/tui/themes"
	"github.com/spf13/cobra"
)

func browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the ledger interactively",
		Long: `Open the terminal browser over every configured source.

Examples:
  # Browse a ledger with this month's bank export
  financer browse --ledger ~/finance/home.yaml --ofx ~/Downloads/checking_*.qfx

  # Try it out with generated data
  financer browse --demo`,
		Args: cobra.NoArgs,
		RunE: runBrowse,
	}
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	book, err := loadBook(ctx, settings.Data, time.Now(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if settings.Logging.File != "" {
		f, err := os.OpenFile(settings.Logging.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	if err := common.SetupLogger(logOut, settings.Logging.Level, settings.Logging.Format); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	matcher, err := sectioned.MatcherFor(settings.Search.Mode)
	if err != nil {
		return err
	}

	common.LogInfo("starting browser", common.Fields{
		"transactions": len(book.Transactions),
		"categories":   len(book.Categories),
		"people":       len(book.People),
	})

	return tui.Run(ctx, book,
		tui.WithTheme(themes.GetTheme(settings.UI.Theme)),
		tui.WithMatcher(matcher),
		tui.WithDebounce(settings.Search.Debounce),
		tui.WithKeywordSearch(settings.Search.Keywords),
	)
}
