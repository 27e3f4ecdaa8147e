package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/Veraticus/financer/internal/common"
	"github.com/Veraticus/financer/internal/config"
	"github.com/Veraticus/financer/internal/ledger"
	"github.com/Veraticus/financer/internal/model"
	"github.com/schollz/progressbar/v3"
)

// loadBook reads every configured source and merges them. Broken OFX files
// are logged and skipped; a broken ledger fails the load.
func loadBook(ctx context.Context, data config.DataSettings, now time.Time, progress io.Writer) (ledger.Book, error) {
	if !data.HasSource() {
		return ledger.Book{}, common.NewUserError(
			"nothing to show: pass --ledger, --ofx or --demo",
			common.ErrMissingConfig)
	}

	var books []ledger.Book

	if data.Ledger != "" {
		book, err := ledger.LoadFile(data.Ledger)
		if err != nil {
			return ledger.Book{}, err
		}
		books = append(books, book)
	}

	files, err := expandPatterns(data.OFX)
	if err != nil {
		return ledger.Book{}, err
	}
	if len(files) > 0 {
		book, err := importOFX(ctx, files, progress)
		if err != nil {
			return ledger.Book{}, err
		}
		books = append(books, book)
	}

	if data.Demo {
		books = append(books, ledger.Demo(data.DemoSeed, data.DemoCount, now))
	}

	book := ledger.Merge(books...)
	slog.Debug("loaded book",
		"sources", len(books),
		"transactions", len(book.Transactions))
	return book, nil
}

// expandPatterns resolves glob patterns. Patterns without matches are kept
// when they name an existing file.
func expandPatterns(patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) > 0 {
			files = append(files, matches...)
			continue
		}
		if _, err := os.Stat(pattern); err == nil {
			files = append(files, pattern)
			continue
		}
		slog.Warn("No files found matching pattern", "pattern", pattern)
	}
	return files, nil
}

func importOFX(ctx context.Context, files []string, progress io.Writer) (ledger.Book, error) {
	var bar *progressbar.ProgressBar
	if len(files) > 1 {
		bar = progressbar.NewOptions(len(files),
			progressbar.OptionSetWriter(progress),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWidth(30),
			progressbar.OptionSetDescription("Reading OFX files"),
			progressbar.OptionClearOnFinish(),
		)
	}

	parser := ledger.NewOFXParser()
	var book ledger.Book
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return ledger.Book{}, err
		}

		txs, err := parseOFXFile(ctx, parser, path)
		if err != nil {
			common.LogError(err, "Failed to parse OFX file", common.Fields{"file": path})
		} else {
			book.Transactions = append(book.Transactions, txs...)
		}

		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}
	return book, nil
}

func parseOFXFile(ctx context.Context, parser *ledger.OFXParser, path string) ([]model.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parser.Parse(ctx, f)
}
