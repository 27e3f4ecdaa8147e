package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Veraticus/financer/internal/common"
	"github.com/Veraticus/financer/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)

func TestLoadBook_NoSource(t *testing.T) {
	_, err := loadBook(context.Background(), config.DataSettings{}, testNow, io.Discard)

	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrMissingConfig)
	assert.Contains(t, common.UserMessage(err), "--demo")
}

func TestLoadBook_Ledger(t *testing.T) {
	book, err := loadBook(context.Background(), config.DataSettings{Ledger: "testdata/ledger.yaml"}, testNow, io.Discard)

	require.NoError(t, err)
	assert.Len(t, book.Transactions, 3)
	assert.Len(t, book.Categories, 2)
	assert.Len(t, book.People, 2)
}

func TestLoadBook_MissingLedger(t *testing.T) {
	_, err := loadBook(context.Background(), config.DataSettings{Ledger: "testdata/nope.yaml"}, testNow, io.Discard)

	assert.Error(t, err)
}

func TestLoadBook_MergesDemo(t *testing.T) {
	data := config.DataSettings{Ledger: "testdata/ledger.yaml", Demo: true, DemoCount: 10, DemoSeed: 7}

	book, err := loadBook(context.Background(), data, testNow, io.Discard)

	require.NoError(t, err)
	assert.Len(t, book.Transactions, 13)
	assert.GreaterOrEqual(t, len(book.Categories), 2)
}

func TestLoadBook_SkipsBrokenOFX(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.qfx", "b.qfx"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("not an ofx file"), 0o600))
	}

	data := config.DataSettings{OFX: []string{filepath.Join(dir, "*.qfx")}}
	book, err := loadBook(context.Background(), data, testNow, io.Discard)

	require.NoError(t, err)
	assert.Empty(t, book.Transactions)
}

func TestLoadBook_Cancelled(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.ofx")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := loadBook(ctx, config.DataSettings{OFX: []string{path}}, testNow, io.Discard)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestExpandPatterns(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"jan.qfx", "feb.qfx", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}

	tests := []struct {
		name     string
		patterns []string
		want     []string
		wantErr  bool
	}{
		{
			name:     "glob",
			patterns: []string{filepath.Join(dir, "*.qfx")},
			want:     []string{filepath.Join(dir, "feb.qfx"), filepath.Join(dir, "jan.qfx")},
		},
		{
			name:     "plain file",
			patterns: []string{filepath.Join(dir, "notes.txt")},
			want:     []string{filepath.Join(dir, "notes.txt")},
		},
		{
			name:     "no match",
			patterns: []string{filepath.Join(dir, "*.ofx")},
		},
		{
			name:     "bad pattern",
			patterns: []string{"[" + dir},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := expandPatterns(tt.patterns)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
