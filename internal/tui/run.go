package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/Veraticus/financer/internal/ledger"
	tea "github.com/charmbracelet/bubbletea"
)

// Run shows book in the terminal until the user quits or ctx is cancelled.
// Edits only live in memory.
func Run(ctx context.Context, book ledger.Book, opts ...Option) error {
	m := New(book, opts...)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
