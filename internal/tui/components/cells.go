package components

import (
	"strings"

	"github.com/Veraticus/financer/internal/model"
	"github.com/Veraticus/financer/internal/palette"
	"github.com/Veraticus/financer/internal/tui/themes"
	"github.com/Veraticus/financer/internal/tui/viewmodel"
	"github.com/charmbracelet/lipgloss"
)

const (
	amountWidth   = 14
	categoryWidth = 16
	minNameWidth  = 12
)

// TransactionCell draws merchant, category and signed amount.
func TransactionCell(theme themes.Theme) CellRenderer[model.Transaction] {
	return func(tx model.Transaction, width int) string {
		amountStyle := theme.Income
		if tx.IsExpense() {
			amountStyle = theme.Expense
		}
		amount := amountStyle.Render(padLeft(viewmodel.FormatSignedAmount(tx.Amount), amountWidth))

		category := theme.Subtitle.Render(fit("uncategorized", categoryWidth))
		if tx.IsCategorized() {
			category = theme.Normal.Render(fit(tx.Category, categoryWidth))
		}

		nameWidth := width - amountWidth - categoryWidth - 2
		if nameWidth < minNameWidth {
			nameWidth = max(width-amountWidth-1, 1)
			return fit(viewmodel.SanitizeForDisplay(tx.DisplayName()), nameWidth) + " " + amount
		}
		return fit(viewmodel.SanitizeForDisplay(tx.DisplayName()), nameWidth) + " " + category + " " + amount
	}
}

// CategoryCell draws a colour swatch, the name and the category type.
func CategoryCell(theme themes.Theme) CellRenderer[model.Category] {
	return func(c model.Category, width int) string {
		swatch := theme.Subtitle.Render("··")
		if c.Color != 0 {
			swatch = lipgloss.NewStyle().Foreground(palette.FromPacked(c.Color).Lipgloss()).Render("██")
		}

		kind := string(c.Type)
		nameWidth := max(width-3-len(kind)-1, 1)
		name := theme.Normal.Render(fit(c.Name, nameWidth))
		if !c.IsActive {
			name = theme.Disabled.Render(fit(c.Name, nameWidth))
		}
		return swatch + " " + name + " " + theme.Subtitle.Render(kind)
	}
}

// PersonCell draws the name and email.
func PersonCell(theme themes.Theme) CellRenderer[model.Person] {
	return func(p model.Person, width int) string {
		emailWidth := min(lipgloss.Width(p.Email), width/2)
		nameWidth := max(width-emailWidth-1, 1)
		if p.Email == "" {
			return fit(p.Name, width)
		}
		return theme.Normal.Render(fit(p.Name, nameWidth)) + " " + theme.Subtitle.Render(fit(p.Email, emailWidth))
	}
}

// fit truncates or pads s to exactly width columns.
func fit(s string, width int) string {
	s = viewmodel.TruncateString(s, width)
	if pad := width - lipgloss.Width(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

func padLeft(s string, width int) string {
	if pad := width - lipgloss.Width(s); pad > 0 {
		return strings.Repeat(" ", pad) + s
	}
	return s
}
