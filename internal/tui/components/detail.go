package components

import (
	"strings"

	"github.com/Veraticus/financer/internal/model"
	"github.com/Veraticus/financer/internal/palette"
	"github.com/Veraticus/financer/internal/tui/themes"
	"github.com/Veraticus/financer/internal/tui/viewmodel"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// Detail shows the fields of one item.
type Detail struct {
	theme themes.Theme
	view  viewmodel.DetailView
	width int
}

// NewDetail creates a detail screen for view.
func NewDetail(view viewmodel.DetailView, theme themes.Theme) Detail {
	return Detail{view: view, theme: theme, width: 80}
}

// SetWidth sets the available width.
func (d *Detail) SetWidth(width int) {
	d.width = width
}

// ViewModel returns the data the screen renders.
func (d Detail) ViewModel() viewmodel.DetailView {
	return d.view
}

// View renders the detail screen.
func (d Detail) View() string {
	var b strings.Builder
	b.WriteString(d.theme.Title.Render(viewmodel.SanitizeForDisplay(d.view.Title)))
	if d.view.Subtitle != "" {
		b.WriteString("\n")
		b.WriteString(d.theme.Subtitle.Render(d.view.Subtitle))
	}
	b.WriteString("\n\n")

	valueWidth := max(d.width-20, 10)
	for _, f := range d.view.Fields {
		value := viewmodel.TruncateString(f.Value, valueWidth)
		if f.Swatch != "" {
			value = lipgloss.NewStyle().Foreground(lipgloss.Color(f.Swatch)).Render("██") + " " + value
		}
		b.WriteString(d.theme.Label.Render(f.Label))
		b.WriteString(d.theme.Normal.Render(value))
		b.WriteString("\n")
	}

	box := d.theme.RoundedBox.Width(max(d.width-4, 20)).Render(strings.TrimRight(b.String(), "\n"))
	if len(d.view.Hints) == 0 {
		return box
	}
	return box + "\n" + d.theme.Subtitle.Render(strings.Join(d.view.Hints, " • "))
}

// TransactionDetailView builds the detail screen of a transaction. category
// and person are the resolved references, when present.
func TransactionDetailView(tx model.Transaction, category *model.Category, person *model.Person) viewmodel.DetailView {
	v := viewmodel.DetailView{
		Title:    tx.DisplayName(),
		Subtitle: tx.Date.Format("Monday, January 2 2006"),
		Hints:    []string{"c category", "p person", "esc back"},
	}

	v.Fields = append(v.Fields, viewmodel.Field{Label: "Amount", Value: viewmodel.FormatSignedAmount(tx.Amount)})
	if tx.Name != "" && tx.Name != tx.DisplayName() {
		v.Fields = append(v.Fields, viewmodel.Field{Label: "Description", Value: viewmodel.SanitizeForDisplay(tx.Name)})
	}

	categoryField := viewmodel.Field{Label: "Category", Value: "uncategorized"}
	if tx.IsCategorized() {
		categoryField.Value = tx.Category
		if category != nil && category.Color != 0 {
			categoryField.Swatch = palette.FromPacked(category.Color).Hex()[:7]
		}
	}
	v.Fields = append(v.Fields, categoryField)

	personField := viewmodel.Field{Label: "Shared with", Value: "nobody"}
	if person != nil {
		personField.Value = person.Name
	}
	v.Fields = append(v.Fields, personField)

	optional := []viewmodel.Field{
		{Label: "Account", Value: tx.AccountID},
		{Label: "Type", Value: tx.Type},
		{Label: "Check", Value: tx.CheckNumber},
		{Label: "Notes", Value: tx.Notes},
	}
	for _, f := range optional {
		if f.Value != "" {
			v.Fields = append(v.Fields, f)
		}
	}
	return v
}

// CategoryDetailView builds the detail screen of a category with the number
// and net total of its transactions.
func CategoryDetailView(c model.Category, count int, total decimal.Decimal) viewmodel.DetailView {
	status := "active"
	if !c.IsActive {
		status = "inactive"
	}
	v := viewmodel.DetailView{
		Title:    c.Name,
		Subtitle: c.Description,
		Fields: []viewmodel.Field{
			{Label: "Type", Value: string(c.Type)},
			{Label: "Status", Value: status},
			{Label: "Transactions", Value: viewmodel.Pluralize(count, "transaction")},
			{Label: "Net", Value: viewmodel.FormatSignedAmount(total)},
		},
		Hints: []string{"esc back"},
	}
	if c.Color != 0 {
		hex := palette.FromPacked(c.Color).Hex()
		v.Fields = append(v.Fields, viewmodel.Field{Label: "Colour", Value: hex, Swatch: hex[:7]})
	}
	return v
}

// PersonDetailView builds the detail screen of a person with the number and
// net total of the transactions shared with them.
func PersonDetailView(p model.Person, count int, total decimal.Decimal) viewmodel.DetailView {
	v := viewmodel.DetailView{
		Title: p.Name,
		Fields: []viewmodel.Field{
			{Label: "Shared", Value: viewmodel.Pluralize(count, "transaction")},
			{Label: "Net", Value: viewmodel.FormatSignedAmount(total)},
		},
		Hints: []string{"esc back"},
	}
	if p.Email != "" {
		v.Subtitle = p.Email
	}
	if p.Notes != "" {
		v.Fields = append(v.Fields, viewmodel.Field{Label: "Notes", Value: p.Notes})
	}
	return v
}
