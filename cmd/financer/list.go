package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Veraticus/financer/internal/grouping"
	"github.com/Veraticus/financer/internal/ledger"
	"github.com/Veraticus/financer/internal/model"
	"github.com/Veraticus/financer/internal/sectioned"
	"github.com/Veraticus/financer/internal/tui/viewmodel"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// listStyles decorate cell text after column widths are measured, so escape
// sequences never count toward them.
type listStyles struct {
	header func(...string) string
	muted  func(...string) string
}

var styles = listStyles{
	header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")).Render,
	muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render,
}

// columnGap separates printed columns.
const columnGap = 2

type cell struct {
	text  string
	muted bool
}

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print a grouped list",
		Long:  `Print transactions, categories or people grouped the same way the browser shows them.`,
	}

	cmd.AddCommand(listEntityCmd("transactions", "Print transactions grouped by day", printTransactions))
	cmd.AddCommand(listEntityCmd("categories", "Print categories grouped by initial", printCategories))
	cmd.AddCommand(listEntityCmd("people", "Print people grouped by initial", printPeople))
	return cmd
}

type printFunc func(w io.Writer, book ledger.Book, opts grouping.Options, filter string) error

func listEntityCmd(use, short string, printer printFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, _ := cmd.Flags().GetString("filter")

			book, err := loadBook(cmd.Context(), settings.Data, time.Now(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			matcher, err := sectioned.MatcherFor(settings.Search.Mode)
			if err != nil {
				return err
			}
			return printer(cmd.OutOrStdout(), book, grouping.Options{Matcher: matcher, Keywords: settings.Search.Keywords}, filter)
		},
	}
	cmd.Flags().StringP("filter", "f", "", "only show items matching this text")
	return cmd
}

func printTransactions(w io.Writer, book ledger.Book, opts grouping.Options, filter string) error {
	ctrl := sectioned.NewController(grouping.TransactionConfig(opts))
	ctrl.SetItems(book.Transactions)
	ctrl.SetFilter(filter)

	return printStore(w, ctrl.Store(), grouping.SectionLabel, []string{"Merchant", "Category", "Amount"},
		func(tx model.Transaction) []cell {
			category := cell{text: tx.Category}
			if category.text == "" {
				category = cell{text: "(uncategorized)", muted: true}
			}
			return []cell{
				{text: viewmodel.SanitizeForDisplay(tx.DisplayName())},
				category,
				{text: viewmodel.FormatSignedAmount(tx.Amount)},
			}
		})
}

func printCategories(w io.Writer, book ledger.Book, opts grouping.Options, filter string) error {
	ctrl := sectioned.NewController(grouping.CategoryConfig(opts))
	ctrl.SetItems(book.Categories)
	ctrl.SetFilter(filter)

	return printStore(w, ctrl.Store(), nil, []string{"Name", "Type", "Description"},
		func(c model.Category) []cell {
			desc := cell{text: c.Description}
			if desc.text == "" {
				desc = cell{text: "(no description)", muted: true}
			}
			return []cell{{text: c.Name}, {text: string(c.Type)}, desc}
		})
}

func printPeople(w io.Writer, book ledger.Book, opts grouping.Options, filter string) error {
	ctrl := sectioned.NewController(grouping.PersonConfig(opts))
	ctrl.SetItems(book.People)
	ctrl.SetFilter(filter)

	return printStore(w, ctrl.Store(), nil, []string{"Name", "Email"},
		func(p model.Person) []cell {
			return []cell{{text: p.Name}, {text: p.Email}}
		})
}

// printStore prints one row per section label and one indented row per item.
// Widths are measured on the plain text; styling is applied after padding.
func printStore[T any](out io.Writer, store *sectioned.Store[string, T], label func(string) string, headers []string, columns func(T) []cell) error {
	if store.IsEmpty() {
		_, err := fmt.Fprintln(out, styles.muted("Nothing matched."))
		return err
	}
	if label == nil {
		label = func(key string) string { return key }
	}

	type row struct {
		cells  []cell
		header bool
	}
	headerRow := row{cells: []cell{{}}, header: true}
	for _, h := range headers {
		headerRow.cells = append(headerRow.cells, cell{text: h})
	}
	rows := []row{headerRow}
	for _, sec := range store.Sections() {
		rows = append(rows, row{cells: []cell{{text: label(sec.Key)}}, header: true})
		for _, item := range sec.Items {
			rows = append(rows, row{cells: append([]cell{{}}, columns(item)...)})
		}
	}

	widths := make([]int, len(headers)+1)
	for _, r := range rows {
		for i, c := range r.cells {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(c.text))
			}
		}
	}

	for _, r := range rows {
		var b strings.Builder
		for i, c := range r.cells {
			switch {
			case r.header && c.text != "":
				b.WriteString(styles.header(c.text))
			case c.muted:
				b.WriteString(styles.muted(c.text))
			default:
				b.WriteString(c.text)
			}
			if i < len(r.cells)-1 && i < len(widths) {
				b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(c.text)+columnGap))
			}
		}
		if _, err := fmt.Fprintln(out, b.String()); err != nil {
			return err
		}
	}
	return nil
}
