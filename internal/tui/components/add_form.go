package components

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/financer/internal/palette"
	"github.com/Veraticus/financer/internal/tui/themes"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
)

// FormKind selects what an AddForm creates.
type FormKind int

// Form kinds.
const (
	FormTransaction FormKind = iota
	FormCategory
	FormPerson
)

// String returns the singular noun of the kind.
func (k FormKind) String() string {
	switch k {
	case FormTransaction:
		return "transaction"
	case FormCategory:
		return "category"
	case FormPerson:
		return "person"
	default:
		return fmt.Sprintf("FormKind(%d)", int(k))
	}
}

// Form field keys.
const (
	FieldName        = "name"
	FieldAmount      = "amount"
	FieldDescription = "description"
	FieldColor       = "color"
	FieldEmail       = "email"
)

type formField struct {
	validate func(string) error
	key      string
	label    string
	input    textinput.Model
}

// AddForm collects the fields of a new item. Enter on the last field
// validates and emits FormSubmittedMsg; esc emits FormCancelledMsg.
type AddForm struct {
	theme  themes.Theme
	err    error
	fields []formField
	focus  int
	kind   FormKind
}

var (
	errRequired = errors.New("is required")
	errAmount   = errors.New("must be a number like -12.50")
)

// NewAddForm creates an empty form for kind.
func NewAddForm(kind FormKind, theme themes.Theme) AddForm {
	var fields []formField
	switch kind {
	case FormTransaction:
		fields = []formField{
			newField(FieldName, "Merchant", "Corner Market", required),
			newField(FieldAmount, "Amount", "-12.50", validAmount),
		}
	case FormCategory:
		fields = []formField{
			newField(FieldName, "Name", "Groceries", required),
			newField(FieldDescription, "Description", "optional", nil),
			newField(FieldColor, "Colour", "#4caf50", validColor),
		}
	default:
		fields = []formField{
			newField(FieldName, "Name", "Alice", required),
			newField(FieldEmail, "Email", "optional", nil),
		}
	}

	f := AddForm{kind: kind, theme: theme, fields: fields}
	f.fields[0].input.Focus()
	return f
}

func newField(key, label, placeholder string, validate func(string) error) formField {
	input := textinput.New()
	input.Placeholder = placeholder
	input.CharLimit = 64
	input.Width = 32
	input.Prompt = ""
	input.Cursor.SetMode(cursor.CursorStatic)
	return formField{key: key, label: label, input: input, validate: validate}
}

func required(s string) error {
	if strings.TrimSpace(s) == "" {
		return errRequired
	}
	return nil
}

func validAmount(s string) error {
	if _, err := decimal.NewFromString(strings.TrimSpace(s)); err != nil {
		return errAmount
	}
	return nil
}

func validColor(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	_, err := palette.ParseHex(s)
	return err
}

var (
	formNext   = key.NewBinding(key.WithKeys("tab", "down"))
	formPrev   = key.NewBinding(key.WithKeys("shift+tab", "up"))
	formSubmit = key.NewBinding(key.WithKeys("enter"))
	formCancel = key.NewBinding(key.WithKeys("esc"))
)

// Update handles key presses.
func (f AddForm) Update(msg tea.Msg) (AddForm, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, nil
	}

	switch {
	case key.Matches(keyMsg, formCancel):
		return f, func() tea.Msg { return FormCancelledMsg{Kind: f.kind} }
	case key.Matches(keyMsg, formNext):
		f.setFocus(f.focus + 1)
		return f, nil
	case key.Matches(keyMsg, formPrev):
		f.setFocus(f.focus - 1)
		return f, nil
	case key.Matches(keyMsg, formSubmit):
		if f.focus < len(f.fields)-1 {
			f.setFocus(f.focus + 1)
			return f, nil
		}
		if err := f.Validate(); err != nil {
			f.err = err
			return f, nil
		}
		submitted := FormSubmittedMsg{Kind: f.kind, Values: f.Values()}
		return f, func() tea.Msg { return submitted }
	}

	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	f.err = nil
	return f, cmd
}

func (f *AddForm) setFocus(i int) {
	f.fields[f.focus].input.Blur()
	f.focus = (i + len(f.fields)) % len(f.fields)
	f.fields[f.focus].input.Focus()
}

// Validate checks every field and returns the first problem.
func (f AddForm) Validate() error {
	for _, field := range f.fields {
		if field.validate == nil {
			continue
		}
		if err := field.validate(field.input.Value()); err != nil {
			return fmt.Errorf("%s %w", strings.ToLower(field.label), err)
		}
	}
	return nil
}

// Values returns the trimmed field values by key.
func (f AddForm) Values() map[string]string {
	values := make(map[string]string, len(f.fields))
	for _, field := range f.fields {
		values[field.key] = strings.TrimSpace(field.input.Value())
	}
	return values
}

// Kind returns what the form creates.
func (f AddForm) Kind() FormKind {
	return f.kind
}

// Err returns the last validation error.
func (f AddForm) Err() error {
	return f.err
}

// View renders the form.
func (f AddForm) View() string {
	var b strings.Builder
	b.WriteString(f.theme.Title.Render("New " + f.kind.String()))
	b.WriteString("\n\n")
	for i, field := range f.fields {
		label := f.theme.Label.Render(field.label)
		if i == f.focus {
			label = f.theme.Label.Bold(true).Foreground(f.theme.Primary).Render(field.label)
		}
		b.WriteString(label)
		b.WriteString(field.input.View())
		b.WriteString("\n")
	}
	if f.err != nil {
		b.WriteString("\n")
		b.WriteString(f.theme.StatusError.Render(f.err.Error()))
	}
	b.WriteString("\n")
	b.WriteString(f.theme.Subtitle.Render("tab next • enter save • esc cancel"))
	return b.String()
}
