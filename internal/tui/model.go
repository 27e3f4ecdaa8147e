// Package tui is the terminal browser over a ledger: three searchable,
// sectioned lists with detail screens, add forms and pickers.
package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Veraticus/financer/internal/common"
	"github.com/Veraticus/financer/internal/grouping"
	"github.com/Veraticus/financer/internal/ledger"
	"github.com/Veraticus/financer/internal/model"
	"github.com/Veraticus/financer/internal/palette"
	"github.com/Veraticus/financer/internal/sectioned"
	"github.com/Veraticus/financer/internal/tui/components"
	"github.com/Veraticus/financer/internal/tui/themes"
	"github.com/Veraticus/financer/internal/tui/viewmodel"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Tab is one of the browsable lists.
type Tab int

// Tabs in display order.
const (
	TabTransactions Tab = iota
	TabCategories
	TabPeople
	tabCount
)

// String returns the tab title.
func (t Tab) String() string {
	switch t {
	case TabTransactions:
		return "Transactions"
	case TabCategories:
		return "Categories"
	case TabPeople:
		return "People"
	default:
		return fmt.Sprintf("Tab(%d)", int(t))
	}
}

// Screen is what occupies the main area.
type Screen int

// Screens.
const (
	ScreenList Screen = iota
	ScreenDetail
	ScreenAdd
)

type picker int

const (
	pickNone picker = iota
	pickCategory
	pickPerson
)

// manualAccount is the account of transactions added by hand.
const manualAccount = "manual"

// Model holds the main TUI state. It is used through a pointer because the
// list controllers call back into it.
type Model struct {
	book         *ledger.Book
	now          func() time.Time
	transactions *components.SectionedList[model.Transaction]
	categories   *components.SectionedList[model.Category]
	people       *components.SectionedList[model.Person]
	theme        themes.Theme
	editing      model.Transaction
	status       string
	help         help.Model
	form         components.AddForm
	detail       components.Detail
	keymap       KeyMap
	width        int
	height       int
	tab          Tab
	returnTab    Tab
	detailTab    Tab
	screen       Screen
	picking      picker
	statusErr    bool
	quitting     bool
}

// New creates the TUI model over book.
func New(book ledger.Book, opts ...Option) *Model {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	m := &Model{
		book:   &book,
		now:    cfg.Now,
		theme:  cfg.Theme,
		keymap: DefaultKeyMap(),
		help:   help.New(),
	}

	shared := grouping.Options{Matcher: cfg.Matcher, Delay: cfg.Debounce, Keywords: cfg.Keywords}
	placeholder := func(name, withKeywords string) string {
		if cfg.Keywords {
			return withKeywords
		}
		return name
	}

	txCtrl := sectioned.NewController(grouping.TransactionConfig(shared))
	txCtrl.SetNavigator(sectioned.NavigatorFunc[model.Transaction](m.navigateTransaction))
	m.transactions = components.NewSectionedList(txCtrl, components.ListOptions[model.Transaction]{
		Theme:       cfg.Theme,
		Render:      components.TransactionCell(cfg.Theme),
		Label:       grouping.SectionLabel,
		Keys:        m.keymap.List,
		Title:       TabTransactions.String(),
		Placeholder: placeholder("merchant", "merchant, category or note"),
	})

	catCtrl := sectioned.NewController(grouping.CategoryConfig(shared))
	catCtrl.SetNavigator(sectioned.NavigatorFunc[model.Category](m.navigateCategory))
	m.categories = components.NewSectionedList(catCtrl, components.ListOptions[model.Category]{
		Theme:       cfg.Theme,
		Render:      components.CategoryCell(cfg.Theme),
		Keys:        m.keymap.List,
		Title:       TabCategories.String(),
		Placeholder: placeholder("name", "name or description"),
	})

	personCtrl := sectioned.NewController(grouping.PersonConfig(shared))
	personCtrl.SetNavigator(sectioned.NavigatorFunc[model.Person](m.navigatePerson))
	m.people = components.NewSectionedList(personCtrl, components.ListOptions[model.Person]{
		Theme:       cfg.Theme,
		Render:      components.PersonCell(cfg.Theme),
		Keys:        m.keymap.List,
		Title:       TabPeople.String(),
		Placeholder: placeholder("name", "name, email or note"),
	})

	txCtrl.SetItems(m.book.Transactions)
	catCtrl.SetItems(m.book.Categories)
	personCtrl.SetItems(m.book.People)
	m.resize(cfg.Width, cfg.Height)
	return m
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case sectioned.DebounceMsg:
		// Each list only acts on its own debounce.
		m.transactions.Update(msg)
		m.categories.Update(msg)
		m.people.Update(msg)

	case components.FormSubmittedMsg:
		m.applyForm(msg)

	case components.FormCancelledMsg:
		m.screen = ScreenList
		m.setStatus("discarded new " + msg.Kind.String())

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keymap.ForceQuit) {
		return m.quit()
	}

	switch m.screen {
	case ScreenAdd:
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return cmd
	case ScreenDetail:
		return m.handleDetailKey(msg)
	default:
		return m.handleListKey(msg)
	}
}

func (m *Model) handleListKey(msg tea.KeyMsg) tea.Cmd {
	if m.activeSearching() {
		return m.updateActiveList(msg)
	}

	switch {
	case m.picking != pickNone && key.Matches(msg, m.keymap.Back):
		m.cancelPick()
		return nil
	case key.Matches(msg, m.keymap.Quit):
		return m.quit()
	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil
	case key.Matches(msg, m.keymap.NextTab):
		m.switchTab(1)
		return nil
	case key.Matches(msg, m.keymap.PrevTab):
		m.switchTab(-1)
		return nil
	}
	return m.updateActiveList(msg)
}

func (m *Model) handleDetailKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keymap.Back):
		m.screen = ScreenList
	case key.Matches(msg, m.keymap.Quit):
		return m.quit()
	case m.detailTab == TabTransactions && key.Matches(msg, m.keymap.PickCategory):
		m.startPick(pickCategory)
	case m.detailTab == TabTransactions && key.Matches(msg, m.keymap.PickPerson):
		m.startPick(pickPerson)
	}
	return nil
}

func (m *Model) updateActiveList(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.tab {
	case TabCategories:
		_, cmd = m.categories.Update(msg)
	case TabPeople:
		_, cmd = m.people.Update(msg)
	default:
		_, cmd = m.transactions.Update(msg)
	}
	return cmd
}

func (m *Model) activeSearching() bool {
	switch m.tab {
	case TabCategories:
		return m.categories.Searching()
	case TabPeople:
		return m.people.Searching()
	default:
		return m.transactions.Searching()
	}
}

// switchTab cycles the lists. Tabs are pinned while a picker is open.
func (m *Model) switchTab(delta int) {
	if m.picking != pickNone {
		return
	}
	m.tab = (m.tab + Tab(delta) + tabCount) % tabCount
}

func (m *Model) navigateTransaction(route string, tx model.Transaction) {
	switch route {
	case sectioned.RouteExisting:
		m.showTransaction(tx)
	case sectioned.RouteNew:
		m.openForm(components.FormTransaction)
	}
}

func (m *Model) navigateCategory(route string, c model.Category) {
	switch route {
	case sectioned.RouteExisting:
		count, total := m.totals(func(tx model.Transaction) bool { return tx.Category == c.Name })
		m.showDetail(TabCategories, components.CategoryDetailView(c, count, total))
	case sectioned.RouteNew:
		m.openForm(components.FormCategory)
	}
}

func (m *Model) navigatePerson(route string, p model.Person) {
	switch route {
	case sectioned.RouteExisting:
		count, total := m.totals(func(tx model.Transaction) bool { return tx.PersonID == p.ID })
		m.showDetail(TabPeople, components.PersonDetailView(p, count, total))
	case sectioned.RouteNew:
		m.openForm(components.FormPerson)
	}
}

func (m *Model) showTransaction(tx model.Transaction) {
	m.editing = tx

	var category *model.Category
	if c, ok := m.book.Category(tx.Category); ok {
		category = &c
	}
	var person *model.Person
	if p, ok := m.book.Person(tx.PersonID); ok {
		person = &p
	}
	m.showDetail(TabTransactions, components.TransactionDetailView(tx, category, person))
}

func (m *Model) showDetail(tab Tab, view viewmodel.DetailView) {
	m.detailTab = tab
	m.detail = components.NewDetail(view, m.theme)
	m.detail.SetWidth(m.width)
	m.screen = ScreenDetail
}

func (m *Model) totals(match func(model.Transaction) bool) (int, decimal.Decimal) {
	count := 0
	total := decimal.Zero
	for _, tx := range m.book.Transactions {
		if match(tx) {
			count++
			total = total.Add(tx.Amount)
		}
	}
	return count, total
}

// startPick opens the category or people list in consumer mode. The next
// selection is assigned to the transaction being edited.
func (m *Model) startPick(p picker) {
	m.picking = p
	m.returnTab = m.tab
	m.screen = ScreenList

	switch p {
	case pickCategory:
		m.tab = TabCategories
		m.categories.Controller().SetSelectionCallback(m.assignCategory)
		m.setStatus("choose a category for " + m.editing.DisplayName())
	case pickPerson:
		m.tab = TabPeople
		m.people.Controller().SetSelectionCallback(m.assignPerson)
		m.setStatus("choose who shares " + m.editing.DisplayName())
	}
}

func (m *Model) assignCategory(c model.Category) {
	tx := m.editing
	tx.Category = c.Name
	m.finishPick()
	m.updateTransaction(tx)
	m.setStatus(fmt.Sprintf("%s is now %s", tx.DisplayName(), c.Name))
}

func (m *Model) assignPerson(p model.Person) {
	tx := m.editing
	tx.PersonID = p.ID
	m.finishPick()
	m.updateTransaction(tx)
	m.setStatus(fmt.Sprintf("%s is shared with %s", tx.DisplayName(), p.Name))
}

func (m *Model) cancelPick() {
	m.finishPick()
	m.screen = ScreenDetail
	m.setStatus("")
}

func (m *Model) finishPick() {
	m.categories.Controller().SetSelectionCallback(nil)
	m.people.Controller().SetSelectionCallback(nil)
	m.picking = pickNone
	m.tab = m.returnTab
}

func (m *Model) updateTransaction(tx model.Transaction) {
	if !m.book.UpdateTransaction(tx) {
		m.setError(fmt.Errorf("%w: transaction %s", common.ErrNotFound, tx.ID))
		return
	}
	m.transactions.Controller().SetItems(m.book.Transactions)
	m.showTransaction(tx)
}

func (m *Model) openForm(kind components.FormKind) {
	m.form = components.NewAddForm(kind, m.theme)
	m.screen = ScreenAdd
}

func (m *Model) applyForm(msg components.FormSubmittedMsg) {
	m.screen = ScreenList
	name := msg.Values[components.FieldName]

	switch msg.Kind {
	case components.FormTransaction:
		amount, err := decimal.NewFromString(msg.Values[components.FieldAmount])
		if err != nil {
			m.setError(fmt.Errorf("invalid amount: %w", err))
			return
		}
		m.book.AddTransaction(model.Transaction{
			ID:           uuid.NewString(),
			Date:         m.now(),
			Name:         name,
			MerchantName: name,
			Amount:       amount,
			AccountID:    manualAccount,
		})
		m.transactions.Controller().SetItems(m.book.Transactions)

	case components.FormCategory:
		c := model.Category{
			ID:          uuid.NewString(),
			Name:        name,
			Description: msg.Values[components.FieldDescription],
			Type:        model.CategoryTypeExpense,
			IsActive:    true,
			CreatedAt:   m.now(),
		}
		if hex := msg.Values[components.FieldColor]; hex != "" {
			packed, err := palette.PackedFromHex(hex)
			if err != nil {
				m.setError(err)
				return
			}
			c.Color = packed
		}
		if !m.book.AddCategory(c) {
			m.setError(fmt.Errorf("%w: category %q", common.ErrDuplicateEntry, name))
			return
		}
		m.categories.Controller().SetItems(m.book.Categories)

	case components.FormPerson:
		p := model.Person{ID: uuid.NewString(), Name: name, Email: msg.Values[components.FieldEmail]}
		if !m.book.AddPerson(p) {
			m.setError(fmt.Errorf("%w: person %q", common.ErrDuplicateEntry, name))
			return
		}
		m.people.Controller().SetItems(m.book.People)
	}

	slog.Debug("added item", "kind", msg.Kind.String(), "name", name)
	m.setStatus(fmt.Sprintf("added %s %s", msg.Kind, name))
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(err error) {
	slog.Warn("TUI action failed", "error", err)
	m.status = strings.TrimSpace(common.UserMessage(err))
	m.statusErr = true
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width

	listHeight := max(height-4, 1)
	m.transactions.SetSize(width, listHeight)
	m.categories.SetSize(width, listHeight)
	m.people.SetSize(width, listHeight)
	m.detail.SetWidth(width)
}

func (m *Model) quit() tea.Cmd {
	m.quitting = true
	m.Close()
	return tea.Quit
}

// Close tears down every list controller. Pending searches are dropped.
func (m *Model) Close() {
	m.transactions.Close()
	m.categories.Close()
	m.people.Close()
}

// Book returns the in-memory ledger including edits.
func (m *Model) Book() ledger.Book {
	return *m.book
}

// ActiveTab returns the visible list.
func (m *Model) ActiveTab() Tab {
	return m.tab
}

// CurrentScreen returns what occupies the main area.
func (m *Model) CurrentScreen() Screen {
	return m.screen
}

// Picking reports whether a list is open as a picker.
func (m *Model) Picking() bool {
	return m.picking != pickNone
}

// Status returns the status line text and whether it reports an error.
func (m *Model) Status() (string, bool) {
	return m.status, m.statusErr
}
