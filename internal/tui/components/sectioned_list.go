package components

import (
	"fmt"
	"strings"

	"github.com/Veraticus/financer/internal/sectioned"
	"github.com/Veraticus/financer/internal/tui/themes"
	"github.com/Veraticus/financer/internal/tui/viewmodel"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// CellRenderer draws one row of a sectioned list in at most width columns.
type CellRenderer[T any] func(item T, width int) string

// ListOptions configures a SectionedList.
type ListOptions[T any] struct {
	Theme       themes.Theme
	Render      CellRenderer[T]
	Label       func(key string) string
	Keys        ListKeyMap
	Title       string
	Placeholder string
}

// chrome is the number of lines around the rows: title, search, footer.
const chrome = 3

// SectionedList draws the store of a sectioned controller and turns key
// presses into controller calls. It is the controller's Renderer.
type SectionedList[T any] struct {
	ctrl       *sectioned.Controller[string, T]
	opts       ListOptions[T]
	search     textinput.Model
	cursor     viewmodel.Position
	offset     int
	width      int
	height     int
	reloads    int
	searching  bool
	addEnabled bool
}

// NewSectionedList creates a list over ctrl and registers itself as the
// controller's renderer.
func NewSectionedList[T any](ctrl *sectioned.Controller[string, T], opts ListOptions[T]) *SectionedList[T] {
	if opts.Label == nil {
		opts.Label = func(key string) string { return key }
	}
	if opts.Render == nil {
		opts.Render = func(item T, _ int) string { return fmt.Sprint(item) }
	}

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = opts.Placeholder
	search.CharLimit = 64
	search.Cursor.SetMode(cursor.CursorStatic)

	l := &SectionedList[T]{
		ctrl:       ctrl,
		opts:       opts,
		search:     search,
		width:      80,
		height:     24,
		addEnabled: ctrl.AddEnabled(),
	}
	ctrl.SetRenderer(l)
	return l
}

// ReloadAll redraws from the controller's current store.
func (l *SectionedList[T]) ReloadAll() {
	l.reloads++
	l.cursor = viewmodel.ClampCursor(l.counts(), l.cursor)
	l.scroll()
}

// SetAddEnabled toggles the add hint in the footer.
func (l *SectionedList[T]) SetAddEnabled(enabled bool) {
	l.addEnabled = enabled
}

// Update handles key presses, window sizes and debounce expiries.
func (l *SectionedList[T]) Update(msg tea.Msg) (*SectionedList[T], tea.Cmd) {
	switch msg := msg.(type) {
	case sectioned.DebounceMsg:
		l.ctrl.HandleDebounce(msg)

	case tea.WindowSizeMsg:
		l.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		if l.searching {
			return l, l.updateSearch(msg)
		}
		return l, l.handleKey(msg)
	}
	return l, nil
}

func (l *SectionedList[T]) updateSearch(msg tea.KeyMsg) tea.Cmd {
	keys := l.opts.Keys
	switch {
	case key.Matches(msg, keys.CancelSearch):
		l.stopSearch()
		l.search.SetValue("")
		l.ctrl.SetFilter("")
		return nil

	case key.Matches(msg, keys.AcceptSearch):
		l.stopSearch()
		l.ctrl.SetFilter(l.search.Value())
		return nil
	}

	before := l.search.Value()
	var cmd tea.Cmd
	l.search, cmd = l.search.Update(msg)
	if l.search.Value() == before {
		return cmd
	}
	return tea.Batch(cmd, l.ctrl.OnSearchTextChanged(l.search.Value()))
}

func (l *SectionedList[T]) handleKey(msg tea.KeyMsg) tea.Cmd {
	keys := l.opts.Keys
	switch {
	case key.Matches(msg, keys.Up):
		l.move(-1)
	case key.Matches(msg, keys.Down):
		l.move(1)
	case key.Matches(msg, keys.PageUp):
		l.move(-l.bodyHeight())
	case key.Matches(msg, keys.PageDown):
		l.move(l.bodyHeight())
	case key.Matches(msg, keys.Home):
		l.cursor = viewmodel.Position{}
		l.scroll()
	case key.Matches(msg, keys.End):
		l.move(l.ctrl.Store().Len())
	case key.Matches(msg, keys.Select):
		l.ctrl.SelectRow(l.cursor.Section, l.cursor.Row)
	case key.Matches(msg, keys.Add):
		l.ctrl.RequestAdd()
	case key.Matches(msg, keys.Search):
		l.searching = true
		return l.search.Focus()
	}
	return nil
}

func (l *SectionedList[T]) stopSearch() {
	l.searching = false
	l.search.Blur()
}

func (l *SectionedList[T]) move(delta int) {
	l.cursor = viewmodel.MoveCursor(l.counts(), l.cursor, delta)
	l.scroll()
}

func (l *SectionedList[T]) scroll() {
	l.offset = viewmodel.ScrollTo(l.offset, l.counts(), l.cursor, l.bodyHeight())
}

func (l *SectionedList[T]) counts() []int {
	store := l.ctrl.Store()
	counts := make([]int, store.SectionCount())
	for i := range counts {
		counts[i] = store.RowCount(i)
	}
	return counts
}

func (l *SectionedList[T]) bodyHeight() int {
	return max(l.height-chrome, 1)
}

// SetSize sets the area the list may draw in.
func (l *SectionedList[T]) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.search.Width = max(width-len(l.search.Prompt)-1, 1)
	l.scroll()
}

// Controller returns the controller the list draws.
func (l *SectionedList[T]) Controller() *sectioned.Controller[string, T] {
	return l.ctrl
}

// Cursor returns the highlighted position.
func (l *SectionedList[T]) Cursor() viewmodel.Position {
	return l.cursor
}

// Current returns the highlighted item.
func (l *SectionedList[T]) Current() (T, bool) {
	return l.ctrl.Store().ItemAt(l.cursor.Section, l.cursor.Row)
}

// Searching reports whether the search field has focus.
func (l *SectionedList[T]) Searching() bool {
	return l.searching
}

// AddEnabled reports whether the add hint is shown as available.
func (l *SectionedList[T]) AddEnabled() bool {
	return l.addEnabled
}

// Reloads returns how many times the controller asked for a redraw.
func (l *SectionedList[T]) Reloads() int {
	return l.reloads
}

// Close tears down the controller.
func (l *SectionedList[T]) Close() {
	l.stopSearch()
	l.ctrl.Close()
}

// ViewModel projects the controller's store for rendering.
func (l *SectionedList[T]) ViewModel() viewmodel.SectionedListView {
	store := l.ctrl.Store()
	v := viewmodel.SectionedListView{
		Title:       l.opts.Title,
		SearchQuery: l.ctrl.FilterText(),
		Cursor:      l.cursor,
		Total:       len(l.ctrl.Items()),
		Shown:       store.Len(),
		Searching:   l.searching,
		AddEnabled:  l.addEnabled,
	}

	cellWidth := max(l.width-2, 1)
	for _, sec := range store.Sections() {
		sv := viewmodel.SectionView{
			Label: l.opts.Label(sec.Key),
			Rows:  make([]string, 0, len(sec.Items)),
		}
		for _, item := range sec.Items {
			sv.Rows = append(sv.Rows, l.opts.Render(item, cellWidth))
		}
		v.Sections = append(v.Sections, sv)
	}
	return v
}

// View renders the list.
func (l *SectionedList[T]) View() string {
	v := l.ViewModel()
	theme := l.opts.Theme

	var b strings.Builder
	b.WriteString(theme.Title.Render(v.Title))
	b.WriteString("  ")
	if v.IsFiltered() {
		b.WriteString(theme.Subtitle.Render(fmt.Sprintf("%d of %s", v.Shown, viewmodel.Pluralize(v.Total, "item"))))
	} else {
		b.WriteString(theme.Subtitle.Render(viewmodel.Pluralize(v.Total, "item")))
	}
	b.WriteString("\n")

	if v.Searching || v.SearchQuery != "" {
		b.WriteString(l.search.View())
	} else {
		b.WriteString(theme.Subtitle.Render("press / to search"))
	}
	b.WriteString("\n")

	lines := l.renderLines(v)
	height := l.bodyHeight()
	end := min(l.offset+height, len(lines))
	for i := l.offset; i < end; i++ {
		b.WriteString(lines[i])
		b.WriteString("\n")
	}
	for i := end - l.offset; i < height; i++ {
		b.WriteString("\n")
	}

	hint := "a add"
	if v.AddEnabled {
		b.WriteString(theme.Normal.Render(hint))
	} else {
		b.WriteString(theme.Disabled.Render(hint))
	}
	return b.String()
}

func (l *SectionedList[T]) renderLines(v viewmodel.SectionedListView) []string {
	theme := l.opts.Theme
	if v.IsEmpty() {
		msg := "Nothing here yet"
		if v.SearchQuery != "" {
			msg = fmt.Sprintf("No matches for %q", v.SearchQuery)
		}
		return []string{theme.Subtitle.Render(msg)}
	}

	lines := make([]string, 0, viewmodel.LineCount(l.counts()))
	for s, sec := range v.Sections {
		lines = append(lines, theme.SectionHeader.Render(sec.Label))
		for r, row := range sec.Rows {
			if s == v.Cursor.Section && r == v.Cursor.Row {
				lines = append(lines, theme.Selected.Render("▸ "+row))
				continue
			}
			lines = append(lines, "  "+row)
		}
	}
	return lines
}
