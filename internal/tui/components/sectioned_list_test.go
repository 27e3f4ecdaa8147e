package components

import (
	"strings"
	"testing"
	"time"

	"github.com/Veraticus/financer/internal/grouping"
	"github.com/Veraticus/financer/internal/model"
	"github.com/Veraticus/financer/internal/sectioned"
	tuitest "github.com/Veraticus/financer/internal/tui/testing"
	"github.com/Veraticus/financer/internal/tui/themes"
	"github.com/Veraticus/financer/internal/tui/viewmodel"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type routed struct {
	route  string
	person model.Person
}

func newPeopleList(t *testing.T, people ...model.Person) (*SectionedList[model.Person], *[]routed) {
	t.Helper()
	return newPeopleListWith(t, grouping.Options{Delay: time.Millisecond}, people...)
}

func newPeopleListWith(t *testing.T, opts grouping.Options, people ...model.Person) (*SectionedList[model.Person], *[]routed) {
	t.Helper()
	ctrl := sectioned.NewController(grouping.PersonConfig(opts))
	routes := &[]routed{}
	ctrl.SetNavigator(sectioned.NavigatorFunc[model.Person](func(route string, p model.Person) {
		*routes = append(*routes, routed{route: route, person: p})
	}))

	l := NewSectionedList(ctrl, ListOptions[model.Person]{
		Theme:       themes.Default,
		Render:      PersonCell(themes.Default),
		Keys:        DefaultListKeyMap(),
		Title:       "People",
		Placeholder: "name or email",
	})
	l.SetSize(60, 20)
	ctrl.SetItems(people)
	return l, routes
}

// send delivers msg and runs the resulting commands, feeding debounce
// expiries back into the list.
func send(l *SectionedList[model.Person], msgs ...tea.Msg) {
	for _, msg := range msgs {
		_, cmd := l.Update(msg)
		drain(l, cmd)
	}
}

func drain(l *SectionedList[model.Person], cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			drain(l, c)
		}
	case sectioned.DebounceMsg:
		send(l, msg)
	}
}

var household = []model.Person{
	{ID: "1", Name: "Bob", Email: "bob@example.com"},
	{ID: "2", Name: "alice"},
	{ID: "3", Name: "Amir"},
	{ID: "4", Name: "Chloé"},
}

func TestSectionedList_RegistersAsRenderer(t *testing.T) {
	l, _ := newPeopleList(t, household...)

	assert.Equal(t, 1, l.Reloads())

	l.Controller().SetItems(household[:2])
	assert.Equal(t, 2, l.Reloads())

	l.Controller().Refresh()
	assert.Equal(t, 2, l.Reloads())
}

func TestSectionedList_View(t *testing.T) {
	l, _ := newPeopleList(t, household...)

	view := tuitest.StripANSI(l.View())

	assert.True(t, tuitest.ContainsInOrder(view, "People", "4 items", "press / to search", "A", "▸ alice", "Amir", "B", "Bob", "C", "Chloé", "a add"))
	assert.Len(t, strings.Split(view, "\n"), 20)
}

func TestSectionedList_ViewModel(t *testing.T) {
	l, _ := newPeopleList(t, household...)

	v := l.ViewModel()

	require.Len(t, v.Sections, 3)
	assert.Equal(t, "A", v.Sections[0].Label)
	assert.Len(t, v.Sections[0].Rows, 2)
	assert.Equal(t, 4, v.Total)
	assert.Equal(t, 4, v.Shown)
	assert.False(t, v.IsFiltered())
	assert.True(t, v.AddEnabled)
}

func TestSectionedList_Empty(t *testing.T) {
	l, _ := newPeopleList(t)

	assert.Contains(t, tuitest.StripANSI(l.View()), "Nothing here yet")

	send(l, tuitest.KeyEnter())
	_, ok := l.Controller().Selected()
	assert.False(t, ok)
}

func TestSectionedList_Navigation(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.Msg
		want viewmodel.Position
	}{
		{name: "start", want: viewmodel.Position{}},
		{name: "down within section", keys: []tea.Msg{tuitest.KeyDown()}, want: viewmodel.Position{Section: 0, Row: 1}},
		{name: "down across sections", keys: []tea.Msg{tuitest.KeyDown(), tuitest.KeyDown()}, want: viewmodel.Position{Section: 1, Row: 0}},
		{name: "vim keys", keys: []tea.Msg{tuitest.KeyPress("j"), tuitest.KeyPress("j"), tuitest.KeyPress("k")}, want: viewmodel.Position{Section: 0, Row: 1}},
		{name: "up at top stays", keys: []tea.Msg{tuitest.KeyUp()}, want: viewmodel.Position{}},
		{name: "end", keys: []tea.Msg{tuitest.KeyPress("G")}, want: viewmodel.Position{Section: 2, Row: 0}},
		{name: "home", keys: []tea.Msg{tuitest.KeyPress("G"), tuitest.KeyPress("g")}, want: viewmodel.Position{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, _ := newPeopleList(t, household...)
			send(l, tt.keys...)
			assert.Equal(t, tt.want, l.Cursor())
		})
	}
}

func TestSectionedList_SelectNavigates(t *testing.T) {
	l, routes := newPeopleList(t, household...)

	send(l, tuitest.KeyDown(), tuitest.KeyDown(), tuitest.KeyEnter())

	require.Len(t, *routes, 1)
	assert.Equal(t, sectioned.RouteExisting, (*routes)[0].route)
	assert.Equal(t, "Bob", (*routes)[0].person.Name)
	current, ok := l.Current()
	require.True(t, ok)
	assert.Equal(t, "Bob", current.Name)
}

func TestSectionedList_SelectConsumes(t *testing.T) {
	l, routes := newPeopleList(t, household...)
	var picked []string
	l.Controller().SetSelectionCallback(func(p model.Person) { picked = append(picked, p.Name) })

	send(l, tuitest.KeyEnter(), tuitest.KeyEnter())

	assert.Equal(t, []string{"alice", "alice"}, picked)
	assert.Empty(t, *routes)
}

func TestSectionedList_AddAffordance(t *testing.T) {
	l, routes := newPeopleList(t, household...)

	send(l, tuitest.KeyPress("a"))
	require.Len(t, *routes, 1)
	assert.Equal(t, sectioned.RouteNew, (*routes)[0].route)
	assert.Equal(t, model.Person{}, (*routes)[0].person)

	l.Controller().SetSelectionCallback(func(model.Person) {})
	assert.False(t, l.AddEnabled())
	assert.False(t, l.ViewModel().AddEnabled)

	send(l, tuitest.KeyPress("a"))
	assert.Len(t, *routes, 1)

	l.Controller().SetSelectionCallback(nil)
	assert.True(t, l.AddEnabled())
}

func TestSectionedList_SearchIsDebounced(t *testing.T) {
	l, _ := newPeopleList(t, household...)

	send(l, tuitest.KeyPress("/"))
	require.True(t, l.Searching())

	reloads := l.Reloads()
	_, cmd := l.Update(tuitest.KeyPress("a"))
	assert.Equal(t, "a", l.Controller().FilterText())
	assert.Equal(t, 4, l.Controller().Store().Len(), "store waits for the quiet period")
	assert.Equal(t, reloads, l.Reloads())

	drain(l, cmd)
	assert.Equal(t, reloads+1, l.Reloads())
	assert.Equal(t, 2, l.Controller().Store().Len(), "only names are matched")

	send(l, tuitest.Typed("l")...)
	v := l.ViewModel()
	assert.Equal(t, 1, v.Shown)
	assert.True(t, v.IsFiltered())
	assert.Contains(t, tuitest.StripANSI(l.View()), "1 of 4 items")
}

func TestSectionedList_SearchKeywords(t *testing.T) {
	tests := []struct {
		name string
		opts grouping.Options
		want int
	}{
		{name: "names only by default", opts: grouping.Options{Delay: time.Millisecond}, want: 0},
		{name: "email when enabled", opts: grouping.Options{Delay: time.Millisecond, Keywords: true}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, _ := newPeopleListWith(t, tt.opts, household...)

			send(l, tuitest.KeyPress("/"))
			send(l, tuitest.Typed("example")...)
			send(l, tuitest.KeyEnter())

			assert.False(t, l.Searching())
			assert.Equal(t, tt.want, l.Controller().Store().Len())
		})
	}
}

func TestSectionedList_SearchNoMatches(t *testing.T) {
	l, _ := newPeopleList(t, household...)

	send(l, tuitest.KeyPress("/"))
	send(l, tuitest.Typed("zz")...)

	assert.Contains(t, tuitest.StripANSI(l.View()), `No matches for "zz"`)
}

func TestSectionedList_CancelSearchRestores(t *testing.T) {
	l, _ := newPeopleList(t, household...)

	send(l, tuitest.KeyPress("/"))
	send(l, tuitest.Typed("bob")...)
	require.Equal(t, 1, l.Controller().Store().Len())

	send(l, tuitest.KeyEsc())

	assert.False(t, l.Searching())
	assert.Empty(t, l.Controller().FilterText())
	assert.Equal(t, 4, l.Controller().Store().Len())
}

func TestSectionedList_CursorClampedAfterFilter(t *testing.T) {
	l, _ := newPeopleList(t, household...)
	send(l, tuitest.KeyPress("G"))
	require.Equal(t, viewmodel.Position{Section: 2, Row: 0}, l.Cursor())

	l.Controller().SetFilter("bob")

	assert.Equal(t, viewmodel.Position{}, l.Cursor())
	current, ok := l.Current()
	require.True(t, ok)
	assert.Equal(t, "Bob", current.Name)
}

func TestSectionedList_Scrolls(t *testing.T) {
	var many []model.Person
	for _, name := range []string{"Ada", "Ben", "Cy", "Dee", "Eve", "Fay", "Gus", "Hal", "Ivy", "Jo"} {
		many = append(many, model.Person{ID: name, Name: name})
	}
	l, _ := newPeopleList(t, many...)
	l.SetSize(40, 8)

	send(l, tuitest.KeyPress("G"))

	view := tuitest.StripANSI(l.View())
	assert.Contains(t, view, "▸ Jo")
	assert.NotContains(t, view, "Ada")
}

func TestSectionedList_CloseDropsPendingSearch(t *testing.T) {
	l, _ := newPeopleList(t, household...)
	send(l, tuitest.KeyPress("/"))

	_, cmd := l.Update(tuitest.KeyPress("b"))
	l.Close()
	drain(l, cmd)

	assert.True(t, l.Controller().Closed())
	assert.False(t, l.Searching())
	assert.Equal(t, 4, l.Controller().Store().Len())
}
