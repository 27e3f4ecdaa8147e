package tui

import (
	"github.com/Veraticus/financer/internal/tui/components"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	List components.ListKeyMap

	NextTab      key.Binding
	PrevTab      key.Binding
	PickCategory key.Binding
	PickPerson   key.Binding
	Back         key.Binding
	Help         key.Binding
	Quit         key.Binding
	ForceQuit    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		List: components.DefaultListKeyMap(),

		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "next list"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("Shift+Tab", "previous list"),
		),
		PickCategory: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "pick category"),
		),
		PickPerson: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pick person"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("Esc", "back"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("Ctrl+C", "force quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.List.Search, k.List.Select, k.List.Add, k.NextTab, k.Help, k.Quit}
}

// FullHelp returns all key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.List.Up, k.List.Down, k.List.PageUp, k.List.PageDown},
		{k.List.Home, k.List.End, k.List.Select, k.List.Add},
		{k.List.Search, k.List.AcceptSearch, k.List.CancelSearch},
		{k.NextTab, k.PrevTab, k.PickCategory, k.PickPerson},
		{k.Back, k.Help, k.Quit, k.ForceQuit},
	}
}
