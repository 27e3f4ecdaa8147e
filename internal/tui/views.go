package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current state.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{m.tabsView(), m.screenView(), m.statusView(), m.help.View(m.keymap)}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) tabsView() string {
	tabs := make([]string, 0, tabCount)
	for t := TabTransactions; t < tabCount; t++ {
		if t == m.tab {
			tabs = append(tabs, m.theme.ActiveTab.Render(t.String()))
			continue
		}
		tabs = append(tabs, m.theme.Tab.Render(t.String()))
	}

	row := strings.Join(tabs, " ")
	if m.picking != pickNone {
		row += "  " + m.theme.Subtitle.Render("picking, esc to cancel")
	}
	return row
}

func (m *Model) screenView() string {
	switch m.screen {
	case ScreenDetail:
		return m.detail.View()
	case ScreenAdd:
		return m.form.View()
	}

	switch m.tab {
	case TabCategories:
		return m.categories.View()
	case TabPeople:
		return m.people.View()
	default:
		return m.transactions.View()
	}
}

func (m *Model) statusView() string {
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return m.theme.StatusError.Render(m.status)
	}
	return m.theme.StatusInfo.Render(m.status)
}
