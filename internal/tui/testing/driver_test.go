package testing

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type tickMsg struct{}

type echoModel struct {
	keys  []string
	ticks int
}

func (m echoModel) Init() tea.Cmd { return nil }

func (m echoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.keys = append(m.keys, msg.String())
		switch msg.String() {
		case "t":
			return m, tea.Batch(
				tea.Tick(time.Millisecond, func(time.Time) tea.Msg { return tickMsg{} }),
				nil,
			)
		case "q":
			return m, tea.Quit
		}
	case tickMsg:
		m.ticks++
	}
	return m, nil
}

func (m echoModel) View() string {
	return "\x1b[1mticks\x1b[0m"
}

func TestDriver(t *testing.T) {
	d := NewDriver(echoModel{})

	d.Type("ab").Send(KeyEnter(), KeyPress("t"))

	got := d.Model.(echoModel)
	assert.Equal(t, []string{"a", "b", "enter", "t"}, got.keys)
	assert.Equal(t, 1, got.ticks)
	assert.Equal(t, 5, d.UpdateCount)
	assert.Equal(t, "ticks", d.View())
	assert.False(t, d.Quit)

	d.Send(KeyPress("q"))
	assert.True(t, d.Quit)
}

func TestContainsInOrder(t *testing.T) {
	assert.True(t, ContainsInOrder("A\nalpha\nB\nbeta", "A", "alpha", "B"))
	assert.False(t, ContainsInOrder("B\nA", "A", "B"))

	line, ok := LineContaining("one\ntwo words\nthree", "two")
	assert.True(t, ok)
	assert.Equal(t, "two words", line)
}
