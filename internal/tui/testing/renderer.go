// Package testing provides test utilities for TUI components.
package testing

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Driver feeds messages to a model without a terminal. Every command the
// model returns is run and its messages are fed back, so timers such as
// search debounces complete within a single Send.
type Driver struct {
	Model tea.Model

	// Messages holds every message delivered to the model, in order.
	Messages []tea.Msg

	// Quit is set once the model asked the program to quit.
	Quit bool

	// UpdateCount tracks how many times Update was called.
	UpdateCount int
}

// NewDriver creates a driver for model.
func NewDriver(model tea.Model) *Driver {
	return &Driver{Model: model}
}

// Send delivers msgs in order, running the resulting commands to completion.
func (d *Driver) Send(msgs ...tea.Msg) *Driver {
	for _, msg := range msgs {
		d.deliver(msg)
	}
	return d
}

// Type sends one key press per rune of text.
func (d *Driver) Type(text string) *Driver {
	return d.Send(Typed(text)...)
}

func (d *Driver) deliver(msg tea.Msg) {
	if _, ok := msg.(tea.QuitMsg); ok {
		d.Quit = true
		return
	}
	d.Messages = append(d.Messages, msg)
	d.UpdateCount++

	var cmd tea.Cmd
	d.Model, cmd = d.Model.Update(msg)
	d.run(cmd)
}

func (d *Driver) run(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case nil:
	case tea.BatchMsg:
		for _, c := range msg {
			d.run(c)
		}
	default:
		d.deliver(msg)
	}
}

// View renders the model with ANSI codes removed.
func (d *Driver) View() string {
	return StripANSI(d.Model.View())
}

// Lines returns the rendered view split into lines.
func (d *Driver) Lines() []string {
	return strings.Split(d.View(), "\n")
}
