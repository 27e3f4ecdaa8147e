package sectioned

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultDebounceDelay is the quiet period before a search is applied.
const DefaultDebounceDelay = 500 * time.Millisecond

var debouncerIDs atomic.Uint64

// DebounceMsg is delivered on the event loop when a scheduled wait expires.
type DebounceMsg struct {
	owner uint64
	seq   uint64
}

// Debouncer coalesces bursts of Schedule calls into a single invocation of
// the most recently scheduled function. It is driven entirely by the Bubble
// Tea event loop and must only be used from it.
type Debouncer struct {
	pending func()
	id      uint64
	seq     uint64
}

// NewDebouncer creates a debouncer with a unique owner id.
func NewDebouncer() *Debouncer {
	return &Debouncer{id: debouncerIDs.Add(1)}
}

// Schedule arms fn to run after delay. Any earlier pending invocation is
// superseded. The returned command must be handed to the runtime.
func (d *Debouncer) Schedule(delay time.Duration, fn func()) tea.Cmd {
	d.seq++
	d.pending = fn

	msg := DebounceMsg{owner: d.id, seq: d.seq}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return msg
	})
}

// Owns reports whether msg was produced by this debouncer.
func (d *Debouncer) Owns(msg DebounceMsg) bool {
	return msg.owner == d.id
}

// Handle runs the pending function if msg belongs to the latest schedule.
// Stale and foreign messages are ignored.
func (d *Debouncer) Handle(msg DebounceMsg) bool {
	if msg.owner != d.id || msg.seq != d.seq || d.pending == nil {
		return false
	}
	fn := d.pending
	d.pending = nil
	fn()
	return true
}

// Cancel drops the pending invocation, if any. Messages already in flight
// become stale.
func (d *Debouncer) Cancel() {
	d.pending = nil
	d.seq++
}

// Pending reports whether an invocation is armed.
func (d *Debouncer) Pending() bool {
	return d.pending != nil
}
