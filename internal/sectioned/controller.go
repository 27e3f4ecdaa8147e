package sectioned

import (
	"log/slog"
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Navigation routes handed to a Navigator.
const (
	// RouteExisting opens the detail screen of an existing item.
	RouteExisting = "Old"
	// RouteNew opens the screen for creating an item. The item is the zero value.
	RouteNew = "New"
)

// Renderer is the visual list that draws a controller's store.
type Renderer interface {
	// ReloadAll is called after every store replacement.
	ReloadAll()
	// SetAddEnabled toggles the "add new item" affordance.
	SetAddEnabled(enabled bool)
}

// Navigator performs default navigation for selected items.
type Navigator[T any] interface {
	Navigate(route string, item T)
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc[T any] func(route string, item T)

// Navigate calls f(route, item).
func (f NavigatorFunc[T]) Navigate(route string, item T) {
	f(route, item)
}

// SelectionMode decides what a row selection does. It is either Consumer or
// DefaultNavigation.
type SelectionMode[T any] interface {
	selectionMode()
}

// Consumer hands every selected item to Fn instead of navigating.
type Consumer[T any] struct {
	Fn func(T)
}

// DefaultNavigation navigates to the detail route of the selected item.
type DefaultNavigation[T any] struct{}

func (Consumer[T]) selectionMode()          {}
func (DefaultNavigation[T]) selectionMode() {}

// Config binds an item type to its grouping, search and collaborators.
type Config[K comparable, T any] struct {
	Renderer    Renderer
	Navigator   Navigator[T]
	Matcher     Matcher
	DisplayText func(T) string
	// Keywords returns additional searchable text. Optional; when nil only
	// DisplayText is matched.
	Keywords func(T) []string
	Policy   Policy[K, T]
	// Delay is the debounce quiet period. Zero selects DefaultDebounceDelay.
	Delay time.Duration
}

// Controller owns the grouped store for one list, its filter text, its
// selection slot and its selection mode. It is not safe for concurrent use;
// every method must be called from the event loop.
type Controller[K comparable, T any] struct {
	selected        T
	mode            SelectionMode[T]
	store           *Store[K, T]
	debouncer       *Debouncer
	filter          string
	builtFilter     string
	items           []T
	cfg             Config[K, T]
	generation      uint64
	builtGeneration uint64
	hasSelection    bool
	addEnabled      bool
	closed          bool
}

// NewController creates a controller with an empty store in navigation mode.
func NewController[K comparable, T any](cfg Config[K, T]) *Controller[K, T] {
	if cfg.Matcher == nil {
		cfg.Matcher = SubstringMatcher
	}
	if cfg.Delay <= 0 {
		cfg.Delay = DefaultDebounceDelay
	}
	return &Controller[K, T]{
		cfg:        cfg,
		store:      Build[K, T](nil, cfg.Policy),
		mode:       DefaultNavigation[T]{},
		addEnabled: true,
		debouncer:  NewDebouncer(),
	}
}

// SetRenderer attaches the visual list. It is separate from Config because
// the renderer usually embeds the controller.
func (c *Controller[K, T]) SetRenderer(r Renderer) {
	c.cfg.Renderer = r
}

// SetNavigator attaches the default navigation target.
func (c *Controller[K, T]) SetNavigator(n Navigator[T]) {
	c.cfg.Navigator = n
}

// SetItems replaces the superset of items and recomputes immediately.
// It reports whether the store was replaced.
func (c *Controller[K, T]) SetItems(items []T) bool {
	c.items = slices.Clone(items)
	c.generation++
	return c.Refresh()
}

// Items returns the current superset. Callers must not modify it.
func (c *Controller[K, T]) Items() []T {
	return c.items
}

// OnSearchTextChanged records the filter text and arms the debouncer. The
// store is recomputed only when the returned command's message is handed to
// HandleDebounce after the quiet period.
func (c *Controller[K, T]) OnSearchTextChanged(text string) tea.Cmd {
	if c.closed {
		return nil
	}
	c.filter = text
	return c.debouncer.Schedule(c.cfg.Delay, func() {
		c.Refresh()
	})
}

// HandleDebounce delivers a debounce expiry. It reports whether the message
// belonged to the latest schedule of this controller.
func (c *Controller[K, T]) HandleDebounce(msg DebounceMsg) bool {
	if c.closed {
		return false
	}
	return c.debouncer.Handle(msg)
}

// OwnsDebounce reports whether msg was produced by this controller.
func (c *Controller[K, T]) OwnsDebounce(msg DebounceMsg) bool {
	return c.debouncer.Owns(msg)
}

// SetFilter applies text immediately, dropping any pending debounced search.
// It reports whether the store was replaced.
func (c *Controller[K, T]) SetFilter(text string) bool {
	c.debouncer.Cancel()
	c.filter = text
	return c.Refresh()
}

// FilterText returns the current filter text.
func (c *Controller[K, T]) FilterText() string {
	return c.filter
}

// Refresh recomputes the store from the superset and the filter text. When
// neither changed since the current store was built the store is kept and
// the renderer is not reloaded. It reports whether the store was replaced.
func (c *Controller[K, T]) Refresh() bool {
	if c.closed {
		return false
	}
	if c.builtGeneration == c.generation && c.builtFilter == c.filter {
		return false
	}

	c.store = Build(c.filtered(), c.cfg.Policy)
	c.builtGeneration = c.generation
	c.builtFilter = c.filter

	slog.Debug("rebuilt sectioned store",
		"filter", c.filter,
		"sections", c.store.SectionCount(),
		"items", c.store.Len(),
		"total", len(c.items))

	if c.cfg.Renderer != nil {
		c.cfg.Renderer.ReloadAll()
	}
	return true
}

// filtered matches the filter text as typed. Only the empty string disables
// filtering; whitespace is matched like any other text.
func (c *Controller[K, T]) filtered() []T {
	query := c.filter
	if query == "" {
		return c.items
	}

	matched := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if c.matches(item, query) {
			matched = append(matched, item)
		}
	}
	return matched
}

func (c *Controller[K, T]) matches(item T, query string) bool {
	if c.cfg.DisplayText != nil && c.cfg.Matcher(c.cfg.DisplayText(item), query) {
		return true
	}
	if c.cfg.Keywords == nil {
		return false
	}
	for _, kw := range c.cfg.Keywords(item) {
		if kw != "" && c.cfg.Matcher(kw, query) {
			return true
		}
	}
	return false
}

// Store returns the current grouped store.
func (c *Controller[K, T]) Store() *Store[K, T] {
	return c.store
}

// SetSelectionMode switches between consumer and navigation mode. A nil mode
// or a Consumer without a function selects DefaultNavigation. Installing a
// consumer always counts as a change because functions cannot be compared.
// It reports whether the mode changed.
func (c *Controller[K, T]) SetSelectionMode(mode SelectionMode[T]) bool {
	if consumer, ok := mode.(Consumer[T]); ok && consumer.Fn == nil {
		mode = nil
	}
	if mode == nil {
		mode = DefaultNavigation[T]{}
	}

	_, wasNavigating := c.mode.(DefaultNavigation[T])
	_, navigating := mode.(DefaultNavigation[T])
	if wasNavigating && navigating {
		return false
	}

	c.mode = mode
	if c.addEnabled != navigating {
		c.addEnabled = navigating
		if c.cfg.Renderer != nil {
			c.cfg.Renderer.SetAddEnabled(navigating)
		}
	}
	return true
}

// SetSelectionCallback installs fn as the selection consumer, or restores
// default navigation when fn is nil.
func (c *Controller[K, T]) SetSelectionCallback(fn func(T)) bool {
	if fn == nil {
		return c.SetSelectionMode(DefaultNavigation[T]{})
	}
	return c.SetSelectionMode(Consumer[T]{Fn: fn})
}

// Mode returns the current selection mode.
func (c *Controller[K, T]) Mode() SelectionMode[T] {
	return c.mode
}

// AddEnabled reports whether the "add new item" affordance is enabled.
func (c *Controller[K, T]) AddEnabled() bool {
	return c.addEnabled
}

// SelectRow resolves the item at (section, row) and either hands it to the
// consumer or navigates to it. Out-of-range coordinates are ignored and
// leave the selection untouched. It reports whether an item was selected.
func (c *Controller[K, T]) SelectRow(section, row int) bool {
	if c.closed {
		return false
	}
	item, ok := c.store.ItemAt(section, row)
	if !ok {
		slog.Debug("ignoring selection outside store", "section", section, "row", row)
		return false
	}

	c.selected = item
	c.hasSelection = true

	switch mode := c.mode.(type) {
	case Consumer[T]:
		mode.Fn(item)
	case DefaultNavigation[T]:
		if c.cfg.Navigator != nil {
			c.cfg.Navigator.Navigate(RouteExisting, item)
		}
	}
	return true
}

// Selected returns the last selected item.
func (c *Controller[K, T]) Selected() (T, bool) {
	return c.selected, c.hasSelection
}

// RequestAdd navigates to RouteNew when the add affordance is enabled.
func (c *Controller[K, T]) RequestAdd() bool {
	if c.closed || !c.addEnabled || c.cfg.Navigator == nil {
		return false
	}
	var zero T
	c.cfg.Navigator.Navigate(RouteNew, zero)
	return true
}

// Close tears the controller down. Any pending debounced search is
// cancelled and later calls become no-ops.
func (c *Controller[K, T]) Close() {
	c.debouncer.Cancel()
	c.closed = true
}

// Closed reports whether Close has been called.
func (c *Controller[K, T]) Closed() bool {
	return c.closed
}
