package tui

import (
	"time"

	"github.com/Veraticus/financer/internal/sectioned"
	"github.com/Veraticus/financer/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Theme    themes.Theme
	Matcher  sectioned.Matcher
	Now      func() time.Time
	Debounce time.Duration
	Width    int
	Height   int
	Keywords bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:    themes.Default,
		Matcher:  sectioned.SubstringMatcher,
		Now:      time.Now,
		Debounce: sectioned.DefaultDebounceDelay,
		Width:    80,
		Height:   24,
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithMatcher sets how search text is matched against items.
func WithMatcher(matcher sectioned.Matcher) Option {
	return func(c *Config) {
		if matcher != nil {
			c.Matcher = matcher
		}
	}
}

// WithDebounce sets the quiet period before a search is applied.
func WithDebounce(d time.Duration) Option {
	return func(c *Config) {
		if d > 0 {
			c.Debounce = d
		}
	}
}

// WithClock sets the clock used to date new transactions.
func WithClock(now func() time.Time) Option {
	return func(c *Config) {
		if now != nil {
			c.Now = now
		}
	}
}

// WithKeywordSearch makes search also match secondary fields such as
// categories, notes and email addresses.
func WithKeywordSearch(enabled bool) Option {
	return func(c *Config) {
		c.Keywords = enabled
	}
}
