package config

import (
	"fmt"
	"time"

	"github.com/Veraticus/financer/internal/common"
	"github.com/Veraticus/financer/internal/sectioned"
	"github.com/spf13/viper"
)

// Configuration keys.
const (
	KeyLogLevel       = "logging.level"
	KeyLogFormat      = "logging.format"
	KeyLogFile        = "logging.file"
	KeySearchDebounce = "search.debounce"
	KeySearchMode     = "search.mode"
	KeySearchKeywords = "search.keywords"
	KeyLedger         = "data.ledger"
	KeyOFX            = "data.ofx"
	KeyDemo           = "data.demo"
	KeyDemoCount      = "data.demo_count"
	KeyDemoSeed       = "data.demo_seed"
	KeyTheme          = "ui.theme"
)

// Settings is the validated application configuration.
type Settings struct {
	Logging LoggingSettings
	Data    DataSettings
	Search  SearchSettings
	UI      UISettings
}

// UISettings controls the terminal browser.
type UISettings struct {
	Theme string
}

// LoggingSettings controls the slog handler.
type LoggingSettings struct {
	Level  string
	Format string
	// File receives logs while the TUI owns the terminal. Empty discards them.
	File string
}

// SearchSettings controls list filtering.
type SearchSettings struct {
	Mode     string
	Debounce time.Duration
	// Keywords widens matching to secondary fields such as notes and email.
	Keywords bool
}

// DataSettings lists the read-only sources items are loaded from.
type DataSettings struct {
	Ledger    string
	OFX       []string
	DemoCount int
	DemoSeed  int64
	Demo      bool
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeySearchDebounce, sectioned.DefaultDebounceDelay)
	v.SetDefault(KeySearchMode, sectioned.MatchSubstring)
	v.SetDefault(KeySearchKeywords, false)
	v.SetDefault(KeyDemoCount, 60)
	v.SetDefault(KeyDemoSeed, 1)
	v.SetDefault(KeyTheme, "default")
}

// Load reads and validates the settings held by v.
func Load(v *viper.Viper) (Settings, error) {
	s := Settings{
		Logging: LoggingSettings{
			Level:  v.GetString(KeyLogLevel),
			Format: v.GetString(KeyLogFormat),
			File:   resolvePath(v.GetString(KeyLogFile)),
		},
		Search: SearchSettings{
			Debounce: v.GetDuration(KeySearchDebounce),
			Mode:     v.GetString(KeySearchMode),
			Keywords: v.GetBool(KeySearchKeywords),
		},
		Data: DataSettings{
			Ledger:    resolvePath(v.GetString(KeyLedger)),
			Demo:      v.GetBool(KeyDemo),
			DemoCount: v.GetInt(KeyDemoCount),
			DemoSeed:  v.GetInt64(KeyDemoSeed),
		},
		UI: UISettings{
			Theme: v.GetString(KeyTheme),
		},
	}
	s.Data.OFX = resolvePaths(v.GetStringSlice(KeyOFX))

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks the settings for values the application cannot use.
func (s Settings) Validate() error {
	if _, err := common.ParseLevel(s.Logging.Level); err != nil {
		return err
	}
	switch s.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: invalid log format: %s", common.ErrInvalidConfig, s.Logging.Format)
	}
	if s.Search.Debounce <= 0 {
		return fmt.Errorf("%w: search.debounce must be positive, got %s", common.ErrInvalidConfig, s.Search.Debounce)
	}
	if _, err := sectioned.MatcherFor(s.Search.Mode); err != nil {
		return fmt.Errorf("%w: %w", common.ErrInvalidConfig, err)
	}
	if err := validatePatterns(s.Data.OFX); err != nil {
		return err
	}
	if s.Data.DemoCount < 0 {
		return fmt.Errorf("%w: data.demo_count must not be negative", common.ErrInvalidConfig)
	}
	return nil
}

// HasSource reports whether any data source is configured.
func (d DataSettings) HasSource() bool {
	return d.Demo || d.Ledger != "" || len(d.OFX) > 0
}
