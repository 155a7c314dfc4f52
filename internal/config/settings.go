package config

import (
	"fmt"
	"slices"
	"time"

	"github.com/Veraticus/paydece-ledger/internal/common"
	"github.com/Veraticus/paydece-ledger/internal/locale"
	"github.com/Veraticus/paydece-ledger/internal/mockdata"
	"github.com/Veraticus/paydece-ledger/internal/pager"
	"github.com/Veraticus/paydece-ledger/internal/storage"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

// Settings is the validated runtime configuration.
type Settings struct {
	Now             time.Time
	Location        *time.Location
	Language        language.Tag
	StorageDriver   string
	ExportDir       string
	LogLevel        string
	LogFormat       string
	LogFile         string
	Seed            uint64
	Count           int
	PageSize        int
	InitialDelay    time.Duration
	Delay           time.Duration
	ScrollThreshold int
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		Location:        time.Local,
		Language:        locale.DefaultLanguage,
		StorageDriver:   storage.DriverMemory,
		ExportDir:       ".",
		LogLevel:        "info",
		LogFormat:       "console",
		Seed:            mockdata.DefaultSeed,
		Count:           mockdata.DefaultCount,
		PageSize:        pager.DefaultPageSize,
		InitialDelay:    pager.DefaultInitialDelay,
		Delay:           pager.DefaultDelay,
		ScrollThreshold: pager.DefaultScrollThreshold,
	}
}

// SetDefaults registers every key with its default so env vars and
// config files can override them.
func SetDefaults(v *viper.Viper) {
	d := DefaultSettings()
	v.SetDefault("logging.level", d.LogLevel)
	v.SetDefault("logging.format", d.LogFormat)
	v.SetDefault("logging.file", "")
	v.SetDefault("display.timezone", "Local")
	v.SetDefault("display.language", d.Language.String())
	v.SetDefault("data.seed", d.Seed)
	v.SetDefault("data.count", d.Count)
	v.SetDefault("data.now", "")
	v.SetDefault("pagination.page_size", d.PageSize)
	v.SetDefault("pagination.initial_delay", d.InitialDelay)
	v.SetDefault("pagination.delay", d.Delay)
	v.SetDefault("pagination.scroll_threshold", d.ScrollThreshold)
	v.SetDefault("storage.driver", d.StorageDriver)
	v.SetDefault("export.dir", d.ExportDir)
}

// Load reads settings from v. Unset keys keep their defaults.
func Load(v *viper.Viper) (*Settings, error) {
	s := DefaultSettings()

	loc, err := locale.LoadLocation(v.GetString("display.timezone"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidConfig, err)
	}
	s.Location = loc

	tag, err := locale.ParseLanguage(v.GetString("display.language"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidConfig, err)
	}
	s.Language = tag

	if raw := v.GetString("data.now"); raw != "" {
		now, parseErr := time.Parse(time.RFC3339, raw)
		if parseErr != nil {
			return nil, fmt.Errorf("%w: data.now must be RFC 3339: %w", common.ErrInvalidConfig, parseErr)
		}
		s.Now = now
	}

	if v.IsSet("data.seed") {
		s.Seed = v.GetUint64("data.seed")
	}
	if v.IsSet("data.count") {
		s.Count = v.GetInt("data.count")
	}
	if v.IsSet("pagination.page_size") {
		s.PageSize = v.GetInt("pagination.page_size")
	}
	if v.IsSet("pagination.initial_delay") {
		s.InitialDelay = v.GetDuration("pagination.initial_delay")
	}
	if v.IsSet("pagination.delay") {
		s.Delay = v.GetDuration("pagination.delay")
	}
	if v.IsSet("pagination.scroll_threshold") {
		s.ScrollThreshold = v.GetInt("pagination.scroll_threshold")
	}
	if d := v.GetString("storage.driver"); d != "" {
		s.StorageDriver = d
	}
	if d := v.GetString("export.dir"); d != "" {
		s.ExportDir = ExpandPath(d)
	}
	if l := v.GetString("logging.level"); l != "" {
		s.LogLevel = l
	}
	if f := v.GetString("logging.format"); f != "" {
		s.LogFormat = f
	}
	s.LogFile = ExpandPath(v.GetString("logging.file"))

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate reports the first setting that is out of range.
func (s Settings) Validate() error {
	switch {
	case s.Count < 0:
		return fmt.Errorf("%w: data.count must not be negative", common.ErrInvalidConfig)
	case s.PageSize <= 0:
		return fmt.Errorf("%w: pagination.page_size must be positive", common.ErrInvalidConfig)
	case s.InitialDelay < 0 || s.Delay < 0:
		return fmt.Errorf("%w: pagination delays must not be negative", common.ErrInvalidConfig)
	case s.ScrollThreshold < 0:
		return fmt.Errorf("%w: pagination.scroll_threshold must not be negative", common.ErrInvalidConfig)
	case !slices.Contains(storage.Drivers(), s.StorageDriver):
		return fmt.Errorf("%w: storage.driver must be one of %v", common.ErrInvalidConfig, storage.Drivers())
	case s.LogFormat != "console" && s.LogFormat != "json":
		return fmt.Errorf("%w: logging.format must be console or json", common.ErrInvalidConfig)
	}
	if _, err := common.ParseLevel(s.LogLevel); err != nil {
		return err
	}
	return nil
}

// Clock returns the configured "now", or the wall clock when unset.
func (s Settings) Clock() time.Time {
	if s.Now.IsZero() {
		return time.Now()
	}
	return s.Now
}

// Formatter returns the display formatter for these settings.
func (s Settings) Formatter() locale.Formatter {
	return locale.NewFormatter(s.Location, s.Language)
}

// DataOptions returns the mock dataset options for these settings.
func (s Settings) DataOptions() mockdata.Options {
	return mockdata.Options{Seed: s.Seed, Count: s.Count, Now: s.Clock()}
}
