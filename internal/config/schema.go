package config

import (
	"errors"
	"fmt"

	"github.com/blackwell-systems/bookshelf/internal/catalog"
)

// Config is the top-level bookshelf configuration.
type Config struct {
	Catalog string       `mapstructure:"catalog"` // optional YAML book list replacing the built-in seed
	Browse  BrowseConfig `mapstructure:"browse"`
	Picker  PickerConfig `mapstructure:"picker"`
	Log     LogConfig    `mapstructure:"log"`
}

// BrowseConfig holds list view settings.
type BrowseConfig struct {
	PageSize int    `mapstructure:"page_size"`
	Sort     string `mapstructure:"sort"`
}

// PickerConfig holds option picker settings.
type PickerConfig struct {
	Placeholder string `mapstructure:"placeholder"`
	MaxVisible  int    `mapstructure:"max_visible"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"` // debug, info, warn, error
	File  string `mapstructure:"file"`  // used while a TUI owns the terminal
}

var errInvalid = errors.New("invalid config")

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Browse.PageSize <= 0 {
		return fmt.Errorf("%w: browse.page_size must be positive, got %d", errInvalid, c.Browse.PageSize)
	}
	if _, err := catalog.ParseSortOption(c.Browse.Sort); err != nil {
		return fmt.Errorf("%w: browse.sort: %w", errInvalid, err)
	}
	if c.Picker.MaxVisible <= 0 {
		return fmt.Errorf("%w: picker.max_visible must be positive, got %d", errInvalid, c.Picker.MaxVisible)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q", errInvalid, c.Log.Level)
	}
	return nil
}

// SortOption returns the configured initial sort, falling back to the
// default when the value is invalid.
func (c *Config) SortOption() catalog.SortOption {
	o, err := catalog.ParseSortOption(c.Browse.Sort)
	if err != nil {
		return catalog.DefaultSort
	}
	return o
}
