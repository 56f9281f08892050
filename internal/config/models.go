package config

import (
	"fmt"

	"github.com/muurk/basemaster/internal/radix"
)

// CurrentVersion is the config schema version written by this build.
const CurrentVersion = 1

// Config represents the entire user configuration file.
type Config struct {
	Version int         `yaml:"version" toml:"version"`
	Parse   *ParsePrefs `yaml:"parse,omitempty" toml:"parse,omitempty"`
	UI      *UIPrefs    `yaml:"ui,omitempty" toml:"ui,omitempty"`
	Theme   *Theme      `yaml:"theme,omitempty" toml:"theme,omitempty"`
	Log     *LogPrefs   `yaml:"log,omitempty" toml:"log,omitempty"`
}

// ParsePrefs controls how typed text is read.
type ParsePrefs struct {
	Mode string `yaml:"mode" toml:"mode"` // "permissive" or "strict"
}

// UIPrefs controls the interactive screen.
type UIPrefs struct {
	StartField string `yaml:"start_field" toml:"start_field"` // Field focused on launch (dec, hex, oct, bin)
	AltScreen  bool   `yaml:"alt_screen" toml:"alt_screen"`   // Run in the terminal's alternate screen
}

// Theme holds the interface colours as lipgloss colour strings.
type Theme struct {
	Primary  string `yaml:"primary" toml:"primary"`
	Muted    string `yaml:"muted" toml:"muted"`
	BitSet   string `yaml:"bit_set" toml:"bit_set"`
	BitClear string `yaml:"bit_clear" toml:"bit_clear"`
	Decimal  string `yaml:"decimal" toml:"decimal"`
	Hex      string `yaml:"hex" toml:"hex"`
	Octal    string `yaml:"octal" toml:"octal"`
	Binary   string `yaml:"binary" toml:"binary"`
}

// LogPrefs controls logging.
type LogPrefs struct {
	Level string `yaml:"level,omitempty" toml:"level,omitempty"` // Empty keeps logging silent
	File  string `yaml:"file,omitempty" toml:"file,omitempty"`   // Log file for the interactive UI
}

// DefaultTheme returns the stock colours.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:  "#7D56F4",
		Muted:    "#626262",
		BitSet:   "#43BF6D",
		BitClear: "#3A3A3A",
		Decimal:  "#3B82F6",
		Hex:      "#A855F7",
		Octal:    "#F59E0B",
		Binary:   "#10B981",
	}
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		Version: CurrentVersion,
		Parse: &ParsePrefs{
			Mode: radix.Permissive.String(),
		},
		UI: &UIPrefs{
			StartField: radix.Decimal.String(),
			AltScreen:  true,
		},
		Theme: DefaultTheme(),
		Log:   &LogPrefs{},
	}
}

// applyDefaults fills sections and theme colours missing from a loaded file.
func (c *Config) applyDefaults() {
	def := NewConfig()
	if c.Version == 0 {
		c.Version = CurrentVersion
	}
	if c.Parse == nil {
		c.Parse = def.Parse
	}
	if c.UI == nil {
		c.UI = def.UI
	}
	if c.Log == nil {
		c.Log = def.Log
	}
	if c.Theme == nil {
		c.Theme = def.Theme
		return
	}
	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&c.Theme.Primary, def.Theme.Primary)
	fill(&c.Theme.Muted, def.Theme.Muted)
	fill(&c.Theme.BitSet, def.Theme.BitSet)
	fill(&c.Theme.BitClear, def.Theme.BitClear)
	fill(&c.Theme.Decimal, def.Theme.Decimal)
	fill(&c.Theme.Hex, def.Theme.Hex)
	fill(&c.Theme.Octal, def.Theme.Octal)
	fill(&c.Theme.Binary, def.Theme.Binary)
}

// Validate checks the values that other packages parse.
func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return fmt.Errorf("unsupported config version: %d (expected %d)", c.Version, CurrentVersion)
	}
	if _, err := c.ParseMode(); err != nil {
		return err
	}
	if _, err := c.StartRadix(); err != nil {
		return fmt.Errorf("ui.start_field: %w", err)
	}
	return nil
}

// ParseMode returns the configured parse mode.
func (c *Config) ParseMode() (radix.Mode, error) {
	if c.Parse == nil {
		return radix.Permissive, nil
	}
	return radix.ParseMode(c.Parse.Mode)
}

// StartRadix returns the field focused when the UI starts.
func (c *Config) StartRadix() (radix.Radix, error) {
	if c.UI == nil || c.UI.StartField == "" {
		return radix.Decimal, nil
	}
	return radix.ParseRadix(c.UI.StartField)
}
