// Package config defines the configuration types and defaults for swiftfmt.
package config

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalid is returned by Validate for out-of-range settings.
var ErrInvalid = errors.New("invalid config")

// Config is the top-level configuration.
type Config struct {
	Formatter FormatterConfig `yaml:"formatter" toml:"formatter"`
	Rules     RulesConfig     `yaml:"rules"     toml:"rules"`
	Lint      LintConfig      `yaml:"lint"      toml:"lint"`
	Cache     CacheConfig     `yaml:"cache"     toml:"cache"`

	// Jobs bounds the number of files processed concurrently. Zero means
	// one per CPU.
	Jobs int `yaml:"jobs" toml:"jobs"`
}

// FormatterConfig holds settings read by individual rules.
type FormatterConfig struct {
	NumericGrouping NumericGrouping `yaml:"numeric_grouping" toml:"numeric_grouping"`
}

// NumericGrouping configures digit grouping per integer literal radix.
// Octal literals are never grouped.
type NumericGrouping struct {
	Decimal     Grouping `yaml:"decimal"     toml:"decimal"`
	Hexadecimal Grouping `yaml:"hexadecimal" toml:"hexadecimal"`
	Binary      Grouping `yaml:"binary"      toml:"binary"`
}

// Grouping inserts a '_' every Stride digits, counted from the right, in
// literals with at least MinDigits digits. A zero Stride disables grouping.
type Grouping struct {
	Stride    int `yaml:"stride"     toml:"stride"`
	MinDigits int `yaml:"min_digits" toml:"min_digits"`
}

// RulesConfig selects which rules run. Enabled, when non-empty, lists the
// rules to run in execution order; otherwise every registered rule runs in
// registration order. Disabled is applied afterwards.
type RulesConfig struct {
	Enabled  []string `yaml:"enabled"  toml:"enabled"`
	Disabled []string `yaml:"disabled" toml:"disabled"`
}

// LintConfig holds lint reporting settings.
type LintConfig struct {
	// Severity overrides the severity of every reported diagnostic.
	// Empty keeps each rule's own severity.
	Severity string `yaml:"severity" toml:"severity"`

	// Exclude lists rule names whose diagnostics are not reported.
	Exclude []string `yaml:"exclude" toml:"exclude"`
}

// CacheConfig controls the on-disk result cache.
type CacheConfig struct {
	Enabled bool   `yaml:"enabled" toml:"enabled"`
	Dir     string `yaml:"dir"     toml:"dir"`
}

// DefaultConfig returns a Config with all default values.
func DefaultConfig() *Config {
	return &Config{
		Formatter: FormatterConfig{
			NumericGrouping: NumericGrouping{
				Decimal:     Grouping{Stride: 3, MinDigits: 5},
				Hexadecimal: Grouping{Stride: 4, MinDigits: 8},
				Binary:      Grouping{Stride: 8, MinDigits: 10},
			},
		},
	}
}

// Validate reports the first out-of-range setting in c.
func (c *Config) Validate() error {
	switch c.Lint.Severity {
	case "", "warning", "error":
	default:
		return fmt.Errorf("%w: lint.severity must be warning or error, got %q", ErrInvalid, c.Lint.Severity)
	}

	if c.Jobs < 0 {
		return fmt.Errorf("%w: jobs must not be negative, got %d", ErrInvalid, c.Jobs)
	}

	groups := []struct {
		name string
		g    Grouping
	}{
		{"decimal", c.Formatter.NumericGrouping.Decimal},
		{"hexadecimal", c.Formatter.NumericGrouping.Hexadecimal},
		{"binary", c.Formatter.NumericGrouping.Binary},
	}
	for _, g := range groups {
		if g.g.Stride < 0 || g.g.MinDigits < 0 {
			return fmt.Errorf("%w: formatter.numeric_grouping.%s must not be negative", ErrInvalid, g.name)
		}
	}

	for _, name := range c.Rules.Enabled {
		if slices.Contains(c.Rules.Disabled, name) {
			return fmt.Errorf("%w: rule %q is both enabled and disabled", ErrInvalid, name)
		}
	}
	return nil
}
