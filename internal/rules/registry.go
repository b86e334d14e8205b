// Package rules manages registration and selection of format rules.
package rules

import (
	"errors"
	"fmt"
	"slices"

	"github.com/donaldgifford/swiftfmt/internal/config"
	"github.com/donaldgifford/swiftfmt/internal/formatter"
)

// ErrUnknownRule is returned when a config names a rule that is not
// registered.
var ErrUnknownRule = errors.New("unknown rule")

var formatRules []formatter.FormatRule

// RegisterFormatRule adds a formatting rule to the registry.
// Rules are applied in the order they are registered unless the config
// lists an explicit order. Registering a name twice panics.
func RegisterFormatRule(r formatter.FormatRule) {
	if _, ok := Lookup(r.Name()); ok {
		panic(fmt.Sprintf("rules: %s registered twice", r.Name()))
	}
	formatRules = append(formatRules, r)
}

// FormatRules returns all registered formatting rules in execution order.
func FormatRules() []formatter.FormatRule {
	return formatRules
}

// Lookup returns the registered rule named name.
func Lookup(name string) (formatter.FormatRule, bool) {
	for _, r := range formatRules {
		if r.Name() == name {
			return r, true
		}
	}
	return nil, false
}

// Select returns the rules enabled by cfg in execution order. With an
// empty Enabled list every registered rule is a candidate, in registration
// order; Disabled rules are then removed.
func Select(cfg config.RulesConfig) ([]formatter.FormatRule, error) {
	for _, name := range cfg.Disabled {
		if _, ok := Lookup(name); !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownRule, name)
		}
	}

	candidates := formatRules
	if len(cfg.Enabled) > 0 {
		candidates = make([]formatter.FormatRule, 0, len(cfg.Enabled))
		for _, name := range cfg.Enabled {
			r, ok := Lookup(name)
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrUnknownRule, name)
			}
			if slices.Contains(candidates, r) {
				continue
			}
			candidates = append(candidates, r)
		}
	}

	selected := make([]formatter.FormatRule, 0, len(candidates))
	for _, r := range candidates {
		if slices.Contains(cfg.Disabled, r.Name()) {
			continue
		}
		selected = append(selected, r)
	}
	return selected, nil
}
