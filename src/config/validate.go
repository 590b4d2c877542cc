package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownTopic marks a toggle for a topic no builder is registered for.
// The composer ignores such toggles, so it is reported as a warning.
var ErrUnknownTopic = errors.New("unknown topic")

// Validate checks structural invariants of a loaded Config.
// known reports whether a topic name is registered.
// Returns warnings (soft issues) and a hard error if the config is invalid.
func Validate(cfg *Config, known func(string) bool) (warnings []string, err error) {
	var errs []string

	// ── Version ───────────────────────────────────────────────────────────

	if cfg.Version != 1 {
		errs = append(errs, fmt.Sprintf("version: must be 1, got %d", cfg.Version))
	}

	// ── Topics ────────────────────────────────────────────────────────────

	for _, name := range cfg.TopicNames() {
		if known != nil && !known(name) {
			warnings = append(warnings, fmt.Sprintf("%s: %v", name, ErrUnknownTopic))
			continue
		}
		t := cfg.Topics[name]
		if name != "ignores" && len(t.Options.Patterns) > 0 {
			warnings = append(warnings, fmt.Sprintf("%s: patterns only apply to the ignores topic", name))
		}
		for i, p := range t.Options.Patterns {
			if strings.TrimSpace(p) == "" {
				errs = append(errs, fmt.Sprintf("%s.patterns[%d]: empty pattern", name, i))
			}
		}
	}

	// ── Custom fragments ──────────────────────────────────────────────────

	seen := make(map[string]bool, len(cfg.Custom))
	for i, c := range cfg.Custom {
		cpath := fmt.Sprintf("custom[%d]", i)
		switch {
		case c.Name == "":
			errs = append(errs, fmt.Sprintf("%s: name is required", cpath))
		case seen[c.Name]:
			errs = append(errs, fmt.Sprintf("%s: duplicate name %q", cpath, c.Name))
		default:
			seen[c.Name] = true
		}
		for ns, p := range c.Plugins {
			if p.Package == "" {
				errs = append(errs, fmt.Sprintf("%s.plugins.%s: package is required", cpath, ns))
			}
		}
		if c.Files == nil && c.Ignores == nil && c.Plugins == nil && c.Settings == nil && c.Rules == nil {
			warnings = append(warnings, fmt.Sprintf("%s: %q sets nothing", cpath, c.Name))
		}
	}

	if len(errs) > 0 {
		return warnings, fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return warnings, nil
}
