package config

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/go-viper/mapstructure/v2"

	"github.com/sofmeright/lintcompose/src/lint"
)

// reservedKeys are top-level keys that are not topic toggles.
var reservedKeys = map[string]bool{
	"version":   true,
	"root":      true,
	"custom":    true,
	"overrides": true,
}

// topicOptionKeys are the keys of a topic table that map onto TopicOptions.
// Any other key in the table is treated as a setting.
var topicOptionKeys = map[string]bool{
	"overrides": true,
	"settings":  true,
	"patterns":  true,
}

// ComposeConfig holds the composer-facing part of the configuration.
type ComposeConfig struct {
	// Topics holds every top-level key that is not reserved, keyed by topic.
	// Values are booleans, pattern lists (ignores) or option tables.
	Topics map[string]lint.Toggle `mapstructure:"-"`

	Custom    []lint.CustomConfig `mapstructure:"custom"`
	Overrides lint.Rules          `mapstructure:"overrides"`
}

// DefaultComposeConfig leaves every topic unset.
func DefaultComposeConfig() ComposeConfig {
	return ComposeConfig{Topics: map[string]lint.Toggle{}}
}

// Options converts the configuration into composer input.
func (c ComposeConfig) Options() lint.Options {
	opts := lint.Options{
		Topics:        make(map[string]lint.Toggle, len(c.Topics)),
		CustomConfigs: c.Custom,
		Overrides:     c.Overrides,
	}
	for name, t := range c.Topics {
		opts.Topics[name] = t
	}
	return opts
}

// TopicNames returns the configured topic keys in sorted order.
func (c ComposeConfig) TopicNames() []string {
	names := make([]string, 0, len(c.Topics))
	for name := range c.Topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func decode(raw map[string]any, cfg *Config) error {
	reserved := make(map[string]any, len(reservedKeys))
	for key, v := range raw {
		if reservedKeys[key] {
			reserved[key] = v
			continue
		}
		t, err := ParseToggle(v)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		cfg.Topics[key] = t
	}

	dec, err := newDecoder(cfg)
	if err != nil {
		return err
	}
	return dec.Decode(reserved)
}

func newDecoder(target any) (*mapstructure.Decoder, error) {
	return mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			ruleEntryHook,
			pluginHook,
		),
		ErrorUnused:      true,
		WeaklyTypedInput: false,
		Result:           target,
	})
}

// ParseToggle converts a decoded topic value into a toggle:
// a bool switches the topic, a list extends ignore patterns, a table
// supplies options. A null value leaves the topic unset.
func ParseToggle(v any) (lint.Toggle, error) {
	switch val := v.(type) {
	case nil:
		return lint.Toggle{}, nil
	case bool:
		return lint.Bool(val), nil
	case []any:
		patterns := make([]string, 0, len(val))
		for i, item := range val {
			s, ok := item.(string)
			if !ok {
				return lint.Toggle{}, fmt.Errorf("patterns[%d]: expected string, got %T", i, item)
			}
			patterns = append(patterns, s)
		}
		return lint.With(lint.TopicOptions{Patterns: patterns}), nil
	case map[string]any:
		known := map[string]any{}
		var loose map[string]any
		for key, item := range val {
			if topicOptionKeys[key] {
				known[key] = item
				continue
			}
			if loose == nil {
				loose = map[string]any{}
			}
			loose[key] = item
		}

		var opts lint.TopicOptions
		dec, err := newDecoder(&opts)
		if err != nil {
			return lint.Toggle{}, err
		}
		if err := dec.Decode(known); err != nil {
			return lint.Toggle{}, err
		}
		if loose != nil {
			if opts.Settings == nil {
				opts.Settings = map[string]any{}
			}
			for key, item := range loose {
				opts.Settings[key] = item
			}
		}
		return lint.With(opts), nil
	default:
		return lint.Toggle{}, fmt.Errorf("expected bool, list or table, got %T", v)
	}
}

var (
	ruleEntryType = reflect.TypeOf(lint.RuleEntry{})
	pluginType    = reflect.TypeOf(lint.Plugin{})
)

// ruleEntryHook decodes "error", 2 or ["warn", {...}] into a RuleEntry.
func ruleEntryHook(from, to reflect.Type, data any) (any, error) {
	if to != ruleEntryType || from == ruleEntryType {
		return data, nil
	}
	return lint.ParseRuleEntry(data)
}

// pluginHook accepts a bare package specifier as shorthand for {package: ...}.
func pluginHook(from, to reflect.Type, data any) (any, error) {
	if to != pluginType || from == nil || from.Kind() != reflect.String {
		return data, nil
	}
	return lint.Plugin{Package: data.(string)}, nil
}
