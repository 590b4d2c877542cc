package topics

import (
	"maps"

	"github.com/sofmeright/lintcompose/src/detect"
	"github.com/sofmeright/lintcompose/src/lint"
)

func init() {
	lint.Register("tailwindcss", priorityTailwindcss, func() lint.Topic { return &tailwindcssTopic{} })
}

// tailwindSettingsKey is where the plugin reads its settings from.
const tailwindSettingsKey = "better-tailwindcss"

type tailwindcssTopic struct{}

func (t *tailwindcssTopic) Name() string         { return "tailwindcss" }
func (t *tailwindcssTopic) DefaultEnabled() bool { return false }
func (t *tailwindcssTopic) AutoDetect() []detect.Requirement {
	return []detect.Requirement{detect.Require("tailwindcss")}
}

// Build copies opts.Settings (entryPoint, tailwindConfig, attributes,
// callees, variables, tags) under the plugin's settings key.
func (t *tailwindcssTopic) Build(opts lint.TopicOptions) []lint.Fragment {
	pluginSettings := maps.Clone(opts.Settings)
	if pluginSettings == nil {
		pluginSettings = map[string]any{}
	}

	rules := lint.Rules{
		"better-tailwindcss/enforce-consistent-class-order":        lint.Entry(lint.SeverityWarn, map[string]any{"order": "improved"}),
		"better-tailwindcss/enforce-consistent-important-position": lint.Off(),
		"better-tailwindcss/enforce-consistent-line-wrapping":      lint.Off(),
		"better-tailwindcss/enforce-consistent-variable-syntax":    lint.Error(),
		"better-tailwindcss/enforce-shorthand-classes":             lint.Warn(),
		"better-tailwindcss/no-conflicting-classes":                lint.Error(),
		"better-tailwindcss/no-deprecated-classes":                 lint.Error(),
		"better-tailwindcss/no-duplicate-classes":                  lint.Error(),
		"better-tailwindcss/no-restricted-classes":                 lint.Error(),
		"better-tailwindcss/no-unnecessary-whitespace":             lint.Warn(),
		"better-tailwindcss/no-unregistered-classes":               lint.Off(),
	}

	return []lint.Fragment{{
		Name:  fragmentName("tailwindcss", "rules"),
		Files: []string{GlobReact, GlobVue},
		Plugins: map[string]lint.Plugin{
			tailwindSettingsKey: plugin("eslint-plugin-better-tailwindcss"),
		},
		Settings: map[string]any{
			tailwindSettingsKey: pluginSettings,
		},
		Rules: rules.With(opts.Overrides),
	}}
}
