package topics

import (
	"github.com/sofmeright/lintcompose/src/detect"
	"github.com/sofmeright/lintcompose/src/lint"
)

func init() {
	lint.Register("jsdoc", priorityJsdoc, func() lint.Topic { return &jsdocTopic{} })
}

type jsdocTopic struct{}

func (t *jsdocTopic) Name() string                     { return "jsdoc" }
func (t *jsdocTopic) DefaultEnabled() bool             { return true }
func (t *jsdocTopic) AutoDetect() []detect.Requirement { return nil }

func (t *jsdocTopic) Build(opts lint.TopicOptions) []lint.Fragment {
	rules := lint.Rules{
		"jsdoc/check-access":                 lint.Warn(),
		"jsdoc/check-param-names":            lint.Warn(),
		"jsdoc/check-property-names":         lint.Warn(),
		"jsdoc/check-types":                  lint.Warn(),
		"jsdoc/empty-tags":                   lint.Warn(),
		"jsdoc/implements-on-classes":        lint.Warn(),
		"jsdoc/no-defaults":                  lint.Warn(),
		"jsdoc/no-multi-asterisks":           lint.Warn(),
		"jsdoc/require-param-name":           lint.Warn(),
		"jsdoc/require-property":             lint.Warn(),
		"jsdoc/require-property-description": lint.Warn(),
		"jsdoc/require-property-name":        lint.Warn(),
		"jsdoc/require-returns-check":        lint.Warn(),
		"jsdoc/require-returns-description":  lint.Warn(),
		"jsdoc/require-yields-check":         lint.Warn(),
		"jsdoc/check-alignment":              lint.Warn(),
		"jsdoc/multiline-blocks":             lint.Warn(),
	}

	return []lint.Fragment{{
		Name: fragmentName("jsdoc", "rules"),
		Plugins: map[string]lint.Plugin{
			"jsdoc": plugin("eslint-plugin-jsdoc"),
		},
		Rules: rules.With(opts.Overrides),
	}}
}
