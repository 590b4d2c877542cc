package topics

import (
	"github.com/sofmeright/lintcompose/src/detect"
	"github.com/sofmeright/lintcompose/src/lint"
)

func init() {
	lint.Register("react", priorityReact, func() lint.Topic { return &reactTopic{} })
}

var a11yRules = lazyTable("jsx-a11y.yaml")

type reactTopic struct{}

func (t *reactTopic) Name() string         { return "react" }
func (t *reactTopic) DefaultEnabled() bool { return false }
func (t *reactTopic) AutoDetect() []detect.Requirement {
	return []detect.Requirement{detect.Require("react")}
}

func (t *reactTopic) Build(opts lint.TopicOptions) []lint.Fragment {
	core := lint.Rules{
		"react/display-name": lint.Error(),
		"react/jsx-key": lint.Entry(lint.SeverityError, map[string]any{
			"checkFragmentShorthand":   true,
			"checkKeyMustBeforeSpread": true,
			"warnOnDuplicates":         true,
		}),
		"react/jsx-no-comment-textnodes": lint.Error(),
		"react/jsx-no-duplicate-props":   lint.Error(),
		"react/jsx-no-target-blank": lint.Entry(lint.SeverityError, map[string]any{
			"enforceDynamicLinks":    "always",
			"warnOnSpreadAttributes": true,
		}),
		"react/jsx-no-undef":                      lint.Error(),
		"react/jsx-uses-react":                    lint.Error(),
		"react/jsx-uses-vars":                     lint.Error(),
		"react/no-children-prop":                  lint.Error(),
		"react/no-danger-with-children":           lint.Error(),
		"react/no-deprecated":                     lint.Error(),
		"react/no-direct-mutation-state":          lint.Error(),
		"react/no-find-dom-node":                  lint.Error(),
		"react/no-is-mounted":                     lint.Error(),
		"react/no-render-return-value":            lint.Error(),
		"react/no-string-refs":                    lint.Error(),
		"react/no-unescaped-entities":             lint.Error(),
		"react/no-unknown-property":               lint.Error(),
		"react/no-unsafe":                         lint.Error(),
		"react/prop-types":                        lint.Off(),
		"react/react-in-jsx-scope":                lint.Off(),
		"react/require-render-return":             lint.Error(),
		"react/jsx-no-constructed-context-values": lint.Error(),
		"react/jsx-no-script-url":                 lint.Error(),
		"react/jsx-no-useless-fragment":           lint.Entry(lint.SeverityError, map[string]any{"allowExpressions": true}),
		"react/no-array-index-key":                lint.Warn(),
		"react/no-object-type-as-default-prop":    lint.Error(),
		"react/no-unstable-nested-components":     lint.Entry(lint.SeverityError, map[string]any{"allowAsProps": true}),
		"react/prefer-stateless-function":         lint.Entry(lint.SeverityError, map[string]any{"ignorePureComponents": true}),
		"react/self-closing-comp":                 lint.Entry(lint.SeverityError, map[string]any{"component": true, "html": true}),
		"react/jsx-boolean-value":                 lint.Entry(lint.SeverityError, "never", map[string]any{"always": []any{}}),
		"react/jsx-curly-brace-presence": lint.Entry(lint.SeverityError, map[string]any{
			"props":             "never",
			"children":          "never",
			"propElementValues": "always",
		}),
		"react/jsx-fragments":   lint.Entry(lint.SeverityError, "syntax"),
		"react/jsx-pascal-case": lint.Entry(lint.SeverityError, map[string]any{"allowAllCaps": true, "ignore": []any{}}),

		"react-hooks/rules-of-hooks":  lint.Error(),
		"react-hooks/exhaustive-deps": lint.Warn(),
	}

	return []lint.Fragment{{
		Name:  fragmentName("react", "rules"),
		Files: []string{GlobReact},
		Plugins: map[string]lint.Plugin{
			"react":       plugin("eslint-plugin-react"),
			"react-hooks": plugin("eslint-plugin-react-hooks"),
			"jsx-a11y":    plugin("eslint-plugin-jsx-a11y"),
		},
		LanguageOptions: jsxLanguageOptions(),
		Settings: map[string]any{
			"react": map[string]any{"version": "detect"},
		},
		Rules: lint.Merge(core, a11yRules(), opts.Overrides),
	}}
}
