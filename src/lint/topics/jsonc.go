package topics

import (
	"github.com/sofmeright/lintcompose/src/detect"
	"github.com/sofmeright/lintcompose/src/lint"
)

func init() {
	lint.Register("jsonc", priorityJsonc, func() lint.Topic { return &jsoncTopic{} })
}

type jsoncTopic struct{}

func (t *jsoncTopic) Name() string                     { return "jsonc" }
func (t *jsoncTopic) DefaultEnabled() bool             { return true }
func (t *jsoncTopic) AutoDetect() []detect.Requirement { return nil }

func (t *jsoncTopic) Build(opts lint.TopicOptions) []lint.Fragment {
	rules := lint.Rules{
		"jsonc/no-bigint-literals":                lint.Error(),
		"jsonc/no-binary-expression":              lint.Error(),
		"jsonc/no-binary-numeric-literals":        lint.Error(),
		"jsonc/no-dupe-keys":                      lint.Error(),
		"jsonc/no-escape-sequence-in-identifier":  lint.Error(),
		"jsonc/no-floating-decimal":               lint.Error(),
		"jsonc/no-hexadecimal-numeric-literals":   lint.Error(),
		"jsonc/no-infinity":                       lint.Error(),
		"jsonc/no-multi-str":                      lint.Error(),
		"jsonc/no-nan":                            lint.Error(),
		"jsonc/no-number-props":                   lint.Error(),
		"jsonc/no-numeric-separators":             lint.Error(),
		"jsonc/no-octal":                          lint.Error(),
		"jsonc/no-octal-escape":                   lint.Error(),
		"jsonc/no-octal-numeric-literals":         lint.Error(),
		"jsonc/no-parenthesized":                  lint.Error(),
		"jsonc/no-plus-sign":                      lint.Error(),
		"jsonc/no-regexp-literals":                lint.Error(),
		"jsonc/no-sparse-arrays":                  lint.Error(),
		"jsonc/no-template-literals":              lint.Error(),
		"jsonc/no-undefined-value":                lint.Error(),
		"jsonc/no-unicode-codepoint-escapes":      lint.Error(),
		"jsonc/no-useless-escape":                 lint.Error(),
		"jsonc/space-unary-ops":                   lint.Error(),
		"jsonc/valid-json-number":                 lint.Error(),
		"jsonc/vue-custom-block/no-parsing-error": lint.Error(),
		"jsonc/array-bracket-spacing":             lint.Entry(lint.SeverityError, "never"),
		"jsonc/comma-dangle":                      lint.Entry(lint.SeverityError, "never"),
		"jsonc/comma-style":                       lint.Entry(lint.SeverityError, "last"),
		"jsonc/indent":                            lint.Entry(lint.SeverityError, "tab"),
		"jsonc/key-spacing":                       lint.Entry(lint.SeverityError, map[string]any{"afterColon": true, "beforeColon": false}),
		"jsonc/object-curly-newline":              lint.Entry(lint.SeverityError, map[string]any{"consistent": true, "multiline": true}),
		"jsonc/object-curly-spacing":              lint.Entry(lint.SeverityError, "always"),
		"jsonc/object-property-newline":           lint.Entry(lint.SeverityError, map[string]any{"allowMultiplePropertiesPerLine": true}),
		"jsonc/quote-props":                       lint.Error(),
		"jsonc/quotes":                            lint.Error(),
	}

	return []lint.Fragment{{
		Name:  fragmentName("jsonc", "rules"),
		Files: []string{GlobJSON, GlobJSON5, GlobJSONC},
		Plugins: map[string]lint.Plugin{
			"jsonc": plugin("eslint-plugin-jsonc"),
		},
		LanguageOptions: map[string]any{
			"parser": "jsonc-eslint-parser",
		},
		Rules: rules.With(opts.Overrides),
	}}
}
