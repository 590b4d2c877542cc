package topics

import (
	"github.com/sofmeright/lintcompose/src/detect"
	"github.com/sofmeright/lintcompose/src/lint"
)

func init() {
	lint.Register("stylistic", priorityStylistic, func() lint.Topic { return &stylisticTopic{} })
}

// StylisticDefaults are the formatting preferences behind the stylistic
// fragment. Each can be replaced through the topic's settings.
type StylisticDefaults struct {
	Indent any // "tab" or a number of spaces
	Quotes string
	Semi   bool
	JSX    bool
}

// DefaultStylistic is used for every setting the caller leaves out.
var DefaultStylistic = StylisticDefaults{
	Indent: "tab",
	Quotes: "single",
	Semi:   false,
	JSX:    true,
}

type stylisticTopic struct{}

func (t *stylisticTopic) Name() string                     { return "stylistic" }
func (t *stylisticTopic) DefaultEnabled() bool             { return true }
func (t *stylisticTopic) AutoDetect() []detect.Requirement { return nil }

func (t *stylisticTopic) Build(opts lint.TopicOptions) []lint.Fragment {
	d := stylisticFromSettings(opts.Settings)

	return []lint.Fragment{{
		Name:  fragmentName("stylistic", "rules"),
		Files: []string{GlobSrc},
		Plugins: map[string]lint.Plugin{
			"style": plugin("@stylistic/eslint-plugin"),
		},
		Rules: customizeStylistic(d, "style").With(opts.Overrides),
	}}
}

func stylisticFromSettings(s map[string]any) StylisticDefaults {
	d := DefaultStylistic
	if s == nil {
		return d
	}
	if v, ok := s["indent"]; ok {
		switch indent := v.(type) {
		case string:
			d.Indent = indent
		default:
			d.Indent = lint.GetIntOption(s, "indent", 2)
		}
	}
	d.Quotes = lint.GetOption(s, "quotes", d.Quotes)
	d.Semi = lint.GetOption(s, "semi", d.Semi)
	d.JSX = lint.GetOption(s, "jsx", d.JSX)
	return d
}

// customizeStylistic derives the formatting rule table from d, namespacing
// every rule under pluginName.
func customizeStylistic(d StylisticDefaults, pluginName string) lint.Rules {
	semi := "never"
	if d.Semi {
		semi = "always"
	}
	tabs := d.Indent == "tab"

	rules := map[string]lint.RuleEntry{
		"array-bracket-spacing":       lint.Entry(lint.SeverityError, "never"),
		"arrow-parens":                lint.Entry(lint.SeverityError, "as-needed", map[string]any{"requireForBlockBody": true}),
		"arrow-spacing":               lint.Entry(lint.SeverityError, map[string]any{"after": true, "before": true}),
		"block-spacing":               lint.Entry(lint.SeverityError, "always"),
		"brace-style":                 lint.Entry(lint.SeverityError, "stroustrup", map[string]any{"allowSingleLine": true}),
		"comma-dangle":                lint.Entry(lint.SeverityError, "always-multiline"),
		"comma-spacing":               lint.Entry(lint.SeverityError, map[string]any{"after": true, "before": false}),
		"comma-style":                 lint.Entry(lint.SeverityError, "last"),
		"computed-property-spacing":   lint.Entry(lint.SeverityError, "never", map[string]any{"enforceForClassMembers": true}),
		"dot-location":                lint.Entry(lint.SeverityError, "property"),
		"eol-last":                    lint.Error(),
		"indent":                      lint.Entry(lint.SeverityError, d.Indent, map[string]any{"SwitchCase": 1, "flatTernaryExpressions": false, "ignoreComments": false}),
		"indent-binary-ops":           lint.Entry(lint.SeverityError, d.Indent),
		"key-spacing":                 lint.Entry(lint.SeverityError, map[string]any{"afterColon": true, "beforeColon": false}),
		"keyword-spacing":             lint.Entry(lint.SeverityError, map[string]any{"after": true, "before": true}),
		"lines-between-class-members": lint.Entry(lint.SeverityError, "always", map[string]any{"exceptAfterSingleLine": true}),
		"max-statements-per-line":     lint.Entry(lint.SeverityError, map[string]any{"max": 1}),
		"member-delimiter-style": lint.Entry(lint.SeverityError, map[string]any{
			"multiline":  map[string]any{"delimiter": ternary(d.Semi, "semi", "none"), "requireLast": d.Semi},
			"singleline": map[string]any{"delimiter": ternary(d.Semi, "semi", "comma"), "requireLast": false},
		}),
		"multiline-ternary":             lint.Entry(lint.SeverityError, "always-multiline"),
		"new-parens":                    lint.Error(),
		"no-extra-parens":               lint.Entry(lint.SeverityError, "functions"),
		"no-floating-decimal":           lint.Error(),
		"no-mixed-operators":            lint.Error(),
		"no-mixed-spaces-and-tabs":      lint.Error(),
		"no-multi-spaces":               lint.Error(),
		"no-multiple-empty-lines":       lint.Entry(lint.SeverityError, map[string]any{"max": 1, "maxBOF": 0, "maxEOF": 0}),
		"no-tabs":                       ternary(tabs, lint.Off(), lint.Error()),
		"no-trailing-spaces":            lint.Error(),
		"no-whitespace-before-property": lint.Error(),
		"object-curly-spacing":          lint.Entry(lint.SeverityError, "always"),
		"operator-linebreak":            lint.Entry(lint.SeverityError, "before"),
		"padded-blocks":                 lint.Entry(lint.SeverityError, map[string]any{"blocks": "never", "classes": "never", "switches": "never"}),
		"quote-props":                   lint.Entry(lint.SeverityError, "consistent-as-needed"),
		"quotes":                        lint.Entry(lint.SeverityError, d.Quotes, map[string]any{"allowTemplateLiterals": "always", "avoidEscape": false}),
		"rest-spread-spacing":           lint.Entry(lint.SeverityError, "never"),
		"semi":                          lint.Entry(lint.SeverityError, semi),
		"semi-spacing":                  lint.Entry(lint.SeverityError, map[string]any{"after": true, "before": false}),
		"space-before-blocks":           lint.Entry(lint.SeverityError, "always"),
		"space-before-function-paren":   lint.Entry(lint.SeverityError, map[string]any{"anonymous": "always", "asyncArrow": "always", "named": "never"}),
		"space-in-parens":               lint.Entry(lint.SeverityError, "never"),
		"space-infix-ops":               lint.Error(),
		"space-unary-ops":               lint.Entry(lint.SeverityError, map[string]any{"nonwords": false, "words": true}),
		"spaced-comment":                lint.Entry(lint.SeverityError, "always"),
		"template-curly-spacing":        lint.Error(),
		"template-tag-spacing":          lint.Entry(lint.SeverityError, "never"),
		"type-annotation-spacing":       lint.Entry(lint.SeverityError, map[string]any{}),
		"wrap-iife":                     lint.Entry(lint.SeverityError, "any", map[string]any{"functionPrototypeMethods": true}),
		"yield-star-spacing":            lint.Entry(lint.SeverityError, map[string]any{"after": true, "before": false}),
	}

	if d.JSX {
		jsx := map[string]lint.RuleEntry{
			"jsx-closing-bracket-location": lint.Error(),
			"jsx-closing-tag-location":     lint.Error(),
			"jsx-curly-brace-presence":     lint.Entry(lint.SeverityError, map[string]any{"propElementValues": "always"}),
			"jsx-curly-newline":            lint.Error(),
			"jsx-curly-spacing":            lint.Entry(lint.SeverityError, "never"),
			"jsx-equals-spacing":           lint.Error(),
			"jsx-first-prop-new-line":      lint.Error(),
			"jsx-function-call-newline":    lint.Entry(lint.SeverityError, "multiline"),
			"jsx-indent-props":             lint.Entry(lint.SeverityError, d.Indent),
			"jsx-max-props-per-line":       lint.Entry(lint.SeverityError, map[string]any{"maximum": 1, "when": "multiline"}),
			"jsx-one-expression-per-line":  lint.Entry(lint.SeverityError, map[string]any{"allow": "single-child"}),
			"jsx-quotes":                   lint.Error(),
			"jsx-tag-spacing":              lint.Entry(lint.SeverityError, map[string]any{"afterOpening": "never", "beforeClosing": "never", "beforeSelfClosing": "always", "closingSlash": "never"}),
			"jsx-wrap-multilines":          lint.Entry(lint.SeverityError, map[string]any{"arrow": "parens-new-line", "assignment": "parens-new-line", "declaration": "parens-new-line"}),
		}
		for name, e := range jsx {
			rules[name] = e
		}
	}

	out := make(lint.Rules, len(rules))
	for name, e := range rules {
		out[pluginName+"/"+name] = e
	}
	return out
}

func ternary[T any](cond bool, a, b T) T {
	if cond {
		return a
	}
	return b
}
