package topics

import (
	"github.com/sofmeright/lintcompose/src/detect"
	"github.com/sofmeright/lintcompose/src/lint"
)

func init() {
	lint.Register("javascript", priorityJavascript, func() lint.Topic { return &javascriptTopic{} })
}

var javascriptRules = lazyTable("javascript.yaml")

type javascriptTopic struct{}

func (t *javascriptTopic) Name() string                     { return "javascript" }
func (t *javascriptTopic) DefaultEnabled() bool             { return true }
func (t *javascriptTopic) AutoDetect() []detect.Requirement { return nil }

func (t *javascriptTopic) Build(opts lint.TopicOptions) []lint.Fragment {
	return []lint.Fragment{{
		Name: fragmentName("javascript", "rules"),
		LanguageOptions: map[string]any{
			"ecmaVersion": "latest",
			"sourceType":  "module",
			"parserOptions": map[string]any{
				"ecmaFeatures": map[string]any{"jsx": true},
				"ecmaVersion":  "latest",
				"sourceType":   "module",
			},
		},
		Rules: javascriptRules().With(opts.Overrides),
	}}
}
