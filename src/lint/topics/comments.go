package topics

import (
	"github.com/sofmeright/lintcompose/src/detect"
	"github.com/sofmeright/lintcompose/src/lint"
)

func init() {
	lint.Register("comments", priorityComments, func() lint.Topic { return &commentsTopic{} })
}

type commentsTopic struct{}

func (t *commentsTopic) Name() string                     { return "comments" }
func (t *commentsTopic) DefaultEnabled() bool             { return true }
func (t *commentsTopic) AutoDetect() []detect.Requirement { return nil }

func (t *commentsTopic) Build(opts lint.TopicOptions) []lint.Fragment {
	rules := lint.Rules{
		"eslint-comments/disable-enable-pair":   lint.Entry(lint.SeverityError, map[string]any{"allowWholeFile": true}),
		"eslint-comments/no-aggregating-enable": lint.Error(),
		"eslint-comments/no-duplicate-disable":  lint.Error(),
		"eslint-comments/no-unlimited-disable":  lint.Error(),
		"eslint-comments/no-unused-enable":      lint.Error(),
	}

	return []lint.Fragment{{
		Name: fragmentName("eslint-comments", "rules"),
		Plugins: map[string]lint.Plugin{
			"eslint-comments": plugin("@eslint-community/eslint-plugin-eslint-comments"),
		},
		Rules: rules.With(opts.Overrides),
	}}
}
