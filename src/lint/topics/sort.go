package topics

import (
	"github.com/sofmeright/lintcompose/src/detect"
	"github.com/sofmeright/lintcompose/src/lint"
)

func init() {
	lint.Register("sort", prioritySort, func() lint.Topic { return &sortTopic{} })
}

type sortTopic struct{}

func (t *sortTopic) Name() string                     { return "sort" }
func (t *sortTopic) DefaultEnabled() bool             { return true }
func (t *sortTopic) AutoDetect() []detect.Requirement { return nil }

func naturalAsc() map[string]any {
	return map[string]any{"order": "asc", "type": "natural"}
}

func (t *sortTopic) Build(opts lint.TopicOptions) []lint.Fragment {
	rules := lint.Rules{
		"perfectionist/sort-exports": lint.Entry(lint.SeverityError, naturalAsc()),
		"perfectionist/sort-imports": lint.Entry(lint.SeverityError, map[string]any{
			"groups": []any{
				"type",
				[]any{"parent-type", "sibling-type", "index-type", "internal-type"},
				"builtin",
				"external",
				"internal",
				[]any{"parent", "sibling", "index"},
				"side-effect",
				"object",
				"unknown",
			},
			"newlinesBetween": "ignore",
			"order":           "asc",
			"type":            "natural",
		}),
		"perfectionist/sort-named-exports": lint.Entry(lint.SeverityError, naturalAsc()),
		"perfectionist/sort-named-imports": lint.Entry(lint.SeverityError, naturalAsc()),
	}

	return []lint.Fragment{{
		Name: fragmentName("perfectionist", "rules"),
		Plugins: map[string]lint.Plugin{
			"perfectionist": plugin("eslint-plugin-perfectionist"),
		},
		Rules: rules.With(opts.Overrides),
	}}
}
