package topics

import (
	"github.com/sofmeright/lintcompose/src/detect"
	"github.com/sofmeright/lintcompose/src/lint"
)

func init() {
	lint.Register("node", priorityNode, func() lint.Topic { return &nodeTopic{} })
}

// nodeTopic is opt-in: it is neither on by default nor auto-detected.
type nodeTopic struct{}

func (t *nodeTopic) Name() string                     { return "node" }
func (t *nodeTopic) DefaultEnabled() bool             { return false }
func (t *nodeTopic) AutoDetect() []detect.Requirement { return nil }

func (t *nodeTopic) Build(opts lint.TopicOptions) []lint.Fragment {
	rules := lint.Rules{
		"node/handle-callback-err":                   lint.Entry(lint.SeverityError, "^(err|error)$"),
		"node/no-deprecated-api":                     lint.Error(),
		"node/no-exports-assign":                     lint.Error(),
		"node/no-new-require":                        lint.Error(),
		"node/no-path-concat":                        lint.Error(),
		"node/prefer-global/buffer":                  lint.Entry(lint.SeverityError, "never"),
		"node/prefer-global/process":                 lint.Entry(lint.SeverityError, "never"),
		"node/process-exit-as-throw":                 lint.Error(),
		"node/no-missing-import":                     lint.Error(),
		"node/no-unpublished-import":                 lint.Error(),
		"node/no-unsupported-features/es-builtins":   lint.Error(),
		"node/no-unsupported-features/es-syntax":     lint.Error(),
		"node/no-unsupported-features/node-builtins": lint.Error(),
	}

	return []lint.Fragment{{
		Name: fragmentName("node", "rules"),
		Plugins: map[string]lint.Plugin{
			"node": plugin("eslint-plugin-n"),
		},
		Rules: rules.With(opts.Overrides),
	}}
}
