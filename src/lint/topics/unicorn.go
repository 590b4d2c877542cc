package topics

import (
	"github.com/sofmeright/lintcompose/src/detect"
	"github.com/sofmeright/lintcompose/src/lint"
)

func init() {
	lint.Register("unicorn", priorityUnicorn, func() lint.Topic { return &unicornTopic{} })
}

var unicornRules = lazyTable("unicorn.yaml")

type unicornTopic struct{}

func (t *unicornTopic) Name() string                     { return "unicorn" }
func (t *unicornTopic) DefaultEnabled() bool             { return true }
func (t *unicornTopic) AutoDetect() []detect.Requirement { return nil }

func (t *unicornTopic) Build(opts lint.TopicOptions) []lint.Fragment {
	return []lint.Fragment{{
		Name: fragmentName("unicorn", "rules"),
		Plugins: map[string]lint.Plugin{
			"unicorn": plugin("eslint-plugin-unicorn"),
		},
		Rules: unicornRules().With(opts.Overrides),
	}}
}
