package topics

import (
	"github.com/sofmeright/lintcompose/src/detect"
	"github.com/sofmeright/lintcompose/src/lint"
)

func init() {
	lint.Register("nextjs", priorityNextjs, func() lint.Topic { return &nextjsTopic{} })
}

var nextjsRules = lazyTable("nextjs.yaml")

type nextjsTopic struct{}

func (t *nextjsTopic) Name() string         { return "nextjs" }
func (t *nextjsTopic) DefaultEnabled() bool { return false }
func (t *nextjsTopic) AutoDetect() []detect.Requirement {
	return []detect.Requirement{detect.Require("next")}
}

func (t *nextjsTopic) Build(opts lint.TopicOptions) []lint.Fragment {
	languageOptions := jsxLanguageOptions()
	languageOptions["sourceType"] = "module"

	return []lint.Fragment{{
		Name:  fragmentName("nextjs", "rules"),
		Files: []string{GlobReact},
		Plugins: map[string]lint.Plugin{
			"@next/next": plugin("@next/eslint-plugin-next"),
		},
		Settings: map[string]any{
			"react": map[string]any{"version": "detect"},
		},
		LanguageOptions: languageOptions,
		Rules:           nextjsRules().With(opts.Overrides),
	}}
}
