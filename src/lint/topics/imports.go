package topics

import (
	"github.com/sofmeright/lintcompose/src/detect"
	"github.com/sofmeright/lintcompose/src/lint"
)

func init() {
	lint.Register("imports", priorityImports, func() lint.Topic { return &importsTopic{} })
}

type importsTopic struct{}

func (t *importsTopic) Name() string                     { return "imports" }
func (t *importsTopic) DefaultEnabled() bool             { return true }
func (t *importsTopic) AutoDetect() []detect.Requirement { return nil }

func (t *importsTopic) Build(opts lint.TopicOptions) []lint.Fragment {
	rules := lint.Rules{
		"import/first":                           lint.Error(),
		"import/no-default-export":               lint.Off(),
		"import/no-duplicates":                   lint.Error(),
		"import/no-mutable-exports":              lint.Error(),
		"import/no-named-default":                lint.Error(),
		"import/no-self-import":                  lint.Error(),
		"import/no-webpack-loader-syntax":        lint.Error(),
		"import/no-cycle":                        lint.Error(),
		"import/no-useless-path-segments":        lint.Error(),
		"import/consistent-type-specifier-style": lint.Entry(lint.SeverityError, "prefer-top-level"),
	}

	return []lint.Fragment{{
		Name: fragmentName("imports", "rules"),
		Plugins: map[string]lint.Plugin{
			"import": plugin("eslint-plugin-import-x"),
		},
		Rules: rules.With(opts.Overrides),
	}}
}
