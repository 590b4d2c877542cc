package topics

import (
	"github.com/sofmeright/lintcompose/src/detect"
	"github.com/sofmeright/lintcompose/src/lint"
)

func init() {
	lint.Register("vue", priorityVue, func() lint.Topic { return &vueTopic{} })
}

var vueRules = lazyTable("vue.yaml")

type vueTopic struct{}

func (t *vueTopic) Name() string         { return "vue" }
func (t *vueTopic) DefaultEnabled() bool { return false }
func (t *vueTopic) AutoDetect() []detect.Requirement {
	return []detect.Requirement{detect.Require("vue")}
}

func (t *vueTopic) Build(opts lint.TopicOptions) []lint.Fragment {
	return []lint.Fragment{{
		Name:  fragmentName("vue", "rules"),
		Files: []string{GlobVue},
		Plugins: map[string]lint.Plugin{
			"vue": plugin("eslint-plugin-vue"),
		},
		LanguageOptions: map[string]any{
			"parser": "vue-eslint-parser",
			"parserOptions": map[string]any{
				"ecmaFeatures":        map[string]any{"jsx": true},
				"extraFileExtensions": []any{".vue"},
				"sourceType":          "module",
			},
		},
		Rules: vueRules().With(opts.Overrides),
	}}
}
