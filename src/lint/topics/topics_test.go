package topics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sofmeright/lintcompose/src/lint"
)

func build(t *testing.T, name string, opts lint.TopicOptions) []lint.Fragment {
	t.Helper()
	topic, err := lint.Get(name)
	require.NoError(t, err)
	fragments := topic.Build(opts)
	require.NotEmpty(t, fragments)
	return fragments
}

func TestEveryTopicBuilds(t *testing.T) {
	for _, name := range lint.All() {
		t.Run(name, func(t *testing.T) {
			for _, f := range build(t, name, lint.TopicOptions{}) {
				assert.True(t, strings.HasPrefix(f.Name, lint.NamePrefix+"/"), f.Name)
				if f.IsGlobalIgnore() {
					continue
				}
				assert.NotEmpty(t, f.Rules, "fragment %s has no rules", f.Name)
			}
		})
	}
}

func TestEmbeddedTablesDecode(t *testing.T) {
	for _, name := range []string{"javascript.yaml", "unicorn.yaml", "typescript.yaml", "jsx-a11y.yaml", "nextjs.yaml", "vue.yaml"} {
		rules := loadTable(name)
		assert.NotEmpty(t, rules, name)
	}
}

func TestOverridesWinOnCollision(t *testing.T) {
	for _, name := range lint.All() {
		if name == "ignores" {
			continue
		}
		t.Run(name, func(t *testing.T) {
			base := build(t, name, lint.TopicOptions{})[0].Rules
			var victim string
			for _, rule := range base.Names() {
				victim = rule
				break
			}
			require.NotEmpty(t, victim)

			overrides := lint.Rules{victim: lint.Entry(lint.SeverityWarn, "overridden"), "extra/rule": lint.Off()}
			got := build(t, name, lint.TopicOptions{Overrides: overrides})[0].Rules

			assert.Equal(t, overrides[victim], got[victim])
			assert.Equal(t, lint.Off(), got["extra/rule"])
			assert.Len(t, got, len(base)+1)
		})
	}
}

func TestBuildDoesNotMutateTables(t *testing.T) {
	before := len(javascriptRules())
	build(t, "javascript", lint.TopicOptions{Overrides: lint.Rules{"extra/rule": lint.Error()}})
	assert.Len(t, javascriptRules(), before)
	assert.NotContains(t, javascriptRules(), "extra/rule")
}

func TestStylisticSettings(t *testing.T) {
	rules := build(t, "stylistic", lint.TopicOptions{})[0].Rules
	assert.Equal(t, lint.Entry(lint.SeverityError, "single", map[string]any{"allowTemplateLiterals": "always", "avoidEscape": false}), rules["style/quotes"])
	assert.Equal(t, lint.Entry(lint.SeverityError, "never"), rules["style/semi"])
	assert.Equal(t, lint.Off(), rules["style/no-tabs"])
	assert.Contains(t, rules, "style/jsx-quotes")

	custom := build(t, "stylistic", lint.TopicOptions{Settings: map[string]any{
		"indent": 2,
		"quotes": "double",
		"semi":   true,
		"jsx":    false,
	}})[0].Rules
	assert.Equal(t, lint.SeverityError, custom["style/no-tabs"].Severity)
	assert.Equal(t, "double", custom["style/quotes"].Options[0])
	assert.Equal(t, lint.Entry(lint.SeverityError, "always"), custom["style/semi"])
	assert.Equal(t, 2, custom["style/indent"].Options[0])
	assert.NotContains(t, custom, "style/jsx-quotes")
}

func TestStylisticFromSettings(t *testing.T) {
	assert.Equal(t, DefaultStylistic, stylisticFromSettings(nil))

	d := stylisticFromSettings(map[string]any{"indent": int64(4)})
	assert.Equal(t, 4, d.Indent)
	assert.Equal(t, DefaultStylistic.Quotes, d.Quotes)

	d = stylisticFromSettings(map[string]any{"indent": "tab", "semi": "yes"})
	assert.Equal(t, "tab", d.Indent)
	assert.False(t, d.Semi, "wrong type falls back to default")
}

func TestIgnoresPatterns(t *testing.T) {
	f := build(t, "ignores", lint.TopicOptions{Patterns: []string{"fixtures/**"}})[0]

	assert.True(t, f.IsGlobalIgnore())
	assert.Equal(t, "lintcompose/ignores", f.Name)
	assert.Equal(t, GlobExclude, f.Ignores[:len(GlobExclude)])
	assert.Equal(t, "fixtures/**", f.Ignores[len(f.Ignores)-1])
}

func TestTailwindSettings(t *testing.T) {
	f := build(t, "tailwindcss", lint.TopicOptions{Settings: map[string]any{"entryPoint": "src/app.css"}})[0]
	assert.Equal(t, map[string]any{"entryPoint": "src/app.css"}, f.Settings[tailwindSettingsKey])

	f = build(t, "tailwindcss", lint.TopicOptions{})[0]
	assert.Equal(t, map[string]any{}, f.Settings[tailwindSettingsKey])
}

func TestTypescriptRootDir(t *testing.T) {
	f := build(t, "typescript", lint.TopicOptions{Settings: map[string]any{"tsconfigRootDir": "/repo"}})[0]
	parserOptions := f.LanguageOptions["parserOptions"].(map[string]any)
	assert.Equal(t, "/repo", parserOptions["tsconfigRootDir"])
	assert.Equal(t, []string{GlobTS, GlobTSX}, f.Files)
}

func TestFileScopes(t *testing.T) {
	tests := map[string]string{
		"react":       "src/App.tsx",
		"vue":         "src/App.vue",
		"jsonc":       "tsconfig.json",
		"tailwindcss": "src/Button.jsx",
	}
	for topic, path := range tests {
		f := build(t, topic, lint.TopicOptions{})[0]
		eff := lint.Resolve([]lint.Fragment{f}, path)
		assert.Equal(t, []string{f.Name}, eff.Applied, "%s should apply to %s", topic, path)
	}
}
