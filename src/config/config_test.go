package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sofmeright/lintcompose/src/lint"
)

const sampleYAML = `version: 1
root: web

typescript: false
react: true
stylistic:
  indent: 2
  semi: true
  overrides:
    style/quotes: [error, double]
ignores:
  - fixtures/**
vue:
  overrides:
    vue/multi-word-component-names: "off"

custom:
  - name: tests
    files: ["**/*.test.ts"]
    rules:
      no-console: "off"
  - name: tailwind-plugin
    plugins:
      tw: eslint-plugin-tailwind
      local: {package: ./lint, export: rules}

overrides:
  no-console: warn
  eqeqeq: [error, smart]
`

const sampleTOML = `version = 1
typescript = false
react = true
ignores = ["fixtures/**"]

[stylistic]
indent = 2
semi = true

[stylistic.overrides]
"style/quotes" = ["error", "double"]

[[custom]]
name = "tests"
files = ["**/*.test.ts"]

[custom.rules]
no-console = "off"

[overrides]
no-console = "warn"
eqeqeq = ["error", "smart"]
`

func TestParseYAML(t *testing.T) {
	cfg, err := Parse([]byte(sampleYAML), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, "web", cfg.Root)
	assert.Equal(t, []string{"ignores", "react", "stylistic", "typescript", "vue"}, cfg.TopicNames())

	assert.True(t, cfg.Topics["typescript"].IsSet())
	assert.False(t, cfg.Topics["typescript"].Enabled())
	assert.True(t, cfg.Topics["react"].Enabled())

	style := cfg.Topics["stylistic"]
	require.True(t, style.Enabled())
	assert.Equal(t, lint.Entry(lint.SeverityError, "double"), style.Options.Overrides["style/quotes"])
	assert.Equal(t, 2, style.Options.Settings["indent"])
	assert.Equal(t, true, style.Options.Settings["semi"])

	assert.Equal(t, []string{"fixtures/**"}, cfg.Topics["ignores"].Options.Patterns)
	assert.Equal(t, lint.Off(), cfg.Topics["vue"].Options.Overrides["vue/multi-word-component-names"])

	require.Len(t, cfg.Custom, 2)
	assert.Equal(t, lint.CustomConfig{
		Name:  "tests",
		Files: []string{"**/*.test.ts"},
		Rules: lint.Rules{"no-console": lint.Off()},
	}, cfg.Custom[0])
	assert.Equal(t, map[string]lint.Plugin{
		"tw":    {Package: "eslint-plugin-tailwind"},
		"local": {Package: "./lint", Export: "rules"},
	}, cfg.Custom[1].Plugins)
	assert.Nil(t, cfg.Custom[1].Rules)

	assert.Equal(t, lint.Rules{
		"no-console": lint.Warn(),
		"eqeqeq":     lint.Entry(lint.SeverityError, "smart"),
	}, cfg.Overrides)
}

func TestParseTOMLMatchesYAML(t *testing.T) {
	cfg, err := Parse([]byte(sampleTOML), FormatTOML)
	require.NoError(t, err)

	assert.False(t, cfg.Topics["typescript"].Enabled())
	assert.True(t, cfg.Topics["react"].Enabled())
	assert.Equal(t, []string{"fixtures/**"}, cfg.Topics["ignores"].Options.Patterns)

	style := cfg.Topics["stylistic"].Options
	assert.Equal(t, lint.Entry(lint.SeverityError, "double"), style.Overrides["style/quotes"])
	assert.Equal(t, 2, lint.GetIntOption(style.Settings, "indent", 0))

	require.Len(t, cfg.Custom, 1)
	assert.Equal(t, lint.Off(), cfg.Custom[0].Rules["no-console"])
	assert.Equal(t, lint.Entry(lint.SeverityError, "smart"), cfg.Overrides["eqeqeq"])
}

func TestParseErrors(t *testing.T) {
	tests := map[string]string{
		"bad severity":   "overrides:\n  no-console: loud\n",
		"bad toggle":     "react: 3\n",
		"unknown key":    "custom:\n  - name: x\n    flies: [a]\n",
		"bad pattern":    "ignores: [1]\n",
		"malformed yaml": "react: [\n",
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(src), FormatYAML)
			assert.Error(t, err)
		})
	}
}

func TestParseToggle(t *testing.T) {
	tg, err := ParseToggle(nil)
	require.NoError(t, err)
	assert.False(t, tg.IsSet())

	tg, err = ParseToggle(true)
	require.NoError(t, err)
	assert.True(t, tg.Enabled())

	tg, err = ParseToggle(map[string]any{})
	require.NoError(t, err)
	assert.True(t, tg.Enabled(), "an options table means on")

	tg, err = ParseToggle(map[string]any{
		"settings": map[string]any{"quotes": "double"},
		"semi":     true,
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"quotes": "double", "semi": true}, tg.Options.Settings)
}

func TestLoad(t *testing.T) {
	t.Run("missing default file gives defaults", func(t *testing.T) {
		t.Chdir(t.TempDir())
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, 1, cfg.Version)
		assert.Empty(t, cfg.Topics)
		assert.Empty(t, cfg.File)
	})

	t.Run("default file discovered", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		require.NoError(t, os.WriteFile(".lintcompose.toml", []byte("react = true\n"), 0o644))

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, ".lintcompose.toml", cfg.File)
		assert.True(t, cfg.Topics["react"].Enabled())
	})

	t.Run("relative root resolves against config dir", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "conf", "lint.yml")
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("version: 1\nroot: ../app\n"), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "app"), cfg.Root)
	})

	t.Run("parse error names the file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "bad.yml")
		require.NoError(t, os.WriteFile(path, []byte("react: 3\n"), 0o644))

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), path)
	})
}

func TestOptionsRoundTrip(t *testing.T) {
	cfg, err := Parse([]byte(sampleYAML), FormatYAML)
	require.NoError(t, err)

	opts := cfg.Options()
	assert.False(t, opts.Toggle("typescript").Enabled())
	assert.True(t, opts.Toggle("typescript").IsSet())
	assert.False(t, opts.Toggle("nextjs").IsSet())
	assert.Len(t, opts.CustomConfigs, 2)
	assert.Len(t, opts.Overrides, 2)

	// Options owns its topic map.
	opts.Set("nextjs", lint.Enable())
	assert.NotContains(t, cfg.Topics, "nextjs")
}
