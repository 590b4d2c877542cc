package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	fragments := []Fragment{
		{Name: "base", Files: []string{"**/*.{js,ts}"}, Rules: Rules{
			"quotes":     Entry(SeverityError, "single"),
			"no-console": Warn(),
		}, Settings: map[string]any{"react": map[string]any{"version": "detect"}}},
		{Name: "ignores", Ignores: []string{"**/dist"}},
		{Name: "ts", Files: []string{"**/*.ts"}, Ignores: []string{"**/*.d.ts"}, Rules: Rules{
			"quotes": Warn(),
		}, Settings: map[string]any{"react": map[string]any{"pragma": "h"}}},
		{Name: "overrides", Rules: Rules{"no-console": Off()}},
	}

	t.Run("later fragment wins", func(t *testing.T) {
		eff := Resolve(fragments, "src/app.ts")
		require.False(t, eff.Ignored)
		assert.Equal(t, []string{"base", "ts", "overrides"}, eff.Applied)
		assert.Equal(t, Off(), eff.Rules["no-console"])
		assert.Equal(t, "overrides", eff.Sources["no-console"])
	})

	t.Run("severity-only entry keeps options", func(t *testing.T) {
		eff := Resolve(fragments, "src/app.ts")
		assert.Equal(t, Entry(SeverityWarn, "single"), eff.Rules["quotes"])
		assert.Equal(t, "ts", eff.Sources["quotes"])
	})

	t.Run("settings deep merge", func(t *testing.T) {
		eff := Resolve(fragments, "src/app.ts")
		assert.Equal(t, map[string]any{"version": "detect", "pragma": "h"}, eff.Settings["react"])
	})

	t.Run("fragment ignores", func(t *testing.T) {
		eff := Resolve(fragments, "types/env.d.ts")
		assert.Equal(t, []string{"base", "overrides"}, eff.Applied)
		assert.Equal(t, Entry(SeverityError, "single"), eff.Rules["quotes"])
	})

	t.Run("global ignore", func(t *testing.T) {
		eff := Resolve(fragments, "./dist/app.js")
		assert.True(t, eff.Ignored)
		assert.Empty(t, eff.Applied)
		assert.Empty(t, eff.Rules)
		assert.Equal(t, "dist/app.js", eff.Path)
	})

	t.Run("unscoped fragment only", func(t *testing.T) {
		eff := Resolve(fragments, "README.md")
		assert.Equal(t, []string{"overrides"}, eff.Applied)
		assert.Len(t, eff.Rules, 1)
	})
}

func TestMergeEntry(t *testing.T) {
	prev := Entry(SeverityError, "always")

	assert.Equal(t, Entry(SeverityWarn, "always"), mergeEntry(prev, Warn(), true))
	assert.Equal(t, Entry(SeverityWarn, "never"), mergeEntry(prev, Entry(SeverityWarn, "never"), true))
	assert.Equal(t, Warn(), mergeEntry(RuleEntry{}, Warn(), false))
}

func TestIsGlobalIgnore(t *testing.T) {
	assert.True(t, Fragment{Name: "x", Ignores: []string{"a"}}.IsGlobalIgnore())
	assert.False(t, Fragment{Ignores: []string{"a"}, Files: []string{"b"}}.IsGlobalIgnore())
	assert.False(t, Fragment{Ignores: []string{"a"}, Rules: Rules{}}.IsGlobalIgnore())
	assert.False(t, Fragment{}.IsGlobalIgnore())
}
