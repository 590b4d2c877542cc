package detect

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequirementSatisfied(t *testing.T) {
	env := Static{"react": "18.2.0", "vue": ""}

	tests := []struct {
		req  Requirement
		want bool
	}{
		{Require("react"), true},
		{Requirement{Package: "react", Constraint: ">=18"}, true},
		{Requirement{Package: "react", Constraint: "<18"}, false},
		{Requirement{Package: "vue", Constraint: ">=3"}, true}, // version unknown
		{Requirement{Package: "react", Constraint: "not a range"}, false},
		{Require("svelte"), false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.req.Satisfied(env), tt.req.String())
	}
	assert.False(t, Require("react").Satisfied(nil))
}

func TestRequirementString(t *testing.T) {
	assert.Equal(t, "react", Require("react").String())
	assert.Equal(t, "vue@^3", Requirement{Package: "vue", Constraint: "^3"}.String())
}

func TestAnySatisfied(t *testing.T) {
	env := Assume("preact")
	got, ok := AnySatisfied(env, []Requirement{Require("react"), Require("preact")})
	require.True(t, ok)
	assert.Equal(t, "preact", got.Package)

	_, ok = AnySatisfied(env, nil)
	assert.False(t, ok)
}

func TestStaticVersion(t *testing.T) {
	env := Static{"next": "14.1.0", "vue": "", "bad": "nope"}

	v, ok := env.Version("next")
	require.True(t, ok)
	assert.Equal(t, "14.1.0", v.String())

	_, ok = env.Version("vue")
	assert.False(t, ok)
	_, ok = env.Version("bad")
	assert.False(t, ok)
	_, ok = env.Version("missing")
	assert.False(t, ok)
}

func TestLayered(t *testing.T) {
	env := Layered{Assume("react"), nil, Static{"react": "17.0.0", "vue": "3.0.0"}}

	assert.True(t, env.Has("react"))
	assert.True(t, env.Has("vue"))
	assert.False(t, env.Has("next"))

	// The first layer that has the package answers, even without a version.
	_, ok := env.Version("react")
	assert.False(t, ok)

	v, ok := env.Version("vue")
	require.True(t, ok)
	assert.Equal(t, uint64(3), v.Major())
}

// countingEnv records how often each lookup reaches it.
type countingEnv struct {
	Static
	calls atomic.Int32
}

func (c *countingEnv) Has(pkg string) bool {
	c.calls.Add(1)
	return c.Static.Has(pkg)
}

func (c *countingEnv) Version(pkg string) (*semver.Version, bool) {
	c.calls.Add(1)
	return c.Static.Version(pkg)
}

func TestMemo(t *testing.T) {
	inner := &countingEnv{Static: Static{"react": "18.0.0"}}
	m := Memoize(inner)
	assert.Same(t, m, Memoize(m))

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.True(t, m.Has("react"))
			assert.False(t, m.Has("vue"))
		}()
	}
	wg.Wait()

	before := inner.calls.Load()
	assert.True(t, m.Has("react"))
	assert.False(t, m.Has("vue"))
	assert.Equal(t, before, inner.calls.Load(), "cached lookups must not reach the environment")

	v, ok := m.Version("react")
	require.True(t, ok)
	assert.Equal(t, "18.0.0", v.String())
	_, ok = m.Version("vue")
	assert.False(t, ok)

	before = inner.calls.Load()
	m.Version("react")
	m.Version("vue")
	assert.Equal(t, before, inner.calls.Load())
}
