package lint

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestFragmentJSONKeepsEmptyFields(t *testing.T) {
	f := Fragment{
		Name:     "lintcompose/custom/empty",
		Files:    []string{},
		Settings: map[string]any{},
		Rules:    Rules{},
	}
	data, err := json.Marshal(f)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"lintcompose/custom/empty","files":[],"settings":{},"rules":{}}`, string(data))

	data, err = json.Marshal(Fragment{Name: "unset"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"unset"}`, string(data))
}

func TestFragmentYAMLKeepsEmptyFields(t *testing.T) {
	out, err := yaml.Marshal(Fragment{Name: "x", Rules: Rules{}, Plugins: map[string]Plugin{}})
	require.NoError(t, err)
	assert.Equal(t, "name: x\nplugins: {}\nrules: {}\n", string(out))

	out, err = yaml.Marshal(Fragment{Name: "x", Ignores: []string{"a"}})
	require.NoError(t, err)
	assert.Equal(t, "name: x\nignores:\n    - a\n", string(out))
}

func TestFragmentJSONRoundTrip(t *testing.T) {
	in := Fragment{
		Name:    "lintcompose/custom/tests",
		Files:   []string{"**/*.test.ts"},
		Plugins: map[string]Plugin{"x": {Package: "eslint-plugin-x"}},
		Rules:   Rules{"x/rule": Entry(SeverityWarn, map[string]any{"max": float64(3)})},
	}
	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out Fragment
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}
