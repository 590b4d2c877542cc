package lint

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		in   any
		want Severity
	}{
		{"off", SeverityOff},
		{"warn", SeverityWarn},
		{"warning", SeverityWarn},
		{"Error", SeverityError},
		{"2", SeverityError},
		{0, SeverityOff},
		{int64(1), SeverityWarn},
		{uint64(2), SeverityError},
		{float64(1), SeverityWarn},
	}
	for _, tt := range tests {
		got, err := ParseSeverity(tt.in)
		require.NoError(t, err, "input %v", tt.in)
		assert.Equal(t, tt.want, got, "input %v", tt.in)
	}

	for _, bad := range []any{"fatal", 3, -1, true, nil} {
		_, err := ParseSeverity(bad)
		assert.Error(t, err, "input %v", bad)
	}
}

func TestParseRuleEntry(t *testing.T) {
	e, err := ParseRuleEntry("warn")
	require.NoError(t, err)
	assert.Equal(t, Warn(), e)
	assert.Nil(t, e.Options)

	e, err = ParseRuleEntry([]any{"error", "always", map[string]any{"max": 1}})
	require.NoError(t, err)
	assert.Equal(t, SeverityError, e.Severity)
	assert.Equal(t, []any{"always", map[string]any{"max": 1}}, e.Options)

	e, err = ParseRuleEntry([]any{2})
	require.NoError(t, err)
	assert.Equal(t, Error(), e)

	_, err = ParseRuleEntry([]any{})
	assert.Error(t, err)
}

func TestRuleEntryJSON(t *testing.T) {
	rules := Rules{
		"eqeqeq":     Entry(SeverityError, "smart"),
		"no-console": Off(),
	}
	data, err := json.Marshal(rules)
	require.NoError(t, err)
	assert.JSONEq(t, `{"eqeqeq":["error","smart"],"no-console":"off"}`, string(data))

	var back Rules
	require.NoError(t, json.Unmarshal([]byte(`{"a":1,"b":["warn",{"x":true}]}`), &back))
	assert.Equal(t, Warn(), back["a"])
	assert.Equal(t, Entry(SeverityWarn, map[string]any{"x": true}), back["b"])
}

func TestRuleEntryYAML(t *testing.T) {
	var rules Rules
	src := "curly: error\nquotes: [error, single]\nno-var: 'off'\n"
	require.NoError(t, yaml.Unmarshal([]byte(src), &rules))
	assert.Equal(t, Error(), rules["curly"])
	assert.Equal(t, Entry(SeverityError, "single"), rules["quotes"])
	assert.Equal(t, Off(), rules["no-var"])

	out, err := yaml.Marshal(Rules{"curly": Error()})
	require.NoError(t, err)
	assert.Equal(t, "curly: error\n", string(out))
}

func TestRulesWith(t *testing.T) {
	base := Rules{"a": Error(), "b": Warn()}
	got := base.With(Rules{"b": Off(), "c": Error()})

	assert.Equal(t, Rules{"a": Error(), "b": Off(), "c": Error()}, got)
	assert.Equal(t, Warn(), base["b"], "base must not be modified")
	assert.Equal(t, []string{"a", "b", "c"}, got.Names())
}

func TestMerge(t *testing.T) {
	got := Merge(Rules{"a": Warn()}, nil, Rules{"a": Error(), "b": Off()})
	assert.Equal(t, Rules{"a": Error(), "b": Off()}, got)
	assert.NotNil(t, Merge())
}

func TestRuleEntryJSONNotHTMLEscaped(t *testing.T) {
	data, err := Entry(SeverityError, "<T>", map[string]any{"pattern": "a&b"}).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `["error","<T>",{"pattern":"a&b"}]`, string(data))
}
