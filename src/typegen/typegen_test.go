package typegen

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sofmeright/lintcompose/src/lint"
	_ "github.com/sofmeright/lintcompose/src/lint/topics"
)

func TestCollectCoversEveryTopic(t *testing.T) {
	m, err := Collect()
	require.NoError(t, err)

	assert.Equal(t, lint.All(), m.Topics)
	assert.Contains(t, m.Configs, "lintcompose/typescript/rules")
	assert.Contains(t, m.Configs, "lintcompose/ignores")
	assert.Contains(t, m.Rules, "style/semi")
	assert.Contains(t, m.Rules, "react-hooks/rules-of-hooks")
	assert.True(t, sortedUnique(m.Rules), "rules must be sorted and unique")
}

func sortedUnique(s []string) bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] >= s[i] {
			return false
		}
	}
	return true
}

func TestWriteDTS(t *testing.T) {
	m := &Manifest{
		Configs: []string{"lintcompose/a", "lintcompose/b"},
		Rules:   []string{"eqeqeq", "style/it's"},
	}
	var buf bytes.Buffer
	require.NoError(t, m.WriteDTS(&buf))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "/* eslint-disable */"))
	assert.Contains(t, out, "  'eqeqeq'?: Linter.RuleEntry<any[]>\n")
	assert.Contains(t, out, `'style/it\'s'?:`)
	assert.Contains(t, out, "export type ConfigNames = 'lintcompose/a' | 'lintcompose/b'\n")
}

func TestWriteDTSEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&Manifest{}).WriteDTS(&buf))
	assert.Contains(t, buf.String(), "export interface Rules {\n}")
	assert.Contains(t, buf.String(), "export type ConfigNames = never")
}

func TestWriteJSON(t *testing.T) {
	m := &Manifest{Topics: []string{"javascript"}, Configs: []string{"c"}, Rules: []string{"r"}}
	var buf bytes.Buffer
	require.NoError(t, m.WriteJSON(&buf))

	var back Manifest
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, *m, back)
}
