// Package typegen renders the editor-assistance artifact: every rule name
// and every fragment name the topic catalog can produce.
package typegen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/template"

	"github.com/sofmeright/lintcompose/src/lint"
)

// Manifest lists everything the catalog can emit.
type Manifest struct {
	Topics  []string `json:"topics"`
	Configs []string `json:"configs"`
	Rules   []string `json:"rules"`
}

// Collect builds every registered topic with empty options, regardless of
// enablement, and gathers rule and fragment names.
func Collect() (*Manifest, error) {
	m := &Manifest{}
	rules := map[string]bool{}

	for _, name := range lint.All() {
		t, err := lint.Get(name)
		if err != nil {
			return nil, err
		}
		m.Topics = append(m.Topics, name)
		for _, f := range t.Build(lint.TopicOptions{}) {
			if f.Name != "" {
				m.Configs = append(m.Configs, f.Name)
			}
			for rule := range f.Rules {
				rules[rule] = true
			}
		}
	}

	for rule := range rules {
		m.Rules = append(m.Rules, rule)
	}
	sort.Strings(m.Rules)
	return m, nil
}

var dtsTemplate = template.Must(template.New("dts").Funcs(template.FuncMap{
	"quote": quoteTS,
	"union": func(names []string) string {
		if len(names) == 0 {
			return "never"
		}
		quoted := make([]string, len(names))
		for i, n := range names {
			quoted[i] = quoteTS(n)
		}
		return strings.Join(quoted, " | ")
	},
}).Parse(`/* eslint-disable */
/* prettier-ignore */
// Code generated by lintcompose typegen. DO NOT EDIT.
import type { Linter } from 'eslint'

export interface Rules {
{{- range .Rules }}
  {{ quote . }}?: Linter.RuleEntry<any[]>
{{- end }}
}

export type ConfigNames = {{ union .Configs }}
`))

// WriteDTS renders the manifest as a TypeScript declaration file.
func (m *Manifest) WriteDTS(w io.Writer) error {
	var buf bytes.Buffer
	if err := dtsTemplate.Execute(&buf, m); err != nil {
		return fmt.Errorf("rendering declarations: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// WriteJSON renders the manifest as indented JSON.
func (m *Manifest) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(m)
}

// quoteTS renders s as a single-quoted TypeScript string literal.
func quoteTS(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	return "'" + s + "'"
}
