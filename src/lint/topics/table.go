package topics

import (
	"embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/sofmeright/lintcompose/src/lint"
)

//go:embed data/*.yaml
var tableFS embed.FS

// loadTable decodes an embedded rule table. Tables ship with the binary,
// so a decode failure is a build defect.
func loadTable(name string) lint.Rules {
	data, err := tableFS.ReadFile("data/" + name)
	if err != nil {
		panic(fmt.Sprintf("topics: missing rule table %s: %v", name, err))
	}
	var rules lint.Rules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		panic(fmt.Sprintf("topics: decoding rule table %s: %v", name, err))
	}
	return rules
}

// lazyTable defers decoding until a topic that needs the table is built.
func lazyTable(name string) func() lint.Rules {
	return sync.OnceValue(func() lint.Rules { return loadTable(name) })
}

func plugin(pkg string) lint.Plugin { return lint.Plugin{Package: pkg} }

func fragmentName(parts ...string) string {
	name := lint.NamePrefix
	for _, p := range parts {
		name += "/" + p
	}
	return name
}

func jsxLanguageOptions() map[string]any {
	return map[string]any{
		"parserOptions": map[string]any{
			"ecmaFeatures": map[string]any{"jsx": true},
		},
	}
}
