package topics

import (
	"github.com/sofmeright/lintcompose/src/detect"
	"github.com/sofmeright/lintcompose/src/lint"
)

func init() {
	lint.Register("ignores", priorityIgnores, func() lint.Topic { return &ignoresTopic{} })
}

type ignoresTopic struct{}

func (t *ignoresTopic) Name() string                     { return "ignores" }
func (t *ignoresTopic) DefaultEnabled() bool             { return true }
func (t *ignoresTopic) AutoDetect() []detect.Requirement { return nil }

// Build emits a global-ignore fragment: built-in excludes plus opts.Patterns.
// Overrides and settings do not apply to an ignore-only fragment.
func (t *ignoresTopic) Build(opts lint.TopicOptions) []lint.Fragment {
	patterns := make([]string, 0, len(GlobExclude)+len(opts.Patterns))
	patterns = append(patterns, GlobExclude...)
	patterns = append(patterns, opts.Patterns...)

	return []lint.Fragment{{
		Name:    fragmentName("ignores"),
		Ignores: patterns,
	}}
}
