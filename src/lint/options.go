package lint

// TopicOptions configures a single topic's fragment.
type TopicOptions struct {
	// Overrides are layered last onto the topic's base rules.
	Overrides Rules `json:"overrides,omitempty" yaml:"overrides,omitempty" mapstructure:"overrides"`

	// Settings are topic-specific knobs (stylistic indent, tailwind entry point, ...).
	Settings map[string]any `json:"settings,omitempty" yaml:"settings,omitempty" mapstructure:"settings"`

	// Patterns extends the ignores topic's built-in exclude list.
	Patterns []string `json:"patterns,omitempty" yaml:"patterns,omitempty" mapstructure:"patterns"`
}

type toggleState uint8

const (
	toggleUnset toggleState = iota
	toggleOff
	toggleOn
)

// Toggle is a topic's enablement as supplied by the caller: unset, a plain
// on/off switch, or an options object. An options object always means on.
type Toggle struct {
	state   toggleState
	Options TopicOptions
}

// Enable switches a topic on with no overrides.
func Enable() Toggle { return Toggle{state: toggleOn} }

// Disable switches a topic off regardless of auto-detection.
func Disable() Toggle { return Toggle{state: toggleOff} }

// With switches a topic on with the given options.
func With(opts TopicOptions) Toggle { return Toggle{state: toggleOn, Options: opts} }

// Overrides is shorthand for With(TopicOptions{Overrides: rules}).
func Overrides(rules Rules) Toggle { return With(TopicOptions{Overrides: rules}) }

// Bool converts a plain boolean.
func Bool(on bool) Toggle {
	if on {
		return Enable()
	}
	return Disable()
}

// IsSet reports whether the caller made an explicit choice.
func (t Toggle) IsSet() bool { return t.state != toggleUnset }

// Enabled reports the explicit choice. Unset toggles report false.
func (t Toggle) Enabled() bool { return t.state == toggleOn }

// CustomConfig is a caller-defined fragment appended after all topics.
type CustomConfig struct {
	Name     string            `json:"name" yaml:"name" mapstructure:"name"`
	Files    []string          `json:"files,omitempty" yaml:"files,omitempty" mapstructure:"files"`
	Ignores  []string          `json:"ignores,omitempty" yaml:"ignores,omitempty" mapstructure:"ignores"`
	Plugins  map[string]Plugin `json:"plugins,omitempty" yaml:"plugins,omitempty" mapstructure:"plugins"`
	Settings map[string]any    `json:"settings,omitempty" yaml:"settings,omitempty" mapstructure:"settings"`
	Rules    Rules             `json:"rules,omitempty" yaml:"rules,omitempty" mapstructure:"rules"`
}

// Options is the composer's input.
type Options struct {
	// Topics holds toggles keyed by topic name. Missing keys are unset.
	Topics map[string]Toggle

	// CustomConfigs are appended after every topic fragment.
	CustomConfigs []CustomConfig

	// Overrides, when non-empty, becomes the final fragment.
	Overrides Rules
}

// Toggle returns the caller's toggle for a topic, unset when absent.
func (o Options) Toggle(topic string) Toggle {
	if o.Topics == nil {
		return Toggle{}
	}
	return o.Topics[topic]
}

// Set records a toggle and returns the options for chaining.
func (o *Options) Set(topic string, t Toggle) *Options {
	if o.Topics == nil {
		o.Topics = make(map[string]Toggle)
	}
	o.Topics[topic] = t
	return o
}

// GetOption extracts a typed setting with a default value.
func GetOption[T any](opts map[string]any, key string, defaultVal T) T {
	if opts == nil {
		return defaultVal
	}
	v, ok := opts[key]
	if !ok {
		return defaultVal
	}
	if typed, ok := v.(T); ok {
		return typed
	}
	return defaultVal
}

// GetIntOption extracts an int setting, handling the numeric types decoders produce.
func GetIntOption(opts map[string]any, key string, defaultVal int) int {
	if opts == nil {
		return defaultVal
	}
	v, ok := opts[key]
	if !ok {
		return defaultVal
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case uint64:
		return int(n)
	case float64:
		return int(n)
	default:
		return defaultVal
	}
}

// GetStringSliceOption extracts a string slice setting.
func GetStringSliceOption(opts map[string]any, key string, defaultVal []string) []string {
	if opts == nil {
		return defaultVal
	}
	v, ok := opts[key]
	if !ok {
		return defaultVal
	}
	switch s := v.(type) {
	case []string:
		return s
	case []any:
		result := make([]string, 0, len(s))
		for _, item := range s {
			if str, ok := item.(string); ok {
				result = append(result, str)
			}
		}
		return result
	default:
		return defaultVal
	}
}
