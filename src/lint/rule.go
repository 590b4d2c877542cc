package lint

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Severity is the level a rule reports at in the consuming linter.
type Severity int

const (
	SeverityOff Severity = iota
	SeverityWarn
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityOff:
		return "off"
	case SeverityWarn:
		return "warn"
	case SeverityError:
		return "error"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// ParseSeverity accepts the string and numeric spellings the linter accepts.
func ParseSeverity(v any) (Severity, error) {
	switch s := v.(type) {
	case Severity:
		return s, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "off", "0":
			return SeverityOff, nil
		case "warn", "warning", "1":
			return SeverityWarn, nil
		case "error", "2":
			return SeverityError, nil
		}
		return 0, fmt.Errorf("lint: unknown severity %q", s)
	case int:
		return severityFromInt(int64(s))
	case int64:
		return severityFromInt(s)
	case uint64:
		return severityFromInt(int64(s))
	case float64:
		return severityFromInt(int64(s))
	default:
		return 0, fmt.Errorf("lint: unsupported severity type %T", v)
	}
}

func severityFromInt(n int64) (Severity, error) {
	if n < 0 || n > 2 {
		return 0, fmt.Errorf("lint: severity out of range: %d", n)
	}
	return Severity(n), nil
}

// RuleEntry is a rule's severity plus any rule-specific options.
type RuleEntry struct {
	Severity Severity
	Options  []any
}

// Off, Warn and Error build option-less entries.
func Off() RuleEntry   { return RuleEntry{Severity: SeverityOff} }
func Warn() RuleEntry  { return RuleEntry{Severity: SeverityWarn} }
func Error() RuleEntry { return RuleEntry{Severity: SeverityError} }

// Entry builds an entry with options.
func Entry(sev Severity, opts ...any) RuleEntry {
	return RuleEntry{Severity: sev, Options: opts}
}

// ParseRuleEntry converts a decoded value ("error", 2, ["warn", {...}]) into a RuleEntry.
func ParseRuleEntry(v any) (RuleEntry, error) {
	switch e := v.(type) {
	case RuleEntry:
		return e, nil
	case []any:
		if len(e) == 0 {
			return RuleEntry{}, fmt.Errorf("lint: empty rule entry")
		}
		sev, err := ParseSeverity(e[0])
		if err != nil {
			return RuleEntry{}, err
		}
		entry := RuleEntry{Severity: sev}
		if len(e) > 1 {
			entry.Options = append([]any(nil), e[1:]...)
		}
		return entry, nil
	default:
		sev, err := ParseSeverity(v)
		if err != nil {
			return RuleEntry{}, err
		}
		return RuleEntry{Severity: sev}, nil
	}
}

func (e RuleEntry) wire() any {
	if len(e.Options) == 0 {
		return e.Severity.String()
	}
	out := make([]any, 0, len(e.Options)+1)
	out = append(out, e.Severity.String())
	return append(out, e.Options...)
}

// MarshalJSON writes "sev" or ["sev", opts...].
func (e RuleEntry) MarshalJSON() ([]byte, error) {
	return marshalJSON(e.wire())
}

// marshalJSON is json.Marshal without HTML escaping. Escaping done inside a
// Marshaler survives the caller's SetEscapeHTML(false).
func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// UnmarshalJSON accepts every spelling ParseRuleEntry does.
func (e *RuleEntry) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseRuleEntry(raw)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

func (e RuleEntry) MarshalYAML() (any, error) {
	return e.wire(), nil
}

func (e *RuleEntry) UnmarshalYAML(node *yaml.Node) error {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	parsed, err := ParseRuleEntry(raw)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// Rules maps rule names to entries.
type Rules map[string]RuleEntry

// With returns a new table holding r with overrides applied last.
// Neither input is modified.
func (r Rules) With(overrides Rules) Rules {
	out := make(Rules, len(r)+len(overrides))
	for name, e := range r {
		out[name] = e
	}
	for name, e := range overrides {
		out[name] = e
	}
	return out
}

// Merge combines tables left to right; later tables win.
func Merge(tables ...Rules) Rules {
	out := Rules{}
	for _, t := range tables {
		for name, e := range t {
			out[name] = e
		}
	}
	return out
}

// Names returns the rule names in sorted order.
func (r Rules) Names() []string {
	return sortedKeys(r)
}
