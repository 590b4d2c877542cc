package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"github.com/sofmeright/lintcompose/src/lint"
)

// Colors for terminal output.
const (
	colorReset   = "\033[0m"
	colorRed     = "\033[31m"
	colorYellow  = "\033[33m"
	colorGreen   = "\033[32m"
	colorGray    = "\033[90m"
	colorDimCyan = "\033[2;36m"
)

// Format selects how fragments are serialized.
type Format string

const (
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatSummary Format = "summary"
)

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatJSON, FormatYAML, FormatSummary:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown format %q (supported: json, yaml, summary)", s)
	}
}

// WriteFragments serializes the fragment sequence in order.
func WriteFragments(w io.Writer, fragments []lint.Fragment, format Format) error {
	if fragments == nil {
		fragments = []lint.Fragment{}
	}
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(fragments); err != nil {
			return err
		}
		return enc.Close()
	case FormatSummary:
		FragmentTable(w, fragments, 0, false)
		return nil
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(fragments)
	}
}

// FragmentTable writes one row per fragment: name, file scope, rule count.
// A non-zero elapsed is shown in the header.
func FragmentTable(w io.Writer, fragments []lint.Fragment, elapsed time.Duration, color bool) {
	sec := NewSection(w, "Fragments", elapsed, color)
	sec.Row("%-40s %-24s %s", "fragment", "files", "rules")
	sec.Separator()

	total := 0
	for _, f := range fragments {
		scope := "*"
		switch {
		case f.IsGlobalIgnore():
			scope = fmt.Sprintf("ignore %d patterns", len(f.Ignores))
		case len(f.Files) > 0:
			scope = strings.Join(f.Files, " ")
		}
		if len(scope) > 24 {
			scope = scope[:21] + "..."
		}
		sec.Row("%-40s %-24s %5d", f.Name, Dimmed(scope, color), len(f.Rules))
		total += len(f.Rules)
	}

	sec.Separator()
	sec.Row("%-40s %-24s %5d", fmt.Sprintf("%d fragments", len(fragments)), "", total)
	sec.Close()
}

// PlanTable writes each topic decision with a status icon.
func PlanTable(w io.Writer, decisions []lint.Decision, color bool) {
	sec := NewSection(w, "Topics", 0, color)
	enabled := 0
	for _, d := range decisions {
		status := "skipped"
		if d.Enabled {
			status = "success"
			enabled++
		}
		detail := string(d.Reason)
		if d.Reason == lint.ReasonDetected {
			detail = fmt.Sprintf("%s (%s)", d.Reason, d.Matched)
		}
		if n := len(d.Options.Overrides); n > 0 {
			detail += fmt.Sprintf(", %d overrides", n)
		}
		sec.Row("%-14s%s  %s", d.Topic, StatusIcon(status, color), Dimmed(detail, color))
	}
	sec.Separator()
	sec.Row("%d of %d topics enabled", enabled, len(decisions))
	sec.Close()
}

// EffectiveTable writes the resolved rules for one file.
func EffectiveTable(w io.Writer, eff lint.Effective, color bool) {
	sec := NewSection(w, eff.Path, 0, color)
	if eff.Ignored {
		sec.Row("%s", Dimmed("ignored", color))
		sec.Close()
		return
	}

	for _, name := range eff.Applied {
		sec.Row("%s %s", Dimmed("applies", color), name)
	}
	sec.Separator()

	counts := map[lint.Severity]int{}
	for _, name := range eff.Rules.Names() {
		e := eff.Rules[name]
		counts[e.Severity]++
		sec.Row("%-5s %-52s %s", severityTag(e.Severity, color), name, Dimmed(eff.Sources[name], color))
	}
	sec.Separator()
	sec.Row("%d rules: %d error, %d warn, %d off",
		len(eff.Rules), counts[lint.SeverityError], counts[lint.SeverityWarn], counts[lint.SeverityOff])
	sec.Close()
}

// severityTag returns a short severity label, optionally colored.
func severityTag(s lint.Severity, color bool) string {
	switch s {
	case lint.SeverityError:
		if color {
			return colorRed + "ERR " + colorReset
		}
		return "ERR"
	case lint.SeverityWarn:
		if color {
			return colorYellow + "WARN" + colorReset
		}
		return "WARN"
	case lint.SeverityOff:
		if color {
			return colorGray + "OFF " + colorReset
		}
		return "OFF"
	default:
		return s.String()
	}
}

func isTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// IsCI reports whether we are running under a CI system.
func IsCI() bool {
	return os.Getenv("CI") == "true"
}

// UseColor returns true if colored output should be used.
// Respects NO_COLOR env, TERM=dumb, and terminal detection.
func UseColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isTerminal() || IsCI()
}
