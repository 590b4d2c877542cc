package output

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// sectionWidth is the frame width, rows are not wrapped.
const sectionWidth = 78

const indent = "    "

// Section is a titled block of rows framed with box-drawing rules.
type Section struct {
	w     io.Writer
	color bool
}

// NewSection writes the title rule and returns the open section. A non-zero
// elapsed is appended to the title.
func NewSection(w io.Writer, title string, elapsed time.Duration, color bool) *Section {
	head := "── " + title + " "
	tail := "──"
	if elapsed > 0 {
		tail = " " + formatElapsed(elapsed) + " ──"
	}
	line := head + rule(sectionWidth+4-runeLen(head)-runeLen(tail)) + tail
	if color {
		line = colorDimCyan + line + colorReset
	}
	fmt.Fprintf(w, "\n%s%s\n", indent, line)
	return &Section{w: w, color: color}
}

// Row writes one formatted line.
func (s *Section) Row(format string, args ...any) {
	fmt.Fprintf(s.w, "%s│ %s\n", indent, fmt.Sprintf(format, args...))
}

func (s *Section) Separator() { fmt.Fprintf(s.w, "%s├%s\n", indent, rule(sectionWidth)) }

func (s *Section) Close() { fmt.Fprintf(s.w, "%s└%s\n", indent, rule(sectionWidth)) }

func rule(n int) string { return strings.Repeat("─", max(n, 1)) }

func runeLen(s string) int { return len([]rune(s)) }

// statusIcons maps a status to its glyph and color.
var statusIcons = map[string][2]string{
	"success": {"✓", colorGreen},
	"failed":  {"✗", colorRed},
	"warning": {"!", colorYellow},
}

// StatusIcon returns the glyph for success, failed or warning; anything
// else renders as a dot.
func StatusIcon(status string, color bool) string {
	icon, ok := statusIcons[status]
	if !ok {
		icon = [2]string{"·", colorGray}
	}
	if !color {
		return icon[0]
	}
	return icon[1] + icon[0] + colorReset
}

// Dimmed grays text out when color is on.
func Dimmed(text string, color bool) string {
	if !color {
		return text
	}
	return colorGray + text + colorReset
}

// KV is one line of a context block.
type KV struct {
	Key   string
	Value string
}

// ContextBlock writes keys and values as two aligned columns.
func ContextBlock(w io.Writer, kv []KV) {
	if len(kv) == 0 {
		return
	}
	width := 0
	for _, item := range kv {
		width = max(width, len(item.Key))
	}
	fmt.Fprintln(w)
	for _, item := range kv {
		fmt.Fprintf(w, "%s%-*s  %s\n", indent, width, item.Key, item.Value)
	}
}

func formatElapsed(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return "<1ms"
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	mins := d / time.Minute
	return fmt.Sprintf("%dm%.1fs", int(mins), (d - mins*time.Minute).Seconds())
}
