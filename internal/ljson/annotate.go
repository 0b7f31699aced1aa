package ljson

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// marked is the color applied to lines strictly inside the offending
// range; color.NoColor (fatih/color's own terminal/NO_COLOR detection)
// makes this a no-op when output isn't a TTY.
var marked = color.New(color.FgRed, color.Bold)

// Excerpt renders the lines [startLine-2 .. endLine+2] of text (clamped
// to the file), each prefixed with its 1-based line number, with the
// lines in [startLine, endLine] highlighted. It is used only to decorate
// diagnostics and has no effect on parsing or generation.
func Excerpt(text []byte, startLine, endLine int) string {
	lines := splitLines(text)
	n := len(lines)
	if n == 0 {
		return ""
	}

	lo := startLine - 2
	if lo < 1 {
		lo = 1
	}
	hi := endLine + 2
	if hi > n {
		hi = n
	}

	width := len(strconv.Itoa(hi))
	var b strings.Builder
	for ln := lo; ln <= hi; ln++ {
		content := lines[ln-1]
		if ln >= startLine && ln <= endLine {
			content = marked.Sprint(content)
		}
		fmt.Fprintf(&b, "%*d | %s\n", width, ln, content)
	}
	return b.String()
}

// splitLines splits text on '\n' and strips a trailing '\r' from each
// resulting line, so CRLF-terminated input renders the same as LF.
func splitLines(text []byte) []string {
	raw := strings.Split(string(text), "\n")
	// A trailing newline produces one extra empty element; drop it so
	// line numbers match what a reader would count by eye.
	if len(raw) > 0 && raw[len(raw)-1] == "" {
		raw = raw[:len(raw)-1]
	}
	for i, l := range raw {
		raw[i] = strings.TrimSuffix(l, "\r")
	}
	return raw
}
