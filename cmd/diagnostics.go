package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/eykd/loclint/internal/ljson"
)

// tagColor maps a diagnostic's catalogue tag to the color its bracketed
// prefix is rendered in. Purely presentational, per the "Terminal
// colour" external collaborator contract: it never changes what is
// printed, only how the tag looks on a TTY.
var tagColor = map[string]*color.Color{
	"STYLE":     color.New(color.FgYellow),
	"PARITY":    color.New(color.FgMagenta),
	"NOT FOUND": color.New(color.FgRed),
	"ERROR":     color.New(color.FgRed, color.Bold),
}

// printDiagnostic writes one diagnostic to w, colorizing its tag prefix.
func printDiagnostic(w io.Writer, d ljson.Diagnostic) {
	prefix := "[" + d.Tag + "]"
	body := strings.TrimPrefix(d.Message, prefix)
	c, ok := tagColor[d.Tag]
	if !ok {
		fmt.Fprintln(w, d.Message)
		return
	}
	fmt.Fprintf(w, "%s%s\n", c.Sprint(prefix), body)
}

// printDiagnostics writes each diagnostic in order.
func printDiagnostics(w io.Writer, diags []ljson.Diagnostic) {
	for _, d := range diags {
		printDiagnostic(w, d)
	}
}
