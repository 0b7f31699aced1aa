package ljson

// Diagnostic kind constants, named after the style-check they originate
// from. These are the "tag → meaning" catalogue entries; message text is
// built around them rather than duplicated at each call site.
const (
	KindMaybeSpace           = "maybe_space"
	KindPostColon            = "post_colon"
	KindPostColonTooMuch     = "post_colon_too_much"
	KindCRLF                 = "crlf"
	KindLF                   = "lf"
	KindNoBreak              = "no_break"
	KindAnyBreak             = "any_break"
	KindCRButNotLF           = "cr_but_not_lf"
	KindNotEnoughIndentation = "not_enough_indentation"
	KindTooMuchIndentation   = "too_much_indentation"
	KindSorting              = "sorting"
)

// Diagnostic is a single non-fatal finding: a style violation, a parity
// mismatch, a missing file, or a fatal-parse report surfaced for
// display. Diagnostics are data, never errors — collecting one never
// aborts processing.
type Diagnostic struct {
	// Tag is one of "STYLE", "PARITY", "NOT FOUND", "ERROR" — the
	// catalogue prefix shown to the user.
	Tag string
	// Kind is the specific rule name for STYLE diagnostics (see the
	// Kind* constants); empty for the other tags.
	Kind string
	// Message is the full human-readable text, already naming the
	// line/column/rule; callers print it directly.
	Message string
	// File is the path the diagnostic concerns, set by the driver
	// layer (the parser itself has no notion of a file path).
	File string
	Start Position
	End   Position
}
