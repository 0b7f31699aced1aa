// Package ljson implements the parser, generator, and natural comparator
// for the restricted JSON dialect used by translation/localization files.
package ljson

// LineEnding selects how newlines are checked or emitted.
type LineEnding int

const (
	// LineEndingCRLF requires "\r\n" everywhere.
	LineEndingCRLF LineEnding = iota
	// LineEndingLF requires "\n" everywhere.
	LineEndingLF
	// LineEndingNone forbids any newline.
	LineEndingNone
	// LineEndingAny accepts either CRLF or LF, decided independently
	// per line.
	LineEndingAny
	// LineEndingIgnore performs no check; the generator emits "\n" for it.
	LineEndingIgnore
)

// SortAlgorithm selects the comparator used for the sorting style check.
type SortAlgorithm int

const (
	// SortAlgorithmNatural compares digit runs numerically; see Compare.
	SortAlgorithmNatural SortAlgorithm = iota
	// SortAlgorithmNormal compares keys byte-wise (Go string ordering).
	SortAlgorithmNormal
	// SortAlgorithmNone disables the sort-order check entirely.
	SortAlgorithmNone
)

// SortOrder is the required direction for the sorting style check.
type SortOrder int

const (
	// SortOrderAsc requires each key to be >= the previous sibling key.
	SortOrderAsc SortOrder = iota
	// SortOrderDesc requires each key to be <= the previous sibling key.
	SortOrderDesc
)

// Style describes the formatting rules a file is checked against or
// generated under. A zero-value Style with Ignore set to false and all
// other fields at their zero value is almost never what callers want;
// use IgnoreStyle or build a Style literal with every field set.
//
// When Ignore is true, the parser performs no style checks at all: any
// whitespace, line ending, or key order is accepted. Generate also
// accepts Ignore, producing the compact form described on Generate's
// own doc comment; format uses it only for its intermediate parse, not
// for the generated write-back.
type Style struct {
	Ignore bool

	LineEnding LineEnding

	// Indentation is the literal unit repeated once per nesting depth
	// for each entry line. A nil pointer means "no indentation
	// required" (entries may start at column 0).
	Indentation *string

	// PostColon is the literal whitespace required between the colon
	// and the value on an entry line. A nil pointer means any amount
	// of whitespace (including none) is acceptable.
	PostColon *string

	SortAlgorithm SortAlgorithm
	SortOrder     SortOrder
}

// IgnoreStyle returns the style that disables every check.
func IgnoreStyle() Style {
	return Style{Ignore: true}
}

// strPtr is a small helper for building Style literals.
func strPtr(s string) *string { return &s }
