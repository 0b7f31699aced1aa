package cmd

import (
	"fmt"

	"github.com/eykd/loclint/internal/ljson"
)

// styleFlags holds the parsed values of the four global style flags
// before they are turned into an ljson.Style. Field names mirror the
// config file's YAML keys (see internal/config).
type styleFlags struct {
	Algorithm   string
	Order       string
	LineEndings string
	Indent      string
}

func strPtr(s string) *string { return &s }

// toStyle maps the CLI's flag values onto the style descriptor.
// post_colon is a single space for every indentation choice except
// "ignore", which leaves both indentation and post_colon unset.
func (f styleFlags) toStyle() (ljson.Style, error) {
	var style ljson.Style

	switch f.Indent {
	case "tab":
		style.Indentation = strPtr("\t")
		style.PostColon = strPtr(" ")
	case "two":
		style.Indentation = strPtr("  ")
		style.PostColon = strPtr(" ")
	case "four":
		style.Indentation = strPtr("    ")
		style.PostColon = strPtr(" ")
	case "ignore":
		style.Indentation = nil
		style.PostColon = nil
	default:
		return ljson.Style{}, fmt.Errorf("invalid --indent %q (want tab, two, four, or ignore)", f.Indent)
	}

	switch f.LineEndings {
	case "crlf":
		style.LineEnding = ljson.LineEndingCRLF
	case "lf":
		style.LineEnding = ljson.LineEndingLF
	case "none":
		style.LineEnding = ljson.LineEndingNone
	case "any":
		style.LineEnding = ljson.LineEndingAny
	case "ignore":
		style.LineEnding = ljson.LineEndingIgnore
	default:
		return ljson.Style{}, fmt.Errorf("invalid --line-endings %q (want crlf, lf, none, any, or ignore)", f.LineEndings)
	}

	switch f.Order {
	case "asc":
		style.SortOrder = ljson.SortOrderAsc
	case "desc":
		style.SortOrder = ljson.SortOrderDesc
	default:
		return ljson.Style{}, fmt.Errorf("invalid --order %q (want asc or desc)", f.Order)
	}

	switch f.Algorithm {
	case "natural":
		style.SortAlgorithm = ljson.SortAlgorithmNatural
	case "default":
		style.SortAlgorithm = ljson.SortAlgorithmNormal
	case "ignore":
		style.SortAlgorithm = ljson.SortAlgorithmNone
	default:
		return ljson.Style{}, fmt.Errorf("invalid --algorithm %q (want natural, default, or ignore)", f.Algorithm)
	}

	return style, nil
}
