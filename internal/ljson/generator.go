package ljson

import (
	"bytes"
	"sort"
)

// Generate serializes obj under style. It is the inverse of Parse: for
// any AST parsed without fatal errors or style diagnostics under style
// S, Parse(S, Generate(S, ast)).Object is equal to ast up to position
// information.
//
// Generate must not be called with an Ignore style in production code
// paths that expect a canonical output — Ignore still produces valid,
// compact output (no line breaks, no indentation, no post-colon space)
// and is what the format command uses only for its intermediate parse,
// never for its write-back.
func Generate(style Style, obj *Object) []byte {
	var buf bytes.Buffer
	writeObject(&buf, style, obj, 0)
	return buf.Bytes()
}

func writeObject(buf *bytes.Buffer, style Style, obj *Object, depth int) {
	buf.WriteByte('{')

	entries := obj.Entries
	if !style.Ignore && style.SortAlgorithm != SortAlgorithmNone {
		entries = sortedEntries(style, entries)
	}

	if len(entries) == 0 {
		if style.Ignore {
			buf.WriteByte('}')
			return
		}
		writeLineEnd(buf, style)
		writeIndent(buf, style, depth)
		buf.WriteByte('}')
		return
	}

	writeLineEnd(buf, style)
	last := len(entries) - 1
	for i, e := range entries {
		writeIndent(buf, style, depth+1)
		buf.WriteByte('"')
		buf.WriteString(e.Key.Value)
		buf.WriteString("\":")
		writePostColon(buf, style)
		writeValue(buf, style, e.Value, depth+1)
		if i != last {
			buf.WriteByte(',')
		}
		writeLineEnd(buf, style)
	}
	writeIndent(buf, style, depth)
	buf.WriteByte('}')
}

func writeValue(buf *bytes.Buffer, style Style, v Value, depth int) {
	switch val := v.(type) {
	case JsonString:
		buf.WriteByte('"')
		buf.WriteString(val.Value)
		buf.WriteByte('"')
	case *Object:
		writeObject(buf, style, val, depth)
	}
}

// sortedEntries returns a new slice, reordered by the style's
// comparator and direction; the input slice and its backing array are
// never mutated.
func sortedEntries(style Style, entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		cmp := Compare(style.SortAlgorithm, out[i].Key.Value, out[j].Key.Value)
		if style.SortOrder == SortOrderDesc {
			return cmp == Greater
		}
		return cmp == Less
	})
	return out
}

func writeLineEnd(buf *bytes.Buffer, style Style) {
	if style.Ignore {
		return
	}
	switch style.LineEnding {
	case LineEndingCRLF:
		buf.WriteString("\r\n")
	case LineEndingNone:
		// no bytes emitted
	default: // LF, Any, Ignore all emit LF
		buf.WriteByte('\n')
	}
}

func writeIndent(buf *bytes.Buffer, style Style, depth int) {
	if style.Ignore {
		return
	}
	unit := "    "
	if style.Indentation != nil {
		unit = *style.Indentation
	}
	for i := 0; i < depth; i++ {
		buf.WriteString(unit)
	}
}

func writePostColon(buf *bytes.Buffer, style Style) {
	if style.Ignore {
		return
	}
	if style.PostColon != nil {
		buf.WriteString(*style.PostColon)
		return
	}
	buf.WriteByte(' ')
}
