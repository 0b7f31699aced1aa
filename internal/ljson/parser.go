package ljson

import "fmt"

// ParseError is a fatal, unrecoverable structural error: an unterminated
// string, a missing brace or colon, or an unexpected end of input. Once
// one is returned, no AST was built for the file it came from.
type ParseError struct {
	Message string
	Pos     Position
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("[ERROR] line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

func fatalf(pos Position, format string, args ...any) error {
	return &ParseError{Message: fmt.Sprintf(format, args...), Pos: pos}
}

// parser holds the style in force for one Parse call; it carries no
// other state; the cursor and diagnostic slice are threaded explicitly
// through every method, mirroring the side-channel-diagnostics design
// the grammar requires (see the recovery invariant below).
type parser struct {
	style Style
}

// Parse consumes text under style and returns the root object together
// with every style diagnostic encountered. A non-nil error means the
// input could not be turned into an AST at all (see ParseError); in
// that case the returned object is nil, but any diagnostics observed
// before the fatal error are still returned.
//
// Recovery invariant: after each style check below, the cursor sits at
// the same logical position it would occupy had the input been
// perfectly styled — diagnostics never desynchronize the parse.
func Parse(style Style, text []byte) (*Object, []Diagnostic, error) {
	p := &parser{style: style}
	c := newCursor(text)
	var diags []Diagnostic
	obj, err := p.parseObject(c, 0, &diags)
	if err != nil {
		return nil, diags, err
	}
	return obj, diags, nil
}

func (p *parser) parseObject(c *cursor, depth int, diags *[]Diagnostic) (*Object, error) {
	start := c.pos()
	if !c.matchLiteral("{") {
		return nil, fatalf(start, "expected '{'")
	}
	p.newLine(c, diags)
	// Pre-check: d copies of the indentation unit, shared between the
	// "object is empty" test below and (if non-empty) the first entry's
	// indentation check.
	p.indentation(c, depth, false, diags)

	if b, ok := c.peekByte(); ok && b == '}' {
		c.advance()
		return &Object{Entries: nil, Start: start, End: c.pos()}, nil
	}

	// Non-empty: one further copy of the unit, now with the overflow
	// check, completes the depth+1 indentation required of the first key.
	p.indentation(c, 1, true, diags)

	var entries []Entry
	for {
		entry, err := p.parseEntry(c, depth+1, diags)
		if err != nil {
			return nil, err
		}
		if !p.style.Ignore && p.style.SortAlgorithm != SortAlgorithmNone && len(entries) > 0 {
			prev := entries[len(entries)-1].Key.Value
			cur := entry.Key.Value
			cmp := Compare(p.style.SortAlgorithm, prev, cur)
			violated := (p.style.SortOrder == SortOrderAsc && cmp == Greater) ||
				(p.style.SortOrder == SortOrderDesc && cmp == Less)
			if violated {
				*diags = append(*diags, p.diag(KindSorting, entry.Key.Start,
					fmt.Sprintf("[STYLE] line %d, column %d: key %q is out of sort order (%s)",
						entry.Key.Start.Line, entry.Key.Start.Column, cur, KindSorting)))
			}
		}
		entries = append(entries, entry)

		p.maybeSpace(c, diags)
		hasComma := c.matchLiteral(",")
		p.newLine(c, diags)

		if hasComma {
			p.indentation(c, depth+1, true, diags)
			continue
		}
		p.indentation(c, depth, true, diags)
		if !c.matchLiteral("}") {
			return nil, fatalf(c.pos(), "expected '}'")
		}
		break
	}
	return &Object{Entries: entries, Start: start, End: c.pos()}, nil
}

func (p *parser) parseEntry(c *cursor, depth int, diags *[]Diagnostic) (Entry, error) {
	key, err := p.parseString(c)
	if err != nil {
		return Entry{}, err
	}
	p.maybeSpace(c, diags)
	if !c.matchLiteral(":") {
		return Entry{}, fatalf(c.pos(), "expected ':'")
	}
	p.postColon(c, diags)

	b, ok := c.peekByte()
	if !ok {
		return Entry{}, fatalf(c.pos(), "unexpected end of input, expected a value")
	}
	var val Value
	switch b {
	case '"':
		s, err := p.parseString(c)
		if err != nil {
			return Entry{}, err
		}
		val = s
	case '{':
		obj, err := p.parseObject(c, depth, diags)
		if err != nil {
			return Entry{}, err
		}
		val = obj
	default:
		return Entry{}, fatalf(c.pos(), "expected a string or object value")
	}
	return Entry{Key: key, Value: val}, nil
}

func (p *parser) parseString(c *cursor) (JsonString, error) {
	start := c.pos()
	if !c.matchLiteral("\"") {
		return JsonString{}, fatalf(start, "expected '\"'")
	}
	contentStartOffset := c.off
	for {
		b, ok := c.peekByte()
		if !ok {
			return JsonString{}, fatalf(start, "unterminated string")
		}
		if b == '\\' {
			c.advance()
			if _, ok := c.advance(); !ok {
				return JsonString{}, fatalf(start, "unterminated string")
			}
			continue
		}
		if b == '"' {
			break
		}
		c.advance()
	}
	value := string(c.src[contentStartOffset:c.off])
	c.advance() // closing quote
	return JsonString{Value: value, Start: start, End: c.pos()}, nil
}

// maybeSpace enforces "no whitespace before ':'".
func (p *parser) maybeSpace(c *cursor, diags *[]Diagnostic) {
	if p.style.Ignore {
		c.skipRun(isAnySpace)
		return
	}
	if b, ok := c.peekByte(); ok && isSpaceOrTab(b) {
		pos := c.pos()
		*diags = append(*diags, p.diag(KindMaybeSpace, pos,
			fmt.Sprintf("[STYLE] line %d, column %d: unexpected whitespace before ':' (%s)",
				pos.Line, pos.Column, KindMaybeSpace)))
		c.skipRun(isSpaceOrTab)
	}
}

// postColon enforces the configured whitespace between ':' and the value.
func (p *parser) postColon(c *cursor, diags *[]Diagnostic) {
	if p.style.Ignore || p.style.PostColon == nil {
		c.skipRun(isAnySpace)
		return
	}
	pos := c.pos()
	if !c.matchLiteral(*p.style.PostColon) {
		*diags = append(*diags, p.diag(KindPostColon, pos,
			fmt.Sprintf("[STYLE] line %d, column %d: missing or wrong whitespace after ':' (%s)",
				pos.Line, pos.Column, KindPostColon)))
		c.skipRun(isAnySpace)
		return
	}
	if b, ok := c.peekByte(); !ok || (b != '"' && b != '{') {
		pos2 := c.pos()
		*diags = append(*diags, p.diag(KindPostColonTooMuch, pos2,
			fmt.Sprintf("[STYLE] line %d, column %d: too much whitespace after ':' (%s)",
				pos2.Line, pos2.Column, KindPostColonTooMuch)))
		c.skipRun(isAnySpace)
	}
}

// newLine enforces the configured line-ending rule at end of a line.
func (p *parser) newLine(c *cursor, diags *[]Diagnostic) {
	if p.style.Ignore {
		recoverNewline(c)
		return
	}
	pos := c.pos()
	switch p.style.LineEnding {
	case LineEndingCRLF:
		if c.matchLiteral("\r\n") {
			return
		}
		p.addLineDiag(diags, KindCRLF, pos, "expected CRLF line ending")
		recoverNewline(c)
	case LineEndingLF:
		if c.matchLiteral("\n") {
			return
		}
		p.addLineDiag(diags, KindLF, pos, "expected LF line ending")
		recoverNewline(c)
	case LineEndingNone:
		if b, ok := c.peekByte(); !ok || (b != '\r' && b != '\n') {
			return
		}
		p.addLineDiag(diags, KindNoBreak, pos, "unexpected line break")
		recoverNewline(c)
	case LineEndingAny:
		if c.matchLiteral("\r\n") || c.matchLiteral("\n") {
			return
		}
		p.addLineDiag(diags, KindAnyBreak, pos, "expected a line break")
		recoverNewline(c)
	case LineEndingIgnore:
		recoverNewline(c)
	}
}

func (p *parser) addLineDiag(diags *[]Diagnostic, kind string, pos Position, desc string) {
	*diags = append(*diags, p.diag(kind, pos,
		fmt.Sprintf("[STYLE] line %d, column %d: %s (%s)", pos.Line, pos.Column, desc, kind)))
}

// recoverNewline is the canonical, style-agnostic resynchronization used
// whenever a line-ending check fails: consume an optional '\r' then an
// optional '\n'.
func recoverNewline(c *cursor) {
	if c.matchLiteral("\r") {
		c.matchLiteral("\n")
		return
	}
	c.matchLiteral("\n")
}

// indentation enforces depth copies of the configured unit at the start
// of a line. When checkOverflow is true, a further check verifies the
// character immediately following the expected indentation is the start
// of real content ('"' or '}'), catching one-too-many repeats of the
// unit.
func (p *parser) indentation(c *cursor, depth int, checkOverflow bool, diags *[]Diagnostic) {
	if p.style.Ignore || p.style.Indentation == nil {
		c.skipRun(isAnySpace)
		return
	}
	unit := *p.style.Indentation
	start := c.pos()
	for i := 0; i < depth; i++ {
		if !c.matchLiteral(unit) {
			*diags = append(*diags, p.diag(KindNotEnoughIndentation, start,
				fmt.Sprintf("[STYLE] line %d, column %d: not enough indentation (%s)",
					start.Line, start.Column, KindNotEnoughIndentation)))
			c.skipRun(isSpaceOrTab)
			return
		}
	}
	if !checkOverflow {
		return
	}
	if b, ok := c.peekByte(); !ok || (b != '"' && b != '}') {
		pos := c.pos()
		*diags = append(*diags, p.diag(KindTooMuchIndentation, pos,
			fmt.Sprintf("[STYLE] line %d, column %d: too much indentation (%s)",
				pos.Line, pos.Column, KindTooMuchIndentation)))
		c.skipRun(isSpaceOrTab)
	}
}

func (p *parser) diag(kind string, pos Position, message string) Diagnostic {
	return Diagnostic{Tag: "STYLE", Kind: kind, Message: message, Start: pos, End: pos}
}
