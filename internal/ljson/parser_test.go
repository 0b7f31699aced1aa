package ljson

import "testing"

func lfFourAscNormal() Style {
	return Style{
		LineEnding:    LineEndingLF,
		Indentation:   strPtr("    "),
		PostColon:     strPtr(" "),
		SortAlgorithm: SortAlgorithmNormal,
		SortOrder:     SortOrderAsc,
	}
}

func TestParse_CleanInput_ZeroDiagnostics(t *testing.T) {
	input := "{\n    \"a\": \"1\",\n    \"b\": \"2\"\n}"
	_, diags, err := Parse(lfFourAscNormal(), []byte(input))
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(diags) != 0 {
		t.Errorf("expected zero diagnostics, got %d: %+v", len(diags), diags)
	}
}

func TestParse_SortViolation_SingleSortingDiagnostic(t *testing.T) {
	input := "{\n    \"b\": \"1\",\n    \"a\": \"2\"\n}"
	obj, diags, err := Parse(lfFourAscNormal(), []byte(input))
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	var sorting []Diagnostic
	for _, d := range diags {
		if d.Kind == KindSorting {
			sorting = append(sorting, d)
		}
	}
	if len(sorting) != 1 {
		t.Fatalf("expected exactly one sorting diagnostic, got %d: %+v", len(sorting), diags)
	}
	aKey := obj.Entries[1].Key
	if sorting[0].Start != aKey.Start {
		t.Errorf("sorting diagnostic at %+v, want key start %+v", sorting[0].Start, aKey.Start)
	}
}

func TestParse_IndentationViolation(t *testing.T) {
	style := Style{
		LineEnding:    LineEndingLF,
		Indentation:   strPtr("    "),
		PostColon:     strPtr(" "),
		SortAlgorithm: SortAlgorithmNone,
	}
	input := "{\n  \"a\": \"1\"\n}"
	_, diags, err := Parse(style, []byte(input))
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	var indentDiags []Diagnostic
	for _, d := range diags {
		if d.Kind == KindNotEnoughIndentation {
			indentDiags = append(indentDiags, d)
		}
	}
	if len(indentDiags) != 1 {
		t.Fatalf("expected exactly one not_enough_indentation diagnostic, got %d: %+v", len(indentDiags), diags)
	}
}

func TestParse_EmptyObject_RoundTrips(t *testing.T) {
	style := lfFourAscNormal()
	input := "{\n}"
	obj, diags, err := Parse(style, []byte(input))
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(diags) != 0 {
		t.Errorf("expected zero diagnostics for %q, got %+v", input, diags)
	}
	if len(obj.Entries) != 0 {
		t.Errorf("expected no entries, got %d", len(obj.Entries))
	}
	if got := string(Generate(style, obj)); got != input {
		t.Errorf("round-trip: got %q, want %q", got, input)
	}
}

func TestParse_EmptyObject_IgnoreStyle_Compact(t *testing.T) {
	style := IgnoreStyle()
	input := "{}"
	obj, diags, err := Parse(style, []byte(input))
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(diags) != 0 {
		t.Errorf("expected zero diagnostics for %q, got %+v", input, diags)
	}
	if got := string(Generate(style, obj)); got != input {
		t.Errorf("round-trip: got %q, want %q", got, input)
	}
}

func TestParse_SingleEntry_RoundTrips(t *testing.T) {
	style := lfFourAscNormal()
	input := "{\n    \"a\": \"1\"\n}"
	obj, diags, err := Parse(style, []byte(input))
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(diags) != 0 {
		t.Errorf("expected zero diagnostics, got %+v", diags)
	}
	if got := string(Generate(style, obj)); got != input {
		t.Errorf("round-trip: got %q, want %q", got, input)
	}
}

func TestParse_EscapedQuote_ValueSliceNotUnescaped(t *testing.T) {
	style := lfFourAscNormal()
	input := "{\n    \"a\": \"a\\\"b\"\n}"
	obj, _, err := Parse(style, []byte(input))
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	s, ok := obj.Entries[0].Value.(JsonString)
	if !ok {
		t.Fatalf("expected string value")
	}
	want := `a\"b`
	if s.Value != want {
		t.Errorf("value = %q, want %q (escapes must not be resolved)", s.Value, want)
	}
}

func TestParse_FatalErrors(t *testing.T) {
	style := IgnoreStyle()
	tests := []struct {
		name  string
		input string
	}{
		{"unterminated string", `{"a": "1}`},
		{"missing colon", `{"a" "1"}`},
		{"missing closing brace", `{"a": "1"`},
		{"missing opening brace", `"a": "1"}`},
		{"unexpected EOF for value", `{"a":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Parse(style, []byte(tt.input))
			if err == nil {
				t.Errorf("expected fatal error for input %q", tt.input)
			}
			var perr *ParseError
			if err != nil {
				if pe, ok := err.(*ParseError); ok {
					perr = pe
				} else {
					t.Errorf("expected *ParseError, got %T", err)
				}
			}
			_ = perr
		})
	}
}

func TestParse_NestedObject_RoundTrips(t *testing.T) {
	style := lfFourAscNormal()
	input := "{\n    \"hello\": \"world\",\n    \"how\": {\n        \"are\": \"you\"\n    }\n}"
	obj, diags, err := Parse(style, []byte(input))
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(diags) != 0 {
		t.Errorf("expected zero diagnostics, got %+v", diags)
	}
	if got := string(Generate(style, obj)); got != input {
		t.Errorf("round-trip: got %q, want %q", got, input)
	}
}

func TestParse_IgnoreStyle_AcceptsAnyFormatting(t *testing.T) {
	input := "{\"a\"   :\"1\"  ,\"b\":{\n\n\"c\":\"d\"}}"
	_, diags, err := Parse(IgnoreStyle(), []byte(input))
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(diags) != 0 {
		t.Errorf("Ignore style must never emit diagnostics, got %+v", diags)
	}
}

func TestGenerate_WithNaturalSort(t *testing.T) {
	style := Style{
		LineEnding:    LineEndingLF,
		Indentation:   strPtr("  "),
		PostColon:     strPtr(" "),
		SortAlgorithm: SortAlgorithmNatural,
		SortOrder:     SortOrderAsc,
	}
	obj := &Object{Entries: []Entry{
		{Key: JsonString{Value: "item10"}, Value: JsonString{Value: ""}},
		{Key: JsonString{Value: "item2"}, Value: JsonString{Value: ""}},
	}}
	out := string(Generate(style, obj))
	idx2 := indexOf(out, "item2")
	idx10 := indexOf(out, "item10")
	if idx2 == -1 || idx10 == -1 || idx2 > idx10 {
		t.Errorf("expected item2 before item10 in sorted output, got:\n%s", out)
	}
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}
