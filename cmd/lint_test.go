package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLint_CleanFiles_ExitsZero(t *testing.T) {
	en := t.TempDir()
	fr := t.TempDir()
	clean := "{\n    \"a\": \"1\",\n    \"b\": \"2\"\n}"
	writeFile(t, en, "a.json", clean)
	writeFile(t, fr, "a.json", clean)

	root := NewRootCmd()
	out := new(bytes.Buffer)
	root.SetOut(out)
	root.SetErr(new(bytes.Buffer))
	root.SetArgs([]string{"lint", en, fr})

	if err := root.Execute(); err != nil {
		t.Fatalf("expected clean lint to succeed, got error: %v\noutput: %s", err, out.String())
	}
}

func TestLint_SortViolation_ExitsNonZero(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.json", "{\n    \"b\": \"1\",\n    \"a\": \"2\"\n}")

	root := NewRootCmd()
	out := new(bytes.Buffer)
	root.SetOut(out)
	root.SetErr(new(bytes.Buffer))
	root.SetArgs([]string{"lint", dir})

	err := root.Execute()
	if err == nil {
		t.Fatal("expected lint to fail on sort violation")
	}
	if !strings.Contains(out.String(), "[STYLE]") {
		t.Errorf("expected a [STYLE] diagnostic in output, got: %s", out.String())
	}
}

func TestLint_MissingFileAcrossFolders(t *testing.T) {
	en := t.TempDir()
	fr := t.TempDir()
	writeFile(t, en, "a.json", "{}")
	writeFile(t, en, "b.json", "{}")
	writeFile(t, fr, "a.json", "{}")

	root := NewRootCmd()
	out := new(bytes.Buffer)
	root.SetOut(out)
	root.SetErr(new(bytes.Buffer))
	root.SetArgs([]string{"lint", en, fr})

	err := root.Execute()
	if err == nil {
		t.Fatal("expected lint to fail on missing file")
	}
	if !strings.Contains(out.String(), "[NOT FOUND]") {
		t.Errorf("expected a [NOT FOUND] diagnostic in output, got: %s", out.String())
	}
}

func TestLint_TypeConflictAcrossPeers(t *testing.T) {
	en := t.TempDir()
	fr := t.TempDir()
	writeFile(t, en, "a.json", `{"k":"v"}`)
	writeFile(t, fr, "a.json", `{"k":{"x":"y"}}`)

	root := NewRootCmd()
	out := new(bytes.Buffer)
	root.SetOut(out)
	root.SetErr(new(bytes.Buffer))
	root.SetArgs([]string{"lint", "--algorithm", "ignore", en, fr})

	err := root.Execute()
	if err == nil {
		t.Fatal("expected lint to fail on type conflict")
	}
	if !strings.Contains(out.String(), "[PARITY]") {
		t.Errorf("expected a [PARITY] diagnostic in output, got: %s", out.String())
	}
}
