package reconcile

import (
	"fmt"

	"github.com/eykd/loclint/internal/ljson"
)

// Peer is one file's parsed AST, paired with its path (used in
// diagnostic messages) and its raw source text (used to render the
// text-annotator excerpt around a conflicting position).
type Peer struct {
	File string
	AST  *ljson.Object
	Text []byte
}

// accEntry is one key's binding inside the merged accumulator tree.
// originFile/originPos record whichever peer contributed this key
// first — later conflicting peers are reported against this origin,
// never against the accumulator's own (synthetic) identity, per the
// "first-seen wins" rule.
type accEntry struct {
	isObject   bool
	obj        *accNode
	originFile string
	originPos  ljson.Position
}

// accNode is the merged reference tree built by phase 1: the key-union
// of every peer object at this nesting level.
type accNode struct {
	children map[string]*accEntry
	order    []string
}

func newAccNode() *accNode {
	return &accNode{children: make(map[string]*accEntry)}
}

func (n *accNode) set(key string, e *accEntry) {
	if _, exists := n.children[key]; !exists {
		n.order = append(n.order, key)
	}
	n.children[key] = e
}

// cloneIntoAcc builds an accumulator subtree from obj, attributing every
// entry to file.
func cloneIntoAcc(file string, obj *ljson.Object) *accNode {
	n := newAccNode()
	for _, e := range obj.Entries {
		entry := &accEntry{originFile: file, originPos: e.Key.Start}
		if child, ok := e.Value.(*ljson.Object); ok {
			entry.isObject = true
			entry.obj = cloneIntoAcc(file, child)
		}
		n.set(e.Key.Value, entry)
	}
	return n
}

// CheckEntryParity runs the two-phase reconciliation over a bucket of
// structural peers. An empty bucket yields no diagnostics; a
// single-file bucket yields no diagnostics (phase 1 has no other peer
// to join, phase 2 compares the accumulator to the file it was built
// from).
func CheckEntryParity(peers []Peer) []ljson.Diagnostic {
	if len(peers) == 0 {
		return nil
	}
	acc := cloneIntoAcc(peers[0].File, peers[0].AST)

	var diags []ljson.Diagnostic
	for _, p := range peers[1:] {
		join(p.File, p.Text, p.AST, acc, &diags, peerTextIndex(peers))
	}
	for _, p := range peers {
		reportMissing("", acc, p.AST, p.File, &diags)
	}
	return diags
}

func peerTextIndex(peers []Peer) map[string][]byte {
	idx := make(map[string][]byte, len(peers))
	for _, p := range peers {
		idx[p.File] = p.Text
	}
	return idx
}

// join is phase 1: for each key in obj (belonging to file), insert it
// into acc if absent, recurse if both sides are objects, do nothing if
// both sides are strings, or else emit a type-conflict diagnostic citing
// acc's origin and this peer's position.
func join(file string, text []byte, obj *ljson.Object, acc *accNode, diags *[]ljson.Diagnostic, texts map[string][]byte) {
	for _, e := range obj.Entries {
		key := e.Key.Value
		child, isObj := e.Value.(*ljson.Object)

		existing, ok := acc.children[key]
		if !ok {
			entry := &accEntry{originFile: file, originPos: e.Key.Start}
			if isObj {
				entry.isObject = true
				entry.obj = cloneIntoAcc(file, child)
			}
			acc.set(key, entry)
			continue
		}

		switch {
		case existing.isObject && isObj:
			join(file, text, child, existing.obj, diags, texts)
		case !existing.isObject && !isObj:
			// both strings: nothing to reconcile
		default:
			*diags = append(*diags, typeConflictDiagnostic(key, existing, file, e.Key.Start, texts))
		}
	}
}

func typeConflictDiagnostic(key string, existing *accEntry, newFile string, newPos ljson.Position, texts map[string][]byte) ljson.Diagnostic {
	msg := fmt.Sprintf("[PARITY] type mismatch for key %q: %s in %s (line %d), %s in %s (line %d)",
		key,
		typeName(existing.isObject), existing.originFile, existing.originPos.Line,
		typeName(!existing.isObject), newFile, newPos.Line,
	)
	if text, ok := texts[existing.originFile]; ok {
		msg += "\n" + ljson.Excerpt(text, existing.originPos.Line, existing.originPos.Line)
	}
	if text, ok := texts[newFile]; ok {
		msg += ljson.Excerpt(text, newPos.Line, newPos.Line)
	}
	return ljson.Diagnostic{Tag: "PARITY", File: newFile, Start: newPos, Message: msg}
}

func typeName(isObject bool) string {
	if isObject {
		return "object"
	}
	return "string"
}

// reportMissing is phase 2: for every key path present in acc but
// absent from obj at the matching nesting, emit a "cannot find key"
// diagnostic against file. Type mismatches are not re-reported here —
// phase 1 already covered them.
func reportMissing(path string, acc *accNode, obj *ljson.Object, file string, diags *[]ljson.Diagnostic) {
	present := make(map[string]ljson.Value, len(obj.Entries))
	for _, e := range obj.Entries {
		present[e.Key.Value] = e.Value
	}

	for _, key := range acc.order {
		entry := acc.children[key]
		dotted := key
		if path != "" {
			dotted = path + "." + key
		}
		val, ok := present[key]
		if !ok {
			*diags = append(*diags, ljson.Diagnostic{
				Tag:     "PARITY",
				File:    file,
				Message: fmt.Sprintf("[PARITY] cannot find key %q in %s", dotted, file),
			})
			continue
		}
		if entry.isObject {
			if child, isObj := val.(*ljson.Object); isObj {
				reportMissing(dotted, entry.obj, child, file, diags)
			}
		}
	}
}
