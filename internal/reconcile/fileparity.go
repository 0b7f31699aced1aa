// Package reconcile implements the cross-folder structural checks: file
// parity (every folder has the same files) and entry parity (every file
// has the same hierarchical keys, with matching value types).
package reconcile

import (
	"fmt"
	"sort"

	"github.com/eykd/loclint/internal/ljson"
)

// FolderInventory is one folder's root path and the relative paths of
// every file found under it.
type FolderInventory struct {
	Root     string
	RelPaths []string
}

// Bucket is the cross-folder peer set for one relative path: the list
// of folder roots that contain a file at that path, in the order the
// folders were supplied.
type Bucket struct {
	RelPath string
	Roots   []string
}

// CheckFileParity computes the union of relative paths across folders
// and, for each folder missing a path in the union, emits a "NOT FOUND"
// diagnostic. It also groups the present files into Buckets keyed by
// relative path. Diagnostics are emitted in folder iteration order, with
// the inner loop over the lexicographically sorted union of paths, so
// output is deterministic.
func CheckFileParity(folders []FolderInventory) ([]Bucket, []ljson.Diagnostic) {
	folderSets := make([]map[string]struct{}, len(folders))
	union := map[string]struct{}{}
	for i, f := range folders {
		set := make(map[string]struct{}, len(f.RelPaths))
		for _, p := range f.RelPaths {
			set[p] = struct{}{}
			union[p] = struct{}{}
		}
		folderSets[i] = set
	}

	sortedUnion := make([]string, 0, len(union))
	for p := range union {
		sortedUnion = append(sortedUnion, p)
	}
	sort.Strings(sortedUnion)

	var diags []ljson.Diagnostic
	for i, f := range folders {
		for _, p := range sortedUnion {
			if _, ok := folderSets[i][p]; ok {
				continue
			}
			diags = append(diags, ljson.Diagnostic{
				Tag:     "NOT FOUND",
				File:    p,
				Message: fmt.Sprintf("[NOT FOUND] File %s not found in folder %s", p, f.Root),
			})
		}
	}

	buckets := make([]Bucket, 0, len(sortedUnion))
	for _, p := range sortedUnion {
		var roots []string
		for i, f := range folders {
			if _, ok := folderSets[i][p]; ok {
				roots = append(roots, f.Root)
			}
		}
		buckets = append(buckets, Bucket{RelPath: p, Roots: roots})
	}
	return buckets, diags
}
