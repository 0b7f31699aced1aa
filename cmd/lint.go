package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/eykd/loclint/internal/ljson"
	"github.com/eykd/loclint/internal/reconcile"
)

// NewLintCmd builds the "lint" subcommand.
func NewLintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lint <folder>...",
		Short: "Check localization JSON files for style and cross-folder parity violations",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runLint,
	}
}

// runLint enumerates files, checks file parity, then per bucket parses
// each peer under the configured style (collecting style diagnostics)
// and reconciles entry parity across whatever peers parsed
// successfully. Exits non-zero if any stage reported at least one
// diagnostic.
func runLint(cmd *cobra.Command, args []string) error {
	style, err := resolveStyle(cmd)
	if err != nil {
		return err
	}
	inventories, err := scanFolders(args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	buckets, fileDiags := reconcile.CheckFileParity(inventories)
	printDiagnostics(out, fileDiags)
	anyDiag := len(fileDiags) > 0

	for _, bucket := range buckets {
		var peers []reconcile.Peer
		for _, root := range bucket.Roots {
			path := filepath.Join(root, bucket.RelPath)
			text, err := os.ReadFile(path)
			if err != nil {
				printDiagnostic(out, ljson.Diagnostic{
					Tag: "ERROR", File: path,
					Message: fmt.Sprintf("[ERROR] cannot read %s: %v", path, err),
				})
				anyDiag = true
				continue
			}

			obj, styleDiags, err := ljson.Parse(style, text)
			if err != nil {
				// Fatal parse error: drop this file from the bucket but keep
				// going — entry-parity still runs over the remaining peers.
				printDiagnostic(out, ljson.Diagnostic{
					Tag: "ERROR", File: path,
					Message: fmt.Sprintf("[ERROR] Cannot parse json: %v", err),
				})
				anyDiag = true
				continue
			}
			if len(styleDiags) > 0 {
				anyDiag = true
				for i := range styleDiags {
					styleDiags[i].File = path
				}
				printDiagnostics(out, styleDiags)
			}
			peers = append(peers, reconcile.Peer{File: path, AST: obj, Text: text})
		}

		parityDiags := reconcile.CheckEntryParity(peers)
		if len(parityDiags) > 0 {
			anyDiag = true
			printDiagnostics(out, parityDiags)
		}
	}

	if anyDiag {
		return fmt.Errorf("lint found one or more diagnostics")
	}
	return nil
}
