package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/eykd/loclint/internal/ljson"
)

// NewFormatCmd builds the "format" subcommand.
func NewFormatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format <folder>...",
		Short: "Rewrite localization JSON files in the canonical style",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runFormat,
	}
}

// runFormat enumerates files, then for each one parses under the
// permissive Ignore style (any input formatting is accepted) and
// writes back the canonical serialization under the configured style,
// atomically.
func runFormat(cmd *cobra.Command, args []string) error {
	style, err := resolveStyle(cmd)
	if err != nil {
		return err
	}
	inventories, err := scanFolders(args)
	if err != nil {
		return err
	}

	errOut := cmd.ErrOrStderr()
	var failed bool
	for _, inv := range inventories {
		for _, rel := range inv.RelPaths {
			path := filepath.Join(inv.Root, rel)
			text, err := os.ReadFile(path)
			if err != nil {
				fmt.Fprintf(errOut, "[ERROR] cannot read %s: %v\n", path, err)
				failed = true
				continue
			}
			obj, _, err := ljson.Parse(ljson.IgnoreStyle(), text)
			if err != nil {
				fmt.Fprintf(errOut, "[ERROR] Cannot parse json %s: %v\n", path, err)
				failed = true
				continue
			}
			if err := writeFileAtomic(path, ljson.Generate(style, obj)); err != nil {
				fmt.Fprintf(errOut, "[ERROR] cannot write %s: %v\n", path, err)
				failed = true
			}
		}
	}
	if failed {
		return fmt.Errorf("format encountered one or more errors")
	}
	return nil
}
