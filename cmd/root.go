// Package cmd implements the loclint CLI commands.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eykd/loclint/internal/config"
	"github.com/eykd/loclint/internal/ljson"
)

// NewRootCmd creates the root loclint command with the lint and format
// subcommands registered, and the four global style flags plus
// --config declared as persistent flags shared by both.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "loclint",
		Short:         "loclint - lint and format localization JSON files across sibling language folders",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.PersistentFlags().StringP("algorithm", "a", "default", "sort algorithm: natural|default|ignore")
	root.PersistentFlags().StringP("order", "o", "asc", "sort order: asc|desc")
	root.PersistentFlags().StringP("line-endings", "l", "lf", "line ending style: crlf|lf|none|any|ignore")
	root.PersistentFlags().StringP("indent", "i", "four", "indentation unit: tab|two|four|ignore")
	root.PersistentFlags().String("config", "", "optional YAML file supplying defaults for the flags above")

	root.AddCommand(NewLintCmd())
	root.AddCommand(NewFormatCmd())
	return root
}

// resolveStyle reads the global style flags (and, if --config was
// given, a YAML defaults file) and produces the ljson.Style they
// describe. A flag explicitly set on the command line always wins over
// the config file's value for that same field.
func resolveStyle(cmd *cobra.Command) (ljson.Style, error) {
	var defaults config.Defaults
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		d, err := config.Load(path)
		if err != nil {
			return ljson.Style{}, fmt.Errorf("loading --config: %w", err)
		}
		defaults = d
	}

	flags := styleFlags{
		Algorithm:   resolveField(cmd, "algorithm", defaults.Algorithm),
		Order:       resolveField(cmd, "order", defaults.Order),
		LineEndings: resolveField(cmd, "line-endings", defaults.LineEndings),
		Indent:      resolveField(cmd, "indent", defaults.Indent),
	}
	return flags.toStyle()
}

// resolveField returns the config-supplied default when the named flag
// was not explicitly set on the command line and the config provided a
// non-empty value; otherwise it returns the flag's own current value
// (which already carries its built-in default).
func resolveField(cmd *cobra.Command, name, configValue string) string {
	if !cmd.Flags().Changed(name) && configValue != "" {
		return configValue
	}
	v, _ := cmd.Flags().GetString(name)
	return v
}
