// Package config loads optional YAML defaults for loclint's global style
// flags, the same shape cobra's flags take on the command line.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults holds default values for the four global style flags. A zero
// Defaults (all fields empty) means "no config file was supplied, or it
// set nothing" — callers fall back to the CLI's own defaults in that
// case. Field names and accepted values mirror the CLI flags exactly
// (see cmd.styleFlags): algorithm, order, line-endings, indent.
type Defaults struct {
	Algorithm   string `yaml:"algorithm"`
	Order       string `yaml:"order"`
	LineEndings string `yaml:"line-endings"`
	Indent      string `yaml:"indent"`
}

// Load reads and parses a YAML defaults file at path. An unreadable file
// or malformed YAML surfaces as a wrapped error; fields the file omits
// are left empty, and field values are not validated here.
func Load(path string) (Defaults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Defaults{}, fmt.Errorf("reading config file: %w", err)
	}
	var d Defaults
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Defaults{}, fmt.Errorf("parsing config file: %w", err)
	}
	return d, nil
}
