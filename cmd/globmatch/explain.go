// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/globmatch

package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/woozymasta/globmatch"
)

var explainOpts struct {
	nocase        bool
	contains      bool
	capture       bool
	strictSlashes bool
	noFastPaths   bool
	cwd           string
}

var explainCmd = &cobra.Command{
	Use:   "explain <pattern>",
	Short: "Show how a glob pattern compiles",
	Long: `Print the base/glob split, the syntax compiler state and the
assembled regular expression for one pattern as YAML. Compilation failures
are reported instead of degrading to a never-matching expression.`,
	Args: cobra.ExactArgs(1),
	RunE: runExplain,
}

func init() {
	f := explainCmd.Flags()
	f.BoolVar(&explainOpts.capture, "capture", false, "capturing wildcard groups")
	f.BoolVar(&explainOpts.strictSlashes, "strict-slashes", false, "no optional trailing slash on fast paths")
	f.BoolVar(&explainOpts.noFastPaths, "no-fast-paths", false, "force full compilation")
	addCompileFlags(f, &explainOpts.nocase, &explainOpts.contains, &explainOpts.cwd)
}

// explanation is the YAML report shape for one pattern.
type explanation struct {
	Pattern string                `yaml:"pattern"`
	Scan    globmatch.ScanResult  `yaml:"scan"`
	Split   globmatch.SplitResult `yaml:"split"`
	State   *globmatch.ParseState `yaml:"state,omitempty"`
	Regex   string                `yaml:"regex"`
	Negated bool                  `yaml:"negated"`
}

func runExplain(cmd *cobra.Command, args []string) error {
	pattern := args[0]
	opts := globmatch.Options{
		CaseInsensitive:  explainOpts.nocase,
		Contains:         explainOpts.contains,
		Capture:          explainOpts.capture,
		StrictSlashes:    explainOpts.strictSlashes,
		DisableFastPaths: explainOpts.noFastPaths,
		Cwd:              explainOpts.cwd,
		Debug:            true,
	}

	ex, err := explainPattern(pattern, opts)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(ex)
	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}

// explainPattern compiles pattern through every public layer and collects
// the report.
func explainPattern(pattern string, opts globmatch.Options) (*explanation, error) {
	sc, err := globmatch.Scan(pattern, opts)
	if err != nil {
		return nil, err
	}

	sp, err := globmatch.Split(pattern, opts)
	if err != nil {
		return nil, err
	}

	m, err := globmatch.NewMatcher([]string{pattern}, opts)
	if err != nil {
		return nil, err
	}

	return &explanation{
		Pattern: pattern,
		Scan:    sc,
		Split:   sp,
		State:   m.State(),
		Regex:   m.Regex().String(),
		Negated: m.Regex().Negated(),
	}, nil
}
