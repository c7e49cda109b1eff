// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/globmatch

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/woozymasta/globmatch"
)

var matchOpts struct {
	patterns []string
	files    []string
	exts     []string
	ignore   []string
	invert   bool
	basename bool
	nocase   bool
	contains bool
	quiet    bool
	cwd      string
}

var matchColor = color.New(color.FgGreen)

var matchCmd = &cobra.Command{
	Use:   "match [flags] [input ...]",
	Short: "Filter inputs through glob patterns",
	Long: `Filter positional inputs through glob patterns. Without positional
inputs, lines are read from stdin. The exit status is 0 when at least one
input was selected and 1 otherwise.`,
	RunE: runMatch,
}

func init() {
	f := matchCmd.Flags()
	f.StringArrayVarP(&matchOpts.patterns, "pattern", "p", nil, "glob pattern (repeatable)")
	f.StringArrayVarP(&matchOpts.files, "file", "f", nil, "pattern file, plain text or YAML (repeatable)")
	f.StringSliceVar(&matchOpts.exts, "ext", nil, "shorthand for **/*.EXT patterns")
	f.StringArrayVar(&matchOpts.ignore, "ignore", nil, "ignore pattern vetoing matches (repeatable)")
	f.BoolVarP(&matchOpts.invert, "invert", "v", false, "select inputs that do not match")
	f.BoolVar(&matchOpts.basename, "basename", false, "match against the final path segment only")
	f.BoolVarP(&matchOpts.quiet, "quiet", "q", false, "suppress output, report through the exit status only")
	addCompileFlags(f, &matchOpts.nocase, &matchOpts.contains, &matchOpts.cwd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	patterns := append([]string(nil), matchOpts.patterns...)
	ignore := append([]string(nil), matchOpts.ignore...)

	for _, file := range matchOpts.files {
		filePatterns, fileIgnore, err := loadPatternFile(file)
		if err != nil {
			return err
		}

		patterns = append(patterns, filePatterns...)
		ignore = append(ignore, fileIgnore...)
	}

	patterns = globmatch.MergePatterns(patterns, globmatch.PatternsForExtensions(matchOpts.exts))
	if len(patterns) == 0 {
		return errors.New("no patterns given: use --pattern, --file or --ext")
	}

	cwd := matchOpts.cwd
	if cwd == "" {
		// The library never reads the process working directory; the CLI
		// boundary supplies it.
		if wd, err := os.Getwd(); err == nil {
			cwd = wd
		}
	}

	m, err := globmatch.NewMatcher(patterns, globmatch.Options{
		Ignore:          globmatch.MergePatterns(ignore),
		Basename:        matchOpts.basename,
		CaseInsensitive: matchOpts.nocase,
		Contains:        matchOpts.contains,
		Cwd:             cwd,
	})
	if err != nil {
		return err
	}

	inputs := args
	if len(inputs) == 0 {
		inputs, err = readLines(cmd.InOrStdin())
		if err != nil {
			return err
		}
	}

	selected := filterInputs(m, inputs, matchOpts.invert)

	if !matchOpts.quiet {
		out := cmd.OutOrStdout()
		for _, line := range selected {
			if matchOpts.invert {
				fmt.Fprintln(out, line)
				continue
			}

			matchColor.Fprintln(out, line)
		}
	}

	if len(selected) == 0 {
		exitCode = 1
	}

	return nil
}

// filterInputs returns the inputs selected by the matcher, or the complement
// when invert is set.
func filterInputs(m *globmatch.Matcher, inputs []string, invert bool) []string {
	selected := make([]string, 0, len(inputs))
	for _, input := range inputs {
		if m.Match(input) != invert {
			selected = append(selected, input)
		}
	}

	return selected
}

// readLines collects non-empty lines from r.
func readLines(r io.Reader) ([]string, error) {
	s := bufio.NewScanner(r)
	lines := make([]string, 0, 64)

	for s.Scan() {
		line := strings.TrimRight(s.Text(), "\r")
		if line == "" {
			continue
		}

		lines = append(lines, line)
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("read inputs: %w", err)
	}

	return lines, nil
}

// patternFile is the YAML pattern file shape.
type patternFile struct {
	Patterns []string `yaml:"patterns"`
	Ignore   []string `yaml:"ignore"`
}

// loadPatternFile reads patterns from a YAML file (by extension) or a plain
// one-pattern-per-line file.
func loadPatternFile(path string) (patterns, ignore []string, err error) {
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, fmt.Errorf("read pattern file: %w", err)
		}

		var pf patternFile
		if err := yaml.Unmarshal(data, &pf); err != nil {
			return nil, nil, fmt.Errorf("parse pattern file %s: %w", path, err)
		}

		return pf.Patterns, pf.Ignore, nil
	}

	patterns, err = globmatch.LoadPatternsFile(path)
	return patterns, nil, err
}
