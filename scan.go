// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/globmatch

package globmatch

import (
	"fmt"
	"strings"
)

// ScanResult describes the static and glob parts of one pattern.
type ScanResult struct {
	// Input is the pattern after negation and "./" prefix stripping.
	Input string `json:"input" yaml:"input"`
	// Base is the leading part free of glob syntax.
	Base string `json:"base" yaml:"base"`
	// Glob is the trailing part containing glob syntax, empty for literal
	// patterns.
	Glob string `json:"glob" yaml:"glob"`
	// IsGlob reports whether the pattern contains glob syntax.
	IsGlob bool `json:"is_glob" yaml:"is_glob"`
	// Negated reports a leading "!" negation prefix.
	Negated bool `json:"negated" yaml:"negated"`
}

// Scan splits pattern into its static leading directory part and the glob
// remainder. Literal patterns land entirely in Base.
func Scan(pattern string, opts Options) (ScanResult, error) {
	opts.applyDefaults()
	if pattern == "" {
		return ScanResult{}, fmt.Errorf("%w: empty", ErrInvalidPattern)
	}

	if len(pattern) > opts.MaxLength {
		return ScanResult{}, fmt.Errorf("%w: longer than %d bytes", ErrInvalidPattern, opts.MaxLength)
	}

	res := ScanResult{}

	// "!(" opens an extglob group, not a negation prefix.
	for len(pattern) > 1 && pattern[0] == '!' && pattern[1] != '(' {
		res.Negated = !res.Negated
		pattern = pattern[1:]
	}

	pattern = strings.TrimPrefix(pattern, "./")
	res.Input = pattern

	glob := globStart(pattern)
	if glob < 0 {
		res.Base = pattern
		return res, nil
	}

	res.IsGlob = true
	if i := strings.LastIndexByte(pattern[:glob], '/'); i >= 0 {
		res.Base = pattern[:i]
		res.Glob = pattern[i+1:]
		return res, nil
	}

	res.Glob = pattern
	return res, nil
}

// globStart returns the index of the first glob token, or -1 for literal
// patterns.
func globStart(pattern string) int {
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '\\':
			// Escaped byte is literal.
			i++
		case '*', '?':
			return i
		case '[':
			if findCharClassEnd(pattern, i) >= 0 {
				return i
			}
		case '@', '+', '!':
			if i+1 < len(pattern) && pattern[i+1] == '(' {
				return i
			}
		}
	}

	return -1
}
