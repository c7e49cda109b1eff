// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/globmatch

package globmatch

import (
	"path/filepath"
	"strings"
)

// execMatch decides one input against a compiled pattern, trying cheap
// literal strategies before regex execution.
//
// Strategy order mirrors compile-time expectations: exact equality against
// the source pattern, equality after formatting, then regex execution against
// the formatted output (or its final segment in basename mode). Capture mode
// always executes the regex so submatches are populated.
func execMatch(input string, re *Regex, opts Options, pattern string, posix bool) (isMatch bool, match []string, output string) {
	if input == "" {
		return false, nil, ""
	}

	if re.failed {
		// A degraded compilation matches nothing, even its own source text.
		return false, nil, ""
	}

	format := formatFunc(opts, posix)

	if !opts.Capture {
		if input == pattern {
			return true, []string{input}, input
		}

		if out := format(input); out == pattern {
			return true, []string{out}, out
		}
	}

	output = format(input)

	subject := output
	if opts.Basename {
		subject = basePart(output, posix)
	}

	isMatch, match = re.exec(subject, opts.Capture)
	return isMatch, match, output
}

// formatFunc selects the input normalizer.
func formatFunc(opts Options, posix bool) func(string) string {
	if opts.Format != nil {
		return opts.Format
	}

	if posix {
		return toPosixSlashes
	}

	return func(s string) string { return s }
}

// basePart returns the final path segment of p for the given separator
// convention.
func basePart(p string, posix bool) string {
	if posix {
		if i := strings.LastIndexByte(p, '/'); i >= 0 {
			return p[i+1:]
		}

		return p
	}

	return filepath.Base(p)
}
