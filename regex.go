// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/globmatch

package globmatch

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// neverMatch is the fallback expression for failed compilations. The
// character class is empty, so no input matches.
var neverMatch = regexp.MustCompile(`[^\x00-\x{10FFFF}]`)

// Regex is one compiled glob pattern. It is immutable after creation and
// safe for concurrent use.
//
// Negated patterns match the complement of their inner expression: the inner
// full-string match decision (prefix match under Options.Contains) is
// inverted at execution time.
type Regex struct {
	re      *regexp.Regexp
	source  string
	negated bool
	failed  bool
	state   *ParseState
}

// MatchString reports whether input satisfies the compiled pattern.
func (r *Regex) MatchString(input string) bool {
	if r.negated {
		return !r.re.MatchString(input)
	}

	return r.re.MatchString(input)
}

// exec returns the match decision and, when capture is requested, the regex
// submatches. Negated patterns produce no submatches.
func (r *Regex) exec(input string, capture bool) (bool, []string) {
	if r.negated {
		return !r.re.MatchString(input), nil
	}

	if !capture {
		return r.re.MatchString(input), nil
	}

	m := r.re.FindStringSubmatch(input)
	return m != nil, m
}

// Negated reports whether the pattern inverts its inner expression.
func (r *Regex) Negated() bool {
	return r.negated
}

// String returns the assembled regular-expression source of the inner
// expression.
func (r *Regex) String() string {
	return r.source
}

// State returns the attached syntax compiler state, nil unless it was
// captured at compile time.
func (r *Regex) State() *ParseState {
	return r.state
}

// MakeRegex compiles one glob pattern into an executable Regex.
//
// An empty or over-long pattern is rejected. Any other compilation failure
// degrades to a Regex that matches nothing, unless Options.Debug is set, in
// which case the failure is returned.
func MakeRegex(pattern string, opts Options) (*Regex, error) {
	opts.applyDefaults()
	return makeRegex(pattern, opts, false)
}

// RegexSource returns the raw regex-source fragment for pattern, without
// anchors, negation or flags applied.
func RegexSource(pattern string, opts Options) (string, error) {
	opts.applyDefaults()

	st, err := compileState(pattern, opts)
	if err != nil {
		return "", err
	}

	return st.Output, nil
}

// makeRegex compiles with the degrade-on-failure policy applied.
func makeRegex(pattern string, opts Options, withState bool) (*Regex, error) {
	st, err := compileState(pattern, opts)
	if err != nil {
		if opts.Debug || errors.Is(err, ErrInvalidPattern) {
			return nil, err
		}

		return &Regex{re: neverMatch, source: neverMatch.String(), failed: true}, nil
	}

	return assembleRegex(st, opts, withState)
}

// compileState produces the regex-source fragment for pattern, trying the
// fast paths and the literal shortcut before full syntax compilation.
func compileState(pattern string, opts Options) (*ParseState, error) {
	if pattern == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidPattern)
	}

	if len(pattern) > opts.MaxLength {
		return nil, fmt.Errorf("%w: longer than %d bytes", ErrInvalidPattern, opts.MaxLength)
	}

	// "./" is a no-op directory prefix.
	pattern = strings.TrimPrefix(pattern, "./")
	if pattern == "" {
		return nil, fmt.Errorf("%w: empty after \"./\" prefix", ErrInvalidPattern)
	}

	if !opts.DisableFastPaths && (pattern[0] == '.' || pattern[0] == '*') {
		if src, ok := fastPathSource(pattern, opts); ok {
			if !opts.StrictSlashes {
				src += `/?`
			}

			return &ParseState{Output: src, FastPath: true}, nil
		}
	}

	// Metacharacter-free patterns need no compiler: escape the regex-relevant
	// bytes and match literally. Checked independently of the fast-path knob.
	if !strings.ContainsAny(pattern, `-[]!$*+?^{}()|\`) {
		out := strings.ReplaceAll(pattern, ".", `\.`)
		out = strings.ReplaceAll(out, "/", `\/`)
		return &ParseState{Output: out}, nil
	}

	return Parse(pattern, opts)
}

// assembleRegex wraps a compiled fragment with anchors and flags and builds
// the executable expression.
func assembleRegex(st *ParseState, opts Options, withState bool) (*Regex, error) {
	source := "(?:" + st.Output + ")"
	switch {
	case !opts.Contains:
		source = "^" + source + "$"
	case st.Negated:
		// Inverting containment would reject any input holding the fragment
		// anywhere; negation under contains tests the prefix position only.
		source = "^" + source
	}

	flags := opts.Flags
	if flags == "" && opts.CaseInsensitive {
		flags = "i"
	}

	full := source
	if flags != "" {
		full = "(?" + flags + ")" + source
	}

	r := &Regex{source: source, negated: st.Negated}
	if withState {
		r.state = st
	}

	re, err := regexp.Compile(full)
	if err != nil {
		if opts.Debug {
			return nil, fmt.Errorf("%w: %v", ErrCompile, err)
		}

		// Failed patterns never match, negated or not.
		r.re = neverMatch
		r.negated = false
		r.failed = true
		return r, nil
	}

	r.re = re
	return r, nil
}
