// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/globmatch

package globmatch

import "fmt"

// Matcher tests input strings against one compiled glob pattern or a union
// of patterns. Matchers are stateless between calls and safe for concurrent
// use, provided caller hooks are.
type Matcher struct {
	pattern string
	regex   *Regex
	state   *ParseState
	subs    []*Matcher
	ignore  *Matcher
	opts    Options
	posix   bool
}

// NewMatcher compiles one or more glob patterns into a matcher.
//
// Multiple patterns form a union evaluated left to right, short-circuiting
// on the first match. At least one non-empty pattern is required. Patterns
// from Options.Ignore veto matches; the ignore matcher is built with Ignore
// and the hooks cleared so it cannot feed back into itself or re-report
// inputs the primary matcher already observed.
func NewMatcher(patterns []string, opts Options) (*Matcher, error) {
	opts.applyDefaults()
	if len(patterns) == 0 {
		return nil, fmt.Errorf("%w: at least one pattern is required", ErrNoPatterns)
	}

	if len(patterns) > 1 {
		subs := make([]*Matcher, 0, len(patterns))
		for _, p := range patterns {
			sub, err := NewMatcher([]string{p}, opts)
			if err != nil {
				return nil, err
			}

			subs = append(subs, sub)
		}

		return &Matcher{subs: subs, opts: opts, posix: opts.posix()}, nil
	}

	pattern := patterns[0]
	regex, err := makeRegex(pattern, opts, true)
	if err != nil {
		return nil, err
	}

	m := &Matcher{
		pattern: pattern,
		regex:   regex,
		state:   regex.state,
		opts:    opts,
		posix:   opts.posix(),
	}

	// Detach the state so the regex stays a clean value for callers.
	regex.state = nil

	if len(opts.Ignore) > 0 {
		// The veto check runs with hooks cleared: they observe the primary
		// matcher, and a recursive Ignore would loop.
		ignoreOpts := opts
		ignoreOpts.Ignore = nil
		ignoreOpts.OnMatch = nil
		ignoreOpts.OnIgnore = nil
		ignoreOpts.OnResult = nil

		ig, err := NewMatcher(opts.Ignore, ignoreOpts)
		if err != nil {
			return nil, err
		}

		m.ignore = ig
	}

	return m, nil
}

// Match reports whether input satisfies the matcher.
func (m *Matcher) Match(input string) bool {
	return m.Result(input).IsMatch
}

// Result returns the full record of one match attempt.
//
// Options.OnResult observes every attempt, OnIgnore observes suppressed
// matches, OnMatch observes accepted ones. Hooks never alter the decision.
func (m *Matcher) Result(input string) MatchResult {
	if m.subs != nil {
		for _, sub := range m.subs {
			if res := sub.Result(input); res.IsMatch {
				return res
			}
		}

		return MatchResult{Input: input, Posix: m.posix}
	}

	isMatch, match, output := execMatch(input, m.regex, m.opts, m.pattern, m.posix)
	res := MatchResult{
		Pattern: m.pattern,
		Input:   input,
		Output:  output,
		IsMatch: isMatch,
		Posix:   m.posix,
		Match:   match,
		Regex:   m.regex,
		State:   m.state,
	}

	if m.opts.OnResult != nil {
		m.opts.OnResult(res)
	}

	if !isMatch {
		return res
	}

	if m.ignore != nil && m.ignore.Match(input) {
		res.IsMatch = false
		res.Ignored = true
		if m.opts.OnIgnore != nil {
			m.opts.OnIgnore(res)
		}

		return res
	}

	if m.opts.OnMatch != nil {
		m.opts.OnMatch(res)
	}

	return res
}

// State returns the syntax compiler state of a single-pattern matcher, nil
// for unions.
func (m *Matcher) State() *ParseState {
	return m.state
}

// Regex returns the compiled expression of a single-pattern matcher, nil for
// unions.
func (m *Matcher) Regex() *Regex {
	return m.regex
}

// IsMatch compiles pattern and tests input against it.
func IsMatch(input, pattern string, opts Options) (bool, error) {
	m, err := NewMatcher([]string{pattern}, opts)
	if err != nil {
		return false, err
	}

	return m.Match(input), nil
}

// MatchAny compiles patterns and reports whether input satisfies any of
// them.
func MatchAny(input string, patterns []string, opts Options) (bool, error) {
	m, err := NewMatcher(patterns, opts)
	if err != nil {
		return false, err
	}

	return m.Match(input), nil
}
