// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/globmatch

package globmatch

import (
	"fmt"
	"strings"
)

// ParseState is the syntax compiler output for one pattern.
type ParseState struct {
	// Output is the regular-expression source fragment, without anchors,
	// negation or flags.
	Output string `json:"output" yaml:"output"`
	// Negated reports a leading "!" negation prefix.
	Negated bool `json:"negated" yaml:"negated"`
	// FastPath reports that the fragment came from the fast-path table.
	FastPath bool `json:"fast_path,omitempty" yaml:"fast_path,omitempty"`
}

// Parse compiles one glob pattern into a regular-expression source fragment.
func Parse(pattern string, opts Options) (*ParseState, error) {
	opts.applyDefaults()
	if pattern == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidPattern)
	}

	if len(pattern) > opts.MaxLength {
		return nil, fmt.Errorf("%w: longer than %d bytes", ErrInvalidPattern, opts.MaxLength)
	}

	st := &ParseState{}
	for len(pattern) > 1 && pattern[0] == '!' && pattern[1] != '(' {
		st.Negated = !st.Negated
		pattern = pattern[1:]
	}

	out, err := globToRegex(pattern, opts)
	if err != nil {
		return nil, err
	}

	st.Output = out
	return st, nil
}

// globToRegex converts glob syntax to an RE2 source fragment.
//
// Wildcards never cross "/" except "**". A "**/" at a segment boundary
// matches zero or more whole directories.
func globToRegex(pat string, opts Options) (string, error) {
	var b strings.Builder

	for i := 0; i < len(pat); i++ {
		c := pat[i]
		switch c {
		case '\\':
			if i == len(pat)-1 {
				return "", fmt.Errorf("%w: dangling escape at end of pattern", ErrCompile)
			}

			i++
			b.WriteString(regexEscapeByte(pat[i]))
		case '*':
			if i+1 < len(pat) && pat[i+1] == '(' {
				next, err := appendExtglob(pat, i, opts, &b)
				if err != nil {
					return "", err
				}

				i = next
				continue
			}

			if i+1 < len(pat) && pat[i+1] == '*' {
				next := appendGlobstar(pat, i, opts, &b)
				i = next
				continue
			}

			if opts.Capture {
				b.WriteString(`([^/]*)`)
			} else {
				b.WriteString(`[^/]*`)
			}
		case '?':
			if i+1 < len(pat) && pat[i+1] == '(' {
				next, err := appendExtglob(pat, i, opts, &b)
				if err != nil {
					return "", err
				}

				i = next
				continue
			}

			b.WriteString(`[^/]`)
		case '[':
			if next, ok := appendCharClassRegex(pat, i, &b); ok {
				i = next
				continue
			}

			// Unterminated class is a literal bracket.
			b.WriteString(`\[`)
		case '@', '+', '!':
			if i+1 < len(pat) && pat[i+1] == '(' {
				next, err := appendExtglob(pat, i, opts, &b)
				if err != nil {
					return "", err
				}

				i = next
				continue
			}

			b.WriteString(regexEscapeByte(c))
		default:
			b.WriteString(regexEscapeByte(c))
		}
	}

	return b.String(), nil
}

// appendGlobstar emits the fragment for a "**" run starting at index i and
// returns the last consumed index.
func appendGlobstar(pat string, i int, opts Options, b *strings.Builder) int {
	end := i
	for end < len(pat) && pat[end] == '*' {
		end++
	}

	atStart := i == 0 || pat[i-1] == '/'
	if atStart && end < len(pat) && pat[end] == '/' {
		// "**/" matches zero or more whole directories.
		if opts.Capture {
			b.WriteString(`(?:(.*)/)?`)
		} else {
			b.WriteString(`(?:.*/)?`)
		}

		return end
	}

	if opts.Capture {
		b.WriteString(`(.*)`)
	} else {
		b.WriteString(`.*`)
	}

	return end - 1
}

// appendExtglob compiles one extglob group "<qualifier>(...)" starting at the
// qualifier index and returns the index of the closing parenthesis.
func appendExtglob(pat string, start int, opts Options, b *strings.Builder) (int, error) {
	qual := pat[start]
	if qual == '!' {
		// "!( )" needs negative lookahead, which RE2 does not have.
		return 0, fmt.Errorf("%w: negative extglob %q", ErrUnsupportedSyntax, pat[start:])
	}

	end := findGroupEnd(pat, start+1)
	if end < 0 {
		return 0, fmt.Errorf("%w: unterminated extglob group", ErrCompile)
	}

	if opts.Capture {
		b.WriteByte('(')
	} else {
		b.WriteString("(?:")
	}

	for n, alt := range splitAlternatives(pat[start+2 : end]) {
		compiled, err := globToRegex(alt, opts)
		if err != nil {
			return 0, err
		}

		if n > 0 {
			b.WriteByte('|')
		}

		b.WriteString(compiled)
	}

	b.WriteByte(')')

	switch qual {
	case '?':
		b.WriteByte('?')
	case '*':
		b.WriteByte('*')
	case '+':
		b.WriteByte('+')
	}

	return end, nil
}

// findGroupEnd locates the parenthesis matching the one at index open.
func findGroupEnd(pat string, open int) int {
	depth := 0
	for i := open; i < len(pat); i++ {
		switch pat[i] {
		case '\\':
			i++
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}

// splitAlternatives splits extglob body on top-level unescaped "|".
func splitAlternatives(s string) []string {
	alts := make([]string, 0, 2)
	depth, start := 0, 0

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '(':
			depth++
		case ')':
			depth--
		case '|':
			if depth == 0 {
				alts = append(alts, s[start:i])
				start = i + 1
			}
		}
	}

	return append(alts, s[start:])
}

// appendCharClassRegex appends a parsed glob char class (`[...]`) as a regex
// class.
func appendCharClassRegex(pat string, start int, b *strings.Builder) (int, bool) {
	end := findCharClassEnd(pat, start)
	if end < 0 {
		return start, false
	}

	b.WriteByte('[')

	idx := start + 1
	if idx < end && pat[idx] == '!' {
		// Glob class negation "[!x]" maps to regex "[^x]".
		b.WriteByte('^')
		idx++
	} else if idx < end && pat[idx] == '^' {
		b.WriteString(`\^`)
		idx++
	}

	if idx < end && pat[idx] == ']' {
		// Leading "]" is literal in both glob and regex classes.
		b.WriteString(`\]`)
		idx++
	}

	for ; idx < end; idx++ {
		if pat[idx] == '\\' {
			b.WriteString(`\\`)
			continue
		}

		b.WriteByte(pat[idx])
	}

	b.WriteByte(']')
	return end, true
}

// findCharClassEnd locates the closing bracket for a glob char class.
func findCharClassEnd(pat string, start int) int {
	if start < 0 || start >= len(pat) || pat[start] != '[' {
		return -1
	}

	idx := start + 1
	if idx < len(pat) && (pat[idx] == '!' || pat[idx] == '^') {
		idx++
	}

	if idx < len(pat) && pat[idx] == ']' {
		idx++
	}

	for ; idx < len(pat); idx++ {
		if pat[idx] == ']' {
			return idx
		}
	}

	return -1
}

// regexEscapeByte escapes one byte for regexp source.
func regexEscapeByte(c byte) string {
	switch c {
	case '.', '+', '*', '?', '(', ')', '|', '{', '}', '[', ']', '^', '$', '\\':
		return `\` + string(c)
	default:
		return string(c)
	}
}

// fastPathSource returns a precompiled fragment for very common simple
// patterns. Only patterns beginning with "." or "*" are eligible; the bool
// result reports whether the table covered the pattern.
func fastPathSource(pattern string, opts Options) (string, bool) {
	if opts.Capture {
		// Table fragments are non-capturing.
		return "", false
	}

	switch pattern {
	case "*":
		return `[^/]*`, true
	case "**":
		return `.*`, true
	case "*.*":
		return `[^/]*\.[^/]*`, true
	case "*/*":
		return `[^/]*/[^/]*`, true
	case "**/*":
		return `(?:.*/)?[^/]*`, true
	case "**/*.*":
		return `(?:.*/)?[^/]*\.[^/]*`, true
	case "**/.*":
		return `(?:.*/)?\.[^/]*`, true
	case ".*":
		return `\.[^/]*`, true
	}

	// "<head>.<ext>" with a word-only extension reuses the table for the head.
	head, ext, ok := cutExtension(pattern)
	if !ok {
		return "", false
	}

	src, ok := fastPathSource(head, opts)
	if !ok {
		return "", false
	}

	return src + `\.` + ext, true
}

// cutExtension splits "<head>.<ext>" where ext is word characters only.
func cutExtension(pattern string) (head, ext string, ok bool) {
	i := strings.LastIndexByte(pattern, '.')
	if i <= 0 || i == len(pattern)-1 {
		return "", "", false
	}

	ext = pattern[i+1:]
	for j := 0; j < len(ext); j++ {
		c := ext[j]
		if c != '_' && (c < '0' || c > '9') && (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return "", "", false
		}
	}

	return pattern[:i], ext, true
}
