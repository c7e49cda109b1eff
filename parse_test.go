// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/globmatch

package globmatch

import (
	"errors"
	"testing"
)

func TestParseOutput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pattern string
		want    string
	}{
		{"*.js", `[^/]*\.js`},
		{"a/*.js", `a/[^/]*\.js`},
		{"a/**/b", `a/(?:.*/)?b`},
		{"**/b", `(?:.*/)?b`},
		{"a/**", `a/.*`},
		{"a?c", `a[^/]c`},
		{"a[0-9].txt", `a[0-9]\.txt`},
		{"a[!0-9].txt", `a[^0-9]\.txt`},
		{`a\*b`, `a\*b`},
		{"a{b}c", `a\{b\}c`},
		{"a@(b|c)d", `a(?:b|c)d`},
		{"a+(bc)", `a(?:bc)+`},
		{"a?(b)", `a(?:b)?`},
		{"a*(b)", `a(?:b)*`},
	}

	for _, tc := range tests {
		st, err := Parse(tc.pattern, Options{})
		if err != nil {
			t.Fatalf("Parse(%q): %v", tc.pattern, err)
		}

		if st.Output != tc.want {
			t.Fatalf("Parse(%q).Output=%q, want %q", tc.pattern, st.Output, tc.want)
		}
	}
}

func TestParseNegation(t *testing.T) {
	t.Parallel()

	st, err := Parse("!*.js", Options{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if !st.Negated {
		t.Fatalf("leading ! must negate")
	}

	if st.Output != `[^/]*\.js` {
		t.Fatalf("negation prefix must not reach the fragment, got %q", st.Output)
	}

	st, err = Parse("!!!*.js", Options{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if !st.Negated {
		t.Fatalf("odd negation count must stay negated")
	}
}

func TestParseNegativeExtglobUnsupported(t *testing.T) {
	t.Parallel()

	if _, err := Parse("!(a|b)", Options{}); !errors.Is(err, ErrUnsupportedSyntax) {
		t.Fatalf("negative extglob must fail with ErrUnsupportedSyntax, got %v", err)
	}

	if _, err := Parse("a/!(b)/c", Options{}); !errors.Is(err, ErrUnsupportedSyntax) {
		t.Fatalf("embedded negative extglob must fail too, got %v", err)
	}
}

func TestParseMalformed(t *testing.T) {
	t.Parallel()

	if _, err := Parse(`a\`, Options{}); !errors.Is(err, ErrCompile) {
		t.Fatalf("dangling escape must fail with ErrCompile, got %v", err)
	}

	if _, err := Parse("a@(b", Options{}); !errors.Is(err, ErrCompile) {
		t.Fatalf("unterminated extglob must fail with ErrCompile, got %v", err)
	}

	if _, err := Parse("", Options{}); !errors.Is(err, ErrInvalidPattern) {
		t.Fatalf("empty pattern must fail with ErrInvalidPattern, got %v", err)
	}
}

func TestParseUnterminatedClassIsLiteral(t *testing.T) {
	t.Parallel()

	st, err := Parse("a[bc", Options{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if st.Output != `a\[bc` {
		t.Fatalf("unterminated class must stay literal, got %q", st.Output)
	}
}

func TestParseCapture(t *testing.T) {
	t.Parallel()

	st, err := Parse("*.js", Options{Capture: true})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if st.Output != `([^/]*)\.js` {
		t.Fatalf("capture must emit capturing wildcard groups, got %q", st.Output)
	}

	st, err = Parse("a/**/b", Options{Capture: true})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if st.Output != `a/(?:(.*)/)?b` {
		t.Fatalf("capture globstar fragment mismatch, got %q", st.Output)
	}
}

func TestFastPathTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pattern string
		want    string
		covered bool
	}{
		{"*", `[^/]*`, true},
		{"**", `.*`, true},
		{"**/*", `(?:.*/)?[^/]*`, true},
		{"*.js", `[^/]*\.js`, true},
		{"**/*.js", `(?:.*/)?[^/]*\.js`, true},
		{".*", `\.[^/]*`, true},
		{".*.js", `\.[^/]*\.js`, true},
		{"*.{js,ts}", "", false},
		{"a/*.js", "", false},
	}

	for _, tc := range tests {
		got, ok := fastPathSource(tc.pattern, Options{})
		if ok != tc.covered {
			t.Fatalf("fastPathSource(%q) covered=%v, want %v", tc.pattern, ok, tc.covered)
		}

		if got != tc.want {
			t.Fatalf("fastPathSource(%q)=%q, want %q", tc.pattern, got, tc.want)
		}
	}
}

func TestFastPathSkippedForCapture(t *testing.T) {
	t.Parallel()

	if _, ok := fastPathSource("*.js", Options{Capture: true}); ok {
		t.Fatalf("capture mode must bypass the non-capturing fast-path table")
	}
}
