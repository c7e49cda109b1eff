// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/globmatch

package globmatch

import (
	"path"
	"path/filepath"
	"strings"
)

// toPosixSlashes replaces every backslash with a forward slash.
func toPosixSlashes(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	return strings.ReplaceAll(s, `\`, "/")
}

// SplitResult is the static/glob decomposition of one pattern.
type SplitResult struct {
	// Base is the leading directory part free of glob syntax.
	Base string `json:"base" yaml:"base"`
	// Glob is the remaining pattern containing glob syntax.
	Glob string `json:"glob" yaml:"glob"`
	// Cwd is Base resolved against Options.Cwd.
	Cwd string `json:"cwd" yaml:"cwd"`
}

// Split decomposes pattern into its static base directory and glob remainder.
//
// Cwd in the result is the scanner base joined onto Options.Cwd as a POSIX
// path. No filesystem access happens; with an empty Options.Cwd the result
// stays relative.
func Split(pattern string, opts Options) (SplitResult, error) {
	sc, err := Scan(pattern, opts)
	if err != nil {
		return SplitResult{}, err
	}

	return SplitResult{
		Base: sc.Base,
		Glob: sc.Glob,
		Cwd:  path.Join(toPosixSlashes(opts.Cwd), strings.TrimPrefix(sc.Base, "/")),
	}, nil
}

// Join joins base segments and a trailing glob suffix into one POSIX pattern.
//
// The final argument is the glob; everything before it is joined as a POSIX
// path. Calling Join without arguments is a programmer error and panics.
func Join(segments ...string) string {
	if len(segments) == 0 {
		panic("globmatch: Join requires at least the glob segment")
	}

	glob := toPosixSlashes(segments[len(segments)-1])
	if len(segments) == 1 {
		return glob
	}

	return path.Join(joinBase(segments[:len(segments)-1]), glob)
}

// Resolve joins like Join but makes the base absolute first.
//
// Resolve is a host-boundary helper: turning a relative base into an absolute
// one consults the process working directory.
func Resolve(segments ...string) string {
	if len(segments) == 0 {
		panic("globmatch: Resolve requires at least the glob segment")
	}

	glob := toPosixSlashes(segments[len(segments)-1])
	base := joinBase(segments[:len(segments)-1])

	abs, err := filepath.Abs(filepath.FromSlash(base))
	if err == nil {
		base = abs
	}

	return path.Join(toPosixSlashes(base), glob)
}

// joinBase joins non-glob base segments as a slash-normalized POSIX path.
func joinBase(segments []string) string {
	parts := make([]string, 0, len(segments))
	for _, seg := range segments {
		parts = append(parts, toPosixSlashes(seg))
	}

	return path.Join(parts...)
}
