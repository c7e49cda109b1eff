// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/globmatch

package globmatch

// PathMode selects which path separator convention matching follows.
type PathMode uint8

const (
	// PathModeAuto selects PathModePosix everywhere except Windows builds.
	PathModeAuto PathMode = iota
	// PathModePosix treats "/" as the only separator; backslashes in inputs
	// are normalized to forward slashes before matching.
	PathModePosix
	// PathModeNative keeps host separators untouched.
	PathModeNative
)

// DefaultMaxLength is the longest accepted pattern length in bytes.
const DefaultMaxLength = 65536

// Options controls pattern compilation and matching.
//
// Options are read-only per compilation; no field is mutated by the library.
type Options struct {
	// Ignore patterns veto otherwise-successful matches.
	Ignore []string `json:"ignore,omitempty" yaml:"ignore,omitempty"`
	// OnMatch is invoked for every accepted match. Observation only; the
	// return has no effect on the decision.
	OnMatch func(MatchResult) `json:"-" yaml:"-"`
	// OnIgnore is invoked when an ignore pattern suppresses a match.
	// Observation only.
	OnIgnore func(MatchResult) `json:"-" yaml:"-"`
	// OnResult is invoked for every tested input regardless of outcome.
	// Observation only.
	OnResult func(MatchResult) `json:"-" yaml:"-"`
	// Format normalizes inputs before matching. When nil, POSIX mode
	// normalizes backslashes to slashes and native mode leaves inputs as-is.
	Format func(string) string `json:"-" yaml:"-"`
	// Capture makes wildcard groups capturing and forces regex execution even
	// for literal inputs.
	Capture bool `json:"capture,omitempty" yaml:"capture,omitempty"`
	// Basename matches against the final path segment only.
	Basename bool `json:"basename,omitempty" yaml:"basename,omitempty"`
	// CaseInsensitive enables case-insensitive matching.
	CaseInsensitive bool `json:"case_insensitive,omitempty" yaml:"case_insensitive,omitempty"`
	// Flags holds RE2 inline flag letters ("i", "m", "s", "U") applied to the
	// assembled expression. A non-empty value overrides CaseInsensitive.
	Flags string `json:"flags,omitempty" yaml:"flags,omitempty"`
	// Contains relaxes full-string anchoring to substring containment.
	Contains bool `json:"contains,omitempty" yaml:"contains,omitempty"`
	// StrictSlashes disables the optional trailing slash accepted by fast-path
	// fragments.
	StrictSlashes bool `json:"strict_slashes,omitempty" yaml:"strict_slashes,omitempty"`
	// DisableFastPaths forces full compilation even for trivially simple
	// patterns.
	DisableFastPaths bool `json:"disable_fast_paths,omitempty" yaml:"disable_fast_paths,omitempty"`
	// Debug surfaces compilation failures to the caller instead of degrading
	// to a matcher that matches nothing.
	Debug bool `json:"debug,omitempty" yaml:"debug,omitempty"`
	// Cwd is the directory Split resolves pattern bases against. The library
	// never reads the process working directory; an empty Cwd keeps results
	// relative.
	Cwd string `json:"cwd,omitempty" yaml:"cwd,omitempty"`
	// PathMode selects the separator convention. Zero value is PathModeAuto.
	PathMode PathMode `json:"path_mode,omitempty" yaml:"path_mode,omitempty"`
	// MaxLength caps accepted pattern length in bytes. Zero means
	// DefaultMaxLength.
	MaxLength int `json:"max_length,omitempty" yaml:"max_length,omitempty"`
}

// applyDefaults fills zero-valued options with defaults.
func (opts *Options) applyDefaults() {
	if opts.MaxLength == 0 {
		opts.MaxLength = DefaultMaxLength
	}
}

// posix reports whether options select the POSIX separator convention.
func (opts *Options) posix() bool {
	switch opts.PathMode {
	case PathModePosix:
		return true
	case PathModeNative:
		return false
	default:
		return hostPosix
	}
}

// MatchResult is the transient record of one match attempt. The library never
// retains it; hooks may.
type MatchResult struct {
	// Pattern is the source glob pattern that produced this result.
	Pattern string `json:"pattern" yaml:"pattern"`
	// Input is the original input string.
	Input string `json:"input" yaml:"input"`
	// Output is the formatted input the match ran against.
	Output string `json:"output" yaml:"output"`
	// IsMatch reports the final decision after ignore filtering.
	IsMatch bool `json:"is_match" yaml:"is_match"`
	// Ignored reports whether an ignore pattern suppressed the match.
	Ignored bool `json:"ignored,omitempty" yaml:"ignored,omitempty"`
	// Posix reports the separator convention in effect.
	Posix bool `json:"posix,omitempty" yaml:"posix,omitempty"`
	// Match holds regex submatches for capture-mode matches and the matched
	// output for literal short-circuit matches. Nil otherwise, including for
	// non-capture regex matches and negated matches.
	Match []string `json:"match,omitempty" yaml:"match,omitempty"`
	// Regex is the compiled expression that produced this result.
	Regex *Regex `json:"-" yaml:"-"`
	// State is the syntax compiler state, when captured.
	State *ParseState `json:"-" yaml:"-"`
}
