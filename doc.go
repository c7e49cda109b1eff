// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/globmatch

/*
Package globmatch compiles shell-style glob patterns into reusable matchers
that test in-memory strings, typically file paths. It never touches a
filesystem and is meant for fast path filtering in build tools, watchers and
bundlers.

Basic flow:
  - compile one or more patterns (`NewMatcher`)
  - test inputs (`Match` / `Result`)
  - or use one-shot helpers (`IsMatch`, `MatchAny`)

Lower layers are exposed for callers that need them:
  - `MakeRegex` assembles a pattern into an executable expression
  - `RegexSource` returns only the regex-source fragment
  - `Parse` and `Scan` expose the syntax compiler and the base/glob scanner
  - `Split`, `Join` and `Resolve` combine globs with directory prefixes

Pattern syntax: "*" matches within one path segment, "**" crosses segments,
"?" matches one non-separator character, "[...]" and "[!...]" are character
classes, "\" escapes the next character, and "@( )", "?( )", "*( )", "+( )"
are extglob groups with "|" alternation. A leading "!" negates the whole
pattern. Brace alternation is not expanded here; perform it upstream.

Compilation of a malformed pattern does not fail the caller: the resulting
matcher simply matches nothing. Set Options.Debug to surface compilation
errors instead.

Compiled matchers are immutable and safe for concurrent use, provided
caller-supplied hooks are themselves safe.
*/
package globmatch
