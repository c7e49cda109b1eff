// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/globmatch

package globmatch

import "errors"

// Sentinel errors for globmatch operations.
var (
	// ErrInvalidPattern indicates an empty or over-long pattern where a usable
	// glob pattern is required.
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrNoPatterns indicates an empty pattern list passed to the matcher factory.
	ErrNoPatterns = errors.New("no patterns")
	// ErrUnsupportedSyntax indicates glob syntax that cannot be expressed as an
	// RE2 regular expression.
	ErrUnsupportedSyntax = errors.New("unsupported pattern syntax")
	// ErrCompile indicates the pattern could not be compiled into a valid
	// regular expression.
	ErrCompile = errors.New("pattern compilation failed")
)
