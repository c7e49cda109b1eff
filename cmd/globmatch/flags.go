// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/globmatch

package main

import "github.com/spf13/pflag"

// addCompileFlags registers the matching options shared by every subcommand.
func addCompileFlags(f *pflag.FlagSet, nocase, contains *bool, cwd *string) {
	f.BoolVar(nocase, "nocase", false, "case-insensitive matching")
	f.BoolVar(contains, "contains", false, "substring containment instead of full match")
	f.StringVar(cwd, "cwd", "", "directory pattern bases resolve against (default: process cwd)")
}
