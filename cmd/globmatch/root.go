// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/globmatch

package main

import "github.com/spf13/cobra"

var (
	version = "development"

	// exitCode is the process exit status for successful command runs;
	// match uses it for the grep-like "nothing selected" status.
	exitCode int
)

var rootCmd = &cobra.Command{
	Version:       version,
	Use:           "globmatch",
	Short:         "globmatch filters paths with glob patterns.",
	Long:          `Filter path lists with shell-style glob patterns, without touching a filesystem.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(explainCmd)
}
