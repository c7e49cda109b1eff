// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/globmatch

//go:build !windows

package globmatch

// hostPosix is the separator convention selected by PathModeAuto.
const hostPosix = true
