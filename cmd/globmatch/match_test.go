// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/globmatch

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woozymasta/globmatch"
)

func TestFilterInputs(t *testing.T) {
	m, err := globmatch.NewMatcher([]string{"*.js", "src/**"}, globmatch.Options{})
	require.NoError(t, err)

	inputs := []string{"a.js", "b.txt", "src/c.go", "vendor/d.go"}

	assert.Equal(t, []string{"a.js", "src/c.go"}, filterInputs(m, inputs, false))
	assert.Equal(t, []string{"b.txt", "vendor/d.go"}, filterInputs(m, inputs, true))
}

func TestReadLines(t *testing.T) {
	lines, err := readLines(strings.NewReader("a.js\r\n\nb.txt\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a.js", "b.txt"}, lines)
}

func TestLoadPatternFilePlain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.txt")
	require.NoError(t, os.WriteFile(path, []byte("# comment\n*.js\ndist/**\n"), 0o600))

	patterns, ignore, err := loadPatternFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"*.js", "dist/**"}, patterns)
	assert.Empty(t, ignore)
}

func TestLoadPatternFileYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.yaml")
	src := "patterns:\n  - '*.js'\n  - 'src/**'\nignore:\n  - 'vendor/**'\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

	patterns, ignore, err := loadPatternFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"*.js", "src/**"}, patterns)
	assert.Equal(t, []string{"vendor/**"}, ignore)
}

func TestExplainPattern(t *testing.T) {
	ex, err := explainPattern("a/b/*.js", globmatch.Options{Cwd: "/work", Debug: true})
	require.NoError(t, err)

	assert.Equal(t, "a/b", ex.Scan.Base)
	assert.Equal(t, "*.js", ex.Scan.Glob)
	assert.Equal(t, "/work/a/b", ex.Split.Cwd)
	assert.False(t, ex.Negated)
	require.NotNil(t, ex.State)
	assert.Contains(t, ex.Regex, `\.js`)
}

func TestExplainPatternRejectsUnsupported(t *testing.T) {
	_, err := explainPattern("!(a|b)", globmatch.Options{Debug: true})
	require.Error(t, err)
}
