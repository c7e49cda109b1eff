// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/globmatch

package globmatch

import (
	"fmt"
	"testing"
)

const (
	benchPatternCount = 64
	benchPathCount    = 512
)

var (
	benchBoolSink   bool
	benchResultSink MatchResult
)

func benchmarkPatterns(n int) []string {
	patterns := make([]string, 0, n)
	for i := 0; i < n; i++ {
		switch i % 4 {
		case 0:
			patterns = append(patterns, fmt.Sprintf("*.ext%d", i))
		case 1:
			patterns = append(patterns, fmt.Sprintf("dir%d/**/*.go", i))
		case 2:
			patterns = append(patterns, fmt.Sprintf("file%d.txt", i))
		default:
			patterns = append(patterns, fmt.Sprintf("a/b?/c[0-9]/d%d", i))
		}
	}

	return patterns
}

func benchmarkPaths(n int) []string {
	paths := make([]string, 0, n)
	for i := 0; i < n; i++ {
		paths = append(paths, fmt.Sprintf("dir%d/sub/file%d.ext%d", i%7, i, i%benchPatternCount))
	}

	return paths
}

func BenchmarkMakeRegex(b *testing.B) {
	patterns := benchmarkPatterns(benchPatternCount)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		re, err := MakeRegex(patterns[i%len(patterns)], Options{})
		if err != nil {
			b.Fatal(err)
		}

		if re == nil {
			b.Fatal("nil regex")
		}
	}
}

func BenchmarkMakeRegexFastPath(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		re, err := MakeRegex("*.js", Options{})
		if err != nil {
			b.Fatal(err)
		}

		if re == nil {
			b.Fatal("nil regex")
		}
	}
}

func BenchmarkNewMatcher(b *testing.B) {
	patterns := benchmarkPatterns(benchPatternCount)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m, err := NewMatcher(patterns, Options{})
		if err != nil {
			b.Fatal(err)
		}

		if m == nil {
			b.Fatal("nil matcher")
		}
	}
}

func BenchmarkMatcherMatch(b *testing.B) {
	m, err := NewMatcher(benchmarkPatterns(benchPatternCount), Options{})
	if err != nil {
		b.Fatal(err)
	}

	paths := benchmarkPaths(benchPathCount)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchBoolSink = m.Match(paths[i%len(paths)])
	}
}

func BenchmarkMatcherResult(b *testing.B) {
	m, err := NewMatcher([]string{"**/*.go"}, Options{})
	if err != nil {
		b.Fatal(err)
	}

	paths := benchmarkPaths(benchPathCount)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchResultSink = m.Result(paths[i%len(paths)])
	}
}

func BenchmarkMatchLiteral(b *testing.B) {
	m, err := NewMatcher([]string{"dir1/sub/file1.txt"}, Options{})
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchBoolSink = m.Match("dir1/sub/file1.txt")
	}
}
