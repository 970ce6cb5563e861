// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package highlight

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const goSnippet = "package main\n\nfunc main() {\n\tprintln(\"hi\")\n}\n"

func TestSource(t *testing.T) {
	got := Source(goSnippet, "main.go")
	assert.NotEmpty(t, got)
	// Token text must survive colorization.
	assert.Contains(t, got, "main")
	assert.Contains(t, got, "println")
}

func TestSourceUnknownFiletype(t *testing.T) {
	content := "some plain text\nwith two lines\n"
	got := Source(content, "notes.xyzzy")
	assert.Contains(t, got, "some plain text")
}

func TestSourceEmpty(t *testing.T) {
	assert.Empty(t, strings.TrimSpace(stripANSI(Source("", "empty.go"))))
}

func TestLinesPreservesLineCount(t *testing.T) {
	plain := []string{"package main", "", "func main() {", "\tprintln(\"hi\")", "}"}
	got := Lines(goSnippet, "main.go", plain)
	assert.Len(t, got, len(plain))
	for i, line := range got {
		assert.Equal(t, plain[i], stripANSI(line), "line %d", i)
	}
}

func TestLinesFallsBackOnMismatch(t *testing.T) {
	plain := []string{"just one line"}
	// Content that disagrees with plain forces the fallback.
	got := Lines("a\nb\nc\n", "x.txt", plain)
	assert.Equal(t, plain, got)
}

// stripANSI removes terminal escape sequences for comparisons.
func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
