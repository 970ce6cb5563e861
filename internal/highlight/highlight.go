// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromaStyles "github.com/alecthomas/chroma/v2/styles"
)

// Source colorizes source code with ANSI escapes for terminal display. The
// lexer is picked from the filename, then by content analysis, then a plain
// fallback. On any failure the original content is returned untouched, so
// callers can use the result unconditionally.
func Source(content, filename string) string {
	lexer := lexers.Match(filename)
	if lexer == nil {
		lexer = lexers.Analyse(content)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := chromaStyles.Get("monokai")
	if style == nil {
		style = chromaStyles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, content)
	if err != nil {
		return content
	}

	var buf strings.Builder
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return content
	}
	return buf.String()
}

// Lines colorizes content and returns it split into display lines, one per
// input line. Highlighting must never change the line count, so on a
// mismatch the plain input lines are returned instead.
func Lines(content, filename string, plain []string) []string {
	colored := strings.Split(strings.TrimSuffix(Source(content, filename), "\n"), "\n")
	if len(colored) != len(plain) {
		return plain
	}
	return colored
}
