// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Op is the operation kind of one edit-script segment.
type Op int

const (
	// OpEqual marks lines common to both sides.
	OpEqual Op = iota
	// OpDelete marks lines present only on the left side.
	OpDelete
	// OpInsert marks lines present only on the right side.
	OpInsert
)

// Segment is one run of consecutive lines sharing an operation in the edit
// script.
type Segment struct {
	Op    Op
	Lines []string
}

// SplitLines splits content into its line sequence. The line terminator is
// the sole delimiter; a trailing unterminated line still counts as a line,
// and empty content has no lines. Terminators (\n, \r\n) are stripped so both
// the classifier and the aligner see identical line values.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// Script computes the line-level edit script between two contents. Segments
// appear in merged-script order and each carries whole lines. The result is a
// pure function of the inputs; both significance classification and render
// alignment derive from this one script so they can never disagree about
// which lines changed.
func Script(left, right string) []Segment {
	leftLines := SplitLines(left)
	rightLines := SplitLines(right)

	dmp := diffpatch.New()
	l, r, lineArray := dmp.DiffLinesToChars(joinLines(leftLines), joinLines(rightLines))
	diffs := dmp.DiffMain(l, r, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	script := make([]Segment, 0, len(diffs))
	for i := range diffs {
		d := &diffs[i]
		lines := SplitLines(d.Text)
		if len(lines) == 0 {
			continue
		}
		var op Op
		switch d.Type {
		case diffpatch.DiffDelete:
			op = OpDelete
		case diffpatch.DiffInsert:
			op = OpInsert
		case diffpatch.DiffEqual:
			op = OpEqual
		}
		script = append(script, Segment{Op: op, Lines: lines})
	}
	return script
}

// joinLines reassembles a line sequence into terminator-normalized content so
// the underlying diff operates on one canonical form.
func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
