// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

// Kind classifies one aligned display line.
type Kind int

const (
	// Unchanged lines are common to both sides at this alignment position.
	Unchanged Kind = iota
	// LeftOnly lines exist only on the left (a deletion relative to right).
	LeftOnly
	// RightOnly lines exist only on the right.
	RightOnly
)

// String returns the wire/display name of the kind.
func (k Kind) String() string {
	switch k {
	case LeftOnly:
		return "left-only"
	case RightOnly:
		return "right-only"
	default:
		return "unchanged"
	}
}

// DiffLine is one position of the merged alignment script. LeftNo and
// RightNo are 1-based line numbers into the originating contents, 0 when the
// line is absent from that side, so cursor positions map 1:1 onto a
// line-oriented display.
type DiffLine struct {
	Kind    Kind
	LeftNo  int
	RightNo int
	Text    string
}

// Align produces the ordered alignment of two contents. Unchanged lines
// advance both cursors, LeftOnly only the left, RightOnly only the right.
// The output is finite, deterministic and safe to recompute. Concatenating
// the Unchanged+LeftOnly texts yields exactly the left line sequence, and
// Unchanged+RightOnly the right one.
func Align(left, right string) []DiffLine {
	leftLines := SplitLines(left)
	rightLines := SplitLines(right)

	// One side fully absent degenerates to a single-sided walk; no need to
	// run the general algorithm.
	switch {
	case len(leftLines) == 0 && len(rightLines) == 0:
		return nil
	case len(leftLines) == 0:
		out := make([]DiffLine, len(rightLines))
		for i, l := range rightLines {
			out[i] = DiffLine{Kind: RightOnly, RightNo: i + 1, Text: l}
		}
		return out
	case len(rightLines) == 0:
		out := make([]DiffLine, len(leftLines))
		for i, l := range leftLines {
			out[i] = DiffLine{Kind: LeftOnly, LeftNo: i + 1, Text: l}
		}
		return out
	}

	return AlignScript(Script(left, right))
}

// AlignScript expands an already-computed edit script into per-line
// alignment records.
func AlignScript(script []Segment) []DiffLine {
	var out []DiffLine
	l, r := 1, 1
	for _, seg := range script {
		for _, line := range seg.Lines {
			switch seg.Op {
			case OpEqual:
				out = append(out, DiffLine{Kind: Unchanged, LeftNo: l, RightNo: r, Text: line})
				l++
				r++
			case OpDelete:
				out = append(out, DiffLine{Kind: LeftOnly, LeftNo: l, Text: line})
				l++
			case OpInsert:
				out = append(out, DiffLine{Kind: RightOnly, RightNo: r, Text: line})
				r++
			}
		}
	}
	return out
}
