// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

// DefaultThreshold is the stock minimum change ratio: at least 5% of the
// larger line count must change before a pair is worth a human's attention.
const DefaultThreshold = 0.05

// Classification is the outcome of significance classification. Ratio,
// Changed and MaxLines are retained for diagnostics rather than reducing the
// result to a bare boolean.
type Classification struct {
	Significant bool    `yaml:"significant" json:"significant"`
	Ratio       float64 `yaml:"ratio" json:"ratio"`
	Changed     int     `yaml:"changed" json:"changed"`
	MaxLines    int     `yaml:"maxLines" json:"maxLines"`
}

// Classify decides whether two contents differ significantly. The policy, in
// order:
//
//  1. Exactly one side empty: always significant, asymmetric presence is
//     never noise.
//  2. Both sides empty: never significant.
//  3. Otherwise the change ratio changed/max(leftLines, rightLines) is
//     compared against threshold, inclusive (>=).
//
// Classify is pure: same inputs, same result, no side effects.
func Classify(left, right string, threshold float64) Classification {
	if (left == "") != (right == "") {
		full := len(SplitLines(left)) + len(SplitLines(right))
		return Classification{
			Significant: true,
			Ratio:       1,
			Changed:     full,
			MaxLines:    full,
		}
	}
	if left == "" && right == "" {
		return Classification{}
	}
	return ClassifyScript(Script(left, right), threshold)
}

// ClassifyScript classifies from an already-computed edit script, allowing a
// caller that also needs the render alignment to pay for the script once.
func ClassifyScript(script []Segment, threshold float64) Classification {
	leftTotal, rightTotal := 0, 0
	for _, seg := range script {
		switch seg.Op {
		case OpEqual:
			leftTotal += len(seg.Lines)
			rightTotal += len(seg.Lines)
		case OpDelete:
			leftTotal += len(seg.Lines)
		case OpInsert:
			rightTotal += len(seg.Lines)
		}
	}

	maxLines := max(leftTotal, rightTotal)
	if maxLines == 0 {
		// Degenerate guard; empty-vs-empty is handled upstream.
		return Classification{}
	}

	changed := changedLines(script)
	ratio := float64(changed) / float64(maxLines)

	return Classification{
		Significant: ratio >= threshold,
		Ratio:       ratio,
		Changed:     changed,
		MaxLines:    maxLines,
	}
}

// changedLines counts the net-changed lines of a script as the larger of the
// total deleted and total inserted line counts. Pairing deletions with
// insertions means a one-line replacement counts as a single changed line
// while a pure addition or removal of n lines counts as n. Because a minimal
// edit script fixes both totals uniquely, the count is symmetric in the two
// inputs.
func changedLines(script []Segment) int {
	deleted, inserted := 0, 0
	for _, seg := range script {
		switch seg.Op {
		case OpDelete:
			deleted += len(seg.Lines)
		case OpInsert:
			inserted += len(seg.Lines)
		}
	}
	return max(deleted, inserted)
}
