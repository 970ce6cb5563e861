// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package differ

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// numberedLines builds "line 1\n" ... "line n\n" content.
func numberedLines(n int) string {
	var b strings.Builder
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, "line %d\n", i)
	}
	return b.String()
}

// replaceLine swaps the 1-based line no of content for replacement.
func replaceLine(content string, no int, replacement string) string {
	lines := SplitLines(content)
	lines[no-1] = replacement
	return strings.Join(lines, "\n") + "\n"
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{name: "empty", content: "", want: nil},
		{name: "single terminated", content: "a\n", want: []string{"a"}},
		{name: "single unterminated", content: "a", want: []string{"a"}},
		{name: "trailing unterminated counts", content: "a\nb", want: []string{"a", "b"}},
		{name: "blank line preserved", content: "a\n\nb\n", want: []string{"a", "", "b"}},
		{name: "crlf stripped", content: "a\r\nb\r\n", want: []string{"a", "b"}},
		{name: "newline only", content: "\n", want: []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitLines(tt.content))
		})
	}
}

func TestClassifyEmptySides(t *testing.T) {
	// Exactly one side empty is always significant, even at threshold 1.0.
	c := Classify("", "anything\n", 1.0)
	assert.True(t, c.Significant)
	assert.Equal(t, 1.0, c.Ratio)

	c = Classify("anything\n", "", 1.0)
	assert.True(t, c.Significant)

	// Both empty is never significant.
	c = Classify("", "", 0.0)
	assert.False(t, c.Significant)
	assert.Zero(t, c.Ratio)
}

func TestClassifyIdenticalContent(t *testing.T) {
	content := numberedLines(50)
	for _, threshold := range []float64{0.0001, 0.05, 0.5, 1.0} {
		c := Classify(content, content, threshold)
		assert.False(t, c.Significant, "threshold %v", threshold)
		assert.Zero(t, c.Ratio)
		assert.Zero(t, c.Changed)
	}
}

func TestClassifyScenarioBoundary(t *testing.T) {
	// 20 identical lines, one replaced: ratio is exactly 1/20 = 0.05 and the
	// default threshold is inclusive.
	left := numberedLines(20)
	right := replaceLine(left, 10, "a different tenth line")

	c := Classify(left, right, DefaultThreshold)
	assert.True(t, c.Significant)
	assert.InDelta(t, 0.05, c.Ratio, 1e-9)
	assert.Equal(t, 1, c.Changed)
	assert.Equal(t, 20, c.MaxLines)
}

func TestClassifyLargeFileSmallEdit(t *testing.T) {
	// 1000 lines, one replaced: ratio 0.001 is below the default threshold.
	left := numberedLines(1000)
	right := replaceLine(left, 500, "tweaked")

	c := Classify(left, right, DefaultThreshold)
	assert.False(t, c.Significant)
	assert.InDelta(t, 0.001, c.Ratio, 1e-9)
}

func TestClassifyPureAddition(t *testing.T) {
	left := numberedLines(10)
	right := left + "line 11\nline 12\n"

	c := Classify(left, right, DefaultThreshold)
	assert.True(t, c.Significant)
	assert.Equal(t, 2, c.Changed)
	assert.Equal(t, 12, c.MaxLines)
	assert.InDelta(t, 2.0/12.0, c.Ratio, 1e-9)
}

func TestClassifySymmetry(t *testing.T) {
	cases := [][2]string{
		{numberedLines(20), replaceLine(numberedLines(20), 3, "x")},
		{numberedLines(5), numberedLines(9)},
		{"a\nb\nc\n", "c\nb\na\n"},
		{"", "one\ntwo\n"},
	}
	for i, pair := range cases {
		ab := Classify(pair[0], pair[1], DefaultThreshold)
		ba := Classify(pair[1], pair[0], DefaultThreshold)
		assert.Equal(t, ab.Ratio, ba.Ratio, "case %d", i)
		assert.Equal(t, ab.Changed, ba.Changed, "case %d", i)
	}
}

func TestClassifyThresholdMonotonicity(t *testing.T) {
	left := numberedLines(20)
	right := replaceLine(left, 1, "swapped")

	thresholds := []float64{1.0, 0.5, 0.05, 0.01, 0.0}
	lastSignificant := false
	for _, threshold := range thresholds {
		c := Classify(left, right, threshold)
		if lastSignificant {
			// Lowering the threshold never flips significant back to false.
			assert.True(t, c.Significant, "threshold %v", threshold)
		}
		lastSignificant = c.Significant
	}
}

func TestClassifyTrailingNewlineOnlyChange(t *testing.T) {
	// Terminator normalization: a trailing-newline-only difference is not a
	// changed line.
	c := Classify("a\nb", "a\nb\n", 0.0001)
	assert.False(t, c.Significant)
	assert.Zero(t, c.Changed)
}

func TestAlignRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		left  string
		right string
	}{
		{name: "replacement", left: numberedLines(8), right: replaceLine(numberedLines(8), 4, "mid")},
		{name: "pure insert", left: numberedLines(3), right: numberedLines(6)},
		{name: "pure delete", left: numberedLines(6), right: numberedLines(3)},
		{name: "disjoint", left: "a\nb\nc\n", right: "x\ny\n"},
		{name: "left empty", left: "", right: "only\nright\n"},
		{name: "right empty", left: "only\nleft\n", right: ""},
		{name: "interleaved", left: "a\nb\nc\nd\ne\n", right: "a\nx\nc\ny\ne\nz\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			aligned := Align(tt.left, tt.right)

			var gotLeft, gotRight []string
			for _, dl := range aligned {
				switch dl.Kind {
				case Unchanged:
					gotLeft = append(gotLeft, dl.Text)
					gotRight = append(gotRight, dl.Text)
				case LeftOnly:
					gotLeft = append(gotLeft, dl.Text)
				case RightOnly:
					gotRight = append(gotRight, dl.Text)
				}
			}

			assert.Equal(t, SplitLines(tt.left), gotLeft, "left reconstruction")
			assert.Equal(t, SplitLines(tt.right), gotRight, "right reconstruction")
		})
	}
}

func TestAlignLineNumbers(t *testing.T) {
	aligned := Align("a\nb\nc\n", "a\nx\nc\n")

	l, r := 0, 0
	for _, dl := range aligned {
		switch dl.Kind {
		case Unchanged:
			l++
			r++
			assert.Equal(t, l, dl.LeftNo)
			assert.Equal(t, r, dl.RightNo)
		case LeftOnly:
			l++
			assert.Equal(t, l, dl.LeftNo)
			assert.Zero(t, dl.RightNo)
		case RightOnly:
			r++
			assert.Equal(t, r, dl.RightNo)
			assert.Zero(t, dl.LeftNo)
		}
	}
	assert.Equal(t, 3, l, "left cursor walked all left lines")
	assert.Equal(t, 3, r, "right cursor walked all right lines")
}

func TestAlignBothEmpty(t *testing.T) {
	assert.Empty(t, Align("", ""))
}

func TestAlignDeterministic(t *testing.T) {
	left := numberedLines(30)
	right := replaceLine(replaceLine(numberedLines(30), 5, "x"), 25, "y")

	first := Align(left, right)
	second := Align(left, right)
	assert.Equal(t, first, second)
}

func TestClassifierAndAlignerAgree(t *testing.T) {
	// Both views derive from the same script: the one-sided lines of the
	// alignment are exactly the non-equal lines the classifier counted over.
	left := numberedLines(12)
	right := replaceLine(numberedLines(14), 6, "replaced")

	script := Script(left, right)
	aligned := AlignScript(script)

	var scriptChanged, alignedChanged []string
	for _, seg := range script {
		if seg.Op != OpEqual {
			scriptChanged = append(scriptChanged, seg.Lines...)
		}
	}
	for _, dl := range aligned {
		if dl.Kind != Unchanged {
			alignedChanged = append(alignedChanged, dl.Text)
		}
	}
	assert.ElementsMatch(t, scriptChanged, alignedChanged)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "unchanged", Unchanged.String())
	assert.Equal(t, "left-only", LeftOnly.String())
	assert.Equal(t, "right-only", RightOnly.String())
}
