// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package scanner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = context.Background()

// writeTree creates the given relative-path/content files under a fresh
// temp root and returns the root.
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		abs := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0755))
		require.NoError(t, os.WriteFile(abs, []byte(content), 0600))
	}
	return root
}

// manyLines builds content with n numbered lines.
func manyLines(n int) string {
	var b strings.Builder
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, "line %d\n", i)
	}
	return b.String()
}

func relPaths(r *Result) []string {
	out := make([]string, len(r.Pairs))
	for i, p := range r.Pairs {
		out[i] = p.RelPath
	}
	return out
}

func TestScanPreflight(t *testing.T) {
	good := t.TempDir()

	tests := []struct {
		name      string
		left      string
		right     string
		threshold float64
	}{
		{name: "threshold below zero", left: good, right: good, threshold: -0.1},
		{name: "threshold above one", left: good, right: good, threshold: 1.1},
		{name: "left root missing", left: filepath.Join(good, "nope"), right: good, threshold: 0.05},
		{name: "right root missing", left: good, right: filepath.Join(good, "nope"), threshold: 0.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Scan(ctx, tt.left, tt.right, Options{Threshold: tt.threshold})
			assert.Error(t, err)
		})
	}
}

func TestScanRetention(t *testing.T) {
	big := manyLines(1000)
	bigTweaked := strings.Replace(big, "line 500", "line five hundred", 1)
	small := manyLines(20)
	smallTweaked := strings.Replace(small, "line 10", "line ten", 1)

	left := writeTree(t, map[string]string{
		"same.txt":      "identical\ncontent\n",
		"noisy.txt":     big,
		"changed.txt":   small,
		"left-only.txt": "orphan\n",
	})
	right := writeTree(t, map[string]string{
		"same.txt":       "identical\ncontent\n",
		"noisy.txt":      bigTweaked,
		"changed.txt":    smallTweaked,
		"right-only.txt": "",
	})

	result, err := Scan(ctx, left, right, Options{Threshold: 0.05})
	require.NoError(t, err)

	assert.Equal(t, 5, result.Scanned)
	assert.Equal(t, []string{"changed.txt", "left-only.txt", "right-only.txt"}, relPaths(result))

	byPath := map[string]Pair{}
	for _, p := range result.Pairs {
		byPath[p.RelPath] = p
	}

	// Byte-equal pair dropped; sub-threshold pair dropped.
	assert.NotContains(t, byPath, "same.txt")
	assert.NotContains(t, byPath, "noisy.txt")

	changed := byPath["changed.txt"]
	assert.Equal(t, ReasonModified, changed.Reason)
	assert.InDelta(t, 0.05, changed.Ratio, 1e-9)
	assert.True(t, changed.Both())

	leftOnly := byPath["left-only.txt"]
	assert.Equal(t, ReasonLeftOnly, leftOnly.Reason)
	assert.Empty(t, leftOnly.Right)

	// An empty right-only file is still a retained pair.
	rightOnly := byPath["right-only.txt"]
	assert.Equal(t, ReasonRightOnly, rightOnly.Reason)
	assert.Empty(t, rightOnly.Left)
	assert.Zero(t, rightOnly.RightSize)
}

func TestScanOneSidedIgnoresThreshold(t *testing.T) {
	left := writeTree(t, map[string]string{"only/here.txt": "x\n"})
	right := writeTree(t, map[string]string{})

	// Even a maximal threshold never drops a one-sided pair.
	result, err := Scan(ctx, left, right, Options{Threshold: 1.0})
	require.NoError(t, err)
	require.Len(t, result.Pairs, 1)
	assert.Equal(t, "only/here.txt", result.Pairs[0].RelPath)
	assert.Equal(t, ReasonLeftOnly, result.Pairs[0].Reason)
}

func TestScanDeterministicOrdering(t *testing.T) {
	files := map[string]string{}
	for i := 0; i < 40; i++ {
		files[fmt.Sprintf("dir%d/file%02d.txt", i%5, i)] = fmt.Sprintf("content %d\n", i)
	}
	left := writeTree(t, files)
	right := writeTree(t, map[string]string{})

	first, err := Scan(ctx, left, right, Options{Threshold: 0.05, Workers: 8})
	require.NoError(t, err)
	second, err := Scan(ctx, left, right, Options{Threshold: 0.05, Workers: 2})
	require.NoError(t, err)

	// Same ordered output regardless of worker count or completion order.
	assert.Equal(t, relPaths(first), relPaths(second))

	sorted := append([]string(nil), relPaths(first)...)
	assert.IsNonDecreasing(t, sorted)
}

func TestScanHonorsIgnoredDirs(t *testing.T) {
	left := writeTree(t, map[string]string{
		"src/app.go":                 "package app\n",
		"node_modules/dep/index.js":  "module.exports = 1\n",
		"src/node_modules/x/y.js":    "nested\n",
		".git/config":                "[core]\n",
		"vendor/keepme/included.txt": "kept\n",
	})
	right := writeTree(t, map[string]string{})

	result, err := Scan(ctx, left, right, Options{Threshold: 0.05})
	require.NoError(t, err)

	got := relPaths(result)
	assert.Contains(t, got, "src/app.go")
	assert.Contains(t, got, "vendor/keepme/included.txt")
	for _, p := range got {
		assert.NotContains(t, p, "node_modules")
		assert.NotContains(t, p, ".git")
	}
}

func TestScanCustomIgnoreSet(t *testing.T) {
	left := writeTree(t, map[string]string{
		"skipme/a.txt": "a\n",
		"keep/b.txt":   "b\n",
	})
	right := writeTree(t, map[string]string{})

	result, err := Scan(ctx, left, right, Options{
		Threshold:   0.05,
		IgnoredDirs: []string{"skipme"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"keep/b.txt"}, relPaths(result))
}

func TestScanUnreadablePairRetained(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("permission bits are ignored for root")
	}

	left := writeTree(t, map[string]string{"secret.txt": "left\n"})
	right := writeTree(t, map[string]string{"secret.txt": "right\n"})
	require.NoError(t, os.Chmod(filepath.Join(left, "secret.txt"), 0000))

	result, err := Scan(ctx, left, right, Options{Threshold: 0.05})
	require.NoError(t, err)
	require.Len(t, result.Pairs, 1)
	assert.Equal(t, ReasonReadError, result.Pairs[0].Reason)
}

func TestScanRootsResolvedAbsolute(t *testing.T) {
	left := writeTree(t, map[string]string{"a.txt": "a\n"})
	right := writeTree(t, map[string]string{"a.txt": "b\n"})

	result, err := Scan(ctx, left, right, Options{Threshold: 0.0})
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(result.LeftRoot))
	assert.True(t, filepath.IsAbs(result.RightRoot))
}
