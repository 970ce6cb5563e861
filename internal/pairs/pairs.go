// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package pairs

import "sort"

// FilePair joins the two locations of one relative path across the scan
// roots. An empty Left or Right means the file is absent on that side; at
// least one side is always present. Pairs are immutable once resolved.
type FilePair struct {
	RelPath string `yaml:"path" json:"path"`
	Left    string `yaml:"left,omitempty" json:"left,omitempty"`
	Right   string `yaml:"right,omitempty" json:"right,omitempty"`
}

// LeftOnly reports whether the file exists only under the left root.
func (p FilePair) LeftOnly() bool { return p.Right == "" }

// RightOnly reports whether the file exists only under the right root.
func (p FilePair) RightOnly() bool { return p.Left == "" }

// Both reports whether the file exists under both roots.
func (p FilePair) Both() bool { return p.Left != "" && p.Right != "" }

// Resolve computes the union of the relative-path keys of both enumerations
// and emits one FilePair per key, sorted lexicographically. A key missing
// from one map yields an absent side, never a synthesized location. The
// ordering is stable across runs and independent of filesystem iteration
// order.
func Resolve(left, right map[string]string) []FilePair {
	keys := make([]string, 0, len(left)+len(right))
	seen := make(map[string]struct{}, len(left)+len(right))
	for k := range left {
		keys = append(keys, k)
		seen[k] = struct{}{}
	}
	for k := range right {
		if _, dup := seen[k]; !dup {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	result := make([]FilePair, 0, len(keys))
	for _, k := range keys {
		result = append(result, FilePair{
			RelPath: k,
			Left:    left[k],
			Right:   right[k],
		})
	}
	return result
}
