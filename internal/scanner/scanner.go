// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package scanner

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"runtime"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/dirdiff/dirdiff/internal/differ"
	"github.com/dirdiff/dirdiff/internal/log"
	"github.com/dirdiff/dirdiff/internal/pairs"
	"github.com/dirdiff/dirdiff/internal/util"
	"github.com/dirdiff/dirdiff/internal/walker"
)

// Reason records why a pair was retained in the scan result.
type Reason string

const (
	// ReasonLeftOnly marks files present only under the left root.
	ReasonLeftOnly Reason = "left-only"
	// ReasonRightOnly marks files present only under the right root.
	ReasonRightOnly Reason = "right-only"
	// ReasonModified marks files whose contents differ significantly.
	ReasonModified Reason = "modified"
	// ReasonReadError marks files that could not be read and are assumed
	// different.
	ReasonReadError Reason = "read-error"
)

// Options tunes a scan. A nil IgnoredDirs falls back to the stock ignore set
// and a non-positive Workers to a CPU-bound count; Threshold is taken as
// given, zero meaning every non-identical pair is significant.
type Options struct {
	IgnoredDirs []string
	Threshold   float64
	Workers     int
}

// Pair is one retained scan entry: the resolved pair plus the retention
// reason, the computed change ratio and per-side sizes for listings.
type Pair struct {
	pairs.FilePair `yaml:",inline"`
	Reason         Reason  `yaml:"reason" json:"reason"`
	Ratio          float64 `yaml:"ratio" json:"ratio"`
	LeftSize       int64   `yaml:"leftSize" json:"leftSize"`
	RightSize      int64   `yaml:"rightSize" json:"rightSize"`
}

// Result is the ordered outcome of one scan. Pairs are sorted
// lexicographically by relative path; Scanned counts every resolved pair,
// retained or not.
type Result struct {
	LeftRoot  string `yaml:"leftRoot" json:"leftRoot"`
	RightRoot string `yaml:"rightRoot" json:"rightRoot"`
	Scanned   int    `yaml:"scanned" json:"scanned"`
	Pairs     []Pair `yaml:"pairs" json:"pairs"`
}

// Scan walks both roots, resolves the union of relative paths and retains
// every pair worth a user's attention: one-sided files always, two-sided
// files when their contents differ significantly per threshold. Invalid
// inputs (threshold outside [0,1], unusable roots) fail fast before any
// enumeration; per-file failures degrade to conservative retention instead.
func Scan(ctx context.Context, leftRoot, rightRoot string, opts Options) (*Result, error) {
	if opts.Threshold < 0 || opts.Threshold > 1 {
		return nil, fmt.Errorf("threshold %v outside [0,1]: %w", opts.Threshold, os.ErrInvalid)
	}

	left, err := util.ParseRootDir(leftRoot)
	if err != nil {
		return nil, fmt.Errorf("left root %q: %w", leftRoot, err)
	}
	right, err := util.ParseRootDir(rightRoot)
	if err != nil {
		return nil, fmt.Errorf("right root %q: %w", rightRoot, err)
	}

	ignored := opts.IgnoredDirs
	if ignored == nil {
		ignored = walker.DefaultIgnoredDirs
	}
	ignoreSet := walker.IgnoreSet(ignored)

	// The two tree walks are independent, run them against each other.
	var leftFiles, rightFiles map[string]string
	var eg errgroup.Group
	eg.Go(func() error {
		var walkErr error
		leftFiles, walkErr = walker.Enumerate(left, ignoreSet)
		return walkErr
	})
	eg.Go(func() error {
		var walkErr error
		rightFiles, walkErr = walker.Enumerate(right, ignoreSet)
		return walkErr
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	resolved := pairs.Resolve(leftFiles, rightFiles)
	log.Debugf("resolved pairs: left=%d right=%d union=%d", len(leftFiles), len(rightFiles), len(resolved))

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	// Classification order is irrelevant; results are accumulated under a
	// lock and sorted once at the end to restore determinism.
	var mu sync.Mutex
	var retained []Pair

	var cg errgroup.Group
	cg.SetLimit(workers)
	for _, pair := range resolved {
		cg.Go(func() error {
			if kept, ok := evaluate(pair, opts.Threshold); ok {
				mu.Lock()
				retained = append(retained, kept)
				mu.Unlock()
			}
			return nil
		})
	}
	// Workers never return errors; Wait is only a join point.
	_ = cg.Wait()

	sort.Slice(retained, func(i, j int) bool {
		return retained[i].RelPath < retained[j].RelPath
	})

	return &Result{
		LeftRoot:  left,
		RightRoot: right,
		Scanned:   len(resolved),
		Pairs:     retained,
	}, nil
}

// evaluate decides whether a single resolved pair is retained. It performs
// the scoped per-pair I/O: each side is opened, read fully and closed here,
// and no handle outlives the call.
func evaluate(pair pairs.FilePair, threshold float64) (Pair, bool) {
	if !pair.Both() {
		reason := ReasonLeftOnly
		if pair.RightOnly() {
			reason = ReasonRightOnly
		}
		return Pair{
			FilePair:  pair,
			Reason:    reason,
			Ratio:     1,
			LeftSize:  fileSize(pair.Left),
			RightSize: fileSize(pair.Right),
		}, true
	}

	leftContent, leftErr := os.ReadFile(pair.Left)
	rightContent, rightErr := os.ReadFile(pair.Right)
	if leftErr != nil || rightErr != nil {
		// Conservative: a pair we cannot read is assumed different rather
		// than silently dropped.
		err := leftErr
		if err == nil {
			err = rightErr
		}
		log.WithError(err).Warnf("assuming %s differs: read failed", pair.RelPath)
		return Pair{
			FilePair:  pair,
			Reason:    ReasonReadError,
			Ratio:     1,
			LeftSize:  int64(len(leftContent)),
			RightSize: int64(len(rightContent)),
		}, true
	}

	// Cheap short-circuit before the edit-script path.
	if bytes.Equal(leftContent, rightContent) {
		return Pair{}, false
	}

	c := differ.Classify(string(leftContent), string(rightContent), threshold)
	log.Tracef("classified %s: ratio=%v changed=%d max=%d", pair.RelPath, c.Ratio, c.Changed, c.MaxLines)
	if !c.Significant {
		return Pair{}, false
	}

	return Pair{
		FilePair:  pair,
		Reason:    ReasonModified,
		Ratio:     c.Ratio,
		LeftSize:  int64(len(leftContent)),
		RightSize: int64(len(rightContent)),
	}, true
}

// fileSize returns the size of path, 0 for absent or unreadable entries.
func fileSize(path string) int64 {
	if path == "" {
		return 0
	}
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.Size()
}
