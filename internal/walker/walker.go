// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package walker

import (
	"io/fs"
	"path/filepath"

	"github.com/dirdiff/dirdiff/internal/log"
)

// DefaultIgnoredDirs is the stock set of directory names pruned during
// enumeration: VCS metadata, build output and dependency caches.
var DefaultIgnoredDirs = []string{
	".git", ".svn", ".hg", "__pycache__", "build", "dist", "out",
	".idea", ".vscode", ".vs", ".gradle", ".dart_tool", "node_modules",
	".cache", ".pytest_cache", "target",
}

// IgnoreSet converts a list of directory names into a membership set. Empty
// names are dropped.
func IgnoreSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		if n == "" {
			continue
		}
		set[n] = struct{}{}
	}
	return set
}

// Enumerate walks the full subtree of root and returns a mapping from
// slash-separated relative path to absolute path, one entry per regular file.
// Subdirectories whose name is in ignored are pruned before descent, so
// ignored subtrees are never visited.
//
// Enumeration is resilient to partial filesystem failures: unreadable entries,
// permission denials and entries that vanish mid-walk are skipped and the walk
// continues. Only a root that cannot be walked at all yields an error.
func Enumerate(root string, ignored map[string]struct{}) (map[string]string, error) {
	files := make(map[string]string)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			// Per-entry failure: drop the entry, keep walking.
			log.Debugf("skipping unreadable entry: path=%s err=%v", path, err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if _, skip := ignored[d.Name()]; skip && path != root {
				return fs.SkipDir
			}
			return nil
		}

		// Symlinks and other irregular entries are not diffable content.
		if !d.Type().IsRegular() {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			log.Debugf("skipping entry outside root: path=%s err=%v", path, relErr)
			return nil
		}

		files[filepath.ToSlash(rel)] = path
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}
