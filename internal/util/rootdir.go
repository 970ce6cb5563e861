// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package util

import (
	"os"
	"path/filepath"
)

// ParseRootDir resolves a scan root to an absolute directory path. It returns
// an error if the argument is empty, the fs entry does not exist or is not a
// directory. Relative paths are resolved against the current working
// directory.
func ParseRootDir(rootDir string) (string, error) {

	if rootDir == "" {
		return "", os.ErrInvalid
	}

	dir, err := filepath.Abs(rootDir)
	if err != nil {
		return "", err
	}

	// If the rootDir is not a directory, return an error.
	if r, err := os.Stat(dir); err != nil {
		return "", err
	} else if !r.IsDir() {
		return "", os.ErrInvalid
	}

	return dir, nil
}
