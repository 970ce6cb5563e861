// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package walker enumerates the files beneath a scan root. It produces a
// mapping from platform-neutral relative path to absolute path so that the
// same file under two different roots is keyed identically. Directory names
// in the ignore set are pruned before descent and never visited.
package walker
