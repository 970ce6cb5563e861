// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package viewer is the interactive side-by-side pair browser. It owns the
// navigation cursor over a scan result and materializes one pair's alignment
// at a time, on demand.
package viewer
