// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package differ computes line-level edit scripts between two file contents
// and derives from one shared script both the change-significance
// classification and the per-line alignment used for rendering.
package differ
