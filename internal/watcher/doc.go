// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package watcher turns raw filesystem events under the compared roots
// into debounced "something changed" notifications for rescan loops.
package watcher
