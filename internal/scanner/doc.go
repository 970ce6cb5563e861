// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package scanner is the composition root of the diff pipeline. It runs the
// two tree enumerations, resolves pairs, reads file contents and keeps every
// pair that is one-sided, unreadable or significantly changed. All I/O beyond
// enumeration happens here; the result ordering is deterministic.
package scanner
