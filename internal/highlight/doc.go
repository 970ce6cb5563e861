// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package highlight is a stateless syntax-coloring tokenizer for the
// presentation layer, built on chroma. It has no coupling to the diff
// engine: it maps content to ANSI-colored content and nothing else.
package highlight
