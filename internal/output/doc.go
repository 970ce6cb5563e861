// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output renders scan results for the terminal. Text output is a
// lipgloss table with humanized sizes; json and yaml output are faithful
// marshalings of the result for scripting.
package output
