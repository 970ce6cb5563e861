// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package filters provides filtering capabilities for scan results.
//
// The package parses filter expressions to select subsets of retained pairs
// based on their field values. Filters are specified as key-operator-target
// expressions and can be combined using a configurable delimiter (default:
// comma).
//
// Operators include:
//
//   - = : exact match (supports negation with !=)
//   - ^ : prefix match (supports negation with !^)
//   - ~ : case-insensitive match (supports negation with !~)
//   - < : less than (numeric comparison)
//   - > : greater than (numeric comparison)
//   - @ : contains substring (supports negation with !@)
//   - / : regex match (supports negation with !/)
//
// Examples:
//
//   - "reason=modified" : pairs retained as content changes
//   - "relPath^cmd/" : pairs whose relative path starts with "cmd/"
//   - "ratio>0.5" : pairs where more than half the lines changed
//   - "relPath!@_test" : pairs whose relative path does not contain "_test"
//
// Filter Keys:
//
// Filter keys are the JSON field names of a scan pair: "relPath", "reason",
// "ratio", "leftSize", "rightSize". A key with no operator is a presence
// check.
//
// Filter Parsing:
//
// The BuildFilters function parses a comma-delimited (or custom-delimited)
// filter specification string. Invalid specifications (unsupported operands
// or malformed expressions) are logged as warnings and skipped, allowing
// partial filter sets to be processed.
//
// Filter Application:
//
// The Apply function filters candidate rows, keeping only those that match
// all provided filter expressions.
package filters
