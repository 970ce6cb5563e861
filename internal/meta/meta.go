// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"

	"github.com/dirdiff/dirdiff/internal/config"
)

// RootSpec holds the two resolved tree roots being compared. LeftRoot is
// always the first positional directory, RightRoot the second.
type RootSpec struct {
	LeftRoot  string
	RightRoot string
}

// Meta contains runtime metadata shared by commands. It carries CLI arguments,
// loaded configuration, context, the resolved root directories, and the
// starting working directory.
type Meta struct {
	Args    []string
	Config  config.Type
	Context context.Context
	RootSpec
	StartingDir string
}
