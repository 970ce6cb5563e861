// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/dirdiff/dirdiff/internal/config"
	"github.com/dirdiff/dirdiff/internal/meta"
	"github.com/dirdiff/dirdiff/internal/util"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {

	// Save the CWD at startup and then defer restoring it so we're tidy.
	sd, _ := os.Getwd()
	defer func() {
		if err := os.Chdir(sd); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to restore directory: %v\n", err)
		}
	}()

	// The arg[1] immediately following the binary (arg[0]) is the dirdiff
	// subcommand and also represents the namespace key to be used when retrieving
	// config values. arg[1] could be -h/--help, so ignore it if it appears to be
	// a flag.
	var ns string
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		ns = args[1]
	}

	// allow short if-style local cfg; no actual outer cfg
	cfg2, _ := config.Load() //nolint
	cfg2.Namespace = ns
	meta := meta.Meta{
		Args:        args,
		Config:      cfg2,
		Context:     ctx,
		StartingDir: sd,
	}

	// Every command except 'completion' compares two trees, given as the two
	// positional args immediately following the subcommand. Flags may come
	// first, in which case the command's own Args() carry the roots and
	// resolution is deferred to GetRoots.
	if ns != "" && ns != "completion" &&
		len(args) > 3 && !strings.HasPrefix(args[2], "-") && !strings.HasPrefix(args[3], "-") {
		left, err := util.ParseRootDir(args[2])
		if err != nil {
			return nil, fmt.Errorf("failed to parse left root (%s): %w", args[2], err)
		}
		right, err := util.ParseRootDir(args[3])
		if err != nil {
			return nil, fmt.Errorf("failed to parse right root (%s): %w", args[3], err)
		}
		meta.LeftRoot = left
		meta.RightRoot = right
	}

	app := &cli.Command{
		Name:  "dirdiff",
		Usage: "Directory tree diff",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "dirdiff version info",
				HideDefault: true,
			},
		},
	}

	app.Commands = append(app.Commands,
		scanCommandBuilder(meta),
		showCommandBuilder(meta),
		viewCommandBuilder(meta),
		watchCommandBuilder(meta),
		completionCommandBuilder(meta),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}
