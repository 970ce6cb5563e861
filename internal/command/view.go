// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/dirdiff/dirdiff/internal/config"
	"github.com/dirdiff/dirdiff/internal/meta"
	"github.com/dirdiff/dirdiff/internal/viewer"
)

// viewCommandAction is the action handler for the "view" subcommand. It runs
// one scan and opens the interactive side-by-side browser over the result.
func viewCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	// Bail out early if we're just dumping tldr.
	if ShortCircuitTLDR(ctx, cmd, "view") {
		return nil
	}

	config.Config.Namespace = "view"

	result, err := RunScan(ctx, cmd)
	if err != nil {
		return err
	}
	log.Debugf("scan done: scanned=%d retained=%d", result.Scanned, len(result.Pairs))

	return viewer.Browse(result)
}

// viewCommandBuilder constructs the cli.Command for "view", wiring metadata,
// flags, and action/validator handlers.
func viewCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "view",
		Usage:     "browse differing pairs side by side",
		UsageText: "dirdiff view LEFT RIGHT [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			NewThresholdFlag("view", meta.Config.Source),
			NewIgnoreFlag("view", meta.Config.Source),
			NewWorkersFlag("view", meta.Config.Source),
			tldrFlag,
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			return ctx, GlobalFlagsValidator(ctx, cmd)
		},
		Action: viewCommandAction,
	}
}
