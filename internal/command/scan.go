// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/dirdiff/dirdiff/internal/config"
	"github.com/dirdiff/dirdiff/internal/meta"
	"github.com/dirdiff/dirdiff/internal/output"
)

// scanCommandAction is the action handler for the "scan" subcommand. It
// compares the two trees once and emits the retained pairs per common flags.
func scanCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	// Bail out early if we're just dumping tldr.
	if ShortCircuitTLDR(ctx, cmd, "scan") {
		return nil
	}

	config.Config.Namespace = "scan"

	result, err := RunScan(ctx, cmd)
	if err != nil {
		return err
	}
	log.Debugf("scan done: scanned=%d retained=%d", result.Scanned, len(result.Pairs))

	output.Spit(result, cmd, os.Stdout)

	return nil
}

// scanCommandBuilder constructs the cli.Command for "scan", wiring metadata,
// flags, and action/validator handlers.
func scanCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "scan",
		Usage:     "compare two directory trees",
		UsageText: "dirdiff scan LEFT RIGHT [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			NewThresholdFlag("scan", meta.Config.Source),
			NewIgnoreFlag("scan", meta.Config.Source),
			NewWorkersFlag("scan", meta.Config.Source),
			tldrFlag,
		}, NewGlobalFlags("scan")...),
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			return ctx, GlobalFlagsValidator(ctx, cmd)
		},
		Action: scanCommandAction,
	}
}
