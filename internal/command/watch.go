// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/dirdiff/dirdiff/internal/config"
	"github.com/dirdiff/dirdiff/internal/meta"
	"github.com/dirdiff/dirdiff/internal/output"
	"github.com/dirdiff/dirdiff/internal/walker"
	"github.com/dirdiff/dirdiff/internal/watcher"
)

// watchCommandAction is the action handler for the "watch" subcommand. It
// scans once, then rescans and reprints whenever either tree changes, until
// interrupted.
func watchCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	// Bail out early if we're just dumping tldr.
	if ShortCircuitTLDR(ctx, cmd, "watch") {
		return nil
	}

	config.Config.Namespace = "watch"

	left, right, err := GetRoots(cmd)
	if err != nil {
		return err
	}
	opts := ScanOptionsFromFlags(cmd)

	rescan := func() error {
		result, scanErr := RunScan(ctx, cmd)
		if scanErr != nil {
			return scanErr
		}
		fmt.Fprintf(os.Stdout, "-- %s\n", time.Now().Format(time.TimeOnly))
		output.Spit(result, cmd, os.Stdout)
		return nil
	}

	if err := rescan(); err != nil {
		return err
	}

	w, err := watcher.New(
		[]string{left, right},
		walker.IgnoreSet(opts.IgnoredDirs),
		time.Duration(cmd.Int("debounce"))*time.Millisecond,
	)
	if err != nil {
		return err
	}
	defer w.Close()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	go w.Run(ctx)

	log.Infof("watching: left=%s right=%s", left, right)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-w.Changes():
			if err := rescan(); err != nil {
				// A tree may vanish mid-watch; report and keep watching.
				log.WithError(err).Errorf("rescan failed")
			}
		}
	}
}

// watchCommandBuilder constructs the cli.Command for "watch", wiring
// metadata, flags, and action/validator handlers.
func watchCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "watch",
		Usage:     "rescan and report whenever either tree changes",
		UsageText: "dirdiff watch LEFT RIGHT [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			&cli.IntFlag{
				Name:  "debounce",
				Usage: "quiet period in milliseconds before a rescan",
				Value: 250,
			},
			NewThresholdFlag("watch", meta.Config.Source),
			NewIgnoreFlag("watch", meta.Config.Source),
			NewWorkersFlag("watch", meta.Config.Source),
			tldrFlag,
		}, NewGlobalFlags("watch")...),
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			return ctx, GlobalFlagsValidator(ctx, cmd)
		},
		Action: watchCommandAction,
	}
}
