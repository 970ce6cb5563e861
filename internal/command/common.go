// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/urfave/cli/v3"

	"github.com/dirdiff/dirdiff/internal/filters"
	"github.com/dirdiff/dirdiff/internal/meta"
	"github.com/dirdiff/dirdiff/internal/scanner"
	"github.com/dirdiff/dirdiff/internal/util"
	"github.com/dirdiff/dirdiff/internal/walker"
)

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// GetRoots resolves the two tree roots for a command: the pre-parsed pair
// from Metadata when app init saw them, otherwise the command's own
// positional arguments.
func GetRoots(cmd *cli.Command) (string, string, error) {
	m := GetMeta(cmd)
	if m.LeftRoot != "" && m.RightRoot != "" {
		return m.LeftRoot, m.RightRoot, nil
	}

	args := cmd.Args().Slice()
	if len(args) < 2 {
		return "", "", fmt.Errorf("two directories required: %s LEFT RIGHT", cmd.Name)
	}

	left, err := util.ParseRootDir(args[0])
	if err != nil {
		return "", "", fmt.Errorf("left root %q: %w", args[0], err)
	}
	right, err := util.ParseRootDir(args[1])
	if err != nil {
		return "", "", fmt.Errorf("right root %q: %w", args[1], err)
	}

	return left, right, nil
}

// ScanOptionsFromFlags assembles scanner.Options from the command's
// threshold/ignore/workers flags.  --ignore extends the stock ignore set
// rather than replacing it.
func ScanOptionsFromFlags(cmd *cli.Command) scanner.Options {
	ignored := walker.DefaultIgnoredDirs
	if extras := splitIgnoreValues(cmd.StringSlice("ignore")); len(extras) > 0 {
		ignored = append(append([]string{}, ignored...), extras...)
	}

	return scanner.Options{
		IgnoredDirs: ignored,
		Threshold:   cmd.Float("threshold"),
		Workers:     cmd.Int("workers"),
	}
}

// RunScan resolves roots and options from the command, performs one scan and
// applies any --filter spec to the retained pairs.
func RunScan(ctx context.Context, cmd *cli.Command) (*scanner.Result, error) {
	left, right, err := GetRoots(cmd)
	if err != nil {
		return nil, err
	}

	result, err := scanner.Scan(ctx, left, right, ScanOptionsFromFlags(cmd))
	if err != nil {
		return nil, err
	}

	if spec := cmd.String("filter"); spec != "" {
		result.Pairs = filters.Apply(result.Pairs, spec)
	}

	return result, nil
}

// ShortCircuitTLDR checks the --tldr flag and, if present and available,
// runs `tldr dirdiff <subcmd>` and returns true so the caller can exit early.
func ShortCircuitTLDR(ctx context.Context, cmd *cli.Command, subcmd string) bool {
	if cmd.Bool("tldr") {
		if _, err := exec.LookPath("tldr"); err == nil {
			c := exec.CommandContext(ctx, "tldr", "dirdiff", subcmd)
			c.Stdout = os.Stdout
			c.Stderr = os.Stderr
			_ = c.Run()
		}
		return true
	}
	return false
}
