// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/dirdiff/dirdiff/internal/config"
	"github.com/dirdiff/dirdiff/internal/differ"
	"github.com/dirdiff/dirdiff/internal/meta"
)

// showCommandAction is the action handler for the "show" subcommand. It
// renders the aligned line diff of a single relative path under the two
// roots, unified-style with context collapsing.
func showCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	// Bail out early if we're just dumping tldr.
	if ShortCircuitTLDR(ctx, cmd, "show") {
		return nil
	}

	config.Config.Namespace = "show"

	left, right, err := GetRoots(cmd)
	if err != nil {
		return err
	}

	rel := cmd.String("path")
	if rel == "" {
		// Allow the path as a third positional: dirdiff show LEFT RIGHT a/b.txt.
		if args := cmd.Args().Slice(); len(args) > 2 {
			rel = args[len(args)-1]
		}
	}
	if rel == "" {
		return fmt.Errorf("a relative path is required: --path or trailing argument")
	}

	leftContent, leftOK := readSide(filepath.Join(left, filepath.FromSlash(rel)))
	rightContent, rightOK := readSide(filepath.Join(right, filepath.FromSlash(rel)))
	if !leftOK && !rightOK {
		return fmt.Errorf("%s not found under either root", rel)
	}

	// Honor the flag, fall back to tty detection like everyone else.
	color.NoColor = !cmd.Bool("color") && !isatty.IsTerminal(os.Stdout.Fd())

	width := 0
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
	}

	lines := differ.Align(leftContent, rightContent)
	writeUnified(os.Stdout, rel, lines, cmd.Int("context"), width)

	c := differ.Classify(leftContent, rightContent, cmd.Float("threshold"))
	fmt.Fprintf(os.Stdout, "\n%d/%d lines changed (ratio %.3f)\n", c.Changed, c.MaxLines, c.Ratio)

	return nil
}

// showCommandBuilder constructs the cli.Command for "show", wiring metadata,
// flags, and action/validator handlers.
func showCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "show the line diff of one file pair",
		UsageText: "dirdiff show LEFT RIGHT [--path REL | REL] [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		// show renders one pair to the terminal, so the tabular output
		// flags (--output/--titles/--filter) have nothing to act on and
		// are not registered.
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "path",
				Aliases: []string{"p"},
				Usage:   "relative path of the pair to show",
			},
			&cli.IntFlag{
				Name:    "context",
				Aliases: []string{"C"},
				Usage:   "unchanged lines kept around each change (-1 = all)",
				Value:   3,
			},
			&cli.BoolFlag{
				Name:    "color",
				Aliases: []string{"c"},
				Usage:   "enable colored text output",
				Value:   false,
			},
			NewThresholdFlag("show", meta.Config.Source),
			tldrFlag,
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			return ctx, GlobalFlagsValidator(ctx, cmd)
		},
		Action: showCommandAction,
	}
}

// readSide reads one side of a pair. A missing file is the empty side, not
// an error.
func readSide(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.WithError(err).Warnf("read failed: path=%s", path)
		}
		return "", false
	}
	return string(data), true
}

var (
	delColor  = color.New(color.FgRed)
	insColor  = color.New(color.FgGreen)
	numColor  = color.New(color.Faint)
	elpsColor = color.New(color.FgCyan)
)

// writeUnified renders aligned diff lines with n unchanged context lines kept
// around each change. n < 0 keeps everything. Lines are clipped to width when
// width is positive.
func writeUnified(w io.Writer, rel string, lines []differ.DiffLine, n int, width int) {
	fmt.Fprintf(w, "%s\n", rel)

	keep := contextMask(lines, n)
	elided := false
	for i, dl := range lines {
		if !keep[i] {
			if !elided {
				elpsColor.Fprintln(w, "  ···")
				elided = true
			}
			continue
		}
		elided = false

		text := dl.Text
		// Marker, two 5-wide gutters and separators.
		if width > 14 && len(text) > width-14 {
			text = text[:width-14]
		}

		switch dl.Kind {
		case differ.LeftOnly:
			numColor.Fprintf(w, "- %4d      | ", dl.LeftNo)
			delColor.Fprintln(w, text)
		case differ.RightOnly:
			numColor.Fprintf(w, "+      %4d | ", dl.RightNo)
			insColor.Fprintln(w, text)
		default:
			numColor.Fprintf(w, "  %4d %4d | ", dl.LeftNo, dl.RightNo)
			fmt.Fprintln(w, text)
		}
	}
}

// contextMask marks which aligned lines survive context collapsing: every
// changed line, plus up to n unchanged neighbors on each side.
func contextMask(lines []differ.DiffLine, n int) []bool {
	keep := make([]bool, len(lines))
	if n < 0 {
		for i := range keep {
			keep[i] = true
		}
		return keep
	}

	for i, dl := range lines {
		if dl.Kind == differ.Unchanged {
			continue
		}
		lo := max(0, i-n)
		hi := min(len(lines)-1, i+n)
		for j := lo; j <= hi; j++ {
			keep[j] = true
		}
	}
	return keep
}
