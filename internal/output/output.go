// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v2"

	"github.com/dirdiff/dirdiff/internal/config"
	"github.com/dirdiff/dirdiff/internal/log"
	"github.com/dirdiff/dirdiff/internal/scanner"
)

// Spit renders a scan result to w according to the command's --output,
// --titles and --color flags. If w is nil, os.Stdout is used.
func Spit(result *scanner.Result, cmd *cli.Command, w io.Writer) {
	if w == nil {
		w = os.Stdout
	}

	switch cmd.String("output") {
	case "json":
		jsonOutput, err := json.Marshal(result)
		if err != nil {
			log.Errorf("Spit json marshal: %v", err)
			return
		}
		_, _ = w.Write(append(jsonOutput, '\n'))
	case "yaml":
		yamlOutput, err := yaml.Marshal(result)
		if err != nil {
			log.Errorf("Spit yaml marshal: %v", err)
			return
		}
		_, _ = w.Write(yamlOutput)
	default:
		TableWriter(result, cmd, w)
	}
}

// TableWriter renders the result set in tabular form honoring color and
// titles options, followed by a one-line scan summary.
func TableWriter(result *scanner.Result, cmd *cli.Command, w io.Writer) {
	if w == nil {
		w = os.Stdout
	}

	if len(result.Pairs) == 0 {
		fmt.Fprintf(w, "No significant differences in %d scanned pairs.\n", result.Scanned)
		return
	}

	// We initialize the table styles.
	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left).Bold(true)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	// And then color styles if --color is present.
	if cmd.Bool("color") {
		headerColor, evenColor, oddColor := getColors("colors")

		headerStyle = headerStyle.Foreground(headerColor)
		evenRowStyle = evenRowStyle.Foreground(evenColor)
		oddRowStyle = oddRowStyle.Foreground(oddColor)
	}

	// We build the table rows from the result set.
	var rows [][]string
	for _, pair := range result.Pairs {
		rows = append(rows, []string{
			pair.RelPath,
			string(pair.Reason),
			formatRatio(pair),
			formatSize(pair.LeftSize, pair.Left),
			formatSize(pair.RightSize, pair.Right),
		})
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}

			if col > 0 {
				style = style.PaddingLeft(2)
			}

			return style
		}).
		Headers().
		Rows(rows...)

	// We add column headers if titles are enabled.
	if cmd.Bool("titles") {
		t = t.Headers("path", "status", "ratio", "left", "right").BorderHeader(false)
	}
	fmt.Fprintln(w, t)

	fmt.Fprintf(w, "%d of %d pairs differ significantly\n", len(result.Pairs), result.Scanned)
}

// formatRatio renders the change ratio, blank for one-sided pairs where the
// ratio carries no information.
func formatRatio(pair scanner.Pair) string {
	if pair.Reason != scanner.ReasonModified {
		return "-"
	}
	return strconv.FormatFloat(pair.Ratio, 'f', 3, 64)
}

// formatSize humanizes a byte count, "-" for an absent side.
func formatSize(size int64, location string) string {
	if location == "" {
		return "-"
	}
	return humanize.Bytes(uint64(size))
}

// getColors returns configured color values for table rendering. Each color is
// selected based on terminal background color and brightness so that we can
// make sure output is reasonably visible for all(?) terminal themes.
func getColors(key string) (header, even, odd color.Color) {
	isDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)

	// Use the explicit color if found in the config and leave it up to the user
	// to choose appropriate colors for their theme. If not found, pick a
	// reasonable default based on terminal background.
	resolveColor := func(key string, light string, dark string) color.Color {
		colorCfg, err := config.GetString(key)
		if err == nil {
			return lipgloss.Color(colorCfg)
		}

		if isDark {
			return lipgloss.Color(dark)
		}
		return lipgloss.Color(light)
	}

	header = resolveColor(key+".title", "#b08800", "#f6be00")
	even = resolveColor(key+".even", "#333333", "#ffffff")
	odd = resolveColor(key+".odd", "#0088a0", "#00c8f0")

	return
}
