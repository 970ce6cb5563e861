// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"os/exec"
	"strings"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/dirdiff/dirdiff/internal/differ"
)

var tldrFlag *cli.BoolFlag = &cli.BoolFlag{
	Name:        "tldr",
	Usage:       "show tldr page",
	Hidden:      !pathHas("tldr"),
	HideDefault: true,
}

func NewGlobalFlags(params ...string) (flags []cli.Flag) {
	flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Value:   false,
		},
		&cli.StringFlag{
			Name:    "filter",
			Aliases: []string{"f"},
			Usage:   "comma-separated list of filters to apply to results",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Value:   "text",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.BoolFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Value:   false,
		},
	}

	return
}

// NewThresholdFlag constructs the "threshold" flag, optionally namespaced to
// a command and config file.  params[1] is the config file.
func NewThresholdFlag(params ...string) (flag *cli.FloatFlag) {
	flag = &cli.FloatFlag{
		Name:    "threshold",
		Aliases: []string{"r"},
		Usage:   "change ratio at or above which a pair is significant",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("DIRDIFF_THRESHOLD"),
		),
		Value: differ.DefaultThreshold,
		Validator: func(value float64) error {
			return FlagValidators(value, ThresholdValidator)
		},
	}

	if len(params) == 2 {
		flag.Sources.Chain = append(flag.Sources.Chain,
			namespacedYAMLSources(params[0], params[1], flag.Name)...)
	}

	return
}

// NewIgnoreFlag constructs the "ignore" flag listing directory names pruned
// from both walks in addition to the stock set.
func NewIgnoreFlag(params ...string) (flag *cli.StringSliceFlag) {
	flag = &cli.StringSliceFlag{
		Name:    "ignore",
		Aliases: []string{"i"},
		Usage:   "additional directory names to prune from both trees",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("DIRDIFF_IGNORE"),
		),
	}

	if len(params) == 2 {
		flag.Sources.Chain = append(flag.Sources.Chain,
			namespacedYAMLSources(params[0], params[1], flag.Name)...)
	}

	return
}

// NewWorkersFlag constructs the "workers" flag bounding concurrent pair
// classification.  Zero means one worker per CPU.
func NewWorkersFlag(params ...string) (flag *cli.IntFlag) {
	flag = &cli.IntFlag{
		Name:    "workers",
		Aliases: []string{"w"},
		Usage:   "max concurrent file comparisons (0 = CPU count)",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("DIRDIFF_WORKERS"),
		),
		Value: 0,
		Validator: func(value int) error {
			return FlagValidators(value, WorkersValidator)
		},
	}

	if len(params) == 2 {
		flag.Sources.Chain = append(flag.Sources.Chain,
			namespacedYAMLSources(params[0], params[1], flag.Name)...)
	}

	return
}

// namespacedYAMLSources builds the config file lookup chain for a flag: the
// namespaced key first (e.g. "scan.threshold"), then the bare key.
func namespacedYAMLSources(ns string, path string, name string) []cli.ValueSource {
	return []cli.ValueSource{
		yaml.YAML(ns+"."+name, altsrc.StringSourcer(path)),
		yaml.YAML(name, altsrc.StringSourcer(path)),
	}
}

// pathHas checks if the given executable exists on PATH.
func pathHas(target string) bool {
	_, err := exec.LookPath(target)
	return err == nil
}

// splitIgnoreValues flattens comma-separated entries so both
// "--ignore a,b" and repeated "--ignore a --ignore b" work.
func splitIgnoreValues(values []string) []string {
	var names []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				names = append(names, part)
			}
		}
	}
	return names
}
