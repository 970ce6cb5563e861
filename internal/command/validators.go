// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

func GlobalFlagsValidator(ctx context.Context, c *cli.Command) error {
	return nil
}

func OutputValidator(value any) error {
	var validOutputFlagValues = []string{"text", "json", "yaml"}
	valid := false
	for _, v := range validOutputFlagValues {
		if v == value {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("must be one of %v", validOutputFlagValues)
	}
	return nil
}

func ThresholdValidator(value any) error {
	t, ok := value.(float64)
	if !ok {
		return fmt.Errorf("must be a number")
	}
	if t < 0 || t > 1 {
		return fmt.Errorf("must be between 0 and 1 inclusive")
	}
	return nil
}

func WorkersValidator(value any) error {
	w, ok := value.(int)
	if !ok {
		return fmt.Errorf("must be an integer")
	}
	if w < 0 {
		return fmt.Errorf("must not be negative")
	}
	return nil
}
