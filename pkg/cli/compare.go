/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/semver/pkg/semver"
)

func compareCmd() *cli.Command {
	return &cli.Command{
		Name:                  "compare",
		EnableShellCompletion: true,
		Usage:                 "Compare two versions by precedence",
		ArgsUsage:             "<version-a> <version-b>",
		Description: `Compare two semantic versions and print the precedence relation
of the first to the second: "<", "=", or ">".

Build metadata is ignored when determining precedence, so versions that
differ only in build metadata compare as equal.

# Examples

  semver compare 1.2.3 1.3.0
  <

  semver compare 1.0.0+linux 1.0.0+darwin
  =

  semver compare 2.0.0 2.0.0-rc.1
  >`,
		Action: func(_ context.Context, cmd *cli.Command) error {
			initLogger(cmd)

			rel, err := runCompare(cmd.Args().Slice())
			if err != nil {
				return cli.Exit(err.Error(), exitCodeInvalidInput)
			}

			fmt.Fprintln(cmd.Root().Writer, rel)
			return nil
		},
	}
}

// runCompare parses both arguments and returns the precedence relation
// of the first to the second as "<", "=", or ">".
func runCompare(args []string) (string, error) {
	if len(args) != 2 {
		return "", fmt.Errorf("compare requires exactly 2 arguments, got %d", len(args))
	}

	a, err := semver.Parse(args[0])
	if err != nil {
		return "", fmt.Errorf("invalid version %q: %w", args[0], err)
	}

	b, err := semver.Parse(args[1])
	if err != nil {
		return "", fmt.Errorf("invalid version %q: %w", args[1], err)
	}

	switch semver.Compare(a, b) {
	case -1:
		return "<", nil
	case 1:
		return ">", nil
	default:
		return "=", nil
	}
}
