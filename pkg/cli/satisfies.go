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

func satisfiesCmd() *cli.Command {
	return &cli.Command{
		Name:                  "satisfies",
		EnableShellCompletion: true,
		Usage:                 "Check whether a version satisfies a constraint expression",
		ArgsUsage:             "<version> <constraint>",
		Description: `Evaluate a version against a constraint expression and print "true"
or "false". The exit code mirrors the result: 0 when the version matches,
1 when it does not, 2 when either input is malformed.

Constraint expressions support the operators =, !=, <, <=, >, >=, ^, and ~.
Space-separated comparators are ANDed together; "||" separates OR clauses.
A bare version means exact match.

Prerelease versions only match caret and tilde ranges anchored at the same
core version (e.g. "^1.2.3-rc.1" matches "1.2.3-rc.2" but not "1.3.0-rc.1").

# Examples

  semver satisfies 1.4.2 "^1.2.0"
  true

  semver satisfies 2.0.0 "~1.2.0"
  false

  semver satisfies 1.0.0-alpha ">=1.0.0-alpha <2.0.0 || =0.9.9"
  true`,
		Action: func(_ context.Context, cmd *cli.Command) error {
			initLogger(cmd)

			ok, err := runSatisfies(cmd.Args().Slice())
			if err != nil {
				return cli.Exit(err.Error(), exitCodeInvalidInput)
			}

			fmt.Fprintln(cmd.Root().Writer, ok)
			if !ok {
				return cli.Exit("", 1)
			}
			return nil
		},
	}
}

// runSatisfies parses the version and constraint arguments and reports
// whether the version matches the constraint.
func runSatisfies(args []string) (bool, error) {
	if len(args) != 2 {
		return false, fmt.Errorf("satisfies requires exactly 2 arguments, got %d", len(args))
	}

	v, err := semver.Parse(args[0])
	if err != nil {
		return false, fmt.Errorf("invalid version %q: %w", args[0], err)
	}

	ok, err := semver.Satisfies(v, args[1])
	if err != nil {
		return false, fmt.Errorf("invalid constraint %q: %w", args[1], err)
	}

	return ok, nil
}
