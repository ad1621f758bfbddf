/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/semver/pkg/semver"
)

func sortCmd() *cli.Command {
	return &cli.Command{
		Name:                  "sort",
		EnableShellCompletion: true,
		Usage:                 "Sort versions in ascending precedence order",
		ArgsUsage:             "[version...]",
		Description: `Sort semantic versions in ascending precedence order and print the
original strings one per line. Build metadata is preserved in the output
even though it is ignored for ordering; precedence-equal versions keep
their input order.

Versions are read from the arguments, or one per line from stdin when no
arguments are given. Blank lines are skipped. Any malformed entry fails
the whole sort.

# Examples

  semver sort 1.0.0 0.9.0 1.0.0-rc.1
  0.9.0
  1.0.0-rc.1
  1.0.0

  git tag | semver sort`,
		Action: func(_ context.Context, cmd *cli.Command) error {
			initLogger(cmd)

			sorted, err := runSort(cmd.Args().Slice(), os.Stdin)
			if err != nil {
				return cli.Exit(err.Error(), exitCodeInvalidInput)
			}

			for _, v := range sorted {
				fmt.Fprintln(cmd.Root().Writer, v)
			}
			return nil
		},
	}
}

// runSort sorts the given versions, reading them line by line from input
// when args is empty.
func runSort(args []string, input io.Reader) ([]string, error) {
	versions := args
	if len(versions) == 0 {
		var err error
		versions, err = readLines(input)
		if err != nil {
			return nil, fmt.Errorf("failed to read versions from stdin: %w", err)
		}
	}

	sorted, err := semver.Sort(versions)
	if err != nil {
		return nil, err
	}
	return sorted, nil
}

func readLines(input io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
