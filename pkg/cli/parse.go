/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/semver/pkg/semver"
	"github.com/mchmarny/semver/pkg/serializer"
)

// versionReport is the serializable decomposition of a parsed version.
type versionReport struct {
	Canonical  string   `json:"canonical" yaml:"canonical"`
	Major      uint64   `json:"major" yaml:"major"`
	Minor      uint64   `json:"minor" yaml:"minor"`
	Patch      uint64   `json:"patch" yaml:"patch"`
	Prerelease []string `json:"prerelease,omitempty" yaml:"prerelease,omitempty"`
	Build      []string `json:"build,omitempty" yaml:"build,omitempty"`
}

func parseCmd() *cli.Command {
	return &cli.Command{
		Name:                  "parse",
		EnableShellCompletion: true,
		Usage:                 "Parse a version and print its components",
		ArgsUsage:             "<version>",
		Description: `Parse a semantic version and print its canonical form along with the
major, minor, and patch numbers and any prerelease or build identifiers.

The output can be in JSON, YAML, or table format (default: table).

# Examples

  semver parse 1.2.3-rc.1+build.7
  semver parse 1.2.3-rc.1+build.7 --format json
  semver parse 1.2.3 --format yaml --output version.yaml`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			initLogger(cmd)

			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return cli.Exit(err.Error(), exitCodeInvalidInput)
			}

			report, err := runParse(cmd.Args().Slice())
			if err != nil {
				return cli.Exit(err.Error(), exitCodeInvalidInput)
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			return ser.Serialize(ctx, report)
		},
	}
}

// runParse parses the single version argument into a versionReport.
func runParse(args []string) (*versionReport, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("parse requires exactly 1 argument, got %d", len(args))
	}

	v, err := semver.Parse(args[0])
	if err != nil {
		return nil, fmt.Errorf("invalid version %q: %w", args[0], err)
	}

	report := &versionReport{
		Canonical: v.String(),
		Major:     v.Major(),
		Minor:     v.Minor(),
		Patch:     v.Patch(),
	}
	for _, id := range v.Prerelease() {
		report.Prerelease = append(report.Prerelease, id.String())
	}
	for _, id := range v.Build() {
		report.Build = append(report.Build, id.String())
	}

	return report, nil
}
