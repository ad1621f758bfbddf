// Package cli implements the command-line interface for the semver tool.
//
// # Overview
//
// The semver CLI provides commands for parsing, comparing, sorting, and
// matching Semantic Versioning 2.0.0 strings against constraint expressions.
// It is a thin layer over pkg/semver, designed to be pipe-friendly: command
// output goes to stdout, logs go to stderr.
//
// # Commands
//
// compare - Compare two versions by precedence:
//
//	semver compare 1.2.3 1.3.0
//
// Prints "<", "=", or ">" describing how the first version relates to the
// second. Build metadata is ignored, so "1.0.0+a" and "1.0.0+b" compare equal.
//
// satisfies - Check a version against a constraint expression:
//
//	semver satisfies 1.4.2 "^1.2.0"
//	semver satisfies 1.0.0-alpha ">=1.0.0-alpha <2.0.0 || =0.9.9"
//
// Prints "true" or "false" and sets the exit code accordingly.
//
// parse - Decompose a version into its components:
//
//	semver parse 1.2.3-rc.1+build.7 [--format json|yaml|table] [--output FILE]
//
// Prints the canonical form and each component. Output defaults to table
// format for terminal viewing; JSON and YAML are available for programmatic
// consumption.
//
// sort - Sort versions in ascending precedence order:
//
//	semver sort 1.0.0 0.9.0 1.0.0-rc.1
//	cat versions.txt | semver sort
//
// Reads versions from arguments or, when none are given, one per line from
// stdin. Prints the original strings (build metadata preserved) in ascending
// order. The sort is stable: precedence-equal versions keep their input order.
//
// # Global Flags
//
//	--log-level    Logging verbosity: debug, info, warn, error (default: info)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Exit Codes
//
//	0  Success (for satisfies: the version matches)
//	1  satisfies only: the version does not match the constraint
//	2  Invalid input (malformed version or constraint expression)
//
// # Environment Variables
//
//	LOG_LEVEL  Set logging verbosity (debug, info, warn, error)
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized packages:
//   - pkg/semver - Parsing, precedence, constraints, sorting
//   - pkg/serializer - Output formatting
//   - pkg/logging - Structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/mchmarny/semver/pkg/cli.version=1.0.0'"
package cli
