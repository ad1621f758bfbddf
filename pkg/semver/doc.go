// Package semver implements Semantic Versioning 2.0.0: parsing version
// strings into immutable values, a total-order precedence comparison,
// and a small constraint expression language evaluated against parsed
// versions.
//
// # Overview
//
// The package is a pure function library. Every operation is a
// deterministic function of its string inputs with no I/O, no globals
// and no state retained between calls, so all entry points are safe for
// concurrent use without synchronization.
//
// Parse a version:
//
//	v, err := semver.Parse("1.2.3-beta.2+build.7")
//	if err != nil {
//	    // *semver.ParseError with a Code to branch on
//	}
//	fmt.Println(v.String()) // Output: 1.2.3-beta.2+build.7
//
// Compare versions (build metadata is ignored):
//
//	semver.Compare(semver.MustParse("1.0.0-alpha"), semver.MustParse("1.0.0")) // -1
//
// Evaluate a constraint expression:
//
//	ok, err := semver.Satisfies(v, ">=1.0.0 <2.0.0 || ~3.2.1")
//
// Sort version strings by precedence:
//
//	sorted, err := semver.Sort([]string{"1.0.0-beta.11", "1.0.0-beta.2"})
//
// # Grammar
//
// Versions follow the anchored grammar
//
//	MAJOR "." MINOR "." PATCH ["-" PRERELEASE] ["+" BUILD]
//
// with exactly three numeric components, no leading zeros, and
// dot-separated identifier lists from [0-9A-Za-z-]. Parsing is strict:
// empty identifiers (as in "2.2.1-.1") are rejected so that every
// parsed Version recomposes to its original input.
//
// Constraint expressions are comparator sets: space-separated
// comparators form a conjunction, "||" separates disjunctive clauses,
// and the operators =, !=, <, <=, >, >=, ^ and ~ are supported. The
// caret and tilde operators expand into half-open ranges; a pre-release
// version only matches a range anchored at its own core triplet.
//
// # Error Handling
//
// Malformed versions return *ParseError and malformed expressions return
// *ConstraintError, both carrying a Code for programmatic handling. A
// bad version inside a comparator wraps the ParseError, reachable via
// errors.As.
package semver
