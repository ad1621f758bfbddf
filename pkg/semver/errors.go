// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package semver

import "fmt"

// Code classifies parse and constraint failures so callers can branch on
// the failure kind instead of matching error strings.
type Code string

const (
	// CodeInvalidFormat indicates the input does not follow the
	// MAJOR.MINOR.PATCH[-PRERELEASE][+BUILD] shape.
	CodeInvalidFormat Code = "INVALID_FORMAT"
	// CodeLeadingZero indicates a numeric component or numeric
	// pre-release identifier with an illegal leading zero.
	CodeLeadingZero Code = "LEADING_ZERO"
	// CodeEmptyIdentifier indicates an empty pre-release or build
	// identifier, such as two consecutive dots.
	CodeEmptyIdentifier Code = "EMPTY_IDENTIFIER"
	// CodeInvalidCharacter indicates a character outside the allowed set.
	CodeInvalidCharacter Code = "INVALID_CHARACTER"
	// CodeTooManyComponents indicates more than three numeric components.
	CodeTooManyComponents Code = "TOO_MANY_COMPONENTS"

	// CodeMalformedComparator indicates a comparator token that is not an
	// operator followed by a valid version.
	CodeMalformedComparator Code = "MALFORMED_COMPARATOR"
	// CodeUnknownOperator indicates an operator symbol outside the
	// supported set.
	CodeUnknownOperator Code = "UNKNOWN_OPERATOR"
	// CodeEmptyExpression indicates an empty constraint expression or an
	// empty clause between "||" separators.
	CodeEmptyExpression Code = "EMPTY_EXPRESSION"
)

// ParseError describes a malformed version string. It includes the error
// code for programmatic handling, a human-readable message, and the byte
// offset of the offending input.
type ParseError struct {
	Code    Code
	Message string
	Pos     int
	Input   string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("[%s] %s at position %d in %q", e.Code, e.Message, e.Pos, e.Input)
}

// ConstraintError describes a malformed constraint expression. When the
// version embedded in a comparator fails to parse, Cause holds the
// underlying ParseError.
type ConstraintError struct {
	Code    Code
	Message string
	Expr    string
	Cause   error
}

// Error implements the error interface.
func (e *ConstraintError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s in %q: %v", e.Code, e.Message, e.Expr, e.Cause)
	}
	return fmt.Sprintf("[%s] %s in %q", e.Code, e.Message, e.Expr)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *ConstraintError) Unwrap() error {
	return e.Cause
}
