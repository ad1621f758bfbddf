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

import (
	"fmt"
	"strings"
)

// Op identifies a comparator operator in a constraint expression.
type Op string

const (
	// OpEqual represents "=" (precedence-equal). It is also the default
	// when a comparator has no operator.
	OpEqual Op = "="
	// OpNotEqual represents "!=".
	OpNotEqual Op = "!="
	// OpLess represents "<".
	OpLess Op = "<"
	// OpLessEqual represents "<=".
	OpLessEqual Op = "<="
	// OpGreater represents ">".
	OpGreater Op = ">"
	// OpGreaterEqual represents ">=".
	OpGreaterEqual Op = ">="
	// OpCaret represents "^" (compatible-changes range).
	OpCaret Op = "^"
	// OpTilde represents "~" (patch-level range).
	OpTilde Op = "~"
)

// comparator is a single operator/version pair. For the range operators
// the equivalent half-open interval is computed once at parse time.
type comparator struct {
	op  Op
	ver Version
	rng interval
}

// andClause is a space-juxtaposed comparator set; all members must hold.
type andClause []comparator

// Constraint is a parsed constraint expression: a disjunction of
// conjunctive comparator sets. The grammar is
//
//	expression := clause ("||" clause)*
//	clause     := comparator (WS comparator)*
//	comparator := [op] version
//
// with op drawn from =, !=, <, <=, >, >=, ^ and ~; a missing operator
// means "=". A Constraint is built once per expression and walked
// recursively during matching; it holds no mutable state and is safe
// for concurrent use.
type Constraint struct {
	str     string
	clauses []andClause
}

// String returns the expression used to create the Constraint, trimmed
// of leading and trailing space.
func (c *Constraint) String() string {
	return c.str
}

// ParseConstraint parses a constraint expression into a Constraint.
// On failure the returned error is a *ConstraintError; when the version
// embedded in a comparator is malformed it wraps the *ParseError.
func ParseConstraint(expr string) (*Constraint, error) {
	trimmed := strings.TrimSpace(expr)
	if trimmed == "" {
		return nil, &ConstraintError{
			Code:    CodeEmptyExpression,
			Message: "constraint expression is empty",
			Expr:    expr,
		}
	}
	c := &Constraint{str: trimmed}
	for _, part := range strings.Split(trimmed, "||") {
		clause, err := parseClause(part, expr)
		if err != nil {
			return nil, err
		}
		c.clauses = append(c.clauses, clause)
	}
	return c, nil
}

// opChars is the set of bytes that can start an operator token.
const opChars = "=!<>^~"

// versionChars extends the identifier charset with the separators that
// may appear inside a version token.
func isVersionChar(c byte) bool {
	return isIdentChar(c) || c == '.' || c == '+'
}

// parseClause parses one "||"-separated clause into an AND set.
func parseClause(part, expr string) (andClause, error) {
	var clause andClause
	rest := strings.TrimSpace(part)
	for rest != "" {
		n := 0
		for n < len(rest) && strings.IndexByte(opChars, rest[n]) >= 0 {
			n++
		}
		op, ok := lookupOp(rest[:n])
		if !ok {
			return nil, &ConstraintError{
				Code:    CodeUnknownOperator,
				Message: fmt.Sprintf("unknown operator %q", rest[:n]),
				Expr:    expr,
			}
		}
		rest = strings.TrimLeft(rest[n:], " \t")
		m := 0
		for m < len(rest) && isVersionChar(rest[m]) {
			m++
		}
		if m == 0 {
			msg := fmt.Sprintf("operator %q is not followed by a version", op)
			if n == 0 {
				c := byte(0)
				if rest != "" {
					c = rest[0]
				}
				msg = fmt.Sprintf("expected comparator, got %q", c)
			}
			return nil, &ConstraintError{
				Code:    CodeMalformedComparator,
				Message: msg,
				Expr:    expr,
			}
		}
		ver, err := Parse(rest[:m])
		if err != nil {
			return nil, &ConstraintError{
				Code:    CodeMalformedComparator,
				Message: fmt.Sprintf("invalid version in comparator %q", rest[:m]),
				Expr:    expr,
				Cause:   err,
			}
		}
		cmp := comparator{op: op, ver: ver}
		switch op {
		case OpCaret:
			cmp.rng = caretInterval(ver)
		case OpTilde:
			cmp.rng = tildeInterval(ver)
		}
		clause = append(clause, cmp)
		rest = strings.TrimLeft(rest[m:], " \t")
	}
	if len(clause) == 0 {
		return nil, &ConstraintError{
			Code:    CodeEmptyExpression,
			Message: "empty constraint clause",
			Expr:    expr,
		}
	}
	return clause, nil
}

// lookupOp maps an operator token to its Op. The empty token defaults
// to "=".
func lookupOp(tok string) (Op, bool) {
	switch tok {
	case "":
		return OpEqual, true
	case "=":
		return OpEqual, true
	case "!=":
		return OpNotEqual, true
	case "<":
		return OpLess, true
	case "<=":
		return OpLessEqual, true
	case ">":
		return OpGreater, true
	case ">=":
		return OpGreaterEqual, true
	case "^":
		return OpCaret, true
	case "~":
		return OpTilde, true
	}
	return "", false
}

// Match reports whether the version satisfies the constraint: any clause
// may hold, and a clause holds when every comparator in it holds.
func (c *Constraint) Match(v Version) bool {
	for _, clause := range c.clauses {
		if clause.match(v) {
			return true
		}
	}
	return false
}

func (cl andClause) match(v Version) bool {
	for _, cmp := range cl {
		if !cmp.match(v) {
			return false
		}
	}
	return true
}

// match evaluates a single comparator. Range operators use interval
// membership; the rest translate directly into an ordering predicate.
func (cmp comparator) match(v Version) bool {
	switch cmp.op {
	case OpCaret, OpTilde:
		return cmp.rng.contains(v)
	}
	c := Compare(v, cmp.ver)
	switch cmp.op {
	case OpEqual:
		return c == 0
	case OpNotEqual:
		return c != 0
	case OpLess:
		return c < 0
	case OpLessEqual:
		return c <= 0
	case OpGreater:
		return c > 0
	case OpGreaterEqual:
		return c >= 0
	}
	return false
}

// Satisfies reports whether the version satisfies the constraint
// expression. It is shorthand for ParseConstraint followed by Match.
func Satisfies(v Version, expr string) (bool, error) {
	c, err := ParseConstraint(expr)
	if err != nil {
		return false, err
	}
	return c.Match(v), nil
}
