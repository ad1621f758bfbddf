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
	"strconv"
	"strings"
)

// Identifier is a single dot-separated segment of a pre-release or build
// suffix. An identifier made entirely of ASCII digits is numeric and
// compares by value; all other identifiers compare by ASCII order.
// The original text is preserved for recomposition.
type Identifier struct {
	str     string
	num     uint64
	numeric bool
}

// IsNumeric reports whether the identifier compares as a number.
func (id Identifier) IsNumeric() bool {
	return id.numeric
}

// Num returns the numeric value of the identifier, or 0 if the
// identifier is not numeric.
func (id Identifier) Num() uint64 {
	return id.num
}

// String returns the identifier text as it appeared in the input.
func (id Identifier) String() string {
	return id.str
}

// Version represents a parsed semantic version as defined by semver.org
// Version 2.0.0. A Version is an immutable value: it is created by Parse
// (or internally when expanding caret/tilde ranges) and never modified.
// Two versions with the same core triplet and pre-release identifiers
// are precedence-equal regardless of build metadata.
type Version struct {
	major, minor, patch uint64

	pre   []Identifier
	build []Identifier
}

// Major returns the major version number.
func (v Version) Major() uint64 { return v.major }

// Minor returns the minor version number.
func (v Version) Minor() uint64 { return v.minor }

// Patch returns the patch version number.
func (v Version) Patch() uint64 { return v.patch }

// Prerelease returns a copy of the pre-release identifiers, in order.
// The result is empty for release versions.
func (v Version) Prerelease() []Identifier {
	return append([]Identifier(nil), v.pre...)
}

// Build returns a copy of the build metadata identifiers, in order.
// Build metadata never affects precedence.
func (v Version) Build() []Identifier {
	return append([]Identifier(nil), v.build...)
}

// IsPrerelease reports whether the version carries a pre-release suffix.
func (v Version) IsPrerelease() bool {
	return len(v.pre) > 0
}

// IsBuild reports whether the version carries build metadata.
func (v Version) IsBuild() bool {
	return len(v.build) > 0
}

// String recomposes the canonical string representation of the version:
// MAJOR.MINOR.PATCH, followed by "-" and the dot-joined pre-release
// identifiers if present, then "+" and the dot-joined build identifiers
// if present. For any version produced by Parse, the result equals the
// original input.
func (v Version) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d.%d.%d", v.major, v.minor, v.patch)
	for i, id := range v.pre {
		if i == 0 {
			b.WriteByte('-')
		} else {
			b.WriteByte('.')
		}
		b.WriteString(id.str)
	}
	for i, id := range v.build {
		if i == 0 {
			b.WriteByte('+')
		} else {
			b.WriteByte('.')
		}
		b.WriteString(id.str)
	}
	return b.String()
}

// Parse parses a version string into a Version. The grammar is anchored:
//
//	MAJOR "." MINOR "." PATCH ["-" PRERELEASE] ["+" BUILD]
//
// where the core components are decimal numbers without leading zeros
// and PRERELEASE and BUILD are dot-separated lists of identifiers from
// the set [0-9A-Za-z-]. Empty identifiers are rejected, so inputs like
// "2.2.1-.1" fail with CodeEmptyIdentifier rather than parsing into a
// value that cannot be recomposed. On failure the returned error is a
// *ParseError carrying the error code and input position.
func Parse(input string) (Version, error) {
	p := parser{input: input}
	return p.version()
}

// MustParse parses a version string and panics if parsing fails.
// Only use this for hardcoded strings or in tests. For user input or
// runtime data, always use Parse and handle errors explicitly.
func MustParse(input string) Version {
	v, err := Parse(input)
	if err != nil {
		panic(fmt.Sprintf("MustParse: %v", err))
	}
	return v
}

// parser is a recursive-descent parser over the input bytes. Each
// grammar rule (core component, identifier list, identifier) is a
// separate method returning a typed result.
type parser struct {
	input string
	pos   int
}

// version parses the whole anchored grammar.
func (p *parser) version() (Version, error) {
	var v Version
	var err error
	if v.major, err = p.component("major"); err != nil {
		return Version{}, err
	}
	if err = p.expectDot("minor"); err != nil {
		return Version{}, err
	}
	if v.minor, err = p.component("minor"); err != nil {
		return Version{}, err
	}
	if err = p.expectDot("patch"); err != nil {
		return Version{}, err
	}
	if v.patch, err = p.component("patch"); err != nil {
		return Version{}, err
	}
	if c, ok := p.peek(); ok && c == '.' {
		return Version{}, p.errorf(CodeTooManyComponents, "more than 3 numeric components")
	}
	if p.eat('-') {
		if v.pre, err = p.identifiers("pre-release"); err != nil {
			return Version{}, err
		}
	}
	if p.eat('+') {
		if v.build, err = p.identifiers("build"); err != nil {
			return Version{}, err
		}
	}
	if c, ok := p.peek(); ok {
		return Version{}, p.errorf(CodeInvalidCharacter, "invalid character %q", c)
	}
	return v, nil
}

// component parses one numeric core component and enforces the
// leading-zero rule.
func (p *parser) component(name string) (uint64, error) {
	start := p.pos
	for p.pos < len(p.input) && isDigit(p.input[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		if c, ok := p.peek(); ok && c != '.' && c != '-' && c != '+' {
			return 0, p.errorf(CodeInvalidCharacter, "invalid character %q in %s component", c, name)
		}
		return 0, p.errorf(CodeInvalidFormat, "empty %s component", name)
	}
	text := p.input[start:p.pos]
	if len(text) > 1 && text[0] == '0' {
		return 0, p.errorAt(start, CodeLeadingZero, "%s component has a leading zero", name)
	}
	n, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return 0, p.errorAt(start, CodeInvalidFormat, "%s component out of range", name)
	}
	return n, nil
}

// expectDot consumes the dot separating core components. A missing dot
// at end of input means the numeric core was truncated.
func (p *parser) expectDot(next string) error {
	if p.eat('.') {
		return nil
	}
	if c, ok := p.peek(); ok {
		return p.errorf(CodeInvalidCharacter, "invalid character %q, expected %q before %s component", c, '.', next)
	}
	return p.errorf(CodeInvalidFormat, "missing %s component", next)
}

// identifiers parses a dot-separated identifier list after "-" or "+".
// The kind is "pre-release" or "build", used for error messages and to
// select the leading-zero rule (build identifiers are exempt).
func (p *parser) identifiers(kind string) ([]Identifier, error) {
	var ids []Identifier
	for {
		start := p.pos
		for p.pos < len(p.input) && isIdentChar(p.input[p.pos]) {
			p.pos++
		}
		if p.pos == start {
			return nil, p.errorf(CodeEmptyIdentifier, "empty %s identifier", kind)
		}
		id, err := p.identifier(p.input[start:p.pos], start, kind == "build")
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
		if !p.eat('.') {
			return ids, nil
		}
	}
}

// identifier classifies a single identifier as numeric or alphanumeric.
func (p *parser) identifier(text string, start int, build bool) (Identifier, error) {
	if !allDigits(text) {
		return Identifier{str: text}, nil
	}
	if !build && len(text) > 1 && text[0] == '0' {
		return Identifier{}, p.errorAt(start, CodeLeadingZero, "numeric pre-release identifier has a leading zero")
	}
	n, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		if build {
			// Build metadata never participates in ordering, so an
			// out-of-range digit run stays textual.
			return Identifier{str: text}, nil
		}
		return Identifier{}, p.errorAt(start, CodeInvalidFormat, "numeric pre-release identifier out of range")
	}
	return Identifier{str: text, num: n, numeric: true}, nil
}

// peek returns the next byte without advancing.
func (p *parser) peek() (byte, bool) {
	if p.pos >= len(p.input) {
		return 0, false
	}
	return p.input[p.pos], true
}

// eat consumes the next byte if it equals c.
func (p *parser) eat(c byte) bool {
	if p.pos < len(p.input) && p.input[p.pos] == c {
		p.pos++
		return true
	}
	return false
}

func (p *parser) errorf(code Code, format string, args ...any) *ParseError {
	return p.errorAt(p.pos, code, format, args...)
}

func (p *parser) errorAt(pos int, code Code, format string, args ...any) *ParseError {
	return &ParseError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Pos:     pos,
		Input:   p.input,
	}
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isIdentChar(c byte) bool {
	return isDigit(c) || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '-'
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}
