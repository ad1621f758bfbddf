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
	"errors"
	"testing"
)

// FuzzParse performs fuzz testing on Parse to find edge cases
func FuzzParse(f *testing.F) {
	// Seed corpus with valid and edge case inputs
	f.Add("1.2.3")
	f.Add("0.0.0")
	f.Add("1.0.0-alpha")
	f.Add("1.0.0-alpha.1")
	f.Add("1.0.0-x.7.z.92")
	f.Add("1.0.0+20130313144700")
	f.Add("1.0.0-beta+exp.sha.5114f85")
	f.Add("")
	f.Add("1")
	f.Add("1.2")
	f.Add("1.2.3.4")
	f.Add("01.1.1")
	f.Add("1.2.3-0123")
	f.Add("2.2.1-.1")
	f.Add("2.2.1+.4")
	f.Add("1.2.3-")
	f.Add("1.2.3+")
	f.Add("v1.2.3")
	f.Add("1..3")
	f.Add(" 1.2.3")
	f.Add("1.2.3 ")
	f.Add("18446744073709551615.0.0")
	f.Add("18446744073709551616.0.0")

	f.Fuzz(func(t *testing.T, input string) {
		// Parse should never panic
		v, err := Parse(input)

		if err != nil {
			// Errors are always typed with a known code
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Errorf("Parse(%q) error type = %T, want *ParseError", input, err)
				return
			}
			switch pe.Code {
			case CodeInvalidFormat, CodeLeadingZero, CodeEmptyIdentifier,
				CodeInvalidCharacter, CodeTooManyComponents:
			default:
				t.Errorf("Parse(%q) returned unexpected code %s", input, pe.Code)
			}
			return
		}

		// Recompose must reproduce the accepted input exactly.
		s := v.String()
		if s != input {
			t.Errorf("recompose(%q) = %q", input, s)
		}

		// Re-parsing the recomposed string must succeed and be
		// precedence-equal.
		v2, err2 := Parse(s)
		if err2 != nil {
			t.Errorf("re-parsing %q failed: %v", s, err2)
			return
		}
		if Compare(v, v2) != 0 {
			t.Errorf("round-trip of %q is not precedence-equal", input)
		}

		// Comparison against self must be reflexive.
		if Compare(v, v) != 0 {
			t.Errorf("Compare(%q, %q) != 0", input, input)
		}
	})
}

// FuzzSatisfies checks that constraint evaluation never panics and
// always fails with a typed error.
func FuzzSatisfies(f *testing.F) {
	f.Add("1.2.3", "^1.0.0")
	f.Add("1.0.0-beta.10", "~1.0.0-beta.2")
	f.Add("1.0.0", ">=1.0.0 <2.0.0 || =3.0.0")
	f.Add("1.0.0", "")
	f.Add("1.0.0", "||")
	f.Add("1.0.0", "==1.0.0")
	f.Add("1.0.0", ">= 1.2")
	f.Add("1.0.0", "!=1.0.0 !=2.0.0")

	f.Fuzz(func(t *testing.T, version, expr string) {
		v, err := Parse(version)
		if err != nil {
			return
		}
		_, err = Satisfies(v, expr)
		if err == nil {
			return
		}
		var ce *ConstraintError
		if !errors.As(err, &ce) {
			t.Errorf("Satisfies(%q, %q) error type = %T, want *ConstraintError", version, expr, err)
		}
	})
}
