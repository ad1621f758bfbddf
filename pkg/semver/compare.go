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

import "strings"

// Compare returns -1 if a precedes b, +1 if a follows b, and 0 if they
// are precedence-equal. The ordering is defined by semver.org Version
// 2.0.0 §11:
//
//   - major, minor and patch compare numerically, first difference wins;
//   - a release sorts after an otherwise equal pre-release;
//   - pre-release identifiers compare element-wise: numeric by value,
//     alphanumeric by ASCII order, numeric below alphanumeric, and a
//     longer list wins when the shared prefix is equal;
//   - build metadata is ignored entirely.
//
// Compare is a strict total order, which makes it usable as a sort key.
func Compare(a, b Version) int {
	if c := sgnu64(a.major, b.major); c != 0 {
		return c
	}
	if c := sgnu64(a.minor, b.minor); c != 0 {
		return c
	}
	if c := sgnu64(a.patch, b.patch); c != 0 {
		return c
	}

	// Core triplets match. A version with no pre-release dominates any
	// pre-release at the same triplet.
	switch {
	case len(a.pre) == 0 && len(b.pre) == 0:
		return 0
	case len(a.pre) == 0:
		return 1
	case len(b.pre) == 0:
		return -1
	}
	return comparePrerelease(a.pre, b.pre)
}

// Compare compares v against o. See the Compare func for the semantics.
func (v Version) Compare(o Version) int {
	return Compare(v, o)
}

// comparePrerelease compares two non-empty pre-release identifier lists.
// Longer lists dominate shorter ones when the shared prefix is equal.
func comparePrerelease(a, b []Identifier) int {
	for i, ida := range a {
		if i >= len(b) {
			return 1
		}
		if c := compareIdentifier(ida, b[i]); c != 0 {
			return c
		}
	}
	if len(a) < len(b) {
		return -1
	}
	return 0
}

// compareIdentifier compares two identifiers at the same position.
// Numbers sort below non-numbers.
func compareIdentifier(a, b Identifier) int {
	switch {
	case a.numeric && b.numeric:
		return sgnu64(a.num, b.num)
	case a.numeric:
		return -1
	case b.numeric:
		return 1
	}
	return strings.Compare(a.str, b.str)
}

// sgnu64 returns the signum of (unsigned) a-b.
func sgnu64(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
