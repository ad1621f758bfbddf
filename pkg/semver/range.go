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

import "math"

// interval is a version range [min, max) synthesized from a caret or
// tilde comparator. When bounded is false there is no upper limit and
// the range is [min, inf).
type interval struct {
	min     Version
	max     Version
	bounded bool
}

// CaretBounds expands a caret comparator anchored at v into the
// equivalent half-open range [lower, upper): compatible changes are
// allowed without altering the leftmost non-zero component.
//
//	^1.2.3 -> [1.2.3, 2.0.0)
//	^0.2.3 -> [0.2.3, 0.3.0)
//	^0.0.3 -> [0.0.3, 0.0.4)
//
// Any pre-release on v is kept on the lower bound, so ^1.0.0-beta.2
// admits 1.0.0-beta.10.
//
// A component at the uint64 maximum cannot be incremented, so the cut
// moves to the next larger component: ^0.0.MAX ends at 0.1.0 and
// ^0.MAX.3 ends at 1.0.0, which bound exactly the same version sets.
// Only a maximal major has no representable upper bound at all; then
// bounded is false, upper is the zero Version (which callers must
// ignore), and the range is open above so the anchor still satisfies
// it.
func CaretBounds(v Version) (lower, upper Version, bounded bool) {
	switch {
	case v.major > 0:
		if v.major == math.MaxUint64 {
			return v, Version{}, false
		}
		upper = Version{major: v.major + 1}
	case v.minor > 0:
		if v.minor == math.MaxUint64 {
			upper = Version{major: 1}
		} else {
			upper = Version{minor: v.minor + 1}
		}
	default:
		if v.patch == math.MaxUint64 {
			upper = Version{minor: 1}
		} else {
			upper = Version{patch: v.patch + 1}
		}
	}
	return v, upper, true
}

// TildeBounds expands a tilde comparator anchored at v into the
// equivalent half-open range [lower, upper): patch-level updates only,
// within v's minor line.
//
//	~1.2.3 -> [1.2.3, 1.3.0)
//
// As with CaretBounds, a pre-release on v stays on the lower bound. A
// maximal minor moves the cut to the next major (~1.MAX.3 ends at
// 2.0.0, bounding the same patch line); when the major is maximal too,
// the range is unbounded above (bounded false, upper zero).
func TildeBounds(v Version) (lower, upper Version, bounded bool) {
	if v.minor == math.MaxUint64 {
		if v.major == math.MaxUint64 {
			return v, Version{}, false
		}
		return v, Version{major: v.major + 1}, true
	}
	return v, Version{major: v.major, minor: v.minor + 1}, true
}

func caretInterval(v Version) interval {
	lower, upper, bounded := CaretBounds(v)
	return interval{min: lower, max: upper, bounded: bounded}
}

func tildeInterval(v Version) interval {
	lower, upper, bounded := TildeBounds(v)
	return interval{min: lower, max: upper, bounded: bounded}
}

// contains reports whether v lies within the range: min <= v, and
// v < max when the range is bounded above, with the refinement that a
// pre-release version only matches when its core triplet equals the
// lower bound's core triplet. Pre-releases do not leak into ranges
// anchored at a different MAJOR.MINOR.PATCH.
func (iv interval) contains(v Version) bool {
	if Compare(v, iv.min) < 0 {
		return false
	}
	if iv.bounded && Compare(v, iv.max) >= 0 {
		return false
	}
	if v.IsPrerelease() && !sameCore(v, iv.min) {
		return false
	}
	return true
}

// sameCore reports whether the two versions share a core triplet.
func sameCore(a, b Version) bool {
	return a.major == b.major && a.minor == b.minor && a.patch == b.patch
}
