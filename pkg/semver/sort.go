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

import "sort"

// Sort returns the version strings ordered by precedence, lowest first.
// The sort is stable: precedence-equal entries (for example versions
// differing only in build metadata) keep their input order. The original
// strings are preserved, not canonicalized.
//
// Malformed entries are not silently dropped; the first parse failure
// fails the whole call with the underlying *ParseError. Callers that
// want to filter non-semver input (such as arbitrary git tags) must do
// so before calling Sort.
func Sort(versions []string) ([]string, error) {
	type entry struct {
		str string
		ver Version
	}
	entries := make([]entry, len(versions))
	for i, s := range versions {
		v, err := Parse(s)
		if err != nil {
			return nil, err
		}
		entries[i] = entry{str: s, ver: v}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return Compare(entries[i].ver, entries[j].ver) < 0
	})
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.str
	}
	return out, nil
}
