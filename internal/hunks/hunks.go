// Copyright 2025 Florian Zenker (flo@znkr.io)
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

// Package hunks groups changes in a sequence of records into hunks with surrounding context.
package hunks

// Span is a half-open range [Start, End) of record indices.
type Span struct {
	Start, End int
}

// Find returns the spans of all hunks in a sequence of n records. changed reports if the i-th
// record is a change. Each hunk contains up to context unchanged records before and after its
// changes. Hunks whose context windows overlap or touch are merged.
//
// If no record is a change, the result is empty.
func Find(n int, changed func(i int) bool, context int) []Span {
	context = max(0, context)
	var spans []Span
	for i := 0; i < n; i++ {
		if !changed(i) {
			continue
		}
		start := max(0, i-context)

		// Extend the run of changes before computing the trailing context.
		end := i + 1
		for end < n && changed(end) {
			end++
		}
		i = end - 1
		end = min(n, end+context)

		// Check if the context windows for this new hunk and the previous hunk overlap. If they do,
		// continue filling that hunk.
		if len(spans) > 0 && spans[len(spans)-1].End >= start {
			spans[len(spans)-1].End = end
			continue
		}
		spans = append(spans, Span{start, end})
	}
	return spans
}
