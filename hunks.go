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

package diffcheck

import "znkr.io/diffcheck/internal/hunks"

// Hunk describes a sequence of consecutive records with changes and surrounding context.
//
// The positions follow the conventions of unified diff hunk headers: OriginalStart is the 1-based
// line number of the first original line in the hunk and OriginalLines is the number of original
// lines in the hunk. If the hunk has no original lines, OriginalStart is the number of the line
// that follows the hunk. The same is true for the modified positions.
type Hunk struct {
	OriginalStart, OriginalLines int
	ModifiedStart, ModifiedLines int
	Records                      Result
}

// Hunks groups the changes in result into hunks. Each hunk includes up to context unchanged
// records before and after its changes; hunks that would overlap are merged.
//
// If result has no changes, the output has length zero.
func Hunks(result Result, context int) []Hunk {
	spans := hunks.Find(len(result), func(i int) bool { return result[i].kind != Unchanged }, context)
	if len(spans) == 0 {
		return nil
	}
	out := make([]Hunk, 0, len(spans))
	s, t := 0, 0 // number of original and modified lines before the current record
	pos := 0
	for _, span := range spans {
		for ; pos < span.Start; pos++ {
			s, t = advance(result[pos], s, t)
		}
		h := Hunk{
			OriginalStart: s + 1,
			ModifiedStart: t + 1,
			Records:       result[span.Start:span.End:span.End],
		}
		for ; pos < span.End; pos++ {
			s0, t0 := s, t
			s, t = advance(result[pos], s, t)
			h.OriginalLines += s - s0
			h.ModifiedLines += t - t0
		}
		out = append(out, h)
	}
	return out
}

func advance(r Record, s, t int) (int, int) {
	switch r.kind {
	case Unchanged:
		return s + 1, t + 1
	case Removed:
		return s + 1, t
	default:
		return s, t + 1
	}
}
