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

import "znkr.io/diffcheck/internal/lines"

// Statistics summarizes a [Result].
type Statistics struct {
	AddedLines     int `json:"addedLines" yaml:"addedLines"`
	RemovedLines   int `json:"removedLines" yaml:"removedLines"`
	UnchangedLines int `json:"unchangedLines" yaml:"unchangedLines"`

	// ModifiedLines is the number of lines touched by the change: AddedLines + RemovedLines.
	ModifiedLines int `json:"modifiedLines" yaml:"modifiedLines"`

	// Character counts of added and removed lines, measured in UTF-16 code units.
	AddedChars   int `json:"addedChars" yaml:"addedChars"`
	RemovedChars int `json:"removedChars" yaml:"removedChars"`

	// TotalLines is the number of records in the result.
	TotalLines int `json:"totalLines" yaml:"totalLines"`

	// Similarity is a percentage in [0, 100].
	Similarity float64 `json:"similarity" yaml:"similarity"`
}

// Stats computes statistics for result. The original and modified text are the raw inputs that
// result was computed from.
//
// Similarity is a coarse estimate based on the difference between added and removed characters
// relative to the length of the longer text:
//
//	100 - |AddedChars - RemovedChars| / max(len(original), len(modified)) * 100
//
// clamped at 0, or 100 if both texts are empty. It is not an edit distance: a text where every line
// was replaced by a line of the same length is 100% similar.
func Stats(result Result, original, modified string) Statistics {
	var s Statistics
	for _, r := range result {
		switch r.kind {
		case Added:
			s.AddedLines++
			s.AddedChars += lines.UTF16Len(r.content)
		case Removed:
			s.RemovedLines++
			s.RemovedChars += lines.UTF16Len(r.content)
		case Unchanged:
			s.UnchangedLines++
		}
	}
	s.ModifiedLines = s.AddedLines + s.RemovedLines
	s.TotalLines = len(result)
	s.Similarity = similarity(s.AddedChars, s.RemovedChars, max(lines.UTF16Len(original), lines.UTF16Len(modified)))
	return s
}

func similarity(added, removed, total int) float64 {
	if total == 0 {
		return 100
	}
	delta := added - removed
	if delta < 0 {
		delta = -delta
	}
	return max(0, 100-float64(delta)/float64(total)*100)
}
