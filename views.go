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

import (
	"encoding/json"
	"fmt"
)

const (
	markerUnchanged = " "
	markerRemoved   = "-"
	markerAdded     = "+"
)

// UnifiedRow is a single row of the unified view. Line numbers are 0 if the line is not part of
// the respective text.
type UnifiedRow struct {
	Kind         Kind   `json:"type" yaml:"type"`
	Marker       string `json:"marker" yaml:"marker"`
	OriginalLine int    `json:"originalLineNumber,omitempty" yaml:"originalLineNumber,omitempty"`
	ModifiedLine int    `json:"modifiedLineNumber,omitempty" yaml:"modifiedLineNumber,omitempty"`
	Content      string `json:"content" yaml:"content"`
}

// Unified returns the unified view of result: one row per record, in order, marked with "+" for
// added lines, "-" for removed lines and " " for unchanged lines.
func Unified(result Result) []UnifiedRow {
	if len(result) == 0 {
		return nil
	}
	out := make([]UnifiedRow, len(result))
	for i, r := range result {
		var marker string
		switch r.kind {
		case Unchanged:
			marker = markerUnchanged
		case Removed:
			marker = markerRemoved
		case Added:
			marker = markerAdded
		}
		out[i] = UnifiedRow{
			Kind:         r.kind,
			Marker:       marker,
			OriginalLine: r.original,
			ModifiedLine: r.modified,
			Content:      r.content,
		}
	}
	return out
}

// Cell is one side of a [SplitRow].
type Cell struct {
	Kind    Kind   `json:"type" yaml:"type"`
	Content string `json:"content" yaml:"content"`
	Line    int    `json:"lineNumber" yaml:"lineNumber"`
}

// SplitRow is a single row of the side-by-side view. A row has an original (left) cell, a
// modified (right) cell, or both.
type SplitRow struct {
	left, right *Cell
}

// Left returns the cell for the original text, if present.
func (r SplitRow) Left() (Cell, bool) {
	if r.left == nil {
		return Cell{}, false
	}
	return *r.left, true
}

// Right returns the cell for the modified text, if present.
func (r SplitRow) Right() (Cell, bool) {
	if r.right == nil {
		return Cell{}, false
	}
	return *r.right, true
}

func (r SplitRow) String() string {
	var left, right string
	if c, ok := r.Left(); ok {
		left = fmt.Sprintf("%v(%q, %d)", c.Kind, c.Content, c.Line)
	}
	if c, ok := r.Right(); ok {
		right = fmt.Sprintf("%v(%q, %d)", c.Kind, c.Content, c.Line)
	}
	return "[" + left + " | " + right + "]"
}

// splitRowData is the exported form of a split row.
type splitRowData struct {
	Original *Cell `json:"original,omitempty" yaml:"original,omitempty"`
	Modified *Cell `json:"modified,omitempty" yaml:"modified,omitempty"`
}

// MarshalJSON implements [json.Marshaler]. A missing side is omitted.
func (r SplitRow) MarshalJSON() ([]byte, error) {
	return json.Marshal(splitRowData{r.left, r.right})
}

// MarshalYAML implements [yaml.Marshaler].
func (r SplitRow) MarshalYAML() (any, error) {
	return splitRowData{r.left, r.right}, nil
}

func cell(r Record) *Cell {
	line := r.original
	if r.kind == Added {
		line = r.modified
	}
	return &Cell{Kind: r.kind, Content: r.content, Line: line}
}

// Split returns the side-by-side view of result.
//
// Unchanged records fill both sides of a row. A Removed record that is immediately followed by an
// Added record is shown as a modified line: both records share one row. All other Removed and
// Added records get a row of their own with only the left or right side filled.
func Split(result Result) []SplitRow {
	if len(result) == 0 {
		return nil
	}
	out := make([]SplitRow, 0, len(result))
	for i := 0; i < len(result); i++ {
		r := result[i]
		switch r.kind {
		case Unchanged:
			out = append(out, SplitRow{
				left:  &Cell{Kind: Unchanged, Content: r.content, Line: r.original},
				right: &Cell{Kind: Unchanged, Content: r.content, Line: r.modified},
			})
		case Removed:
			if i+1 < len(result) && result[i+1].kind == Added {
				out = append(out, SplitRow{left: cell(r), right: cell(result[i+1])})
				i++
				continue
			}
			out = append(out, SplitRow{left: cell(r)})
		case Added:
			out = append(out, SplitRow{right: cell(r)})
		}
	}
	return out
}

// InlineBlock is a single labeled block of the inline view. Line numbers are 0 if the line is not
// part of the respective text.
type InlineBlock struct {
	Kind         Kind   `json:"type" yaml:"type"`
	Label        string `json:"label" yaml:"label"`
	Content      string `json:"content" yaml:"content"`
	OriginalLine int    `json:"originalLineNumber,omitempty" yaml:"originalLineNumber,omitempty"`
	ModifiedLine int    `json:"modifiedLineNumber,omitempty" yaml:"modifiedLineNumber,omitempty"`
}

// Inline returns the inline view of result: one block per record, in order. Adjacent records are
// never merged.
//
// The label names the kind and the line numbers of the record, e.g. "Removed 2", "Added 2" or
// "Unchanged 1:1" (original:modified).
func Inline(result Result) []InlineBlock {
	if len(result) == 0 {
		return nil
	}
	out := make([]InlineBlock, len(result))
	for i, r := range result {
		var label string
		switch r.kind {
		case Unchanged:
			label = fmt.Sprintf("%v %d:%d", r.kind, r.original, r.modified)
		case Removed:
			label = fmt.Sprintf("%v %d", r.kind, r.original)
		case Added:
			label = fmt.Sprintf("%v %d", r.kind, r.modified)
		}
		out[i] = InlineBlock{
			Kind:         r.kind,
			Label:        label,
			Content:      r.content,
			OriginalLine: r.original,
			ModifiedLine: r.modified,
		}
	}
	return out
}
