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
	"strconv"

	"gopkg.in/yaml.v3"
)

// Kind describes how a line changed.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Kind
type Kind int

const (
	Unchanged Kind = iota // The line is in both texts
	Removed               // The line is only in the original text
	Added                 // The line is only in the modified text
)

// MarshalText implements [encoding.TextMarshaler]. The text form is the lowercase name of the
// kind, e.g. "added".
func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case Unchanged:
		return []byte("unchanged"), nil
	case Removed:
		return []byte("removed"), nil
	case Added:
		return []byte("added"), nil
	default:
		return nil, fmt.Errorf("invalid kind %v", k)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "unchanged":
		*k = Unchanged
	case "removed":
		*k = Removed
	case "added":
		*k = Added
	default:
		return fmt.Errorf("invalid kind %q", text)
	}
	return nil
}

// Record describes a single line of the comparison.
//
//   - For Unchanged, the line has a line number in both texts.
//   - For Removed, the line only has a line number in the original text.
//   - For Added, the line only has a line number in the modified text.
//
// Line numbers start at 1. Records can only be created with [UnchangedRecord], [RemovedRecord]
// and [AddedRecord], the zero value is not a valid record.
type Record struct {
	kind     Kind
	content  string
	original int // 0 if the line is not in the original text
	modified int // 0 if the line is not in the modified text
}

// UnchangedRecord returns a record for a line that is in both texts. It panics if a line number is
// less than 1.
func UnchangedRecord(content string, original, modified int) Record {
	return mustRecord(Unchanged, content, original, modified)
}

// RemovedRecord returns a record for a line that is only in the original text. It panics if the
// line number is less than 1.
func RemovedRecord(content string, original int) Record {
	return mustRecord(Removed, content, original, 0)
}

// AddedRecord returns a record for a line that is only in the modified text. It panics if the
// line number is less than 1.
func AddedRecord(content string, modified int) Record {
	return mustRecord(Added, content, 0, modified)
}

func mustRecord(kind Kind, content string, original, modified int) Record {
	r, err := newRecord(kind, content, original, modified)
	if err != nil {
		panic(err.Error())
	}
	return r
}

func newRecord(kind Kind, content string, original, modified int) (Record, error) {
	switch kind {
	case Unchanged:
		if original < 1 || modified < 1 {
			return Record{}, fmt.Errorf("unchanged record needs both line numbers, got %d and %d", original, modified)
		}
	case Removed:
		if original < 1 || modified != 0 {
			return Record{}, fmt.Errorf("removed record needs only an original line number, got %d and %d", original, modified)
		}
	case Added:
		if original != 0 || modified < 1 {
			return Record{}, fmt.Errorf("added record needs only a modified line number, got %d and %d", original, modified)
		}
	default:
		return Record{}, fmt.Errorf("invalid kind %v", kind)
	}
	return Record{kind, content, original, modified}, nil
}

// Kind returns how the line changed.
func (r Record) Kind() Kind { return r.kind }

// Content returns the line without the newline character.
func (r Record) Content() string { return r.content }

// OriginalLine returns the line number in the original text and whether the line is part of the
// original text.
func (r Record) OriginalLine() (int, bool) { return r.original, r.original > 0 }

// ModifiedLine returns the line number in the modified text and whether the line is part of the
// modified text.
func (r Record) ModifiedLine() (int, bool) { return r.modified, r.modified > 0 }

func (r Record) String() string {
	switch r.kind {
	case Unchanged:
		return fmt.Sprintf("%v(%s, %d, %d)", r.kind, strconv.Quote(r.content), r.original, r.modified)
	case Removed:
		return fmt.Sprintf("%v(%s, %d)", r.kind, strconv.Quote(r.content), r.original)
	case Added:
		return fmt.Sprintf("%v(%s, %d)", r.kind, strconv.Quote(r.content), r.modified)
	default:
		return "Record(invalid)"
	}
}

// recordData is the exported form of a record.
type recordData struct {
	Type     Kind   `json:"type" yaml:"type"`
	Content  string `json:"content" yaml:"content"`
	Original int    `json:"originalLineNumber,omitempty" yaml:"originalLineNumber,omitempty"`
	Modified int    `json:"modifiedLineNumber,omitempty" yaml:"modifiedLineNumber,omitempty"`
}

func (r Record) data() recordData {
	return recordData{r.kind, r.content, r.original, r.modified}
}

// MarshalJSON implements [json.Marshaler]. Missing line numbers are omitted.
func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.data())
}

// UnmarshalJSON implements [json.Unmarshaler]. It returns an error if the line numbers don't
// match the kind of the record.
func (r *Record) UnmarshalJSON(b []byte) error {
	var d recordData
	if err := json.Unmarshal(b, &d); err != nil {
		return err
	}
	rec, err := newRecord(d.Type, d.Content, d.Original, d.Modified)
	if err != nil {
		return fmt.Errorf("invalid record: %w", err)
	}
	*r = rec
	return nil
}

// MarshalYAML implements [yaml.Marshaler].
func (r Record) MarshalYAML() (any, error) {
	return r.data(), nil
}

// UnmarshalYAML implements [yaml.Unmarshaler]. It returns an error if the line numbers don't
// match the kind of the record.
func (r *Record) UnmarshalYAML(value *yaml.Node) error {
	var d recordData
	if err := value.Decode(&d); err != nil {
		return err
	}
	rec, err := newRecord(d.Type, d.Content, d.Original, d.Modified)
	if err != nil {
		return fmt.Errorf("invalid record: %w", err)
	}
	*r = rec
	return nil
}

// Result is the ordered sequence of records produced by [Align].
//
// Every line of the original text appears exactly once, either as Removed or as Unchanged, in
// increasing order of line numbers. The same is true for every line of the modified text and
// Added or Unchanged.
type Result []Record
