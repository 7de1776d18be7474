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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHunks(t *testing.T) {
	tests := []struct {
		name    string
		a, b    []string
		context int
		want    []Hunk
	}{
		{
			name:    "identical",
			a:       []string{"foo", "bar"},
			b:       []string{"foo", "bar"},
			context: 3,
			want:    nil,
		},
		{
			name:    "a-empty",
			b:       []string{"foo", "bar"},
			context: 3,
			want: []Hunk{
				{
					OriginalStart: 1, OriginalLines: 0,
					ModifiedStart: 1, ModifiedLines: 2,
					Records: Result{AddedRecord("foo", 1), AddedRecord("bar", 2)},
				},
			},
		},
		{
			name:    "replacement",
			a:       []string{"line1", "line2", "line3"},
			b:       []string{"line1", "lineTWO", "line3"},
			context: 3,
			want: []Hunk{
				{
					OriginalStart: 1, OriginalLines: 3,
					ModifiedStart: 1, ModifiedLines: 3,
					Records: fallback,
				},
			},
		},
		{
			name:    "two-hunks",
			a:       []string{"a", "b", "c", "d", "e", "f", "g", "h"},
			b:       []string{"a", "c", "d", "e", "f", "g", "h", "i"},
			context: 1,
			want: []Hunk{
				{
					OriginalStart: 1, OriginalLines: 3,
					ModifiedStart: 1, ModifiedLines: 2,
					Records: Result{
						UnchangedRecord("a", 1, 1),
						RemovedRecord("b", 2),
						UnchangedRecord("c", 3, 2),
					},
				},
				{
					OriginalStart: 8, OriginalLines: 1,
					ModifiedStart: 7, ModifiedLines: 2,
					Records: Result{
						UnchangedRecord("h", 8, 7),
						AddedRecord("i", 8),
					},
				},
			},
		},
		{
			name:    "pure-insertion-without-context",
			a:       []string{"a", "b"},
			b:       []string{"a", "x", "b"},
			context: 0,
			want: []Hunk{
				{
					OriginalStart: 2, OriginalLines: 0,
					ModifiedStart: 2, ModifiedLines: 1,
					Records: Result{AddedRecord("x", 2)},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hunks(Align(tt.a, tt.b), tt.context)
			if diff := cmp.Diff(tt.want, got, allowUnexported); diff != "" {
				t.Errorf("Hunks(...) result is different [-want,+got]:\n%s", diff)
			}
		})
	}
}
