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

package lines

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"znkr.io/diffcheck/internal/config"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "empty",
			in:   "",
			want: []string{""},
		},
		{
			name: "single-line",
			in:   "foo",
			want: []string{"foo"},
		},
		{
			name: "trailing-newline",
			in:   "foo\n",
			want: []string{"foo", ""},
		},
		{
			name: "newline-only",
			in:   "\n",
			want: []string{"", ""},
		},
		{
			name: "multiple-lines",
			in:   "foo\nbar\nbaz",
			want: []string{"foo", "bar", "baz"},
		},
		{
			name: "empty-lines",
			in:   "foo\n\n\nbar",
			want: []string{"foo", "", "", "bar"},
		},
		{
			name: "carriage-return-is-content",
			in:   "foo\r\nbar",
			want: []string{"foo\r", "bar"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Split(%q) result is different [-want,+got]:\n%s", tt.in, diff)
			}
		})
	}

	t.Run("allocs", func(t *testing.T) {
		allocs := testing.AllocsPerRun(10, func() {
			_ = Split("foo\nbar\nbaz\n")
		})
		if allocs > 1 {
			t.Errorf("Split(...) allocated %v times, want 1", allocs)
		}
	})
}

func TestNormalize(t *testing.T) {
	in := []string{"  Hello  World ", "\tFOO\t", "", "bar"}
	tests := []struct {
		name string
		cfg  config.Config
		want []string
	}{
		{
			name: "default",
			cfg:  config.Default,
			want: []string{"  Hello  World ", "\tFOO\t", "", "bar"},
		},
		{
			name: "ignore-whitespace",
			cfg:  config.Config{IgnoreWhitespace: true},
			want: []string{"Hello  World", "FOO", "", "bar"},
		},
		{
			name: "ignore-case",
			cfg:  config.Config{IgnoreCase: true},
			want: []string{"  hello  world ", "\tfoo\t", "", "bar"},
		},
		{
			name: "both",
			cfg:  config.Config{IgnoreWhitespace: true, IgnoreCase: true},
			want: []string{"hello  world", "foo", "", "bar"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(append([]string(nil), in...), tt.cfg)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Normalize(...) result is different [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestPrepare(t *testing.T) {
	x, y := Prepare("Hello\n", "hello", config.Config{IgnoreCase: true})
	if diff := cmp.Diff([]string{"hello", ""}, x); diff != "" {
		t.Errorf("Prepare(...) x is different [-want,+got]:\n%s", diff)
	}
	if diff := cmp.Diff([]string{"hello"}, y); diff != "" {
		t.Errorf("Prepare(...) y is different [-want,+got]:\n%s", diff)
	}
}

func TestUTF16Len(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"hello", 5},
		{"héllo", 5},
		{"世界", 2},
		{"😀", 2},
		{"a😀b", 4},
		{"\xff", 1},
	}
	for _, tt := range tests {
		if got := UTF16Len(tt.in); got != tt.want {
			t.Errorf("UTF16Len(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
