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

package render_test

import (
	"os"

	"znkr.io/diffcheck"
	"znkr.io/diffcheck/render"
)

func ExampleUnified() {
	x := `this paragraph
is not
changed and
barely long
enough to
create a
new hunk`

	y := `this paragraph
is not
changed and
barely long
enough
to create a
new hunk`

	r := diffcheck.Compare(x, y)
	render.Unified(os.Stdout, r.Result, render.Context(1))
	// Output:
	// @@ -4,4 +4,4 @@
	// 4 4  barely long
	// 5   -enough to
	//   5 +enough
	// 6   -create a
	//   6 +to create a
	// 7 7  new hunk
}

func ExampleSplit() {
	r := diffcheck.Compare("a\nb\nc", "a\nB\nc\nd")
	render.Split(os.Stdout, r.Result, render.Width(3))
	// Output:
	// 1  a   | 1  a
	// 2 -b   | 2 +B
	// 3  c   | 3  c
	//        | 4 +d
}

func ExampleSummary() {
	r := diffcheck.Compare("foo\nbar", "foo\nbaz\nqu")
	render.Summary(os.Stdout, r.Statistics)
	// Output:
	// 2 added, 1 removed, 1 unchanged, 80.0% similar
}
