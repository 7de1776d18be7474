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

// Package diffcheck compares two texts line by line and derives statistics and several views of
// the changes, like a text diff checker.
//
// The main function is [Compare], which runs the full pipeline on two raw texts: the texts are
// split into lines and normalized ([Preprocess]), the lines are aligned ([Align]), and the result
// is summarized ([Stats]) and projected into a unified ([Unified]), side-by-side ([Split]) and
// inline ([Inline]) view. Each step is also available on its own.
//
// The alignment is a fast heuristic, not a minimal diff: after a mismatch, it looks ahead at most
// five lines to find where the texts agree again, preferring insertions over deletions, and
// otherwise treats the mismatching lines as a replacement. The runtime is linear in the size of
// the inputs.
//
// Everything in this package is a pure function of its inputs; it's safe to call from multiple
// goroutines. Package [znkr.io/diffcheck/live] recomputes reports for interactive use and package
// [znkr.io/diffcheck/render] renders them for terminals.
//
// [znkr.io/diffcheck/live]: https://pkg.go.dev/znkr.io/diffcheck/live
// [znkr.io/diffcheck/render]: https://pkg.go.dev/znkr.io/diffcheck/render
package diffcheck
