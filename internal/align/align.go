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

// Package align implements the two-cursor, bounded-lookahead line alignment.
//
// The algorithm walks both inputs with one cursor each. Equal elements are matched. On a mismatch,
// it first looks ahead at most window elements in y for the current element of x (the elements in
// between are insertions), then at most window elements in x for the current element of y (the
// elements in between are deletions). If neither lookahead finds a match, the current elements are
// treated as a one-for-one replacement: a deletion followed by an insertion.
//
// This is not a minimal diff. Every iteration advances at least one cursor, so the runtime is
// O((N+M)·W) for N = len(x), M = len(y) and W = window.
package align

import "fmt"

// Op describes the operation of a single alignment step.
type Op uint8

const (
	Match  Op = iota // x[X] and y[Y] are equal
	Delete           // x[X] is not in y
	Insert           // y[Y] is not in x
)

func (op Op) String() string {
	switch op {
	case Match:
		return "match"
	case Delete:
		return "delete"
	case Insert:
		return "insert"
	default:
		return fmt.Sprint(uint8(op))
	}
}

// Step is a single alignment step. X is -1 for Insert and Y is -1 for Delete.
type Step struct {
	Op   Op
	X, Y int
}

// Align aligns x and y and returns one step per element of x and y, except that matching elements
// share a step. Steps are ordered by increasing X and Y.
func Align[T comparable](x, y []T, window int) []Step {
	n, m := len(x), len(y)
	steps := make([]Step, 0, max(n, m))
	s, t := 0, 0 // current index into x, y
	for s < n || t < m {
		switch {
		case s >= n:
			for ; t < m; t++ {
				steps = append(steps, Step{Insert, -1, t})
			}
		case t >= m:
			for ; s < n; s++ {
				steps = append(steps, Step{Delete, s, -1})
			}
		case x[s] == y[t]:
			steps = append(steps, Step{Match, s, t})
			s++
			t++
		default:
			// Insertions are tried before deletions. Reordering these changes the output.
			if k := lookahead(y[t+1:], x[s], window); k > 0 {
				for range k {
					steps = append(steps, Step{Insert, -1, t})
					t++
				}
			} else if k := lookahead(x[s+1:], y[t], window); k > 0 {
				for range k {
					steps = append(steps, Step{Delete, s, -1})
					s++
				}
			} else {
				steps = append(steps, Step{Delete, s, -1}, Step{Insert, -1, t})
				s++
				t++
			}
		}
	}
	return steps
}

// lookahead returns the 1-based offset of the first element in rest[:window] that is equal to v
// or 0 if there is none.
func lookahead[T comparable](rest []T, v T, window int) int {
	rest = rest[:min(len(rest), window)]
	for i, e := range rest {
		if e == v {
			return i + 1
		}
	}
	return 0
}
