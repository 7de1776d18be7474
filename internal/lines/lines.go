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

// Package lines splits and normalizes text into the lines that are compared by the aligner.
package lines

import (
	"strings"
	"unicode/utf8"

	"znkr.io/diffcheck/internal/config"
)

// Split splits s on '\n'. The newline characters are not part of the lines. Every string has at
// least one line: the empty string yields a single empty line and a trailing newline yields a
// trailing empty line.
func Split(s string) []string {
	n := strings.Count(s, "\n") + 1
	a := make([]string, n)
	for i := range n - 1 {
		m := strings.IndexByte(s, '\n')
		a[i] = s[:m]
		s = s[m+1:]
	}
	a[n-1] = s
	return a
}

// Normalize applies the normalizations selected in cfg to every line in place and returns the
// slice. Internal runs of whitespace are not collapsed.
func Normalize(lines []string, cfg config.Config) []string {
	if !cfg.IgnoreWhitespace && !cfg.IgnoreCase {
		return lines
	}
	for i, line := range lines {
		if cfg.IgnoreWhitespace {
			line = strings.TrimSpace(line)
		}
		if cfg.IgnoreCase {
			line = strings.ToLower(line)
		}
		lines[i] = line
	}
	return lines
}

// Prepare splits and normalizes both inputs.
func Prepare(x, y string, cfg config.Config) (xlines, ylines []string) {
	return Normalize(Split(x), cfg), Normalize(Split(y), cfg)
}

// UTF16Len returns the length of s in UTF-16 code units. Invalid UTF-8 bytes count as one unit
// each.
func UTF16Len(s string) int {
	n := 0
	for len(s) > 0 {
		if c := s[0]; c < utf8.RuneSelf {
			n++
			s = s[1:]
			continue
		}
		r, size := utf8.DecodeRuneInString(s)
		if r >= 0x10000 {
			n += 2
		} else {
			n++
		}
		s = s[size:]
	}
	return n
}
