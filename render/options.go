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

package render

import (
	"znkr.io/diffcheck/internal/config"
	"znkr.io/diffcheck/render/color"
)

// DefaultWidth is the default width of a column in the split view.
const DefaultWidth = 40

type settings struct {
	context int // -1 renders every record
	width   int
	colors  config.ColorConfig
}

var defaults = settings{
	context: -1,
	width:   DefaultWidth,
}

// Option configures rendering.
type Option func(*settings)

func fromOptions(opts []Option) settings {
	s := defaults
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Context limits the unified view to hunks of changes with n unchanged lines before and after
// each change. Every hunk starts with a "@@ -a,b +c,d @@" header. A negative n renders every line,
// which is the default.
func Context(n int) Option {
	return func(s *settings) {
		s.context = n
	}
}

// Width sets the display width of the content in each column of the split view. Longer lines are
// truncated. The default is [DefaultWidth].
func Width(n int) Option {
	return func(s *settings) {
		s.width = max(1, n)
	}
}

// Colors enables ANSI coloring with custom colors.
func Colors(opts ...color.Option) Option {
	return func(s *settings) {
		for _, opt := range opts {
			opt(&s.colors)
		}
	}
}

// TerminalColors enables ANSI coloring with colors that work well on most terminals: removed lines
// in red, added lines in green and hunk headers in cyan.
func TerminalColors() Option {
	return Colors(
		color.HunkHeaders(36),
		color.Removed(31),
		color.Added(32),
	)
}
