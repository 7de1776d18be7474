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
	"znkr.io/diffcheck/internal/align"
	"znkr.io/diffcheck/internal/config"
	"znkr.io/diffcheck/internal/lines"
)

// Preprocess splits the original and the modified text on '\n' and normalizes the lines.
//
// Every text has at least one line, the empty text consists of a single empty line. A trailing
// newline produces a trailing empty line.
//
// The following options are supported: [IgnoreWhitespace], [IgnoreCase]
func Preprocess(original, modified string, opts ...Option) (a, b []string) {
	cfg := config.FromOptions(opts, config.IgnoreWhitespace|config.IgnoreCase)
	return lines.Prepare(original, modified, cfg)
}

// Align compares the lines in a and b and returns one record for every line.
//
// Equal lines at the current position are reported as Unchanged. After a mismatch, Align first
// looks at most five lines ahead in b for the current line of a and reports the lines in between as
// Added. If that fails, it looks at most five lines ahead in a for the current line of b and reports
// the lines in between as Removed. If both fail, the current lines are reported as a Removed line
// followed by an Added line.
//
// If a and b are identical, the output consists of an Unchanged record for every line.
func Align(a, b []string) Result {
	return alignLines(a, b, config.Default)
}

func alignLines(a, b []string, cfg config.Config) Result {
	steps := align.Align(a, b, cfg.Window)
	if len(steps) == 0 {
		return nil
	}
	out := make(Result, len(steps))
	for i, step := range steps {
		switch step.Op {
		case align.Match:
			out[i] = Record{Unchanged, a[step.X], step.X + 1, step.Y + 1}
		case align.Delete:
			out[i] = Record{Removed, a[step.X], step.X + 1, 0}
		case align.Insert:
			out[i] = Record{Added, b[step.Y], 0, step.Y + 1}
		default:
			panic("never reached")
		}
	}
	return out
}

// Report collects everything that is derived from comparing two texts.
type Report struct {
	Result     Result        `json:"diff" yaml:"diff"`
	Statistics Statistics    `json:"statistics" yaml:"statistics"`
	Unified    []UnifiedRow  `json:"unified" yaml:"unified"`
	Split      []SplitRow    `json:"split" yaml:"split"`
	Inline     []InlineBlock `json:"inline" yaml:"inline"`
}

// Identical reports whether the compared texts have no added or removed lines (after
// normalization).
func (r Report) Identical() bool {
	return r.Statistics.ModifiedLines == 0
}

// Compare compares the original and the modified text line by line and returns the result with
// statistics and all views.
//
// The following options are supported: [IgnoreWhitespace], [IgnoreCase]
func Compare(original, modified string, opts ...Option) Report {
	cfg := config.FromOptions(opts, config.IgnoreWhitespace|config.IgnoreCase)
	a, b := lines.Prepare(original, modified, cfg)
	result := alignLines(a, b, cfg)
	return Report{
		Result:     result,
		Statistics: Stats(result, original, modified),
		Unified:    Unified(result),
		Split:      Split(result),
		Inline:     Inline(result),
	}
}
