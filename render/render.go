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

// Package render renders comparison results as text, e.g. for terminals.
//
// All renderers write plain text by default. Use [TerminalColors] or [Colors] to add ANSI colors.
package render

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"znkr.io/diffcheck"
	"znkr.io/diffcheck/render/color"
)

const (
	prefixUnchanged = " "
	prefixRemoved   = "-"
	prefixAdded     = "+"
)

// truncated marks content that was cut off to fit a column.
const truncated = "..."

// tab is the replacement for tab characters in the split view. Tabs have no fixed display width.
const tab = "    "

// Unified writes the unified view of result to w: one line per record with the original and the
// modified line number followed by the marker and the content of the line.
//
// The following options are supported: [Context], [Colors], [TerminalColors]
func Unified(w io.Writer, result diffcheck.Result, opts ...Option) error {
	s := fromOptions(opts)
	nw := numberWidth(result)

	var b bytes.Buffer
	if s.context < 0 {
		for _, row := range diffcheck.Unified(result) {
			s.unifiedRow(&b, row, nw)
		}
	} else {
		for _, h := range diffcheck.Hunks(result, s.context) {
			header := fmt.Sprintf("@@ -%d,%d +%d,%d @@", h.OriginalStart, h.OriginalLines, h.ModifiedStart, h.ModifiedLines)
			s.paint(&b, s.colors.HunkHeader, header)
			b.WriteByte('\n')
			for _, row := range diffcheck.Unified(h.Records) {
				s.unifiedRow(&b, row, nw)
			}
		}
	}
	_, err := w.Write(b.Bytes())
	return err
}

func (s *settings) unifiedRow(b *bytes.Buffer, row diffcheck.UnifiedRow, nw int) {
	line := fmt.Sprintf("%*s %*s %s%s", nw, lineNo(row.OriginalLine), nw, lineNo(row.ModifiedLine), row.Marker, row.Content)
	s.paint(b, s.color(row.Kind), line)
	b.WriteByte('\n')
}

// Split writes the side-by-side view of result to w. The original text is on the left, the
// modified text on the right. Content that is wider than the column is truncated.
//
// The following options are supported: [Width], [Colors], [TerminalColors]
func Split(w io.Writer, result diffcheck.Result, opts ...Option) error {
	s := fromOptions(opts)
	nw := numberWidth(result)
	blank := strings.Repeat(" ", nw+2+s.width)

	var b bytes.Buffer
	for _, row := range diffcheck.Split(result) {
		if c, ok := row.Left(); ok {
			s.paint(&b, s.color(c.Kind), s.cell(c, nw, true))
		} else {
			b.WriteString(blank)
		}
		b.WriteString(" |")
		if c, ok := row.Right(); ok {
			b.WriteByte(' ')
			s.paint(&b, s.color(c.Kind), s.cell(c, nw, false))
		}
		b.WriteByte('\n')
	}
	_, err := w.Write(b.Bytes())
	return err
}

func (s *settings) cell(c diffcheck.Cell, nw int, pad bool) string {
	content := runewidth.Truncate(strings.ReplaceAll(c.Content, "\t", tab), s.width, truncated)
	if pad {
		content = runewidth.FillRight(content, s.width)
	}
	return fmt.Sprintf("%*d %s%s", nw, c.Line, prefix(c.Kind), content)
}

// Inline writes the inline view of result to w: one labeled line per record.
//
// The following options are supported: [Colors], [TerminalColors]
func Inline(w io.Writer, result diffcheck.Result, opts ...Option) error {
	s := fromOptions(opts)
	blocks := diffcheck.Inline(result)
	lw := 0
	for _, block := range blocks {
		lw = max(lw, len(block.Label))
	}

	var b bytes.Buffer
	for _, block := range blocks {
		s.paint(&b, s.color(block.Kind), fmt.Sprintf("%-*s %s", lw, block.Label, block.Content))
		b.WriteByte('\n')
	}
	_, err := w.Write(b.Bytes())
	return err
}

// Summary writes a single line summarizing st to w.
func Summary(w io.Writer, st diffcheck.Statistics) error {
	_, err := fmt.Fprintf(w, "%d added, %d removed, %d unchanged, %.1f%% similar\n",
		st.AddedLines, st.RemovedLines, st.UnchangedLines, st.Similarity)
	return err
}

func (s *settings) paint(b *bytes.Buffer, code, text string) {
	if code == "" {
		b.WriteString(text)
		return
	}
	b.WriteString(code)
	b.WriteString(text)
	b.WriteString(color.Reset)
}

func (s *settings) color(kind diffcheck.Kind) string {
	switch kind {
	case diffcheck.Removed:
		return s.colors.Removed
	case diffcheck.Added:
		return s.colors.Added
	default:
		return s.colors.Unchanged
	}
}

func prefix(kind diffcheck.Kind) string {
	switch kind {
	case diffcheck.Removed:
		return prefixRemoved
	case diffcheck.Added:
		return prefixAdded
	default:
		return prefixUnchanged
	}
}

func lineNo(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

// numberWidth returns the number of digits of the largest line number in result.
func numberWidth(result diffcheck.Result) int {
	n := 0
	for _, r := range result {
		o, _ := r.OriginalLine()
		m, _ := r.ModifiedLine()
		n = max(n, o, m)
	}
	return max(1, len(strconv.Itoa(n)))
}
