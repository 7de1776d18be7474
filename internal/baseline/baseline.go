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

// Package baseline compares the line alignment heuristic against a minimal line diff.
//
// The heuristic only looks a few lines ahead to resynchronize after a mismatch. That's fast, but
// it can produce more changes than necessary. A minimal diff shows how many.
package baseline

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/txtar"
	"znkr.io/diffcheck"
	"znkr.io/diffcheck/internal/config"
	"znkr.io/diffcheck/internal/lines"
)

// Counts is the number of lines per kind in a line diff.
type Counts struct {
	Added, Removed, Unchanged int
}

// Edits returns the number of added and removed lines.
func (c Counts) Edits() int { return c.Added + c.Removed }

type Impl struct {
	Name string
	Diff func(x, y string) Counts
}

var Impls = []Impl{
	{
		Name: "diffcheck",
		Diff: func(x, y string) Counts {
			return heuristic(x, y, config.DefaultWindow)
		},
	},
	{
		Name: "diffcheck-window-20",
		Diff: func(x, y string) Counts {
			return heuristic(x, y, 20)
		},
	},
	{
		Name: "diffmatchpatch",
		Diff: minimal,
	},
}

// Lookup returns the implementation with the given name.
func Lookup(name string) (Impl, bool) {
	for _, impl := range Impls {
		if impl.Name == name {
			return impl, true
		}
	}
	return Impl{}, false
}

func heuristic(x, y string, window int) Counts {
	// The window is not exported as an option.
	opt := func(cfg *config.Config) config.Flag {
		cfg.Window = window
		return 0
	}
	st := diffcheck.Compare(x, y, opt).Statistics
	return Counts{
		Added:     st.AddedLines,
		Removed:   st.RemovedLines,
		Unchanged: st.UnchangedLines,
	}
}

func minimal(x, y string) Counts {
	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 0 // a timeout would make the result non-minimal

	// DiffLinesToRunes keeps the line terminators as part of the lines. Terminate every line so
	// that the lines match the ones used by the heuristic.
	rx, ry, _ := dmp.DiffLinesToRunes(terminate(x), terminate(y))
	var c Counts
	for _, d := range dmp.DiffMainRunes(rx, ry, false) {
		// Every rune represents a line.
		n := utf8.RuneCountInString(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			c.Added += n
		case diffmatchpatch.DiffDelete:
			c.Removed += n
		case diffmatchpatch.DiffEqual:
			c.Unchanged += n
		}
	}
	return c
}

func terminate(s string) string {
	return strings.Join(lines.Split(s), "\n") + "\n"
}

// Case is a single pair of texts to compare.
type Case struct {
	Name string
	X, Y string
}

// LoadCorpus reads all txtar files matching pattern. Every file must contain the two sections "x"
// and "y" and nothing else.
func LoadCorpus(pattern string) ([]Case, error) {
	filenames, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("finding corpus files: %v", err)
	}
	cases := make([]Case, 0, len(filenames))
	for _, filename := range filenames {
		ar, err := txtar.ParseFile(filename)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %v", filename, err)
		}
		c := Case{Name: strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))}
		for _, f := range ar.Files {
			switch f.Name {
			case "x":
				c.X = string(f.Data)
			case "y":
				c.Y = string(f.Data)
			default:
				return nil, fmt.Errorf("unknown file in archive %s: %v", filename, f.Name)
			}
		}
		cases = append(cases, c)
	}
	return cases, nil
}

// Result is the evaluation of one implementation for one case.
type Result struct {
	Case     string
	Impl     string
	N, M     int // number of lines in x and y
	Counts   Counts
	Duration time.Duration
}

// Evaluate runs every implementation on every case with at most parallel evaluations running at
// the same time. The results are in the order of cases, then impls.
//
// Evaluate validates that each result accounts for all lines of both texts and returns an error
// otherwise.
func Evaluate(ctx context.Context, cases []Case, impls []Impl, parallel int) ([]Result, error) {
	results := make([]Result, len(cases)*len(impls))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, parallel))
	for i, c := range cases {
		n, m := len(lines.Split(c.X)), len(lines.Split(c.Y))
		for j, impl := range impls {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				start := time.Now()
				counts := impl.Diff(c.X, c.Y)
				duration := time.Since(start)
				if counts.Removed+counts.Unchanged != n || counts.Added+counts.Unchanged != m {
					return fmt.Errorf("%s: %s: %+v doesn't cover %d original and %d modified lines", c.Name, impl.Name, counts, n, m)
				}
				results[i*len(impls)+j] = Result{
					Case:     c.Name,
					Impl:     impl.Name,
					N:        n,
					M:        m,
					Counts:   counts,
					Duration: duration,
				}
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
