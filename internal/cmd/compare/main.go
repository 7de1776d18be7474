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

// compare evaluates the line alignment heuristic against a minimal line diff, either on a corpus
// of txtar files or on the history of a git repository.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"text/tabwriter"
	"time"

	"znkr.io/diffcheck/internal/baseline"
	"znkr.io/diffcheck/internal/cmd/compare/internal/git"
)

type config struct {
	corpus   string
	repo     string
	sample   int
	parallel int
	stats    string
	impls    string
}

func main() {
	var cfg config
	flag.StringVar(&cfg.corpus, "corpus", "", "glob pattern of txtar files to evaluate")
	flag.StringVar(&cfg.repo, "repo", "", "repository to use for evaluation")
	flag.IntVar(&cfg.sample, "sample", 0, "if >0, sample commits to the value of the flag")
	flag.IntVar(&cfg.parallel, "parallel", runtime.GOMAXPROCS(0), "number of evaluations to run in parallel")
	flag.StringVar(&cfg.stats, "stats", "", "file to store stats in")
	flag.StringVar(&cfg.impls, "impls", "", "comma separated list of implementations, all if empty")
	flag.Parse()

	if len(flag.CommandLine.Args()) > 0 {
		fmt.Fprintf(os.Stderr, "error: unexpected command line arguments: %v\n", flag.CommandLine.Args())
		os.Exit(1)
	}
	if (cfg.corpus == "") == (cfg.repo == "") {
		fmt.Fprintf(os.Stderr, "error: exactly one of -corpus and -repo is required\n")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, &cfg, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config, w io.Writer) error {
	impls, err := selectImpls(cfg.impls)
	if err != nil {
		return err
	}

	var cases []baseline.Case
	if cfg.corpus != "" {
		cases, err = baseline.LoadCorpus(cfg.corpus)
	} else {
		cases, err = loadHistory(cfg.repo, cfg.sample)
	}
	if err != nil {
		return err
	}

	start := time.Now()
	results, err := baseline.Evaluate(ctx, cases, impls, cfg.parallel)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "evaluated %d cases in %v\n\n", len(cases), time.Since(start).Round(time.Millisecond))

	if cfg.stats != "" {
		if err := writeStats(cfg.stats, results); err != nil {
			return err
		}
	}
	return summarize(w, impls, results)
}

func selectImpls(names string) ([]baseline.Impl, error) {
	if names == "" {
		return baseline.Impls, nil
	}
	var impls []baseline.Impl
	for name := range strings.SplitSeq(names, ",") {
		impl, ok := baseline.Lookup(strings.TrimSpace(name))
		if !ok {
			return nil, fmt.Errorf("implementation not found %q", name)
		}
		impls = append(impls, impl)
	}
	return impls, nil
}

func loadHistory(dir string, sample int) ([]baseline.Case, error) {
	repo, err := git.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("opening git repository: %v", err)
	}
	defer repo.Close()

	commitIDs, err := repo.RevList()
	if err != nil {
		return nil, fmt.Errorf("reading rev-list: %v", err)
	}
	if sample > 0 && sample < len(commitIDs) {
		rand.Shuffle(len(commitIDs), func(i, j int) {
			commitIDs[i], commitIDs[j] = commitIDs[j], commitIDs[i]
		})
		commitIDs = commitIDs[:sample]
	}

	var cases []baseline.Case
	for _, commitID := range commitIDs {
		files, err := repo.DiffTree(commitID)
		if err != nil {
			return nil, fmt.Errorf("processing commit %s: %v", commitID, err)
		}
		for _, file := range files {
			if strings.HasSuffix(file.Name, ".zip") || strings.HasSuffix(file.Name, ".syso") {
				continue
			}
			x, err := repo.Read(file.OldID)
			if err != nil {
				return nil, err
			}
			y, err := repo.Read(file.NewID)
			if err != nil {
				return nil, err
			}
			cases = append(cases, baseline.Case{
				Name: commitID[:10] + ":" + file.Name,
				X:    x,
				Y:    y,
			})
		}
	}
	return cases, nil
}

func writeStats(filename string, results []baseline.Result) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating stats file: %v", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	w.WriteString("case,impl,N,M,added,removed,unchanged,duration_ns\n")
	for _, r := range results {
		fmt.Fprintf(w, "%s,%s,%d,%d,%d,%d,%d,%d\n", r.Case, r.Impl, r.N, r.M, r.Counts.Added, r.Counts.Removed, r.Counts.Unchanged, r.Duration.Nanoseconds())
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing stats: %v", err)
	}
	return f.Close()
}

// summarize prints one row per implementation. Edits in excess of the best implementation for a
// case are counted as extra edits.
func summarize(w io.Writer, impls []baseline.Impl, results []baseline.Result) error {
	type total struct {
		edits, extra, worse int
		duration            time.Duration
	}
	totals := make([]total, len(impls))
	for i := 0; i < len(results); i += len(impls) {
		row := results[i : i+len(impls)]
		best := row[0].Counts.Edits()
		for _, r := range row {
			best = min(best, r.Counts.Edits())
		}
		for j, r := range row {
			t := &totals[j]
			t.edits += r.Counts.Edits()
			t.extra += r.Counts.Edits() - best
			if r.Counts.Edits() > best {
				t.worse++
			}
			t.duration += r.Duration
		}
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "impl\tedits\textra edits\tcases worse\ttime")
	for i, impl := range impls {
		t := totals[i]
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%v\n", impl.Name, t.edits, t.extra, t.worse, t.duration.Round(time.Microsecond))
	}
	return tw.Flush()
}
