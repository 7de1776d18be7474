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

// diffcheck compares two text files line by line and prints the result.
//
// Usage:
//
//	diffcheck [flags] <original> <modified>
//
// The exit code is 0 if the inputs are identical, 1 if they are different and 2 if an error
// occurred.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"
	"znkr.io/diffcheck"
	"znkr.io/diffcheck/live"
	"znkr.io/diffcheck/render"
)

const (
	exitIdentical = 0
	exitDifferent = 1
	exitError     = 2
)

var views = []string{"unified", "split", "inline", "json", "yaml", "stats"}

type config struct {
	ignoreWhitespace bool
	ignoreCase       bool
	view             string
	context          int
	width            int
	color            string
	watch            bool
	interval         time.Duration
	verbose          bool

	original, modified string

	// Properties of stdout.
	terminal bool
	columns  int
}

func main() {
	var cfg config
	flag.BoolVar(&cfg.ignoreWhitespace, "ignore-whitespace", false, "ignore leading and trailing whitespace")
	flag.BoolVar(&cfg.ignoreCase, "ignore-case", false, "ignore case")
	flag.StringVar(&cfg.view, "view", "unified", "output format, one of "+strings.Join(views, ", "))
	flag.IntVar(&cfg.context, "context", -1, "number of context lines in the unified view, -1 shows every line")
	flag.IntVar(&cfg.width, "width", 0, "column width of the split view, 0 fits the terminal")
	flag.StringVar(&cfg.color, "color", "auto", "when to use colors: auto, always or never")
	flag.BoolVar(&cfg.watch, "watch", false, "watch the input files and print a new result whenever they change")
	flag.DurationVar(&cfg.interval, "interval", 500*time.Millisecond, "polling interval and debounce delay for -watch")
	flag.BoolVar(&cfg.verbose, "v", false, "verbose logging")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: diffcheck [flags] <original> <modified>\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.CommandLine.NArg() != 2 {
		flag.Usage()
		os.Exit(exitError)
	}
	cfg.original = flag.CommandLine.Arg(0)
	cfg.modified = flag.CommandLine.Arg(1)

	fd := int(os.Stdout.Fd())
	cfg.terminal = term.IsTerminal(fd)
	if cfg.terminal {
		if cols, _, err := term.GetSize(fd); err == nil {
			cfg.columns = cols
		}
	}

	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code, err := run(ctx, &cfg, os.Stdout, logger)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(exitError)
	}
	os.Exit(code)
}

func run(ctx context.Context, cfg *config, w io.Writer, logger *slog.Logger) (int, error) {
	if err := cfg.validate(); err != nil {
		return exitError, err
	}
	if cfg.watch {
		return watch(ctx, cfg, w, logger)
	}

	x, y, err := readInputs(cfg)
	if err != nil {
		return exitError, err
	}
	start := time.Now()
	report := diffcheck.Compare(x, y, cfg.compareOptions()...)
	logger.Debug("compared inputs",
		"original", cfg.original,
		"modified", cfg.modified,
		"records", len(report.Result),
		"duration", time.Since(start),
	)
	if err := show(w, cfg, report); err != nil {
		return exitError, err
	}
	return exitCode(report), nil
}

func (cfg *config) validate() error {
	found := false
	for _, v := range views {
		found = found || v == cfg.view
	}
	if !found {
		return fmt.Errorf("invalid view %q, must be one of %s", cfg.view, strings.Join(views, ", "))
	}
	switch cfg.color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color mode %q, must be one of auto, always, never", cfg.color)
	}
	if cfg.watch && cfg.interval <= 0 {
		return fmt.Errorf("invalid interval %v, must be positive", cfg.interval)
	}
	return nil
}

func (cfg *config) compareOptions() []diffcheck.Option {
	var opts []diffcheck.Option
	if cfg.ignoreWhitespace {
		opts = append(opts, diffcheck.IgnoreWhitespace())
	}
	if cfg.ignoreCase {
		opts = append(opts, diffcheck.IgnoreCase())
	}
	return opts
}

func (cfg *config) renderOptions(report diffcheck.Report) []render.Option {
	var opts []render.Option
	if cfg.color == "always" || (cfg.color == "auto" && cfg.terminal) {
		opts = append(opts, render.TerminalColors())
	}
	switch {
	case cfg.width > 0:
		opts = append(opts, render.Width(cfg.width))
	case cfg.columns > 0:
		opts = append(opts, render.Width(splitWidth(cfg.columns, report.Result)))
	}
	return append(opts, render.Context(cfg.context))
}

// splitWidth returns the column width for the split view that fits into a terminal with the
// given number of columns.
func splitWidth(columns int, result diffcheck.Result) int {
	n := 0
	for _, r := range result {
		o, _ := r.OriginalLine()
		m, _ := r.ModifiedLine()
		n = max(n, o, m)
	}
	// Each side has a line number, a space and a marker. The separator takes three columns.
	gutter := len(strconv.Itoa(n)) + 2
	return max(10, (columns-3)/2-gutter)
}

func readInputs(cfg *config) (string, string, error) {
	x, err := os.ReadFile(cfg.original)
	if err != nil {
		return "", "", fmt.Errorf("reading original: %v", err)
	}
	y, err := os.ReadFile(cfg.modified)
	if err != nil {
		return "", "", fmt.Errorf("reading modified: %v", err)
	}
	return string(x), string(y), nil
}

func show(w io.Writer, cfg *config, report diffcheck.Report) error {
	opts := cfg.renderOptions(report)
	switch cfg.view {
	case "unified":
		return render.Unified(w, report.Result, opts...)
	case "split":
		return render.Split(w, report.Result, opts...)
	case "inline":
		return render.Inline(w, report.Result, opts...)
	case "stats":
		return render.Summary(w, report.Statistics)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()
	}
	panic("unreachable")
}

func exitCode(report diffcheck.Report) int {
	if report.Identical() {
		return exitIdentical
	}
	return exitDifferent
}

// watch polls the input files and prints a new result whenever they change until ctx is done.
// The exit code reflects the last printed result.
func watch(ctx context.Context, cfg *config, w io.Writer, logger *slog.Logger) (int, error) {
	s := live.New(cfg.interval, live.Logger(logger), live.CompareOptions(cfg.compareOptions()...))
	defer s.Close()

	x, y, err := readInputs(cfg)
	if err != nil {
		return exitError, err
	}
	s.Update(x, y)

	ticker := time.NewTicker(cfg.interval)
	defer ticker.Stop()
	code := exitIdentical
	for {
		select {
		case <-ctx.Done():
			return code, nil
		case <-ticker.C:
			nx, ny, err := readInputs(cfg)
			if err != nil {
				// Editors often replace files non-atomically, try again on the next tick.
				logger.Warn("polling inputs failed", "err", err)
				continue
			}
			if nx != x || ny != y {
				x, y = nx, ny
				s.Update(x, y)
			}
		case snap, ok := <-s.Results():
			if !ok {
				return code, nil
			}
			if _, err := fmt.Fprintf(w, "=== %s <> %s (#%d) ===\n", cfg.original, cfg.modified, snap.Generation); err != nil {
				return exitError, err
			}
			if err := show(w, cfg, snap.Report); err != nil {
				return exitError, err
			}
			code = exitCode(snap.Report)
		}
	}
}
