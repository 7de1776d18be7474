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

// gitdiff is a tool that can be used with git using GIT_EXTERNAL_DIFF.
//
// It shows the changes of each file with line numbers, e.g.
//
//	GIT_EXTERNAL_DIFF=gitdiff git diff HEAD~1
//
// Set GITDIFF_VIEW to "split" or "inline" for the other views and GITDIFF_CONTEXT to change the
// number of context lines in the unified view.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"golang.org/x/term"
	"znkr.io/diffcheck"
	"znkr.io/diffcheck/render"
)

func main() {
	if err := run(os.Args, os.Getenv, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, getenv func(string) string, w io.Writer) error {
	if len(args) < 8 {
		return fmt.Errorf("expected at least 8 args, got %v: %v", len(args), args)
	}

	path, oldFile, oldHex, _, newFile, newHex, newMode := args[1], args[2], args[3], args[4], args[5], args[6], args[7]

	old, err := readFile(oldFile)
	if err != nil {
		return fmt.Errorf("reading old file: %v", err)
	}
	new, err := readFile(newFile)
	if err != nil {
		return fmt.Errorf("reading new file: %v", err)
	}

	opts := []render.Option{render.Context(3)}
	if v := getenv("GITDIFF_CONTEXT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid GITDIFF_CONTEXT: %v", err)
		}
		opts = append(opts, render.Context(n))
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		opts = append(opts, render.TerminalColors())
	}

	fmt.Fprintf(w, "diff --git a/%s b/%s\n", path, path)
	fmt.Fprintf(w, "index %s..%s %s\n", short(oldHex), short(newHex), newMode)
	fmt.Fprintf(w, "--- a/%s\n", path)
	fmt.Fprintf(w, "+++ b/%s\n", path)

	r := diffcheck.Compare(old, new)
	switch view := getenv("GITDIFF_VIEW"); view {
	case "", "unified":
		return render.Unified(w, r.Result, opts...)
	case "split":
		return render.Split(w, r.Result, opts...)
	case "inline":
		return render.Inline(w, r.Result, opts...)
	default:
		return fmt.Errorf("invalid GITDIFF_VIEW %q", view)
	}
}

func readFile(name string) (string, error) {
	if name == "/dev/null" {
		return "", nil
	}
	b, err := os.ReadFile(name)
	return string(b), err
}

func short(hex string) string {
	return hex[:min(len(hex), 10)]
}
