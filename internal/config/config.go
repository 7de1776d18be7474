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

// Package config provides shared configuration mechanisms for packages in this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// diffcheck.Option.
package config

// DefaultWindow is the number of lines the aligner looks ahead to resynchronize after a mismatch.
const DefaultWindow = 5

// Config collects all configurable parameters for comparison functions in this module.
type Config struct {
	// If set, leading and trailing whitespace is removed from every line before comparison.
	IgnoreWhitespace bool

	// If set, every line is lowercased before comparison.
	IgnoreCase bool

	// Window is the lookahead used by the aligner. This configuration is not exposed via an option
	// API, it's main use is for testing.
	Window int
}

// Default is the default configuration.
var Default = Config{
	IgnoreWhitespace: false,
	IgnoreCase:       false,
	Window:           DefaultWindow,
}

// ColorConfig configures the ANSI escape sequences used to color rendered output. An empty string
// disables coloring for the respective element.
type ColorConfig struct {
	HunkHeader string
	Unchanged  string
	Removed    string
	Added      string
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not supported by a function.
type Flag int

const (
	IgnoreWhitespace Flag = 1 << iota
	IgnoreCase
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	if cfg.Window < 1 {
		panic("Window must be at least 1")
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case IgnoreWhitespace:
		return "diffcheck.IgnoreWhitespace"
	case IgnoreCase:
		return "diffcheck.IgnoreCase"
	default:
		panic("never reached")
	}
}
