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

// Package live recomputes comparisons while the inputs are still changing, e.g. while a user is
// typing.
//
// A [Session] debounces updates: a comparison only starts after the inputs have been stable for a
// delay. Every update supersedes all earlier ones. Results of superseded updates are never
// delivered.
package live

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"znkr.io/diffcheck"
)

// Snapshot is the comparison result for one generation of inputs. Generations start at 1 and
// increase with every call to [Session.Update].
type Snapshot struct {
	Generation uint64
	diffcheck.Report
}

// Option configures a [Session].
type Option func(*Session)

// Logger sets the logger for a session. By default, a session doesn't log.
func Logger(l *slog.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// CompareOptions sets the options used for every comparison in a session.
func CompareOptions(opts ...diffcheck.Option) Option {
	return func(s *Session) {
		s.opts = append(s.opts, opts...)
	}
}

// Session owns the debouncing and supersession of comparisons. It's safe for concurrent use.
type Session struct {
	delay  time.Duration
	opts   []diffcheck.Option
	logger *slog.Logger

	results chan Snapshot

	mu     sync.Mutex
	gen    uint64
	timer  *time.Timer
	cancel context.CancelFunc
	closed bool
}

// New creates a new session that starts a comparison once the inputs have been stable for delay.
func New(delay time.Duration, opts ...Option) *Session {
	s := &Session{
		delay:   max(0, delay),
		logger:  slog.New(slog.DiscardHandler),
		results: make(chan Snapshot, 1),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Update schedules a comparison of original and modified. A pending or running comparison of an
// earlier update is canceled. Update is a no-op after [Session.Close].
func (s *Session) Update(original, modified string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.stop()
	s.gen++
	gen := s.gen
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.timer = time.AfterFunc(s.delay, func() {
		s.run(ctx, gen, original, modified)
	})
	s.logger.Debug("update scheduled", "generation", gen, "delay", s.delay)
}

// Results returns the channel on which snapshots are delivered. If the receiver falls behind, an
// unreceived snapshot is replaced by the newer one. The channel is closed by [Session.Close].
func (s *Session) Results() <-chan Snapshot {
	return s.results
}

// Close stops the session. Pending comparisons are canceled and the results channel is closed.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.stop()
	s.closed = true
	close(s.results)
	s.logger.Debug("session closed", "generation", s.gen)
}

// stop cancels the current generation. s.mu must be held.
func (s *Session) stop() {
	if s.timer != nil {
		s.timer.Stop()
	}
	if s.cancel != nil {
		s.cancel()
	}
}

func (s *Session) run(ctx context.Context, gen uint64, original, modified string) {
	if ctx.Err() != nil {
		return
	}
	start := time.Now()
	report := diffcheck.Compare(original, modified, s.opts...)
	if ctx.Err() != nil {
		s.logger.Debug("discarding superseded result", "generation", gen)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || gen != s.gen {
		return
	}
	// Drop an unreceived snapshot, only the latest generation is of interest. This never blocks,
	// because all senders hold s.mu.
	select {
	case <-s.results:
	default:
	}
	s.results <- Snapshot{Generation: gen, Report: report}
	s.logger.Debug("comparison finished",
		"generation", gen,
		"duration", time.Since(start),
		"identical", report.Identical(),
		"similarity", report.Statistics.Similarity,
	)
}
