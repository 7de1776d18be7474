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

package live

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"znkr.io/diffcheck"
)

const timeout = 10 * time.Second

// latest receives snapshots until the one for generation gen arrives.
func latest(t *testing.T, s *Session, gen uint64) Snapshot {
	t.Helper()
	deadline := time.After(timeout)
	var prev uint64
	for {
		select {
		case snap, ok := <-s.Results():
			if !ok {
				t.Fatalf("results channel closed before generation %d", gen)
			}
			if snap.Generation <= prev {
				t.Fatalf("got generation %d after %d, want increasing generations", snap.Generation, prev)
			}
			prev = snap.Generation
			if snap.Generation == gen {
				return snap
			}
			if snap.Generation > gen {
				t.Fatalf("got generation %d, want at most %d", snap.Generation, gen)
			}
		case <-deadline:
			t.Fatalf("timeout waiting for generation %d", gen)
		}
	}
}

func TestUpdate(t *testing.T) {
	s := New(0)
	defer s.Close()

	s.Update("a\nb", "a\nc")
	got := latest(t, s, 1)
	want := diffcheck.Compare("a\nb", "a\nc")
	if diff := cmp.Diff(want, got.Report, cmp.AllowUnexported(diffcheck.Record{}, diffcheck.SplitRow{})); diff != "" {
		t.Errorf("report is different [-want,+got]:\n%s", diff)
	}
}

func TestSupersede(t *testing.T) {
	s := New(20*time.Millisecond, CompareOptions(diffcheck.IgnoreCase()))
	defer s.Close()

	inputs := []string{"a", "ab", "abc", "abcd", "ABCDE"}
	for _, in := range inputs {
		s.Update("abcde", in)
	}
	got := latest(t, s, uint64(len(inputs)))
	if !got.Identical() {
		t.Errorf("last generation is not identical: %v", got.Result)
	}

	// Nothing else must arrive.
	select {
	case snap := <-s.Results():
		t.Errorf("got unexpected snapshot for generation %d", snap.Generation)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestDebounce(t *testing.T) {
	s := New(time.Hour)
	defer s.Close()

	s.Update("a", "b")
	select {
	case snap := <-s.Results():
		t.Errorf("got snapshot for generation %d before the delay passed", snap.Generation)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestClose(t *testing.T) {
	s := New(time.Hour)
	s.Update("a", "b")
	s.Close()
	s.Close() // idempotent
	s.Update("b", "c")

	select {
	case snap, ok := <-s.Results():
		if ok {
			t.Errorf("got snapshot for generation %d after Close", snap.Generation)
		}
	case <-time.After(timeout):
		t.Fatal("results channel not closed")
	}
}

func TestLogger(t *testing.T) {
	var buf syncBuffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := New(0, Logger(logger))
	s.Update("x", "y")
	latest(t, s, 1)
	s.Close()

	out := buf.String()
	for _, msg := range []string{"update scheduled", "comparison finished", "session closed"} {
		if !strings.Contains(out, msg) {
			t.Errorf("log output is missing %q:\n%s", msg, out)
		}
	}
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
