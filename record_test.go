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
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func TestRecordAccessors(t *testing.T) {
	tests := []struct {
		rec                     Record
		wantKind                Kind
		wantOrig, wantMod       int
		wantHasOrig, wantHasMod bool
		wantString              string
	}{
		{UnchangedRecord("a", 1, 2), Unchanged, 1, 2, true, true, `Unchanged("a", 1, 2)`},
		{RemovedRecord("b", 3), Removed, 3, 0, true, false, `Removed("b", 3)`},
		{AddedRecord("c", 4), Added, 0, 4, false, true, `Added("c", 4)`},
	}
	for _, tt := range tests {
		t.Run(tt.wantString, func(t *testing.T) {
			if got := tt.rec.Kind(); got != tt.wantKind {
				t.Errorf("Kind() = %v, want %v", got, tt.wantKind)
			}
			orig, hasOrig := tt.rec.OriginalLine()
			if orig != tt.wantOrig || hasOrig != tt.wantHasOrig {
				t.Errorf("OriginalLine() = %v, %v, want %v, %v", orig, hasOrig, tt.wantOrig, tt.wantHasOrig)
			}
			mod, hasMod := tt.rec.ModifiedLine()
			if mod != tt.wantMod || hasMod != tt.wantHasMod {
				t.Errorf("ModifiedLine() = %v, %v, want %v, %v", mod, hasMod, tt.wantMod, tt.wantHasMod)
			}
			if got := tt.rec.String(); got != tt.wantString {
				t.Errorf("String() = %q, want %q", got, tt.wantString)
			}
		})
	}
}

func TestRecordConstructorsPanic(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"unchanged-missing-original", func() { UnchangedRecord("a", 0, 1) }},
		{"unchanged-missing-modified", func() { UnchangedRecord("a", 1, 0) }},
		{"removed-zero", func() { RemovedRecord("a", 0) }},
		{"added-negative", func() { AddedRecord("a", -1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("constructor did not panic")
				}
			}()
			tt.fn()
		})
	}
}

func TestRecordJSON(t *testing.T) {
	result := Result{
		UnchangedRecord("line1", 1, 1),
		RemovedRecord("line2", 2),
		AddedRecord("lineTWO", 2),
	}
	got, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("json.Marshal(...) failed: %v", err)
	}
	want := `[{"type":"unchanged","content":"line1","originalLineNumber":1,"modifiedLineNumber":1},` +
		`{"type":"removed","content":"line2","originalLineNumber":2},` +
		`{"type":"added","content":"lineTWO","modifiedLineNumber":2}]`
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Errorf("json.Marshal(...) result is different [-want,+got]:\n%s", diff)
	}

	var decoded Result
	if err := json.Unmarshal(got, &decoded); err != nil {
		t.Fatalf("json.Unmarshal(...) failed: %v", err)
	}
	if diff := cmp.Diff(result, decoded, allowUnexported); diff != "" {
		t.Errorf("json.Unmarshal(...) result is different [-want,+got]:\n%s", diff)
	}
}

func TestRecordUnmarshalJSONInvalid(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr string
	}{
		{"unknown-type", `{"type":"moved","content":"a","originalLineNumber":1}`, `invalid kind "moved"`},
		{"unchanged-one-sided", `{"type":"unchanged","content":"a","originalLineNumber":1}`, "unchanged record needs both line numbers"},
		{"removed-with-modified", `{"type":"removed","content":"a","originalLineNumber":1,"modifiedLineNumber":1}`, "removed record needs only an original line number"},
		{"added-without-line", `{"type":"added","content":"a"}`, "added record needs only a modified line number"},
		{"not-an-object", `[]`, "cannot unmarshal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Record
			err := json.Unmarshal([]byte(tt.in), &r)
			if err == nil {
				t.Fatalf("json.Unmarshal(%s) succeeded, want error", tt.in)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("json.Unmarshal(%s) error = %q, want it to contain %q", tt.in, err, tt.wantErr)
			}
		})
	}
}

func TestRecordYAML(t *testing.T) {
	result := Result{
		UnchangedRecord("a: b", 1, 1),
		RemovedRecord("", 2),
		AddedRecord("- item", 2),
	}
	out, err := yaml.Marshal(result)
	if err != nil {
		t.Fatalf("yaml.Marshal(...) failed: %v", err)
	}
	var decoded Result
	if err := yaml.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("yaml.Unmarshal(...) failed: %v\n%s", err, out)
	}
	if diff := cmp.Diff(result, decoded, allowUnexported); diff != "" {
		t.Errorf("YAML round trip is different [-want,+got]:\n%s\nyaml:\n%s", diff, out)
	}

	var r Record
	if err := yaml.Unmarshal([]byte("type: added\ncontent: x\n"), &r); err == nil {
		t.Errorf("yaml.Unmarshal(...) of an added record without line number succeeded, want error")
	}
}

func TestKindText(t *testing.T) {
	for _, k := range []Kind{Unchanged, Removed, Added} {
		text, err := k.MarshalText()
		if err != nil {
			t.Fatalf("%v.MarshalText() failed: %v", k, err)
		}
		if want := strings.ToLower(k.String()); string(text) != want {
			t.Errorf("%v.MarshalText() = %q, want %q", k, text, want)
		}
		var got Kind
		if err := got.UnmarshalText(text); err != nil || got != k {
			t.Errorf("UnmarshalText(%q) = %v, %v, want %v", text, got, err, k)
		}
	}
	if _, err := Kind(42).MarshalText(); err == nil {
		t.Errorf("Kind(42).MarshalText() succeeded, want error")
	}
	if got := Kind(42).String(); got != "Kind(42)" {
		t.Errorf("Kind(42).String() = %q, want %q", got, "Kind(42)")
	}
}
