package ui

import (
	"testing"
	"time"

	"github.com/loomhq/shuttle/internal/collection"
	"github.com/loomhq/shuttle/internal/loom"
)

func stateWith(ids ...string) collection.State {
	st := collection.State{}
	for _, id := range ids {
		st.Edges = append(st.Edges, collection.Edge{
			Cursor: "cur-" + id,
			Node:   loom.Record{ID: id, Name: "name-" + id},
		})
	}
	return st
}

func TestReconcileSelection_PreservesByID(t *testing.T) {
	t.Parallel()

	m := Model{}
	v := &resourceView{selectedID: "b", selectedRow: 1}

	// "b" moved to the front after a refetch; the selection follows it.
	m.reconcileSelection(v, stateWith("b", "a", "c"))
	if v.selectedRow != 0 || v.selectedID != "b" {
		t.Fatalf("selection = row %d id %q, want row 0 id b", v.selectedRow, v.selectedID)
	}
}

func TestReconcileSelection_ClampsWhenRecordGone(t *testing.T) {
	t.Parallel()

	m := Model{}
	v := &resourceView{selectedID: "z", selectedRow: 5}

	m.reconcileSelection(v, stateWith("a", "b"))
	if v.selectedRow != 1 || v.selectedID != "b" {
		t.Fatalf("selection = row %d id %q, want clamped to row 1 id b", v.selectedRow, v.selectedID)
	}
}

func TestReconcileSelection_EmptyWindow(t *testing.T) {
	t.Parallel()

	m := Model{}
	v := &resourceView{selectedID: "a", selectedRow: 3}

	m.reconcileSelection(v, collection.State{})
	if v.selectedRow != 0 || v.selectedID != "" {
		t.Fatalf("selection = row %d id %q, want cleared", v.selectedRow, v.selectedID)
	}
}

func TestRecordDetail(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		res  loom.Resource
		rec  loom.Record
		want string
	}{
		{"prompt version", loom.ResourcePrompts, loom.Record{Version: 3}, "v3"},
		{"prompt draft", loom.ResourcePrompts, loom.Record{}, "draft"},
		{"dataset items", loom.ResourceDatasets, loom.Record{ItemCount: 120}, "120 items"},
		{"evaluator model", loom.ResourceEvaluators, loom.Record{Model: "judge-large"}, "judge-large"},
		{"api key scopes", loom.ResourceAPIKeys, loom.Record{Scopes: "read-only"}, "read-only"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := recordDetail(tc.res, tc.rec); got != tc.want {
				t.Fatalf("recordDetail = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFormatAge(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		name string
		t    time.Time
		want string
	}{
		{"zero", time.Time{}, "-"},
		{"seconds", now.Add(-42 * time.Second), "42s"},
		{"minutes", now.Add(-7 * time.Minute), "7m"},
		{"hours", now.Add(-3 * time.Hour), "3h"},
		{"days", now.Add(-50 * time.Hour), "2d"},
		{"future clock skew", now.Add(time.Minute), "0s"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := formatAge(tc.t, now); got != tc.want {
				t.Fatalf("formatAge = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly-ten", 11, "exactly-ten"},
		{"much too long for this", 8, "much to…"},
		{"x", 0, ""},
		{"ab", 1, "…"},
	}
	for _, tc := range cases {
		if got := truncate(tc.in, tc.width); got != tc.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.width, got, tc.want)
		}
	}
}

func TestSortPresets_CoverServerFields(t *testing.T) {
	t.Parallel()

	if len(sortPresets) < 2 {
		t.Fatalf("sortPresets = %d entries, want several", len(sortPresets))
	}
	seen := map[string]bool{}
	for _, p := range sortPresets {
		if p.label == "" || p.sort.Field == "" {
			t.Fatalf("preset %#v missing label or field", p)
		}
		if seen[p.sort.Field] {
			t.Fatalf("duplicate sort field %q", p.sort.Field)
		}
		seen[p.sort.Field] = true
	}
}
