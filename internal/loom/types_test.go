package loom

import (
	"testing"
	"time"
)

func TestRecord_ParsedTimestamps(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		value string
		want  time.Time
	}{
		{"rfc3339", "2026-05-01T10:30:00Z", time.Date(2026, 5, 1, 10, 30, 0, 0, time.UTC)},
		{"rfc3339 nano", "2026-05-01T10:30:00.123456789Z", time.Date(2026, 5, 1, 10, 30, 0, 123456789, time.UTC)},
		{"empty", "", time.Time{}},
		{"garbage", "yesterday-ish", time.Time{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := Record{CreatedAt: tc.value, UpdatedAt: tc.value}
			if got := r.ParsedCreatedAt(); !got.Equal(tc.want) {
				t.Fatalf("ParsedCreatedAt(%q) = %v, want %v", tc.value, got, tc.want)
			}
			if got := r.ParsedUpdatedAt(); !got.Equal(tc.want) {
				t.Fatalf("ParsedUpdatedAt(%q) = %v, want %v", tc.value, got, tc.want)
			}
		})
	}
}

func TestResource_Title(t *testing.T) {
	t.Parallel()

	cases := []struct {
		res  Resource
		want string
	}{
		{ResourcePrompts, "Prompts"},
		{ResourceDatasets, "Datasets"},
		{ResourceEvaluators, "Evaluators"},
		{ResourceAPIKeys, "API Keys"},
		{Resource("traces"), "traces"},
	}
	for _, tc := range cases {
		if got := tc.res.Title(); got != tc.want {
			t.Fatalf("Title(%q) = %q, want %q", tc.res, got, tc.want)
		}
	}
}

func TestRecord_NodeID(t *testing.T) {
	t.Parallel()

	r := Record{ID: "p42", Name: "greeting"}
	if r.NodeID() != "p42" {
		t.Fatalf("NodeID() = %q, want p42", r.NodeID())
	}
}
