package ui

import (
	"testing"

	"tdl/internal/batch"
)

func TestStatusLabelCoversEveryStage(t *testing.T) {
	cases := map[batch.Stage]string{
		batch.StageQueued:     "queued",
		batch.StageParsing:    "parsing",
		batch.StageValidating: "validating",
		batch.StageDone:       "done",
		batch.StageError:      "error",
	}
	for stage, want := range cases {
		if got := statusLabel(stage); got != want {
			t.Errorf("statusLabel(%v) = %q, want %q", stage, got, want)
		}
	}
}

func TestTruncateShortensLongNames(t *testing.T) {
	got := truncate("a/very/long/path/to/some/network.tdl", 10)
	if len(got) > 10 {
		t.Fatalf("expected truncated output to fit width 10, got %q (%d)", got, len(got))
	}
}

func TestTruncateLeavesShortNamesAlone(t *testing.T) {
	if got := truncate("a.tdl", 20); got != "a.tdl" {
		t.Fatalf("expected untouched short name, got %q", got)
	}
}

func TestProgressFromStageIsMonotonic(t *testing.T) {
	prev := -1.0
	for _, s := range []batch.Stage{batch.StageQueued, batch.StageParsing, batch.StageValidating, batch.StageDone} {
		v := progressFromStage(s)
		if v < prev {
			t.Fatalf("expected non-decreasing progress, got %v after %v", v, prev)
		}
		prev = v
	}
}
