package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/typewright/typewright/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "typewright.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})
	return s
}

func sampleRun(id string, startedAt time.Time) model.RunRecord {
	return model.RunRecord{
		ID:          id,
		StartedAt:   startedAt,
		Label:       "essay.txt",
		Speed:       80,
		MistakeRate: 0.02,
		Fatigue:     true,
		Chars:       120,
		CharsTyped:  120,
		Mistakes:    3,
		Corrected:   2,
		Backspaces:  4,
		DurationMs:  15000,
		Completed:   true,
	}
}

func TestInsertAndListRuns(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	for i, id := range []string{"run-a", "run-b", "run-c"} {
		rec := sampleRun(id, base.Add(time.Duration(i)*time.Hour))
		if err := s.InsertRun(ctx, rec, nil); err != nil {
			t.Fatalf("InsertRun(%s) error = %v", id, err)
		}
	}

	runs, err := s.ListRuns(ctx, model.HistoryConfig{})
	if err != nil {
		t.Fatalf("ListRuns() error = %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("got %d runs, want 3", len(runs))
	}
	if runs[0].ID != "run-a" || runs[2].ID != "run-c" {
		t.Errorf("runs not ordered oldest first: %s, %s, %s", runs[0].ID, runs[1].ID, runs[2].ID)
	}
	got := runs[1]
	if got.Speed != 80 || !got.Fatigue || !got.Completed || got.Label != "essay.txt" {
		t.Errorf("round-tripped run = %+v", got)
	}
	if !got.StartedAt.Equal(base.Add(time.Hour)) {
		t.Errorf("StartedAt = %v, want %v", got.StartedAt, base.Add(time.Hour))
	}
}

func TestListRunsSince(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	for i, id := range []string{"old", "mid", "new"} {
		if err := s.InsertRun(ctx, sampleRun(id, base.Add(time.Duration(i)*time.Hour)), nil); err != nil {
			t.Fatalf("InsertRun(%s) error = %v", id, err)
		}
	}

	since := base.Add(30 * time.Minute)
	runs, err := s.ListRuns(ctx, model.HistoryConfig{Since: &since})
	if err != nil {
		t.Fatalf("ListRuns() error = %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
	if runs[0].ID != "mid" {
		t.Errorf("first run = %s, want mid", runs[0].ID)
	}
}

func TestGetLetterCountsAggregates(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	first := sampleRun("run-1", base)
	second := sampleRun("run-2", base.Add(time.Hour))
	if err := s.InsertRun(ctx, first, []model.LetterCount{{Letter: 'z', Count: 2}, {Letter: 'e', Count: 9}}); err != nil {
		t.Fatalf("InsertRun() error = %v", err)
	}
	if err := s.InsertRun(ctx, second, []model.LetterCount{{Letter: 'z', Count: 3}}); err != nil {
		t.Fatalf("InsertRun() error = %v", err)
	}

	counts, err := s.GetLetterCounts(ctx, 10)
	if err != nil {
		t.Fatalf("GetLetterCounts() error = %v", err)
	}
	byLetter := map[rune]int{}
	for _, lc := range counts {
		byLetter[lc.Letter] = lc.Count
	}
	if byLetter['z'] != 5 {
		t.Errorf("z count = %d, want 5", byLetter['z'])
	}
	if byLetter['e'] != 9 {
		t.Errorf("e count = %d, want 9", byLetter['e'])
	}
}

func TestGetLetterCountsWindow(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	if err := s.InsertRun(ctx, sampleRun("older", base), []model.LetterCount{{Letter: 'q', Count: 7}}); err != nil {
		t.Fatalf("InsertRun() error = %v", err)
	}
	if err := s.InsertRun(ctx, sampleRun("newer", base.Add(time.Hour)), []model.LetterCount{{Letter: 'q', Count: 1}}); err != nil {
		t.Fatalf("InsertRun() error = %v", err)
	}

	counts, err := s.GetLetterCounts(ctx, 1)
	if err != nil {
		t.Fatalf("GetLetterCounts() error = %v", err)
	}
	if len(counts) != 1 || counts[0].Letter != 'q' || counts[0].Count != 1 {
		t.Errorf("windowed counts = %+v, want only the newest run", counts)
	}

	none, err := s.GetLetterCounts(ctx, 0)
	if err != nil {
		t.Fatalf("GetLetterCounts(0) error = %v", err)
	}
	if none != nil {
		t.Errorf("GetLetterCounts(0) = %+v, want nil", none)
	}
}
