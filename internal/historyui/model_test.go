package historyui

import (
	"testing"
	"time"

	"github.com/typewright/typewright/internal/model"
)

func TestBuildRunTableDataOrdersNewestFirst(t *testing.T) {
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	runs := []model.RunRecord{
		{ID: "old", StartedAt: base, Speed: 60, CharsTyped: 100, DurationMs: 60000},
		{ID: "new", StartedAt: base.Add(time.Hour), Speed: 90, CharsTyped: 100, DurationMs: 60000},
	}

	cols, rows := buildRunTableData(runs)
	if len(cols) != 8 {
		t.Fatalf("expected 8 columns, got %d", len(cols))
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0][2] != "90" {
		t.Fatalf("expected newest run first, got WPM %q", rows[0][2])
	}
}

func TestBuildRunTableDataEmpty(t *testing.T) {
	cols, rows := buildRunTableData(nil)
	if len(cols) == 0 {
		t.Fatal("expected columns for empty input")
	}
	if len(rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(rows))
	}
}

func TestCurveWindowSteps(t *testing.T) {
	if got := nextCurveWindow(1); got != 5 {
		t.Fatalf("nextCurveWindow(1) = %d, want 5", got)
	}
	if got := nextCurveWindow(5); got != 10 {
		t.Fatalf("nextCurveWindow(5) = %d, want 10", got)
	}
	if got := nextCurveWindow(7); got != 10 {
		t.Fatalf("nextCurveWindow(7) = %d, want 10", got)
	}
	if got := prevCurveWindow(5); got != 1 {
		t.Fatalf("prevCurveWindow(5) = %d, want 1", got)
	}
	if got := prevCurveWindow(12); got != 10 {
		t.Fatalf("prevCurveWindow(12) = %d, want 10", got)
	}
}
