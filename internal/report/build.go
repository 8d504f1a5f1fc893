// Package report contains run metrics and text reporting.
package report

import (
	"context"

	"github.com/typewright/typewright/internal/model"
	"github.com/typewright/typewright/internal/store"
)

// Report contains precomputed data for history rendering.
type Report struct {
	Runs    []model.RunRecord
	Letters []model.LetterCount
	Total   int
}

// BuildReport loads and prepares stored-run data for rendering.
func BuildReport(ctx context.Context, st *store.Store, cfg model.HistoryConfig) (Report, error) {
	runs, err := st.ListRuns(ctx, cfg)
	if err != nil {
		return Report{}, err
	}
	if cfg.Last > 0 && len(runs) > cfg.Last {
		runs = runs[len(runs)-cfg.Last:]
	}

	counts, err := st.GetLetterCounts(ctx, len(runs))
	if err != nil {
		return Report{}, err
	}
	total := 0
	for _, lc := range counts {
		total += lc.Count
	}

	return Report{
		Runs:    runs,
		Letters: TopLetters(SelectDifficultLetters(counts), 8),
		Total:   total,
	}, nil
}
