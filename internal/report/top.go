// Package report contains run metrics and text reporting.
package report

import (
	"sort"

	"github.com/typewright/typewright/internal/model"
)

// TopLetters returns the top N letters by count, ties broken alphabetically.
func TopLetters(counts []model.LetterCount, n int) []model.LetterCount {
	if n <= 0 || len(counts) == 0 {
		return nil
	}
	out := make([]model.LetterCount, len(counts))
	copy(out, counts)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Letter < out[j].Letter
		}
		return out[i].Count > out[j].Count
	})
	if n > len(out) {
		n = len(out)
	}
	return out[:n]
}
