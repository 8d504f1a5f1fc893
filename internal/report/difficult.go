package report

import (
	"strings"

	"github.com/typewright/typewright/internal/mistake"
	"github.com/typewright/typewright/internal/model"
)

// SelectDifficultLetters filters counts down to the letters the mistake
// model treats as difficult.
func SelectDifficultLetters(counts []model.LetterCount) []model.LetterCount {
	out := make([]model.LetterCount, 0, len(counts))
	for _, lc := range counts {
		if strings.ContainsRune(mistake.DifficultLetters, lc.Letter) {
			out = append(out, lc)
		}
	}
	return out
}
