// Package mistake models typing-mistake probability and corruption.
package mistake

import (
	"github.com/typewright/typewright/internal/textstats"
)

// DifficultLetters are the keys that raise the error rate of a passage.
const DifficultLetters = "zqxjkvbp"

// Rate derives the per-character mistake probability from typing speed and
// text statistics. The result is an unclamped weight and can exceed 1 for
// pathological inputs; Clamp01 bounds it at the point of use.
func Rate(speed float64, stats textstats.Statistics) float64 {
	base := (speed / 200) * 0.05
	wordComplexity := stats.AverageWordLength / 5

	vocabularyComplexity := 1.0
	if stats.WordCount > 0 {
		vocabularyComplexity = float64(stats.UniqueWordCount) * 10 / float64(stats.WordCount)
	}

	letterDifficulty := 1.0
	total := 0
	for _, count := range stats.LetterFrequency {
		total += count
	}
	if total > 0 {
		difficult := 0
		for _, letter := range DifficultLetters {
			difficult += stats.LetterFrequency[letter]
		}
		letterDifficulty = float64(difficult+total) / float64(total)
	}

	return base * (wordComplexity + vocabularyComplexity + letterDifficulty) / 10
}

// Clamp01 bounds a rate to [0, 1].
func Clamp01(rate float64) float64 {
	if rate < 0 {
		return 0
	}
	if rate > 1 {
		return 1
	}
	return rate
}
