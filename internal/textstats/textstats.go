// Package textstats derives aggregate statistics from a passage of text.
package textstats

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// tokenPattern matches one token: a run of word characters (including
// apostrophes) or a run of clause punctuation.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_']+|[.,!?;:]+`)

// sentenceEnd matches a run of sentence-terminating punctuation.
var sentenceEnd = regexp.MustCompile(`[.!?]+`)

// Statistics summarizes a passage. Punctuation runs count as tokens, so
// WordCount and AverageWordLength include them.
type Statistics struct {
	WordCount         int
	UniqueWordCount   int
	CharacterCount    int
	AverageWordLength float64
	LetterFrequency   map[rune]int
	WordFrequency     map[string]int
	SentenceCount     int
}

// Analyze computes Statistics for text. It never fails; empty input yields
// the zero value.
func Analyze(text string) Statistics {
	if text == "" {
		return Statistics{}
	}

	folded := strings.ToLower(text)
	tokens := tokenPattern.FindAllString(folded, -1)

	wordFrequency := make(map[string]int, len(tokens))
	totalLength := 0
	for _, token := range tokens {
		wordFrequency[token]++
		totalLength += utf8.RuneCountInString(token)
	}

	average := 0.0
	if len(tokens) > 0 {
		average = float64(totalLength) / float64(len(tokens))
	}

	letterFrequency := make(map[rune]int)
	for _, r := range folded {
		if r >= 'a' && r <= 'z' {
			letterFrequency[r]++
		}
	}

	return Statistics{
		WordCount:         len(tokens),
		UniqueWordCount:   len(wordFrequency),
		CharacterCount:    utf8.RuneCountInString(text),
		AverageWordLength: average,
		LetterFrequency:   letterFrequency,
		WordFrequency:     wordFrequency,
		SentenceCount:     countSentences(text),
	}
}

// countSentences splits on runs of sentence terminators, keeping each run
// attached to the sentence it closes, and counts the non-empty remainder.
func countSentences(text string) int {
	count := 0
	prev := 0
	for _, match := range sentenceEnd.FindAllStringIndex(text, -1) {
		if strings.TrimSpace(text[prev:match[1]]) != "" {
			count++
		}
		prev = match[1]
	}
	if strings.TrimSpace(text[prev:]) != "" {
		count++
	}
	return count
}
