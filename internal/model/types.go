// Package model defines shared data structures.
package model

import "time"

// HistoryConfig defines filters for stored-run reporting.
type HistoryConfig struct {
	Since *time.Time
	Last  int
}

// RunRecord captures a completed typing run.
type RunRecord struct {
	ID          string
	StartedAt   time.Time
	Label       string
	Speed       float64
	MistakeRate float64
	Fatigue     bool
	Chars       int
	CharsTyped  int
	Mistakes    int
	Corrected   int
	Backspaces  int
	DurationMs  int64
	Completed   bool
}

// LetterCount pairs a letter with its occurrence count.
type LetterCount struct {
	Letter rune
	Count  int
}
