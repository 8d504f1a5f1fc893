// Package report contains run metrics and text reporting.
package report

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/typewright/typewright/internal/mistake"
	"github.com/typewright/typewright/internal/model"
	"github.com/typewright/typewright/internal/textstats"
)

const sparkChars = " .:-=+*#%@"

// RunMetrics computes the realized WPM and keystroke accuracy of a run.
func RunMetrics(rec model.RunRecord) (wpm, accuracy float64) {
	if rec.DurationMs <= 0 {
		return 0, 0
	}
	minutes := float64(rec.DurationMs) / 60000.0
	if minutes <= 0 {
		return 0, 0
	}
	wpm = (float64(rec.CharsTyped) / 5.0) / minutes
	if rec.CharsTyped > 0 {
		accuracy = 1 - float64(rec.Mistakes)/float64(rec.CharsTyped)
		if accuracy < 0 {
			accuracy = 0
		}
	}
	return wpm, accuracy
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// RenderSummary prints aggregate metrics for the runs.
func RenderSummary(w io.Writer, runs []model.RunRecord) error {
	if len(runs) == 0 {
		_, err := fmt.Fprintln(w, "No runs found.")
		return err
	}
	var totalWPM, totalAcc float64
	bestWPM := 0.0
	totalChars := 0
	for _, rec := range runs {
		wpm, acc := RunMetrics(rec)
		totalWPM += wpm
		totalAcc += acc
		totalChars += rec.CharsTyped
		if wpm > bestWPM {
			bestWPM = wpm
		}
	}
	count := float64(len(runs))
	if _, err := fmt.Fprintln(w, "Summary"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Runs: %d\n", len(runs)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Avg WPM: %.2f\n", totalWPM/count); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Best WPM: %.2f\n", bestWPM); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Avg Accuracy: %.2f%%\n", (totalAcc/count)*100); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Chars Typed: %d\n", totalChars); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}

// RenderHistory prints a table of stored runs, newest last, followed by a
// WPM trend sparkline.
func RenderHistory(w io.Writer, runs []model.RunRecord) error {
	if len(runs) == 0 {
		_, err := fmt.Fprintln(w, "No runs found.")
		return err
	}

	headers := []string{"When", "Label", "WPM", "Real WPM", "Accuracy", "Mistakes", "Fixed", "Duration"}
	rows := make([][]string, 0, len(runs))
	wpms := make([]float64, 0, len(runs))
	for _, rec := range runs {
		wpm, acc := RunMetrics(rec)
		wpms = append(wpms, wpm)
		label := rec.Label
		if label == "" {
			label = "-"
		}
		rows = append(rows, []string{
			rec.StartedAt.Local().Format("2006-01-02 15:04"),
			label,
			fmt.Sprintf("%.0f", rec.Speed),
			fmt.Sprintf("%.1f", wpm),
			fmt.Sprintf("%.1f%%", acc*100),
			fmt.Sprintf("%d", rec.Mistakes),
			fmt.Sprintf("%d", rec.Corrected),
			formatDuration(rec.DurationMs),
		})
	}
	rightAlign := map[int]bool{2: true, 3: true, 4: true, 5: true, 6: true, 7: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "WPM trend: %s\n\n", Sparkline(wpms)); err != nil {
		return err
	}
	return nil
}

// RenderCurves plots realized WPM and accuracy over the runs, sized to a
// given total width.
func RenderCurves(w io.Writer, runs []model.RunRecord, window, totalWidth, height int, useColor bool) error {
	if len(runs) == 0 {
		return nil
	}
	wpms := make([]float64, len(runs))
	accs := make([]float64, len(runs))
	for i, rec := range runs {
		wpm, acc := RunMetrics(rec)
		wpms[i] = wpm
		accs[i] = acc * 100
	}
	wpms = MovingAverage(wpms, window)
	accs = MovingAverage(accs, window)

	width := 0
	if totalWidth > 0 {
		width = PlotWidthFor(totalWidth)
	}
	return PlotSeries(w, "Run Curves", []Series{
		{Name: "WPM", Values: wpms},
		{Name: "Accuracy", Values: accs},
	}, width, height, useColor)
}

// RenderLetterTable prints difficult-letter counts with their share of all
// letters seen.
func RenderLetterTable(w io.Writer, counts []model.LetterCount, total int) error {
	if len(counts) == 0 {
		_, err := fmt.Fprintln(w, "No difficult letters found.")
		return err
	}
	headers := []string{"Letter", "Count", "Share"}
	rows := make([][]string, 0, len(counts))
	for _, lc := range counts {
		share := 0.0
		if total > 0 {
			share = float64(lc.Count) / float64(total)
		}
		rows = append(rows, []string{
			string(lc.Letter),
			fmt.Sprintf("%d", lc.Count),
			fmt.Sprintf("%.1f%%", share*100),
		})
	}
	rightAlign := map[int]bool{1: true, 2: true}
	if _, err := fmt.Fprintln(w, "Difficult Letters"); err != nil {
		return err
	}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}

// RenderAnalysis prints the text statistics of a source alongside the
// mistake rate the engine would project for it at the given speed.
func RenderAnalysis(w io.Writer, label string, stats textstats.Statistics, speed float64) error {
	if label != "" {
		if _, err := fmt.Fprintf(w, "Text Statistics (%s)\n", label); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprintln(w, "Text Statistics"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "Word Count: %d\n", stats.WordCount); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Unique Words: %d\n", stats.UniqueWordCount); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Average Word Length: %.2f\n", stats.AverageWordLength); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Sentence Count: %d\n", stats.SentenceCount); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Characters: %d\n", stats.CharacterCount); err != nil {
		return err
	}
	rate := mistake.Clamp01(mistake.Rate(speed, stats))
	if _, err := fmt.Fprintf(w, "Projected mistake rate at %.0f WPM: %.2f%%\n\n", speed, rate*100); err != nil {
		return err
	}

	counts := TopLetters(SelectDifficultLetters(LetterCounts(stats.LetterFrequency)), 8)
	if len(counts) == 0 {
		return nil
	}
	total := 0
	for _, count := range stats.LetterFrequency {
		total += count
	}
	return RenderLetterTable(w, counts, total)
}

// LetterCounts converts a letter frequency map into count pairs.
func LetterCounts(freq map[rune]int) []model.LetterCount {
	counts := make([]model.LetterCount, 0, len(freq))
	for letter, count := range freq {
		counts = append(counts, model.LetterCount{Letter: letter, Count: count})
	}
	sort.Slice(counts, func(i, j int) bool {
		return counts[i].Letter < counts[j].Letter
	})
	return counts
}

func formatDuration(ms int64) string {
	d := time.Duration(ms) * time.Millisecond
	return d.Round(100 * time.Millisecond).String()
}
