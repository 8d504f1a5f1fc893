package eventlog

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/typewright/typewright/internal/mistake"
	"github.com/typewright/typewright/internal/typist"
)

func TestWriterEncodesEvents(t *testing.T) {
	var buf strings.Builder
	w := NewWriter(&buf)

	w.Record(typist.Event{
		Kind:    typist.EventEmit,
		Index:   0,
		Text:    "h",
		Elapsed: 100 * time.Millisecond,
	})
	w.Record(typist.Event{
		Kind:    typist.EventPause,
		Index:   0,
		Reason:  typist.PauseKey,
		Pause:   40 * time.Millisecond,
		Elapsed: 100 * time.Millisecond,
	})
	w.Record(typist.Event{
		Kind:    typist.EventEmit,
		Index:   1,
		Text:    "w",
		Mistake: mistake.KindTypo,
		Elapsed: 240 * time.Millisecond,
	})

	if err := w.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}

	var first Record
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("failed to decode first line: %v", err)
	}
	if first.Kind != "emit" || first.Text != "h" || first.At != 0.1 {
		t.Errorf("first record = %+v", first)
	}
	if first.Mistake != "" {
		t.Errorf("clean emit carried mistake %q", first.Mistake)
	}

	var second Record
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatalf("failed to decode second line: %v", err)
	}
	if second.Kind != "pause" || second.Reason != "key" || second.Pause != 0.04 {
		t.Errorf("second record = %+v", second)
	}

	var third Record
	if err := json.Unmarshal([]byte(lines[2]), &third); err != nil {
		t.Fatalf("failed to decode third line: %v", err)
	}
	if third.Mistake != "typo" {
		t.Errorf("Mistake = %q, want %q", third.Mistake, "typo")
	}
}

func TestWriterStopsAfterError(t *testing.T) {
	w := NewWriter(failingWriter{})

	w.Record(typist.Event{Kind: typist.EventEmit, Text: "a"})
	if w.Err() == nil {
		t.Fatal("expected sticky error after failed write")
	}
	w.Record(typist.Event{Kind: typist.EventEmit, Text: "b"})
	if !errors.Is(w.Err(), errSink) {
		t.Errorf("Err() = %v, want wrapped errSink", w.Err())
	}
}

var errSink = errors.New("sink closed")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errSink
}
