// Package eventlog streams typing session events as line-delimited JSON.
package eventlog

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/typewright/typewright/internal/mistake"
	"github.com/typewright/typewright/internal/typist"
)

// Record is the wire form of a single session event.
type Record struct {
	At        float64 `json:"at"`
	Kind      string  `json:"kind"`
	Index     int     `json:"index"`
	Text      string  `json:"text,omitempty"`
	Mistake   string  `json:"mistake,omitempty"`
	Corrected bool    `json:"corrected,omitempty"`
	Reason    string  `json:"reason,omitempty"`
	Pause     float64 `json:"pause_seconds,omitempty"`
}

// Writer encodes session events to an io.Writer, one JSON object per line.
// The first encoding error is sticky and suppresses further writes.
type Writer struct {
	enc *json.Encoder
	err error
}

// NewWriter returns a Writer emitting NDJSON records to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{enc: json.NewEncoder(w)}
}

// Record writes a single event.
func (w *Writer) Record(ev typist.Event) {
	if w.err != nil {
		return
	}
	rec := Record{
		At:        ev.Elapsed.Seconds(),
		Kind:      ev.Kind.String(),
		Index:     ev.Index,
		Text:      ev.Text,
		Corrected: ev.Corrected,
		Reason:    string(ev.Reason),
		Pause:     ev.Pause.Seconds(),
	}
	if ev.Mistake != mistake.KindNone {
		rec.Mistake = ev.Mistake.String()
	}
	if err := w.enc.Encode(rec); err != nil {
		w.err = fmt.Errorf("failed to encode event: %w", err)
	}
}

// Err reports the first encoding error, if any.
func (w *Writer) Err() error {
	return w.err
}
