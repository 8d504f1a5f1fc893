package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/typewright/typewright/internal/mistake"
	"github.com/typewright/typewright/internal/typist"
)

func TestApplyEmitAndCorrection(t *testing.T) {
	m := NewModel("abc", 0, nil)

	m.apply(typist.Event{Kind: typist.EventEmit, Index: 0, Text: "a"})
	if len(m.cells) != 1 || m.sourceIndex != 1 || m.emitted != 1 {
		t.Fatalf("after clean emit: cells=%d sourceIndex=%d emitted=%d", len(m.cells), m.sourceIndex, m.emitted)
	}
	if m.cells[0].bad {
		t.Fatalf("clean emit should not mark the cell bad")
	}

	m.apply(typist.Event{Kind: typist.EventEmit, Index: 1, Text: "bb", Mistake: mistake.KindDouble})
	if len(m.cells) != 3 || m.mistakes != 1 || m.sourceIndex != 2 {
		t.Fatalf("after mistake emit: cells=%d mistakes=%d sourceIndex=%d", len(m.cells), m.mistakes, m.sourceIndex)
	}
	if !m.cells[1].bad || !m.cells[2].bad {
		t.Fatalf("mistake emit should mark every cell bad")
	}

	m.apply(typist.Event{Kind: typist.EventBackspace, Index: 1})
	m.apply(typist.Event{Kind: typist.EventBackspace, Index: 1})
	if len(m.cells) != 1 {
		t.Fatalf("after backspaces: cells=%d, want 1", len(m.cells))
	}

	m.apply(typist.Event{Kind: typist.EventEmit, Index: 1, Text: "b", Corrected: true})
	if len(m.cells) != 2 || m.cells[1].bad {
		t.Fatalf("corrected emit should append a clean cell")
	}
	if m.mistakes != 1 {
		t.Fatalf("corrected emit should not count a new mistake")
	}
}

func TestApplyPauseAdvancesAndLabels(t *testing.T) {
	m := NewModel("one two", 0, nil)
	m.sourceIndex = 2

	m.apply(typist.Event{Kind: typist.EventPause, Index: 2, Reason: typist.PauseKey, Pause: 80 * time.Millisecond})
	if m.sourceIndex != 3 {
		t.Fatalf("key pause should advance the cursor, got %d", m.sourceIndex)
	}
	if m.lastReason != "" {
		t.Fatalf("key pause should not set a reason, got %q", m.lastReason)
	}

	m.apply(typist.Event{Kind: typist.EventPause, Index: 3, Reason: typist.PauseSentence, Pause: 1200 * time.Millisecond})
	if m.lastReason != "sentence" {
		t.Fatalf("lastReason = %q, want %q", m.lastReason, "sentence")
	}
	if m.sourceIndex != 3 {
		t.Fatalf("natural pause should not advance the cursor, got %d", m.sourceIndex)
	}

	m.apply(typist.Event{Kind: typist.EventPause, Index: 3, Reason: typist.PauseFlow, Pause: time.Millisecond})
	if m.lastReason != "sentence" {
		t.Fatalf("short pauses should not replace the reason, got %q", m.lastReason)
	}
}

func TestRenderFooterSegments(t *testing.T) {
	m := NewModel("abcd", 0, nil)
	m.sourceIndex = 2
	m.emitted = 20
	m.mistakes = 1
	m.elapsed = time.Minute
	m.lastReason = "sentence"

	footer := m.renderFooter()
	for _, want := range []string{"Progress 50%", "4.0 WPM", "Mistakes 1", "pause: sentence", "q to stop"} {
		if !strings.Contains(footer, want) {
			t.Fatalf("footer %q missing %q", footer, want)
		}
	}
}

func TestRenderFooterEmptySource(t *testing.T) {
	m := NewModel("", 0, nil)
	if footer := m.renderFooter(); footer != "" {
		t.Fatalf("expected empty footer, got %q", footer)
	}
}

func TestQuitDuringCountdown(t *testing.T) {
	m := NewModel("abc", time.Second, nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg, got %T", cmd())
	}
	if m.Started() {
		t.Fatalf("aborting the countdown should not mark the session started")
	}
}

func TestDoneMsgStoresResult(t *testing.T) {
	m := NewModel("ab", 0, nil)
	m.running = true

	_, cmd := m.Update(doneMsg{result: typist.Result{Transcript: "ab"}})
	if cmd == nil {
		t.Fatalf("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg, got %T", cmd())
	}
	if !m.finished || m.Result().Transcript != "ab" {
		t.Fatalf("done message should finish the viewer and store the result")
	}
}
