package typist

import (
	"time"

	"github.com/typewright/typewright/internal/mistake"
)

// EventKind classifies session events.
type EventKind int

const (
	// EventEmit is text sent to the sink.
	EventEmit EventKind = iota
	// EventBackspace is one deletion sent to the sink.
	EventBackspace
	// EventPause is a suspension; it is reported before the suspension
	// begins, carrying the intended duration.
	EventPause
)

func (k EventKind) String() string {
	switch k {
	case EventEmit:
		return "emit"
	case EventBackspace:
		return "backspace"
	case EventPause:
		return "pause"
	default:
		return "unknown"
	}
}

// PauseReason names what caused a suspension.
type PauseReason string

const (
	// PauseSentence follows a word ending a sentence.
	PauseSentence PauseReason = "sentence"
	// PauseClause follows a word ending with clause punctuation.
	PauseClause PauseReason = "clause"
	// PauseDifficulty precedes a difficult or unfamiliar word.
	PauseDifficulty PauseReason = "difficulty"
	// PauseDistraction is a rare long drift away from the keyboard.
	PauseDistraction PauseReason = "distraction"
	// PauseFlow is the negligible beat between ordinary words.
	PauseFlow PauseReason = "flow"
	// PauseCorrection is the hesitation before fixing a mistake.
	PauseCorrection PauseReason = "correction"
	// PauseBackspace follows each deletion during a correction.
	PauseBackspace PauseReason = "backspace"
	// PauseKey is the inter-character typing delay.
	PauseKey PauseReason = "key"
)

// Event is one observable step of a typing session. Listeners run
// synchronously on the session goroutine.
type Event struct {
	Kind      EventKind
	Index     int           // source character index
	Text      string        // emitted text, raw glyphs
	Mistake   mistake.Kind  // corruption kind, KindNone for clean emissions
	Corrected bool          // emission that replaces a corrected mistake
	Reason    PauseReason   // set for EventPause
	Pause     time.Duration // intended suspension, for EventPause
	Elapsed   time.Duration // session time at the moment of the event
}

// Listener observes session events.
type Listener func(Event)
