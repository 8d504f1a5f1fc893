package typist

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typewright/typewright/internal/mistake"
	"github.com/typewright/typewright/internal/textstats"
)

func newTestSimulator(t *testing.T, sink Sink, cfg Config, opts ...Option) (*Simulator, *VirtualClock) {
	t.Helper()
	clock := NewVirtualClock()
	opts = append([]Option{WithClock(clock), WithSeed(12345)}, opts...)
	sim, err := New(sink, cfg, opts...)
	require.NoError(t, err)
	return sim, clock
}

func TestSimulateCleanTranscript(t *testing.T) {
	text := "He said “hi” and ‘bye’."
	sink := &captureSink{}
	sim, _ := newTestSimulator(t, sink, Config{
		Speed:       300,
		MistakeRate: 0,
		Stats:       textstats.Analyze(text),
	})

	res, err := sim.Simulate(context.Background(), text)
	require.NoError(t, err)

	// The transcript keeps the raw glyphs; the sink sees plain quotes.
	assert.Equal(t, text, res.Transcript)
	assert.Equal(t, `He said "hi" and 'bye'.`, sink.String())
	assert.Equal(t, len([]rune(text)), res.Stats.CharsTyped)
	assert.Zero(t, res.Stats.Mistakes)
	assert.Zero(t, sink.backspaces)
}

func TestSimulateEmptyText(t *testing.T) {
	sink := &captureSink{}
	rec := &recorder{}
	sim, _ := newTestSimulator(t, sink, Config{Speed: 100}, WithListener(rec.listen))

	res, err := sim.Simulate(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, res.Transcript)
	assert.Zero(t, res.Stats.CharsTyped)
	assert.Empty(t, rec.events)
}

func TestSimulateAllMistakesCorrected(t *testing.T) {
	text := "The quick brown fox jumps over the lazy dog."
	rec := &recorder{}
	sink := &captureSink{}
	sim, _ := newTestSimulator(t, sink, Config{
		Speed:       200,
		MistakeRate: 1,
		Stats:       textstats.Analyze(text),
	}, WithCorrectionChance(1), WithListener(rec.listen))

	res, err := sim.Simulate(context.Background(), text)
	require.NoError(t, err)

	assert.Equal(t, text, res.Transcript)
	assert.Equal(t, text, sink.String())
	assert.Equal(t, len([]rune(text)), res.Stats.Mistakes)
	assert.Equal(t, res.Stats.Mistakes, res.Stats.Corrected)
	assert.Zero(t, res.Stats.Uncorrected)

	emits := len(rec.byKind(EventEmit))
	deletes := len(rec.byKind(EventBackspace))
	assert.Greater(t, emits+deletes, len([]rune(text)))
}

func TestSimulateClampsExcessiveRate(t *testing.T) {
	text := "clamp me"
	sink := &captureSink{}
	sim, _ := newTestSimulator(t, sink, Config{
		Speed:       200,
		MistakeRate: 5,
		Stats:       textstats.Analyze(text),
	}, WithCorrectionChance(1))

	res, err := sim.Simulate(context.Background(), text)
	require.NoError(t, err)
	assert.Equal(t, text, res.Transcript)
	assert.Equal(t, len([]rune(text)), res.Stats.Mistakes)
}

func TestSkipCorrectionNetsSingleChar(t *testing.T) {
	text := strings.Repeat("abcdefghij", 20)
	rec := &recorder{}
	sink := &captureSink{}
	sim, _ := newTestSimulator(t, sink, Config{
		Speed:       200,
		MistakeRate: 1,
		Stats:       textstats.Analyze(text),
	}, WithCorrectionChance(1), WithListener(rec.listen))

	res, err := sim.Simulate(context.Background(), text)
	require.NoError(t, err)
	require.Equal(t, text, res.Transcript)

	runes := []rune(text)
	skips := 0
	for i := range runes {
		var emits, deletes int
		var only Event
		for _, ev := range rec.atIndex(i) {
			switch ev.Kind {
			case EventEmit:
				emits++
				only = ev
			case EventBackspace:
				deletes++
			}
		}
		// A skipped character emits nothing, so the only emission left is
		// the corrected one, with no deletions in between.
		if emits == 1 && only.Corrected && only.Mistake == mistake.KindNone {
			skips++
			assert.Zero(t, deletes, "index %d", i)
			assert.Equal(t, string(runes[i]), only.Text, "index %d", i)
		}
	}
	require.Greater(t, skips, 0, "no skip mistakes drawn over %d characters", len(runes))
}

func TestSimulateTransposeUsesNextChar(t *testing.T) {
	text := strings.Repeat("abcdefghij", 20)
	rec := &recorder{}
	sink := &captureSink{}
	sim, _ := newTestSimulator(t, sink, Config{
		Speed:       200,
		MistakeRate: 1,
		Stats:       textstats.Analyze(text),
	}, WithCorrectionChance(0), WithListener(rec.listen))

	_, err := sim.Simulate(context.Background(), text)
	require.NoError(t, err)

	runes := []rune(text)
	transposes := 0
	for _, ev := range rec.byKind(EventEmit) {
		if ev.Mistake != mistake.KindTranspose {
			continue
		}
		transposes++
		want := string(runes[ev.Index])
		if ev.Index+1 < len(runes) {
			want += string(runes[ev.Index+1])
		}
		assert.Equal(t, want, ev.Text, "index %d", ev.Index)
	}
	require.Greater(t, transposes, 0, "no transpose mistakes drawn")
}

func TestSimulateSeededDeterminism(t *testing.T) {
	text := "Determinism, please! And also: some 'quotes' to spice it up."
	stats := textstats.Analyze(text)

	run := func() (*Result, []Event) {
		rec := &recorder{}
		sink := &captureSink{}
		clock := NewVirtualClock()
		sim, err := New(sink, Config{Speed: 80, MistakeRate: 0.3, Fatigue: true, Stats: stats},
			WithClock(clock), WithSeed(99), WithListener(rec.listen))
		require.NoError(t, err)
		res, err := sim.Simulate(context.Background(), text)
		require.NoError(t, err)
		return res, rec.events
	}

	resA, eventsA := run()
	resB, eventsB := run()

	assert.Equal(t, resA.Transcript, resB.Transcript)
	assert.Equal(t, resA.Elapsed, resB.Elapsed)
	assert.Equal(t, resA.Stats, resB.Stats)
	require.Equal(t, len(eventsA), len(eventsB))
	for i := range eventsA {
		assert.Equal(t, eventsA[i], eventsB[i], "event %d", i)
	}
}

func TestSimulateWordBoundaryPauses(t *testing.T) {
	text := "Hello world. Bye!"
	rec := &recorder{}
	sink := &captureSink{}
	sim, _ := newTestSimulator(t, sink, Config{
		Speed:       200,
		MistakeRate: 0,
		Stats:       textstats.Analyze(text),
	}, WithListener(rec.listen))

	_, err := sim.Simulate(context.Background(), text)
	require.NoError(t, err)

	var wordPauses []Event
	for _, ev := range rec.byKind(EventPause) {
		if ev.Reason != PauseKey {
			wordPauses = append(wordPauses, ev)
		}
	}
	require.Len(t, wordPauses, 3)

	// "Hello" is long relative to the passage average, "world." and "Bye!"
	// end sentences.
	assert.Equal(t, PauseDifficulty, wordPauses[0].Reason)
	assert.Equal(t, PauseSentence, wordPauses[1].Reason)
	assert.Equal(t, PauseSentence, wordPauses[2].Reason)

	assert.GreaterOrEqual(t, wordPauses[0].Pause, 10*time.Millisecond)
	assert.LessOrEqual(t, wordPauses[0].Pause, 30*time.Millisecond)
	for _, ev := range wordPauses[1:] {
		assert.GreaterOrEqual(t, ev.Pause, 800*time.Millisecond)
		assert.LessOrEqual(t, ev.Pause, 2500*time.Millisecond)
	}
}

func TestSimulateFatigueSlowsSession(t *testing.T) {
	text := strings.Repeat("steady typing rhythm ", 10)
	stats := textstats.Analyze(text)

	elapsed := func(fatigue bool) time.Duration {
		sink := &captureSink{}
		clock := NewVirtualClock()
		sim, err := New(sink, Config{Speed: 120, MistakeRate: 0, Fatigue: fatigue, Stats: stats},
			WithClock(clock), WithSeed(7))
		require.NoError(t, err)
		res, err := sim.Simulate(context.Background(), text)
		require.NoError(t, err)
		return res.Elapsed
	}

	assert.Greater(t, elapsed(true), elapsed(false))
}

func TestSimulateCancelledBeforeFirstPause(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	text := "ab"
	sink := &captureSink{}
	sim, _ := newTestSimulator(t, sink, Config{Speed: 100, Stats: textstats.Analyze(text)})

	res, err := sim.Simulate(ctx, text)
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
	assert.Equal(t, "a", res.Transcript)
	assert.Equal(t, 1, res.Stats.CharsTyped)
}

func TestSimulateCancelledMidSleep(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	text := "slow"
	sink := &captureSink{}
	sim, err := New(sink, Config{Speed: 1, Stats: textstats.Analyze(text)}, WithSeed(1))
	require.NoError(t, err)

	start := time.Now()
	res, err := sim.Simulate(ctx, text)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 2*time.Second)
	assert.NotEmpty(t, res.Transcript)
}

func TestSimulateSinkFailurePreservesTranscript(t *testing.T) {
	boom := errors.New("target window lost focus")
	sink := &captureSink{
		sendHook: func(call int, _ string) error {
			if call == 2 {
				return boom
			}
			return nil
		},
	}
	text := "abcdef"
	sim, _ := newTestSimulator(t, sink, Config{Speed: 200, Stats: textstats.Analyze(text)})

	res, err := sim.Simulate(context.Background(), text)
	var sinkErr *SinkUnavailableError
	require.ErrorAs(t, err, &sinkErr)
	assert.Equal(t, "send", sinkErr.Op)
	assert.ErrorIs(t, err, boom)

	assert.Equal(t, "ab", res.Transcript)
	assert.Equal(t, 3, res.Stats.CharsTyped)
	assert.Greater(t, res.Elapsed, time.Duration(0))
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	sink := &captureSink{}
	cases := []struct {
		name  string
		build func() (*Simulator, error)
		field string
	}{
		{
			name:  "nil sink",
			build: func() (*Simulator, error) { return New(nil, Config{Speed: 100}) },
			field: "sink",
		},
		{
			name:  "zero speed",
			build: func() (*Simulator, error) { return New(sink, Config{Speed: 0}) },
			field: "speed",
		},
		{
			name:  "negative speed",
			build: func() (*Simulator, error) { return New(sink, Config{Speed: -20}) },
			field: "speed",
		},
		{
			name: "correction chance out of range",
			build: func() (*Simulator, error) {
				return New(sink, Config{Speed: 100}, WithCorrectionChance(1.5))
			},
			field: "correction-chance",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.build()
			var cfgErr *InvalidConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tc.field, cfgErr.Field)
		})
	}
}

func TestSimulateEventOrder(t *testing.T) {
	text := "ab"
	rec := &recorder{}
	sink := &captureSink{}
	sim, _ := newTestSimulator(t, sink, Config{
		Speed:       200,
		MistakeRate: 0,
		Stats:       textstats.Analyze(text),
	}, WithListener(rec.listen))

	_, err := sim.Simulate(context.Background(), text)
	require.NoError(t, err)

	kinds := make([]string, 0, len(rec.events))
	for _, ev := range rec.events {
		kinds = append(kinds, fmt.Sprintf("%v", ev.Kind))
	}
	require.Equal(t, []string{"emit", "pause", "pause", "emit", "pause"}, kinds)

	assert.Equal(t, PauseKey, rec.events[1].Reason)
	assert.NotEqual(t, PauseKey, rec.events[2].Reason)
	assert.Equal(t, PauseKey, rec.events[4].Reason)
}
