// Package typist drives character-by-character typing simulation: pacing,
// word-boundary pauses, mistake injection, and self-correction.
package typist

import (
	"context"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/typewright/typewright/internal/mistake"
	"github.com/typewright/typewright/internal/textstats"
	"github.com/typewright/typewright/internal/words"
)

// wordCloseSet are the punctuation characters that close the running word
// buffer.
const wordCloseSet = `.,!?;:'"`

// defaultCorrectionChance is the probability a mistake is noticed and fixed.
const defaultCorrectionChance = 0.8

// glyphNormalizer maps curly quote glyphs to the plain forms a sink can
// produce. Applied at emission only; the transcript keeps raw glyphs.
var glyphNormalizer = strings.NewReplacer(
	"“", `"`,
	"”", `"`,
	"‘", "'",
	"’", "'",
)

// Config holds the parameters of one typing session.
type Config struct {
	// Speed is the nominal typing speed in words per minute.
	Speed float64
	// MistakeRate is the per-character corruption probability. It is
	// clamped to [0, 1] when the Simulator is built.
	MistakeRate float64
	// Fatigue slows typing as more characters are typed.
	Fatigue bool
	// Stats is the analysis of the passage being typed.
	Stats textstats.Statistics
}

// RunStats counts the observable activity of a session.
type RunStats struct {
	CharsTyped  int
	Mistakes    int
	Corrected   int
	Uncorrected int
	Backspaces  int
	Pauses      int
}

// Result is the outcome of a session. It is populated even when the session
// was cancelled or the sink failed.
type Result struct {
	Transcript string
	Elapsed    time.Duration
	Stats      RunStats
}

// Simulator types passages into a Sink with human pacing and mistakes. It is
// not safe for concurrent use; one session owns the sink at a time.
type Simulator struct {
	cfg        Config
	rate       float64
	correction float64
	sink       Sink
	clock      Clock
	rnd        *rand.Rand
	gen        *mistake.Generator
	listener   Listener
	logger     *zap.Logger
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithClock replaces the wall clock, for dry runs and tests.
func WithClock(c Clock) Option {
	return func(s *Simulator) { s.clock = c }
}

// WithSeed seeds the random source for reproducible sessions.
func WithSeed(seed int64) Option {
	return func(s *Simulator) { s.rnd = rand.New(rand.NewSource(seed)) }
}

// WithListener registers an observer for session events.
func WithListener(l Listener) Option {
	return func(s *Simulator) { s.listener = l }
}

// WithLogger attaches a logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Simulator) { s.logger = logger }
}

// WithCorrectionChance overrides the probability that a mistake is
// self-corrected.
func WithCorrectionChance(p float64) Option {
	return func(s *Simulator) { s.correction = p }
}

// New validates cfg and builds a Simulator typing into sink.
func New(sink Sink, cfg Config, opts ...Option) (*Simulator, error) {
	s := &Simulator{
		cfg:        cfg,
		correction: defaultCorrectionChance,
		sink:       sink,
		clock:      SystemClock{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rnd == nil {
		s.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	s.rate = mistake.Clamp01(cfg.MistakeRate)
	s.gen = mistake.NewGenerator(s.rnd)
	return s, nil
}

func (s *Simulator) validate() error {
	if s.sink == nil {
		return &InvalidConfigError{Field: "sink", Reason: "an output sink is required"}
	}
	if math.IsNaN(s.cfg.Speed) || math.IsInf(s.cfg.Speed, 0) || s.cfg.Speed <= 0 {
		return &InvalidConfigError{Field: "speed", Value: formatFloat(s.cfg.Speed), Reason: "typing speed must be a positive number"}
	}
	if math.IsNaN(s.cfg.MistakeRate) {
		return &InvalidConfigError{Field: "error-rate", Value: "NaN", Reason: "mistake rate must be a number"}
	}
	if math.IsNaN(s.correction) || s.correction < 0 || s.correction > 1 {
		return &InvalidConfigError{Field: "correction-chance", Value: formatFloat(s.correction), Reason: "correction chance must be within [0, 1]"}
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

type session struct {
	runes      []rune
	fields     []string
	fieldIndex int
	word       []rune
	baseDelay  float64 // seconds per character before variance
	start      time.Time
	transcript []rune
	stats      RunStats
}

func (sess *session) elapsed(clock Clock) time.Duration {
	return clock.Now().Sub(sess.start)
}

// Simulate types text into the sink. The returned Result carries whatever
// transcript, timing, and counters accumulated, even when err reports a
// cancellation or sink failure.
func (s *Simulator) Simulate(ctx context.Context, text string) (*Result, error) {
	sess := &session{
		runes:     []rune(text),
		fields:    strings.Fields(text),
		baseDelay: (60 / (s.cfg.Speed * 7)) * 0.5,
		start:     s.clock.Now(),
	}
	sess.transcript = make([]rune, 0, len(sess.runes))

	s.logger.Info("typing session started",
		zap.Float64("wpm", s.cfg.Speed),
		zap.Float64("mistake_rate", s.rate),
		zap.Bool("fatigue", s.cfg.Fatigue),
		zap.Int("chars", len(sess.runes)),
	)

	var err error
	for i, r := range sess.runes {
		if err = s.typeRune(ctx, sess, i, r); err != nil {
			break
		}
	}

	result := &Result{
		Transcript: string(sess.transcript),
		Elapsed:    s.clock.Now().Sub(sess.start),
		Stats:      sess.stats,
	}
	if err != nil {
		s.logger.Info("typing session aborted",
			zap.Error(err),
			zap.Duration("elapsed", result.Elapsed),
			zap.Int("chars_typed", result.Stats.CharsTyped),
		)
		return result, err
	}
	s.logger.Info("typing session finished",
		zap.Duration("elapsed", result.Elapsed),
		zap.Int("mistakes", result.Stats.Mistakes),
		zap.Int("corrected", result.Stats.Corrected),
	)
	return result, nil
}

func (s *Simulator) typeRune(ctx context.Context, sess *session, i int, r rune) error {
	s.trackWord(sess, r)
	sess.stats.CharsTyped++

	if unicode.IsSpace(r) || i == len(sess.runes)-1 {
		if sess.fieldIndex < len(sess.fields) {
			word := sess.fields[sess.fieldIndex]
			d, reason := s.naturalPause(word)
			if err := s.pause(ctx, sess, i, d, reason); err != nil {
				return err
			}
			sess.fieldIndex++
		}
	}

	if s.rnd.Float64() < s.rate {
		if err := s.injectMistake(ctx, sess, i, r); err != nil {
			return err
		}
	} else if err := s.send(ctx, sess, i, string(r), mistake.KindNone, false); err != nil {
		return err
	}

	variance := s.uniform(0.6, 1.4)
	delay := sess.baseDelay * variance
	if s.cfg.Fatigue {
		delay *= 1 + float64(sess.stats.CharsTyped)*0.001
	}
	return s.pause(ctx, sess, i, secondsToDuration(delay), PauseKey)
}

// trackWord accumulates lowercase letters into the word buffer and closes it
// on whitespace or clause punctuation. The resulting pace factor is
// informational; it never feeds the inter-character delay.
func (s *Simulator) trackWord(sess *session, r rune) {
	if unicode.IsLetter(r) {
		sess.word = append(sess.word, unicode.ToLower(r))
		return
	}
	if unicode.IsSpace(r) || strings.ContainsRune(wordCloseSet, r) {
		closed := string(sess.word)
		sess.word = sess.word[:0]
		factor := words.Factor(closed)
		if r == '\'' || r == '"' {
			factor *= 1.2
		}
		if closed != "" {
			s.logger.Debug("word closed", zap.String("word", closed), zap.Float64("pace_factor", factor))
		}
	}
}

func (s *Simulator) injectMistake(ctx context.Context, sess *session, i int, r rune) error {
	var next rune
	hasNext := i+1 < len(sess.runes)
	if hasNext {
		next = sess.runes[i+1]
	}
	corrupted, kind := s.gen.Corrupt(r, next, hasNext)
	sess.stats.Mistakes++
	s.logger.Debug("mistake injected",
		zap.Int("index", i),
		zap.String("kind", kind.String()),
		zap.String("typed", corrupted),
	)
	if err := s.send(ctx, sess, i, corrupted, kind, false); err != nil {
		return err
	}

	if s.rnd.Float64() < s.correction {
		if err := s.correct(ctx, sess, i, corrupted, r); err != nil {
			return err
		}
		sess.stats.Corrected++
		return nil
	}
	sess.stats.Uncorrected++
	return nil
}

// correct deletes the corrupted emission one character at a time, then types
// the intended character. A skip corruption deletes nothing.
func (s *Simulator) correct(ctx context.Context, sess *session, i int, corrupted string, r rune) error {
	if err := s.pause(ctx, sess, i, s.uniformDuration(0.1, 0.3), PauseCorrection); err != nil {
		return err
	}
	for range corrupted {
		if err := s.backspace(ctx, sess, i); err != nil {
			return err
		}
		if err := s.pause(ctx, sess, i, 50*time.Millisecond, PauseBackspace); err != nil {
			return err
		}
	}
	return s.send(ctx, sess, i, string(r), mistake.KindNone, true)
}

func (s *Simulator) naturalPause(word string) (time.Duration, PauseReason) {
	last, _ := utf8.DecodeLastRuneInString(word)
	switch {
	case strings.ContainsRune(".!?", last):
		return s.uniformDuration(0.8, 2.5), PauseSentence
	case strings.ContainsRune(`,;:"'`, last):
		return s.uniformDuration(0.2, 0.5), PauseClause
	case s.wordDifficulty(word) > 1.5:
		return s.uniformDuration(0.01, 0.03), PauseDifficulty
	case s.rnd.Intn(500) < 5:
		return s.uniformDuration(8, 15), PauseDistraction
	default:
		return s.uniformDuration(0.00001, 0.00005), PauseFlow
	}
}

// wordDifficulty scores a word by length relative to the passage average,
// raised for words absent from the passage's token frequencies.
func (s *Simulator) wordDifficulty(word string) float64 {
	length := float64(utf8.RuneCountInString(word))
	difficulty := (length / s.cfg.Stats.AverageWordLength) * 1.5
	if _, known := s.cfg.Stats.WordFrequency[strings.ToLower(word)]; !known {
		difficulty *= 1.5
	}
	return difficulty
}

func (s *Simulator) send(ctx context.Context, sess *session, i int, text string, kind mistake.Kind, corrected bool) error {
	if text == "" {
		return nil
	}
	if err := s.sink.SendKeys(ctx, glyphNormalizer.Replace(text)); err != nil {
		return &SinkUnavailableError{Op: "send", Err: err}
	}
	sess.transcript = append(sess.transcript, []rune(text)...)
	s.notify(Event{
		Kind:      EventEmit,
		Index:     i,
		Text:      text,
		Mistake:   kind,
		Corrected: corrected,
		Elapsed:   sess.elapsed(s.clock),
	})
	return nil
}

func (s *Simulator) backspace(ctx context.Context, sess *session, i int) error {
	if err := s.sink.Backspace(ctx); err != nil {
		return &SinkUnavailableError{Op: "backspace", Err: err}
	}
	if n := len(sess.transcript); n > 0 {
		sess.transcript = sess.transcript[:n-1]
	}
	sess.stats.Backspaces++
	s.notify(Event{Kind: EventBackspace, Index: i, Elapsed: sess.elapsed(s.clock)})
	return nil
}

func (s *Simulator) pause(ctx context.Context, sess *session, i int, d time.Duration, reason PauseReason) error {
	s.notify(Event{Kind: EventPause, Index: i, Reason: reason, Pause: d, Elapsed: sess.elapsed(s.clock)})
	if err := s.clock.Sleep(ctx, d); err != nil {
		return err
	}
	sess.stats.Pauses++
	return nil
}

func (s *Simulator) notify(ev Event) {
	if s.listener != nil {
		s.listener(ev)
	}
}

func (s *Simulator) uniform(min, max float64) float64 {
	return s.rnd.Float64()*(max-min) + min
}

func (s *Simulator) uniformDuration(min, max float64) time.Duration {
	return secondsToDuration(s.uniform(min, max))
}

func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}
