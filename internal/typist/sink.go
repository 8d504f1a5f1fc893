package typist

import "context"

// Sink receives the simulated keystrokes at the typing target.
type Sink interface {
	// SendKeys emits s at the target.
	SendKeys(ctx context.Context, s string) error
	// Backspace deletes the most recently emitted character.
	Backspace(ctx context.Context) error
}
