// Package sink provides output sinks for typing sessions.
package sink

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Terminal ghost-types into a terminal-like writer. Backspace erases the
// last emitted character cell by cell.
type Terminal struct {
	w      io.Writer
	widths []int
}

// NewTerminal returns a Terminal sink writing to w.
func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{w: w}
}

// SendKeys writes s and remembers the cell width of each rune so a later
// Backspace can erase it.
func (t *Terminal) SendKeys(_ context.Context, s string) error {
	if _, err := io.WriteString(t.w, s); err != nil {
		return fmt.Errorf("failed to write keys: %w", err)
	}
	for _, r := range s {
		t.widths = append(t.widths, runewidth.RuneWidth(r))
	}
	return nil
}

// Backspace erases the most recently emitted character. Zero-width runes
// leave the display untouched.
func (t *Terminal) Backspace(_ context.Context) error {
	if len(t.widths) == 0 {
		return nil
	}
	width := t.widths[len(t.widths)-1]
	t.widths = t.widths[:len(t.widths)-1]
	if width == 0 {
		return nil
	}
	erase := strings.Repeat("\b", width) + strings.Repeat(" ", width) + strings.Repeat("\b", width)
	if _, err := io.WriteString(t.w, erase); err != nil {
		return fmt.Errorf("failed to erase: %w", err)
	}
	return nil
}

// Capture records emissions in memory. It backs dry runs and tests.
type Capture struct {
	keys    []string
	content []rune
	deletes int
}

// NewCapture returns an empty Capture sink.
func NewCapture() *Capture {
	return &Capture{}
}

// SendKeys appends s to the captured content.
func (c *Capture) SendKeys(_ context.Context, s string) error {
	c.keys = append(c.keys, s)
	c.content = append(c.content, []rune(s)...)
	return nil
}

// Backspace removes the most recently captured character.
func (c *Capture) Backspace(_ context.Context) error {
	c.deletes++
	if n := len(c.content); n > 0 {
		c.content = c.content[:n-1]
	}
	return nil
}

// Contents returns the captured text after all emissions and deletions.
func (c *Capture) Contents() string {
	return string(c.content)
}

// Keys returns every emission in order.
func (c *Capture) Keys() []string {
	return c.keys
}

// Deletes returns the number of deletions received.
func (c *Capture) Deletes() int {
	return c.deletes
}
