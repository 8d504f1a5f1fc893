package typist

import "context"

// captureSink records emissions and deletions and replays them into a
// content buffer so the final target text is assertable.
type captureSink struct {
	sent       []string
	backspaces int
	content    []rune

	sendHook      func(call int, s string) error
	backspaceHook func(call int) error
}

func (m *captureSink) SendKeys(_ context.Context, s string) error {
	if m.sendHook != nil {
		if err := m.sendHook(len(m.sent), s); err != nil {
			return err
		}
	}
	m.sent = append(m.sent, s)
	m.content = append(m.content, []rune(s)...)
	return nil
}

func (m *captureSink) Backspace(_ context.Context) error {
	if m.backspaceHook != nil {
		if err := m.backspaceHook(m.backspaces); err != nil {
			return err
		}
	}
	m.backspaces++
	if n := len(m.content); n > 0 {
		m.content = m.content[:n-1]
	}
	return nil
}

func (m *captureSink) String() string { return string(m.content) }

// recorder collects session events for assertions.
type recorder struct {
	events []Event
}

func (r *recorder) listen(ev Event) {
	r.events = append(r.events, ev)
}

func (r *recorder) byKind(kind EventKind) []Event {
	var out []Event
	for _, ev := range r.events {
		if ev.Kind == kind {
			out = append(out, ev)
		}
	}
	return out
}

func (r *recorder) atIndex(index int) []Event {
	var out []Event
	for _, ev := range r.events {
		if ev.Index == index {
			out = append(out, ev)
		}
	}
	return out
}
