// Package tui provides the Bubble Tea session viewer.
package tui

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/typewright/typewright/internal/mistake"
	"github.com/typewright/typewright/internal/typist"
)

const (
	tickInterval = 100 * time.Millisecond
	// Pauses shorter than this are keystroke jitter, not worth labelling.
	reasonThreshold = 150 * time.Millisecond
)

var (
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	cursorStyle      = pendingStyle.Copy().Underline(true)
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	countdownStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
)

// SetTheme switches the display palette. Unknown names keep the dark
// default.
func SetTheme(name string) {
	if name != "light" {
		return
	}
	correctStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#1A1A1A"))
	incorrectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#D4380D"))
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6A6A6"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#AD6800"))
	cursorStyle = pendingStyle.Copy().Underline(true)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	countdownStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#AD6800")).Bold(true)
}

// RunFunc drives a typing session, reporting events to listen. It is a
// closure over the configured engine so the viewer never builds one.
type RunFunc func(ctx context.Context, listen typist.Listener) (typist.Result, error)

type eventMsg struct {
	event typist.Event
}

type doneMsg struct {
	result typist.Result
	err    error
}

type tickMsg time.Time

// Model implements the Bubble Tea session viewer.
type Model struct {
	source    []rune
	run       RunFunc
	countdown time.Duration

	cells       []typedCell
	sourceIndex int
	emitted     int
	mistakes    int
	lastReason  string

	running   bool
	finished  bool
	startedAt time.Time
	elapsed   time.Duration

	events chan tea.Msg
	cancel context.CancelFunc

	result typist.Result
	err    error

	width  int
	height int
}

// NewModel constructs a session viewer for the given source text.
func NewModel(text string, countdown time.Duration, run RunFunc) *Model {
	return &Model{
		source:    []rune(text),
		run:       run,
		countdown: countdown,
		events:    make(chan tea.Msg, 64),
	}
}

// Result returns the session outcome once the viewer has quit.
func (m *Model) Result() typist.Result {
	return m.result
}

// Started reports whether the engine ever began typing. It stays false
// when the viewer is aborted during the countdown.
func (m *Model) Started() bool {
	return m.running || m.finished
}

// Err returns the session error, if any, once the viewer has quit.
func (m *Model) Err() error {
	return m.err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.tick()}
	if m.countdown <= 0 {
		cmds = append(cmds, m.startRun())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		return m.handleTick()
	case eventMsg:
		m.apply(msg.event)
		return m, m.readEvent
	case doneMsg:
		m.result = msg.result
		m.err = msg.err
		m.running = false
		m.finished = true
		return m, tea.Quit
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			if m.running {
				// Stop the engine; the final result arrives as doneMsg.
				m.cancel()
				return m, nil
			}
			if !m.finished {
				return m, tea.Quit
			}
			return m, nil
		default:
			return m, nil
		}
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if !m.running && !m.finished && m.countdown > 0 {
		remaining := int(math.Ceil(m.countdown.Seconds()))
		msg := countdownStyle.Render(fmt.Sprintf("Typing begins in %d...", remaining))
		hint := footerStyle.Render("q to abort")
		content := msg + "\n\n" + hint
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}

	styled := buildStyledCells(m.cells, m.source, m.sourceIndex)
	contentWidth := int(float64(m.width) * 0.70)
	if contentWidth < 1 {
		contentWidth = 1
	}
	wrapped := wrapStyledRunes(styled, contentWidth)
	content := lipgloss.NewStyle().Width(contentWidth).Render(wrapped)
	footer := m.renderFooter()
	if footer == "" || m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	bodyHeight := m.height - 1
	body := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) handleTick() (tea.Model, tea.Cmd) {
	if m.finished {
		return m, nil
	}
	cmds := []tea.Cmd{m.tick()}
	if m.running {
		m.elapsed = time.Since(m.startedAt)
	} else {
		m.countdown -= tickInterval
		if m.countdown <= 0 {
			cmds = append(cmds, m.startRun())
		}
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) startRun() tea.Cmd {
	if m.running {
		return nil
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.running = true
	m.startedAt = time.Now()
	go func() {
		result, err := m.run(ctx, m.feed)
		m.events <- doneMsg{result: result, err: err}
	}()
	return m.readEvent
}

func (m *Model) feed(ev typist.Event) {
	m.events <- eventMsg{event: ev}
}

func (m *Model) readEvent() tea.Msg {
	return <-m.events
}

func (m *Model) apply(ev typist.Event) {
	switch ev.Kind {
	case typist.EventEmit:
		bad := ev.Mistake != mistake.KindNone
		for _, r := range ev.Text {
			m.cells = append(m.cells, typedCell{r: r, bad: bad})
			m.emitted++
		}
		if bad {
			m.mistakes++
		}
		m.advance(ev.Index)
	case typist.EventBackspace:
		if n := len(m.cells); n > 0 {
			m.cells = m.cells[:n-1]
		}
	case typist.EventPause:
		if ev.Reason == typist.PauseKey {
			m.advance(ev.Index)
		} else if ev.Pause >= reasonThreshold {
			m.lastReason = string(ev.Reason)
		}
	}
}

func (m *Model) advance(index int) {
	if next := index + 1; next > m.sourceIndex {
		m.sourceIndex = next
	}
}

func (m *Model) renderFooter() string {
	if len(m.source) == 0 {
		return ""
	}
	progress := int(float64(m.sourceIndex) / float64(len(m.source)) * 100)
	if progress > 100 {
		progress = 100
	}
	segments := []string{fmt.Sprintf("Progress %d%%", progress)}
	if minutes := m.elapsed.Minutes(); minutes > 0 {
		wpm := (float64(m.emitted) / 5.0) / minutes
		segments = append(segments, fmt.Sprintf("%.1f WPM", wpm))
	}
	segments = append(segments, fmt.Sprintf("Mistakes %d", m.mistakes))
	if m.lastReason != "" {
		segments = append(segments, fmt.Sprintf("pause: %s", m.lastReason))
	}
	segments = append(segments, "q to stop")
	return footerStyle.Render(strings.Join(segments, "  "))
}
