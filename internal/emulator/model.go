package emulator

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/muurk/scrollprompt/internal/display"
	"github.com/muurk/scrollprompt/internal/logging"
	"github.com/muurk/scrollprompt/internal/prompt"
)

// Messages from the prompt goroutine
type frameMsg struct {
	frame prompt.Frame
}

type doneMsg struct {
	err error
}

// Model is the Bubble Tea model of the emulated device
type Model struct {
	layout prompt.Layout
	events chan<- prompt.InputEvent

	frame    prompt.Frame
	hasFrame bool

	// Set once the prompt goroutine finished or the user aborted
	done    bool
	aborted bool
	err     error

	Width  int
	Height int

	Keys KeyMap
	Help help.Model
}

// NewModel creates a model that forwards button events to events
func NewModel(layout prompt.Layout, events chan<- prompt.InputEvent) Model {
	return Model{
		layout: layout,
		events: events,
		Keys:   DefaultKeyMap(),
		Help:   help.New(),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		return m, nil

	case frameMsg:
		m.frame = msg.frame
		m.hasFrame = true
		return m, nil

	case doneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit

	case tea.KeyMsg:
		if key.Matches(msg, m.Keys.Quit) {
			m.aborted = true
			return m, tea.Quit
		}
		if msg.String() == "?" {
			m.Help.ShowAll = !m.Help.ShowAll
			return m, nil
		}
		if m.done {
			return m, nil
		}
		if event, ok := m.Keys.eventFor(msg); ok {
			m.press(event)
		}
	}

	return m, nil
}

// press hands the event to the prompt goroutine without blocking the UI.
// Presses beyond the buffer are dropped like a device with a full queue.
func (m Model) press(event prompt.InputEvent) {
	select {
	case m.events <- event:
	default:
		logging.Warn("Dropping button press, input queue full",
			zap.String("event", event.String()),
		)
	}
}

// Frame returns the last frame painted, if any
func (m Model) Frame() (prompt.Frame, bool) {
	return m.frame, m.hasFrame
}

// Aborted reports whether the user quit with ctrl+c
func (m Model) Aborted() bool {
	return m.aborted
}

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	if m.hasFrame {
		b.WriteString(display.RenderFrame(m.frame, m.layout))
	} else {
		b.WriteString(display.ContentStyle.Render("waiting for prompt..."))
	}
	b.WriteString("\n")

	switch {
	case m.aborted:
		b.WriteString(display.RejectStyle.Render(display.CrossMark + " aborted"))
	case m.done && m.err != nil:
		b.WriteString(display.RejectStyle.Render(display.CrossMark + " " + m.err.Error()))
	case m.done:
		b.WriteString(display.CheckStyle.Render(display.CheckMark + " done"))
	default:
		b.WriteString(m.Help.View(m.Keys))
	}
	b.WriteString("\n")

	view := b.String()
	if m.Width > 0 {
		view = lipgloss.PlaceHorizontal(m.Width, lipgloss.Center, view)
	}
	return view
}
