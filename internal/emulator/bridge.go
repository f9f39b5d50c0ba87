package emulator

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/scrollprompt/internal/logging"
	"github.com/muurk/scrollprompt/internal/prompt"
)

// ErrClosed is returned once the emulator window has exited
var ErrClosed = errors.New("emulator closed")

// eventBuffer is how many key presses may queue ahead of the prompt
const eventBuffer = 32

// Bridge connects the prompt core to a running program. It implements
// prompt.DisplaySink and prompt.InputSource.
type Bridge struct {
	program *tea.Program
	events  <-chan prompt.InputEvent
	closed  chan struct{}
}

// Render implements prompt.DisplaySink
func (b *Bridge) Render(frame prompt.Frame) error {
	select {
	case <-b.closed:
		return ErrClosed
	default:
	}
	frame.Lines = append([]string(nil), frame.Lines...)
	b.program.Send(frameMsg{frame: frame})
	return nil
}

// NextEvent implements prompt.InputSource
func (b *Bridge) NextEvent(ctx context.Context) (prompt.InputEvent, error) {
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case <-b.closed:
		return 0, ErrClosed
	case event := <-b.events:
		return event, nil
	}
}

// Send delivers a message to the program, e.g. a synthetic tea.KeyMsg
func (b *Bridge) Send(msg tea.Msg) {
	b.program.Send(msg)
}

// Run starts the emulator for layout and calls fn with a Bridge on a
// separate goroutine. The program exits when fn returns or the user aborts.
// fn's error takes precedence over the program's.
func Run(ctx context.Context, layout prompt.Layout, fn func(ctx context.Context, b *Bridge) error, opts ...tea.ProgramOption) error {
	if err := layout.Validate(); err != nil {
		return err
	}

	events := make(chan prompt.InputEvent, eventBuffer)
	model := NewModel(layout, events)

	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	program := tea.NewProgram(model, opts...)

	bridge := &Bridge{
		program: program,
		events:  events,
		closed:  make(chan struct{}),
	}

	fnErr := make(chan error, 1)
	go func() {
		err := fn(ctx, bridge)
		program.Send(doneMsg{err: err})
		fnErr <- err
	}()

	final, runErr := program.Run()
	close(bridge.closed)
	err := <-fnErr

	if m, ok := final.(Model); ok && m.Aborted() {
		logging.Info("Emulator aborted by user")
	}

	if err != nil {
		return err
	}
	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		return fmt.Errorf("emulator: %w", runErr)
	}
	return nil
}
