package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/scrollprompt/internal/prompt"
)

// TerminalSink paints each frame to a writer
type TerminalSink struct {
	out    io.Writer
	layout prompt.Layout
	center bool
}

// NewTerminalSink creates a sink for layout. If w is nil, os.Stdout is used.
func NewTerminalSink(w io.Writer, layout prompt.Layout) *TerminalSink {
	if w == nil {
		w = os.Stdout
	}
	return &TerminalSink{out: w, layout: layout}
}

// Centered makes the sink center the screen in the terminal width
func (s *TerminalSink) Centered() *TerminalSink {
	s.center = true
	return s
}

// Render implements prompt.DisplaySink
func (s *TerminalSink) Render(frame prompt.Frame) error {
	screen := RenderFrame(frame, s.layout)
	if s.center {
		screen = lipgloss.PlaceHorizontal(GetTerminalWidth(), lipgloss.Center, screen)
	}
	_, err := fmt.Fprintln(s.out, screen)
	return err
}

// Recorder keeps every rendered frame, optionally forwarding to another sink
type Recorder struct {
	frames []prompt.Frame
	next   prompt.DisplaySink
}

// NewRecorder creates a recorder; next may be nil
func NewRecorder(next prompt.DisplaySink) *Recorder {
	return &Recorder{next: next}
}

// Render implements prompt.DisplaySink
func (r *Recorder) Render(frame prompt.Frame) error {
	frame.Lines = append([]string(nil), frame.Lines...)
	if r.next != nil {
		if err := r.next.Render(frame); err != nil {
			return err
		}
	}
	r.frames = append(r.frames, frame)
	return nil
}

// Frames returns the recorded frames in render order
func (r *Recorder) Frames() []prompt.Frame {
	return append([]prompt.Frame(nil), r.frames...)
}

// Transcript returns one PlainFrame line per recorded frame
func (r *Recorder) Transcript() string {
	var b strings.Builder
	for _, f := range r.frames {
		b.WriteString(PlainFrame(f))
		b.WriteByte('\n')
	}
	return b.String()
}
