package display

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/scrollprompt/internal/prompt"
)

var testLayout = prompt.Layout{CharsPerLine: 16, LinesPerPage: 2}

func TestRenderFrame(t *testing.T) {
	tests := []struct {
		name      string
		frame     prompt.Frame
		contains  []string
		excludes  []string
		wantLines int
	}{
		{
			name:     "first of several pages",
			frame:    prompt.Frame{Title: "To (1/3)", Lines: []string{"0x12ab"}, PageIndex: 0, PageCount: 3},
			contains: []string{"To (1/3)", "0x12ab", ArrowRight},
			excludes: []string{ArrowLeft, CheckMark},
		},
		{
			name:     "middle page",
			frame:    prompt.Frame{Title: "To (2/3)", Lines: []string{"cd34", "ef56"}, PageIndex: 1, PageCount: 3},
			contains: []string{"cd34", "ef56", ArrowLeft, ArrowRight},
		},
		{
			name:     "last page shows check",
			frame:    prompt.Frame{Title: "To (3/3)", Lines: []string{"78"}, PageIndex: 2, PageCount: 3},
			contains: []string{ArrowLeft, CheckMark},
			excludes: []string{ArrowRight},
		},
		{
			name:     "accept screen",
			frame:    prompt.Frame{Lines: []string{"Confirm"}, PageIndex: 1, PageCount: 3, Kind: prompt.FrameAccept},
			contains: []string{"Confirm", CheckMark, ArrowLeft},
		},
		{
			name:     "reject screen",
			frame:    prompt.Frame{Lines: []string{"Reject"}, PageIndex: 2, PageCount: 3, Kind: prompt.FrameReject},
			contains: []string{"Reject", CrossMark},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderFrame(tt.frame, testLayout)
			for _, s := range tt.contains {
				if !strings.Contains(out, s) {
					t.Errorf("Expected output to contain %q:\n%s", s, out)
				}
			}
			for _, s := range tt.excludes {
				if strings.Contains(out, s) {
					t.Errorf("Expected output not to contain %q:\n%s", s, out)
				}
			}
		})
	}
}

func TestRenderFrame_FixedGeometry(t *testing.T) {
	short := RenderFrame(prompt.Frame{Lines: []string{"a"}, PageCount: 1}, testLayout)
	full := RenderFrame(prompt.Frame{Title: "0123456789abcdef", Lines: []string{"0123456789abcdef", "0123456789abcdef"}, PageCount: 1}, testLayout)

	if lipgloss.Height(short) != lipgloss.Height(full) {
		t.Errorf("Expected equal heights, got %d and %d", lipgloss.Height(short), lipgloss.Height(full))
	}
	if lipgloss.Width(short) != lipgloss.Width(full) {
		t.Errorf("Expected equal widths, got %d and %d", lipgloss.Width(short), lipgloss.Width(full))
	}
	// border + title + 2 content rows + indicator row + border
	if lipgloss.Height(full) != 6 {
		t.Errorf("Expected height 6, got %d", lipgloss.Height(full))
	}
}

func TestPlainFrame(t *testing.T) {
	tests := []struct {
		frame prompt.Frame
		want  string
	}{
		{
			frame: prompt.Frame{Title: "Amount", Lines: []string{"12.5", "ETH"}, PageIndex: 1, PageCount: 3},
			want:  "[2/3] Amount | 12.5 / ETH",
		},
		{
			frame: prompt.Frame{Lines: []string{"Confirm"}, PageIndex: 0, PageCount: 2, Kind: prompt.FrameAccept},
			want:  "[1/2] ✓ | Confirm",
		},
	}

	for _, tt := range tests {
		if got := PlainFrame(tt.frame); got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, got)
		}
	}
}

type failingWriter struct{}

var errBrokenPipe = errors.New("broken pipe")

func (failingWriter) Write([]byte) (int, error) { return 0, errBrokenPipe }

func TestTerminalSink(t *testing.T) {
	var buf bytes.Buffer
	sink := NewTerminalSink(&buf, testLayout)

	if err := sink.Render(prompt.Frame{Title: "Memo", Lines: []string{"hi"}, PageCount: 1}); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Memo") {
		t.Errorf("Expected title in output, got %q", buf.String())
	}

	failing := NewTerminalSink(failingWriter{}, testLayout)
	if err := failing.Render(prompt.Frame{PageCount: 1}); !errors.Is(err, errBrokenPipe) {
		t.Errorf("Expected write error, got %v", err)
	}
}

func TestTerminalSink_Centered(t *testing.T) {
	var plain, centered bytes.Buffer
	frame := prompt.Frame{Title: "Memo", Lines: []string{"hi"}, PageCount: 1}

	if err := NewTerminalSink(&plain, testLayout).Render(frame); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if err := NewTerminalSink(&centered, testLayout).Centered().Render(frame); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	screenWidth := lipgloss.Width(strings.TrimRight(plain.String(), "\n"))
	first := strings.SplitN(centered.String(), "\n", 2)[0]
	if !strings.HasPrefix(first, " ") {
		t.Errorf("Expected left padding, got %q", first)
	}
	if lipgloss.Width(first) < screenWidth || lipgloss.Width(first) < MinTerminalWidth {
		t.Errorf("Expected line at least %d wide, got %d", MinTerminalWidth, lipgloss.Width(first))
	}
}

func TestRecorder_WithWorkflow(t *testing.T) {
	rec := NewRecorder(nil)
	src := &eventList{events: []prompt.InputEvent{prompt.Next, prompt.Next, prompt.Next, prompt.Select}}

	d, err := prompt.RunWorkflow(t.Context(), prompt.Layout{CharsPerLine: 8, LinesPerPage: 1},
		[]prompt.Session{{Title: "To", Text: "abcdefghij"}}, nil, rec, src)
	if err != nil {
		t.Fatalf("RunWorkflow failed: %v", err)
	}
	if d != prompt.Rejected {
		t.Errorf("Expected rejected, got %v", d)
	}

	want := "[1/2] To | abcdefgh\n[2/2] To | ij\n[1/2] ✓ | Confirm\n[2/2] ✗ | Reject\n"
	if got := rec.Transcript(); got != want {
		t.Errorf("Transcript mismatch:\nwant %q\ngot  %q", want, got)
	}
	if len(rec.Frames()) != 4 {
		t.Errorf("Expected 4 frames, got %d", len(rec.Frames()))
	}
}

func TestRecorder_ForwardFailure(t *testing.T) {
	rec := NewRecorder(NewTerminalSink(failingWriter{}, testLayout))
	if err := rec.Render(prompt.Frame{PageCount: 1}); !errors.Is(err, errBrokenPipe) {
		t.Errorf("Expected forwarded error, got %v", err)
	}
	if len(rec.Frames()) != 0 {
		t.Errorf("Expected failed frame not to be recorded")
	}
}

type eventList struct {
	events []prompt.InputEvent
}

func (e *eventList) NextEvent(ctx context.Context) (prompt.InputEvent, error) {
	if len(e.events) == 0 {
		return 0, errors.New("no more events")
	}
	ev := e.events[0]
	e.events = e.events[1:]
	return ev, nil
}
