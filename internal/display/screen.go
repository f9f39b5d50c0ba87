package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/scrollprompt/internal/prompt"
)

// pad right-pads s with spaces to width display cells
func pad(s string, width int) string {
	if gap := width - prompt.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// RenderFrame draws frame as it would appear on a screen of layout
func RenderFrame(frame prompt.Frame, layout prompt.Layout) string {
	width := layout.CharsPerLine

	rows := make([]string, 0, layout.LinesPerPage+2)
	rows = append(rows, TitleStyle.Render(pad(frame.Title, width)))

	lineStyle := ContentStyle
	switch frame.Kind {
	case prompt.FrameAccept:
		lineStyle = AcceptStyle
	case prompt.FrameReject:
		lineStyle = RejectStyle
	}

	for i := 0; i < layout.LinesPerPage; i++ {
		line := ""
		if i < len(frame.Lines) {
			line = frame.Lines[i]
		}
		rows = append(rows, lineStyle.Render(pad(line, width)))
	}

	rows = append(rows, indicatorRow(frame, width))

	return ScreenStyle().Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func indicatorRow(frame prompt.Frame, width int) string {
	left := " "
	if frame.HasPrevious() {
		left = ArrowLeft
	}

	var right string
	switch {
	case frame.Kind == prompt.FrameAccept:
		right = CheckStyle.Render(CheckMark)
	case frame.Kind == prompt.FrameReject:
		right = RejectStyle.Render(CrossMark)
	case frame.HasNext():
		right = IndicatorStyle.Render(ArrowRight)
	case frame.Kind == prompt.FrameContent:
		right = CheckStyle.Render(CheckMark)
	default:
		right = " "
	}

	gap := width - 2
	if gap < 0 {
		gap = 0
	}
	return IndicatorStyle.Render(left) + strings.Repeat(" ", gap) + right
}

// PlainFrame renders a frame as one line of text without styling, e.g.
// "[2/3] Amount | 12.5 ETH"
func PlainFrame(frame prompt.Frame) string {
	label := frame.Title
	switch frame.Kind {
	case prompt.FrameAccept:
		label = CheckMark
	case prompt.FrameReject:
		label = CrossMark
	}
	return fmt.Sprintf("[%d/%d] %s | %s", frame.PageIndex+1, frame.PageCount, label, strings.Join(frame.Lines, " / "))
}
