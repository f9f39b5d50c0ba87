// Package display paints prompt frames as a miniature device screen in
// the terminal.
//
// RenderFrame draws one frame with Lipgloss: a bordered box exactly
// CharsPerLine cells wide, a bold title row, LinesPerPage content rows and
// an indicator row with the navigation arrows (◀ ▶) or the final check
// mark. Accept and reject screens are colored green and red.
//
// TerminalSink writes rendered frames to an io.Writer and implements
// prompt.DisplaySink. Recorder keeps the frames in memory and can produce a
// plain transcript, which the simulate command prints.
package display
