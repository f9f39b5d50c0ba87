package prompt

import (
	"context"
	"fmt"
	"io"
)

// InputEvent is a discrete logical button event
type InputEvent int

const (
	// Next moves forward (right button)
	Next InputEvent = iota + 1
	// Previous moves back (left button)
	Previous
	// Confirm accepts directly (dedicated confirm button)
	Confirm
	// Reject rejects directly (dedicated reject button)
	Reject
	// Select activates the current screen (both buttons together)
	Select
)

// String returns the lower-case event name
func (e InputEvent) String() string {
	switch e {
	case Next:
		return "next"
	case Previous:
		return "previous"
	case Confirm:
		return "confirm"
	case Reject:
		return "reject"
	case Select:
		return "select"
	default:
		return fmt.Sprintf("event(%d)", int(e))
	}
}

// ParseInputEvent parses an event name as produced by String.
func ParseInputEvent(s string) (InputEvent, error) {
	switch s {
	case "next", "right":
		return Next, nil
	case "previous", "prev", "left":
		return Previous, nil
	case "confirm":
		return Confirm, nil
	case "reject":
		return Reject, nil
	case "select", "both":
		return Select, nil
	default:
		return 0, fmt.Errorf("unknown input event %q", s)
	}
}

// Decision is the outcome of a confirmation. The zero value is Rejected.
type Decision int

const (
	Rejected Decision = iota
	Accepted
)

// String returns "accepted" or "rejected"
func (d Decision) String() string {
	if d == Accepted {
		return "accepted"
	}
	return "rejected"
}

// FrameKind tells a sink what sort of screen it is painting
type FrameKind int

const (
	FrameContent FrameKind = iota // a page of scroller or confirmation text
	FrameAccept                   // the accept choice screen
	FrameReject                   // the reject choice screen
	FrameMenu                     // a menu item
)

// String returns the frame kind name used on the wire
func (k FrameKind) String() string {
	switch k {
	case FrameContent:
		return "content"
	case FrameAccept:
		return "accept"
	case FrameReject:
		return "reject"
	case FrameMenu:
		return "menu"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Frame is one screenful handed to a DisplaySink
type Frame struct {
	Title     string
	Lines     []string
	PageIndex int
	PageCount int
	Kind      FrameKind
}

// HasPrevious reports whether a left indicator should be drawn
func (f Frame) HasPrevious() bool {
	return f.PageIndex > 0
}

// HasNext reports whether a right arrow should be drawn
func (f Frame) HasNext() bool {
	return f.PageIndex+1 < f.PageCount
}

// IsLast reports whether this is the final screen (drawn with a check mark)
func (f Frame) IsLast() bool {
	return !f.HasNext()
}

// DisplaySink paints frames on the physical screen
type DisplaySink interface {
	Render(frame Frame) error
}

// InputSource yields logical button events. NextEvent blocks until an event
// arrives or ctx ends.
type InputSource interface {
	NextEvent(ctx context.Context) (InputEvent, error)
}

// ContentWriter produces the text of one scroller session
type ContentWriter func(w io.Writer) error

// Text returns a ContentWriter that writes s verbatim
func Text(s string) ContentWriter {
	return func(w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	}
}
