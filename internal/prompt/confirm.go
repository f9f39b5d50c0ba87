package prompt

import (
	"context"

	"github.com/muurk/scrollprompt/internal/logging"
)

// Labels of the two choice screens
const (
	AcceptLabel = "Confirm"
	RejectLabel = "Reject"
)

// Confirmation shows informational lines followed by an accept screen and
// a reject screen, and blocks until the user picks one.
type Confirmation struct {
	screens  []Frame
	cur      cursor
	sink     DisplaySink
	source   InputSource
	decision Decision
	decided  bool
}

// NewConfirmation lays out prompts for layout. Each prompt starts on a new
// line.
func NewConfirmation(layout Layout, prompts []string, sink DisplaySink, source InputSource) (*Confirmation, error) {
	if err := layout.ValidateConfirmation(); err != nil {
		return nil, err
	}

	var screens []Frame

	if len(prompts) > 0 {
		var lines []string
		for _, p := range prompts {
			broken, err := BreakLines(p, layout.CharsPerLine)
			if err != nil {
				return nil, err
			}
			lines = append(lines, broken...)
		}

		pages, err := NewPaginator(lines, layout.LinesPerPage)
		if err != nil {
			return nil, err
		}
		if pages.PageCount() > layout.pageLimit() {
			return nil, NewConfigError("confirmation needs %d pages, limit is %d", pages.PageCount(), layout.pageLimit())
		}
		for {
			screens = append(screens, Frame{Lines: pages.CurrentPage(), Kind: FrameContent})
			if !pages.Advance() {
				break
			}
		}
	}

	for _, choice := range []struct {
		label string
		kind  FrameKind
	}{
		{AcceptLabel, FrameAccept},
		{RejectLabel, FrameReject},
	} {
		lines, err := BreakLines(choice.label, layout.CharsPerLine)
		if err != nil {
			return nil, err
		}
		screens = append(screens, Frame{Lines: lines, Kind: choice.kind})
	}

	for i := range screens {
		screens[i].PageIndex = i
		screens[i].PageCount = len(screens)
	}

	return &Confirmation{
		screens: screens,
		cur:     cursor{pos: 0, count: len(screens)},
		sink:    sink,
		source:  source,
	}, nil
}

// Frame returns the screen under the cursor
func (c *Confirmation) Frame() Frame {
	frame := c.screens[c.cur.pos]
	frame.Lines = append([]string(nil), frame.Lines...)
	return frame
}

// Decided reports whether a decision has been made, and which
func (c *Confirmation) Decided() (Decision, bool) {
	return c.decision, c.decided
}

// Run renders the first screen and blocks until Confirm, Reject, or Select
// on a choice screen. The only way to return without a decision is an
// error from the sink or the source.
func (c *Confirmation) Run(ctx context.Context) (Decision, error) {
	if err := c.render(); err != nil {
		return Rejected, err
	}

	for !c.decided {
		event, err := c.source.NextEvent(ctx)
		if err != nil {
			return Rejected, NewInputError(err)
		}
		logging.LogEvent("confirmation", event.String())

		if err := c.Handle(event); err != nil {
			return Rejected, err
		}
	}

	logging.LogDecision(c.decision.String())
	return c.decision, nil
}

// Handle applies one input event. Once decided, further events are ignored.
func (c *Confirmation) Handle(event InputEvent) error {
	if c.decided {
		return nil
	}

	switch event {
	case Confirm:
		c.decide(Accepted)
	case Reject:
		c.decide(Rejected)
	case Next:
		if c.cur.advance() {
			return c.render()
		}
	case Previous:
		if c.cur.retreat() {
			return c.render()
		}
	case Select:
		switch c.Frame().Kind {
		case FrameAccept:
			c.decide(Accepted)
		case FrameReject:
			c.decide(Rejected)
		}
	}
	return nil
}

func (c *Confirmation) decide(d Decision) {
	c.decision = d
	c.decided = true
}

func (c *Confirmation) render() error {
	frame := c.Frame()
	logging.LogFrame(frame.Kind.String(), frame.PageIndex, frame.PageCount, frame.Lines)
	if err := c.sink.Render(frame); err != nil {
		return NewDisplayError(frame.PageIndex, err)
	}
	return nil
}

// RunConfirmation shows prompts and returns the user's decision.
func RunConfirmation(ctx context.Context, layout Layout, prompts []string, sink DisplaySink, source InputSource) (Decision, error) {
	confirmation, err := NewConfirmation(layout, prompts, sink, source)
	if err != nil {
		return Rejected, err
	}
	return confirmation.Run(ctx)
}
