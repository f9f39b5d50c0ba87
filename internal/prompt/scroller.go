package prompt

import (
	"context"

	"go.uber.org/zap"

	"github.com/muurk/scrollprompt/internal/logging"
)

// ScrollState is the state of a Scroller
type ScrollState int

const (
	// ScrollRendering shows the page under the cursor and awaits input
	ScrollRendering ScrollState = iota
	// ScrollExhausted means the user paged past the last screen
	ScrollExhausted
)

// String returns a human-readable state name
func (s ScrollState) String() string {
	if s == ScrollExhausted {
		return "exhausted"
	}
	return "rendering"
}

// Scroller pages one block of text on the display. It finishes only when
// the user advances past the last page.
type Scroller struct {
	layout Layout
	title  string
	pages  *Paginator
	sink   DisplaySink
	source InputSource
	state  ScrollState
}

// NewScroller breaks text for layout and prepares a scroller at page 0.
// Nothing is rendered until Run.
func NewScroller(layout Layout, title, text string, sink DisplaySink, source InputSource) (*Scroller, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	if err := layout.checkTitle(title); err != nil {
		return nil, err
	}

	lines, err := BreakLines(text, layout.CharsPerLine)
	if err != nil {
		return nil, err
	}

	pages, err := NewPaginator(lines, layout.LinesPerPage)
	if err != nil {
		return nil, err
	}
	if pages.PageCount() > layout.pageLimit() {
		return nil, NewConfigError("%q needs %d pages, limit is %d", title, pages.PageCount(), layout.pageLimit())
	}

	logging.Debug("Scroller ready",
		zap.String("title", title),
		zap.Int("lines", pages.LineCount()),
		zap.Int("pages", pages.PageCount()),
	)

	return &Scroller{
		layout: layout,
		title:  title,
		pages:  pages,
		sink:   sink,
		source: source,
		state:  ScrollRendering,
	}, nil
}

// State returns the current state
func (s *Scroller) State() ScrollState {
	return s.state
}

// Frame returns the frame for the current page
func (s *Scroller) Frame() Frame {
	page, count := s.pages.Cursor(), s.pages.PageCount()
	return Frame{
		Title:     s.layout.Header(s.title, page, count),
		Lines:     s.pages.CurrentPage(),
		PageIndex: page,
		PageCount: count,
		Kind:      FrameContent,
	}
}

// Run renders the first page and processes input until the scroller is
// exhausted. Render and input failures end the run immediately.
func (s *Scroller) Run(ctx context.Context) error {
	if err := s.render(); err != nil {
		return err
	}

	for s.state == ScrollRendering {
		event, err := s.source.NextEvent(ctx)
		if err != nil {
			return NewInputError(err)
		}
		logging.LogEvent("scroller", event.String())

		if err := s.Handle(event); err != nil {
			return err
		}
	}
	return nil
}

// Handle applies one input event. Confirm, Reject and Select are ignored:
// a scroller never decides anything.
func (s *Scroller) Handle(event InputEvent) error {
	if s.state != ScrollRendering {
		return nil
	}

	switch event {
	case Next:
		if s.pages.Advance() {
			return s.render()
		}
		s.state = ScrollExhausted
	case Previous:
		if s.pages.Retreat() {
			return s.render()
		}
	}
	return nil
}

func (s *Scroller) render() error {
	frame := s.Frame()
	logging.LogFrame(frame.Title, frame.PageIndex, frame.PageCount, frame.Lines)
	if err := s.sink.Render(frame); err != nil {
		return NewDisplayError(frame.PageIndex, err)
	}
	return nil
}

// RunScroller shows text under title until the user pages past the end.
func RunScroller(ctx context.Context, layout Layout, title, text string, sink DisplaySink, source InputSource) error {
	scroller, err := NewScroller(layout, title, text, sink, source)
	if err != nil {
		return err
	}
	return scroller.Run(ctx)
}
