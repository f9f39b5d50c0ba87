package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/muurk/scrollprompt/internal/logging"
)

// Session is one scroller in a workflow. Content, when set, takes
// precedence over Text.
type Session struct {
	Title   string
	Text    string
	Content ContentWriter
}

// MaxContentBytes bounds what a single ContentWriter may produce. It only
// guards memory; whether the text fits is decided by the page limit once
// the text is broken into lines.
const MaxContentBytes = 16 << 20

var errContentTooLarge = errors.New("content exceeds the byte budget")

// boundedBuffer refuses writes past limit bytes so a runaway content
// writer cannot exhaust memory
type boundedBuffer struct {
	strings.Builder
	limit int
}

func (b *boundedBuffer) Write(p []byte) (int, error) {
	if len(p) > b.limit-b.Len() {
		return 0, errContentTooLarge
	}
	return b.Builder.Write(p)
}

func (b *boundedBuffer) WriteString(s string) (int, error) {
	if len(s) > b.limit-b.Len() {
		return 0, errContentTooLarge
	}
	return b.Builder.WriteString(s)
}

// render runs the content writer once and returns the produced text
func (s Session) render() (string, error) {
	if s.Content == nil {
		return s.Text, nil
	}

	buf := &boundedBuffer{limit: MaxContentBytes}
	if err := s.Content(buf); err != nil {
		if errors.Is(err, errContentTooLarge) {
			return "", NewConfigError("content for %q exceeds %d bytes", s.Title, MaxContentBytes)
		}
		return "", NewContentError(s.Title, err)
	}
	return buf.String(), nil
}

// newScroller renders the session's content and breaks it for layout
func (s Session) newScroller(layout Layout, sink DisplaySink, source InputSource) (*Scroller, error) {
	text, err := s.render()
	if err != nil {
		return nil, err
	}
	return NewScroller(layout, s.Title, text, sink, source)
}

// RunSession renders a session's content and scrolls it
func RunSession(ctx context.Context, layout Layout, session Session, sink DisplaySink, source InputSource) error {
	scroller, err := session.newScroller(layout, sink, source)
	if err != nil {
		return err
	}
	return scroller.Run(ctx)
}

// RunWorkflow scrolls every session in order and then asks for a decision
// exactly once. Every scroller and the confirmation are built before the
// first render, so configuration errors surface before the user sees
// anything. Any error aborts the workflow before the confirmation is shown
// and must be treated as "not accepted".
func RunWorkflow(ctx context.Context, layout Layout, sessions []Session, finalPrompts []string, sink DisplaySink, source InputSource) (Decision, error) {
	if err := layout.Validate(); err != nil {
		return Rejected, err
	}

	scrollers := make([]*Scroller, len(sessions))
	for i, session := range sessions {
		scroller, err := session.newScroller(layout, sink, source)
		if err != nil {
			return Rejected, fmt.Errorf("session %d (%s): %w", i+1, session.Title, err)
		}
		scrollers[i] = scroller
	}

	confirmation, err := NewConfirmation(layout, finalPrompts, sink, source)
	if err != nil {
		return Rejected, fmt.Errorf("confirmation: %w", err)
	}

	for i, scroller := range scrollers {
		title := sessions[i].Title
		logging.Debug("Starting scroller session",
			zap.Int("session", i+1),
			zap.Int("sessions", len(sessions)),
			zap.String("title", title),
		)

		if err := scroller.Run(ctx); err != nil {
			logging.Warn("Workflow aborted",
				zap.Int("session", i+1),
				zap.String("title", title),
				zap.Error(err),
			)
			return Rejected, fmt.Errorf("session %d (%s): %w", i+1, title, err)
		}
	}

	decision, err := confirmation.Run(ctx)
	if err != nil {
		logging.Warn("Confirmation aborted", zap.Error(err))
		return Rejected, fmt.Errorf("confirmation: %w", err)
	}
	return decision, nil
}
