package input

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/muurk/scrollprompt/internal/prompt"
)

// ErrScriptExhausted is returned once every scripted event was consumed
var ErrScriptExhausted = errors.New("scripted input exhausted")

// ScriptSource replays a fixed list of events
type ScriptSource struct {
	events []prompt.InputEvent
	next   int
}

// NewScriptSource returns a source that yields events in order
func NewScriptSource(events ...prompt.InputEvent) *ScriptSource {
	return &ScriptSource{events: append([]prompt.InputEvent(nil), events...)}
}

// ParseEvents parses a comma or space separated list such as
// "next,next,confirm".
func ParseEvents(s string) ([]prompt.InputEvent, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})

	events := make([]prompt.InputEvent, 0, len(fields))
	for i, f := range fields {
		ev, err := prompt.ParseInputEvent(strings.ToLower(f))
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i+1, err)
		}
		events = append(events, ev)
	}
	return events, nil
}

// NextEvent implements prompt.InputSource
func (s *ScriptSource) NextEvent(ctx context.Context) (prompt.InputEvent, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s.next >= len(s.events) {
		return 0, ErrScriptExhausted
	}
	ev := s.events[s.next]
	s.next++
	return ev, nil
}

// Remaining returns the number of events not yet consumed
func (s *ScriptSource) Remaining() int {
	return len(s.events) - s.next
}
