package prompt

import (
	"context"
	"errors"
)

var errScreenFault = errors.New("screen fault")

// recordingSink keeps every frame; failOn makes the n-th render (1-based) fail
type recordingSink struct {
	frames []Frame
	calls  int
	failOn int
}

func (s *recordingSink) Render(frame Frame) error {
	s.calls++
	if s.failOn > 0 && s.calls == s.failOn {
		return errScreenFault
	}
	s.frames = append(s.frames, frame)
	return nil
}

func (s *recordingSink) last() Frame {
	return s.frames[len(s.frames)-1]
}

var errNoMoreInput = errors.New("no more input")

// scriptedSource replays events and then fails
type scriptedSource struct {
	events []InputEvent
	read   int
}

func events(evs ...InputEvent) *scriptedSource {
	return &scriptedSource{events: evs}
}

func (s *scriptedSource) NextEvent(ctx context.Context) (InputEvent, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s.read >= len(s.events) {
		return 0, errNoMoreInput
	}
	ev := s.events[s.read]
	s.read++
	return ev, nil
}

func (s *scriptedSource) remaining() int {
	return len(s.events) - s.read
}

func layout(chars, lines int) Layout {
	return Layout{CharsPerLine: chars, LinesPerPage: lines}
}
