package input

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/muurk/scrollprompt/internal/logging"
	"github.com/muurk/scrollprompt/internal/prompt"
)

// Button identifies a physical button
type Button int

const (
	Left Button = iota
	Right
)

// String returns "left" or "right"
func (b Button) String() string {
	if b == Right {
		return "right"
	}
	return "left"
}

// Action is a press or a release
type Action int

const (
	Press Action = iota
	Release
)

// ButtonEvent is one raw edge from the button driver
type ButtonEvent struct {
	Button Button
	Action Action
}

// String returns e.g. "left-press"
func (e ButtonEvent) String() string {
	action := "press"
	if e.Action == Release {
		action = "release"
	}
	return fmt.Sprintf("%s-%s", e.Button, action)
}

// ParseButtonEvent parses an edge name such as "left-press" or
// "right-release"
func ParseButtonEvent(s string) (ButtonEvent, error) {
	name, action, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "-")
	if !ok {
		return ButtonEvent{}, fmt.Errorf("unknown button edge %q", s)
	}

	var e ButtonEvent
	switch name {
	case "left":
		e.Button = Left
	case "right":
		e.Button = Right
	default:
		return ButtonEvent{}, fmt.Errorf("unknown button %q", name)
	}
	switch action {
	case "press":
		e.Action = Press
	case "release":
		e.Action = Release
	default:
		return ButtonEvent{}, fmt.Errorf("unknown button action %q", action)
	}
	return e, nil
}

// ButtonSource yields raw button edges. The driver owns debouncing.
type ButtonSource interface {
	NextButton(ctx context.Context) (ButtonEvent, error)
}

// Decoder turns raw button edges into prompt.InputEvents
type Decoder struct {
	source ButtonSource

	// OnPress, when set, is called for every press edge
	OnPress func(Button)

	held  [2]bool
	chord bool
}

// NewDecoder wraps a raw button source. Callers that push edges themselves
// through Feed may pass a nil source.
func NewDecoder(source ButtonSource) *Decoder {
	return &Decoder{source: source}
}

// NextEvent implements prompt.InputSource
func (d *Decoder) NextEvent(ctx context.Context) (prompt.InputEvent, error) {
	for {
		raw, err := d.source.NextButton(ctx)
		if err != nil {
			return 0, err
		}
		if event, ok := d.Feed(raw); ok {
			return event, nil
		}
	}
}

// Feed applies one raw edge and reports the logical event it completes, if
// any.
func (d *Decoder) Feed(raw ButtonEvent) (prompt.InputEvent, bool) {
	if raw.Button != Left && raw.Button != Right {
		logging.Warn("Ignoring unknown button", zap.Int("button", int(raw.Button)))
		return 0, false
	}

	switch raw.Action {
	case Press:
		d.held[raw.Button] = true
		if d.held[Left] && d.held[Right] {
			d.chord = true
		}
		if d.OnPress != nil {
			d.OnPress(raw.Button)
		}
		return 0, false

	case Release:
		if !d.held[raw.Button] {
			// release without a press, e.g. the driver started mid-gesture
			logging.Debug("Ignoring unmatched release", zap.String("button", raw.Button.String()))
			return 0, false
		}
		d.held[raw.Button] = false
		if d.held[Left] || d.held[Right] {
			return 0, false
		}
		if d.chord {
			d.chord = false
			return prompt.Select, true
		}
		if raw.Button == Left {
			return prompt.Previous, true
		}
		return prompt.Next, true
	}
	return 0, false
}
