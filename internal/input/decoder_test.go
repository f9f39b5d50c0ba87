package input

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/muurk/scrollprompt/internal/prompt"
)

type rawScript struct {
	events []ButtonEvent
}

var errDriverClosed = errors.New("driver closed")

func (r *rawScript) NextButton(ctx context.Context) (ButtonEvent, error) {
	if len(r.events) == 0 {
		return ButtonEvent{}, errDriverClosed
	}
	ev := r.events[0]
	r.events = r.events[1:]
	return ev, nil
}

func press(b Button) ButtonEvent   { return ButtonEvent{Button: b, Action: Press} }
func release(b Button) ButtonEvent { return ButtonEvent{Button: b, Action: Release} }

func TestDecoder_NextEvent(t *testing.T) {
	tests := []struct {
		name string
		raw  []ButtonEvent
		want []prompt.InputEvent
	}{
		{
			name: "single clicks",
			raw:  []ButtonEvent{press(Right), release(Right), press(Left), release(Left)},
			want: []prompt.InputEvent{prompt.Next, prompt.Previous},
		},
		{
			name: "both buttons released right first",
			raw:  []ButtonEvent{press(Left), press(Right), release(Right), release(Left)},
			want: []prompt.InputEvent{prompt.Select},
		},
		{
			name: "both buttons released left first",
			raw:  []ButtonEvent{press(Right), press(Left), release(Left), release(Right)},
			want: []prompt.InputEvent{prompt.Select},
		},
		{
			name: "unmatched release ignored",
			raw:  []ButtonEvent{release(Left), press(Right), release(Right)},
			want: []prompt.InputEvent{prompt.Next},
		},
		{
			name: "chord then single click",
			raw: []ButtonEvent{
				press(Left), press(Right), release(Left), release(Right),
				press(Left), release(Left),
			},
			want: []prompt.InputEvent{prompt.Select, prompt.Previous},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDecoder(&rawScript{events: tt.raw})

			var got []prompt.InputEvent
			for {
				ev, err := d.NextEvent(context.Background())
				if err != nil {
					if !errors.Is(err, errDriverClosed) {
						t.Fatalf("Unexpected error: %v", err)
					}
					break
				}
				got = append(got, ev)
			}

			if len(got) != len(tt.want) {
				t.Fatalf("Expected %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Event %d: expected %v, got %v", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestDecoder_OnPress(t *testing.T) {
	var pressed []Button
	d := NewDecoder(&rawScript{events: []ButtonEvent{press(Left), release(Left)}})
	d.OnPress = func(b Button) { pressed = append(pressed, b) }

	ev, err := d.NextEvent(context.Background())
	if err != nil {
		t.Fatalf("NextEvent failed: %v", err)
	}
	if ev != prompt.Previous {
		t.Errorf("Expected previous, got %v", ev)
	}
	if len(pressed) != 1 || pressed[0] != Left {
		t.Errorf("Expected one left press, got %v", pressed)
	}
}

func TestDecoder_DrivesScroller(t *testing.T) {
	raw := &rawScript{events: []ButtonEvent{
		press(Right), release(Right), // to page 2
		press(Right), release(Right), // past the end
		press(Left), press(Right), release(Left), release(Right), // select the accept screen
	}}
	sink := &countingSink{}
	dev, err := prompt.NewDevice(prompt.Layout{CharsPerLine: 8, LinesPerPage: 1}, sink, NewDecoder(raw))
	if err != nil {
		t.Fatalf("NewDevice failed: %v", err)
	}

	if err := dev.WriteScroller(context.Background(), "", prompt.Text("abcdefghijklmnop")); err != nil {
		t.Fatalf("WriteScroller failed: %v", err)
	}
	if err := dev.FinalAcceptPrompt(context.Background()); err != nil {
		t.Fatalf("Expected acceptance, got %v", err)
	}
	if sink.renders != 3 {
		t.Errorf("Expected 3 renders, got %d", sink.renders)
	}
}

type countingSink struct {
	renders int
}

func (s *countingSink) Render(prompt.Frame) error {
	s.renders++
	return nil
}

func TestParseButtonEvent(t *testing.T) {
	tests := []struct {
		in      string
		want    ButtonEvent
		wantErr bool
	}{
		{in: "left-press", want: press(Left)},
		{in: " Right-Release ", want: release(Right)},
		{in: "left", wantErr: true},
		{in: "middle-press", wantErr: true},
		{in: "left-hold", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseButtonEvent(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseButtonEvent(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseButtonEvent(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseButtonEvent(%q): expected %v, got %v", tt.in, tt.want, got)
		}
		if got.String() != strings.TrimSpace(strings.ToLower(tt.in)) {
			t.Errorf("Expected round trip of %q, got %q", tt.in, got.String())
		}
	}
}
