package panel

import (
	"github.com/muurk/scrollprompt/internal/prompt"
)

// Message types
const (
	TypeFrame    = "frame"
	TypeDecision = "decision"
	TypeError    = "error"
	TypeButton   = "button"
	TypePress    = "press"
)

// Message is the envelope exchanged with the panel. A button message names
// either a logical event ("next", "confirm") or a raw edge ("left-press",
// "right-release"); raw edges are decoded like the device's two buttons and
// each press is echoed back as a press message.
type Message struct {
	Type     string        `json:"type"`
	Frame    *FrameMessage `json:"frame,omitempty"`
	Decision string        `json:"decision,omitempty"`
	Button   string        `json:"button,omitempty"`
	Error    string        `json:"error,omitempty"`
}

// FrameMessage is a rendered screen. Page is 1-based.
type FrameMessage struct {
	Title string   `json:"title"`
	Lines []string `json:"lines"`
	Page  int      `json:"page"`
	Pages int      `json:"pages"`
	Kind  string   `json:"kind"`
}

// NewFrameMessage converts a frame for the wire
func NewFrameMessage(frame prompt.Frame) *FrameMessage {
	lines := frame.Lines
	if lines == nil {
		lines = []string{}
	}
	return &FrameMessage{
		Title: frame.Title,
		Lines: lines,
		Page:  frame.PageIndex + 1,
		Pages: frame.PageCount,
		Kind:  frame.Kind.String(),
	}
}

// LayoutInfo describes the screen geometry a panel should draw
type LayoutInfo struct {
	Chars   int    `json:"chars"`
	Lines   int    `json:"lines"`
	Profile string `json:"profile,omitempty"`
}
