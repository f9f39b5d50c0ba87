package prompt

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// Geometry of the reference two-button device
const (
	DefaultCharsPerLine = 16
	DefaultLinesPerPage = 1
	DefaultMaxPages     = 1000
)

// Layout describes the screen geometry a prompt is broken for
type Layout struct {
	CharsPerLine int  // Display cells per line
	LinesPerPage int  // Content lines per screen, excluding the title
	ShowIndex    bool // Append " (x/y)" to the title when it fits
	MaxPages     int  // Refuse content needing more pages; 0 means DefaultMaxPages
}

// DefaultLayout returns the single-row 16 character layout
func DefaultLayout() Layout {
	return Layout{
		CharsPerLine: DefaultCharsPerLine,
		LinesPerPage: DefaultLinesPerPage,
		ShowIndex:    true,
		MaxPages:     DefaultMaxPages,
	}
}

// Validate checks the geometry. All failures are config errors.
func (l Layout) Validate() error {
	if l.CharsPerLine < 1 {
		return NewConfigError("chars per line must be at least 1, got %d", l.CharsPerLine)
	}
	if l.LinesPerPage < 1 {
		return NewConfigError("lines per page must be at least 1, got %d", l.LinesPerPage)
	}
	if l.MaxPages < 0 {
		return NewConfigError("max pages must not be negative, got %d", l.MaxPages)
	}
	return nil
}

// ValidateConfirmation checks that each choice screen of a confirmation
// fits on one screen of l
func (l Layout) ValidateConfirmation() error {
	if err := l.Validate(); err != nil {
		return err
	}
	for _, label := range []string{AcceptLabel, RejectLabel} {
		lines, err := BreakLines(label, l.CharsPerLine)
		if err != nil {
			return err
		}
		if len(lines) > l.LinesPerPage {
			return NewConfigError("choice %q does not fit on one %dx%d screen", label, l.CharsPerLine, l.LinesPerPage)
		}
	}
	return nil
}

func (l Layout) pageLimit() int {
	if l.MaxPages == 0 {
		return DefaultMaxPages
	}
	return l.MaxPages
}

// checkTitle rejects titles that cannot be shown on one header line
func (l Layout) checkTitle(title string) error {
	if w := Width(title); w > l.CharsPerLine {
		return NewConfigError("title %q is %d cells wide, screen fits %d", title, w, l.CharsPerLine)
	}
	return nil
}

// Header returns the title line for a page. The index suffix is dropped
// rather than letting the header overflow.
func (l Layout) Header(title string, page, pageCount int) string {
	if !l.ShowIndex || pageCount <= 1 {
		return title
	}
	withIndex := fmt.Sprintf("%s (%d/%d)", title, page+1, pageCount)
	if Width(withIndex) > l.CharsPerLine {
		return title
	}
	return withIndex
}

// Width returns the number of display cells s occupies. Each grapheme
// cluster counts once, as a terminal draws it.
func Width(s string) int {
	return runewidth.StringWidth(s)
}
