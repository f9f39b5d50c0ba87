package prompt

import "context"

// Menu is a horizontally scrolled list of items, one per screen
type Menu[T any] interface {
	MoveLeft()
	MoveRight()
	// Select activates the current item. ok is false when the item handled
	// the activation itself and the menu should stay open.
	Select() (value T, ok bool)
	Label() string
	Position() (index, count int)
}

// MenuItem is one entry of a ListMenu
type MenuItem[T any] struct {
	Label string
	Value T
}

// ListMenu is a Menu over a fixed list. Movement saturates at both ends.
type ListMenu[T any] struct {
	items []MenuItem[T]
	cur   cursor
}

// NewListMenu creates a menu; it needs at least one item
func NewListMenu[T any](items ...MenuItem[T]) (*ListMenu[T], error) {
	if len(items) == 0 {
		return nil, NewConfigError("menu needs at least one item")
	}
	owned := append([]MenuItem[T](nil), items...)
	return &ListMenu[T]{items: owned, cur: cursor{count: len(owned)}}, nil
}

func (m *ListMenu[T]) MoveLeft()  { m.cur.retreat() }
func (m *ListMenu[T]) MoveRight() { m.cur.advance() }

func (m *ListMenu[T]) Select() (T, bool) {
	return m.items[m.cur.pos].Value, true
}

func (m *ListMenu[T]) Label() string {
	return m.items[m.cur.pos].Label
}

func (m *ListMenu[T]) Position() (int, int) {
	return m.cur.pos, m.cur.count
}

// HandleMenuEvent applies one event to menu. It returns the selected value
// and true when the event activated an item.
func HandleMenuEvent[T any](menu Menu[T], event InputEvent) (T, bool) {
	switch event {
	case Previous:
		menu.MoveLeft()
	case Next:
		menu.MoveRight()
	case Select, Confirm:
		return menu.Select()
	}
	var zero T
	return zero, false
}

// MenuFrame builds the frame for the current menu item
func MenuFrame[T any](layout Layout, title string, menu Menu[T]) (Frame, error) {
	lines, err := BreakLines(menu.Label(), layout.CharsPerLine)
	if err != nil {
		return Frame{}, err
	}
	if len(lines) > layout.LinesPerPage {
		return Frame{}, NewConfigError("menu label %q does not fit on one screen", menu.Label())
	}
	index, count := menu.Position()
	return Frame{
		Title:     title,
		Lines:     lines,
		PageIndex: index,
		PageCount: count,
		Kind:      FrameMenu,
	}, nil
}

// RunMenu shows menu until an item is selected
func RunMenu[T any](ctx context.Context, layout Layout, title string, menu Menu[T], sink DisplaySink, source InputSource) (T, error) {
	var zero T

	if err := layout.Validate(); err != nil {
		return zero, err
	}
	if err := layout.checkTitle(title); err != nil {
		return zero, err
	}

	for {
		frame, err := MenuFrame(layout, title, menu)
		if err != nil {
			return zero, err
		}
		if err := sink.Render(frame); err != nil {
			return zero, NewDisplayError(frame.PageIndex, err)
		}

		event, err := source.NextEvent(ctx)
		if err != nil {
			return zero, NewInputError(err)
		}
		if value, ok := HandleMenuEvent(menu, event); ok {
			return value, nil
		}
	}
}
