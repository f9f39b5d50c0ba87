package prompt

// cursor is a saturating index over count positions
type cursor struct {
	pos   int
	count int
}

func (c *cursor) advance() bool {
	if c.pos >= c.count-1 {
		return false
	}
	c.pos++
	return true
}

func (c *cursor) retreat() bool {
	if c.pos <= 0 {
		return false
	}
	c.pos--
	return true
}

// Paginator groups lines into fixed-capacity pages and tracks the page
// being shown. Navigation saturates at both ends and never wraps.
type Paginator struct {
	lines   []string
	perPage int
	cur     cursor
}

// NewPaginator creates a paginator over a private copy of lines.
func NewPaginator(lines []string, linesPerPage int) (*Paginator, error) {
	if linesPerPage < 1 {
		return nil, NewConfigError("lines per page must be at least 1, got %d", linesPerPage)
	}

	owned := make([]string, len(lines))
	copy(owned, lines)

	p := &Paginator{lines: owned, perPage: linesPerPage}
	p.cur = cursor{pos: 0, count: p.PageCount()}
	return p, nil
}

// PageCount returns ceil(lines/linesPerPage), never less than 1
func (p *Paginator) PageCount() int {
	n := (len(p.lines) + p.perPage - 1) / p.perPage
	if n < 1 {
		return 1
	}
	return n
}

// LineCount returns the number of lines being paginated
func (p *Paginator) LineCount() int {
	return len(p.lines)
}

// Cursor returns the zero-based index of the current page
func (p *Paginator) Cursor() int {
	return p.cur.pos
}

// IsFirst reports whether the cursor is on the first page
func (p *Paginator) IsFirst() bool {
	return p.cur.pos == 0
}

// IsLast reports whether the cursor is on the last page
func (p *Paginator) IsLast() bool {
	return p.cur.pos == p.cur.count-1
}

// CurrentPage returns the lines of the current page. The slice is a copy.
func (p *Paginator) CurrentPage() []string {
	start := p.cur.pos * p.perPage
	if start >= len(p.lines) {
		return []string{}
	}
	end := start + p.perPage
	if end > len(p.lines) {
		end = len(p.lines)
	}
	page := make([]string, end-start)
	copy(page, p.lines[start:end])
	return page
}

// Advance moves to the next page. It returns false, leaving the cursor
// unchanged, when already on the last page.
func (p *Paginator) Advance() bool {
	return p.cur.advance()
}

// Retreat moves to the previous page. It returns false, leaving the cursor
// unchanged, when already on the first page.
func (p *Paginator) Retreat() bool {
	return p.cur.retreat()
}
