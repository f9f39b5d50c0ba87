package prompt

import (
	"strings"

	"github.com/rivo/uniseg"
)

// BreakLines greedily word-wraps text so that no line is wider than
// maxWidth cells. Words wider than a line are split between grapheme
// clusters.
// Newlines start a new line. Empty text yields a single empty line.
func BreakLines(text string, maxWidth int) ([]string, error) {
	if maxWidth < 1 {
		return nil, NewConfigError("line width must be at least 1, got %d", maxWidth)
	}

	text = strings.TrimRight(text, "\r\n")

	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		broken, err := breakParagraph(paragraph, maxWidth)
		if err != nil {
			return nil, err
		}
		lines = append(lines, broken...)
	}
	return lines, nil
}

func breakParagraph(paragraph string, maxWidth int) ([]string, error) {
	words := strings.Fields(paragraph)
	if len(words) == 0 {
		return []string{""}, nil
	}

	var (
		lines   []string
		current strings.Builder
		width   int
		started bool
	)

	flush := func() {
		lines = append(lines, current.String())
		current.Reset()
		width = 0
		started = false
	}

	for _, word := range words {
		wordWidth := Width(word)

		if wordWidth > maxWidth {
			chunks, err := hardSplit(word, maxWidth)
			if err != nil {
				return nil, err
			}
			if started {
				flush()
			}
			lines = append(lines, chunks[:len(chunks)-1]...)
			last := chunks[len(chunks)-1]
			current.WriteString(last)
			width = Width(last)
			started = true
			continue
		}

		switch {
		case !started:
			current.WriteString(word)
			width = wordWidth
			started = true
		case width+1+wordWidth <= maxWidth:
			current.WriteByte(' ')
			current.WriteString(word)
			width += 1 + wordWidth
		default:
			flush()
			current.WriteString(word)
			width = wordWidth
			started = true
		}
	}

	if started {
		flush()
	}
	return lines, nil
}

// hardSplit cuts word into chunks of at most maxWidth cells without
// breaking a grapheme cluster
func hardSplit(word string, maxWidth int) ([]string, error) {
	var (
		chunks  []string
		current strings.Builder
		width   int
	)
	g := uniseg.NewGraphemes(word)
	for g.Next() {
		cluster := g.Str()
		cw := Width(cluster)
		if cw > maxWidth {
			return nil, NewConfigError("character %q needs %d cells, line fits %d", cluster, cw, maxWidth)
		}
		if width+cw > maxWidth {
			chunks = append(chunks, current.String())
			current.Reset()
			width = 0
		}
		current.WriteString(cluster)
		width += cw
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}
	return chunks, nil
}
