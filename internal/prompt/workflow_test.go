package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWorkflow_Accepted(t *testing.T) {
	sink := &recordingSink{}
	src := events(Next, Next, Next, Confirm)

	sessions := []Session{
		{Title: "To", Text: "0x1234567890abcdef"},
		{Title: "Amount", Text: "1 ETH"},
	}

	d, err := RunWorkflow(context.Background(), layout(16, 1), sessions, []string{"Sign?"}, sink, src)
	require.NoError(t, err)
	assert.Equal(t, Accepted, d)

	var titles []string
	for _, f := range sink.frames {
		titles = append(titles, f.Title)
	}
	assert.Equal(t, []string{"To", "To", "Amount", ""}, titles)
	assert.Equal(t, FrameContent, sink.last().Kind)
}

func TestRunWorkflow_Rejected(t *testing.T) {
	d, err := RunWorkflow(context.Background(), layout(16, 1),
		[]Session{{Title: "Fee", Text: "1"}}, nil, &recordingSink{}, events(Next, Reject))
	require.NoError(t, err)
	assert.Equal(t, Rejected, d)
}

func TestRunWorkflow_SecondSessionDisplayFailure(t *testing.T) {
	// session 1 is one page: render 1; session 2 fails on its first render
	sink := &recordingSink{failOn: 2}
	src := events(Next, Next, Confirm)

	d, err := RunWorkflow(context.Background(), layout(16, 1),
		[]Session{{Title: "A", Text: "first"}, {Title: "B", Text: "second"}},
		[]string{"Sign?"}, sink, src)

	require.Error(t, err)
	assert.True(t, IsDisplayError(err))
	assert.Equal(t, Rejected, d)

	for _, f := range sink.frames {
		assert.NotEqual(t, FrameAccept, f.Kind)
		assert.NotEqual(t, FrameReject, f.Kind)
	}
	assert.Equal(t, 2, src.remaining(), "confirmation never consumed input")
}

func TestRunWorkflow_NoSessions(t *testing.T) {
	sink := &recordingSink{}
	d, err := RunWorkflow(context.Background(), layout(16, 1), nil, nil, sink, events(Confirm))
	require.NoError(t, err)
	assert.Equal(t, Accepted, d)
	assert.Len(t, sink.frames, 1)
}

func TestRunWorkflow_ContentWriter(t *testing.T) {
	sink := &recordingSink{}
	session := Session{
		Title: "Hash",
		Content: func(w io.Writer) error {
			_, err := fmt.Fprintf(w, "%x", []byte{0xde, 0xad, 0xbe, 0xef})
			return err
		},
	}

	_, err := RunWorkflow(context.Background(), layout(16, 1), []Session{session}, nil, sink, events(Next, Confirm))
	require.NoError(t, err)
	assert.Equal(t, []string{"deadbeef"}, sink.frames[0].Lines)
}

func TestRunWorkflow_ContentWriterFailure(t *testing.T) {
	boom := errors.New("formatting failed")
	session := Session{Title: "X", Content: func(io.Writer) error { return boom }}

	sink := &recordingSink{}
	_, err := RunWorkflow(context.Background(), layout(16, 1), []Session{session}, nil, sink, events())
	require.Error(t, err)
	assert.True(t, IsContentError(err))
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, sink.frames)
}

func TestRunWorkflow_RunawayContentWriter(t *testing.T) {
	session := Session{
		Title: "X",
		Content: func(w io.Writer) error {
			chunk := strings.Repeat("a", 1024)
			for {
				if _, err := io.WriteString(w, chunk); err != nil {
					return err
				}
			}
		},
	}

	_, err := RunWorkflow(context.Background(), Layout{CharsPerLine: 16, LinesPerPage: 1, MaxPages: 10},
		[]Session{session}, nil, &recordingSink{}, events())
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
}

func TestRunWorkflow_ConfigErrorsBeforeFirstRender(t *testing.T) {
	tests := []struct {
		name     string
		layout   Layout
		sessions []Session
	}{
		{
			name:     "choice screens do not fit",
			layout:   layout(4, 1),
			sessions: []Session{{Title: "To", Text: "abcd efgh"}},
		},
		{
			name:   "later title too wide",
			layout: layout(16, 1),
			sessions: []Session{
				{Title: "To", Text: "0x1234"},
				{Title: "A title far too wide", Text: "x"},
			},
		},
		{
			name:   "later content fails",
			layout: layout(16, 1),
			sessions: []Session{
				{Title: "To", Text: "0x1234"},
				{Title: "Memo", Content: func(io.Writer) error { return errors.New("unavailable") }},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &recordingSink{}
			src := events(Next, Next, Next, Confirm)

			d, err := RunWorkflow(context.Background(), tt.layout, tt.sessions, []string{"ok?"}, sink, src)
			require.Error(t, err)
			assert.Equal(t, Rejected, d)
			assert.Empty(t, sink.frames)
			assert.Equal(t, 4, src.remaining())
		})
	}
}

func TestRunWorkflow_ContentMatchesText(t *testing.T) {
	text := "approve" + strings.Repeat(" ", 200) + "send"
	l := Layout{CharsPerLine: 16, LinesPerPage: 1, MaxPages: 2}

	viaText := &recordingSink{}
	_, err := RunWorkflow(context.Background(), l, []Session{{Title: "T", Text: text}}, nil, viaText, events(Next, Confirm))
	require.NoError(t, err)

	viaContent := &recordingSink{}
	_, err = RunWorkflow(context.Background(), l, []Session{{Title: "T", Content: Text(text)}}, nil, viaContent, events(Next, Confirm))
	require.NoError(t, err)

	assert.Equal(t, []string{"approve send"}, viaContent.frames[0].Lines)
	assert.Equal(t, viaText.frames, viaContent.frames)
}

func TestRunWorkflow_ContentPageLimit(t *testing.T) {
	l := Layout{CharsPerLine: 4, LinesPerPage: 3, MaxPages: 2}
	session := Session{Title: "T", Content: Text(strings.Repeat("abcd ", 7))}

	sink := &recordingSink{}
	_, err := RunWorkflow(context.Background(), l, []Session{session}, nil, sink, events())
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
	assert.Empty(t, sink.frames)
}

func TestDevice(t *testing.T) {
	t.Run("write scroller and accept", func(t *testing.T) {
		sink := &recordingSink{}
		dev, err := NewDevice(DefaultLayout(), sink, events(Next, Select))
		require.NoError(t, err)

		require.NoError(t, dev.WriteScroller(context.Background(), "Memo", Text("hello")))
		require.NoError(t, dev.FinalAcceptPrompt(context.Background()))
	})

	t.Run("final prompt rejected", func(t *testing.T) {
		dev, err := NewDevice(DefaultLayout(), &recordingSink{}, events(Reject))
		require.NoError(t, err)

		err = dev.FinalAcceptPrompt(context.Background(), "Sign?")
		assert.ErrorIs(t, err, ErrRejected)
		assert.False(t, IsDisplayError(err))
		assert.False(t, IsInputError(err))
	})

	t.Run("display failure is not a rejection", func(t *testing.T) {
		dev, err := NewDevice(DefaultLayout(), &recordingSink{failOn: 1}, events(Confirm))
		require.NoError(t, err)

		err = dev.FinalAcceptPrompt(context.Background(), "Sign?")
		assert.True(t, IsDisplayError(err))
		assert.NotErrorIs(t, err, ErrRejected)
	})

	t.Run("missing capabilities", func(t *testing.T) {
		_, err := NewDevice(DefaultLayout(), nil, events())
		assert.True(t, IsConfigError(err))

		_, err = NewDevice(DefaultLayout(), &recordingSink{}, nil)
		assert.True(t, IsConfigError(err))
	})

	t.Run("workflow", func(t *testing.T) {
		dev, err := NewDevice(DefaultLayout(), &recordingSink{}, events(Next, Confirm))
		require.NoError(t, err)

		d, err := dev.RunWorkflow(context.Background(), []Session{{Title: "A", Text: "b"}}, []string{"ok?"})
		require.NoError(t, err)
		assert.Equal(t, Accepted, d)
	})
}

func TestError_Message(t *testing.T) {
	err := NewDisplayError(2, errScreenFault)
	assert.Equal(t, "Display Error: render failed (page 3): screen fault", err.Error())

	cfg := NewConfigError("bad width %d", 0)
	assert.Equal(t, "Config Error: bad width 0", cfg.Error())
	assert.Equal(t, "ErrorType(9)", ErrorType(9).String())
}

func TestInputEvent_Parse(t *testing.T) {
	for _, ev := range []InputEvent{Next, Previous, Confirm, Reject, Select} {
		got, err := ParseInputEvent(ev.String())
		require.NoError(t, err)
		assert.Equal(t, ev, got)
	}

	_, err := ParseInputEvent("sideways")
	assert.Error(t, err)
}
