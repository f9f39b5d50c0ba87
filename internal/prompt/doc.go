// Package prompt implements paginated review-and-approve prompts for
// devices with a tiny screen and two or three buttons.
//
// Text is broken into width-limited lines, grouped into pages, and shown
// one page at a time through a DisplaySink while an InputSource delivers
// logical button events. A workflow is an ordered list of scroller
// sessions followed by exactly one accept/reject confirmation:
//
//	dev := &prompt.Device{Layout: prompt.DefaultLayout(), Display: sink, Input: source}
//
//	err := dev.WriteScroller(ctx, "To", func(w io.Writer) error {
//	    _, err := fmt.Fprintf(w, "%s", recipient)
//	    return err
//	})
//	if err != nil {
//	    return err // display or input failure, nothing was approved
//	}
//
//	if err := dev.FinalAcceptPrompt(ctx, "Sign", "transaction?"); err != nil {
//	    if errors.Is(err, prompt.ErrRejected) {
//	        // user said no
//	    }
//	    return err
//	}
//
// # Guarantees
//
// No rendered line is wider than Layout.CharsPerLine and no page holds more
// than Layout.LinesPerPage lines. Long words are hard-split, never
// truncated. Navigation saturates at both ends, so the only way out of a
// scroller is to page past its last screen, and the only way out of a
// workflow is a decision or an error.
//
// # Errors
//
// Failures are *Error values classified by ErrorType. A rejection is not an
// error: RunConfirmation returns the Rejected decision, and only the
// FinalAcceptPrompt convenience maps it to the ErrRejected sentinel.
package prompt
