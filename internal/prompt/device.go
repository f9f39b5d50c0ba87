package prompt

import "context"

// Device bundles a layout with the display and input it drives. The
// capabilities are borrowed; Device never closes them.
type Device struct {
	Layout  Layout
	Display DisplaySink
	Input   InputSource
}

// NewDevice validates layout and returns a Device
func NewDevice(layout Layout, display DisplaySink, input InputSource) (*Device, error) {
	d := &Device{Layout: layout, Display: display, Input: input}
	if err := d.check(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Device) check() error {
	if d.Display == nil {
		return NewConfigError("device has no display")
	}
	if d.Input == nil {
		return NewConfigError("device has no input")
	}
	return d.Layout.Validate()
}

// WriteScroller shows the text produced by content under title and returns
// once the user has paged past the end.
func (d *Device) WriteScroller(ctx context.Context, title string, content ContentWriter) error {
	if err := d.check(); err != nil {
		return err
	}
	return RunSession(ctx, d.Layout, Session{Title: title, Content: content}, d.Display, d.Input)
}

// Confirm shows lines followed by the accept/reject screens
func (d *Device) Confirm(ctx context.Context, lines ...string) (Decision, error) {
	if err := d.check(); err != nil {
		return Rejected, err
	}
	return RunConfirmation(ctx, d.Layout, lines, d.Display, d.Input)
}

// FinalAcceptPrompt is Confirm for callers that treat rejection as an
// error: it returns nil when accepted and ErrRejected when rejected.
func (d *Device) FinalAcceptPrompt(ctx context.Context, lines ...string) error {
	decision, err := d.Confirm(ctx, lines...)
	if err != nil {
		return err
	}
	if decision != Accepted {
		return ErrRejected
	}
	return nil
}

// RunWorkflow runs sessions then one confirmation on this device
func (d *Device) RunWorkflow(ctx context.Context, sessions []Session, finalPrompts []string) (Decision, error) {
	if err := d.check(); err != nil {
		return Rejected, err
	}
	return RunWorkflow(ctx, d.Layout, sessions, finalPrompts, d.Display, d.Input)
}
