// Package emulator runs prompts against an interactive terminal device.
//
// The emulator is a Bubble Tea program that paints each frame the prompt
// core renders and turns key presses into input events:
//
//	←/h      previous page (left button)
//	→/l      next page (right button)
//	space    select (both buttons)
//	y/enter  confirm
//	n/esc    reject
//	ctrl+c   abort
//
// The prompt core runs on its own goroutine and talks to the program
// through a Bridge, which is both the DisplaySink and the InputSource:
//
//	err := emulator.Run(ctx, layout, func(ctx context.Context, b *emulator.Bridge) error {
//		_, err := prompt.RunWorkflow(ctx, layout, sessions, confirm, b, b)
//		return err
//	})
//
// Quitting the program ends input, so a blocked prompt fails with an input
// error rather than producing a decision.
package emulator
