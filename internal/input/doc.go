// Package input adapts physical button streams to prompt input events.
//
// A two-button device reports presses and releases per button. Decoder
// turns that stream into logical events: a lone left release is Previous,
// a lone right release is Next, and holding both buttons then releasing
// them is Select. Presses only feed the optional OnPress hook, which a
// display can use to show a pressed-arrow hint.
//
// ScriptSource replays a fixed list of logical events. It backs the
// headless simulate command and is handy in tests.
package input
