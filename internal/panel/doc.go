// Package panel exposes a prompt device over a websocket.
//
// A panel is a remote display with buttons: a browser page or a small
// companion app connects to /ws, receives every frame as JSON and sends
// button presses back. Only one panel may be connected at a time, since a
// second set of buttons would make the decision ambiguous.
//
// Messages are JSON objects with a "type" field:
//
//	server -> panel   {"type":"frame","frame":{"title":"To (1/3)","lines":["0x12ab"],"page":1,"pages":3,"kind":"content"}}
//	server -> panel   {"type":"decision","decision":"accepted"}
//	server -> panel   {"type":"error","error":"unknown input event \"up\""}
//	panel -> server   {"type":"button","button":"next"}
//
// GET /layout returns the screen geometry so the panel can size itself.
//
// Buttons use the input event names (next, previous, confirm, reject,
// select) and the aliases left, right and both.
//
// A Session is both the DisplaySink and the InputSource of a prompt. When
// the panel disconnects, the blocked prompt fails with ErrDisconnected.
package panel
