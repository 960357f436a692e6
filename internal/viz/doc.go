// Package viz is the terminal front-end for a life session.
//
// [Model] is a Bubble Tea model that owns a [session.Session] and steps it
// once per tick at the configured frame rate. The board is drawn either as
// coloured blocks (two terminal columns per cell) or, for large grids, as a
// braille [Canvas] packing 2×4 cells into one rune.
//
// # Key Bindings
//
//	s     - Start
//	x     - Stop
//	r     - Reset (stopped or idle only)
//	c     - Toggle colour mode and reset
//	+/-   - Raise/lower the iteration target (0 is unbounded)
//	t     - Cycle themes
//	v     - Toggle block/braille view
//	?     - Show help overlay
//	q     - Quit
//
// Commands the session refuses are shown as a short-lived status line.
package viz
