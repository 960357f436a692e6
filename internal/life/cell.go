package life

import "fmt"

// Color is a 24-bit display colour attached to a cell.
type Color struct {
	R, G, B uint8
}

// Hex formats the colour as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Cell is one grid position. Color is only meaningful while Colored is true,
// and it is carried forward unchanged across generations whatever happens to
// Alive.
type Cell struct {
	Alive   bool
	Color   Color
	Colored bool
}

// Rule applies B3/S23 to a cell with n live neighbours and reports whether it
// is alive in the next generation.
func Rule(alive bool, n int) bool {
	if !alive {
		return n == 3
	}
	return n == 2 || n == 3
}
