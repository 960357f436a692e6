// Package render turns life snapshots into pixels.
//
// Every cell is drawn at (col*cellSize, row*cellSize) with size
// cellSize × cellSize. A live coloured cell uses its own colour, a live
// uncoloured cell the palette's alive fill and a dead cell the dead fill.
package render

import (
	"image"
	"image/color"

	"github.com/san-kum/lifesim/internal/life"
)

// Palette holds the default fills.
type Palette struct {
	Alive color.RGBA
	Dead  color.RGBA
}

// DefaultPalette is dark cells on a light board.
var DefaultPalette = Palette{
	Alive: color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
	Dead:  color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
}

// Fill picks the colour for one cell.
func (p Palette) Fill(c life.Cell) color.RGBA {
	switch {
	case c.Alive && c.Colored:
		return color.RGBA{R: c.Color.R, G: c.Color.G, B: c.Color.B, A: 0xff}
	case c.Alive:
		return p.Alive
	}
	return p.Dead
}

// Rect is the pixel area covered by the cell at (col, row).
func Rect(col, row, cellSize int) image.Rectangle {
	x, y := col*cellSize, row*cellSize
	return image.Rect(x, y, x+cellSize, y+cellSize)
}

// FillRGBA writes one RGBA pixel per cell into buf in row-major order. buf
// must hold 4*Columns*Rows bytes; shorter buffers are left untouched.
func FillRGBA(buf []byte, snap life.Snapshot, p Palette) {
	cols, rows := snap.Columns(), snap.Rows()
	if len(buf) < 4*cols*rows {
		return
	}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			c := p.Fill(snap.At(col, row))
			base := 4 * (row*cols + col)
			buf[base+0] = c.R
			buf[base+1] = c.G
			buf[base+2] = c.B
			buf[base+3] = c.A
		}
	}
}

// Image renders the snapshot at full scale.
func Image(snap life.Snapshot, p Palette) *image.RGBA {
	cs := snap.CellSize()
	img := image.NewRGBA(image.Rect(0, 0, snap.Columns()*cs, snap.Rows()*cs))
	for col := 0; col < snap.Columns(); col++ {
		for row := 0; row < snap.Rows(); row++ {
			c := p.Fill(snap.At(col, row))
			r := Rect(col, row, cs)
			for y := r.Min.Y; y < r.Max.Y; y++ {
				for x := r.Min.X; x < r.Max.X; x++ {
					img.SetRGBA(x, y, c)
				}
			}
		}
	}
	return img
}
