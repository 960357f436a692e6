//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/san-kum/lifesim/internal/life"
)

// GridPainter uploads snapshots into a one-pixel-per-cell image and draws it
// scaled by the cell size.
type GridPainter struct {
	cols, rows int
	img        *ebiten.Image
	buf        []byte
}

func NewGridPainter(cols, rows int) *GridPainter {
	return &GridPainter{
		cols: cols,
		rows: rows,
		img:  ebiten.NewImage(cols, rows),
		buf:  make([]byte, 4*cols*rows),
	}
}

// Draw paints snap onto dst. Snapshots of a different size are ignored.
func (gp *GridPainter) Draw(dst *ebiten.Image, snap life.Snapshot, p Palette) {
	if snap.Columns() != gp.cols || snap.Rows() != gp.rows {
		return
	}
	FillRGBA(gp.buf, snap, p)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(snap.CellSize()), float64(snap.CellSize()))
	dst.DrawImage(gp.img, op)
}

func (gp *GridPainter) Size() (int, int) { return gp.cols, gp.rows }
