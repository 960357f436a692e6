package viz

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/lifesim/internal/life"
	"github.com/san-kum/lifesim/internal/render"
)

// blockBoard draws up to maxCols × maxRows cells, two terminal columns per
// cell. Runs of equal colour share one styled segment.
func blockBoard(snap life.Snapshot, p render.Palette, maxCols, maxRows int) string {
	cols, rows := snap.Columns(), snap.Rows()
	if maxCols > 0 && cols > maxCols {
		cols = maxCols
	}
	if maxRows > 0 && rows > maxRows {
		rows = maxRows
	}

	var b strings.Builder
	for row := 0; row < rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		run := 0
		var runColor color.RGBA
		for col := 0; col < cols; col++ {
			c := p.Fill(snap.At(col, row))
			if run > 0 && c != runColor {
				b.WriteString(segment(runColor, run))
				run = 0
			}
			runColor = c
			run++
		}
		if run > 0 {
			b.WriteString(segment(runColor, run))
		}
	}
	return b.String()
}

func segment(c color.RGBA, cells int) string {
	return lipgloss.NewStyle().
		Background(lipColor(c)).
		Render(strings.Repeat("  ", cells))
}
