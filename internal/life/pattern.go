package life

import "strings"

// FromPattern builds a grid from a plaintext (.cells) pattern. 'O' and '*'
// mark live cells, '.' and spaces dead ones, and lines starting with '!' are
// comments. Line i is row i and character j is column j; short lines are
// padded with dead cells.
func FromPattern(lines []string, cellSize int, colorMode bool, opts ...Option) (*Grid, error) {
	rowsText := make([]string, 0, len(lines))
	cols := 0
	for _, line := range lines {
		if strings.HasPrefix(line, "!") {
			continue
		}
		line = strings.TrimRight(line, "\r")
		rowsText = append(rowsText, line)
		if len(line) > cols {
			cols = len(line)
		}
	}
	if len(rowsText) == 0 || cols == 0 {
		return nil, ErrEmptyPattern
	}
	if cellSize <= 0 {
		return nil, &ConfigError{Width: cols, Height: len(rowsText), CellSize: cellSize, Wrapped: ErrInvalidDimensions}
	}

	o := buildOptions(opts)
	var palette Palette
	if colorMode {
		palette = o.palette
		if palette == nil {
			palette = NewRandomPalette(o.seed)
		}
	}

	rows := len(rowsText)
	offCol, offRow := 0, 0
	if o.cols > cols {
		offCol = (o.cols - cols) / 2
		cols = o.cols
	}
	if o.rows > rows {
		offRow = (o.rows - rows) / 2
		rows = o.rows
	}

	cells := allocCells(cols, rows)
	for row, text := range rowsText {
		for i := 0; i < len(text); i++ {
			cells[offCol+i][offRow+row].Alive = text[i] == 'O' || text[i] == '*'
		}
	}
	if palette != nil {
		for col := range cells {
			for row := range cells[col] {
				cells[col][row].Color = palette.Color(col, row)
				cells[col][row].Colored = true
			}
		}
	}

	return newGrid(cols, rows, cellSize, o.workers, cells), nil
}
