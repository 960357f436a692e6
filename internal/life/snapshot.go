package life

// Snapshot is an immutable view of one generation. It stays valid after the
// grid advances.
type Snapshot struct {
	gen      *generation
	cols     int
	rows     int
	cellSize int
}

func (s Snapshot) Columns() int    { return s.cols }
func (s Snapshot) Rows() int       { return s.rows }
func (s Snapshot) CellSize() int   { return s.cellSize }
func (s Snapshot) Generation() int { return s.gen.number }

// Births is the number of cells that came alive in this generation.
func (s Snapshot) Births() int { return s.gen.births }

// Deaths is the number of cells that died in this generation.
func (s Snapshot) Deaths() int { return s.gen.deaths }

// At returns a copy of the cell at (col, row); out-of-range positions yield
// a dead, uncoloured cell.
func (s Snapshot) At(col, row int) Cell {
	if col < 0 || col >= s.cols || row < 0 || row >= s.rows {
		return Cell{}
	}
	return s.gen.cells[col][row]
}

func (s Snapshot) Alive(col, row int) bool {
	return s.At(col, row).Alive
}

// Population counts live cells.
func (s Snapshot) Population() int {
	n := 0
	for _, column := range s.gen.cells {
		for _, c := range column {
			if c.Alive {
				n++
			}
		}
	}
	return n
}

// Equal reports whether both snapshots have the same dimensions and the same
// live cells. Colours are ignored.
func (s Snapshot) Equal(other Snapshot) bool {
	if s.cols != other.cols || s.rows != other.rows {
		return false
	}
	for col := 0; col < s.cols; col++ {
		a, b := s.gen.cells[col], other.gen.cells[col]
		for row := range a {
			if a[row].Alive != b[row].Alive {
				return false
			}
		}
	}
	return true
}
