package life

import (
	"math/rand"
	"sync/atomic"
	"time"
)

// generation is one fully-built board. It is never written after it has been
// published.
type generation struct {
	cells  [][]Cell // [col][row]
	number int
	births int
	deaths int
}

// Grid is a bounded Game of Life board of Columns × Rows cells.
type Grid struct {
	cols, rows int
	cellSize   int
	workers    int
	cur        atomic.Pointer[generation]
}

type options struct {
	seed    int64
	seeded  bool
	palette Palette
	workers int
	cols    int
	rows    int
}

// Option customises grid construction.
type Option func(*options)

// WithSeed makes the random seeding reproducible.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithPalette selects the colour seeding policy used in colour mode.
func WithPalette(p Palette) Option {
	return func(o *options) { o.palette = p }
}

// WithBounds centres a pattern on a board of at least cols × rows cells. It
// has no effect on randomly seeded grids.
func WithBounds(cols, rows int) Option {
	return func(o *options) {
		o.cols = cols
		o.rows = rows
	}
}

// WithWorkers splits Advance across n goroutines.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

func buildOptions(opts []Option) options {
	o := options{workers: 1}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.seeded {
		o.seed = time.Now().UnixNano()
	}
	if o.workers < 1 {
		o.workers = 1
	}
	return o
}

// New allocates a randomly seeded grid covering a width × height extent with
// square cells of cellSize. Partial cells at the right and bottom border are
// dropped. In colour mode every cell also receives a seed colour from the
// configured palette (random RGB by default).
func New(width, height, cellSize int, colorMode bool, opts ...Option) (*Grid, error) {
	if width <= 0 || height <= 0 || cellSize <= 0 || width < cellSize || height < cellSize {
		return nil, &ConfigError{Width: width, Height: height, CellSize: cellSize, Wrapped: ErrInvalidDimensions}
	}

	o := buildOptions(opts)
	cols, rows := width/cellSize, height/cellSize

	rng := rand.New(rand.NewSource(o.seed))
	var palette Palette
	if colorMode {
		palette = o.palette
		if palette == nil {
			palette = NewRandomPalette(o.seed)
		}
	}

	cells := allocCells(cols, rows)
	for col := range cells {
		for row := range cells[col] {
			c := &cells[col][row]
			c.Alive = rng.Intn(2) == 1
			if palette != nil {
				c.Color = palette.Color(col, row)
				c.Colored = true
			}
		}
	}

	return newGrid(cols, rows, cellSize, o.workers, cells), nil
}

func newGrid(cols, rows, cellSize, workers int, cells [][]Cell) *Grid {
	g := &Grid{cols: cols, rows: rows, cellSize: cellSize, workers: workers}
	g.cur.Store(&generation{cells: cells})
	return g
}

func allocCells(cols, rows int) [][]Cell {
	backing := make([]Cell, cols*rows)
	cells := make([][]Cell, cols)
	for col := range cells {
		cells[col] = backing[col*rows : (col+1)*rows : (col+1)*rows]
	}
	return cells
}

func (g *Grid) Columns() int    { return g.cols }
func (g *Grid) Rows() int       { return g.rows }
func (g *Grid) CellSize() int   { return g.cellSize }
func (g *Grid) Generation() int { return g.cur.Load().number }

// NeighborCount returns the number of live cells among the in-bounds positions
// at Chebyshev distance 1 from (col, row) in the current generation.
// Positions outside the grid have no neighbours.
func (g *Grid) NeighborCount(col, row int) int {
	if col < 0 || col >= g.cols || row < 0 || row >= g.rows {
		return 0
	}
	return neighbors(g.cur.Load().cells, g.cols, g.rows, col, row)
}

func neighbors(cells [][]Cell, cols, rows, col, row int) int {
	n := 0
	for dc := -1; dc <= 1; dc++ {
		c := col + dc
		if c < 0 || c >= cols {
			continue
		}
		for dr := -1; dr <= 1; dr++ {
			if dc == 0 && dr == 0 {
				continue
			}
			r := row + dr
			if r < 0 || r >= rows {
				continue
			}
			if cells[c][r].Alive {
				n++
			}
		}
	}
	return n
}

// Advance computes the next generation into fresh storage, reading only the
// prior generation, and then publishes it in one swap. Colours are copied
// unchanged.
func (g *Grid) Advance() {
	prev := g.cur.Load()
	next := &generation{
		cells:  allocCells(g.cols, g.rows),
		number: prev.number + 1,
	}

	var births, deaths atomic.Int64
	parallelFor(g.cols, g.workers, minColumnsPerWorker, func(start, end int) {
		var b, d int64
		for col := start; col < end; col++ {
			src, dst := prev.cells[col], next.cells[col]
			for row := range src {
				cell := src[row]
				alive := Rule(cell.Alive, neighbors(prev.cells, g.cols, g.rows, col, row))
				switch {
				case alive && !cell.Alive:
					b++
				case !alive && cell.Alive:
					d++
				}
				cell.Alive = alive
				dst[row] = cell
			}
		}
		births.Add(b)
		deaths.Add(d)
	})

	next.births = int(births.Load())
	next.deaths = int(deaths.Load())
	g.cur.Store(next)
}

// Snapshot returns a read-only view of the last published generation.
func (g *Grid) Snapshot() Snapshot {
	return Snapshot{gen: g.cur.Load(), cols: g.cols, rows: g.rows, cellSize: g.cellSize}
}
