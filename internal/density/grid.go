package density

// Grid is a 2D array of visit counters backed by a row-major flat buffer.
// It is written by exactly one accumulation pass and read-only afterward.
type Grid struct {
	width  int
	height int
	cells  []uint64
}

func NewGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]uint64, width*height),
	}
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

func (g *Grid) At(row, col int) uint64 {
	return g.cells[row*g.width+col]
}

// Inc increments a cell and returns its new count.
func (g *Grid) Inc(row, col int) uint64 {
	g.cells[row*g.width+col]++
	return g.cells[row*g.width+col]
}

// Set overwrites a cell. Accumulation only ever increments; this exists
// for reloading persisted grids.
func (g *Grid) Set(row, col int, v uint64) {
	g.cells[row*g.width+col] = v
}

// Merge adds every cell of other into g and returns the largest cell
// value in g after the merge.
func (g *Grid) Merge(other *Grid) uint64 {
	var max uint64
	for i, v := range other.cells {
		g.cells[i] += v
		if g.cells[i] > max {
			max = g.cells[i]
		}
	}
	return max
}

// MaxCell returns the largest counter in the grid.
func (g *Grid) MaxCell() uint64 {
	var max uint64
	for _, v := range g.cells {
		if v > max {
			max = v
		}
	}
	return max
}

// Total returns the sum of all counters.
func (g *Grid) Total() uint64 {
	var sum uint64
	for _, v := range g.cells {
		sum += v
	}
	return sum
}
