package density

// Normalized holds grid counters rescaled linearly into [0, scale].
type Normalized struct {
	width  int
	height int
	cells  []float64
}

func (n *Normalized) Width() int  { return n.width }
func (n *Normalized) Height() int { return n.height }

func (n *Normalized) At(row, col int) float64 {
	return n.cells[row*n.width+col]
}

// Cells exposes the row-major backing buffer, read-only by convention.
func (n *Normalized) Cells() []float64 { return n.cells }

// Normalize rescales every counter by scale/max. A zero max means no
// sample ever landed; dividing by it is the one arithmetic degeneracy in
// the pipeline, so it is guarded here and yields the all-zero grid.
func Normalize(g *Grid, max uint64, scale float64) *Normalized {
	n := &Normalized{
		width:  g.width,
		height: g.height,
		cells:  make([]float64, len(g.cells)),
	}
	if max == 0 {
		return n
	}

	factor := scale / float64(max)
	for i, v := range g.cells {
		n.cells[i] = float64(v) * factor
	}
	return n
}
