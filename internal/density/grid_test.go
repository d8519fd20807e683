package density

import "testing"

func TestGridIncAndAt(t *testing.T) {
	g := NewGrid(3, 2)

	if got := g.Inc(1, 2); got != 1 {
		t.Errorf("expected first increment to return 1, got %d", got)
	}
	if got := g.Inc(1, 2); got != 2 {
		t.Errorf("expected second increment to return 2, got %d", got)
	}
	if got := g.At(1, 2); got != 2 {
		t.Errorf("expected cell value 2, got %d", got)
	}
	if got := g.At(0, 0); got != 0 {
		t.Errorf("untouched cell should be 0, got %d", got)
	}
}

func TestGridMerge(t *testing.T) {
	a := NewGrid(2, 2)
	b := NewGrid(2, 2)

	a.Inc(0, 0)
	a.Inc(1, 1)
	b.Inc(1, 1)
	b.Inc(1, 1)

	max := a.Merge(b)
	if max != 3 {
		t.Errorf("expected merge max 3, got %d", max)
	}
	if a.At(1, 1) != 3 || a.At(0, 0) != 1 || a.At(0, 1) != 0 {
		t.Error("merge produced wrong cell values")
	}
}

func TestGridMaxAndTotal(t *testing.T) {
	g := NewGrid(4, 4)
	if g.MaxCell() != 0 || g.Total() != 0 {
		t.Error("empty grid should have zero max and total")
	}

	g.Inc(3, 0)
	g.Inc(3, 0)
	g.Inc(0, 3)

	if g.MaxCell() != 2 {
		t.Errorf("expected max 2, got %d", g.MaxCell())
	}
	if g.Total() != 3 {
		t.Errorf("expected total 3, got %d", g.Total())
	}
}

func TestRowFromReal(t *testing.T) {
	minR, maxR := -2.0, 2.0
	h := 100

	if got := RowFromReal(minR, minR, maxR, h); got != 0 {
		t.Errorf("lower bound should map to row 0, got %d", got)
	}

	for _, re := range []float64{-2.0, -1.999, 0, 1.5, 1.9999} {
		if got := RowFromReal(re, minR, maxR, h); got < 0 || got >= h {
			t.Errorf("re=%f mapped to out-of-range row %d", re, got)
		}
	}

	// The closed upper bound lands exactly one past the last row; the
	// accumulator clamps it.
	if got := RowFromReal(maxR, minR, maxR, h); got != h {
		t.Errorf("upper bound should map to %d, got %d", h, got)
	}
}

func TestColFromImag(t *testing.T) {
	if got := ColFromImag(-1.0, -1.0, 1.0, 64); got != 0 {
		t.Errorf("lower bound should map to col 0, got %d", got)
	}
	if got := ColFromImag(0.0, -1.0, 1.0, 64); got != 32 {
		t.Errorf("midpoint should map to col 32, got %d", got)
	}
}
