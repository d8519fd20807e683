package density

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/san-kum/buddhabrot/internal/orbit"
)

func fullView() Viewport {
	return Viewport{
		Min: orbit.Point{R: -2, I: -2},
		Max: orbit.Point{R: 2, I: 2},
	}
}

func TestPassReproducible(t *testing.T) {
	run := func() *Grid {
		g := NewGrid(16, 16)
		p := Pass{
			Viewport:   fullView(),
			Iterations: 100,
			Samples:    20_000,
			Seed:       42,
			Workers:    4,
		}
		if _, err := p.Run(context.Background(), g); err != nil {
			t.Fatalf("pass failed: %v", err)
		}
		return g
	}

	a := run()
	b := run()

	for row := 0; row < 16; row++ {
		for col := 0; col < 16; col++ {
			if a.At(row, col) != b.At(row, col) {
				t.Fatalf("same seed produced different grids at (%d,%d): %d vs %d",
					row, col, a.At(row, col), b.At(row, col))
			}
		}
	}
}

func TestPassEndToEnd(t *testing.T) {
	g := NewGrid(4, 4)
	p := Pass{
		Viewport:   fullView(),
		Iterations: 50,
		Samples:    100_000,
		Seed:       7,
		Workers:    4,
	}

	max, err := p.Run(context.Background(), g)
	if err != nil {
		t.Fatalf("pass failed: %v", err)
	}

	if g.Total() == 0 {
		t.Fatal("expected samples to land in the viewport")
	}
	if max != g.MaxCell() {
		t.Errorf("reported max %d, true grid max %d", max, g.MaxCell())
	}
}

func TestPassZeroSamples(t *testing.T) {
	g := NewGrid(8, 8)
	p := Pass{Viewport: fullView(), Iterations: 10, Samples: 0, Seed: 1}

	max, err := p.Run(context.Background(), g)
	if err != nil {
		t.Fatalf("pass failed: %v", err)
	}
	if max != 0 || g.Total() != 0 {
		t.Error("zero samples must leave the grid untouched")
	}
}

func TestPassSingleWorker(t *testing.T) {
	g := NewGrid(8, 8)
	p := Pass{Viewport: fullView(), Iterations: 64, Samples: 10_000, Seed: 9, Workers: 1}

	max, err := p.Run(context.Background(), g)
	if err != nil {
		t.Fatalf("pass failed: %v", err)
	}
	if g.Total() == 0 {
		t.Fatal("expected nonzero mass from 10k samples over the full set")
	}
	if max != g.MaxCell() {
		t.Errorf("reported max %d, true grid max %d", max, g.MaxCell())
	}
}

func TestPassCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := NewGrid(8, 8)
	p := Pass{Viewport: fullView(), Iterations: 100, Samples: 1_000_000, Seed: 3, Workers: 2}

	if _, err := p.Run(ctx, g); err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestPassProgress(t *testing.T) {
	var last atomic.Int64
	g := NewGrid(4, 4)
	p := Pass{
		Viewport:   fullView(),
		Iterations: 20,
		Samples:    10_000,
		Seed:       5,
		Workers:    2,
		Progress: func(done, total int64) {
			if total != 10_000 {
				t.Errorf("expected total 10000, got %d", total)
			}
			for {
				prev := last.Load()
				if done <= prev || last.CompareAndSwap(prev, done) {
					break
				}
			}
		},
	}

	if _, err := p.Run(context.Background(), g); err != nil {
		t.Fatalf("pass failed: %v", err)
	}
	if last.Load() != 10_000 {
		t.Errorf("expected final progress 10000, got %d", last.Load())
	}
}
