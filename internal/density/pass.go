package density

import (
	"context"
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/san-kum/buddhabrot/internal/orbit"
)

// progressBatch is how many samples a worker draws between cancellation
// checks and progress reports.
const progressBatch = 4096

// Pass is one accumulation run over a viewport: it draws Samples uniform
// random candidates, iterates each one, and bins in-viewport trajectory
// points into a grid.
//
// Samples are sharded across Workers goroutines. Worker k seeds its own
// random source with Seed+k, accumulates into a private partial grid, and
// the partials are merged into the target grid in a single reduction once
// all workers finish. The grid is never touched concurrently.
type Pass struct {
	Viewport   Viewport
	Iterations int
	Samples    int64
	Seed       int64
	Workers    int

	// Progress, if set, is called after every batch of samples with the
	// number completed so far across all workers. Called from worker
	// goroutines; must be safe for concurrent use.
	Progress func(done, total int64)
}

// Run accumulates into grid and returns the largest cell value the pass
// produced. On cancellation the grid contents are unspecified.
func (p Pass) Run(ctx context.Context, grid *Grid) (uint64, error) {
	workers := p.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if int64(workers) > p.Samples && p.Samples > 0 {
		workers = int(p.Samples)
	}
	if p.Samples <= 0 {
		return grid.MaxCell(), nil
	}

	partials := make([]*Grid, workers)
	errs := make([]error, workers)
	var done atomic.Int64

	share := p.Samples / int64(workers)
	extra := p.Samples % int64(workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		n := share
		if int64(w) < extra {
			n++
		}

		wg.Add(1)
		go func(idx int, samples int64) {
			defer wg.Done()

			partial := NewGrid(grid.Width(), grid.Height())
			partials[idx] = partial
			rng := rand.New(rand.NewSource(p.Seed + int64(idx)))

			for remaining := samples; remaining > 0; {
				batch := int64(progressBatch)
				if batch > remaining {
					batch = remaining
				}

				select {
				case <-ctx.Done():
					errs[idx] = ctx.Err()
					return
				default:
				}

				p.accumulateBatch(rng, partial, batch)
				remaining -= batch

				if p.Progress != nil {
					p.Progress(done.Add(batch), p.Samples)
				} else {
					done.Add(batch)
				}
			}
		}(w, n)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return 0, err
		}
	}

	var max uint64
	for _, partial := range partials {
		if m := grid.Merge(partial); m > max {
			max = m
		}
	}
	return max, nil
}

func (p Pass) accumulateBatch(rng *rand.Rand, grid *Grid, n int64) {
	v := p.Viewport
	realSpan := v.RealExtent()
	imagSpan := v.ImagExtent()

	for i := int64(0); i < n; i++ {
		c := orbit.Point{
			R: v.Min.R + rng.Float64()*realSpan,
			I: v.Min.I + rng.Float64()*imagSpan,
		}

		for _, pt := range orbit.Trajectory(c, p.Iterations) {
			if !v.Contains(pt) {
				continue
			}

			row := RowFromReal(pt.R, v.Min.R, v.Max.R, grid.Height())
			col := ColFromImag(pt.I, v.Min.I, v.Max.I, grid.Width())

			// A point exactly on the closed upper bound maps one past the
			// last cell; clamp it in.
			if row == grid.Height() {
				row = grid.Height() - 1
			}
			if col == grid.Width() {
				col = grid.Width() - 1
			}

			grid.Inc(row, col)
		}
	}
}
