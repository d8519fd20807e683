package density

import (
	"context"
	"fmt"
)

// NormMode selects how the three channel grids are normalized.
type NormMode string

const (
	// NormShared divides all three channels by one maximum accumulated
	// across every pass. Bright channels dim the others; this is the
	// classic coupled rendering.
	NormShared NormMode = "shared"

	// NormPerChannel divides each channel by its own maximum.
	NormPerChannel NormMode = "per-channel"
)

// NumChannels is the number of independently parameterized density passes.
const NumChannels = 3

// DefaultOutputScale is the upper bound of the normalized output range.
const DefaultOutputScale = 1.0

// channelSeedStride keeps the worker seed ranges of different channels
// disjoint for any sane worker count.
const channelSeedStride = 10_000

// ChannelParams parameterizes one accumulation pass.
type ChannelParams struct {
	Iterations int
	Samples    int64
}

// Job is a full three-channel density computation.
type Job struct {
	Width    int
	Height   int
	Viewport Viewport
	Channels [NumChannels]ChannelParams

	Seed          int64
	Workers       int
	Normalization NormMode

	// OutputScale bounds the normalized range; zero means
	// DefaultOutputScale.
	OutputScale float64

	// Progress, if set, receives per-channel sample counts as the passes
	// run. Must be safe for concurrent use.
	Progress func(channel int, done, total int64)
}

// Result is the finished output of a Job: raw counters, the maxima used
// for normalization, and the three normalized grids.
type Result struct {
	Raw     [NumChannels]*Grid
	PassMax [NumChannels]uint64

	// SharedMax is the running maximum across all three passes.
	SharedMax uint64

	Channels [NumChannels]*Normalized
}

// Validate checks the whole configuration before any computation starts.
// Jobs either pass validation and run to completion, or fail here and
// compute nothing.
func (j Job) Validate() error {
	if j.Width <= 0 {
		return fmt.Errorf("image width must be positive, got %d", j.Width)
	}
	if j.Height <= 0 {
		return fmt.Errorf("image height must be positive, got %d", j.Height)
	}
	if err := j.Viewport.Validate(); err != nil {
		return err
	}
	for i, ch := range j.Channels {
		if ch.Iterations <= 0 {
			return fmt.Errorf("channel %d: iteration budget must be positive, got %d", i, ch.Iterations)
		}
		if ch.Samples < 0 {
			return fmt.Errorf("channel %d: sample count must be non-negative, got %d", i, ch.Samples)
		}
	}
	if j.OutputScale < 0 {
		return fmt.Errorf("output scale must be non-negative, got %f", j.OutputScale)
	}
	switch j.Normalization {
	case NormShared, NormPerChannel, "":
	default:
		return fmt.Errorf("unknown normalization mode %q", j.Normalization)
	}
	return nil
}

func (j Job) mode() NormMode {
	if j.Normalization == "" {
		return NormShared
	}
	return j.Normalization
}

func (j Job) outputScale() float64 {
	if j.OutputScale == 0 {
		return DefaultOutputScale
	}
	return j.OutputScale
}

// Render runs the three accumulation passes in sequence (each internally
// parallel) and normalizes the results. It is the whole batch pipeline:
// it either returns three finished grids or an error, never a partial
// result.
func Render(ctx context.Context, j Job) (*Result, error) {
	if err := j.Validate(); err != nil {
		return nil, err
	}

	res := &Result{}
	for c := 0; c < NumChannels; c++ {
		grid := NewGrid(j.Width, j.Height)

		pass := Pass{
			Viewport:   j.Viewport,
			Iterations: j.Channels[c].Iterations,
			Samples:    j.Channels[c].Samples,
			Seed:       j.Seed + int64(c)*channelSeedStride,
			Workers:    j.Workers,
		}
		if j.Progress != nil {
			ch := c
			pass.Progress = func(done, total int64) {
				j.Progress(ch, done, total)
			}
		}

		max, err := pass.Run(ctx, grid)
		if err != nil {
			return nil, err
		}

		res.Raw[c] = grid
		res.PassMax[c] = max
		if max > res.SharedMax {
			res.SharedMax = max
		}
	}

	scale := j.outputScale()
	for c := 0; c < NumChannels; c++ {
		max := res.SharedMax
		if j.mode() == NormPerChannel {
			max = res.PassMax[c]
		}
		res.Channels[c] = Normalize(res.Raw[c], max, scale)
	}

	return res, nil
}
