// Package density estimates how often escape trajectories of z ← z² + c
// visit each pixel of a viewport.
//
// The pipeline is a fixed-cost batch job: [Pass] draws uniform random
// candidates over the viewport, runs each through the trajectory
// generator, and bins the escaping orbits into a [Grid]; [Render] runs
// one pass per color channel and rescales the counters with [Normalize].
// Passes shard their samples across worker goroutines with derived seeds
// and merge private partial grids; a seeded job with a fixed worker count
// is fully reproducible.
package density
