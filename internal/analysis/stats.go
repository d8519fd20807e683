package analysis

import (
	"math"

	"github.com/san-kum/buddhabrot/internal/density"
)

// Correlation computes the Pearson correlation of two equal-length
// samples. Degenerate input (mismatched lengths, fewer than two points,
// or zero variance) yields 0.
func Correlation(a, b []float64) float64 {
	if len(a) != len(b) || len(a) < 2 {
		return 0
	}

	n := float64(len(a))
	var meanA, meanB float64
	for i := range a {
		meanA += a[i]
		meanB += b[i]
	}
	meanA /= n
	meanB /= n

	var cov, varA, varB float64
	for i := range a {
		da := a[i] - meanA
		db := b[i] - meanB
		cov += da * db
		varA += da * da
		varB += db * db
	}
	if varA == 0 || varB == 0 {
		return 0
	}

	return cov / math.Sqrt(varA*varB)
}

// Occupancy is the fraction of grid cells holding at least one hit.
func Occupancy(g *density.Grid) float64 {
	total := g.Width() * g.Height()
	if total == 0 {
		return 0
	}

	hit := 0
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			if g.At(row, col) > 0 {
				hit++
			}
		}
	}
	return float64(hit) / float64(total)
}

// Entropy is the Shannon entropy (bits) of the grid treated as a
// discrete distribution; a rough texture measure for comparing passes.
func Entropy(g *density.Grid) float64 {
	total := g.Total()
	if total == 0 {
		return 0
	}

	var h float64
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			v := g.At(row, col)
			if v == 0 {
				continue
			}
			p := float64(v) / float64(total)
			h -= p * math.Log2(p)
		}
	}
	return h
}

// RowMarginal sums each row into a 1D density profile.
func RowMarginal(n *density.Normalized) []float64 {
	out := make([]float64, n.Height())
	for row := 0; row < n.Height(); row++ {
		for col := 0; col < n.Width(); col++ {
			out[row] += n.At(row, col)
		}
	}
	return out
}

// ColMarginal sums each column into a 1D density profile.
func ColMarginal(n *density.Normalized) []float64 {
	out := make([]float64, n.Width())
	for row := 0; row < n.Height(); row++ {
		for col := 0; col < n.Width(); col++ {
			out[col] += n.At(row, col)
		}
	}
	return out
}
