package orbit

// EscapeThreshold is the squared-magnitude bound beyond which an iterate
// is considered escaped.
const EscapeThreshold = 2.0

// Trajectory iterates z ← z² + c from z = 0 and returns every iterate up
// to and including the first one whose squared magnitude exceeds
// EscapeThreshold. Candidates that stay bounded through the whole budget
// belong to the Mandelbrot set and contribute nothing to a density image,
// so they yield nil.
//
// budget must be positive; callers validate it before sampling starts.
func Trajectory(c Point, budget int) []Point {
	z := Point{}
	points := make([]Point, 0, budget)

	for n := 0; n < budget; n++ {
		z = z.Mul(z).Add(c)
		points = append(points, z)
		if z.SqMagnitude() > EscapeThreshold {
			return points
		}
	}

	return nil
}
