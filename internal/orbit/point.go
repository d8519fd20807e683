package orbit

// Point is a location in the complex plane. Value type; all operations
// return new Points.
type Point struct {
	R float64
	I float64
}

func (p Point) Add(q Point) Point {
	return Point{R: p.R + q.R, I: p.I + q.I}
}

// Mul is the complex product (a+bi)(c+di).
func (p Point) Mul(q Point) Point {
	return Point{
		R: p.R*q.R - p.I*q.I,
		I: p.R*q.I + p.I*q.R,
	}
}

// SqMagnitude returns |p|² without the square root.
func (p Point) SqMagnitude() float64 {
	return p.R*p.R + p.I*p.I
}
