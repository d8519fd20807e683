package density

import (
	"fmt"

	"github.com/san-kum/buddhabrot/internal/orbit"
)

// Viewport is the rectangular region of the complex plane being sampled.
// Rows of the density grid run along the real axis, columns along the
// imaginary axis.
type Viewport struct {
	Min orbit.Point
	Max orbit.Point
}

// RealExtent is the viewport size along the real axis.
func (v Viewport) RealExtent() float64 { return v.Max.R - v.Min.R }

// ImagExtent is the viewport size along the imaginary axis.
func (v Viewport) ImagExtent() float64 { return v.Max.I - v.Min.I }

// Contains reports whether p lies within the closed viewport bounds.
func (v Viewport) Contains(p orbit.Point) bool {
	return p.R >= v.Min.R && p.R <= v.Max.R &&
		p.I >= v.Min.I && p.I <= v.Max.I
}

// Validate rejects degenerate viewports. A zero-extent axis would divide
// by zero in the grid mapping, so it is a configuration error.
func (v Viewport) Validate() error {
	if v.RealExtent() <= 0 {
		return fmt.Errorf("viewport real extent must be positive, got [%f, %f]", v.Min.R, v.Max.R)
	}
	if v.ImagExtent() <= 0 {
		return fmt.Errorf("viewport imaginary extent must be positive, got [%f, %f]", v.Min.I, v.Max.I)
	}
	return nil
}
